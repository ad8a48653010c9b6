package algo

import (
	"auto-dispatch/model"
)

// TripResult 两段行程合并后的结果
type TripResult struct {
	Start    model.Point  `json:"autoStartLocation"`
	Anchor   model.Node   `json:"anchorNode"` // 车辆吸附到的最近节点
	Pickup   PathResult   `json:"pickup"`
	Dropoff  PathResult   `json:"dropoff"`
	Combined []model.Node `json:"combinedPath"`
	ETA      float64      `json:"eta"`
}

// PlanTrip 规划 车辆 -> 上车点 -> 下车点 的完整行程
// 两段分别独立搜索; 合并路径去掉第二段重复的上车点
func PlanTrip(g *Graph, vehicle model.Point, pickupID, dropoffID string, opts ...PathOption) (TripResult, error) {
	anchor, err := g.NearestNode(vehicle)
	if err != nil {
		return TripResult{}, err
	}

	pickup, err := FindPath(g, anchor.ID, pickupID, opts...)
	if err != nil {
		return TripResult{}, &LegError{Leg: LegPickup, Err: err}
	}

	dropoff, err := FindPath(g, pickupID, dropoffID, opts...)
	if err != nil {
		return TripResult{}, &LegError{Leg: LegDropoff, Err: err}
	}

	combined := make([]model.Node, 0, len(pickup.Path)+len(dropoff.Path)-1)
	combined = append(combined, pickup.Path...)
	combined = append(combined, dropoff.Path[1:]...)

	return TripResult{
		Start:    vehicle,
		Anchor:   anchor,
		Pickup:   pickup,
		Dropoff:  dropoff,
		Combined: combined,
		ETA:      pickup.Cost + dropoff.Cost,
	}, nil
}
