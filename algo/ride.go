package algo

import (
	"fmt"

	"auto-dispatch/model"
)

// RideRequest 叫车请求; AutoID 为空时自动派最近的车
type RideRequest struct {
	AutoID        string `json:"autoId"`
	PickupNodeID  string `json:"pickupNodeId"`
	DropoffNodeID string `json:"dropoffNodeId"`
}

// RideOptions 叫车时的引擎参数
type RideOptions struct {
	Heuristic Heuristic // nil 表示曼哈顿距离
	IdleOnly  bool      // 自动派车时只考虑空闲车辆
}

// RideResult 叫车结果
type RideResult struct {
	AutoID            string       `json:"autoId"`
	AutoStartLocation model.Point  `json:"autoStartLocation"`
	PickupPath        []model.Node `json:"pickupPath"`
	DropoffPath       []model.Node `json:"dropoffPath"`
	CombinedPath      []model.Node `json:"combinedPath"`
	ETA               float64      `json:"eta"`
}

// RequestRide 在给定快照上为一次叫车请求规划行程
// 指定的车辆先于地图检查, 车辆不存在时不论地图是否为空都返回 ErrAutoNotFound
func RequestRide(req RideRequest, snap model.Snapshot, opts RideOptions) (RideResult, error) {
	var auto model.Auto
	if req.AutoID != "" {
		found, ok := snap.FindAuto(req.AutoID)
		if !ok {
			return RideResult{}, fmt.Errorf("%w: %s", ErrAutoNotFound, req.AutoID)
		}
		auto = found
	}

	g, err := BuildGraph(snap.Nodes, snap.Roads)
	if err != nil {
		return RideResult{}, err
	}
	if g.Len() == 0 {
		return RideResult{}, fmt.Errorf("%w: %w", ErrNoNodes, ErrEmptyCandidateSet)
	}

	if req.AutoID == "" {
		auto, err = dispatchAuto(g, req.PickupNodeID, snap.Autos, opts.IdleOnly)
		if err != nil {
			return RideResult{}, err
		}
	}

	trip, err := PlanTrip(g, auto.Position(), req.PickupNodeID, req.DropoffNodeID, WithHeuristic(opts.Heuristic))
	if err != nil {
		return RideResult{}, err
	}

	return RideResult{
		AutoID:            auto.ID,
		AutoStartLocation: trip.Start,
		PickupPath:        trip.Pickup.Path,
		DropoffPath:       trip.Dropoff.Path,
		CombinedPath:      trip.Combined,
		ETA:               trip.ETA,
	}, nil
}

// dispatchAuto 派离上车点最近的车
func dispatchAuto(g *Graph, pickupID string, autos []model.Auto, idleOnly bool) (model.Auto, error) {
	pickup, ok := g.Node(pickupID)
	if !ok {
		return model.Auto{}, &LegError{Leg: LegPickup, Err: &UnknownNodeError{IDs: []string{pickupID}}}
	}
	if idleOnly {
		autos = IdleAutos(autos)
	}
	auto, err := SelectVehicle(pickup.Position(), autos)
	if err != nil {
		return model.Auto{}, fmt.Errorf("%w: no vehicle to dispatch: %w", ErrAutoNotFound, err)
	}
	return auto, nil
}
