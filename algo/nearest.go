package algo

import (
	"auto-dispatch/model"
	"auto-dispatch/utils"
)

// Locatable 有平面坐标的实体 (节点、车辆)
type Locatable interface {
	Position() model.Point
}

// Nearest 返回离 p 曼哈顿距离最小的候选
// 距离相同时返回输入顺序中最靠前的一个
func Nearest[T Locatable](p model.Point, candidates []T) (T, error) {
	var nearest T
	if len(candidates) == 0 {
		return nearest, ErrEmptyCandidateSet
	}

	minDist := -1.0
	for _, c := range candidates {
		dist := utils.ManhattanDistance(p, c.Position())
		if minDist < 0 || dist < minDist {
			minDist = dist
			nearest = c
		}
	}
	return nearest, nil
}
