package utils

import (
	"math"

	"auto-dispatch/model"
)

// ManhattanDistance 曼哈顿距离 |dx| + |dy|
// 用于最近节点/车辆查找, 也是 A* 的启发函数
func ManhattanDistance(p1, p2 model.Point) float64 {
	return math.Abs(p1.X-p2.X) + math.Abs(p1.Y-p2.Y)
}

// IsFinitePoint 坐标是否都是有限值
func IsFinitePoint(p model.Point) bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}
