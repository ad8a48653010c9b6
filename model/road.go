package model

import "math"

// DefaultTrafficMultiplier 未设置路况系数时使用的默认值
const DefaultTrafficMultiplier = 1.0

// Road 两个路口之间的一条双向道路
type Road struct {
	ID                uint    `json:"id" gorm:"primaryKey"`
	FromNode          string  `json:"fromNode" gorm:"index;not null"`
	ToNode            string  `json:"toNode" gorm:"index;not null"`
	Distance          float64 `json:"distance" gorm:"not null"`
	SpeedLimit        float64 `json:"speedLimit" gorm:"default:40"` // 引擎不使用, 仅做展示
	TrafficMultiplier float64 `json:"trafficMultiplier" gorm:"default:1"`
}

// Multiplier 返回有效的路况系数
// 缺省、非正数或非有限值一律按 1.0 处理, 避免除零或负代价
func (r Road) Multiplier() float64 {
	m := r.TrafficMultiplier
	if !(m > 0) || math.IsInf(m, 1) {
		return DefaultTrafficMultiplier
	}
	return m
}
