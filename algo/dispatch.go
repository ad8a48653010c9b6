package algo

import (
	"auto-dispatch/model"
)

// SelectVehicle 选择离 p 最近的车辆, 不考虑车辆状态
func SelectVehicle(p model.Point, autos []model.Auto) (model.Auto, error) {
	return Nearest(p, autos)
}

// IdleAutos 过滤出空闲车辆, 保持原有顺序
func IdleAutos(autos []model.Auto) []model.Auto {
	idle := make([]model.Auto, 0, len(autos))
	for _, a := range autos {
		if a.IsIdle() {
			idle = append(idle, a)
		}
	}
	return idle
}
