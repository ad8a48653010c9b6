package model

// AutoStatus 车辆运营状态, 仅供展示, 引擎不强制状态转换
type AutoStatus string

const (
	AutoIdle   AutoStatus = "IDLE"
	AutoPickup AutoStatus = "PICKUP"
	AutoOnTrip AutoStatus = "ON_TRIP"
)

// Auto 地图上的一辆车
type Auto struct {
	ID         string     `json:"autoId" gorm:"primaryKey"`
	DriverName string     `json:"driverName" gorm:"not null"`
	CurrentX   float64    `json:"currentX" gorm:"not null"`
	CurrentY   float64    `json:"currentY" gorm:"not null"`
	Status     AutoStatus `json:"status" gorm:"type:varchar(16);default:IDLE"`
	Seq        int        `json:"-" gorm:"index"`
}

// Position 返回车辆当前位置
func (a Auto) Position() Point {
	return Point{X: a.CurrentX, Y: a.CurrentY}
}

// IsIdle 车辆是否空闲; 未设置状态视为空闲
func (a Auto) IsIdle() bool {
	return a.Status == "" || a.Status == AutoIdle
}
