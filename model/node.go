package model

// Point 代表平面坐标系中的一个点
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Node 对应地图上的一个路口
type Node struct {
	ID   string  `json:"nodeId" gorm:"primaryKey"`
	Name string  `json:"name" gorm:"default:Intersection"`
	X    float64 `json:"x" gorm:"not null"`
	Y    float64 `json:"y" gorm:"not null"`
	Seq  int     `json:"-" gorm:"index"` // 快照中的顺序, 决定最近节点平局时的取舍
}

// Position 返回节点坐标
func (n Node) Position() Point {
	return Point{X: n.X, Y: n.Y}
}
