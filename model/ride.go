package model

import (
	"time"

	"github.com/lib/pq"
)

// Ride 一次已规划行程的记录
type Ride struct {
	ID            string         `json:"rideId" gorm:"primaryKey;type:varchar(36)"`
	AutoID        string         `json:"autoId" gorm:"index"`
	PickupNodeID  string         `json:"pickupNodeId"`
	DropoffNodeID string         `json:"dropoffNodeId"`
	StartX        float64        `json:"startX"`
	StartY        float64        `json:"startY"`
	Path          pq.StringArray `json:"path" gorm:"type:text[]"` // 合并路径的节点 ID 序列
	ETA           float64        `json:"eta"`
	CreatedAt     time.Time      `json:"createdAt"`
}
