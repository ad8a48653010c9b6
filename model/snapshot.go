package model

// Snapshot 一次请求使用的地图快照 (只读)
type Snapshot struct {
	Nodes []Node `json:"nodes"`
	Roads []Road `json:"roads"`
	Autos []Auto `json:"autos"`
}

// FindAuto 按 ID 查找车辆
func (s Snapshot) FindAuto(id string) (Auto, bool) {
	for _, a := range s.Autos {
		if a.ID == id {
			return a, true
		}
	}
	return Auto{}, false
}
