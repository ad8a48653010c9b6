package algo

import (
	"container/heap"
	"fmt"
	"math"
	"slices"
	"strings"

	"auto-dispatch/model"
	"auto-dispatch/utils"
)

// PathResult 路径规划结果
// 未找到路径时 Path 为空, Cost 为 0
type PathResult struct {
	Path []model.Node `json:"path"`
	Cost float64      `json:"cost"`
}

// Found 是否找到路径
func (r PathResult) Found() bool {
	return len(r.Path) > 0
}

// IDs 路径上的节点 ID 序列
func (r PathResult) IDs() []string {
	ids := make([]string, len(r.Path))
	for i, n := range r.Path {
		ids[i] = n.ID
	}
	return ids
}

// String 格式化路径结果为可读字符串
func (r PathResult) String() string {
	if !r.Found() {
		return "no path"
	}
	return fmt.Sprintf("%s (cost %.2f)", strings.Join(r.IDs(), " -> "), r.Cost)
}

// Heuristic 对剩余代价的估计
type Heuristic func(from, target model.Point) float64

// HeuristicManhattan 曼哈顿距离启发
// 只有当每条边的代价都不小于其端点的曼哈顿距离时才可采纳
func HeuristicManhattan(from, target model.Point) float64 {
	return utils.ManhattanDistance(from, target)
}

// HeuristicNone 零启发, 搜索退化为 Dijkstra, 对任意非负代价都最优
func HeuristicNone(model.Point, model.Point) float64 {
	return 0
}

// HeuristicByName 按配置名称选择启发函数
func HeuristicByName(name string) (Heuristic, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "manhattan":
		return HeuristicManhattan, nil
	case "none", "dijkstra", "zero":
		return HeuristicNone, nil
	default:
		return nil, fmt.Errorf("unknown routing heuristic %q", name)
	}
}

type pathOptions struct {
	heuristic Heuristic
}

// PathOption 调整单次搜索的行为
type PathOption func(*pathOptions)

// WithHeuristic 指定启发函数, nil 表示使用默认的曼哈顿距离
func WithHeuristic(h Heuristic) PathOption {
	return func(o *pathOptions) {
		if h != nil {
			o.heuristic = h
		}
	}
}

// frontierItem 搜索前沿中的元素
type frontierItem struct {
	NodeID string
	FScore float64
	Seq    int // 进入前沿的顺序, 用于 FScore 相同时的决胜
	Index  int // 在堆中的索引
}

// frontier 以 FScore 为键的最小堆, FScore 相同时先进入者优先
type frontier []*frontierItem

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool {
	if f[i].FScore != f[j].FScore {
		return f[i].FScore < f[j].FScore
	}
	return f[i].Seq < f[j].Seq
}

func (f frontier) Swap(i, j int) {
	f[i], f[j] = f[j], f[i]
	f[i].Index = i
	f[j].Index = j
}

func (f *frontier) Push(x any) {
	item := x.(*frontierItem)
	item.Index = len(*f)
	*f = append(*f, item)
}

func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	item := old[n-1]
	old[n-1] = nil  // 避免内存泄漏
	item.Index = -1 // 标记为已移除
	*f = old[0 : n-1]
	return item
}

// search 单次搜索的临时状态, 每次调用都重新创建
type search struct {
	gScore   map[string]float64
	cameFrom map[string]string
	open     map[string]*frontierItem // 当前在前沿中的节点
	frontier frontier
	seq      int
}

func (s *search) g(id string) float64 {
	if v, ok := s.gScore[id]; ok {
		return v
	}
	return math.Inf(1)
}

// push 将节点加入前沿; 已在前沿中的节点只更新 FScore 并保持原有顺序
func (s *search) push(id string, f float64) {
	if item, ok := s.open[id]; ok {
		item.FScore = f
		heap.Fix(&s.frontier, item.Index)
		return
	}
	item := &frontierItem{NodeID: id, FScore: f, Seq: s.seq}
	s.seq++
	s.open[id] = item
	heap.Push(&s.frontier, item)
}

func (s *search) pop() string {
	item := heap.Pop(&s.frontier).(*frontierItem)
	delete(s.open, item.NodeID)
	return item.NodeID
}

// FindPath 使用 A* 算法寻找 startID 到 targetID 的最小代价路径
// 起点或终点不存在时返回 *UnknownNodeError; 不连通时返回空结果和 ErrNoPathFound
func FindPath(g *Graph, startID, targetID string, opts ...PathOption) (PathResult, error) {
	o := pathOptions{heuristic: HeuristicManhattan}
	for _, opt := range opts {
		opt(&o)
	}

	start, okStart := g.Node(startID)
	target, okTarget := g.Node(targetID)
	if !okStart || !okTarget {
		missing := &UnknownNodeError{}
		if !okStart {
			missing.IDs = append(missing.IDs, startID)
		}
		if !okTarget && targetID != startID {
			missing.IDs = append(missing.IDs, targetID)
		}
		return PathResult{}, missing
	}

	if startID == targetID {
		return PathResult{Path: []model.Node{start}, Cost: 0}, nil
	}

	s := &search{
		gScore:   map[string]float64{startID: 0},
		cameFrom: make(map[string]string),
		open:     make(map[string]*frontierItem),
	}
	targetPos := target.Position()
	s.push(startID, o.heuristic(start.Position(), targetPos))

	// A* 主循环
	for s.frontier.Len() > 0 {
		currentID := s.pop()
		if currentID == targetID {
			return s.reconstruct(g, startID, targetID)
		}

		// 遍历邻居
		for _, arc := range g.Neighbors(currentID) {
			if arc.Cost < 0 || math.IsNaN(arc.Cost) {
				return PathResult{}, fmt.Errorf("%w: arc %s -> %s has cost %v", ErrInvariantViolation, currentID, arc.To, arc.Cost)
			}
			tentative := s.g(currentID) + arc.Cost
			if tentative >= s.g(arc.To) {
				continue
			}
			neighbor, _ := g.Node(arc.To)
			s.cameFrom[arc.To] = currentID
			s.gScore[arc.To] = tentative
			s.push(arc.To, tentative+o.heuristic(neighbor.Position(), targetPos))
		}
	}

	return PathResult{}, fmt.Errorf("%w: %s -> %s", ErrNoPathFound, startID, targetID)
}

// reconstruct 沿 cameFrom 回溯并反转得到路径
// 代价按路径上相邻节点的弧代价累加
func (s *search) reconstruct(g *Graph, startID, targetID string) (PathResult, error) {
	var path []model.Node
	for at := targetID; ; {
		n, _ := g.Node(at)
		path = append(path, n)
		if at == startID {
			break
		}
		prev, ok := s.cameFrom[at]
		if !ok || len(path) > g.Len() {
			return PathResult{}, fmt.Errorf("%w: broken predecessor chain at %s", ErrInvariantViolation, at)
		}
		at = prev
	}
	slices.Reverse(path)

	cost := 0.0
	for i := 1; i < len(path); i++ {
		c, ok := g.ArcCost(path[i-1].ID, path[i].ID)
		if !ok {
			return PathResult{}, fmt.Errorf("%w: no arc %s -> %s on reconstructed path", ErrInvariantViolation, path[i-1].ID, path[i].ID)
		}
		cost += c
	}
	return PathResult{Path: path, Cost: cost}, nil
}
