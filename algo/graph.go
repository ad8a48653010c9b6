package algo

import (
	"fmt"
	"math"

	"auto-dispatch/model"
	"auto-dispatch/utils"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Arc 邻接表中的一条有向弧
type Arc struct {
	To   string
	Cost float64
}

// Graph 由一次快照构建的只读无向图, 构建后不再修改
// 多个搜索可以并发读取同一个 Graph
type Graph struct {
	nodes *orderedmap.OrderedMap[string, model.Node] // 节点字典, 保持快照顺序
	adj   map[string][]Arc                           // 邻接表 (ID -> 弧列表)
}

// BuildGraph 从节点和道路快照构建图
// 每条道路产生两条代价相同的弧, cost = distance / trafficMultiplier;
// 端点不全在节点集合中的道路被直接丢弃
func BuildGraph(nodes []model.Node, roads []model.Road) (*Graph, error) {
	g := &Graph{
		nodes: orderedmap.New[string, model.Node](),
		adj:   make(map[string][]Arc, len(nodes)),
	}

	// 加载节点
	for _, n := range nodes {
		if !utils.IsFinitePoint(n.Position()) {
			return nil, fmt.Errorf("%w: node %q has non-finite coordinates", ErrInvariantViolation, n.ID)
		}
		if _, dup := g.nodes.Set(n.ID, n); dup {
			return nil, fmt.Errorf("%w: duplicate node id %q", ErrInvariantViolation, n.ID)
		}
	}

	// 加载道路, 双向各加一条弧
	for _, r := range roads {
		if _, ok := g.nodes.Get(r.FromNode); !ok {
			continue
		}
		if _, ok := g.nodes.Get(r.ToNode); !ok {
			continue
		}
		cost, err := roadCost(r)
		if err != nil {
			return nil, err
		}
		g.adj[r.FromNode] = append(g.adj[r.FromNode], Arc{To: r.ToNode, Cost: cost})
		g.adj[r.ToNode] = append(g.adj[r.ToNode], Arc{To: r.FromNode, Cost: cost})
	}

	return g, nil
}

// roadCost 计算道路的通行代价
func roadCost(r model.Road) (float64, error) {
	if r.Distance < 0 || math.IsNaN(r.Distance) || math.IsInf(r.Distance, 0) {
		return 0, fmt.Errorf("%w: road %s-%s has invalid distance %v", ErrInvariantViolation, r.FromNode, r.ToNode, r.Distance)
	}
	cost := r.Distance / r.Multiplier()
	if math.IsInf(cost, 0) || math.IsNaN(cost) {
		return 0, fmt.Errorf("%w: road %s-%s cost overflows (%v / %v)", ErrInvariantViolation, r.FromNode, r.ToNode, r.Distance, r.Multiplier())
	}
	return cost, nil
}

// Node 按 ID 获取节点
func (g *Graph) Node(id string) (model.Node, bool) {
	return g.nodes.Get(id)
}

// Len 节点数量
func (g *Graph) Len() int {
	return g.nodes.Len()
}

// Nodes 按快照顺序返回所有节点
func (g *Graph) Nodes() []model.Node {
	out := make([]model.Node, 0, g.nodes.Len())
	for pair := g.nodes.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Value)
	}
	return out
}

// Neighbors 返回节点的出弧, 调用方不得修改返回的切片
func (g *Graph) Neighbors(id string) []Arc {
	return g.adj[id]
}

// ArcCost 返回 from -> to 的最小弧代价
func (g *Graph) ArcCost(from, to string) (float64, bool) {
	best, found := math.Inf(1), false
	for _, a := range g.adj[from] {
		if a.To == to && a.Cost < best {
			best, found = a.Cost, true
		}
	}
	return best, found
}

// NearestNode 找到离给定坐标最近的节点 (曼哈顿距离, 平局取快照中靠前者)
func (g *Graph) NearestNode(p model.Point) (model.Node, error) {
	return Nearest(p, g.Nodes())
}
