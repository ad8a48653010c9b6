package algo

import (
	"errors"
	"strings"
)

// 路径规划与调度的错误分类
var (
	// ErrUnknownNode 引用的节点不在快照中
	ErrUnknownNode = errors.New("unknown node")
	// ErrNoPathFound 图不连通, 搜索前沿耗尽仍未到达终点
	ErrNoPathFound = errors.New("no path found")
	// ErrEmptyCandidateSet 最近查找时候选集合为空
	ErrEmptyCandidateSet = errors.New("empty candidate set")
	// ErrInvariantViolation 不应出现的内部状态, 例如负代价的边
	ErrInvariantViolation = errors.New("internal invariant violation")
	// ErrAutoNotFound 指定的车辆不存在, 或没有可派的车
	ErrAutoNotFound = errors.New("auto not found")
	// ErrNoNodes 地图上没有任何节点
	ErrNoNodes = errors.New("no nodes available on the map")
	// ErrNoRouteToPickup 车辆到上车点的路段规划失败
	ErrNoRouteToPickup = errors.New("cannot find a valid road to the passenger")
	// ErrNoRouteToDestination 上车点到下车点的路段规划失败
	ErrNoRouteToDestination = errors.New("cannot find a valid road to the destination")
)

// UnknownNodeError 列出缺失的节点 ID
type UnknownNodeError struct {
	IDs []string
}

func (e *UnknownNodeError) Error() string {
	return "unknown node: " + strings.Join(e.IDs, ", ")
}

// Is 让 errors.Is(err, ErrUnknownNode) 成立
func (e *UnknownNodeError) Is(target error) bool {
	return target == ErrUnknownNode
}

// Leg 行程中的一段
type Leg int

const (
	LegPickup  Leg = iota + 1 // 车辆 -> 上车点
	LegDropoff                // 上车点 -> 下车点
)

func (l Leg) String() string {
	switch l {
	case LegPickup:
		return "pickup"
	case LegDropoff:
		return "dropoff"
	default:
		return "unknown"
	}
}

// LegError 某一段路径规划失败, 保留原始错误
type LegError struct {
	Leg Leg
	Err error
}

func (e *LegError) Error() string {
	return e.sentinel().Error() + ": " + e.Err.Error()
}

func (e *LegError) Unwrap() error { return e.Err }

func (e *LegError) Is(target error) bool {
	return target == e.sentinel()
}

func (e *LegError) sentinel() error {
	if e.Leg == LegDropoff {
		return ErrNoRouteToDestination
	}
	return ErrNoRouteToPickup
}

// ErrorKind 给传输层使用的错误类别
type ErrorKind string

const (
	KindNone                 ErrorKind = ""
	KindAutoNotFound         ErrorKind = "auto_not_found"
	KindNoNodes              ErrorKind = "no_nodes"
	KindNoRouteToPickup      ErrorKind = "no_route_to_pickup"
	KindNoRouteToDestination ErrorKind = "no_route_to_destination"
	KindUnknownNode          ErrorKind = "unknown_node"
	KindEmptyCandidateSet    ErrorKind = "empty_candidate_set"
	KindInternal             ErrorKind = "internal"
	KindUnknown              ErrorKind = "unknown"
)

// Classify 把错误归入传输层需要区分的类别
// 行程段错误优先于其原因, 内部错误优先于一切
func Classify(err error) ErrorKind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrInvariantViolation):
		return KindInternal
	case errors.Is(err, ErrAutoNotFound):
		return KindAutoNotFound
	case errors.Is(err, ErrNoNodes):
		return KindNoNodes
	case errors.Is(err, ErrNoRouteToPickup):
		return KindNoRouteToPickup
	case errors.Is(err, ErrNoRouteToDestination):
		return KindNoRouteToDestination
	case errors.Is(err, ErrUnknownNode):
		return KindUnknownNode
	case errors.Is(err, ErrEmptyCandidateSet):
		return KindEmptyCandidateSet
	default:
		return KindUnknown
	}
}
