package handler

import (
	"net/http"

	"auto-dispatch/algo"
	"auto-dispatch/db"

	"github.com/gin-gonic/gin"
)

// 由 main 在启动时注入
var (
	// Store 地图与行程存储
	Store db.Store
	// RideOptions 路径规划参数 (启发函数、是否只派空闲车辆)
	RideOptions algo.RideOptions
)

// statusFor 把引擎错误类别映射为 HTTP 状态码
func statusFor(kind algo.ErrorKind) int {
	switch kind {
	case algo.KindAutoNotFound:
		return http.StatusNotFound
	case algo.KindNoNodes,
		algo.KindNoRouteToPickup,
		algo.KindNoRouteToDestination,
		algo.KindUnknownNode,
		algo.KindEmptyCandidateSet:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// messageFor 返回给客户端的错误信息
func messageFor(kind algo.ErrorKind) string {
	switch kind {
	case algo.KindAutoNotFound:
		return "Auto not found in database."
	case algo.KindNoNodes:
		return "No nodes available on the map."
	case algo.KindNoRouteToPickup:
		return "Cannot find a valid road to the passenger."
	case algo.KindNoRouteToDestination:
		return "Cannot find a valid road to the destination."
	case algo.KindUnknownNode:
		return "Unknown node."
	case algo.KindEmptyCandidateSet:
		return "Nothing to choose from."
	default:
		return "Internal routing error."
	}
}

// storeReady Store 未注入时直接返回 500
func storeReady(c *gin.Context) bool {
	if Store == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "map storage is not initialised"})
		return false
	}
	return true
}
