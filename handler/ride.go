package handler

import (
	"net/http"
	"time"

	"auto-dispatch/algo"
	"auto-dispatch/metrics"
	"auto-dispatch/model"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RideRequest 叫车请求; autoId 为空时自动派最近的车
type RideRequest struct {
	AutoID        string `json:"autoId"`
	PickupNodeID  string `json:"pickupNodeId" binding:"required"`
	DropoffNodeID string `json:"dropoffNodeId" binding:"required"`
}

// RideResponse 叫车接口的响应
type RideResponse struct {
	Message string `json:"message"`
	RideID  string `json:"rideId"`
	algo.RideResult
}

// RequestRide 叫车接口: 加载快照, 规划 车辆 -> 上车点 -> 下车点 行程
func RequestRide(c *gin.Context) {
	var req RideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		metrics.RideRequestsTotal.WithLabelValues("bad_request").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}
	if !storeReady(c) {
		return
	}

	start := time.Now()
	defer func() { metrics.RideRequestDuration.Observe(time.Since(start).Seconds()) }()

	log := zap.L().With(
		zap.String("auto_id", req.AutoID),
		zap.String("pickup", req.PickupNodeID),
		zap.String("dropoff", req.DropoffNodeID),
	)

	snap, err := Store.Snapshot(c.Request.Context())
	if err != nil {
		log.Error("读取地图快照失败", zap.Error(err))
		metrics.RideRequestsTotal.WithLabelValues("storage_error").Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load the map"})
		return
	}
	metrics.SnapshotNodes.Set(float64(len(snap.Nodes)))

	res, err := algo.RequestRide(algo.RideRequest(req), snap, RideOptions)
	if err != nil {
		kind := algo.Classify(err)
		status := statusFor(kind)
		if status >= http.StatusInternalServerError {
			log.Error("行程规划失败", zap.String("kind", string(kind)), zap.Error(err))
		} else {
			log.Info("行程规划失败", zap.String("kind", string(kind)), zap.Error(err))
		}
		metrics.RideRequestsTotal.WithLabelValues(string(kind)).Inc()
		c.JSON(status, gin.H{"error": messageFor(kind), "kind": kind})
		return
	}

	ride := &model.Ride{
		ID:            uuid.NewString(),
		AutoID:        res.AutoID,
		PickupNodeID:  req.PickupNodeID,
		DropoffNodeID: req.DropoffNodeID,
		StartX:        res.AutoStartLocation.X,
		StartY:        res.AutoStartLocation.Y,
		Path:          algo.PathResult{Path: res.CombinedPath}.IDs(),
		ETA:           res.ETA,
	}
	// 行程日志写失败不影响本次结果
	if err := Store.SaveRide(c.Request.Context(), ride); err != nil {
		log.Warn("保存行程记录失败", zap.String("ride_id", ride.ID), zap.Error(err))
	}

	metrics.RideRequestsTotal.WithLabelValues("ok").Inc()
	metrics.RideETA.Observe(res.ETA)
	log.Debug("行程规划成功", zap.String("ride_id", ride.ID), zap.String("dispatched", res.AutoID), zap.Float64("eta", res.ETA))

	c.JSON(http.StatusOK, RideResponse{
		Message:    "Ride calculated successfully!",
		RideID:     ride.ID,
		RideResult: res,
	})
}

// GetRide 查询已记录的行程
func GetRide(c *gin.Context) {
	if !storeReady(c) {
		return
	}
	ride, err := Store.FindRide(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondLookupError(c, "ride", err)
		return
	}
	c.JSON(http.StatusOK, ride)
}
