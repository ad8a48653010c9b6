package handler

import (
	"errors"
	"net/http"
	"strings"

	"auto-dispatch/db"
	"auto-dispatch/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GetMap 返回完整地图快照 (节点、道路、车辆)
func GetMap(c *gin.Context) {
	if !storeReady(c) {
		return
	}
	snap, err := Store.Snapshot(c.Request.Context())
	if err != nil {
		zap.L().Error("读取地图快照失败", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load the map"})
		return
	}
	c.JSON(http.StatusOK, snap)
}

// GetNodes 获取所有节点信息
func GetNodes(c *gin.Context) {
	if !storeReady(c) {
		return
	}
	snap, err := Store.Snapshot(c.Request.Context())
	if err != nil {
		zap.L().Error("读取地图快照失败", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load the map"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count": len(snap.Nodes),
		"nodes": snap.Nodes,
	})
}

// GetNodeByID 根据 ID 获取节点信息
func GetNodeByID(c *gin.Context) {
	if !storeReady(c) {
		return
	}
	node, err := Store.FindNode(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondLookupError(c, "node", err)
		return
	}
	c.JSON(http.StatusOK, node)
}

// SearchNodes 搜索节点 (名称或 ID 模糊匹配, 不区分大小写)
func SearchNodes(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing search query"})
		return
	}
	if !storeReady(c) {
		return
	}
	snap, err := Store.Snapshot(c.Request.Context())
	if err != nil {
		zap.L().Error("读取地图快照失败", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load the map"})
		return
	}

	needle := strings.ToLower(query)
	results := make([]model.Node, 0)
	for _, node := range snap.Nodes {
		if strings.Contains(strings.ToLower(node.Name), needle) || strings.Contains(strings.ToLower(node.ID), needle) {
			results = append(results, node)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"query":   query,
		"count":   len(results),
		"results": results,
	})
}

func respondLookupError(c *gin.Context, what string, err error) {
	if errors.Is(err, db.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": what + " not found"})
		return
	}
	zap.L().Error("查询失败", zap.String("what", what), zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load " + what})
}
