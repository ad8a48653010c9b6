package main

import (
	"fmt"
	"net/http"
	"os"

	"auto-dispatch/algo"
	"auto-dispatch/config"
	"auto-dispatch/db"
	"auto-dispatch/handler"
	"auto-dispatch/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	// 1. 读取配置 (.env + 环境变量)
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载配置失败: %v\n", err)
		os.Exit(1)
	}

	// 2. 初始化日志
	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化日志失败: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()
	zap.ReplaceGlobals(log)

	heuristic, err := algo.HeuristicByName(cfg.RoutingHeuristic)
	if err != nil {
		log.Fatal("路径规划配置错误", zap.Error(err))
	}

	// 3. 初始化数据库
	// 连接 PostgreSQL，自动迁移表结构, 第一次运行时导入种子地图
	gdb, err := db.InitDB(cfg)
	if err != nil {
		log.Fatal("数据库初始化失败", zap.Error(err))
	}

	// 4. 注入 handler 依赖
	handler.Store = db.NewStore(gdb)
	handler.RideOptions = algo.RideOptions{
		Heuristic: heuristic,
		IdleOnly:  cfg.DispatchIdleOnly,
	}

	// 5. 初始化 Gin 引擎并配置路由
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), logger.GinMiddleware(log))
	setupRoutes(r, cfg)

	// 6. 启动服务器
	log.Info("服务器启动",
		zap.String("addr", cfg.Addr()),
		zap.String("heuristic", cfg.RoutingHeuristic),
		zap.Bool("idle_only", cfg.DispatchIdleOnly),
	)
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal("服务器启动失败", zap.Error(err))
	}
}

// setupRoutes 配置路由
func setupRoutes(r *gin.Engine, cfg *config.Config) {
	// CORS 跨域中间件
	corsCfg := cors.DefaultConfig()
	if len(cfg.CORSOrigins) == 0 || (len(cfg.CORSOrigins) == 1 && cfg.CORSOrigins[0] == "*") {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.CORSOrigins
	}
	r.Use(cors.New(corsCfg))

	// 健康检查
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"status":  "ok",
		})
	})

	// Prometheus 指标
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API 路由组
	api := r.Group("/api")
	{
		api.GET("/map", handler.GetMap)
		api.GET("/nodes", handler.GetNodes)
		api.GET("/nodes/search", handler.SearchNodes)
		api.GET("/nodes/:id", handler.GetNodeByID)
		api.POST("/request-ride", handler.RequestRide)
		api.GET("/rides/:id", handler.GetRide)
	}
}
