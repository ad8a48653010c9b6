package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"auto-dispatch/config"
	"auto-dispatch/model"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ErrNotFound 记录不存在
var ErrNotFound = errors.New("record not found")

// Store 路径规划服务使用的存储接口
type Store interface {
	// Snapshot 读取一次一致的地图快照 (节点、道路、车辆按录入顺序)
	Snapshot(ctx context.Context) (model.Snapshot, error)
	FindNode(ctx context.Context, id string) (model.Node, error)
	SaveRide(ctx context.Context, ride *model.Ride) error
	FindRide(ctx context.Context, id string) (model.Ride, error)
}

// GormStore 基于 gorm + PostgreSQL 的 Store 实现
type GormStore struct {
	db *gorm.DB
}

// NewStore 包装一个已连接的 gorm.DB
func NewStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// InitDB 连接数据库, 自动迁移表结构, 数据库为空时导入种子地图
func InitDB(cfg *config.Config) (*gorm.DB, error) {
	log := zap.L()

	// 带重试的数据库连接 (Docker 启动时数据库可能还没准备好)
	var (
		db  *gorm.DB
		err error
	)
	for i := 0; i < cfg.DBMaxRetries; i++ {
		db, err = gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
		if err == nil {
			break
		}
		log.Warn("等待数据库就绪", zap.Int("attempt", i+1), zap.Int("max", cfg.DBMaxRetries), zap.Error(err))
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		return nil, fmt.Errorf("无法连接数据库: %w", err)
	}

	// 自动迁移模式 (自动创建表结构)
	if err := db.AutoMigrate(&model.Node{}, &model.Road{}, &model.Auto{}, &model.Ride{}); err != nil {
		return nil, fmt.Errorf("数据库迁移失败: %w", err)
	}

	// 检查是否需要导入初始数据
	var nodeCount int64
	if err := db.Model(&model.Node{}).Count(&nodeCount).Error; err != nil {
		return nil, fmt.Errorf("统计节点失败: %w", err)
	}
	if nodeCount == 0 && cfg.SeedFile != "" {
		log.Info("检测到数据库为空，正在导入种子地图", zap.String("file", cfg.SeedFile))
		if err := importMapData(db, cfg.SeedFile); err != nil {
			log.Warn("导入地图数据失败", zap.Error(err))
		}
	}

	log.Info("数据库连接并初始化成功")
	return db, nil
}

// Snapshot 在只读事务中读取节点、道路和车辆
func (s *GormStore) Snapshot(ctx context.Context) (model.Snapshot, error) {
	var snap model.Snapshot
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Order("seq, id").Find(&snap.Nodes).Error; err != nil {
			return fmt.Errorf("读取节点失败: %w", err)
		}
		if err := tx.Order("id").Find(&snap.Roads).Error; err != nil {
			return fmt.Errorf("读取道路失败: %w", err)
		}
		if err := tx.Order("seq, id").Find(&snap.Autos).Error; err != nil {
			return fmt.Errorf("读取车辆失败: %w", err)
		}
		return nil
	}, &sql.TxOptions{ReadOnly: true, Isolation: sql.LevelRepeatableRead})
	return snap, err
}

// FindNode 按 ID 查找节点
func (s *GormStore) FindNode(ctx context.Context, id string) (model.Node, error) {
	var node model.Node
	err := s.db.WithContext(ctx).First(&node, "id = ?", id).Error
	return node, translate(err)
}

// SaveRide 记录一次行程, 未设置 ID 时自动生成
func (s *GormStore) SaveRide(ctx context.Context, ride *model.Ride) error {
	if ride.ID == "" {
		ride.ID = uuid.NewString()
	}
	if err := s.db.WithContext(ctx).Create(ride).Error; err != nil {
		return fmt.Errorf("保存行程失败: %w", err)
	}
	return nil
}

// FindRide 按 ID 查找行程
func (s *GormStore) FindRide(ctx context.Context, id string) (model.Ride, error) {
	var ride model.Ride
	err := s.db.WithContext(ctx).First(&ride, "id = ?", id).Error
	return ride, translate(err)
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// importMapData 从 JSON 文件导入地图数据到数据库
func importMapData(db *gorm.DB, filepath string) error {
	data, err := loadSeed(filepath)
	if err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		// 批量插入节点
		if len(data.Nodes) > 0 {
			if err := tx.CreateInBatches(data.Nodes, 100).Error; err != nil {
				return fmt.Errorf("插入节点失败: %w", err)
			}
		}
		if len(data.Roads) > 0 {
			if err := tx.CreateInBatches(data.Roads, 100).Error; err != nil {
				return fmt.Errorf("插入道路失败: %w", err)
			}
		}
		if len(data.Autos) > 0 {
			if err := tx.CreateInBatches(data.Autos, 100).Error; err != nil {
				return fmt.Errorf("插入车辆失败: %w", err)
			}
		}
		zap.L().Info("地图数据导入成功",
			zap.Int("nodes", len(data.Nodes)),
			zap.Int("roads", len(data.Roads)),
			zap.Int("autos", len(data.Autos)),
		)
		return nil
	})
}

// loadSeed 读取种子文件并补齐缺省字段
func loadSeed(filepath string) (model.Snapshot, error) {
	file, err := os.ReadFile(filepath)
	if err != nil {
		return model.Snapshot{}, fmt.Errorf("读取文件失败: %w", err)
	}

	var data model.Snapshot
	if err := json.Unmarshal(file, &data); err != nil {
		return model.Snapshot{}, fmt.Errorf("解析 JSON 失败: %w", err)
	}

	for i := range data.Nodes {
		if data.Nodes[i].Name == "" {
			data.Nodes[i].Name = "Intersection"
		}
		data.Nodes[i].Seq = i
	}
	for i := range data.Roads {
		if data.Roads[i].SpeedLimit == 0 {
			data.Roads[i].SpeedLimit = 40
		}
		if data.Roads[i].TrafficMultiplier == 0 {
			data.Roads[i].TrafficMultiplier = model.DefaultTrafficMultiplier
		}
	}
	for i := range data.Autos {
		if data.Autos[i].Status == "" {
			data.Autos[i].Status = model.AutoIdle
		}
		data.Autos[i].Seq = i
	}
	return data, nil
}
