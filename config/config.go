package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config 服务配置, 全部来自环境变量 (可由 .env 文件提供)
type Config struct {
	Port string

	DBHost       string
	DBPort       string
	DBUser       string
	DBPassword   string
	DBName       string
	DBSSLMode    string
	DBMaxRetries int

	SeedFile string

	LogLevel  string
	LogFormat string

	RoutingHeuristic string
	DispatchIdleOnly bool

	CORSOrigins []string
}

// Load 读取 .env (如果存在) 后从环境变量构建配置
// 已经存在的环境变量优先于 .env 中的值
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("加载 %s 失败: %w", f, err)
		}
	}

	maxRetries, err := strconv.Atoi(getEnvOrDefault("DB_MAX_RETRIES", "30"))
	if err != nil || maxRetries < 1 {
		return nil, fmt.Errorf("DB_MAX_RETRIES 必须是正整数: %q", os.Getenv("DB_MAX_RETRIES"))
	}

	idleOnly, err := strconv.ParseBool(getEnvOrDefault("DISPATCH_IDLE_ONLY", "false"))
	if err != nil {
		return nil, fmt.Errorf("DISPATCH_IDLE_ONLY 必须是布尔值: %w", err)
	}

	return &Config{
		Port:             getEnvOrDefault("PORT", "5000"),
		DBHost:           getEnvOrDefault("DB_HOST", "localhost"),
		DBPort:           getEnvOrDefault("DB_PORT", "5432"),
		DBUser:           getEnvOrDefault("DB_USER", "dispatch"),
		DBPassword:       getEnvOrDefault("DB_PASSWORD", "dispatch"),
		DBName:           getEnvOrDefault("DB_NAME", "autodispatch"),
		DBSSLMode:        getEnvOrDefault("DB_SSLMODE", "disable"),
		DBMaxRetries:     maxRetries,
		SeedFile:         getEnvOrDefault("SEED_FILE", "map_data.json"),
		LogLevel:         getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:        getEnvOrDefault("LOG_FORMAT", "json"),
		RoutingHeuristic: getEnvOrDefault("ROUTING_HEURISTIC", "manhattan"),
		DispatchIdleOnly: idleOnly,
		CORSOrigins:      splitList(getEnvOrDefault("CORS_ORIGINS", "*")),
	}, nil
}

// DSN 拼接 postgres 连接串
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort, c.DBSSLMode,
	)
}

// Addr 监听地址
func (c *Config) Addr() string {
	return ":" + c.Port
}

// getEnvOrDefault 获取环境变量，如果不存在则返回默认值
func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
