package config

import (
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// EnvHTTPPort HTTP 端口环境变量名
	EnvHTTPPort = "TASKMASTER_HTTP_PORT"
	// EnvCheckInterval 到期检查间隔环境变量名
	EnvCheckInterval = "TASKMASTER_CHECK_INTERVAL"
	// ConfigFileName 配置文件名（位于数据目录下）
	ConfigFileName = "config.yaml"
)

// Config 应用配置
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
	WebSocket WebSocketConfig `yaml:"websocket"`
}

// ServerConfig 服务器配置
type ServerConfig struct {
	// HTTPPort 监听地址，用于单例锁
	// 默认绑定 127.0.0.1，守护进程只面向本机 UI。
	HTTPPort string `yaml:"http_port"`
}

// DatabaseConfig 数据库配置
type DatabaseConfig struct {
	// Path 数据库文件路径，留空表示使用数据目录下的 taskmaster.db
	Path string `yaml:"path"`
}

// SchedulerConfig 到期检查调度配置
type SchedulerConfig struct {
	// CheckInterval 检查周期，默认 60s
	CheckInterval time.Duration `yaml:"check_interval"`
}

// WebSocketConfig WebSocket 配置
type WebSocketConfig struct {
	ReadBufferSize  int `yaml:"read_buffer_size"`
	WriteBufferSize int `yaml:"write_buffer_size"`
}

// NewConfig 创建配置
// 默认值 ← 配置文件（如存在）← 环境变量，后者覆盖前者。
func NewConfig() *Config {
	cfg := &Config{
		Server: ServerConfig{
			HTTPPort: "127.0.0.1:19970",
		},
		Database: DatabaseConfig{
			Path: "",
		},
		Scheduler: SchedulerConfig{
			CheckInterval: 60 * time.Second,
		},
		WebSocket: WebSocketConfig{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}

	// 配置文件可选，读取失败时保持默认值
	if data, err := os.ReadFile(ConfigFilePath()); err == nil {
		_ = yaml.Unmarshal(data, cfg)
	}

	if port := os.Getenv(EnvHTTPPort); port != "" {
		cfg.Server.HTTPPort = port
	}
	if interval := os.Getenv(EnvCheckInterval); interval != "" {
		if d, err := time.ParseDuration(interval); err == nil && d > 0 {
			cfg.Scheduler.CheckInterval = d
		}
	}

	return cfg
}

// ConfigFilePath 配置文件完整路径
func ConfigFilePath() string {
	return filepath.Join(GetDataDir(), ConfigFileName)
}

// NewServerConfig 创建服务器配置
func NewServerConfig(cfg *Config) *ServerConfig {
	return &cfg.Server
}

// NewDatabaseConfig 创建数据库配置
func NewDatabaseConfig(cfg *Config) *DatabaseConfig {
	return &cfg.Database
}

// NewSchedulerConfig 创建调度配置
func NewSchedulerConfig(cfg *Config) *SchedulerConfig {
	return &cfg.Scheduler
}

// NewWebSocketConfig 创建 WebSocket 配置
func NewWebSocketConfig(cfg *Config) *WebSocketConfig {
	return &cfg.WebSocket
}
