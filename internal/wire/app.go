package wire

import (
	"database/sql"

	"log/slog"

	apptask "github.com/taskmaster/backend/internal/application/task"
	applog "github.com/taskmaster/backend/internal/infrastructure/log"
	"github.com/taskmaster/backend/internal/infrastructure/watcher"
	"github.com/taskmaster/backend/internal/infrastructure/websocket"
	"github.com/taskmaster/backend/internal/interfaces"
)

// App 应用主结构，组合所有服务
type App struct {
	HTTPServer    *interfaces.HTTPServer
	wsHub         *websocket.Hub
	sweeper       *apptask.Sweeper
	configWatcher *watcher.ConfigWatcher
	db            *sql.DB
	logger        *slog.Logger
}

// NewApp 创建应用实例
func NewApp(
	httpServer *interfaces.HTTPServer,
	wsHub *websocket.Hub,
	sweeper *apptask.Sweeper,
	configWatcher *watcher.ConfigWatcher,
	db *sql.DB,
) *App {
	return &App{
		HTTPServer:    httpServer,
		wsHub:         wsHub,
		sweeper:       sweeper,
		configWatcher: configWatcher,
		db:            db,
		logger:        applog.NewModuleLogger("app", "main"),
	}
}

// Start 启动所有服务
func (a *App) Start() error {
	a.logger.Info("Starting taskmaster daemon")

	// 启动 WebSocket Hub
	a.wsHub.Start()

	// 启动到期扫描器
	a.sweeper.Start()

	// 启动配置文件监听
	if err := a.configWatcher.Start(); err != nil {
		a.logger.Error("Failed to start config watcher",
			"error", err,
		)
	}

	// 启动 HTTP 服务器（goroutine）
	go func() {
		if err := a.HTTPServer.Start(); err != nil {
			a.logger.Error("Failed to start HTTP server",
				"error", err,
			)
		}
	}()

	a.logger.Info("Taskmaster daemon started successfully")

	return nil
}

// Stop 停止所有服务
func (a *App) Stop() error {
	a.logger.Info("Stopping taskmaster daemon")

	// 停止配置文件监听
	a.configWatcher.Stop()

	// 停止到期扫描器
	a.sweeper.Stop()

	if err := a.HTTPServer.Stop(); err != nil {
		a.logger.Error("Failed to stop HTTP server",
			"error", err,
		)
		return err
	}

	// 关闭数据库连接
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.logger.Error("Failed to close database connection",
				"error", err,
			)
			return err
		}
	}

	a.logger.Info("Taskmaster daemon stopped successfully")

	return nil
}
