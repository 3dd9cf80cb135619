//go:build wireinject
// +build wireinject

package wire

import (
	"github.com/google/wire"
	"github.com/taskmaster/backend/internal/application"
	appNotification "github.com/taskmaster/backend/internal/application/notification"
	appTask "github.com/taskmaster/backend/internal/application/task"
	domainNotification "github.com/taskmaster/backend/internal/domain/notification"
	domainTask "github.com/taskmaster/backend/internal/domain/task"
	"github.com/taskmaster/backend/internal/infrastructure"
	infraNotification "github.com/taskmaster/backend/internal/infrastructure/notification"
	"github.com/taskmaster/backend/internal/infrastructure/watcher"
	"github.com/taskmaster/backend/internal/interfaces"
)

// InitializeAll 初始化所有服务
func InitializeAll() (*App, error) {
	wire.Build(
		// 按层组合 ProviderSet
		infrastructure.ProviderSet, // 基础设施层
		domainTask.ProviderSet,     // 领域层
		domainNotification.ProviderSet,
		application.ProviderSet, // 应用层
		interfaces.ProviderSet,  // 接口层
		// 接口绑定
		wire.Bind(
			new(appNotification.Notifier),
			new(*infraNotification.DesktopNotifier),
		),
		wire.Bind(
			new(appNotification.Pusher),
			new(*infraNotification.WebSocketPusher),
		),
		wire.Bind(
			new(appTask.EventPusher),
			new(*infraNotification.WebSocketPusher),
		),
		wire.Bind(
			new(domainNotification.Repository),
			new(*infraNotification.MemoryRepository),
		),
		wire.Bind(
			new(watcher.IntervalUpdater),
			new(*appTask.Sweeper),
		),
		NewApp, // 组合所有服务的应用结构
	)
	return nil, nil
}
