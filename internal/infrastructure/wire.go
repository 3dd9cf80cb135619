package infrastructure

import (
	"github.com/google/wire"
	"github.com/taskmaster/backend/internal/infrastructure/config"
	"github.com/taskmaster/backend/internal/infrastructure/notification"
	"github.com/taskmaster/backend/internal/infrastructure/storage"
	"github.com/taskmaster/backend/internal/infrastructure/watcher"
	"github.com/taskmaster/backend/internal/infrastructure/websocket"
)

// ProviderSet Infrastructure 层总 ProviderSet
var ProviderSet = wire.NewSet(
	config.ProviderSet,
	websocket.ProviderSet,
	notification.ProviderSet,
	storage.ProviderSet,
	watcher.ProviderSet,
)
