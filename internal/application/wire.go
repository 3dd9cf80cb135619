package application

import (
	"github.com/google/wire"
	"github.com/taskmaster/backend/internal/application/notification"
	"github.com/taskmaster/backend/internal/application/task"
)

// ProviderSet Application 层总 ProviderSet
var ProviderSet = wire.NewSet(
	notification.ProviderSet,
	task.ProviderSet,
)
