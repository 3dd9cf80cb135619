package task

import "github.com/google/wire"

// ProviderSet 任务应用层 ProviderSet
var ProviderSet = wire.NewSet(
	NewService,
	NewSweeper,
)
