package task

import "github.com/google/wire"

// ProviderSet 任务领域层 ProviderSet
var ProviderSet = wire.NewSet(
	NewService,
)
