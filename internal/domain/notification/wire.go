package notification

import "github.com/google/wire"

// ProviderSet 提醒领域层 ProviderSet
var ProviderSet = wire.NewSet(
	NewService,
)
