package notification

import "github.com/google/wire"

// ProviderSet 提醒应用层 ProviderSet
var ProviderSet = wire.NewSet(
	NewService,
)
