package watcher

import "github.com/google/wire"

// ProviderSet 配置监听基础设施层 ProviderSet
var ProviderSet = wire.NewSet(
	NewConfigWatcher,
)
