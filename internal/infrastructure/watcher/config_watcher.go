package watcher

import (
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/taskmaster/backend/internal/infrastructure/config"
	"github.com/taskmaster/backend/internal/infrastructure/log"
)

// IntervalUpdater 扫描间隔热更新入口
type IntervalUpdater interface {
	SetInterval(d time.Duration)
}

// ConfigWatcher 配置文件监听器
// 监听数据目录下的 config.yaml，变更后重新加载配置并把
// 新的检查间隔下发给扫描器。编辑器普遍是写临时文件再改名，
// 所以监听目录而不是文件本身。
type ConfigWatcher struct {
	updater IntervalUpdater
	watcher *fsnotify.Watcher
	logger  *slog.Logger

	// 防抖相关
	debounceDelay time.Duration
	debounceTimer *time.Timer
	debounceMu    sync.Mutex

	// 控制
	stopCh chan struct{}
	wg     sync.WaitGroup
}

// NewConfigWatcher 创建配置文件监听器
func NewConfigWatcher(updater IntervalUpdater) (*ConfigWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &ConfigWatcher{
		updater:       updater,
		watcher:       watcher,
		logger:        log.NewModuleLogger("watcher", "config_watcher"),
		debounceDelay: 500 * time.Millisecond,
		stopCh:        make(chan struct{}),
	}, nil
}

// Start 启动监听
func (cw *ConfigWatcher) Start() error {
	dataDir := config.GetDataDir()
	if err := cw.watcher.Add(dataDir); err != nil {
		return err
	}

	cw.logger.Info("Starting config watcher", "data_dir", dataDir)

	cw.wg.Add(1)
	go cw.watchLoop()

	return nil
}

// Stop 停止监听
func (cw *ConfigWatcher) Stop() {
	cw.logger.Info("Stopping config watcher")

	close(cw.stopCh)
	cw.watcher.Close()
	cw.wg.Wait()

	cw.debounceMu.Lock()
	if cw.debounceTimer != nil {
		cw.debounceTimer.Stop()
	}
	cw.debounceMu.Unlock()
}

// watchLoop 事件监听循环
func (cw *ConfigWatcher) watchLoop() {
	defer cw.wg.Done()

	for {
		select {
		case <-cw.stopCh:
			return

		case event, ok := <-cw.watcher.Events:
			if !ok {
				return
			}
			cw.handleFsEvent(event)

		case err, ok := <-cw.watcher.Errors:
			if !ok {
				return
			}
			cw.logger.Error("Watcher error", "error", err)
		}
	}
}

// handleFsEvent 处理文件系统事件（带防抖）
func (cw *ConfigWatcher) handleFsEvent(event fsnotify.Event) {
	if filepath.Base(event.Name) != config.ConfigFileName {
		return
	}
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) && !event.Has(fsnotify.Rename) {
		return
	}

	cw.debounceMu.Lock()
	defer cw.debounceMu.Unlock()

	if cw.debounceTimer != nil {
		cw.debounceTimer.Stop()
	}
	cw.debounceTimer = time.AfterFunc(cw.debounceDelay, cw.reload)
}

// reload 重新加载配置并下发检查间隔
func (cw *ConfigWatcher) reload() {
	cfg := config.NewConfig()
	cw.updater.SetInterval(cfg.Scheduler.CheckInterval)

	cw.logger.Info("Config reloaded",
		"check_interval", cfg.Scheduler.CheckInterval.String(),
	)
}
