package notification

import (
	"sync"

	"github.com/taskmaster/backend/internal/domain/notification"
)

// MemoryRepository 内存仓储实现
// 提醒记录只在进程存活期间有意义，不落盘。
type MemoryRepository struct {
	mu    sync.RWMutex
	items []*notification.Alert
}

// NewMemoryRepository 创建内存仓储
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

// Save 保存提醒记录
func (r *MemoryRepository) Save(alert *notification.Alert) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, alert)
	return nil
}

// FindRecent 按触发先后倒序返回最近 limit 条记录
func (r *MemoryRepository) FindRecent(limit int) ([]*notification.Alert, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if limit <= 0 || limit > len(r.items) {
		limit = len(r.items)
	}

	result := make([]*notification.Alert, 0, limit)
	for i := len(r.items) - 1; i >= len(r.items)-limit; i-- {
		result = append(result, r.items[i])
	}
	return result, nil
}

// 编译时检查接口实现
var _ notification.Repository = (*MemoryRepository)(nil)
