package notification

import (
	"github.com/gen2brain/beeep"
	appnotification "github.com/taskmaster/backend/internal/application/notification"
)

// DesktopNotifier 系统桌面通知实现
type DesktopNotifier struct {
	appIcon string
}

// NewDesktopNotifier 创建桌面通知器
func NewDesktopNotifier() *DesktopNotifier {
	return &DesktopNotifier{}
}

// Notify 投递一条系统桌面通知
func (n *DesktopNotifier) Notify(title, message string) error {
	return beeep.Notify(title, message, n.appIcon)
}

// 编译时检查接口实现
var _ appnotification.Notifier = (*DesktopNotifier)(nil)
