package notification

import "github.com/taskmaster/backend/internal/domain/notification"

// Notifier 桌面通知投递接口（定义在 application 层）
// 这是应用层需要的技术能力，不是领域概念。投递是尽力而为的：
// 失败由调用方记录日志，不会向上传播。
type Notifier interface {
	Notify(title, message string) error
}

// Pusher 推送接口（UI 刷新通道）
type Pusher interface {
	PushAlert(alert *notification.Alert) error
}
