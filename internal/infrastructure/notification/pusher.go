package notification

import (
	appnotification "github.com/taskmaster/backend/internal/application/notification"
	apptask "github.com/taskmaster/backend/internal/application/task"
	domainnotification "github.com/taskmaster/backend/internal/domain/notification"
	"github.com/taskmaster/backend/internal/infrastructure/websocket"
)

// WebSocket 消息类型
const (
	eventAlert        = "alert"
	eventTasksUpdated = "tasks_updated"
)

// wsEvent 推送到 UI 的事件信封
type wsEvent struct {
	Type string      `json:"type"`
	Data interface{} `json:"data,omitempty"`
}

// WebSocketPusher WebSocket 推送实现
type WebSocketPusher struct {
	hub *websocket.Hub
}

// NewWebSocketPusher 创建 WebSocket 推送器
func NewWebSocketPusher(hub *websocket.Hub) *WebSocketPusher {
	return &WebSocketPusher{hub: hub}
}

// PushAlert 推送提醒事件
func (p *WebSocketPusher) PushAlert(alert *domainnotification.Alert) error {
	return p.hub.Broadcast(&wsEvent{Type: eventAlert, Data: alert})
}

// PushTasksUpdated 推送任务列表变更事件，UI 收到后重新拉取列表
func (p *WebSocketPusher) PushTasksUpdated() error {
	return p.hub.Broadcast(&wsEvent{Type: eventTasksUpdated})
}

// 编译时检查接口实现
var (
	_ appnotification.Pusher = (*WebSocketPusher)(nil)
	_ apptask.EventPusher    = (*WebSocketPusher)(nil)
)
