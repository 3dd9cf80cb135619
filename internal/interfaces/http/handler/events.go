package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	gorilla "github.com/gorilla/websocket"
	"github.com/taskmaster/backend/internal/infrastructure/config"
	"github.com/taskmaster/backend/internal/infrastructure/log"
	"github.com/taskmaster/backend/internal/infrastructure/websocket"
)

// EventsHandler UI 事件订阅处理器
// UI 通过 /ws 建立连接后只接收广播，不上行业务消息。
type EventsHandler struct {
	hub      *websocket.Hub
	upgrader gorilla.Upgrader
	logger   *slog.Logger
}

// NewEventsHandler 创建事件订阅处理器
func NewEventsHandler(hub *websocket.Hub, cfg *config.WebSocketConfig) *EventsHandler {
	return &EventsHandler{
		hub: hub,
		upgrader: gorilla.Upgrader{
			ReadBufferSize:  cfg.ReadBufferSize,
			WriteBufferSize: cfg.WriteBufferSize,
			CheckOrigin: func(r *http.Request) bool {
				return true // 仅监听回环地址，本机 UI 均可连接
			},
		},
		logger: log.NewModuleLogger("http", "events_handler"),
	}
}

// Serve 升级为 WebSocket 连接并开始推送
func (h *EventsHandler) Serve(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error("failed to upgrade connection", "error", err)
		return
	}

	client := &websocket.Connection{
		Send: make(chan []byte, 256),
	}
	h.hub.Register(client)

	go h.writePump(conn, client)
	go h.readPump(conn, client)
}

// writePump 将广播写入连接，Send 关闭或写失败即结束
func (h *EventsHandler) writePump(conn *gorilla.Conn, client *websocket.Connection) {
	defer conn.Close()

	for data := range client.Send {
		if err := conn.WriteMessage(gorilla.TextMessage, data); err != nil {
			h.logger.Debug("client write failed", "error", err)
			return
		}
	}

	// Hub 注销时关闭 Send，通知 UI 正常关闭
	_ = conn.WriteMessage(gorilla.CloseMessage,
		gorilla.FormatCloseMessage(gorilla.CloseNormalClosure, ""))
}

// readPump 丢弃上行消息，只用读取错误感知断连
func (h *EventsHandler) readPump(conn *gorilla.Conn, client *websocket.Connection) {
	defer func() {
		h.hub.Unregister(client)
		conn.Close()
	}()

	conn.SetReadLimit(1024)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if gorilla.IsUnexpectedCloseError(err, gorilla.CloseGoingAway, gorilla.CloseNormalClosure) {
				h.logger.Debug("client read error", "error", err)
			}
			return
		}
	}
}
