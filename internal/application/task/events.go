package task

// EventPusher 任务列表变更事件推送接口（定义在 application 层）
// UI 收到事件后通过列表接口重新拉取全量快照，守护进程不向
// UI 推送增量状态。
type EventPusher interface {
	PushTasksUpdated() error
}
