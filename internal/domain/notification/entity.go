package notification

import "time"

// Alert 一次已触发的提醒
type Alert struct {
	ID        string
	Title     string
	Message   string
	TaskID    int64 // 触发该提醒的任务 ID
	CreatedAt time.Time
}
