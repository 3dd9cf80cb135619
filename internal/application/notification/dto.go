package notification

// AlertDTO 提醒记录响应
type AlertDTO struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	TaskID    int64  `json:"taskId"`
	CreatedAt string `json:"createdAt"`
}
