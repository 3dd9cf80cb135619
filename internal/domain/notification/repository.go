package notification

// Repository 提醒记录仓储接口
type Repository interface {
	Save(alert *Alert) error
	// FindRecent 按触发时间倒序返回最近的提醒记录
	FindRecent(limit int) ([]*Alert, error)
}
