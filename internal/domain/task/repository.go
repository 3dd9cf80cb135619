package task

// Repository 任务仓储接口
type Repository interface {
	// Create 插入任务并返回存储生成的自增 ID
	// 不做唯一性约束，允许 (描述, 日期, 时间) 完全相同的任务并存。
	Create(t *Task) (int64, error)

	// FindAll 获取全部任务，按 ID 升序（即插入顺序）
	// 每次调用返回新的快照。
	FindAll() ([]*Task, error)

	// FindDue 获取触发时刻不晚于 due 的全部任务，按 ID 升序
	FindDue(due DueAt) ([]*Task, error)

	// DeleteMatching 删除触发时刻与 due 完全相等的全部任务
	// 按 (日期, 时间) 批量匹配：同一时刻的多条任务一起删除。
	// 返回删除条数，无匹配时为 0。
	DeleteMatching(due DueAt) (int64, error)
}
