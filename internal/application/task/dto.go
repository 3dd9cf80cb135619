package task

// CreateTaskDTO 创建任务请求
// DueTime 为用户原始输入的 HH:MM 文本，校验在领域层完成。
// Detail 不加 required：空描述由领域规则拒绝，保证空字符串
// 与纯空白得到同一个错误码。
type CreateTaskDTO struct {
	Detail  string `json:"detail"`
	DueDate string `json:"dueDate" binding:"required"`
	DueTime string `json:"dueTime" binding:"required"`
}

// TaskDTO 任务响应
type TaskDTO struct {
	ID      int64  `json:"id"`
	Detail  string `json:"detail"`
	DueDate string `json:"dueDate"` // 2006-01-02
	DueTime string `json:"dueTime"` // 15:04:05，秒恒为 00
}
