package storage

import (
	"database/sql"
	"fmt"

	"github.com/taskmaster/backend/internal/domain/task"
)

// taskRepository 任务 SQLite 仓储实现
type taskRepository struct {
	db *sql.DB
}

// NewTaskRepository 创建任务仓储实例
func NewTaskRepository(db *sql.DB) (task.Repository, error) {
	if err := initTaskTable(db); err != nil {
		return nil, fmt.Errorf("failed to init tasks table: %w", err)
	}
	return &taskRepository{db: db}, nil
}

// initTaskTable 初始化任务表
// 自增主键 + 描述 + 日期文本 + 时间文本，定宽文本可直接比较先后。
func initTaskTable(db *sql.DB) error {
	createTableSQL := `
	CREATE TABLE IF NOT EXISTS tasks (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		detail TEXT NOT NULL,
		due_date TEXT NOT NULL,
		due_time TEXT NOT NULL
	);`

	if _, err := db.Exec(createTableSQL); err != nil {
		return fmt.Errorf("failed to create tasks table: %w", err)
	}

	// 创建索引：到期匹配与批量删除都按 (due_date, due_time) 查询
	createIndexSQL := `
	CREATE INDEX IF NOT EXISTS idx_tasks_due ON tasks(due_date, due_time);`

	if _, err := db.Exec(createIndexSQL); err != nil {
		return fmt.Errorf("failed to create tasks index: %w", err)
	}

	return nil
}

// Create 插入任务并返回生成的自增 ID
func (r *taskRepository) Create(t *task.Task) (int64, error) {
	query := `
		INSERT INTO tasks (detail, due_date, due_time)
		VALUES (?, ?, ?)`

	result, err := r.db.Exec(query, t.Detail, t.Due.Date, t.Due.Time)
	if err != nil {
		return 0, fmt.Errorf("failed to insert task: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read generated task id: %w", err)
	}

	t.ID = id
	return id, nil
}

// FindAll 获取全部任务，按插入顺序
func (r *taskRepository) FindAll() ([]*task.Task, error) {
	query := `
		SELECT id, detail, due_date, due_time
		FROM tasks
		ORDER BY id ASC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer rows.Close()

	return scanTasks(rows)
}

// FindDue 获取触发时刻不晚于 due 的任务
// 阈值匹配：错过的分钟在下一次检查时仍会触发。
func (r *taskRepository) FindDue(due task.DueAt) ([]*task.Task, error) {
	query := `
		SELECT id, detail, due_date, due_time
		FROM tasks
		WHERE due_date < ? OR (due_date = ? AND due_time <= ?)
		ORDER BY id ASC`

	rows, err := r.db.Query(query, due.Date, due.Date, due.Time)
	if err != nil {
		return nil, fmt.Errorf("failed to query due tasks: %w", err)
	}
	defer rows.Close()

	return scanTasks(rows)
}

// DeleteMatching 删除触发时刻完全相等的全部任务
func (r *taskRepository) DeleteMatching(due task.DueAt) (int64, error) {
	query := `DELETE FROM tasks WHERE due_date = ? AND due_time = ?`

	result, err := r.db.Exec(query, due.Date, due.Time)
	if err != nil {
		return 0, fmt.Errorf("failed to delete matching tasks: %w", err)
	}
	return result.RowsAffected()
}

// scanTasks 读取查询结果集
func scanTasks(rows *sql.Rows) ([]*task.Task, error) {
	var tasks []*task.Task
	for rows.Next() {
		var t task.Task
		if err := rows.Scan(&t.ID, &t.Detail, &t.Due.Date, &t.Due.Time); err != nil {
			return nil, fmt.Errorf("failed to scan task row: %w", err)
		}
		tasks = append(tasks, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate task rows: %w", err)
	}
	return tasks, nil
}

// 编译时检查接口实现
var _ task.Repository = (*taskRepository)(nil)
