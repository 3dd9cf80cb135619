package task

import (
	"log/slog"

	"github.com/taskmaster/backend/internal/domain/task"
	"github.com/taskmaster/backend/internal/infrastructure/log"
)

// Service 应用服务（用例编排）
// UI 需要的全部边界就是这三个操作：创建、按时刻删除、列举。
type Service struct {
	repo      task.Repository
	validator *task.Service
	events    EventPusher
	logger    *slog.Logger
}

// NewService 创建应用服务
func NewService(repo task.Repository, validator *task.Service, events EventPusher) *Service {
	return &Service{
		repo:      repo,
		validator: validator,
		events:    events,
		logger:    log.NewModuleLogger("task", "service"),
	}
}

// CreateTask 校验输入并创建任务（用例）
// 校验失败返回领域哨兵错误且不触达存储；存储失败原样向上传播。
func (s *Service) CreateTask(dto *CreateTaskDTO) (*TaskDTO, error) {
	parsed, err := s.validator.ParseInput(dto.Detail, dto.DueDate, dto.DueTime)
	if err != nil {
		return nil, err
	}

	if _, err := s.repo.Create(parsed); err != nil {
		return nil, err
	}

	s.pushTasksUpdated()
	return toTaskDTO(parsed), nil
}

// RemoveTask 删除触发时刻与 (date, timeText) 相等的全部任务（用例）
// 按 (日期, 时刻) 批量匹配：同一时刻的多条任务一起删除，
// 返回删除条数。
func (s *Service) RemoveTask(date, timeText string) (int64, error) {
	due, err := s.validator.ParseDue(date, timeText)
	if err != nil {
		return 0, err
	}

	count, err := s.repo.DeleteMatching(due)
	if err != nil {
		return 0, err
	}

	if count > 0 {
		s.pushTasksUpdated()
	}
	return count, nil
}

// ListTasks 按插入顺序列举全部任务（用例）
func (s *Service) ListTasks() ([]*TaskDTO, error) {
	items, err := s.repo.FindAll()
	if err != nil {
		return nil, err
	}

	dtos := make([]*TaskDTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, toTaskDTO(item))
	}
	return dtos, nil
}

// pushTasksUpdated 变更后通知 UI 刷新，失败只记日志
func (s *Service) pushTasksUpdated() {
	if err := s.events.PushTasksUpdated(); err != nil {
		s.logger.Warn("tasks_updated push failed", "error", err)
	}
}

// toTaskDTO 将领域模型转换为 DTO
func toTaskDTO(t *task.Task) *TaskDTO {
	return &TaskDTO{
		ID:      t.ID,
		Detail:  t.Detail,
		DueDate: t.Due.Date,
		DueTime: t.Due.Time,
	}
}
