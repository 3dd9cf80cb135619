package notification

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/taskmaster/backend/internal/domain/notification"
	"github.com/taskmaster/backend/internal/domain/task"
	"github.com/taskmaster/backend/internal/infrastructure/log"
)

// DueTaskTitle 到期提醒的固定标题
const DueTaskTitle = "You Have Pending Task!!!"

// Service 应用服务（用例编排）
type Service struct {
	domainRepo notification.Repository
	domainSvc  *notification.Service
	notifier   Notifier
	pusher     Pusher
	logger     *slog.Logger
}

// NewService 创建应用服务
func NewService(
	domainRepo notification.Repository,
	domainSvc *notification.Service,
	notifier Notifier,
	pusher Pusher,
) *Service {
	return &Service{
		domainRepo: domainRepo,
		domainSvc:  domainSvc,
		notifier:   notifier,
		pusher:     pusher,
		logger:     log.NewModuleLogger("notification", "service"),
	}
}

// FireTaskDue 为一条到期任务发出提醒（用例）
// 桌面投递与 UI 推送都是尽力而为：失败只记日志，调用方据此
// 继续删除任务，不因投递失败回滚。
func (s *Service) FireTaskDue(t *task.Task) (*AlertDTO, error) {
	// 1. 创建领域实体
	alert := &notification.Alert{
		ID:        uuid.New().String(),
		Title:     DueTaskTitle,
		Message:   t.Detail,
		TaskID:    t.ID,
		CreatedAt: time.Now(),
	}

	// 2. 使用领域服务验证
	if err := s.domainSvc.Validate(alert); err != nil {
		return nil, err
	}

	// 3. 保存到仓储
	if err := s.domainRepo.Save(alert); err != nil {
		return nil, err
	}

	// 4. 桌面通知（技术能力，失败不回滚）
	if err := s.notifier.Notify(alert.Title, alert.Message); err != nil {
		s.logger.Warn("desktop notification failed",
			"task_id", t.ID,
			"error", err,
		)
	}

	// 5. 推送到已连接的 UI
	if err := s.pusher.PushAlert(alert); err != nil {
		s.logger.Warn("alert push failed",
			"task_id", t.ID,
			"error", err,
		)
	}

	// 6. 返回 DTO
	return toDTO(alert), nil
}

// RecentAlerts 最近的提醒记录
func (s *Service) RecentAlerts(limit int) ([]*AlertDTO, error) {
	alerts, err := s.domainRepo.FindRecent(limit)
	if err != nil {
		return nil, err
	}

	dtos := make([]*AlertDTO, 0, len(alerts))
	for _, alert := range alerts {
		dtos = append(dtos, toDTO(alert))
	}
	return dtos, nil
}

// toDTO 转换为 DTO
func toDTO(a *notification.Alert) *AlertDTO {
	return &AlertDTO{
		ID:        a.ID,
		Title:     a.Title,
		Message:   a.Message,
		TaskID:    a.TaskID,
		CreatedAt: a.CreatedAt.Format(time.RFC3339),
	}
}
