package notification

import "errors"

var (
	// ErrInvalidTitle 无效的标题
	ErrInvalidTitle = errors.New("invalid title")
	// ErrInvalidMessage 无效的内容
	ErrInvalidMessage = errors.New("invalid message")
)

// Service 领域服务（纯业务逻辑）
type Service struct {
	// 不依赖任何基础设施，只依赖领域概念
}

// NewService 创建领域服务
func NewService() *Service {
	return &Service{}
}

// Validate 验证提醒内容（领域规则）
func (s *Service) Validate(a *Alert) error {
	if a.Title == "" {
		return ErrInvalidTitle
	}
	if a.Message == "" {
		return ErrInvalidMessage
	}
	return nil
}
