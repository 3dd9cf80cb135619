package task

import (
	"strconv"
	"strings"
	"time"
)

// Service 领域服务（纯校验逻辑）
// 不依赖任何基础设施，校验失败不产生副作用。
type Service struct{}

// NewService 创建领域服务
func NewService() *Service {
	return &Service{}
}

// ParseInput 将用户原始输入校验为待创建的任务
// 校验顺序：描述非空 → 日期格式 → 时间格式（恰好 HH:MM 两段）→
// 小时范围 → 分钟范围。返回的任务不含 ID，由仓储在创建时分配。
func (s *Service) ParseInput(detail, date, timeText string) (*Task, error) {
	detail = strings.TrimSpace(detail)
	if detail == "" {
		return nil, ErrEmptyDetail
	}

	if _, err := time.Parse(DateLayout, date); err != nil {
		return nil, ErrBadDateFormat
	}

	hour, minute, err := parseClock(timeText, false)
	if err != nil {
		return nil, err
	}

	return &Task{
		Detail: detail,
		Due:    NewDueAt(date, hour, minute),
	}, nil
}

// ParseDue 将 (日期, 时间) 对校验为触发时刻
// 用于按时刻删除的路径：时间除 HH:MM 外也接受列表展示用的
// HH:MM:SS 形式，秒一律归零。
func (s *Service) ParseDue(date, timeText string) (DueAt, error) {
	if _, err := time.Parse(DateLayout, date); err != nil {
		return DueAt{}, ErrBadDateFormat
	}

	hour, minute, err := parseClock(timeText, true)
	if err != nil {
		return DueAt{}, err
	}

	return NewDueAt(date, hour, minute), nil
}

// parseClock 解析 HH:MM 文本，allowSeconds 时额外接受 HH:MM:SS
func parseClock(timeText string, allowSeconds bool) (hour, minute int, err error) {
	parts := strings.Split(timeText, ":")
	if len(parts) != 2 {
		if !allowSeconds || len(parts) != 3 {
			return 0, 0, ErrBadTimeFormat
		}
		if _, convErr := strconv.Atoi(parts[2]); convErr != nil {
			return 0, 0, ErrBadTimeFormat
		}
	}

	hour, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, ErrBadTimeFormat
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, ErrBadTimeFormat
	}

	if hour < 0 || hour > 23 {
		return 0, 0, ErrHourOutOfRange
	}
	if minute < 0 || minute > 59 {
		return 0, 0, ErrMinuteOutOfRange
	}

	return hour, minute, nil
}
