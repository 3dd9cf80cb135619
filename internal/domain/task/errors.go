package task

import "errors"

var (
	// ErrEmptyDetail 任务描述为空或仅含空白
	ErrEmptyDetail = errors.New("task detail is empty")
	// ErrBadDateFormat 日期不符合 2006-01-02 格式
	ErrBadDateFormat = errors.New("date must match YYYY-MM-DD")
	// ErrBadTimeFormat 时间不符合 HH:MM 格式
	ErrBadTimeFormat = errors.New("time must match HH:MM")
	// ErrHourOutOfRange 小时超出 [0,23]
	ErrHourOutOfRange = errors.New("hour must be between 00 and 23")
	// ErrMinuteOutOfRange 分钟超出 [0,59]
	ErrMinuteOutOfRange = errors.New("minute must be between 00 and 59")
)
