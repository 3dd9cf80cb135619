package task

import (
	"fmt"
	"time"
)

// 存储与比较使用的固定格式
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04:05"
)

// Task 提醒任务实体
type Task struct {
	ID     int64  // 存储分配的自增标识，调用方不得自行设置
	Detail string // 任务描述，去除首尾空白后非空
	Due    DueAt  // 触发时刻
}

// DueAt 提醒触发时刻（分钟精度）
// Date 为 2006-01-02，Time 为 15:04:05 且秒恒为 00。
// 两个字段均为定宽格式，字符串比较即时间先后比较。
type DueAt struct {
	Date string
	Time string
}

// NewDueAt 由日期和时分构造触发时刻，秒归零
func NewDueAt(date string, hour, minute int) DueAt {
	return DueAt{
		Date: date,
		Time: fmt.Sprintf("%02d:%02d:00", hour, minute),
	}
}

// DueAtFromClock 将墙钟时间截断到分钟
func DueAtFromClock(now time.Time) DueAt {
	return DueAt{
		Date: now.Format(DateLayout),
		Time: now.Format("15:04") + ":00",
	}
}

// Before 判断是否早于另一时刻
func (d DueAt) Before(other DueAt) bool {
	if d.Date != other.Date {
		return d.Date < other.Date
	}
	return d.Time < other.Time
}

// After 判断是否晚于另一时刻
func (d DueAt) After(other DueAt) bool {
	return other.Before(d)
}

// String 人类可读形式，用于日志
func (d DueAt) String() string {
	return d.Date + " " + d.Time
}
