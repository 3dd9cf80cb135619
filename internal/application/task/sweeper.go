package task

import (
	"log/slog"
	"sync"
	"time"

	appnotification "github.com/taskmaster/backend/internal/application/notification"
	"github.com/taskmaster/backend/internal/domain/task"
	"github.com/taskmaster/backend/internal/infrastructure/config"
	"github.com/taskmaster/backend/internal/infrastructure/log"
)

// Sweeper 到期任务扫描器
// 周期性地把触发时刻不晚于当前分钟的任务找出来，逐条发出提醒，
// 然后按 (日期, 时刻) 对批量删除。
type Sweeper struct {
	repo   task.Repository
	alerts *appnotification.Service
	events EventPusher

	mu       sync.Mutex
	interval time.Duration
	ticker   *time.Ticker
	stopChan chan struct{}
	running  bool
	wg       sync.WaitGroup

	// now 可注入，测试时固定时钟
	now func() time.Time

	logger *slog.Logger
}

// NewSweeper 创建扫描器
func NewSweeper(
	repo task.Repository,
	alerts *appnotification.Service,
	events EventPusher,
	cfg *config.SchedulerConfig,
) *Sweeper {
	return &Sweeper{
		repo:     repo,
		alerts:   alerts,
		events:   events,
		interval: cfg.CheckInterval,
		now:      time.Now,
		logger:   log.NewModuleLogger("task", "sweeper"),
	}
}

// Start 启动周期扫描
// 启动时立即扫描一次，之后按间隔触发。重复调用无效果。
func (s *Sweeper) Start() {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return
	}
	s.running = true
	s.ticker = time.NewTicker(s.interval)
	s.stopChan = make(chan struct{})
	ticker := s.ticker
	stopChan := s.stopChan
	s.mu.Unlock()

	s.logger.Info("sweeper started", "interval", s.interval.String())

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.sweep()
		for {
			select {
			case <-ticker.C:
				s.sweep()
			case <-stopChan:
				return
			}
		}
	}()
}

// Stop 停止周期扫描，重复调用无效果
// 阻塞到进行中的一轮扫描结束，调用方之后才能安全关闭数据库。
func (s *Sweeper) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	s.ticker.Stop()
	close(s.stopChan)
	s.mu.Unlock()

	s.wg.Wait()
	s.logger.Info("sweeper stopped")
}

// SetInterval 运行时调整扫描间隔（配置热更新入口）
func (s *Sweeper) SetInterval(d time.Duration) {
	if d <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if d == s.interval {
		return
	}
	s.interval = d
	if s.running {
		s.ticker.Reset(d)
	}
	s.logger.Info("sweep interval updated", "interval", d.String())
}

func (s *Sweeper) sweep() {
	fired, err := s.SweepOnce(s.now())
	if err != nil {
		s.logger.Error("sweep failed", "error", err)
		return
	}
	if fired > 0 {
		s.logger.Info("due tasks fired", "count", fired)
	}
}

// SweepOnce 执行一轮扫描
// now 先截断到分钟（秒归零），再与任务触发时刻做阈值比较，
// 错过的时刻会在下一轮补发而不是永远漏掉。返回发出提醒的条数。
func (s *Sweeper) SweepOnce(now time.Time) (int, error) {
	threshold := task.DueAtFromClock(now)

	due, err := s.repo.FindDue(threshold)
	if err != nil {
		return 0, err
	}
	if len(due) == 0 {
		return 0, nil
	}

	// 逐条发提醒；单条失败不中断本轮
	fired := 0
	for _, t := range due {
		if _, err := s.alerts.FireTaskDue(t); err != nil {
			s.logger.Warn("fire alert failed",
				"task_id", t.ID,
				"error", err,
			)
			continue
		}
		fired++
	}

	// 按首次出现顺序收集去重后的 (日期, 时刻) 对，再批量删除
	seen := make(map[task.DueAt]bool, len(due))
	pairs := make([]task.DueAt, 0, len(due))
	for _, t := range due {
		if !seen[t.Due] {
			seen[t.Due] = true
			pairs = append(pairs, t.Due)
		}
	}
	for _, pair := range pairs {
		if _, err := s.repo.DeleteMatching(pair); err != nil {
			s.logger.Error("delete fired tasks failed",
				"due", pair.String(),
				"error", err,
			)
		}
	}

	if err := s.events.PushTasksUpdated(); err != nil {
		s.logger.Warn("tasks_updated push failed", "error", err)
	}

	return fired, nil
}
