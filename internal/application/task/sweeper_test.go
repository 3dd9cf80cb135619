package task

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	appnotification "github.com/taskmaster/backend/internal/application/notification"
	"github.com/taskmaster/backend/internal/domain/notification"
	"github.com/taskmaster/backend/internal/domain/task"
	"github.com/taskmaster/backend/internal/infrastructure/config"
)

// memAlertRepo 按插入顺序保存提醒
type memAlertRepo struct {
	items []*notification.Alert
}

func (r *memAlertRepo) Save(alert *notification.Alert) error {
	r.items = append(r.items, alert)
	return nil
}

func (r *memAlertRepo) FindRecent(limit int) ([]*notification.Alert, error) {
	return r.items, nil
}

// memNotifier 记录桌面投递
type memNotifier struct {
	messages []string
}

func (n *memNotifier) Notify(title, message string) error {
	n.messages = append(n.messages, message)
	return nil
}

// memAlertPusher 丢弃 UI 推送
type memAlertPusher struct{}

func (p *memAlertPusher) PushAlert(alert *notification.Alert) error {
	return nil
}

type sweeperFixture struct {
	sweeper  *Sweeper
	repo     *memTaskRepo
	notifier *memNotifier
	events   *memEventPusher
}

func newSweeperFixture() *sweeperFixture {
	repo := &memTaskRepo{}
	notifier := &memNotifier{}
	events := &memEventPusher{}
	alerts := appnotification.NewService(
		&memAlertRepo{},
		notification.NewService(),
		notifier,
		&memAlertPusher{},
	)
	sweeper := NewSweeper(repo, alerts, events, &config.SchedulerConfig{
		CheckInterval: 60 * time.Second,
	})
	return &sweeperFixture{
		sweeper:  sweeper,
		repo:     repo,
		notifier: notifier,
		events:   events,
	}
}

func (f *sweeperFixture) addTask(t *testing.T, detail, date string, hour, minute int) {
	t.Helper()
	_, err := f.repo.Create(&task.Task{
		Detail: detail,
		Due:    task.NewDueAt(date, hour, minute),
	})
	require.NoError(t, err)
}

func TestSweepOnce_FiresAndRemovesDueTask(t *testing.T) {
	f := newSweeperFixture()
	f.addTask(t, "Buy milk", "2024-05-01", 9, 30)

	now := time.Date(2024, 5, 1, 9, 30, 42, 0, time.Local)
	fired, err := f.sweeper.SweepOnce(now)
	require.NoError(t, err)

	assert.Equal(t, 1, fired)
	require.Len(t, f.notifier.messages, 1)
	assert.Equal(t, "Buy milk", f.notifier.messages[0])
	assert.Empty(t, f.repo.items, "已触发的任务应被删除")
	assert.Equal(t, 1, f.events.pushed)
}

func TestSweepOnce_FutureTaskUntouched(t *testing.T) {
	f := newSweeperFixture()
	f.addTask(t, "later", "2024-05-01", 9, 31)

	now := time.Date(2024, 5, 1, 9, 30, 59, 0, time.Local)
	fired, err := f.sweeper.SweepOnce(now)
	require.NoError(t, err)

	assert.Zero(t, fired)
	assert.Empty(t, f.notifier.messages)
	assert.Len(t, f.repo.items, 1, "未到期的任务应保留")
}

func TestSweepOnce_OverdueTaskCaughtUp(t *testing.T) {
	f := newSweeperFixture()
	// 守护进程停机期间错过的时刻，下一轮应补发
	f.addTask(t, "missed", "2024-04-30", 23, 0)

	now := time.Date(2024, 5, 1, 9, 30, 0, 0, time.Local)
	fired, err := f.sweeper.SweepOnce(now)
	require.NoError(t, err)

	assert.Equal(t, 1, fired)
	assert.Empty(t, f.repo.items)
}

func TestSweepOnce_DuplicatesAllFiredAndRemoved(t *testing.T) {
	f := newSweeperFixture()
	f.addTask(t, "first copy", "2024-05-01", 9, 30)
	f.addTask(t, "second copy", "2024-05-01", 9, 30)
	f.addTask(t, "keep", "2024-05-02", 9, 30)

	now := time.Date(2024, 5, 1, 9, 30, 0, 0, time.Local)
	fired, err := f.sweeper.SweepOnce(now)
	require.NoError(t, err)

	assert.Equal(t, 2, fired, "同一时刻的每条任务都应单独提醒")
	assert.Len(t, f.notifier.messages, 2)
	require.Len(t, f.repo.items, 1)
	assert.Equal(t, "keep", f.repo.items[0].Detail)
}

func TestSweepOnce_EmptyStore(t *testing.T) {
	f := newSweeperFixture()

	fired, err := f.sweeper.SweepOnce(time.Now())
	require.NoError(t, err)
	assert.Zero(t, fired)
	assert.Zero(t, f.events.pushed, "空扫描不推送事件")
}

func TestSweeper_StartStop(t *testing.T) {
	f := newSweeperFixture()

	f.sweeper.Start()
	f.sweeper.Start() // 重复启动无效果
	time.Sleep(20 * time.Millisecond)
	f.sweeper.Stop()
	f.sweeper.Stop() // 重复停止无效果
}

// blockingTaskRepo 在 FindDue 上阻塞，用于制造进行中的扫描
type blockingTaskRepo struct {
	memTaskRepo
	entered chan struct{}
	release chan struct{}
	once    sync.Once
}

func (r *blockingTaskRepo) FindDue(threshold task.DueAt) ([]*task.Task, error) {
	r.once.Do(func() { close(r.entered) })
	<-r.release
	return nil, nil
}

func TestSweeper_StopWaitsForInFlightSweep(t *testing.T) {
	repo := &blockingTaskRepo{
		entered: make(chan struct{}),
		release: make(chan struct{}),
	}
	events := &memEventPusher{}
	alerts := appnotification.NewService(
		&memAlertRepo{},
		notification.NewService(),
		&memNotifier{},
		&memAlertPusher{},
	)
	sweeper := NewSweeper(repo, alerts, events, &config.SchedulerConfig{
		CheckInterval: 60 * time.Second,
	})

	sweeper.Start()
	<-repo.entered

	stopped := make(chan struct{})
	go func() {
		sweeper.Stop()
		close(stopped)
	}()

	// 扫描仍在进行时 Stop 不应返回
	select {
	case <-stopped:
		t.Fatal("Stop 应等待本轮扫描结束")
	case <-time.After(50 * time.Millisecond):
	}

	close(repo.release)
	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("扫描结束后 Stop 未返回")
	}
}

func TestSweeper_SetInterval(t *testing.T) {
	f := newSweeperFixture()

	f.sweeper.SetInterval(5 * time.Second)
	assert.Equal(t, 5*time.Second, f.sweeper.interval)

	f.sweeper.SetInterval(0)
	assert.Equal(t, 5*time.Second, f.sweeper.interval, "非正间隔应被忽略")

	f.sweeper.Start()
	defer f.sweeper.Stop()
	f.sweeper.SetInterval(10 * time.Second)
	assert.Equal(t, 10*time.Second, f.sweeper.interval)
}
