package task

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskmaster/backend/internal/domain/task"
)

// memTaskRepo 内存任务仓储，按插入顺序保存
type memTaskRepo struct {
	items  []*task.Task
	nextID int64
}

func (r *memTaskRepo) Create(t *task.Task) (int64, error) {
	r.nextID++
	t.ID = r.nextID
	clone := *t
	r.items = append(r.items, &clone)
	return t.ID, nil
}

func (r *memTaskRepo) FindAll() ([]*task.Task, error) {
	result := make([]*task.Task, len(r.items))
	copy(result, r.items)
	return result, nil
}

func (r *memTaskRepo) FindDue(threshold task.DueAt) ([]*task.Task, error) {
	var result []*task.Task
	for _, t := range r.items {
		if !t.Due.After(threshold) {
			result = append(result, t)
		}
	}
	return result, nil
}

func (r *memTaskRepo) DeleteMatching(due task.DueAt) (int64, error) {
	var kept []*task.Task
	var removed int64
	for _, t := range r.items {
		if t.Due == due {
			removed++
			continue
		}
		kept = append(kept, t)
	}
	r.items = kept
	return removed, nil
}

// memEventPusher 记录 UI 刷新事件次数
type memEventPusher struct {
	pushed int
}

func (p *memEventPusher) PushTasksUpdated() error {
	p.pushed++
	return nil
}

func newTestService() (*Service, *memTaskRepo, *memEventPusher) {
	repo := &memTaskRepo{}
	events := &memEventPusher{}
	return NewService(repo, task.NewService(), events), repo, events
}

func TestCreateTask(t *testing.T) {
	svc, repo, events := newTestService()

	dto, err := svc.CreateTask(&CreateTaskDTO{
		Detail:  "  Buy milk  ",
		DueDate: "2024-05-01",
		DueTime: "9:30",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), dto.ID)
	assert.Equal(t, "Buy milk", dto.Detail, "首尾空白应被去除")
	assert.Equal(t, "2024-05-01", dto.DueDate)
	assert.Equal(t, "09:30:00", dto.DueTime, "时分应补零且秒归零")
	assert.Len(t, repo.items, 1)
	assert.Equal(t, 1, events.pushed, "创建后应推送刷新事件")
}

func TestCreateTask_ValidationFailureSkipsStore(t *testing.T) {
	svc, repo, events := newTestService()

	cases := []struct {
		name string
		dto  CreateTaskDTO
		want error
	}{
		{"空描述", CreateTaskDTO{Detail: "   ", DueDate: "2024-05-01", DueTime: "09:30"}, task.ErrEmptyDetail},
		{"非法日期", CreateTaskDTO{Detail: "x", DueDate: "2024/05/01", DueTime: "09:30"}, task.ErrBadDateFormat},
		{"非法时间", CreateTaskDTO{Detail: "x", DueDate: "2024-05-01", DueTime: "0930"}, task.ErrBadTimeFormat},
		{"小时越界", CreateTaskDTO{Detail: "x", DueDate: "2024-05-01", DueTime: "24:00"}, task.ErrHourOutOfRange},
		{"分钟越界", CreateTaskDTO{Detail: "x", DueDate: "2024-05-01", DueTime: "12:60"}, task.ErrMinuteOutOfRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateTask(&tc.dto)
			assert.ErrorIs(t, err, tc.want)
		})
	}

	assert.Empty(t, repo.items, "校验失败不应触达存储")
	assert.Zero(t, events.pushed, "校验失败不应推送事件")
}

func TestRemoveTask_DeletesAllMatching(t *testing.T) {
	svc, _, events := newTestService()

	for _, detail := range []string{"a", "b"} {
		_, err := svc.CreateTask(&CreateTaskDTO{
			Detail: detail, DueDate: "2024-05-01", DueTime: "09:30",
		})
		require.NoError(t, err)
	}
	_, err := svc.CreateTask(&CreateTaskDTO{
		Detail: "keep", DueDate: "2024-05-01", DueTime: "10:00",
	})
	require.NoError(t, err)
	events.pushed = 0

	count, err := svc.RemoveTask("2024-05-01", "09:30")
	require.NoError(t, err)
	assert.Equal(t, int64(2), count, "同一时刻的任务应一起删除")
	assert.Equal(t, 1, events.pushed)

	left, err := svc.ListTasks()
	require.NoError(t, err)
	require.Len(t, left, 1)
	assert.Equal(t, "keep", left[0].Detail)
}

func TestRemoveTask_NoMatch(t *testing.T) {
	svc, _, events := newTestService()

	count, err := svc.RemoveTask("2024-05-01", "09:30")
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Zero(t, events.pushed, "无删除时不推送事件")
}

func TestRemoveTask_BadInput(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.RemoveTask("bad", "09:30")
	assert.ErrorIs(t, err, task.ErrBadDateFormat)

	_, err = svc.RemoveTask("2024-05-01", "9am")
	assert.ErrorIs(t, err, task.ErrBadTimeFormat)
}

func TestListTasks_InsertionOrder(t *testing.T) {
	svc, _, _ := newTestService()

	for _, detail := range []string{"first", "second", "third"} {
		_, err := svc.CreateTask(&CreateTaskDTO{
			Detail: detail, DueDate: "2024-05-01", DueTime: "09:30",
		})
		require.NoError(t, err)
	}

	items, err := svc.ListTasks()
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "first", items[0].Detail)
	assert.Equal(t, "third", items[2].Detail)
}
