package notification

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskmaster/backend/internal/domain/notification"
)

func TestMemoryRepository_FindRecent(t *testing.T) {
	repo := NewMemoryRepository()

	for i := 1; i <= 3; i++ {
		err := repo.Save(&notification.Alert{
			ID:        fmt.Sprintf("alert-%d", i),
			Title:     "t",
			Message:   fmt.Sprintf("message %d", i),
			CreatedAt: time.Now(),
		})
		require.NoError(t, err)
	}

	recent, err := repo.FindRecent(2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "alert-3", recent[0].ID, "最新的提醒应排在最前")
	assert.Equal(t, "alert-2", recent[1].ID)

	// limit 超过总数时返回全部
	all, err := repo.FindRecent(10)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	// 非正 limit 同样返回全部
	all, err = repo.FindRecent(0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestMemoryRepository_Empty(t *testing.T) {
	repo := NewMemoryRepository()

	recent, err := repo.FindRecent(5)
	require.NoError(t, err)
	assert.Empty(t, recent)
}
