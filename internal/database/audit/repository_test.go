package audit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/postboard/postboard/internal/entities"
)

func setupTestDB(t *testing.T) *Repository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.AuthEvent{}))
	return NewRepository(db)
}

func TestRepository_LogEvent(t *testing.T) {
	repo := setupTestDB(t)

	event := &entities.AuthEvent{
		AccountID: 1,
		EventType: entities.AuthEventLogin,
		Status:    entities.AuthEventStatusSuccess,
	}
	require.NoError(t, repo.LogEvent(event))

	assert.NotZero(t, event.ID)
	assert.False(t, event.CreatedAt.IsZero(), "CreatedAt should be filled in")
}

func TestRepository_GetEvents(t *testing.T) {
	repo := setupTestDB(t)

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.LogEvent(&entities.AuthEvent{
			AccountID: 1,
			EventType: entities.AuthEventLogin,
			Status:    entities.AuthEventStatusSuccess,
		}))
	}
	require.NoError(t, repo.LogEvent(&entities.AuthEvent{
		AccountID: 2,
		EventType: entities.AuthEventSignup,
		Status:    entities.AuthEventStatusSuccess,
	}))

	events, total, err := repo.GetEvents(1, 50, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Len(t, events, 3)

	// accountID 0 returns everything
	events, total, err = repo.GetEvents(0, 50, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 4, total)
	assert.Len(t, events, 4)
}

func TestRepository_GetEventsByType(t *testing.T) {
	repo := setupTestDB(t)

	require.NoError(t, repo.LogEvent(&entities.AuthEvent{
		AccountID: 1,
		EventType: entities.AuthEventLogin,
		Status:    entities.AuthEventStatusFailed,
	}))
	require.NoError(t, repo.LogEvent(&entities.AuthEvent{
		EventType: entities.AuthEventTokenRejected,
		Status:    entities.AuthEventStatusFailed,
	}))

	events, total, err := repo.GetEventsByType(entities.AuthEventTokenRejected, 0, 50, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, events, 1)
	assert.Equal(t, entities.AuthEventTokenRejected, events[0].EventType)
}

func TestRepository_DeleteOldEvents(t *testing.T) {
	repo := setupTestDB(t)

	old := &entities.AuthEvent{
		AccountID: 1,
		EventType: entities.AuthEventLogin,
		Status:    entities.AuthEventStatusSuccess,
		CreatedAt: time.Now().Add(-60 * 24 * time.Hour),
	}
	recent := &entities.AuthEvent{
		AccountID: 1,
		EventType: entities.AuthEventLogin,
		Status:    entities.AuthEventStatusSuccess,
	}
	require.NoError(t, repo.LogEvent(old))
	require.NoError(t, repo.LogEvent(recent))

	deleted, err := repo.DeleteOldEvents(time.Now().Add(-30 * 24 * time.Hour))
	require.NoError(t, err)
	assert.EqualValues(t, 1, deleted)

	_, total, err := repo.GetEvents(0, 50, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
}
