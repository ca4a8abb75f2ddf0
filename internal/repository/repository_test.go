package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Nehru-cyber/task-manager/internal/models"
	appErr "github.com/Nehru-cyber/task-manager/pkg/errors"
	"github.com/Nehru-cyber/task-manager/pkg/logger"
)

func TestMain(m *testing.M) {
	if _, err := logger.Init("error", "console"); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tasks.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Task{}))
	return db
}

func TestUserRepositoryEmailLookupIsCaseInsensitive(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	u := models.User{
		UserID:       "user_0011223344556677",
		Email:        "alice@example.com",
		DisplayName:  "alice",
		PasswordHash: "h",
		PasswordSalt: "s",
	}
	require.NoError(t, repo.Create(ctx, &u))

	var found models.User
	require.NoError(t, repo.GetByEmail(ctx, "ALICE@Example.COM", &found))
	assert.Equal(t, u.UserID, found.UserID)

	err := repo.GetByEmail(ctx, "bob@example.com", &found)
	assert.True(t, appErr.IsCode(err, appErr.CodeNotFound))
}

func TestUserRepositoryDuplicateEmailConflicts(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	a := models.User{UserID: "user_aa", Email: "dup@example.com", DisplayName: "a", PasswordHash: "h", PasswordSalt: "s"}
	require.NoError(t, repo.Create(ctx, &a))

	b := models.User{UserID: "user_bb", Email: "dup@example.com", DisplayName: "b", PasswordHash: "h", PasswordSalt: "s"}
	err := repo.Create(ctx, &b)
	assert.True(t, appErr.IsCode(err, appErr.CodeConflict))
}

func TestTaskRepositoryListFilters(t *testing.T) {
	repo := NewTaskRepository(newTestDB(t))
	ctx := context.Background()

	mk := func(title, desc, status, priority string) {
		require.NoError(t, repo.Create(ctx, &models.Task{
			UserID: "user_1", Title: title, Description: desc,
			Status: status, Priority: priority,
		}))
	}
	mk("Buy groceries", "milk and eggs", models.StatusPending, models.PriorityMedium)
	mk("Write report", "quarterly numbers", models.StatusInProgress, models.PriorityHigh)
	mk("Call dentist", "reschedule", models.StatusCompleted, models.PriorityLow)
	// a different user's task must never appear
	require.NoError(t, repo.Create(ctx, &models.Task{
		UserID: "user_2", Title: "Other", Status: models.StatusPending, Priority: models.PriorityLow,
	}))

	all, err := repo.ListByUser(ctx, "user_1", TaskFilters{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	// newest-created first; creation order ties broken by id
	assert.Equal(t, "Call dentist", all[0].Title)
	assert.Equal(t, "Buy groceries", all[2].Title)

	byStatus, err := repo.ListByUser(ctx, "user_1", TaskFilters{Status: models.StatusInProgress})
	require.NoError(t, err)
	require.Len(t, byStatus, 1)
	assert.Equal(t, "Write report", byStatus[0].Title)

	byPriority, err := repo.ListByUser(ctx, "user_1", TaskFilters{Priority: models.PriorityHigh})
	require.NoError(t, err)
	require.Len(t, byPriority, 1)

	search, err := repo.ListByUser(ctx, "user_1", TaskFilters{Search: "QUARTERLY"})
	require.NoError(t, err)
	require.Len(t, search, 1)
	assert.Equal(t, "Write report", search[0].Title)

	searchTitle, err := repo.ListByUser(ctx, "user_1", TaskFilters{Search: "groc"})
	require.NoError(t, err)
	require.Len(t, searchTitle, 1)

	none, err := repo.ListByUser(ctx, "user_1", TaskFilters{Search: "zzz"})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestTaskRepositoryCount(t *testing.T) {
	repo := NewTaskRepository(newTestDB(t))
	ctx := context.Background()

	for _, st := range []string{models.StatusPending, models.StatusPending, models.StatusCompleted} {
		require.NoError(t, repo.Create(ctx, &models.Task{
			UserID: "user_1", Title: "t", Status: st, Priority: models.PriorityMedium,
		}))
	}

	total, err := repo.CountByUser(ctx, "user_1", "")
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)

	pending, err := repo.CountByUser(ctx, "user_1", models.StatusPending)
	require.NoError(t, err)
	assert.EqualValues(t, 2, pending)

	other, err := repo.CountByUser(ctx, "user_9", "")
	require.NoError(t, err)
	assert.EqualValues(t, 0, other)
}

func TestTaskRepositoryDelete(t *testing.T) {
	repo := NewTaskRepository(newTestDB(t))
	ctx := context.Background()

	task := models.Task{UserID: "user_1", Title: "t", Status: models.StatusPending, Priority: models.PriorityMedium}
	require.NoError(t, repo.Create(ctx, &task))

	require.NoError(t, repo.Delete(ctx, task.ID))

	err := repo.Delete(ctx, task.ID)
	assert.True(t, appErr.IsCode(err, appErr.CodeNotFound))

	var dest models.Task
	err = repo.GetByID(ctx, task.ID, &dest)
	assert.True(t, appErr.IsCode(err, appErr.CodeNotFound))
}
