package repository

import (
	"context"
	"strings"

	"github.com/Nehru-cyber/task-manager/internal/models"
	appErr "github.com/Nehru-cyber/task-manager/pkg/errors"
	"gorm.io/gorm"
)

// TaskFilters narrows a task listing. Zero values mean "no filter".
type TaskFilters struct {
	Status   string
	Priority string
	// Search is matched case-insensitively as a substring of title or
	// description.
	Search string
}

type TaskRepository interface {
	Create(ctx context.Context, task *models.Task) error
	GetByID(ctx context.Context, id uint, dest *models.Task) error
	Update(ctx context.Context, task *models.Task) error
	Delete(ctx context.Context, id uint) error
	ListByUser(ctx context.Context, userID string, filters TaskFilters) ([]models.Task, error)
	CountByUser(ctx context.Context, userID string, status string) (int64, error)
}

type taskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &taskRepository{db: db}
}

func (r *taskRepository) Create(ctx context.Context, task *models.Task) error {
	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		return appErr.Wrap(err, appErr.CodeInternal, "create task failed")
	}
	return nil
}

func (r *taskRepository) GetByID(ctx context.Context, id uint, dest *models.Task) error {
	if err := r.db.WithContext(ctx).First(dest, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return appErr.New(appErr.CodeNotFound, "task not found")
		}
		return appErr.Wrap(err, appErr.CodeInternal, "get task failed")
	}
	return nil
}

func (r *taskRepository) Update(ctx context.Context, task *models.Task) error {
	if err := r.db.WithContext(ctx).Save(task).Error; err != nil {
		return appErr.Wrap(err, appErr.CodeInternal, "update task failed")
	}
	return nil
}

func (r *taskRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Task{}, "id = ?", id)
	if res.Error != nil {
		return appErr.Wrap(res.Error, appErr.CodeInternal, "delete task failed")
	}
	if res.RowsAffected == 0 {
		return appErr.New(appErr.CodeNotFound, "task not found")
	}
	return nil
}

func (r *taskRepository) ListByUser(ctx context.Context, userID string, filters TaskFilters) ([]models.Task, error) {
	q := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if filters.Status != "" {
		q = q.Where("status = ?", filters.Status)
	}
	if filters.Priority != "" {
		q = q.Where("priority = ?", filters.Priority)
	}
	if filters.Search != "" {
		pattern := "%" + strings.ToLower(filters.Search) + "%"
		q = q.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}

	tasks := []models.Task{}
	if err := q.Order("created_at DESC, id DESC").Find(&tasks).Error; err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "list tasks failed")
	}
	return tasks, nil
}

func (r *taskRepository) CountByUser(ctx context.Context, userID string, status string) (int64, error) {
	q := r.db.WithContext(ctx).Model(&models.Task{}).Where("user_id = ?", userID)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var n int64
	if err := q.Count(&n).Error; err != nil {
		return 0, appErr.Wrap(err, appErr.CodeInternal, "count tasks failed")
	}
	return n, nil
}
