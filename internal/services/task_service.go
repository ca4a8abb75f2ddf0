package services

import (
	"context"
	"strings"
	"time"

	"github.com/Nehru-cyber/task-manager/internal/models"
	"github.com/Nehru-cyber/task-manager/internal/repository"
	appErr "github.com/Nehru-cyber/task-manager/pkg/errors"
	"github.com/Nehru-cyber/task-manager/pkg/logger"
	"go.uber.org/zap"
)

type CreateTaskInput struct {
	UserID      string
	Title       string
	Description string
	Priority    string
	Status      string
	DueDate     *string
}

// UpdateTaskInput carries every mutable field. Updates are full-replace:
// fields the caller leaves blank are written as-is, not defaulted.
type UpdateTaskInput struct {
	Title       string
	Description string
	Priority    string
	Status      string
	DueDate     *string
}

type TaskService interface {
	Create(ctx context.Context, in *CreateTaskInput) (*models.Task, error)
	Update(ctx context.Context, id uint, in *UpdateTaskInput) (*models.Task, error)
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, userID string, filters repository.TaskFilters) ([]models.Task, error)
}

type taskService struct {
	tasks repository.TaskRepository
}

func NewTaskService(tasks repository.TaskRepository) TaskService {
	return &taskService{tasks: tasks}
}

var _ TaskService = (*taskService)(nil)

func (s *taskService) Create(ctx context.Context, in *CreateTaskInput) (*models.Task, error) {
	if strings.TrimSpace(in.UserID) == "" {
		return nil, appErr.New(appErr.CodeInvalid, "user_id is required")
	}
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, appErr.New(appErr.CodeInvalid, "title is required")
	}

	priority := in.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}
	if !models.ValidPriority(priority) {
		return nil, appErr.New(appErr.CodeInvalid, "invalid priority")
	}

	status := in.Status
	if status == "" {
		status = models.StatusPending
	}
	if !models.ValidStatus(status) {
		return nil, appErr.New(appErr.CodeInvalid, "invalid status")
	}

	dueDate, err := normalizeDueDate(in.DueDate)
	if err != nil {
		return nil, err
	}

	t := models.Task{
		UserID:      in.UserID,
		Title:       title,
		Description: in.Description,
		Priority:    priority,
		Status:      status,
		DueDate:     dueDate,
	}
	if err := s.tasks.Create(ctx, &t); err != nil {
		return nil, err
	}

	logger.L().Info("task created", zap.Uint("task_id", t.ID), zap.String("user_id", t.UserID))
	return &t, nil
}

// Update replaces every mutable field of the task and refreshes updated_at.
func (s *taskService) Update(ctx context.Context, id uint, in *UpdateTaskInput) (*models.Task, error) {
	var t models.Task
	if err := s.tasks.GetByID(ctx, id, &t); err != nil {
		return nil, err
	}

	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, appErr.New(appErr.CodeInvalid, "title is required")
	}
	if in.Priority != "" && !models.ValidPriority(in.Priority) {
		return nil, appErr.New(appErr.CodeInvalid, "invalid priority")
	}
	if in.Status != "" && !models.ValidStatus(in.Status) {
		return nil, appErr.New(appErr.CodeInvalid, "invalid status")
	}
	dueDate, err := normalizeDueDate(in.DueDate)
	if err != nil {
		return nil, err
	}

	t.Title = title
	t.Description = in.Description
	t.Priority = in.Priority
	t.Status = in.Status
	t.DueDate = dueDate
	t.UpdatedAt = time.Now()

	if err := s.tasks.Update(ctx, &t); err != nil {
		return nil, err
	}

	logger.L().Info("task updated", zap.Uint("task_id", t.ID), zap.String("user_id", t.UserID))
	return &t, nil
}

func (s *taskService) Delete(ctx context.Context, id uint) error {
	if err := s.tasks.Delete(ctx, id); err != nil {
		return err
	}
	logger.L().Info("task deleted", zap.Uint("task_id", id))
	return nil
}

func (s *taskService) List(ctx context.Context, userID string, filters repository.TaskFilters) ([]models.Task, error) {
	return s.tasks.ListByUser(ctx, userID, filters)
}

func normalizeDueDate(d *string) (*string, error) {
	if d == nil || *d == "" {
		return nil, nil
	}
	if _, err := time.Parse(models.DueDateLayout, *d); err != nil {
		return nil, appErr.New(appErr.CodeInvalid, "due_date must be YYYY-MM-DD")
	}
	v := *d
	return &v, nil
}
