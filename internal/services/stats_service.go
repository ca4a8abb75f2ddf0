package services

import (
	"context"
	"math"

	"github.com/Nehru-cyber/task-manager/internal/models"
	"github.com/Nehru-cyber/task-manager/internal/repository"
)

// TaskStats aggregates a user's task counts. CompletionRate is a rounded
// percentage, 0 when the user has no tasks.
type TaskStats struct {
	Total          int64 `json:"total"`
	Completed      int64 `json:"completed"`
	Pending        int64 `json:"pending"`
	InProgress     int64 `json:"inProgress"`
	CompletionRate int   `json:"completionRate"`
}

type StatsService interface {
	Stats(ctx context.Context, userID string) (*TaskStats, error)
}

type statsService struct {
	tasks repository.TaskRepository
}

func NewStatsService(tasks repository.TaskRepository) StatsService {
	return &statsService{tasks: tasks}
}

var _ StatsService = (*statsService)(nil)

// Stats recomputes the counts on every call; nothing is cached.
func (s *statsService) Stats(ctx context.Context, userID string) (*TaskStats, error) {
	total, err := s.tasks.CountByUser(ctx, userID, "")
	if err != nil {
		return nil, err
	}
	completed, err := s.tasks.CountByUser(ctx, userID, models.StatusCompleted)
	if err != nil {
		return nil, err
	}
	pending, err := s.tasks.CountByUser(ctx, userID, models.StatusPending)
	if err != nil {
		return nil, err
	}
	inProgress, err := s.tasks.CountByUser(ctx, userID, models.StatusInProgress)
	if err != nil {
		return nil, err
	}

	st := &TaskStats{
		Total:      total,
		Completed:  completed,
		Pending:    pending,
		InProgress: inProgress,
	}
	if total > 0 {
		st.CompletionRate = int(math.Round(float64(completed) / float64(total) * 100))
	}
	return st, nil
}
