package services

import (
	"sort"
	"time"

	"github.com/Nehru-cyber/task-manager/internal/models"
)

// Sort modes accepted by SortTasks.
const (
	SortNewest   = "newest"
	SortOldest   = "oldest"
	SortPriority = "priority"
	SortDueDate  = "dueDate"
)

var priorityRank = map[string]int{
	models.PriorityHigh:   0,
	models.PriorityMedium: 1,
	models.PriorityLow:    2,
}

// SortTasks reorders tasks in place. Priority sorts high before medium
// before low; due-date sorts ascending with undated tasks last. Unknown
// modes fall back to newest-first.
func SortTasks(tasks []models.Task, mode string) {
	switch mode {
	case SortOldest:
		sort.SliceStable(tasks, func(i, j int) bool {
			return tasks[i].CreatedAt.Before(tasks[j].CreatedAt)
		})
	case SortPriority:
		sort.SliceStable(tasks, func(i, j int) bool {
			return priorityRank[tasks[i].Priority] < priorityRank[tasks[j].Priority]
		})
	case SortDueDate:
		sort.SliceStable(tasks, func(i, j int) bool {
			a, b := tasks[i].DueDate, tasks[j].DueDate
			if a == nil {
				return false
			}
			if b == nil {
				return true
			}
			// DueDateLayout strings compare in calendar order
			return *a < *b
		})
	default:
		sort.SliceStable(tasks, func(i, j int) bool {
			return tasks[i].CreatedAt.After(tasks[j].CreatedAt)
		})
	}
}

// Overdue reports whether the task's due date is strictly before the start
// of the current day and the task is not completed. Derived only, never
// stored.
func Overdue(t *models.Task, now time.Time) bool {
	if t.DueDate == nil || t.Status == models.StatusCompleted {
		return false
	}
	due, err := time.ParseInLocation(models.DueDateLayout, *t.DueDate, now.Location())
	if err != nil {
		return false
	}
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return due.Before(startOfDay)
}
