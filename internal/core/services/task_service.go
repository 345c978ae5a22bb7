package services

import (
	"context"

	"github.com/focusflow/focusflow-engine/internal/core/domain"
)

type TaskService struct {
	repo  domain.TaskRepository
	users domain.UserRepository
}

func NewTaskService(repo domain.TaskRepository, users domain.UserRepository) *TaskService {
	return &TaskService{
		repo:  repo,
		users: users,
	}
}

type CreateTaskInput struct {
	UserID      string
	Title       string
	Description string
	Date        string
}

func (s *TaskService) Create(ctx context.Context, input CreateTaskInput) (*domain.Task, error) {
	task, err := domain.NewTask(input.UserID, input.Title, input.Description, input.Date)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, task); err != nil {
		return nil, err
	}

	return task, nil
}

func (s *TaskService) ListByUser(ctx context.Context, userID, date string) ([]*domain.Task, error) {
	return s.repo.ListByUser(ctx, userID, date)
}

// SetCompleted toggles a task's completed flag. Completing a task
// awards XP once per transition to completed.
func (s *TaskService) SetCompleted(ctx context.Context, id, userID string, completed bool) (*domain.Task, error) {
	task, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if task.UserID != userID {
		return nil, domain.ErrTaskNotFound
	}

	wasCompleted := task.Completed
	task.SetCompleted(completed)

	if err := s.repo.Update(ctx, task); err != nil {
		return nil, err
	}

	if completed && !wasCompleted {
		if err := awardXP(ctx, s.users, userID, XPTaskCompleted); err != nil {
			return nil, err
		}
	}

	return task, nil
}

func (s *TaskService) Delete(ctx context.Context, id, userID string) error {
	task, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if task.UserID != userID {
		return domain.ErrTaskNotFound
	}

	return s.repo.Delete(ctx, id)
}
