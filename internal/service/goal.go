package service

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/millersjournal/journal/internal/model"
	"github.com/millersjournal/journal/internal/repository"
	"github.com/millersjournal/journal/internal/validation"
)

type GoalService struct {
	repo repository.GoalRepository
}

func NewGoalService(repo repository.GoalRepository) *GoalService {
	return &GoalService{
		repo: repo,
	}
}

func (s *GoalService) Create(goal *model.NewGoal) (*model.Goal, error) {
	err := validation.ValidateNewGoal(goal)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	clean := *goal
	clean.Name = strings.TrimSpace(goal.Name)

	created, err := s.repo.Create(&clean)
	if err != nil {
		slog.Error("failed to create goal", "error", err, "name", clean.Name)
		return nil, fmt.Errorf("%w: %w", ErrCreateFailed, err)
	}

	slog.Info("goal created", "goal_id", created.ID, "count_target", created.CountTarget,
		"start", created.StartDate, "end", created.EndDate)
	return created, nil
}

func (s *GoalService) ByID(goalID int64) (*model.Goal, error) {
	goal, err := s.repo.ByID(goalID)
	if errors.Is(err, repository.ErrGoalNotFound) {
		return nil, nil
	}
	if err != nil {
		slog.Error("goal fetch failed", "error", err, "goal_id", goalID)
		return nil, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}
	return goal, nil
}

// TodayGoal returns the goal an entry written on today belongs to, or nil.
func (s *GoalService) TodayGoal(today string) (*model.GoalRef, error) {
	_, err := model.ParseDateKey(today)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	ref, err := s.repo.ActiveOn(today)
	if errors.Is(err, repository.ErrGoalNotFound) {
		return nil, nil
	}
	if err != nil {
		slog.Error("goal fetch failed", "error", err, "today", today)
		return nil, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}
	return ref, nil
}
