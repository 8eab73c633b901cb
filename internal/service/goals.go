package service

import (
	"context"
	"time"

	"github.com/wealthvault/backend/internal/db"
	"github.com/wealthvault/backend/internal/model"
)

// GoalStore is the persistence surface for savings goals.
type GoalStore interface {
	CreateGoal(ctx context.Context, userID int64, title string, targetAmount, savedAmount float64, deadline *time.Time) (*model.Goal, error)
	ListGoalsByUser(ctx context.Context, userID int64) ([]model.Goal, error)
	GetGoal(ctx context.Context, goalID int64) (*model.Goal, error)
	GetGoalForUser(ctx context.Context, goalID, userID int64) (*model.Goal, error)
	UpdateGoal(ctx context.Context, goal *model.Goal) error
	DeleteGoal(ctx context.Context, goalID int64) (bool, error)
	DeleteGoalForUser(ctx context.Context, goalID, userID int64) (bool, error)
}

// UserDirectory extends UserStore with the listing the admin endpoints
// need.
type UserDirectory interface {
	UserStore
	ListUsers(ctx context.Context) ([]model.User, error)
}

type GoalService struct {
	goals GoalStore
	users UserDirectory
}

func NewGoalService(goals GoalStore, users UserDirectory) *GoalService {
	return &GoalService{goals: goals, users: users}
}

func (s *GoalService) Create(ctx context.Context, userID int64, req model.GoalCreateRequest) (*model.Goal, error) {
	return s.goals.CreateGoal(ctx, userID, req.Title, req.TargetAmount, req.SavedAmount, req.Deadline)
}

func (s *GoalService) List(ctx context.Context, userID int64) ([]model.Goal, error) {
	return s.goals.ListGoalsByUser(ctx, userID)
}

// Update applies a partial update to a goal owned by the user. Reaching
// the target amount marks the goal completed.
func (s *GoalService) Update(ctx context.Context, userID, goalID int64, req model.GoalUpdateRequest) (*model.Goal, error) {
	goal, err := s.goals.GetGoalForUser(ctx, goalID, userID)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	applyGoalPatch(goal, req)
	if goal.SavedAmount >= goal.TargetAmount {
		goal.IsCompleted = true
	}

	if err := s.goals.UpdateGoal(ctx, goal); err != nil {
		return nil, err
	}
	return goal, nil
}

func (s *GoalService) Delete(ctx context.Context, userID, goalID int64) error {
	deleted, err := s.goals.DeleteGoalForUser(ctx, goalID, userID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

// Admin operations act across users; ownership is not checked, only
// existence. Callers must already have passed the admin gate.

func (s *GoalService) AdminListUsers(ctx context.Context) ([]model.User, error) {
	return s.users.ListUsers(ctx)
}

func (s *GoalService) AdminListGoals(ctx context.Context, userID int64) ([]model.Goal, error) {
	if err := s.ensureUser(ctx, userID); err != nil {
		return nil, err
	}
	return s.goals.ListGoalsByUser(ctx, userID)
}

func (s *GoalService) AdminCreateGoal(ctx context.Context, userID int64, req model.GoalCreateRequest) (*model.Goal, error) {
	if err := s.ensureUser(ctx, userID); err != nil {
		return nil, err
	}
	return s.goals.CreateGoal(ctx, userID, req.Title, req.TargetAmount, req.SavedAmount, req.Deadline)
}

func (s *GoalService) AdminUpdateGoal(ctx context.Context, goalID int64, req model.GoalUpdateRequest) (*model.Goal, error) {
	goal, err := s.goals.GetGoal(ctx, goalID)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	applyGoalPatch(goal, req)

	if err := s.goals.UpdateGoal(ctx, goal); err != nil {
		return nil, err
	}
	return goal, nil
}

func (s *GoalService) AdminDeleteGoal(ctx context.Context, goalID int64) error {
	deleted, err := s.goals.DeleteGoal(ctx, goalID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

func (s *GoalService) ensureUser(ctx context.Context, userID int64) error {
	_, err := s.users.FindUserByID(ctx, userID)
	if err != nil {
		if db.IsNoRows(err) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func applyGoalPatch(goal *model.Goal, req model.GoalUpdateRequest) {
	if req.Title != nil {
		goal.Title = *req.Title
	}
	if req.TargetAmount != nil {
		goal.TargetAmount = *req.TargetAmount
	}
	if req.SavedAmount != nil {
		goal.SavedAmount = *req.SavedAmount
	}
	if req.Deadline != nil {
		goal.Deadline = req.Deadline
	}
	if req.IsCompleted != nil {
		goal.IsCompleted = *req.IsCompleted
	}
}
