package db

import (
	"context"
	"time"

	"github.com/wealthvault/backend/internal/model"
)

func (db *Postgres) CreateGoal(ctx context.Context, userID int64, title string, targetAmount, savedAmount float64, deadline *time.Time) (*model.Goal, error) {
	query := `
		INSERT INTO goals (user_id, title, target_amount, saved_amount, deadline, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, user_id, title, target_amount, saved_amount, deadline, is_completed, created_at
	`
	var goal model.Goal
	err := db.Pool.QueryRow(ctx, query, userID, title, targetAmount, savedAmount, deadline).Scan(
		&goal.ID,
		&goal.UserID,
		&goal.Title,
		&goal.TargetAmount,
		&goal.SavedAmount,
		&goal.Deadline,
		&goal.IsCompleted,
		&goal.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &goal, nil
}

func (db *Postgres) ListGoalsByUser(ctx context.Context, userID int64) ([]model.Goal, error) {
	query := `
		SELECT id, user_id, title, target_amount, saved_amount, deadline, is_completed, created_at
		FROM goals
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	rows, err := db.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var goals []model.Goal
	for rows.Next() {
		var goal model.Goal
		if err := rows.Scan(
			&goal.ID,
			&goal.UserID,
			&goal.Title,
			&goal.TargetAmount,
			&goal.SavedAmount,
			&goal.Deadline,
			&goal.IsCompleted,
			&goal.CreatedAt,
		); err != nil {
			return nil, err
		}
		goals = append(goals, goal)
	}

	if goals == nil {
		goals = []model.Goal{}
	}
	return goals, rows.Err()
}

func (db *Postgres) GetGoal(ctx context.Context, goalID int64) (*model.Goal, error) {
	query := `
		SELECT id, user_id, title, target_amount, saved_amount, deadline, is_completed, created_at
		FROM goals
		WHERE id = $1
	`
	return db.scanGoal(ctx, query, goalID)
}

func (db *Postgres) GetGoalForUser(ctx context.Context, goalID, userID int64) (*model.Goal, error) {
	query := `
		SELECT id, user_id, title, target_amount, saved_amount, deadline, is_completed, created_at
		FROM goals
		WHERE id = $1 AND user_id = $2
	`
	return db.scanGoal(ctx, query, goalID, userID)
}

func (db *Postgres) UpdateGoal(ctx context.Context, goal *model.Goal) error {
	query := `
		UPDATE goals
		SET title = $2, target_amount = $3, saved_amount = $4, deadline = $5, is_completed = $6
		WHERE id = $1
	`
	_, err := db.Pool.Exec(ctx, query,
		goal.ID,
		goal.Title,
		goal.TargetAmount,
		goal.SavedAmount,
		goal.Deadline,
		goal.IsCompleted,
	)
	return err
}

func (db *Postgres) DeleteGoal(ctx context.Context, goalID int64) (bool, error) {
	tag, err := db.Pool.Exec(ctx, `DELETE FROM goals WHERE id = $1`, goalID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (db *Postgres) DeleteGoalForUser(ctx context.Context, goalID, userID int64) (bool, error) {
	tag, err := db.Pool.Exec(ctx, `DELETE FROM goals WHERE id = $1 AND user_id = $2`, goalID, userID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (db *Postgres) scanGoal(ctx context.Context, query string, args ...any) (*model.Goal, error) {
	var goal model.Goal
	err := db.Pool.QueryRow(ctx, query, args...).Scan(
		&goal.ID,
		&goal.UserID,
		&goal.Title,
		&goal.TargetAmount,
		&goal.SavedAmount,
		&goal.Deadline,
		&goal.IsCompleted,
		&goal.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &goal, nil
}
