package model

import "time"

type Goal struct {
	ID           int64      `json:"id"`
	UserID       int64      `json:"user_id"`
	Title        string     `json:"title"`
	TargetAmount float64    `json:"target_amount"`
	SavedAmount  float64    `json:"saved_amount"`
	Deadline     *time.Time `json:"deadline"`
	IsCompleted  bool       `json:"is_completed"`
	CreatedAt    time.Time  `json:"created_at"`
}

type GoalCreateRequest struct {
	Title        string     `json:"title" binding:"required,min=1,max=200"`
	TargetAmount float64    `json:"target_amount" binding:"required,gt=0"`
	SavedAmount  float64    `json:"saved_amount" binding:"gte=0"`
	Deadline     *time.Time `json:"deadline"`
}

// GoalUpdateRequest uses pointers so PATCH can distinguish absent fields
// from zero values.
type GoalUpdateRequest struct {
	Title        *string    `json:"title" binding:"omitempty,min=1,max=200"`
	TargetAmount *float64   `json:"target_amount" binding:"omitempty,gt=0"`
	SavedAmount  *float64   `json:"saved_amount" binding:"omitempty,gte=0"`
	Deadline     *time.Time `json:"deadline"`
	IsCompleted  *bool      `json:"is_completed"`
}
