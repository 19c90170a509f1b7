package dto

import "time"

type CreateTodoRequest struct {
	Title       string `json:"title" binding:"required,min=1,max=200"`
	Description string `json:"description" binding:"required,max=1000"`
	Status      string `json:"status" binding:"omitempty,oneof=pending in_progress completed"`
	Priority    string `json:"priority" binding:"omitempty,oneof=low medium high"`
}

// Pointer fields: nil = leave as is, value = set.
type UpdateTodoRequest struct {
	Title       *string `json:"title" binding:"omitempty,min=1,max=200"`
	Description *string `json:"description" binding:"omitempty,max=1000"`
	Status      *string `json:"status" binding:"omitempty,oneof=pending in_progress completed"`
	Priority    *string `json:"priority" binding:"omitempty,oneof=low medium high"`
}

type TodoResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	Priority    string    `json:"priority"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ListTodosResponse struct {
	Items []TodoResponse `json:"items"`
	Count int            `json:"count"`
}

type DeleteTodoResponse struct {
	Deleted string `json:"deleted"`
}
