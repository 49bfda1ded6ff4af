package task

import "dropops/internal/domain/task"

type listInput struct {
	AirdropID string `query:"airdrop_id" doc:"Only tasks of this airdrop"`
	Scope     string `query:"scope" enum:"all,daily" default:"all" doc:"daily keeps tasks without an airdrop"`
}

type listOutput struct {
	Body ListResponse
}

type ListResponse struct {
	Tasks     []task.Task `json:"tasks"`
	Completed int         `json:"completed"`
	Total     int         `json:"total"`
	Percent   int         `json:"percent"`
}

type CreateRequest struct {
	Title       string  `json:"title" minLength:"1"`
	Type        string  `json:"type,omitempty" enum:"Daily,Weekly,One-time"`
	AirdropID   *string `json:"airdrop_id,omitempty"`
	IsCompleted bool    `json:"is_completed,omitempty"`
}

type createInput struct {
	Body CreateRequest
}

type taskOutput struct {
	Body task.Task
}

type updateInput struct {
	ID   string     `path:"id"`
	Body task.Patch
}

type idInput struct {
	ID string `path:"id"`
}

type deleteOutput struct {
	Body StatusResponse
}

type StatusResponse struct {
	Status string `json:"status"`
}
