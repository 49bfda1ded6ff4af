package step

import "dropops/internal/domain/step"

type listInput struct {
	AirdropID string `path:"id"`
}

type listOutput struct {
	Body ListResponse
}

type ListResponse struct {
	Steps     []step.Step `json:"steps"`
	Completed int         `json:"completed"`
	Total     int         `json:"total"`
	Percent   int         `json:"percent"`
}

type createInput struct {
	AirdropID string        `path:"id"`
	Body      CreateRequest
}

type CreateRequest struct {
	Titles []string `json:"titles" doc:"Step titles, blank entries are dropped"`
}

type createOutput struct {
	Body []step.Step
}

type updateInput struct {
	ID   string     `path:"id"`
	Body step.Patch
}

type updateOutput struct {
	Body step.Step
}

type deleteInput struct {
	ID string `path:"id"`
}

type deleteOutput struct {
	Body StatusResponse
}

type StatusResponse struct {
	Status string `json:"status"`
}
