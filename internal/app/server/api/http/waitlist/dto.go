package waitlist

import "dropops/internal/domain/waitlist"

type listOutput struct {
	Body []waitlist.Item
}

type CreateRequest struct {
	ProjectName string  `json:"project_name" minLength:"1"`
	Date        *string `json:"date,omitempty" doc:"YYYY-MM-DD"`
	ItemType    string  `json:"item_type,omitempty" enum:"project,nft"`
}

type createInput struct {
	Body CreateRequest
}

type itemOutput struct {
	Body waitlist.Item
}

type updateInput struct {
	ID   string         `path:"id"`
	Body waitlist.Patch
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
