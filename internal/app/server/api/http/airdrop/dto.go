package airdrop

import (
	"dropops/internal/domain/airdrop"
	"dropops/internal/domain/step"
)

type listInput struct {
	Status  string `query:"status" enum:"Tracking,Active,Snapshot Taken,Claimed,Dropped" doc:"Filter by status"`
	Network string `query:"network" doc:"Filter by network"`
	Order   string `query:"order" enum:"created_at,name,status,network" doc:"Order column, created_at by default"`
	Desc    bool   `query:"desc" doc:"Descending order"`
	Steps   bool   `query:"steps" doc:"Embed the steps of every airdrop"`
}

type Item struct {
	airdrop.Airdrop
	Steps []step.Step `json:"steps,omitempty"`
}

type listOutput struct {
	Body []Item
}

type AirdropRequest struct {
	SchemaVersion int      `json:"schema_version,omitempty" minimum:"0" maximum:"3"`
	Name          string   `json:"name" maxLength:"120"`
	Network       *string  `json:"network,omitempty"`
	Status        string   `json:"status,omitempty"`
	Notes         *string  `json:"notes,omitempty"`
	Website       *string  `json:"website,omitempty"`
	Funds         *string  `json:"funds,omitempty"`
	EstimatedTGE  *string  `json:"estimated_tge,omitempty"`
	EstimatedVal  *string  `json:"estimated_value,omitempty"`
	TasksSummary  *string  `json:"tasks_summary,omitempty"`
	StartDate     *string  `json:"start_date,omitempty"`
	EndDate       *string  `json:"end_date,omitempty"`
	FarmingPoints *string  `json:"farming_points,omitempty"`
	Steps         []string `json:"steps,omitempty" doc:"Initial step titles, blank entries are dropped"`
}

type createInput struct {
	Body AirdropRequest
}

type createOutput struct {
	Body Item
}

type idInput struct {
	ID string `path:"id"`
}

type findOutput struct {
	Body airdrop.Airdrop
}

type updateInput struct {
	ID   string `path:"id"`
	Body airdrop.Patch
}

type updateOutput struct {
	Body airdrop.Airdrop
}

type deleteOutput struct {
	Body StatusResponse
}

type StatusResponse struct {
	Status string `json:"status"`
}
