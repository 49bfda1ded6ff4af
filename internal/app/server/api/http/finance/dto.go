package finance

import "dropops/internal/domain/finance"

type listInput struct {
	AirdropID string `query:"airdrop_id" doc:"Only entries of this airdrop"`
}

type listOutput struct {
	Body []finance.Entry
}

type CreateRequest struct {
	AirdropID string  `json:"airdrop_id" minLength:"1"`
	CostType  string  `json:"cost_type" enum:"Gas Fee,Other,Claimed Reward"`
	Amount    float64 `json:"amount" exclusiveMinimum:"0"`
}

type createInput struct {
	Body CreateRequest
}

type createOutput struct {
	Body finance.Entry
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

type summaryOutput struct {
	Body finance.Report
}
