package health

type Input struct{}

type Output struct {
	Body Response
}

// Response: database пустой, если сервер работает без PostgreSQL.
type Response struct {
	Status   string `json:"status" example:"OK" doc:"Server status"`
	Database string `json:"database,omitempty" example:"OK" doc:"Database ping result, omitted for in-memory storage"`
}
