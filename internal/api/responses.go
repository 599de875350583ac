package api

type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
}

type HealthResponse struct {
	Status  string `json:"status" example:"ok"`
	Classes int    `json:"classes" example:"12"`
}
