package dto

// CreateApplicationRequestBody defines the request body for CreateApplication service.
type CreateApplicationRequestBody struct {
	Message     string `json:"message"`
	HomeDetails string `json:"home_details"`
}

// ReviewApplicationRequestBody defines the request body for ReviewApplication service.
type ReviewApplicationRequestBody struct {
	Status string `json:"status"`
}
