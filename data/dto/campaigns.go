package dto

// CreateCampaignRequestBody defines the request body for CreateCampaign service.
type CreateCampaignRequestBody struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	GoalCents   int64  `json:"goal_cents"`
}

// CreateDonationRequestBody defines the request body for CreateDonation service.
type CreateDonationRequestBody struct {
	AmountCents int64 `json:"amount_cents"`
}
