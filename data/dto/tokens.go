package dto

// CreateActivationTokenRequestBody defines the request body for CreateActivationToken service.
type CreateActivationTokenRequestBody struct {
	Email string `json:"email"`
}

// CreateAuthenticationTokenRequestBody defines the request body for CreateAuthenticationToken service.
type CreateAuthenticationTokenRequestBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreatePasswordResetTokenRequestBody defines the request body for CreatePasswordResetToken service.
type CreatePasswordResetTokenRequestBody struct {
	Email string `json:"email"`
}
