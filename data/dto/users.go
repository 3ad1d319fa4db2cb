package dto

// RegisterUserRequestBody defines the request body for RegisterUser service.
type RegisterUserRequestBody struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ActivateUserRequestBody defines the request body for ActivateUser service.
type ActivateUserRequestBody struct {
	Token string `json:"token"`
}

// UpdateUserRequestBody defines the request body for UpdateUser service.
type UpdateUserRequestBody struct {
	Name      *string `json:"name"`
	Email     *string `json:"email"`
	AvatarURL *string `json:"avatar_url"`
}

// UpdateUserPasswordRequestBody defines the request body for UpdateUserPassword service.
type UpdateUserPasswordRequestBody struct {
	OldPassword     string `json:"old_password"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

// ResetUserPasswordRequestBody defines the request body for ResetUserPassword service.
type ResetUserPasswordRequestBody struct {
	Password string `json:"password"`
	Token    string `json:"token"`
}
