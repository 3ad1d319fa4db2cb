package dto

// CreatePostRequestBody defines the request body for CreatePost service.
type CreatePostRequestBody struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// UpdatePostRequestBody defines the request body for UpdatePost service.
type UpdatePostRequestBody struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

// VotePostRequestBody defines the request body for VotePost service.
type VotePostRequestBody struct {
	Direction string `json:"direction"`
}
