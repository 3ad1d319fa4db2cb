package dto

// CreateCommentRequestBody defines the request body for CreateComment service.
// ParentID is zero for a top-level comment.
type CreateCommentRequestBody struct {
	Content  string `json:"content"`
	ParentID int64  `json:"parent_id"`
}

// UpdateCommentRequestBody defines the request body for UpdateComment service.
type UpdateCommentRequestBody struct {
	Content *string `json:"content"`
}
