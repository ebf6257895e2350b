// Package dto defines data transfer objects for the comments HTTP API.
package dto

// CreateCommentRequest is the request body for POST /api/comment/:stockId.
// The stock binding comes from the path, never from the body.
type CreateCommentRequest struct {
	Title   string `json:"title" binding:"required,max=50"`
	Content string `json:"content" binding:"required,max=150"`
}

// UpdateCommentRequest is the request body for PATCH /api/comment/:id.
// Only title and content are updatable; the stock binding is immutable.
type UpdateCommentRequest struct {
	Title   string `json:"title" binding:"required,max=50"`
	Content string `json:"content" binding:"required,max=150"`
}
