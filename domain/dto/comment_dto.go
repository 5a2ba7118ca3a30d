package dto

// CommentRequest posts one comment. The soft length cap matches the UI
// character counter; the store itself does not enforce one.
type CommentRequest struct {
	Text string `json:"text" binding:"required,max=1000"`
}
