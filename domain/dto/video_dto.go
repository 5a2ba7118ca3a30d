package dto

// VideoCreateRequest carries the document fields written on publish. URLs are
// produced by the upload pipeline; counters always start at zero.
type VideoCreateRequest struct {
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description"`
	Category     string `json:"category"`
	Visibility   string `json:"visibility"` // public | unlisted | private
	VideoURL     string `json:"video_url" binding:"required"`
	ThumbnailURL string `json:"thumbnail_url"`
	Duration     string `json:"duration"`
}

// VideoUpdateRequest uses pointers so an omitted field (nil) is
// distinguishable from an explicit empty value.
type VideoUpdateRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	Visibility  *string `json:"visibility"`
}

// VideoSearchRequest bounds search results to a fixed count.
type VideoSearchRequest struct {
	Q     string `form:"q" binding:"required"`
	Limit int    `form:"limit"`
}

// VoteRequest switches the caller's vote on a video.
type VoteRequest struct {
	Action string `json:"action" binding:"required"` // like | dislike | none
}

// VoteResponse returns the caller's current vote plus the adjusted counters.
type VoteResponse struct {
	Action   string `json:"action"`
	Likes    int64  `json:"likes"`
	Dislikes int64  `json:"dislikes"`
}

// ViewResponse reports whether the view was counted or suppressed by the
// session marker.
type ViewResponse struct {
	Counted bool  `json:"counted"`
	Views   int64 `json:"views"`
}
