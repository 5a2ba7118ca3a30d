package dto

// ChannelCustomizationRequest updates the caller's channel document. Photo and
// banner are uploaded separately through the media pipeline; the resulting
// URLs are passed here.
type ChannelCustomizationRequest struct {
	DisplayName string `json:"display_name" binding:"required"`
	Description string `json:"description"`
	PhotoURL    string `json:"photo_url"`
	BannerURL   string `json:"banner_url"`
}

// MonetizationResponse mirrors the studio monetization card: progress toward
// the partner thresholds.
type MonetizationResponse struct {
	Subscribers     int64   `json:"subscribers"`
	SubscribersGoal int64   `json:"subscribers_goal"`
	WatchHours      int64   `json:"watch_hours"`
	WatchHoursGoal  int64   `json:"watch_hours_goal"`
	SubscriberPct   float64 `json:"subscriber_pct"`
	WatchHoursPct   float64 `json:"watch_hours_pct"`
	Eligible        bool    `json:"eligible"`
}

// UploadResponse reports the published video id after both asset uploads and
// the document write resolved.
type UploadResponse struct {
	VideoID      string `json:"video_id"`
	VideoURL     string `json:"video_url"`
	ThumbnailURL string `json:"thumbnail_url"`
}
