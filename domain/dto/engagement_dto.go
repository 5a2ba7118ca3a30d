package dto

// EngagementRecordRequest upserts an entry into one of the per-user lists.
type EngagementRecordRequest struct {
	VideoID string `json:"video_id" binding:"required"`
}

// SubscriptionStatusResponse reports the subscribed boolean derived from the
// subscription document's existence, never from a separate flag.
type SubscriptionStatusResponse struct {
	IsSubscribed bool   `json:"is_subscribed"`
	ChannelUID   string `json:"channel_uid"`
	ChannelName  string `json:"channel_name,omitempty"`
	Subscribers  int64  `json:"subscribers"`
}
