package model

import "time"

// EngagementKind selects one of the per-user collections.
type EngagementKind string

const (
	KindHistory     EngagementKind = "history"
	KindLikedVideos EngagementKind = "liked_videos"
	KindWatchLater  EngagementKind = "watch_later"
)

// EngagementEntry is a denormalized snapshot of a video stored under a user,
// keyed by (uid, videoId). Recording the same video again bumps Timestamp
// instead of duplicating the entry; this includes history.
type EngagementEntry struct {
	UserID       string    `json:"user_id" bson:"userId"`
	VideoID      string    `json:"video_id" bson:"videoId"`
	Title        string    `json:"title" bson:"title"`
	ThumbnailURL string    `json:"thumbnail_url" bson:"thumbnailUrl"`
	UploaderName string    `json:"uploader_name" bson:"uploaderName"`
	Duration     string    `json:"duration" bson:"duration"`
	Views        int64     `json:"views" bson:"views"`
	Timestamp    time.Time `json:"timestamp" bson:"timestamp"`
}

// Subscription is keyed by (subscriberUid, channelUid). Its existence is the
// sole source of truth for the "subscribed" state.
type Subscription struct {
	SubscriberUID string    `json:"subscriber_uid" bson:"subscriberUid"`
	ChannelUID    string    `json:"channel_uid" bson:"channelUid"`
	ChannelName   string    `json:"channel_name" bson:"channelName"`
	ChannelPhoto  string    `json:"channel_photo" bson:"channelPhoto"`
	SubscribedAt  time.Time `json:"subscribed_at" bson:"subscribedAt"`
}
