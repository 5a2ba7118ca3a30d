package model

import "time"

// Visibility values accepted on upload and edit.
const (
	VisibilityPublic   = "public"
	VisibilityUnlisted = "unlisted"
	VisibilityPrivate  = "private"
)

// Video represents a published video document.
type Video struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	Title        string    `json:"title" bson:"title"`
	Description  string    `json:"description" bson:"description"`
	Category     string    `json:"category" bson:"category"`
	Visibility   string    `json:"visibility" bson:"visibility"`
	VideoURL     string    `json:"video_url" bson:"videoUrl"`
	ThumbnailURL string    `json:"thumbnail_url" bson:"thumbnailUrl"`
	UploaderID   string    `json:"uploader_id" bson:"uploaderId"`
	UploaderName string    `json:"uploader_name" bson:"uploaderName"`
	UploadDate   time.Time `json:"upload_date" bson:"uploadDate"`
	Views        int64     `json:"views" bson:"views"`
	Likes        int64     `json:"likes" bson:"likes"`
	Dislikes     int64     `json:"dislikes" bson:"dislikes"`
	// Duration is "H:MM:SS" or "MM:SS" as supplied by the uploader.
	Duration string `json:"duration" bson:"duration"`
}

// VideoVote is the per-(user, video) vote record. Action is one of
// VoteNone, VoteLike, VoteDislike; switching the action adjusts both
// counters on the video document.
type VideoVote struct {
	UserID    string    `json:"user_id" bson:"userId"`
	VideoID   string    `json:"video_id" bson:"videoId"`
	Action    string    `json:"action" bson:"action"`
	UpdatedAt time.Time `json:"updated_at" bson:"updatedAt"`
}

const (
	VoteNone    = "none"
	VoteLike    = "like"
	VoteDislike = "dislike"
)
