package model

import "time"

// Comment belongs to a video's comment stream. No edit or delete is modeled.
type Comment struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	VideoID     string    `json:"video_id" bson:"videoId"`
	AuthorUID   string    `json:"author_uid" bson:"authorUid"`
	AuthorName  string    `json:"author_name" bson:"authorName"`
	AuthorPhoto string    `json:"author_photo" bson:"authorPhoto"`
	Text        string    `json:"text" bson:"text"`
	Timestamp   time.Time `json:"timestamp" bson:"timestamp"`
}
