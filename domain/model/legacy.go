package model

import "time"

// LegacyVideo is the row shape of the alternate SQL-backed read path. It
// mirrors the old Video schema (single "uploader" name, no visibility).
type LegacyVideo struct {
	ID           string    `json:"_id" gorm:"column:id;primaryKey"`
	Title        string    `json:"title" gorm:"column:title"`
	Description  string    `json:"description" gorm:"column:description"`
	ThumbnailURL string    `json:"thumbnailUrl" gorm:"column:thumbnail_url"`
	VideoURL     string    `json:"videoUrl" gorm:"column:video_url"`
	Views        int64     `json:"views" gorm:"column:views"`
	Uploader     string    `json:"uploader" gorm:"column:uploader"`
	UploadDate   time.Time `json:"uploadDate" gorm:"column:upload_date"`
	Duration     string    `json:"duration" gorm:"column:duration"`
}

// TableName keeps the legacy table naming.
func (LegacyVideo) TableName() string { return "videos" }
