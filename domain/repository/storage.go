package repository

import (
	"context"
	"io"
)

// Asset kinds accepted by the media pipeline.
const (
	AssetVideo = "video"
	AssetImage = "image"
)

// ProgressFunc receives upload progress in percent (0..100). Progress comes
// from real transferred bytes, never from a timer.
type ProgressFunc func(percent int)

// IMediaStorage uploads binary assets to object storage and returns a
// publicly resolvable URL.
type IMediaStorage interface {
	UploadAsset(ctx context.Context, name, kind string, r io.Reader, size int64, onProgress ProgressFunc) (string, error)
}
