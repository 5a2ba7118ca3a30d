package realtime

import (
	"encoding/json"
	"sync"

	"github.com/gin-gonic/gin"

	"youtube-lite/domain/model"
)

// CommentSnapshot is the SSE payload: the full current ordered comment list
// for one video, not a diff. Subscribers re-render from each snapshot.
type CommentSnapshot struct {
	Type     string          `json:"type"`
	VideoID  string          `json:"video_id"`
	Comments []model.Comment `json:"comments"`
}

// Hub maintains per-video subscribers listening for comment snapshots.
type Hub struct {
	mu     sync.RWMutex
	videos map[string]map[chan CommentSnapshot]struct{}
}

func NewCommentHub() *Hub {
	return &Hub{videos: make(map[string]map[chan CommentSnapshot]struct{})}
}

// Serve streams snapshots for one video until the client disconnects. The
// subscription is released on every exit path.
func (h *Hub) Serve(c *gin.Context, videoID string, initial []model.Comment) {
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no") // disable nginx buffering

	ch := make(chan CommentSnapshot, 8)
	h.addSubscriber(videoID, ch)
	defer h.removeSubscriber(videoID, ch)

	writeSnapshot(c, CommentSnapshot{Type: "comments", VideoID: videoID, Comments: initial})

	for {
		select {
		case snap, ok := <-ch:
			if !ok {
				return
			}
			writeSnapshot(c, snap)
		case <-c.Request.Context().Done():
			return
		}
	}
}

func writeSnapshot(c *gin.Context, snap CommentSnapshot) {
	data, _ := json.Marshal(snap)
	_, _ = c.Writer.Write([]byte("event: comments\n"))
	_, _ = c.Writer.Write([]byte("data: "))
	_, _ = c.Writer.Write(data)
	_, _ = c.Writer.Write([]byte("\n\n"))
	c.Writer.Flush()
}

func (h *Hub) addSubscriber(videoID string, ch chan CommentSnapshot) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.videos[videoID] == nil {
		h.videos[videoID] = make(map[chan CommentSnapshot]struct{})
	}
	h.videos[videoID][ch] = struct{}{}
}

func (h *Hub) removeSubscriber(videoID string, ch chan CommentSnapshot) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if subs := h.videos[videoID]; subs != nil {
		delete(subs, ch)
		close(ch)
		if len(subs) == 0 {
			delete(h.videos, videoID)
		}
	}
}

// Broadcast pushes the current full list to every subscriber of the video.
func (h *Hub) Broadcast(videoID string, comments []model.Comment) {
	snap := CommentSnapshot{Type: "comments", VideoID: videoID, Comments: comments}
	h.mu.RLock()
	subs := h.videos[videoID]
	for ch := range subs {
		select { // non-blocking
		case ch <- snap:
		default:
		}
	}
	h.mu.RUnlock()
}

// SubscriberCount is used by tests and shutdown logging.
func (h *Hub) SubscriberCount(videoID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.videos[videoID])
}
