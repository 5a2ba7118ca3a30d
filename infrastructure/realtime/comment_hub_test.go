package realtime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"youtube-lite/domain/model"
)

func TestBroadcast_ReachesVideoSubscribersOnly(t *testing.T) {
	hub := NewCommentHub()
	ch1 := make(chan CommentSnapshot, 8)
	ch2 := make(chan CommentSnapshot, 8)
	hub.addSubscriber("v1", ch1)
	hub.addSubscriber("v2", ch2)

	comments := []model.Comment{{ID: "c1", Text: "nice!"}}
	hub.Broadcast("v1", comments)

	select {
	case snap := <-ch1:
		assert.Equal(t, "v1", snap.VideoID)
		assert.Equal(t, comments, snap.Comments)
	case <-time.After(time.Second):
		t.Fatal("subscriber did not receive snapshot")
	}
	select {
	case <-ch2:
		t.Fatal("subscriber of another video received the snapshot")
	default:
	}
}

func TestBroadcast_NonBlockingOnFullSubscriber(t *testing.T) {
	hub := NewCommentHub()
	full := make(chan CommentSnapshot) // unbuffered, nobody reading
	hub.addSubscriber("v1", full)

	done := make(chan struct{})
	go func() {
		hub.Broadcast("v1", nil)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("broadcast blocked on a slow subscriber")
	}
}

func TestRemoveSubscriber_ReleasesVideoEntry(t *testing.T) {
	hub := NewCommentHub()
	ch := make(chan CommentSnapshot, 1)
	hub.addSubscriber("v1", ch)
	assert.Equal(t, 1, hub.SubscriberCount("v1"))

	hub.removeSubscriber("v1", ch)
	assert.Equal(t, 0, hub.SubscriberCount("v1"))

	_, open := <-ch
	assert.False(t, open)
}
