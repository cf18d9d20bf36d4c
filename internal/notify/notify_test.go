package notify

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Sigi3012/Midnight/models"
)

// recordingResponder records the answers given to an interaction.
type recordingResponder struct {
	mu       sync.Mutex
	acks     int
	replies  []string
	ephemera []bool
	answered chan struct{}
}

func newRecordingResponder() *recordingResponder {
	return &recordingResponder{answered: make(chan struct{}, 16)}
}

func (r *recordingResponder) Acknowledge(context.Context) error {
	r.mu.Lock()
	r.acks++
	r.mu.Unlock()
	r.answered <- struct{}{}
	return nil
}

func (r *recordingResponder) Reply(_ context.Context, msg models.Message, ephemeral bool) error {
	r.mu.Lock()
	r.replies = append(r.replies, msg.Content)
	r.ephemera = append(r.ephemera, ephemeral)
	r.mu.Unlock()
	r.answered <- struct{}{}
	return nil
}

func (r *recordingResponder) wait(t *testing.T) {
	t.Helper()
	select {
	case <-r.answered:
	case <-time.After(5 * time.Second):
		t.Fatal("interaction was not answered")
	}
}

func (r *recordingResponder) snapshot() (int, []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.acks, append([]string(nil), r.replies...)
}

func press(messageID, userID int64, customID string) (models.Interaction, *recordingResponder) {
	responder := newRecordingResponder()
	return models.Interaction{
		Type:      models.InteractionMessageComponent,
		ChannelID: 10,
		MessageID: messageID,
		UserID:    userID,
		CustomID:  customID,
		Responder: responder,
	}, responder
}

func requireEventually(t *testing.T, cond func() bool, msg string) {
	t.Helper()
	require.Eventually(t, cond, 5*time.Second, 5*time.Millisecond, msg)
}
