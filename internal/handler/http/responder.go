package http

import (
	"context"
	"sync"

	"github.com/Sigi3012/Midnight/internal/adapter"
	"github.com/Sigi3012/Midnight/models"
)

type responderState int

const (
	statePending responderState = iota
	stateAnswered
	stateDeferred
)

// interactionResponder answers a single interaction. The first answer is
// handed to the endpoint through initial and becomes the HTTP response.
// After that, or once the endpoint deferred, replies are sent as followups.
type interactionResponder struct {
	token     string
	component bool
	followups FollowupSender

	mu      sync.Mutex
	state   responderState
	replied bool
	initial chan adapter.InteractionResponse
}

func newInteractionResponder(in models.Interaction, followups FollowupSender) *interactionResponder {
	return &interactionResponder{
		token:     in.Token,
		component: in.Type == models.InteractionMessageComponent,
		followups: followups,
		initial:   make(chan adapter.InteractionResponse, 1),
	}
}

func (r *interactionResponder) Reply(ctx context.Context, msg models.Message, ephemeral bool) error {
	r.mu.Lock()
	r.replied = true
	if r.state == statePending {
		r.state = stateAnswered
		r.initial <- adapter.MessageResponse(msg, ephemeral)
		r.mu.Unlock()
		return nil
	}
	r.mu.Unlock()

	return r.followups.CreateFollowup(ctx, r.token, msg, ephemeral)
}

// Acknowledge is a no-op once the interaction has been answered.
func (r *interactionResponder) Acknowledge(context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state == statePending {
		r.state = stateAnswered
		r.initial <- adapter.DeferredResponse(r.component)
	}
	return nil
}

// deferResponse returns the response for an interaction whose handler
// missed the deadline. If the handler answered in the meantime its answer
// is returned instead.
func (r *interactionResponder) deferResponse() adapter.InteractionResponse {
	r.mu.Lock()
	if r.state == statePending {
		r.state = stateDeferred
		r.mu.Unlock()
		return adapter.DeferredResponse(r.component)
	}
	r.mu.Unlock()

	return <-r.initial
}

func (r *interactionResponder) hasReplied() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.replied
}
