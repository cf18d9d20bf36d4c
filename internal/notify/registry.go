// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package notify

import (
	"context"
	"errors"
	"sync"
	"time"

	"k8s.io/utils/clock"

	"github.com/Sigi3012/Midnight/internal/logger"
	"github.com/Sigi3012/Midnight/internal/metrics"
	"github.com/Sigi3012/Midnight/models"
)

// event is an interaction queued for a listener together with the context
// of the request that delivered it.
type event struct {
	ctx context.Context
	in  models.Interaction
}

type listener struct {
	channelID int64
	messageID int64
	handler   Handler
	events    chan event
	done      chan struct{}
}

// Registry routes component interactions to the listener owning the
// message they were sent from. Every listener runs in its own goroutine
// and handles its interactions one at a time. Listeners end when the
// context given to Run is done.
type Registry struct {
	sink      Sink
	clock     clock.Clock
	mu        sync.Mutex
	listeners map[int64]*listener
	closed    chan struct{}
	closeOnce sync.Once
	metrics   *metrics.Metrics
	logger    *logger.Logger
}

func NewRegistry(sink Sink, clk clock.Clock, m *metrics.Metrics, log *logger.Logger) *Registry {
	return &Registry{
		sink:      sink,
		clock:     clk,
		listeners: make(map[int64]*listener),
		closed:    make(chan struct{}),
		metrics:   m,
		logger:    log,
	}
}

func (r *Registry) Name() string {
	return "registry"
}

// Run blocks until ctx is done and then ends every listener. It implements
// workers.Worker.
func (r *Registry) Run(ctx context.Context) error {
	<-ctx.Done()
	r.closeOnce.Do(func() { close(r.closed) })

	return nil
}

// Listen starts a listener for the controls of a message. After lifetime
// the listener strips the controls and exits. It also exits when the
// registry shuts down or the handler returns [ErrStopListening]. The
// listener keeps the values of ctx but not its cancellation, so it may
// outlive the request that posted the message. A second Listen for the
// same message is ignored.
func (r *Registry) Listen(ctx context.Context, channelID, messageID int64, lifetime time.Duration, handler Handler) {
	l := &listener{
		channelID: channelID,
		messageID: messageID,
		handler:   handler,
		events:    make(chan event),
		done:      make(chan struct{}),
	}

	r.mu.Lock()
	if _, ok := r.listeners[messageID]; ok {
		r.mu.Unlock()
		r.logger.Warn().Str("func", "*Registry.Listen").Int64("message_id", messageID).Msg("message already has a listener")
		return
	}
	r.listeners[messageID] = l
	r.mu.Unlock()

	r.metrics.ControlsPending(1)
	timer := r.clock.NewTimer(lifetime)

	go r.run(context.WithoutCancel(ctx), l, timer)
}

func (r *Registry) run(ctx context.Context, l *listener, timer clock.Timer) {
	defer func() {
		timer.Stop()
		r.remove(l)
		r.metrics.ControlsPending(-1)
	}()

	for {
		select {
		case <-r.closed:
			return

		case <-timer.C():
			r.expire(ctx, l)
			return

		case ev := <-l.events:
			err := l.handler(ev.ctx, ev.in)
			if errors.Is(err, ErrStopListening) {
				return
			}
			if err != nil {
				logger.FromContext(ev.ctx).Err(err).Str("func", "*Registry.run").
					Int64("message_id", l.messageID).
					Str("custom_id", ev.in.CustomID).
					Msg("error handling interaction")
			}
		}
	}
}

// expire removes the controls. A failure is only logged; the message stays
// as it is and later presses are acknowledged without effect.
func (r *Registry) expire(ctx context.Context, l *listener) {
	r.remove(l)

	if err := r.sink.StripComponents(ctx, l.channelID, l.messageID); err != nil {
		r.logger.Err(err).Str("func", "*Registry.expire").
			Int64("channel_id", l.channelID).
			Int64("message_id", l.messageID).
			Msg("error stripping expired controls")
		return
	}

	r.logger.Debug().Str("func", "*Registry.expire").Int64("message_id", l.messageID).Msg("controls expired")
}

func (r *Registry) remove(l *listener) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.listeners[l.messageID] == l {
		delete(r.listeners, l.messageID)
		close(l.done)
	}
}

// Dispatch hands in to the listener of in.MessageID. Interactions with
// messages nobody listens to are acknowledged right away.
func (r *Registry) Dispatch(ctx context.Context, in models.Interaction) error {
	r.mu.Lock()
	l, ok := r.listeners[in.MessageID]
	r.mu.Unlock()

	if ok {
		select {
		case l.events <- event{ctx: ctx, in: in}:
			return nil
		case <-l.done:
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	return in.Responder.Acknowledge(ctx)
}

// Pending returns the number of live listeners.
func (r *Registry) Pending() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.listeners)
}
