// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync/atomic"
	"time"

	"k8s.io/utils/clock"

	"github.com/Sigi3012/Midnight/internal/logger"
	"github.com/Sigi3012/Midnight/internal/metrics"
	"github.com/Sigi3012/Midnight/internal/utils"
)

// Loop drives a [Feed] forever:
//
//	Idle → Fetching → Diffing → Persisting → Notifying → Idle
//	Idle → Fetching → ... → Backoff → Idle
//
// After a successful cycle it sleeps for the interval, after a failed one
// for the backoff. A failure never ends the loop. Cycles of one loop never
// overlap.
type Loop struct {
	feed     Feed
	interval time.Duration
	backoff  time.Duration

	state   atomic.Int32
	stopped atomic.Bool

	clock   clock.Clock
	ids     *utils.UUIDGenerator
	metrics *metrics.Metrics
	logger  *logger.Logger
}

func NewLoop(feed Feed, interval, backoff time.Duration, clk clock.Clock, m *metrics.Metrics, log *logger.Logger) *Loop {
	return &Loop{
		feed:     feed,
		interval: interval,
		backoff:  backoff,
		clock:    clk,
		ids:      utils.NewUUIDGenerator(),
		metrics:  m,
		logger:   log.WithField("feed", feed.Name()),
	}
}

func (l *Loop) Name() string {
	return l.feed.Name()
}

// State returns the current state of the loop.
func (l *Loop) State() State {
	return State(l.state.Load())
}

// Stop asks the loop to return before its next cycle. A running cycle is
// finished first.
func (l *Loop) Stop() {
	l.stopped.Store(true)
}

// Run implements [Worker]. It returns nil after Stop or when ctx is done.
func (l *Loop) Run(ctx context.Context) error {
	l.logger.Info().Str("func", "*Loop.Run").
		Dur("interval", l.interval).
		Dur("backoff", l.backoff).
		Msg("feed loop started")

	for !l.stopped.Load() && ctx.Err() == nil {
		wait := l.interval
		if err := l.runCycle(ctx); err != nil {
			l.enter(StateBackoff)
			wait = l.backoff
		}

		l.enter(StateIdle)
		if l.stopped.Load() {
			break
		}

		select {
		case <-ctx.Done():
		case <-l.clock.After(wait):
		}
	}

	l.logger.Info().Str("func", "*Loop.Run").Msg("feed loop stopped")
	return nil
}

func (l *Loop) runCycle(ctx context.Context) error {
	cycleID := l.ids.Generate()
	ctx = utils.WithTraceID(ctx, cycleID)
	log := l.logger.WithField("cycle_id", cycleID)
	ctx = log.WithContext(ctx)

	started := l.clock.Now()
	l.enter(StateFetching)

	err := l.feed.Cycle(ctx, l.enter)
	took := l.clock.Since(started)
	l.metrics.ObserveCycle(l.feed.Name(), err, took)

	if err != nil {
		log.Err(err).Str("func", "*Loop.runCycle").
			Str("state", l.State().String()).
			Dur("backoff", l.backoff).
			Msg("cycle failed")
		return err
	}

	log.Info().Str("func", "*Loop.runCycle").Dur("took", took).Msg("cycle finished")
	return nil
}

func (l *Loop) enter(s State) {
	prev := State(l.state.Swap(int32(s)))
	if prev != s {
		l.logger.Debug().Str("func", "*Loop.enter").
			Str("from", prev.String()).
			Str("to", s.String()).
			Msg("state transition")
	}
}
