// Package workers runs the long-lived background tasks of the bot: the
// reconciliation loops of both feeds and the token refresher.
//
// A task implements [Worker]. [Workers] runs a set of them together and
// stops all of them as soon as one fails.
package workers

import "context"

// Worker blocks until ctx is done or it fails. A nil return means a clean
// stop.
type Worker interface {
	Name() string
	Run(ctx context.Context) error
}

// Feed is one reconciliation cycle of a feed. Cycle reports every stage it
// enters through enter so the loop can track its state.
type Feed interface {
	Name() string
	Cycle(ctx context.Context, enter StageFunc) error
}
