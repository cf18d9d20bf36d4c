// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package bot

import "context"

// Bot is a runnable bot process.
type Bot interface {
	// Run blocks until ctx is done or a worker fails.
	Run(ctx context.Context) error
}
