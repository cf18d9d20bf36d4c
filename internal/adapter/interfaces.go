// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter holds the outbound clients of the bot: the osu! API v2
// client with its token lifecycle, the group page scraper and the Discord
// REST client used as notification sink.
//
// Non-2xx responses are mapped by mapHTTPError to a [*StatusError] wrapping
// one of the sentinels in errors.go, so callers use [errors.Is].
package adapter

import (
	"context"

	"github.com/Sigi3012/Midnight/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// OsuAPI reads the remote snapshots.
type OsuAPI interface {
	// SearchQualifiedIDs walks the qualified search until the cursor ends.
	SearchQualifiedIDs(ctx context.Context) ([]int32, error)

	// FetchBeatmapset returns a single full record.
	FetchBeatmapset(ctx context.Context, id int32) (models.Beatmapset, error)

	// FetchBeatmapsets fetches ids with bounded concurrency. Ids that fail
	// are dropped; the error is reserved for cancellation.
	FetchBeatmapsets(ctx context.Context, ids []int32) ([]models.Beatmapset, error)

	// ResolveBeatmapsets is FetchBeatmapsets that also reports the ids the
	// API answered with 404. Other failures are dropped.
	ResolveBeatmapsets(ctx context.Context, ids []int32) (found []models.Beatmapset, gone []int32, err error)

	// FetchGroupMembers scrapes the public page of group.
	FetchGroupMembers(ctx context.Context, group models.Group) ([]models.GroupMember, error)
}

// Authenticator owns the osu! bearer token.
type Authenticator interface {
	// Token returns a copy of the current token; ok is false when there is
	// none or it has expired.
	Token() (token string, ok bool)

	// Reauthenticate performs a client-credentials exchange now. Concurrent
	// callers share one exchange.
	Reauthenticate(ctx context.Context) error
}
