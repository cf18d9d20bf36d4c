package service

import "errors"

var (
	// ErrNoBeatmapLink means the input holds no beatmapset link at all.
	ErrNoBeatmapLink = errors.New("no beatmapset link found")
	// ErrMalformedBeatmapLink means a beatmapset link was found but its id
	// cannot be read.
	ErrMalformedBeatmapLink = errors.New("malformed beatmapset link")

	ErrInvalidChannelKind = errors.New("invalid channel kind")
)
