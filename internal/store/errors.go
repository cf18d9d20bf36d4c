package store

import "errors"

// Domain errors.
var (
	// ErrBeatmapsetNotTracked is returned when subscribing to a beatmapset
	// that is not in the local snapshot.
	ErrBeatmapsetNotTracked = errors.New("beatmapset is not tracked")
)

// Errors wrapping driver failures. The driver error is joined to them.
var (
	ErrBuildingSQLQuery = errors.New("error building sql query")

	ErrAcquiringConnection = errors.New("error acquiring database connection")

	ErrExecutingQuery = errors.New("error executing sql query")

	ErrBeginningTransaction = errors.New("failed to begin transaction")

	ErrCommitingTransaction = errors.New("failed to commit transaction")

	ErrScanningRows = errors.New("failed to scan rows")
)
