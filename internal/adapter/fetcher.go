package adapter

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/semaphore"
)

// DefaultFetchLimit is the number of fetches allowed in flight at once.
const DefaultFetchLimit = 16

// FetchBounded runs fetch once per id with at most limit calls in flight.
// A slot is taken before a fetch starts and given back when it returns,
// whatever the outcome. Failed ids are passed to onError and left out of
// the result. The result order is not defined.
//
// The returned error is only set when ctx ends while waiting for a slot;
// fetches already started are awaited first.
func FetchBounded[T any](
	ctx context.Context,
	ids []int32,
	limit int,
	fetch func(ctx context.Context, id int32) (T, error),
	onError func(id int32, err error),
) ([]T, error) {
	if limit < 1 {
		limit = 1
	}

	var (
		gate    = semaphore.NewWeighted(int64(limit))
		wg      sync.WaitGroup
		mu      sync.Mutex
		results = make([]T, 0, len(ids))
		gateErr error
	)

	for _, id := range ids {
		// Acquire may still succeed on a done context.
		if err := ctx.Err(); err != nil {
			gateErr = err
			break
		}
		if err := gate.Acquire(ctx, 1); err != nil {
			gateErr = err
			break
		}

		wg.Add(1)
		go func(id int32) {
			defer wg.Done()
			defer gate.Release(1)

			item, err := fetch(ctx, id)
			if err != nil {
				if onError != nil {
					onError(id, err)
				}
				return
			}

			mu.Lock()
			results = append(results, item)
			mu.Unlock()
		}(id)
	}

	wg.Wait()

	if gateErr != nil {
		return nil, fmt.Errorf("waiting for fetch slot: %w", gateErr)
	}

	return results, nil
}
