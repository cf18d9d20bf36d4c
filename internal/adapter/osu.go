// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strconv"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/Sigi3012/Midnight/internal/config"
	"github.com/Sigi3012/Midnight/internal/logger"
	"github.com/Sigi3012/Midnight/internal/metrics"
	"github.com/Sigi3012/Midnight/internal/utils"
	"github.com/Sigi3012/Midnight/models"
)

type OsuClient struct {
	api  *utils.HTTPClient
	web  *utils.HTTPClient
	auth Authenticator

	fetchLimit int

	metrics *metrics.Metrics
	logger  *logger.Logger
}

// NewOsuClient constructs the osu! API v2 implementation of [OsuAPI]. API
// calls carry the bearer token of auth; group pages are read from the public
// website without one.
func NewOsuClient(cfg config.Osu, auth Authenticator, m *metrics.Metrics, log *logger.Logger) *OsuClient {
	limit := cfg.MaxConcurrentRequests
	if limit < 1 {
		limit = DefaultFetchLimit
	}

	return &OsuClient{
		api:        utils.NewHTTPClient(cfg.APIBaseURL, cfg.RequestTimeout),
		web:        utils.NewHTTPClient(cfg.WebBaseURL, cfg.RequestTimeout),
		auth:       auth,
		fetchLimit: limit,
		metrics:    m,
		logger:     log,
	}
}

// SearchQualifiedIDs implements [OsuAPI].
func (c *OsuClient) SearchQualifiedIDs(ctx context.Context) ([]int32, error) {
	var (
		ids     []int32
		seenIDs = make(map[int32]struct{})
		cursors = make(map[string]struct{})
		cursor  string
	)

	for {
		query := map[string]string{"nsfw": "true", "s": "qualified"}
		if cursor != "" {
			query["cursor_string"] = cursor
		}

		body, err := c.getAuthed(ctx, "/beatmapsets/search", query)
		if err != nil {
			return nil, fmt.Errorf("searching qualified beatmapsets: %w", err)
		}

		var page models.SearchPage
		if err = json.Unmarshal(body, &page); err != nil {
			return nil, errors.Join(ErrDecodingResponse, err)
		}

		for _, set := range page.Beatmapsets {
			if _, ok := seenIDs[set.ID]; ok {
				continue
			}
			seenIDs[set.ID] = struct{}{}
			ids = append(ids, set.ID)
		}

		if page.Cursor == nil || *page.Cursor == "" {
			return ids, nil
		}
		if _, ok := cursors[*page.Cursor]; ok {
			return nil, fmt.Errorf("search cursor %q repeated", *page.Cursor)
		}
		cursors[*page.Cursor] = struct{}{}
		cursor = *page.Cursor
	}
}

// FetchBeatmapset implements [OsuAPI].
func (c *OsuClient) FetchBeatmapset(ctx context.Context, id int32) (models.Beatmapset, error) {
	body, err := c.getAuthed(ctx, "/beatmapsets/"+strconv.Itoa(int(id)), nil)
	if err != nil {
		return models.Beatmapset{}, fmt.Errorf("fetching beatmapset %d: %w", id, err)
	}

	var set models.Beatmapset
	if err = json.Unmarshal(body, &set); err != nil {
		return models.Beatmapset{}, fmt.Errorf("beatmapset %d: %w", id, errors.Join(ErrDecodingResponse, err))
	}

	return set, nil
}

// FetchBeatmapsets implements [OsuAPI].
func (c *OsuClient) FetchBeatmapsets(ctx context.Context, ids []int32) ([]models.Beatmapset, error) {
	found, _, err := c.ResolveBeatmapsets(ctx, ids)
	return found, err
}

// ResolveBeatmapsets implements [OsuAPI].
func (c *OsuClient) ResolveBeatmapsets(ctx context.Context, ids []int32) ([]models.Beatmapset, []int32, error) {
	var (
		mu   sync.Mutex
		gone []int32
	)

	found, err := FetchBounded(ctx, ids, c.fetchLimit, c.FetchBeatmapset, func(id int32, err error) {
		if errors.Is(err, ErrNotFound) {
			mu.Lock()
			gone = append(gone, id)
			mu.Unlock()
		}

		c.logger.Warn().Err(err).
			Str("func", "*OsuClient.ResolveBeatmapsets").
			Int32("beatmapset_id", id).
			Msg("dropping beatmapset, fetch failed")
		c.metrics.FetchFailed("beatmapset")
	})
	if err != nil {
		return nil, nil, err
	}
	slices.Sort(gone)

	return found, gone, nil
}

// FetchGroupMembers implements [OsuAPI].
func (c *OsuClient) FetchGroupMembers(ctx context.Context, group models.Group) ([]models.GroupMember, error) {
	resp, err := c.web.R().
		SetContext(ctx).
		SetHeader("Accept", "text/html").
		Get("/groups/" + strconv.Itoa(group.ID()))
	if err != nil {
		return nil, fmt.Errorf("group %s page request: %w", group, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, fmt.Errorf("group %s page: %w", group, err)
	}

	members, err := extractGroupMembers(resp.Body())
	if err != nil {
		return nil, &ScrapeError{Group: group, Err: err}
	}

	return members, nil
}

// getAuthed performs a GET with the current bearer token. A missing token
// causes one exchange before the request; a 401 causes one exchange and a
// single retry. Only one exchange happens per call.
func (c *OsuClient) getAuthed(ctx context.Context, path string, query map[string]string) ([]byte, error) {
	reauthenticated := false

	token, ok := c.auth.Token()
	if !ok {
		if err := c.reauthenticate(ctx); err != nil {
			return nil, err
		}
		reauthenticated = true
		if token, ok = c.auth.Token(); !ok {
			return nil, ErrUnauthorized
		}
	}

	for {
		resp, err := c.authedRequest(ctx, token).SetQueryParams(query).Get(path)
		if err != nil {
			return nil, fmt.Errorf("request %s: %w", path, err)
		}

		if resp.StatusCode() != http.StatusUnauthorized || reauthenticated {
			if err = mapHTTPError(resp); err != nil {
				return nil, err
			}
			return resp.Body(), nil
		}

		c.logger.Warn().Str("func", "*OsuClient.getAuthed").Str("path", path).Msg("token rejected, reauthenticating")
		if err = c.reauthenticate(ctx); err != nil {
			return nil, err
		}
		reauthenticated = true
		if token, ok = c.auth.Token(); !ok {
			return nil, ErrUnauthorized
		}
	}
}

func (c *OsuClient) reauthenticate(ctx context.Context) error {
	if err := c.auth.Reauthenticate(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}
	return nil
}

func (c *OsuClient) authedRequest(ctx context.Context, token string) *resty.Request {
	return c.api.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetAuthToken(token)
}
