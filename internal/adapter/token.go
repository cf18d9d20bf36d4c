package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
	"k8s.io/utils/clock"

	"github.com/Sigi3012/Midnight/internal/config"
	"github.com/Sigi3012/Midnight/internal/logger"
	"github.com/Sigi3012/Midnight/internal/metrics"
	"github.com/Sigi3012/Midnight/internal/utils"
	"github.com/Sigi3012/Midnight/models"
)

const (
	// refreshLeeway is how long before expiry the token is renewed.
	refreshLeeway        = 60 * time.Second
	minRefreshWait       = 10 * time.Second
	defaultTokenLifetime = time.Hour
)

// TokenManager performs the osu! client-credentials exchange and holds the
// resulting bearer token. It has a single writer (the exchange) and any
// number of readers, which receive copies.
type TokenManager struct {
	client       *utils.HTTPClient
	tokenURL     string
	clientID     string
	clientSecret string

	mu        sync.RWMutex
	token     string
	expiresAt time.Time

	exchanges singleflight.Group
	clock     clock.Clock
	metrics   *metrics.Metrics
	logger    *logger.Logger
}

func NewTokenManager(cfg config.Osu, clk clock.Clock, m *metrics.Metrics, log *logger.Logger) *TokenManager {
	return &TokenManager{
		client:       utils.NewHTTPClient("", cfg.RequestTimeout),
		tokenURL:     cfg.TokenURL,
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		clock:        clk,
		metrics:      m,
		logger:       log,
	}
}

// Token implements [Authenticator].
func (t *TokenManager) Token() (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.token == "" || !t.clock.Now().Before(t.expiresAt) {
		return "", false
	}

	return t.token, true
}

// Reauthenticate implements [Authenticator].
func (t *TokenManager) Reauthenticate(ctx context.Context) error {
	_, err := t.refresh(ctx)
	return err
}

// Authenticate exchanges the client credentials for a new token, stores it
// and returns its lifetime.
func (t *TokenManager) Authenticate(ctx context.Context) (time.Duration, error) {
	lifetime, err := t.exchange(ctx)
	t.metrics.TokenRefreshed(err)
	if err != nil {
		t.logger.Err(err).Str("func", "*TokenManager.Authenticate").Msg("osu! token exchange failed")
		return 0, err
	}

	t.logger.Debug().Str("func", "*TokenManager.Authenticate").Dur("lifetime", lifetime).Msg("obtained osu! token")
	return lifetime, nil
}

func (t *TokenManager) Name() string {
	return "token"
}

// Run keeps the token fresh until ctx is done. A failed exchange ends Run
// with an error: the bot cannot work without a token.
func (t *TokenManager) Run(ctx context.Context) error {
	for {
		lifetime, err := t.refresh(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("refreshing osu! token: %w", err)
		}

		wait := lifetime - refreshLeeway
		if wait < minRefreshWait {
			wait = minRefreshWait
		}

		select {
		case <-ctx.Done():
			return nil
		case <-t.clock.After(wait):
		}
	}
}

// refresh joins the exchange in flight or starts one. The exchange is shared,
// so it does not stop when the caller that started it goes away; the client
// timeout bounds it instead. Each caller only waits as long as its own ctx.
func (t *TokenManager) refresh(ctx context.Context) (time.Duration, error) {
	results := t.exchanges.DoChan("token", func() (any, error) {
		return t.Authenticate(context.WithoutCancel(ctx))
	})

	select {
	case <-ctx.Done():
		return 0, ctx.Err()
	case res := <-results:
		if res.Err != nil {
			return 0, res.Err
		}
		return res.Val.(time.Duration), nil
	}
}

func (t *TokenManager) exchange(ctx context.Context) (time.Duration, error) {
	resp, err := t.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetFormData(map[string]string{
			"client_id":     t.clientID,
			"client_secret": t.clientSecret,
			"grant_type":    "client_credentials",
			"scope":         "public",
		}).
		Post(t.tokenURL)
	if err != nil {
		return 0, fmt.Errorf("token request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, err
	}

	var token models.AccessToken
	if err = json.Unmarshal(resp.Body(), &token); err != nil {
		return 0, errors.Join(ErrDecodingResponse, err)
	}
	token.AccessToken = strings.TrimSpace(token.AccessToken)
	if token.AccessToken == "" {
		return 0, ErrNoAccessToken
	}

	now := t.clock.Now()
	lifetime, ok := token.Lifetime(now)
	if !ok || lifetime <= 0 {
		t.logger.Warn().Str("func", "*TokenManager.exchange").
			Dur("assumed_lifetime", defaultTokenLifetime).
			Msg("token exchange reported no usable expiry")
		lifetime = defaultTokenLifetime
	}

	t.mu.Lock()
	t.token = token.AccessToken
	t.expiresAt = now.Add(lifetime)
	t.mu.Unlock()

	return lifetime, nil
}
