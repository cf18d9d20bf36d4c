package http

import (
	"crypto/ed25519"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"k8s.io/utils/clock"

	"github.com/Sigi3012/Midnight/internal/logger"
	"github.com/Sigi3012/Midnight/models"
)

const (
	defaultInteractionDeadline = 2500 * time.Millisecond

	// followupWindow is how long an interaction token accepts followups.
	followupWindow = 15 * time.Minute
)

// Dependencies are the collaborators of the HTTP handler. Gatherer and
// Health may be nil, in which case /metrics and /healthz are not served.
type Dependencies struct {
	Subscriptions SubscriptionManager
	Components    ComponentRouter
	Showcaser     Showcaser
	Followups     FollowupSender
	Health        HealthChecker
	Gatherer      prometheus.Gatherer

	PublicKey ed25519.PublicKey
	// Deadline is how long an interaction may take before it is deferred.
	Deadline  time.Duration
	Clock     clock.Clock
	BuildInfo models.AppBuildInfo
}

type Handler struct {
	subscriptions SubscriptionManager
	components    ComponentRouter
	showcaser     Showcaser
	followups     FollowupSender
	health        HealthChecker
	gatherer      prometheus.Gatherer

	publicKey ed25519.PublicKey
	deadline  time.Duration
	clock     clock.Clock
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

func NewHandler(deps Dependencies, logger *logger.Logger) *Handler {
	h := &Handler{
		subscriptions: deps.Subscriptions,
		components:    deps.Components,
		showcaser:     deps.Showcaser,
		followups:     deps.Followups,
		health:        deps.Health,
		gatherer:      deps.Gatherer,
		publicKey:     deps.PublicKey,
		deadline:      deps.Deadline,
		clock:         deps.Clock,
		buildInfo:     deps.BuildInfo,
		logger:        logger,
	}
	if h.deadline <= 0 {
		h.deadline = defaultInteractionDeadline
	}
	if h.clock == nil {
		h.clock = clock.RealClock{}
	}

	logger.Info().Msg("http handler created")
	return h
}

// ParsePublicKey decodes the hex encoded application public key.
func ParsePublicKey(s string) (ed25519.PublicKey, error) {
	key, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPublicKey, err)
	}
	if len(key) != ed25519.PublicKeySize {
		return nil, fmt.Errorf("%w: got %d bytes", ErrInvalidPublicKey, len(key))
	}

	return ed25519.PublicKey(key), nil
}
