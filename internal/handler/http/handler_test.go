package http

import (
	"bytes"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	testingclock "k8s.io/utils/clock/testing"

	"github.com/Sigi3012/Midnight/internal/logger"
	"github.com/Sigi3012/Midnight/internal/mock"
	"github.com/Sigi3012/Midnight/models"
)

const (
	testChannelID = 10
	testUserID    = 100
	testToken     = "interaction-token"
)

type handlerFixture struct {
	h             *Handler
	clock         *testingclock.FakeClock
	privateKey    ed25519.PrivateKey
	subscriptions *mock.MockSubscriptionManager
	components    *mock.MockComponentRouter
	showcaser     *mock.MockShowcaser
	followups     *mock.MockFollowupSender
	health        *mock.MockHealthChecker
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	public, private, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	f := &handlerFixture{
		clock:         testingclock.NewFakeClock(time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)),
		privateKey:    private,
		subscriptions: mock.NewMockSubscriptionManager(ctrl),
		components:    mock.NewMockComponentRouter(ctrl),
		showcaser:     mock.NewMockShowcaser(ctrl),
		followups:     mock.NewMockFollowupSender(ctrl),
		health:        mock.NewMockHealthChecker(ctrl),
	}
	f.h = NewHandler(Dependencies{
		Subscriptions: f.subscriptions,
		Components:    f.components,
		Showcaser:     f.showcaser,
		Followups:     f.followups,
		Health:        f.health,
		PublicKey:     public,
		Deadline:      time.Second,
		Clock:         f.clock,
		BuildInfo:     models.NewAppBuildInfo("1.4.0", "2026-05-01", "abc123"),
	}, logger.Nop())

	return f
}

// signedRequest builds an interaction request signed with the fixture key.
func (f *handlerFixture) signedRequest(t *testing.T, body []byte) *http.Request {
	t.Helper()

	timestamp := strconv.FormatInt(f.clock.Now().Unix(), 10)
	sig := ed25519.Sign(f.privateKey, append([]byte(timestamp), body...))

	req := httptest.NewRequest(http.MethodPost, "/interactions", bytes.NewReader(body))
	req.Header.Set(signatureHeader, hex.EncodeToString(sig))
	req.Header.Set(timestampHeader, timestamp)
	return req
}

func commandBody(t *testing.T, name, subcommand string, options map[string]string, permissions string) []byte {
	t.Helper()

	leaves := make([]map[string]any, 0, len(options))
	for k, v := range options {
		leaves = append(leaves, map[string]any{"name": k, "type": 3, "value": v})
	}

	body, err := json.Marshal(map[string]any{
		"id":         "1",
		"type":       int(models.InteractionApplicationCmd),
		"token":      testToken,
		"channel_id": strconv.Itoa(testChannelID),
		"member": map[string]any{
			"user":        map[string]any{"id": strconv.Itoa(testUserID), "username": "peppy"},
			"permissions": permissions,
		},
		"data": map[string]any{
			"name": name,
			"options": []map[string]any{
				{"name": subcommand, "type": 1, "options": leaves},
			},
		},
	})
	require.NoError(t, err)
	return body
}

func componentBody(t *testing.T, messageID int64, customID string) []byte {
	t.Helper()

	body, err := json.Marshal(map[string]any{
		"id":         "2",
		"type":       int(models.InteractionMessageComponent),
		"token":      testToken,
		"channel_id": strconv.Itoa(testChannelID),
		"member": map[string]any{
			"user":        map[string]any{"id": strconv.Itoa(testUserID), "username": "peppy"},
			"permissions": "0",
		},
		"message": map[string]any{"id": strconv.FormatInt(messageID, 10)},
		"data":    map[string]any{"custom_id": customID},
	})
	require.NoError(t, err)
	return body
}

type callbackBody struct {
	Type int `json:"type"`
	Data *struct {
		Content string `json:"content"`
		Flags   int    `json:"flags"`
		Embeds  []struct {
			Title string `json:"title"`
		} `json:"embeds"`
	} `json:"data"`
}

func decodeCallback(t *testing.T, rec *httptest.ResponseRecorder) callbackBody {
	t.Helper()

	var out callbackBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}
