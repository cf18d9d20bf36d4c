package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/Sigi3012/Midnight/internal/config"
	"github.com/Sigi3012/Midnight/internal/logger"
	"github.com/Sigi3012/Midnight/internal/utils"
	"github.com/Sigi3012/Midnight/models"
)

const (
	discordRetryCount   = 3
	discordMaxRetryWait = 30 * time.Second
	discordTimeout      = 15 * time.Second
)

// DiscordClient is the notification sink over the Discord REST API.
type DiscordClient struct {
	client        *utils.HTTPClient
	applicationID string
	logger        *logger.Logger
}

// NewDiscordClient authenticates as the bot and retries requests that hit a
// rate limit after the delay Discord asks for.
func NewDiscordClient(cfg config.Discord, log *logger.Logger) *DiscordClient {
	client := utils.NewHTTPClient(cfg.APIBaseURL, discordTimeout)
	client.
		SetAuthScheme("Bot").
		SetAuthToken(cfg.BotToken).
		SetRetryCount(discordRetryCount).
		SetRetryMaxWaitTime(discordMaxRetryWait).
		AddRetryCondition(func(resp *resty.Response, err error) bool {
			return err == nil && resp.StatusCode() == http.StatusTooManyRequests
		}).
		SetRetryAfter(retryAfter)

	return &DiscordClient{client: client, applicationID: cfg.ApplicationID, logger: log}
}

// retryAfter reads the Retry-After header. Returning zero lets resty fall
// back to its own backoff.
func retryAfter(_ *resty.Client, resp *resty.Response) (time.Duration, error) {
	if resp == nil {
		return 0, nil
	}
	seconds, err := strconv.ParseFloat(resp.Header().Get("Retry-After"), 64)
	if err != nil || seconds <= 0 {
		return 0, nil
	}

	return time.Duration(seconds * float64(time.Second)), nil
}

// SendMessage posts msg to a channel and returns the id of the new message.
func (d *DiscordClient) SendMessage(ctx context.Context, channelID int64, msg models.Message) (int64, error) {
	resp, err := d.client.R().
		SetContext(ctx).
		SetBody(NewDiscordMessage(msg, false)).
		Post("/channels/" + snowflake(channelID) + "/messages")
	if err != nil {
		return 0, fmt.Errorf("send message request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, fmt.Errorf("send message to channel %d: %w", channelID, err)
	}

	var created discordSnowflake
	if err = json.Unmarshal(resp.Body(), &created); err != nil {
		return 0, errors.Join(ErrDecodingResponse, err)
	}

	return created.ID, nil
}

// StripComponents edits a message to remove its buttons.
func (d *DiscordClient) StripComponents(ctx context.Context, channelID, messageID int64) error {
	resp, err := d.client.R().
		SetContext(ctx).
		SetBody(map[string]any{"components": []any{}}).
		Patch(messagePath(channelID, messageID))
	if err != nil {
		return fmt.Errorf("edit message request: %w", err)
	}

	return mapHTTPError(resp)
}

func (d *DiscordClient) DeleteMessage(ctx context.Context, channelID, messageID int64) error {
	resp, err := d.client.R().
		SetContext(ctx).
		Delete(messagePath(channelID, messageID))
	if err != nil {
		return fmt.Errorf("delete message request: %w", err)
	}

	return mapHTTPError(resp)
}

// CreateFollowup sends a reply to an interaction that was already answered.
func (d *DiscordClient) CreateFollowup(ctx context.Context, interactionToken string, msg models.Message, ephemeral bool) error {
	resp, err := d.client.R().
		SetContext(ctx).
		SetBody(NewDiscordMessage(msg, ephemeral)).
		Post("/webhooks/" + d.applicationID + "/" + interactionToken)
	if err != nil {
		return fmt.Errorf("followup request: %w", err)
	}

	return mapHTTPError(resp)
}

// RegisterCommands overwrites the global slash commands of the application.
func (d *DiscordClient) RegisterCommands(ctx context.Context, commands []models.CommandDefinition) error {
	resp, err := d.client.R().
		SetContext(ctx).
		SetBody(commands).
		Put("/applications/" + d.applicationID + "/commands")
	if err != nil {
		return fmt.Errorf("register commands request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	d.logger.Info().Str("func", "*DiscordClient.RegisterCommands").Int("count", len(commands)).Msg("registered slash commands")
	return nil
}

func messagePath(channelID, messageID int64) string {
	return "/channels/" + snowflake(channelID) + "/messages/" + snowflake(messageID)
}

func snowflake(id int64) string {
	return strconv.FormatInt(id, 10)
}
