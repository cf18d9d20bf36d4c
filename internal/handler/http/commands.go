package http

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/Sigi3012/Midnight/internal/adapter"
	"github.com/Sigi3012/Midnight/internal/app"
	"github.com/Sigi3012/Midnight/internal/notify"
	"github.com/Sigi3012/Midnight/internal/service"
	"github.com/Sigi3012/Midnight/internal/store"
	"github.com/Sigi3012/Midnight/models"
)

const (
	commandMapfeed = "mapfeed"
	commandMod     = "mod"

	subcommandSubscribe     = "subscribe"
	subcommandUnsubscribe   = "unsubscribe"
	subcommandSubscriptions = "subscriptions"
	subcommandShow          = "show"

	optionLink = "link"
	optionKind = "kind"
)

// CommandDefinitions returns the global slash commands of the bot.
func CommandDefinitions() []models.CommandDefinition {
	link := []models.CommandOption{{
		Type:        models.OptionString,
		Name:        optionLink,
		Description: "Link to the beatmapset",
		Required:    true,
	}}

	kinds := make([]models.CommandChoice, 0, len(models.ChannelKinds()))
	for _, kind := range models.ChannelKinds() {
		kinds = append(kinds, models.CommandChoice{Name: string(kind), Value: string(kind)})
	}
	kind := []models.CommandOption{{
		Type:        models.OptionString,
		Name:        optionKind,
		Description: "Feed to post in this channel",
		Required:    true,
		Choices:     kinds,
	}}

	return []models.CommandDefinition{
		{
			Name:        commandMapfeed,
			Description: "Qualified beatmap notifications",
			Options: []models.CommandOption{
				{Type: models.OptionSubcommand, Name: subcommandSubscribe, Description: "Get pinged when a qualified map changes status", Options: link},
				{Type: models.OptionSubcommand, Name: subcommandUnsubscribe, Description: "Stop getting pinged for a map", Options: link},
				{Type: models.OptionSubcommand, Name: subcommandSubscriptions, Description: "List the maps you are subscribed to"},
				{Type: models.OptionSubcommand, Name: subcommandShow, Description: "Post a card of a beatmapset", Options: link},
			},
		},
		{
			Name:        commandMod,
			Description: "Manage the feeds of this channel",
			Options: []models.CommandOption{
				{Type: models.OptionSubcommand, Name: subcommandSubscribe, Description: "Post a feed in this channel", Options: kind},
				{Type: models.OptionSubcommand, Name: subcommandUnsubscribe, Description: "Stop posting a feed in this channel", Options: kind},
			},
			DefaultMemberPermissions: strconv.FormatUint(models.PermissionAdministrator, 10),
		},
	}
}

func (h *Handler) command(ctx context.Context, in models.Interaction) error {
	switch in.Command.Name {
	case commandMapfeed:
		return h.mapfeedCommand(ctx, in)
	case commandMod:
		return h.modCommand(ctx, in)
	}

	return reply(ctx, in, app.MsgUnknownCommand)
}

func (h *Handler) mapfeedCommand(ctx context.Context, in models.Interaction) error {
	link := in.Command.Options[optionLink]

	switch in.Command.Subcommand {
	case subcommandSubscribe:
		status, err := h.subscriptions.Subscribe(ctx, in.UserID, link)
		if err != nil {
			return replyError(ctx, in, err)
		}
		return reply(ctx, in, notify.SubscriptionReply(status))

	case subcommandUnsubscribe:
		status, err := h.subscriptions.Unsubscribe(ctx, in.UserID, link)
		if err != nil {
			return replyError(ctx, in, err)
		}
		return reply(ctx, in, notify.SubscriptionReply(status))

	case subcommandSubscriptions:
		sets, err := h.subscriptions.Subscriptions(ctx, in.UserID)
		if err != nil {
			return replyError(ctx, in, err)
		}
		if len(sets) == 0 {
			return reply(ctx, in, app.MsgNoSubscriptions)
		}
		return in.Responder.Reply(ctx, notify.RenderSubscriptions(sets), true)

	case subcommandShow:
		set, err := h.subscriptions.Beatmapset(ctx, link)
		if err != nil {
			return replyError(ctx, in, err)
		}
		if err = h.showcaser.Showcase(ctx, in.ChannelID, in.UserID, set); err != nil {
			return fmt.Errorf("showcasing %d: %w", set.ID, err)
		}
		return reply(ctx, in, app.MsgBeatmapsetPosted)
	}

	return reply(ctx, in, app.MsgUnknownCommand)
}

func (h *Handler) modCommand(ctx context.Context, in models.Interaction) error {
	if !in.IsAdministrator() {
		return reply(ctx, in, app.MsgMissingPermissions)
	}

	kind := in.Command.Options[optionKind]

	switch in.Command.Subcommand {
	case subcommandSubscribe:
		status, err := h.subscriptions.SubscribeChannel(ctx, in.ChannelID, kind)
		if err != nil {
			return replyError(ctx, in, err)
		}
		format := app.MsgChannelSubscribed
		if status == models.SubscriptionAlreadyExists {
			format = app.MsgChannelAlreadySubscribed
		}
		return reply(ctx, in, fmt.Sprintf(format, in.ChannelID, kind))

	case subcommandUnsubscribe:
		status, err := h.subscriptions.UnsubscribeChannel(ctx, in.ChannelID, kind)
		if err != nil {
			return replyError(ctx, in, err)
		}
		format := app.MsgChannelUnsubscribed
		if status == models.SubscriptionDidNotExist {
			format = app.MsgChannelNotSubscribed
		}
		return reply(ctx, in, fmt.Sprintf(format, in.ChannelID, kind))
	}

	return reply(ctx, in, app.MsgUnknownCommand)
}

// reply answers with a message only the invoker sees.
func reply(ctx context.Context, in models.Interaction, content string) error {
	return in.Responder.Reply(ctx, models.Message{Content: content}, true)
}

// replyError tells the user what was wrong with their input. Errors that are
// not caused by the input are returned unanswered.
func replyError(ctx context.Context, in models.Interaction, err error) error {
	var content string
	switch {
	case errors.Is(err, service.ErrNoBeatmapLink):
		content = app.MsgNoBeatmapLink
	case errors.Is(err, service.ErrMalformedBeatmapLink):
		content = app.MsgMalformedBeatmapLink
	case errors.Is(err, store.ErrBeatmapsetNotTracked):
		content = app.MsgBeatmapsetNotQualified
	case errors.Is(err, adapter.ErrNotFound):
		content = app.MsgBeatmapsetNotFound
	case errors.Is(err, service.ErrInvalidChannelKind):
		content = app.MsgInvalidChannelKind
	default:
		return err
	}

	return reply(ctx, in, content)
}
