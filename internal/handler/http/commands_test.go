package http

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Sigi3012/Midnight/internal/adapter"
	"github.com/Sigi3012/Midnight/internal/app"
	"github.com/Sigi3012/Midnight/internal/service"
	"github.com/Sigi3012/Midnight/internal/store"
	"github.com/Sigi3012/Midnight/models"
)

type recordingResponder struct {
	replies   []models.Message
	ephemeral []bool
	acks      int
}

func (r *recordingResponder) Acknowledge(context.Context) error {
	r.acks++
	return nil
}

func (r *recordingResponder) Reply(_ context.Context, msg models.Message, ephemeral bool) error {
	r.replies = append(r.replies, msg)
	r.ephemeral = append(r.ephemeral, ephemeral)
	return nil
}

func (r *recordingResponder) content(t *testing.T) string {
	t.Helper()
	require.Len(t, r.replies, 1)
	assert.True(t, r.ephemeral[0], "command replies are ephemeral")
	return r.replies[0].Content
}

func invoke(name, subcommand string, options map[string]string, permissions uint64) (models.Interaction, *recordingResponder) {
	resp := &recordingResponder{}
	return models.Interaction{
		Type:        models.InteractionApplicationCmd,
		ChannelID:   testChannelID,
		UserID:      testUserID,
		Permissions: permissions,
		Command:     models.Command{Name: name, Subcommand: subcommand, Options: options},
		Responder:   resp,
	}, resp
}

const testLink = "https://osu.ppy.sh/beatmapsets/2018512"

func TestCommand_MapfeedSubscribe(t *testing.T) {
	tests := []struct {
		name        string
		subcommand  string
		status      models.SubscriptionStatus
		err         error
		wantContent string
		wantErr     bool
	}{
		{name: "subscribed", subcommand: subcommandSubscribe, status: models.SubscriptionAdded, wantContent: app.MsgSubscribed},
		{name: "already subscribed", subcommand: subcommandSubscribe, status: models.SubscriptionAlreadyExists, wantContent: app.MsgAlreadySubscribed},
		{name: "not qualified", subcommand: subcommandSubscribe, err: fmt.Errorf("subscribing: %w", store.ErrBeatmapsetNotTracked), wantContent: app.MsgBeatmapsetNotQualified},
		{name: "no link", subcommand: subcommandSubscribe, err: service.ErrNoBeatmapLink, wantContent: app.MsgNoBeatmapLink},
		{name: "malformed link", subcommand: subcommandSubscribe, err: fmt.Errorf("%w: x", service.ErrMalformedBeatmapLink), wantContent: app.MsgMalformedBeatmapLink},
		{name: "store failure", subcommand: subcommandSubscribe, err: assert.AnError, wantErr: true},
		{name: "unsubscribed", subcommand: subcommandUnsubscribe, status: models.SubscriptionRemoved, wantContent: app.MsgUnsubscribed},
		{name: "was not subscribed", subcommand: subcommandUnsubscribe, status: models.SubscriptionDidNotExist, wantContent: app.MsgNotSubscribed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newHandlerFixture(t)
			in, resp := invoke(commandMapfeed, tt.subcommand, map[string]string{optionLink: testLink}, 0)

			if tt.subcommand == subcommandSubscribe {
				f.subscriptions.EXPECT().Subscribe(gomock.Any(), int64(testUserID), testLink).Return(tt.status, tt.err)
			} else {
				f.subscriptions.EXPECT().Unsubscribe(gomock.Any(), int64(testUserID), testLink).Return(tt.status, tt.err)
			}

			err := f.h.command(context.Background(), in)

			if tt.wantErr {
				require.ErrorIs(t, err, assert.AnError)
				assert.Empty(t, resp.replies)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantContent, resp.content(t))
		})
	}
}

func TestCommand_MapfeedSubscriptions(t *testing.T) {
	ranked := time.Date(2026, 5, 2, 0, 0, 0, 0, time.UTC)

	t.Run("lists beatmapsets", func(t *testing.T) {
		f := newHandlerFixture(t)
		in, resp := invoke(commandMapfeed, subcommandSubscriptions, nil, 0)

		f.subscriptions.EXPECT().Subscriptions(gomock.Any(), int64(testUserID)).Return([]models.Beatmapset{
			{ID: 2, Title: "Second", RankedDate: &ranked},
			{ID: 1, Title: "First"},
		}, nil)

		require.NoError(t, f.h.command(context.Background(), in))
		require.Len(t, resp.replies, 1)
		require.Len(t, resp.replies[0].Embeds, 1)
		embed := resp.replies[0].Embeds[0]
		assert.Equal(t, app.MsgSubscriptionsTitle, embed.Title)
		assert.Equal(t, "- [Second](https://osu.ppy.sh/beatmapsets/2)\n- [First](https://osu.ppy.sh/beatmapsets/1)", embed.Description)
		assert.True(t, resp.ephemeral[0])
	})

	t.Run("none", func(t *testing.T) {
		f := newHandlerFixture(t)
		in, resp := invoke(commandMapfeed, subcommandSubscriptions, nil, 0)

		f.subscriptions.EXPECT().Subscriptions(gomock.Any(), int64(testUserID)).Return(nil, nil)

		require.NoError(t, f.h.command(context.Background(), in))
		assert.Equal(t, app.MsgNoSubscriptions, resp.content(t))
	})
}

func TestCommand_MapfeedShow(t *testing.T) {
	set := models.Beatmapset{ID: 2018512, Title: "Blue Zenith"}

	t.Run("posts the card", func(t *testing.T) {
		f := newHandlerFixture(t)
		in, resp := invoke(commandMapfeed, subcommandShow, map[string]string{optionLink: testLink}, 0)

		gomock.InOrder(
			f.subscriptions.EXPECT().Beatmapset(gomock.Any(), testLink).Return(set, nil),
			f.showcaser.EXPECT().Showcase(gomock.Any(), int64(testChannelID), int64(testUserID), set).Return(nil),
		)

		require.NoError(t, f.h.command(context.Background(), in))
		assert.Equal(t, app.MsgBeatmapsetPosted, resp.content(t))
	})

	t.Run("unknown beatmapset", func(t *testing.T) {
		f := newHandlerFixture(t)
		in, resp := invoke(commandMapfeed, subcommandShow, map[string]string{optionLink: testLink}, 0)

		f.subscriptions.EXPECT().Beatmapset(gomock.Any(), testLink).
			Return(models.Beatmapset{}, &adapter.StatusError{Code: 404, Err: adapter.ErrNotFound})

		require.NoError(t, f.h.command(context.Background(), in))
		assert.Equal(t, app.MsgBeatmapsetNotFound, resp.content(t))
	})

	t.Run("posting fails", func(t *testing.T) {
		f := newHandlerFixture(t)
		in, resp := invoke(commandMapfeed, subcommandShow, map[string]string{optionLink: testLink}, 0)

		f.subscriptions.EXPECT().Beatmapset(gomock.Any(), testLink).Return(set, nil)
		f.showcaser.EXPECT().Showcase(gomock.Any(), int64(testChannelID), int64(testUserID), set).Return(assert.AnError)

		err := f.h.command(context.Background(), in)
		require.ErrorIs(t, err, assert.AnError)
		assert.Empty(t, resp.replies)
	})
}

func TestCommand_Mod(t *testing.T) {
	admin := models.PermissionAdministrator | 1<<11

	tests := []struct {
		name        string
		subcommand  string
		kind        string
		permissions uint64
		setup       func(f *handlerFixture)
		wantContent string
	}{
		{
			name:        "requires administrator",
			subcommand:  subcommandSubscribe,
			kind:        "mapfeed",
			permissions: 1 << 11,
			wantContent: app.MsgMissingPermissions,
		},
		{
			name:        "subscribe",
			subcommand:  subcommandSubscribe,
			kind:        "mapfeed",
			permissions: admin,
			setup: func(f *handlerFixture) {
				f.subscriptions.EXPECT().SubscribeChannel(gomock.Any(), int64(testChannelID), "mapfeed").Return(models.SubscriptionAdded, nil)
			},
			wantContent: "Subscribed <#10> to mapfeed successfully",
		},
		{
			name:        "already subscribed",
			subcommand:  subcommandSubscribe,
			kind:        "groups",
			permissions: admin,
			setup: func(f *handlerFixture) {
				f.subscriptions.EXPECT().SubscribeChannel(gomock.Any(), int64(testChannelID), "groups").Return(models.SubscriptionAlreadyExists, nil)
			},
			wantContent: "<#10> is already subscribed to groups",
		},
		{
			name:        "unsubscribe",
			subcommand:  subcommandUnsubscribe,
			kind:        "groups",
			permissions: admin,
			setup: func(f *handlerFixture) {
				f.subscriptions.EXPECT().UnsubscribeChannel(gomock.Any(), int64(testChannelID), "groups").Return(models.SubscriptionRemoved, nil)
			},
			wantContent: "Unsubscribed <#10> from groups successfully",
		},
		{
			name:        "was not subscribed",
			subcommand:  subcommandUnsubscribe,
			kind:        "mapfeed",
			permissions: admin,
			setup: func(f *handlerFixture) {
				f.subscriptions.EXPECT().UnsubscribeChannel(gomock.Any(), int64(testChannelID), "mapfeed").Return(models.SubscriptionDidNotExist, nil)
			},
			wantContent: "<#10> was not subscribed to mapfeed",
		},
		{
			name:        "unknown feed",
			subcommand:  subcommandSubscribe,
			kind:        "news",
			permissions: admin,
			setup: func(f *handlerFixture) {
				f.subscriptions.EXPECT().SubscribeChannel(gomock.Any(), int64(testChannelID), "news").
					Return(models.SubscriptionStatus(0), fmt.Errorf("%w: news", service.ErrInvalidChannelKind))
			},
			wantContent: app.MsgInvalidChannelKind,
		},
		{
			name:        "unknown subcommand",
			subcommand:  "purge",
			permissions: admin,
			wantContent: app.MsgUnknownCommand,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newHandlerFixture(t)
			if tt.setup != nil {
				tt.setup(f)
			}
			in, resp := invoke(commandMod, tt.subcommand, map[string]string{optionKind: tt.kind}, tt.permissions)

			require.NoError(t, f.h.command(context.Background(), in))
			assert.Equal(t, tt.wantContent, resp.content(t))
		})
	}
}

func TestCommand_Unknown(t *testing.T) {
	f := newHandlerFixture(t)
	in, resp := invoke("roll", "", nil, 0)

	require.NoError(t, f.h.command(context.Background(), in))
	assert.Equal(t, app.MsgUnknownCommand, resp.content(t))
}

func TestCommandDefinitions(t *testing.T) {
	defs := CommandDefinitions()
	require.Len(t, defs, 2)

	mapfeed, mod := defs[0], defs[1]
	assert.Equal(t, commandMapfeed, mapfeed.Name)
	assert.Empty(t, mapfeed.DefaultMemberPermissions)

	var subcommands []string
	for _, opt := range mapfeed.Options {
		assert.Equal(t, models.OptionSubcommand, opt.Type)
		subcommands = append(subcommands, opt.Name)
	}
	assert.Equal(t, []string{subcommandSubscribe, subcommandUnsubscribe, subcommandSubscriptions, subcommandShow}, subcommands)

	assert.Equal(t, commandMod, mod.Name)
	assert.Equal(t, "8", mod.DefaultMemberPermissions)
	require.Len(t, mod.Options, 2)
	kind := mod.Options[0].Options[0]
	assert.Equal(t, optionKind, kind.Name)
	assert.True(t, kind.Required)
	assert.Equal(t, []models.CommandChoice{{Name: "mapfeed", Value: "mapfeed"}, {Name: "groups", Value: "groups"}}, kind.Choices)
}
