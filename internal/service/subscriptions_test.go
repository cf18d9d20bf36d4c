package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Sigi3012/Midnight/internal/logger"
	"github.com/Sigi3012/Midnight/internal/mock"
	"github.com/Sigi3012/Midnight/internal/store"
	"github.com/Sigi3012/Midnight/models"
)

func TestParseBeatmapLink(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int32
		wantErr error
	}{
		{name: "plain", input: "https://osu.ppy.sh/beatmapsets/2018512", want: 2018512},
		{name: "with difficulty fragment", input: "https://osu.ppy.sh/beatmapsets/42#osu/1337", want: 42},
		{name: "surrounded by text", input: "look at https://osu.ppy.sh/beatmapsets/7 please", want: 7},
		{name: "first link wins", input: "https://osu.ppy.sh/beatmapsets/1 https://osu.ppy.sh/beatmapsets/2", want: 1},
		{name: "no link", input: "hello", wantErr: ErrNoBeatmapLink},
		{name: "empty", input: "", wantErr: ErrNoBeatmapLink},
		{name: "other site", input: "https://example.com/beatmapsets/1", wantErr: ErrNoBeatmapLink},
		{name: "missing id", input: "https://osu.ppy.sh/beatmapsets/", wantErr: ErrMalformedBeatmapLink},
		{name: "plain http", input: "http://osu.ppy.sh/beatmapsets/12", wantErr: ErrMalformedBeatmapLink},
		{name: "id overflow", input: "https://osu.ppy.sh/beatmapsets/99999999999", wantErr: ErrMalformedBeatmapLink},
		{name: "zero id", input: "https://osu.ppy.sh/beatmapsets/0", wantErr: ErrMalformedBeatmapLink},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBeatmapLink(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

type subscriptionFixture struct {
	osu         *mock.MockOsuAPI
	beatmapsets *mock.MockBeatmapsetRepository
	channels    *mock.MockChannelRepository
	cache       *mock.MockChannelRefresher
	service     *SubscriptionService
}

func newSubscriptionFixture(t *testing.T) *subscriptionFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &subscriptionFixture{
		osu:         mock.NewMockOsuAPI(ctrl),
		beatmapsets: mock.NewMockBeatmapsetRepository(ctrl),
		channels:    mock.NewMockChannelRepository(ctrl),
		cache:       mock.NewMockChannelRefresher(ctrl),
	}
	f.service = NewSubscriptionService(f.osu, f.beatmapsets, f.channels, f.cache, logger.Nop())
	return f
}

func TestSubscriptionService_Subscribe(t *testing.T) {
	f := newSubscriptionFixture(t)
	ctx := context.Background()

	f.beatmapsets.EXPECT().AddSubscriber(gomock.Any(), int32(55), int64(100)).Return(models.SubscriptionAdded, nil)
	f.beatmapsets.EXPECT().AddSubscriber(gomock.Any(), int32(55), int64(100)).Return(models.SubscriptionAlreadyExists, nil)

	status, err := f.service.Subscribe(ctx, 100, "https://osu.ppy.sh/beatmapsets/55")
	require.NoError(t, err)
	assert.Equal(t, models.SubscriptionAdded, status)

	status, err = f.service.SubscribeTo(ctx, 100, 55)
	require.NoError(t, err)
	assert.Equal(t, models.SubscriptionAlreadyExists, status)
}

func TestSubscriptionService_Subscribe_Errors(t *testing.T) {
	f := newSubscriptionFixture(t)
	ctx := context.Background()

	_, err := f.service.Subscribe(ctx, 100, "not a link")
	assert.ErrorIs(t, err, ErrNoBeatmapLink)

	f.beatmapsets.EXPECT().AddSubscriber(gomock.Any(), int32(8), int64(100)).Return(models.SubscriptionStatus(0), store.ErrBeatmapsetNotTracked)

	_, err = f.service.Subscribe(ctx, 100, "https://osu.ppy.sh/beatmapsets/8")
	assert.ErrorIs(t, err, store.ErrBeatmapsetNotTracked)
}

func TestSubscriptionService_Unsubscribe(t *testing.T) {
	f := newSubscriptionFixture(t)
	ctx := context.Background()

	f.beatmapsets.EXPECT().RemoveSubscriber(gomock.Any(), int32(55), int64(100)).Return(models.SubscriptionRemoved, nil)
	f.beatmapsets.EXPECT().RemoveSubscriber(gomock.Any(), int32(55), int64(100)).Return(models.SubscriptionDidNotExist, nil)

	status, err := f.service.Unsubscribe(ctx, 100, "https://osu.ppy.sh/beatmapsets/55")
	require.NoError(t, err)
	assert.Equal(t, models.SubscriptionRemoved, status)

	status, err = f.service.UnsubscribeFrom(ctx, 100, 55)
	require.NoError(t, err)
	assert.Equal(t, models.SubscriptionDidNotExist, status)

	_, err = f.service.Unsubscribe(ctx, 100, "https://osu.ppy.sh/beatmapsets/x")
	assert.ErrorIs(t, err, ErrMalformedBeatmapLink)
}

func TestSubscriptionService_Subscriptions(t *testing.T) {
	f := newSubscriptionFixture(t)

	early := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	late := early.Add(48 * time.Hour)

	f.beatmapsets.EXPECT().ListSubscriptions(gomock.Any(), int64(100)).Return([]int32{1, 2, 3}, nil)
	f.osu.EXPECT().FetchBeatmapsets(gomock.Any(), []int32{1, 2, 3}).Return([]models.Beatmapset{
		{ID: 1},
		{ID: 2, RankedDate: &late},
		{ID: 3, RankedDate: &early},
	}, nil)

	sets, err := f.service.Subscriptions(context.Background(), 100)
	require.NoError(t, err)
	require.Len(t, sets, 3)
	assert.Equal(t, []int32{3, 2, 1}, []int32{sets[0].ID, sets[1].ID, sets[2].ID})
}

func TestSubscriptionService_Subscriptions_None(t *testing.T) {
	f := newSubscriptionFixture(t)

	f.beatmapsets.EXPECT().ListSubscriptions(gomock.Any(), int64(100)).Return(nil, nil)

	sets, err := f.service.Subscriptions(context.Background(), 100)
	require.NoError(t, err)
	assert.Empty(t, sets)
}

func TestSubscriptionService_Beatmapset(t *testing.T) {
	f := newSubscriptionFixture(t)

	f.osu.EXPECT().FetchBeatmapset(gomock.Any(), int32(77)).Return(qualified(77), nil)

	set, err := f.service.Beatmapset(context.Background(), "https://osu.ppy.sh/beatmapsets/77")
	require.NoError(t, err)
	assert.Equal(t, int32(77), set.ID)
}

func TestSubscriptionService_SubscribeChannel(t *testing.T) {
	f := newSubscriptionFixture(t)
	ctx := context.Background()

	gomock.InOrder(
		f.channels.EXPECT().SubscribeChannel(gomock.Any(), int64(10), models.ChannelKindGroups).Return(models.SubscriptionAdded, nil),
		f.cache.EXPECT().Refresh(gomock.Any(), models.ChannelKindGroups).Return(nil),
	)

	status, err := f.service.SubscribeChannel(ctx, 10, "groups")
	require.NoError(t, err)
	assert.Equal(t, models.SubscriptionAdded, status)

	_, err = f.service.SubscribeChannel(ctx, 10, "news")
	assert.ErrorIs(t, err, ErrInvalidChannelKind)
}

func TestSubscriptionService_UnsubscribeChannel_RefreshFailureIsNotFatal(t *testing.T) {
	f := newSubscriptionFixture(t)

	f.channels.EXPECT().UnsubscribeChannel(gomock.Any(), int64(10), models.ChannelKindMapfeed).Return(models.SubscriptionRemoved, nil)
	f.cache.EXPECT().Refresh(gomock.Any(), models.ChannelKindMapfeed).Return(errors.New("db down"))

	status, err := f.service.UnsubscribeChannel(context.Background(), 10, "mapfeed")
	require.NoError(t, err)
	assert.Equal(t, models.SubscriptionRemoved, status)
}

func TestSubscriptionService_ChannelRepositoryFailure(t *testing.T) {
	f := newSubscriptionFixture(t)
	boom := errors.New("boom")

	f.channels.EXPECT().SubscribeChannel(gomock.Any(), int64(10), models.ChannelKindMapfeed).Return(models.SubscriptionStatus(0), boom)

	_, err := f.service.SubscribeChannel(context.Background(), 10, "mapfeed")
	assert.ErrorIs(t, err, boom)
}
