package service

import (
	"Conexus/internal/model"
	"Conexus/internal/pkg/consts"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newInviteFixture(userIDs ...uint64) (InviteService, *fakeInviteRepo, *fakeInviteMetricRepo, *stubConversions) {
	inviteRepo := newFakeInviteRepo()
	metricRepo := &fakeInviteMetricRepo{}
	conversions := &stubConversions{byInvite: make(map[uint64]int64)}
	svc := NewInviteService(
		inviteRepo,
		metricRepo,
		newFakeUserRepo(userIDs...),
		newFakeActivityRepo(),
		&fakeClickEventRepo{},
		conversions,
	)
	return svc, inviteRepo, metricRepo, conversions
}

func TestCreateInvite(t *testing.T) {
	svc, _, _, _ := newInviteFixture(1)
	ctx := context.Background()

	invite, err := svc.CreateInvite(ctx, 1, "spring campaign")
	require.NoError(t, err)
	require.NotNil(t, invite)
	assert.Equal(t, uint64(1), invite.UserID)
	assert.Equal(t, "spring campaign", invite.Name)
	require.True(t, strings.HasPrefix(invite.URL, consts.InviteBasePath))
	assert.Len(t, strings.TrimPrefix(invite.URL, consts.InviteBasePath), 32)
}

func TestCreateInviteValidation(t *testing.T) {
	svc, _, _, _ := newInviteFixture(1)
	ctx := context.Background()

	_, err := svc.CreateInvite(ctx, 1, "")
	assert.ErrorIs(t, err, ErrParamInvalid)

	_, err = svc.CreateInvite(ctx, 99, "campaign")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestCreateInviteUniqueURLs(t *testing.T) {
	svc, repo, _, _ := newInviteFixture(1)
	ctx := context.Background()

	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		invite, err := svc.CreateInvite(ctx, 1, "campaign")
		require.NoError(t, err)
		_, dup := seen[invite.URL]
		require.False(t, dup, "duplicate invite url generated")
		seen[invite.URL] = struct{}{}
	}
	assert.Len(t, repo.invites, 100)
}

func TestTrackInviteClick(t *testing.T) {
	svc, repo, _, _ := newInviteFixture(1)
	ctx := context.Background()

	invite, err := svc.CreateInvite(ctx, 1, "campaign")
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		require.NoError(t, svc.TrackInviteClick(ctx, invite.ID, ClickMeta{UserAgent: "test", IPAddress: "127.0.0.1"}))
	}
	stored, err := repo.GetInviteByID(ctx, invite.ID)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), stored.ClickCount)
}

func TestTrackInviteClickMissing(t *testing.T) {
	svc, _, _, _ := newInviteFixture(1)

	err := svc.TrackInviteClick(context.Background(), 404, ClickMeta{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInviteNotFound)
	assert.Contains(t, err.Error(), TrackInviteFailedMsg)
}

func TestTrackInviteClickStoreError(t *testing.T) {
	svc, repo, _, _ := newInviteFixture(1)
	storeErr := errors.New("connection refused")
	repo.failOn = storeErr

	err := svc.TrackInviteClick(context.Background(), 1, ClickMeta{})
	require.Error(t, err)
	// The underlying cause survives the wrap and the stable message is
	// attached.
	assert.ErrorIs(t, err, storeErr)
	assert.Contains(t, err.Error(), TrackInviteFailedMsg)
}

func TestGetInviteAnalytics(t *testing.T) {
	svc, repo, metricRepo, conversions := newInviteFixture(1)
	ctx := context.Background()

	invite := &model.Invite{UserID: 1, Name: "campaign", URL: consts.InviteBasePath + "abc", ClickCount: 45, CreatedAt: time.Now()}
	require.NoError(t, repo.CreateInvite(ctx, invite))
	conversions.byInvite[invite.ID] = 10

	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 3)
	clicks := []int{10, 20, 15}
	for i, n := range clicks {
		require.NoError(t, metricRepo.AddClicks(ctx, invite.ID, start.AddDate(0, 0, i), n))
	}

	analytics, err := svc.GetInviteAnalytics(ctx, invite.ID, start, end)
	require.NoError(t, err)
	assert.Equal(t, int64(45), analytics.TotalClicks)
	assert.Equal(t, 15.0, analytics.ClicksPerDay)
	assert.Equal(t, 0.22, analytics.ConversionRate)
	require.Len(t, analytics.ClicksByDay, 3)
	assert.Equal(t, "2026-08-01", analytics.ClicksByDay[0].Date)
	assert.Equal(t, 10, analytics.ClicksByDay[0].Clicks)
}

func TestGetInviteAnalyticsValidation(t *testing.T) {
	svc, _, _, _ := newInviteFixture(1)
	ctx := context.Background()
	day := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	_, err := svc.GetInviteAnalytics(ctx, 1, time.Time{}, day)
	assert.ErrorIs(t, err, ErrParamInvalid)

	_, err = svc.GetInviteAnalytics(ctx, 1, day.AddDate(0, 0, 1), day)
	assert.ErrorIs(t, err, ErrDateRangeInvalid)

	_, err = svc.GetInviteAnalytics(ctx, 404, day, day.AddDate(0, 0, 1))
	assert.ErrorIs(t, err, ErrInviteNotFound)
}

func TestGetInviteAnalyticsZeroClicks(t *testing.T) {
	svc, repo, _, _ := newInviteFixture(1)
	ctx := context.Background()

	invite := &model.Invite{UserID: 1, Name: "quiet", URL: consts.InviteBasePath + "quiet", CreatedAt: time.Now()}
	require.NoError(t, repo.CreateInvite(ctx, invite))

	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	analytics, err := svc.GetInviteAnalytics(ctx, invite.ID, start, start.AddDate(0, 0, 7))
	require.NoError(t, err)
	// Zero denominators produce zero rates, never NaN.
	assert.Equal(t, 0.0, analytics.ConversionRate)
	assert.Equal(t, 0.0, analytics.ClicksPerDay)
	assert.Empty(t, analytics.ClicksByDay)
}

func TestGetInvitesByUser(t *testing.T) {
	svc, repo, _, _ := newInviteFixture(1)
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 12; i++ {
		require.NoError(t, repo.CreateInvite(ctx, &model.Invite{
			UserID:    1,
			Name:      "campaign",
			URL:       consts.InviteBasePath + strings.Repeat("a", i+1),
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	invites, total, err := svc.GetInvitesByUser(ctx, 1, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(12), total)
	assert.Len(t, invites, 10)

	invites, _, err = svc.GetInvitesByUser(ctx, 1, 2, 10)
	require.NoError(t, err)
	assert.Len(t, invites, 2)
}
