package service

import (
	"Conexus/internal/pkg/netvalue"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newNetworkFixture(userIDs ...uint64) (NetworkService, *fakeConnectionRepo, *fakeActivityRepo) {
	connectionRepo := newFakeConnectionRepo()
	activityRepo := newFakeActivityRepo()
	svc := NewNetworkService(
		connectionRepo,
		newFakeUserRepo(userIDs...),
		activityRepo,
		newFakeCache(),
		&stubPriorSize{size: 0},
		NewEqualWeightClassifier(connectionRepo),
	)
	return svc, connectionRepo, activityRepo
}

func TestCreateConnection(t *testing.T) {
	svc, repo, activityRepo := newNetworkFixture(1, 2)
	ctx := context.Background()

	connection, err := svc.CreateConnection(ctx, 1, 2)
	require.NoError(t, err)
	require.NotNil(t, connection)
	assert.Equal(t, uint64(1), connection.UserID)
	assert.Equal(t, uint64(2), connection.ConnectedUserID)
	assert.Equal(t, netvalue.UnitValue, connection.Value)

	// Both directions exist and each user sees exactly one connection.
	assert.Len(t, repo.rows, 2)
	size1, err := svc.GetNetworkSize(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), size1)
	size2, err := svc.GetNetworkSize(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(1), size2)

	// The interaction is counted for both endpoints.
	assert.Equal(t, 1, activityRepo.counts["1:connection_interactions"])
	assert.Equal(t, 1, activityRepo.counts["2:connection_interactions"])
}

func TestCreateConnectionSelf(t *testing.T) {
	svc, _, _ := newNetworkFixture(1)

	_, err := svc.CreateConnection(context.Background(), 1, 1)
	assert.ErrorIs(t, err, ErrConnectionSelf)
}

func TestCreateConnectionUserMissing(t *testing.T) {
	svc, _, _ := newNetworkFixture(1)

	_, err := svc.CreateConnection(context.Background(), 1, 99)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestCreateConnectionDuplicate(t *testing.T) {
	svc, repo, _ := newNetworkFixture(1, 2)
	ctx := context.Background()

	_, err := svc.CreateConnection(ctx, 1, 2)
	require.NoError(t, err)

	// Same direction and the reverse direction both conflict, and the
	// stored rows are untouched.
	_, err = svc.CreateConnection(ctx, 1, 2)
	assert.ErrorIs(t, err, ErrConnectionExists)
	_, err = svc.CreateConnection(ctx, 2, 1)
	assert.ErrorIs(t, err, ErrConnectionExists)
	assert.Len(t, repo.rows, 2)
}

func TestRemoveConnection(t *testing.T) {
	svc, repo, _ := newNetworkFixture(1, 2)
	ctx := context.Background()

	_, err := svc.CreateConnection(ctx, 1, 2)
	require.NoError(t, err)

	// Removal works from the other endpoint too.
	require.NoError(t, svc.RemoveConnection(ctx, 2, 1))
	assert.Empty(t, repo.rows)

	size, err := svc.GetNetworkSize(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(0), size)
}

func TestRemoveConnectionMissing(t *testing.T) {
	svc, _, _ := newNetworkFixture(1, 2)

	err := svc.RemoveConnection(context.Background(), 1, 2)
	assert.ErrorIs(t, err, ErrConnectionNotFound)
}

func TestCalculateNetworkValue(t *testing.T) {
	svc, repo, _ := newNetworkFixture(1)
	ctx := context.Background()

	value, err := svc.CalculateNetworkValue(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 0.0, value)

	for i := uint64(0); i < 100; i++ {
		repo.seedPair(1, 1000+i, netvalue.UnitValue, time.Now())
	}

	// The earlier zero went through the cache; a fresh fixture sees the rows.
	svc2 := NewNetworkService(repo, newFakeUserRepo(1), newFakeActivityRepo(), newFakeCache(), &stubPriorSize{}, NewEqualWeightClassifier(repo))
	value, err = svc2.CalculateNetworkValue(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 314.0, value)
}

func TestGetNetworkForUserPagination(t *testing.T) {
	svc, repo, _ := newNetworkFixture(1)
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	for i := uint64(0); i < 25; i++ {
		repo.seedPair(1, 100+i, netvalue.UnitValue, base.Add(time.Duration(i)*time.Minute))
	}

	connections, total, err := svc.GetNetworkForUser(ctx, 1, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(25), total)
	require.Len(t, connections, 10)
	// Newest first.
	assert.Equal(t, uint64(124), connections[0].ConnectedUserID)

	connections, _, err = svc.GetNetworkForUser(ctx, 1, 3, 10)
	require.NoError(t, err)
	assert.Len(t, connections, 5)

	// Out-of-range values fall back to the defaults and the cap.
	connections, _, err = svc.GetNetworkForUser(ctx, 0, -5, 10)
	require.NoError(t, err)
	assert.Empty(t, connections)
}

func TestGetNetworkAnalytics(t *testing.T) {
	connectionRepo := newFakeConnectionRepo()
	for i := uint64(0); i < 150; i++ {
		connectionRepo.seedPair(1, 1000+i, netvalue.UnitValue, time.Now())
	}
	svc := NewNetworkService(
		connectionRepo,
		newFakeUserRepo(1),
		newFakeActivityRepo(),
		newFakeCache(),
		&stubPriorSize{size: 100},
		NewEqualWeightClassifier(connectionRepo),
	)

	analytics, err := svc.GetNetworkAnalytics(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(150), analytics.NetworkSize)
	assert.Equal(t, 471.0, analytics.NetworkValue)
	assert.Equal(t, 50.0, analytics.GrowthRate)
	assert.Len(t, analytics.Connections, 150)

	var sum int64
	for _, n := range analytics.IndustryDistribution {
		sum += n
	}
	assert.Equal(t, int64(150), sum)
}

func TestGetNetworkAnalyticsZeroBaseline(t *testing.T) {
	svc, repo, _ := newNetworkFixture(1)
	repo.seedPair(1, 2, netvalue.UnitValue, time.Now())

	analytics, err := svc.GetNetworkAnalytics(context.Background(), 1)
	require.NoError(t, err)
	// No prior history: the rate is zero, never NaN or an error.
	assert.Equal(t, 0.0, analytics.GrowthRate)
}

func TestNormalizePagination(t *testing.T) {
	cases := []struct {
		page, limit         int
		wantPage, wantLimit int
	}{
		{1, 10, 1, 10},
		{0, 0, 1, 10},
		{-3, -1, 1, 10},
		{2, 100, 2, 100},
		{2, 101, 2, 100},
		{5, 1, 5, 1},
	}
	for _, tc := range cases {
		page, limit := NormalizePagination(tc.page, tc.limit)
		assert.Equal(t, tc.wantPage, page)
		assert.Equal(t, tc.wantLimit, limit)
	}
}
