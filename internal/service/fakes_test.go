package service

import (
	"Conexus/internal/model"
	mongodb "Conexus/internal/pkg/mongo"
	"Conexus/internal/repository"
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"gorm.io/gorm"
)

// In-memory stand-ins for the storage layer. They mirror the semantics the
// real implementations get from MySQL, Redis and Mongo, including the
// duplicate-key signal from the unique indexes.

type fakeUserRepo struct {
	users map[uint64]*model.User
}

func newFakeUserRepo(ids ...uint64) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[uint64]*model.User)}
	for _, id := range ids {
		r.users[id] = &model.User{ID: id}
	}
	return r
}

func (r *fakeUserRepo) GetUserById(_ context.Context, id uint64) (*model.User, error) {
	return r.users[id], nil
}

func (r *fakeUserRepo) GetUserByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range r.users {
		if u.Username != nil && *u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetUserByPhone(_ context.Context, phone string) (*model.User, error) {
	for _, u := range r.users {
		if u.Phone != nil && *u.Phone == phone {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) ExistsByID(_ context.Context, id uint64) (bool, error) {
	_, ok := r.users[id]
	return ok, nil
}

func (r *fakeUserRepo) CreateUser(_ context.Context, user *model.User) error {
	if user.ID == 0 {
		user.ID = uint64(len(r.users) + 1)
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) UpdateUser(_ context.Context, user *model.User) error {
	r.users[user.ID] = user
	return nil
}

type fakeConnectionRepo struct {
	rows   []*model.Connection
	nextID uint64
}

func newFakeConnectionRepo() *fakeConnectionRepo {
	return &fakeConnectionRepo{nextID: 1}
}

// seedPair inserts both directional rows directly, bypassing the service.
func (r *fakeConnectionRepo) seedPair(userID, connectedUserID uint64, value float64, at time.Time) {
	for _, pair := range [][2]uint64{{userID, connectedUserID}, {connectedUserID, userID}} {
		r.rows = append(r.rows, &model.Connection{
			ID:              r.nextID,
			UserID:          pair[0],
			ConnectedUserID: pair[1],
			Value:           value,
			ConnectedAt:     at,
		})
		r.nextID++
	}
}

func (r *fakeConnectionRepo) GetConnectionsByUser(_ context.Context, userID uint64, limit, offset int) ([]*model.Connection, error) {
	matched := make([]*model.Connection, 0)
	for _, row := range r.rows {
		if row.UserID == userID {
			matched = append(matched, row)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].ConnectedAt.After(matched[j].ConnectedAt)
	})
	if offset >= len(matched) {
		return nil, nil
	}
	matched = matched[offset:]
	if limit < len(matched) {
		matched = matched[:limit]
	}
	return matched, nil
}

func (r *fakeConnectionRepo) GetConnectionCount(_ context.Context, userID uint64) (int64, error) {
	var count int64
	for _, row := range r.rows {
		if row.UserID == userID {
			count++
		}
	}
	return count, nil
}

func (r *fakeConnectionRepo) GetConnectionBetween(_ context.Context, userID, connectedUserID uint64) (*model.Connection, error) {
	for _, row := range r.rows {
		if (row.UserID == userID && row.ConnectedUserID == connectedUserID) ||
			(row.UserID == connectedUserID && row.ConnectedUserID == userID) {
			return row, nil
		}
	}
	return nil, nil
}

func (r *fakeConnectionRepo) CreateConnectionPair(ctx context.Context, forward, reverse *model.Connection) error {
	for _, row := range r.rows {
		if (row.UserID == forward.UserID && row.ConnectedUserID == forward.ConnectedUserID) ||
			(row.UserID == reverse.UserID && row.ConnectedUserID == reverse.ConnectedUserID) {
			return gorm.ErrDuplicatedKey
		}
	}
	forward.ID = r.nextID
	r.nextID++
	reverse.ID = r.nextID
	r.nextID++
	r.rows = append(r.rows, forward, reverse)
	return nil
}

func (r *fakeConnectionRepo) DeleteConnectionPair(_ context.Context, userID, connectedUserID uint64) (int64, error) {
	kept := r.rows[:0]
	var deleted int64
	for _, row := range r.rows {
		if (row.UserID == userID && row.ConnectedUserID == connectedUserID) ||
			(row.UserID == connectedUserID && row.ConnectedUserID == userID) {
			deleted++
			continue
		}
		kept = append(kept, row)
	}
	r.rows = kept
	return deleted, nil
}

type fakeInviteRepo struct {
	invites []*model.Invite
	nextID  uint64
	failOn  error
}

func newFakeInviteRepo() *fakeInviteRepo {
	return &fakeInviteRepo{nextID: 1}
}

func (r *fakeInviteRepo) CreateInvite(_ context.Context, invite *model.Invite) error {
	for _, existing := range r.invites {
		if existing.URL == invite.URL {
			return gorm.ErrDuplicatedKey
		}
	}
	invite.ID = r.nextID
	r.nextID++
	r.invites = append(r.invites, invite)
	return nil
}

func (r *fakeInviteRepo) GetInviteByID(_ context.Context, id uint64) (*model.Invite, error) {
	for _, invite := range r.invites {
		if invite.ID == id {
			return invite, nil
		}
	}
	return nil, nil
}

func (r *fakeInviteRepo) GetInvitesByUser(_ context.Context, userID uint64, limit, offset int) ([]*model.Invite, error) {
	matched := make([]*model.Invite, 0)
	for _, invite := range r.invites {
		if invite.UserID == userID {
			matched = append(matched, invite)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	if offset >= len(matched) {
		return nil, nil
	}
	matched = matched[offset:]
	if limit < len(matched) {
		matched = matched[:limit]
	}
	return matched, nil
}

func (r *fakeInviteRepo) GetInviteCount(_ context.Context, userID uint64) (int64, error) {
	var count int64
	for _, invite := range r.invites {
		if invite.UserID == userID {
			count++
		}
	}
	return count, nil
}

func (r *fakeInviteRepo) IncrementClickCount(_ context.Context, id uint64) (int64, error) {
	if r.failOn != nil {
		return 0, r.failOn
	}
	for _, invite := range r.invites {
		if invite.ID == id {
			invite.ClickCount++
			return 1, nil
		}
	}
	return 0, nil
}

type fakeInviteMetricRepo struct {
	metrics []*model.InviteDailyMetric
}

func (r *fakeInviteMetricRepo) AddClicks(_ context.Context, inviteID uint64, date time.Time, clicks int) error {
	for _, m := range r.metrics {
		if m.InviteID == inviteID && m.MetricDate.Equal(date) {
			m.ClickCount += clicks
			return nil
		}
	}
	r.metrics = append(r.metrics, &model.InviteDailyMetric{
		InviteID:   inviteID,
		MetricDate: date,
		ClickCount: clicks,
	})
	return nil
}

func (r *fakeInviteMetricRepo) GetMetricsBetween(_ context.Context, inviteID uint64, start, end time.Time) ([]*model.InviteDailyMetric, error) {
	matched := make([]*model.InviteDailyMetric, 0)
	for _, m := range r.metrics {
		if m.InviteID == inviteID && !m.MetricDate.Before(start) && !m.MetricDate.After(end) {
			matched = append(matched, m)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].MetricDate.Before(matched[j].MetricDate)
	})
	return matched, nil
}

type fakeNetworkMetricRepo struct {
	metrics []*model.NetworkMetric
}

func (r *fakeNetworkMetricRepo) SaveOrUpdateMetric(_ context.Context, metric *model.NetworkMetric) error {
	for _, m := range r.metrics {
		if m.UserID == metric.UserID && m.MetricDate.Equal(metric.MetricDate) {
			m.NetworkSize = metric.NetworkSize
			return nil
		}
	}
	r.metrics = append(r.metrics, metric)
	return nil
}

func (r *fakeNetworkMetricRepo) GetMetricsSince(_ context.Context, userID uint64, days int) ([]*model.NetworkMetric, error) {
	since := time.Now().AddDate(0, 0, -days)
	matched := make([]*model.NetworkMetric, 0)
	for _, m := range r.metrics {
		if m.UserID == userID && !m.MetricDate.Before(since) {
			matched = append(matched, m)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].MetricDate.Before(matched[j].MetricDate)
	})
	return matched, nil
}

func (r *fakeNetworkMetricRepo) GetMetricByDate(_ context.Context, userID uint64, date time.Time) (*model.NetworkMetric, error) {
	for _, m := range r.metrics {
		if m.UserID == userID && m.MetricDate.Equal(date) {
			return m, nil
		}
	}
	return nil, nil
}

func (r *fakeNetworkMetricRepo) GetLatestMetricBefore(_ context.Context, userID uint64, date time.Time) (*model.NetworkMetric, error) {
	var latest *model.NetworkMetric
	for _, m := range r.metrics {
		if m.UserID != userID || m.MetricDate.After(date) {
			continue
		}
		if latest == nil || m.MetricDate.After(latest.MetricDate) {
			latest = m
		}
	}
	return latest, nil
}

type fakeActivityRepo struct {
	counts map[string]int
}

func newFakeActivityRepo() *fakeActivityRepo {
	return &fakeActivityRepo{counts: make(map[string]int)}
}

func (r *fakeActivityRepo) IncrementActivity(_ context.Context, userID uint64, _ time.Time, column string) error {
	r.counts[fmt.Sprintf("%d:%s", userID, column)]++
	return nil
}

func (r *fakeActivityRepo) GetActivitySummary(_ context.Context, userID uint64, _ time.Time) (*repository.ActivitySummary, error) {
	return &repository.ActivitySummary{
		LoginCount:             r.counts[fmt.Sprintf("%d:%s", userID, repository.ActivityLogin)],
		ConnectionInteractions: r.counts[fmt.Sprintf("%d:%s", userID, repository.ActivityConnectionInteraction)],
		InvitesSent:            r.counts[fmt.Sprintf("%d:%s", userID, repository.ActivityInviteSent)],
		ProfileUpdates:         r.counts[fmt.Sprintf("%d:%s", userID, repository.ActivityProfileUpdate)],
	}, nil
}

func (r *fakeActivityRepo) setSummary(userID uint64, summary repository.ActivitySummary) {
	r.counts[fmt.Sprintf("%d:%s", userID, repository.ActivityLogin)] = summary.LoginCount
	r.counts[fmt.Sprintf("%d:%s", userID, repository.ActivityConnectionInteraction)] = summary.ConnectionInteractions
	r.counts[fmt.Sprintf("%d:%s", userID, repository.ActivityInviteSent)] = summary.InvitesSent
	r.counts[fmt.Sprintf("%d:%s", userID, repository.ActivityProfileUpdate)] = summary.ProfileUpdates
}

type fakeCache struct {
	mu     sync.Mutex
	values map[string]string
	lists  map[string][]string
	sets   map[string]map[string]struct{}
}

func newFakeCache() *fakeCache {
	return &fakeCache{
		values: make(map[string]string),
		lists:  make(map[string][]string),
		sets:   make(map[string]map[string]struct{}),
	}
}

func (c *fakeCache) Get(_ context.Context, key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.values[key], nil
}

func (c *fakeCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values[key] = fmt.Sprint(value)
	return nil
}

func (c *fakeCache) Delete(_ context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, key := range keys {
		delete(c.values, key)
		delete(c.lists, key)
		delete(c.sets, key)
	}
	return nil
}

func (c *fakeCache) GetList(_ context.Context, key string) ([]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lists[key], nil
}

func (c *fakeCache) SetListWithExpiration(_ context.Context, key string, values []string, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lists[key] = values
	return nil
}

func (c *fakeCache) SAdd(_ context.Context, key string, members ...interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.sets[key] == nil {
		c.sets[key] = make(map[string]struct{})
	}
	for _, m := range members {
		c.sets[key][fmt.Sprint(m)] = struct{}{}
	}
	return nil
}

func (c *fakeCache) SMembers(_ context.Context, key string) ([]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	members := make([]string, 0, len(c.sets[key]))
	for m := range c.sets[key] {
		members = append(members, m)
	}
	return members, nil
}

func (c *fakeCache) Rename(_ context.Context, oldKey, newKey string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if v, ok := c.values[oldKey]; ok {
		c.values[newKey] = v
		delete(c.values, oldKey)
	}
	if s, ok := c.sets[oldKey]; ok {
		c.sets[newKey] = s
		delete(c.sets, oldKey)
	}
	return nil
}

func (c *fakeCache) TryLock(_ context.Context, _ string, _ interface{}, _ time.Duration, _ int) (bool, error) {
	return true, nil
}

func (c *fakeCache) Unlock(_ context.Context, _ string, _ interface{}) {}

type fakeClickEventRepo struct {
	mu     sync.Mutex
	events []*mongodb.ClickEvent
}

func (r *fakeClickEventRepo) SaveClickEvent(_ context.Context, event *mongodb.ClickEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return nil
}

func (r *fakeClickEventRepo) AggregateDailyClicks(_ context.Context, from, to time.Time) ([]*mongodb.DailyClicks, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	buckets := make(map[string]*mongodb.DailyClicks)
	for _, e := range r.events {
		if e.ClickedAt.Before(from) || !e.ClickedAt.Before(to) {
			continue
		}
		day := e.ClickedAt.Format(time.DateOnly)
		key := fmt.Sprintf("%d:%s", e.InviteID, day)
		if buckets[key] == nil {
			buckets[key] = &mongodb.DailyClicks{InviteID: e.InviteID, Date: day}
		}
		buckets[key].Clicks++
	}
	out := make([]*mongodb.DailyClicks, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, b)
	}
	return out, nil
}

// stubPriorSize returns a fixed baseline regardless of the user.
type stubPriorSize struct {
	size int64
}

func (s *stubPriorSize) EstimatePriorSize(_ context.Context, _ uint64, _ int64) (int64, error) {
	return s.size, nil
}

// stubConversions hands out fixed per-invite conversion counts.
type stubConversions struct {
	byInvite map[uint64]int64
}

func (s *stubConversions) EstimateConversions(_ context.Context, invite *model.Invite) int64 {
	return s.byInvite[invite.ID]
}
