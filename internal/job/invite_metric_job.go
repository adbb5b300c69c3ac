package job

import (
	"Conexus/internal/pkg/logger"
	mongodb "Conexus/internal/pkg/mongo"
	"Conexus/internal/repository"
	"context"
	log "log/slog"
	"time"

	"github.com/google/uuid"
)

// InviteMetricJob rolls yesterday's raw click events up into per-day rows.
type InviteMetricJob struct {
	clickEventRepo   mongodb.ClickEventRepo
	inviteMetricRepo repository.InviteMetricRepo
}

func NewInviteMetricJob(clickEventRepo mongodb.ClickEventRepo, inviteMetricRepo repository.InviteMetricRepo) *InviteMetricJob {
	return &InviteMetricJob{
		clickEventRepo:   clickEventRepo,
		inviteMetricRepo: inviteMetricRepo,
	}
}

func (s *InviteMetricJob) Run() {
	traceID := "job-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	yesterday := today.AddDate(0, 0, -1)

	buckets, err := s.clickEventRepo.AggregateDailyClicks(ctx, yesterday, today)
	if err != nil {
		log.ErrorContext(ctx, "aggregate daily clicks error", "err", err)
		return
	}

	for _, bucket := range buckets {
		date, err := time.ParseInLocation(time.DateOnly, bucket.Date, now.Location())
		if err != nil {
			log.ErrorContext(ctx, "parse bucket date error", "date", bucket.Date, "err", err)
			continue
		}
		if err = s.inviteMetricRepo.AddClicks(ctx, bucket.InviteID, date, bucket.Clicks); err != nil {
			log.ErrorContext(ctx, "save invite daily metric error", "invite_id", bucket.InviteID, "err", err)
		}
	}

	log.InfoContext(ctx, "sync invite metrics success", "buckets", len(buckets), "date", yesterday.Format(time.DateOnly))
}
