package job

import (
	"Conexus/internal/pkg/cache"
	"Conexus/internal/pkg/consts"
	"Conexus/internal/pkg/logger"
	"Conexus/internal/pkg/util"
	"Conexus/internal/service"
	"context"
	log "log/slog"
	"time"

	"github.com/google/uuid"
)

// NetworkMetricJob snapshots the network size of every user whose network
// changed since the last run.
type NetworkMetricJob struct {
	networkMetricSvc service.NetworkMetricService
	cache            cache.Cache
}

func NewNetworkMetricJob(networkMetricSvc service.NetworkMetricService, c cache.Cache) *NetworkMetricJob {
	return &NetworkMetricJob{
		networkMetricSvc: networkMetricSvc,
		cache:            c,
	}
}

func (s *NetworkMetricJob) Run() {
	traceID := "job-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	// Claim the dirty set atomically so clicks arriving mid-run land in a
	// fresh set for the next pass.
	processingKey := consts.NetworkDirtyKey + ":processing"
	err := s.cache.Rename(ctx, consts.NetworkDirtyKey, processingKey)
	if err != nil {
		return
	}

	tempSet, err := s.cache.SMembers(ctx, processingKey)
	if err != nil {
		log.ErrorContext(ctx, "get dirty set error", "err", err)
		return
	}

	set, err := util.StrSliceToUInt64Slice(tempSet)
	if err != nil {
		log.ErrorContext(ctx, "convert set to int slice error", "err", err)
		return
	}

	for _, v := range set {
		err = s.networkMetricSvc.SyncNetworkDailyMetric(ctx, v)
		if err != nil {
			log.ErrorContext(ctx, "sync network metric error", "user_id", v, "err", err)
		}
	}

	err = s.cache.Delete(ctx, processingKey)
	if err != nil {
		log.ErrorContext(ctx, "delete dirty set error", "err", err)
	}

	log.InfoContext(ctx, "sync network metrics success", "users", len(set), "date", time.Now().Format(time.DateOnly))
}
