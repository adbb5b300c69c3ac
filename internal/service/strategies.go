package service

import (
	"Conexus/internal/model"
	"Conexus/internal/repository"
	"context"
	"math"
	"time"
)

// The analytics placeholders below are deliberate: real data sources can be
// substituted by swapping the implementation in the wire container without
// touching service logic.

// PriorSizeEstimator supplies the comparison baseline for network growth
// when no exact historical figure is requested.
type PriorSizeEstimator interface {
	EstimatePriorSize(ctx context.Context, userID uint64, currentSize int64) (int64, error)
}

// AssumedPriorPeriodFactor discounts the current size when no snapshot
// exists for the prior period.
const AssumedPriorPeriodFactor = 0.9

type snapshotPriorSizeEstimator struct {
	metricRepo repository.NetworkMetricRepo
}

func NewSnapshotPriorSizeEstimator(metricRepo repository.NetworkMetricRepo) PriorSizeEstimator {
	return &snapshotPriorSizeEstimator{metricRepo: metricRepo}
}

func (s *snapshotPriorSizeEstimator) EstimatePriorSize(ctx context.Context, userID uint64, currentSize int64) (int64, error) {
	yesterday := getMidnight(time.Now()).AddDate(0, 0, -1)
	metric, err := s.metricRepo.GetLatestMetricBefore(ctx, userID, yesterday)
	if err != nil {
		return 0, err
	}
	if metric != nil {
		return int64(metric.NetworkSize), nil
	}
	return int64(math.Floor(float64(currentSize) * AssumedPriorPeriodFactor)), nil
}

// IndustryClassifier buckets a user's network by industry.
type IndustryClassifier interface {
	Categorize(ctx context.Context, userID uint64) (map[string]int64, error)
}

var defaultIndustries = []string{"Technology", "Finance", "Healthcare", "Education", "Other"}

type equalWeightClassifier struct {
	connectionRepo repository.ConnectionRepo
}

func NewEqualWeightClassifier(connectionRepo repository.ConnectionRepo) IndustryClassifier {
	return &equalWeightClassifier{connectionRepo: connectionRepo}
}

// Categorize spreads the network evenly over fixed buckets; the remainder
// lands in the first ones so the counts always sum to the network size.
func (s *equalWeightClassifier) Categorize(ctx context.Context, userID uint64) (map[string]int64, error) {
	count, err := s.connectionRepo.GetConnectionCount(ctx, userID)
	if err != nil {
		return nil, err
	}

	distribution := make(map[string]int64, len(defaultIndustries))
	per := count / int64(len(defaultIndustries))
	remainder := count % int64(len(defaultIndustries))
	for i, industry := range defaultIndustries {
		distribution[industry] = per
		if int64(i) < remainder {
			distribution[industry]++
		}
	}
	return distribution, nil
}

// ConversionEstimator supplies per-invite conversion counts while real
// conversion tracking does not exist.
type ConversionEstimator interface {
	EstimateConversions(ctx context.Context, invite *model.Invite) int64
}

// AssumedConversionRate is the placeholder share of clicks treated as
// conversions.
const AssumedConversionRate = 0.02

type assumedRateConversionEstimator struct{}

func NewAssumedRateConversionEstimator() ConversionEstimator {
	return &assumedRateConversionEstimator{}
}

func (s *assumedRateConversionEstimator) EstimateConversions(_ context.Context, invite *model.Invite) int64 {
	return int64(math.Round(float64(invite.ClickCount) * AssumedConversionRate))
}

func getMidnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
