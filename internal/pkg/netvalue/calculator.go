package netvalue

import (
	"errors"
	"math"
)

// UnitValue is the fixed value contributed by a single connection.
const UnitValue = 3.14

var ErrZeroBaseline = errors.New("growth rate undefined for zero baseline")

// Calculate maps a connection count to a network value score.
func Calculate(connectionCount int64) float64 {
	if connectionCount <= 0 {
		return 0
	}
	return Round2(float64(connectionCount) * UnitValue)
}

// ConnectionsNeeded returns the minimum connection count whose value reaches
// targetValue.
func ConnectionsNeeded(targetValue float64) int64 {
	if targetValue <= 0 {
		return 0
	}
	return int64(math.Ceil(targetValue / UnitValue))
}

// GrowthRate returns the percentage change from previous to current.
// A zero baseline has no defined rate; callers must handle the error.
func GrowthRate(previous, current float64) (float64, error) {
	if previous == 0 {
		return 0, ErrZeroBaseline
	}
	return Round2((current - previous) / previous * 100), nil
}

// ProjectedGrowth compounds currentValue by dailyGrowthRatePercent over days.
func ProjectedGrowth(currentValue, dailyGrowthRatePercent float64, days int) float64 {
	return Round2(currentValue * math.Pow(1+dailyGrowthRatePercent/100, float64(days)))
}

func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
