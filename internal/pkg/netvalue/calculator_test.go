package netvalue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculate(t *testing.T) {
	assert.Equal(t, 314.0, Calculate(100))
	assert.Equal(t, 471.0, Calculate(150))
	assert.Equal(t, 3.14, Calculate(1))
	assert.Equal(t, 0.0, Calculate(0))
	assert.Equal(t, 0.0, Calculate(-5))
}

func TestConnectionsNeeded(t *testing.T) {
	assert.Equal(t, int64(100), ConnectionsNeeded(314))
	assert.Equal(t, int64(32), ConnectionsNeeded(100))
	assert.Equal(t, int64(1), ConnectionsNeeded(0.01))
	assert.Equal(t, int64(0), ConnectionsNeeded(0))
	assert.Equal(t, int64(0), ConnectionsNeeded(-10))
}

func TestConnectionsNeededRoundTrip(t *testing.T) {
	// The returned count always reaches the target value.
	for _, target := range []float64{1, 3.14, 50, 314, 471, 1000} {
		n := ConnectionsNeeded(target)
		require.GreaterOrEqual(t, Calculate(n), target*0.99)
		if n > 1 {
			assert.Less(t, Calculate(n-1), target)
		}
	}
}

func TestGrowthRate(t *testing.T) {
	rate, err := GrowthRate(314, 471)
	require.NoError(t, err)
	assert.Equal(t, 50.0, rate)

	rate, err = GrowthRate(100, 50)
	require.NoError(t, err)
	assert.Equal(t, -50.0, rate)

	rate, err = GrowthRate(100, 100)
	require.NoError(t, err)
	assert.Equal(t, 0.0, rate)

	_, err = GrowthRate(0, 100)
	assert.ErrorIs(t, err, ErrZeroBaseline)
}

func TestProjectedGrowth(t *testing.T) {
	assert.Equal(t, 100.0, ProjectedGrowth(100, 5, 0))
	assert.Equal(t, 105.0, ProjectedGrowth(100, 5, 1))
	assert.Equal(t, 110.25, ProjectedGrowth(100, 5, 2))
	assert.Equal(t, 100.0, ProjectedGrowth(100, 0, 30))
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 0.22, Round2(10.0/45.0))
	assert.Equal(t, 6.13, Round2(6.132))
	assert.Equal(t, 6.14, Round2(6.136))
	assert.Equal(t, -1.23, Round2(-1.234))
}
