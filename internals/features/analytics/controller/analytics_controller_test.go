package controller

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVisitorTrendsShape(t *testing.T) {
	now := time.Date(2025, 8, 15, 12, 0, 0, 0, time.UTC)
	points := VisitorTrends(now, rand.New(rand.NewSource(1)))

	require.Len(t, points, 6)
	// oldest month first, current month last
	assert.Equal(t, "Mar", points[0].Name)
	assert.Equal(t, "Aug", points[5].Name)

	for _, p := range points {
		assert.GreaterOrEqual(t, p.Visits, 1500)
		assert.LessOrEqual(t, p.Visits, 3000)
	}
}

func TestVisitorTrendsDeterministicForSeed(t *testing.T) {
	now := time.Date(2025, 8, 15, 12, 0, 0, 0, time.UTC)
	a := VisitorTrends(now, rand.New(rand.NewSource(7)))
	b := VisitorTrends(now, rand.New(rand.NewSource(7)))
	assert.Equal(t, a, b)
}

func TestVisitorTrendsBoundsOverManySamples(t *testing.T) {
	now := time.Now()
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		for _, p := range VisitorTrends(now, r) {
			require.GreaterOrEqual(t, p.Visits, 1500)
			require.LessOrEqual(t, p.Visits, 3000)
		}
	}
}
