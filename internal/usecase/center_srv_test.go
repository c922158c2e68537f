package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCentersUnfiltered(t *testing.T) {
	env := newTestEnv(t)

	centers, err := env.service.Center.GetCenters(context.Background(), CenterQuery{})
	require.NoError(t, err)
	require.Len(t, centers, 5)

	// Derived fields ride along
	for _, c := range centers {
		assert.NotEmpty(t, c.WaitLabel)
		assert.NotEmpty(t, c.Crowd)
		assert.Equal(t, c.Slots-c.SlotsBooked, c.SlotsLeft)
	}
}

func TestGetCentersFilterByCategory(t *testing.T) {
	env := newTestEnv(t)

	centers, err := env.service.Center.GetCenters(context.Background(), CenterQuery{
		Category: "Healthcare",
	})
	require.NoError(t, err)
	require.Len(t, centers, 1)
	assert.Equal(t, "MediCare Clinic", centers[0].Name)
}

func TestGetCentersSearch(t *testing.T) {
	env := newTestEnv(t)

	// Matches both "Vehicle Repair" and "Electronics Repair" categories
	centers, err := env.service.Center.GetCenters(context.Background(), CenterQuery{
		Search: "repair",
	})
	require.NoError(t, err)
	require.Len(t, centers, 2)

	centers, err = env.service.Center.GetCenters(context.Background(), CenterQuery{
		Search: "glowup",
	})
	require.NoError(t, err)
	require.Len(t, centers, 1)
	assert.Equal(t, "GlowUp Salon & Spa", centers[0].Name)

	centers, err = env.service.Center.GetCenters(context.Background(), CenterQuery{
		Search: "nothing matches this",
	})
	require.NoError(t, err)
	assert.Empty(t, centers)
}

func TestGetCentersSort(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	byWait, err := env.service.Center.GetCenters(ctx, CenterQuery{Sort: "wait"})
	require.NoError(t, err)
	for i := 1; i < len(byWait); i++ {
		assert.LessOrEqual(t, byWait[i-1].WaitMinutes, byWait[i].WaitMinutes)
	}
	assert.Equal(t, "TechRescue Electronics", byWait[0].Name)

	byDistance, err := env.service.Center.GetCenters(ctx, CenterQuery{Sort: "distance"})
	require.NoError(t, err)
	assert.Equal(t, "QuickFix Auto Care", byDistance[0].Name)

	byRating, err := env.service.Center.GetCenters(ctx, CenterQuery{Sort: "rating"})
	require.NoError(t, err)
	assert.Equal(t, "GlowUp Salon & Spa", byRating[0].Name)
	assert.Equal(t, "CitizenHub JPJ", byRating[len(byRating)-1].Name)
}

func TestGetCenter(t *testing.T) {
	env := newTestEnv(t)
	quickfix := env.centerByName(t, "QuickFix Auto Care")

	center, err := env.service.Center.GetCenter(context.Background(), quickfix.ID)
	require.NoError(t, err)
	assert.Equal(t, "QuickFix Auto Care", center.Name)
	assert.Equal(t, 60, center.WaitMinutes)
	assert.Equal(t, "medium", center.WaitSeverity)

	_, err = env.service.Center.GetCenter(context.Background(), uuid.New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestGetReviews(t *testing.T) {
	env := newTestEnv(t)
	quickfix := env.centerByName(t, "QuickFix Auto Care")

	reviews, err := env.service.Center.GetReviews(context.Background(), quickfix.ID)
	require.NoError(t, err)
	require.NotEmpty(t, reviews)
	for _, r := range reviews {
		assert.NotEmpty(t, r.Age)
	}

	_, err = env.service.Center.GetReviews(context.Background(), uuid.New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestGetStats(t *testing.T) {
	env := newTestEnv(t)

	stats, err := env.service.Center.GetStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, stats.CentersOpen)
	assert.Equal(t, 25, stats.TotalInQueue)
	assert.Equal(t, 37, stats.SlotsLeft)
	assert.Equal(t, 135, stats.AvgWaitMinutes)

	quickfix := env.centerByName(t, "QuickFix Auto Care")
	_, err = env.store.ToggleStatus(quickfix.ID)
	require.NoError(t, err)

	stats, err = env.service.Center.GetStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, stats.CentersOpen)
}
