package pkgstore

import (
	"os"
	"testing"
	"time"

	"github.com/Arshadjaved786/umrah-calculator/internal/itinerary"
	"github.com/go-test/deep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func generatePlan(t *testing.T) *Plan {
	t.Helper()
	opts := itinerary.Options{DepartureDate: "2025-01-01", TotalDays: 15}
	res, err := itinerary.Generate(opts)
	require.NoError(t, err)
	return &Plan{Options: opts, View: itinerary.ViewOptions{ExcludeArrival: true, MarkWeekend: true}, Result: res}
}

func TestLastPlanRoundTrip(t *testing.T) {
	dir := t.TempDir()
	p := generatePlan(t)
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, WriteLastPlan(dir, p, now))
	got, err := ReadLastPlan(dir)

	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, now, got.SavedAt)
	if diff := deep.Equal(p.Result.Stays, got.Result.Stays); diff != nil {
		t.Error(diff)
	}
}

func TestReadLastPlanMissing(t *testing.T) {
	p, err := ReadLastPlan(t.TempDir())
	assert.NoError(t, err)
	assert.Nil(t, p)
}

func TestReadLastPlanCorrupt(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(LastPlanPath(dir), []byte("nope"), 0644))

	_, err := ReadLastPlan(dir)
	assert.ErrorContains(t, err, "parsing last_plan.json")
}

func TestPlanProjection(t *testing.T) {
	p := generatePlan(t)

	v := p.Projection()
	assert.Equal(t, 14, v.CountedTotal, "arrival night excluded")

	p.Manual = itinerary.NewManualStays(v)
	res := itinerary.Adjust(p.Manual, 0, 1)
	require.False(t, res.BalanceWarning)
	p.Manual = res.Stays

	mv := p.Projection()
	assert.Equal(t, 14, mv.CountedTotal, "manual stays are not excluded twice")
	assert.Equal(t, p.Manual[0].Nights, mv.Stays[0].CountedNights)
}

func TestPlanProjectionWithoutResult(t *testing.T) {
	v := (&Plan{}).Projection()
	assert.Empty(t, v.Stays)
	assert.Zero(t, v.CountedTotal)
}
