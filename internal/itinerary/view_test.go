package itinerary

import (
	"testing"
	"time"

	"github.com/Arshadjaved786/umrah-calculator/internal/caldate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scenarioStays() []Stay {
	return BuildChain(day(time.January, 1), Distribution{
		Nights: []int{6, 6, 3},
		Cities: []City{Makkah, Madinah, Makkah},
	})
}

func TestProjectNoToggles(t *testing.T) {
	v := Project(scenarioStays(), ViewOptions{})

	require.Len(t, v.Stays, 3)
	assert.Equal(t, 15, v.CountedTotal)
	assert.Equal(t, 9, v.CityNights[Makkah])
	assert.Equal(t, 6, v.CityNights[Madinah])
	assert.Zero(t, v.CityWeekendNights[Makkah])

	first := v.Stays[0]
	assert.Equal(t, 6, first.OriginalNights)
	assert.Equal(t, 6, first.CountedNights)
	assert.Equal(t, first.CheckIn, first.CountedCheckIn)
	assert.Equal(t, first.LastNight, first.CountedLastNight)
	assert.Len(t, first.NightDates, 6)
	assert.Empty(t, first.WeekendDates)
}

func TestProjectExcludeArrivalAndExit(t *testing.T) {
	v := Project(scenarioStays(), ViewOptions{ExcludeArrival: true, ExcludeExit: true})

	assert.Equal(t, 13, v.CountedTotal)
	assert.Equal(t, 7, v.CityNights[Makkah])
	assert.Equal(t, 6, v.CityNights[Madinah])

	first := v.Stays[0]
	assert.Equal(t, 6, first.OriginalNights)
	assert.Equal(t, 5, first.CountedNights)
	assert.Equal(t, day(time.January, 1), first.CheckIn, "planned check-in is kept")
	assert.Equal(t, day(time.January, 2), first.CountedCheckIn)
	assert.Equal(t, day(time.January, 6), first.CountedLastNight)
	assert.Equal(t, day(time.January, 2), first.NightDates[0])

	last := v.Stays[2]
	assert.Equal(t, 2, last.CountedNights)
	assert.Equal(t, day(time.January, 13), last.CountedCheckIn)
	assert.Equal(t, day(time.January, 14), last.CountedLastNight)
	assert.Equal(t, day(time.January, 15), last.LastNight)

	middle := v.Stays[1]
	assert.Equal(t, middle.OriginalNights, middle.CountedNights)
}

func TestProjectSingleStayBothExclusions(t *testing.T) {
	stays := []Stay{stay(Makkah, 1, day(time.January, 1))}

	v := Project(stays, ViewOptions{ExcludeArrival: true, ExcludeExit: true, MarkWeekend: true})

	require.Len(t, v.Stays, 1)
	assert.Equal(t, 0, v.Stays[0].CountedNights, "counted nights never go negative")
	assert.Empty(t, v.Stays[0].NightDates)
	assert.Empty(t, v.Stays[0].WeekendDates)
	assert.Equal(t, 0, v.CountedTotal)
}

func TestProjectMarkWeekend(t *testing.T) {
	v := Project(scenarioStays(), ViewOptions{MarkWeekend: true})

	assert.Equal(t, []caldate.Date{day(time.January, 2), day(time.January, 3)}, v.Stays[0].WeekendDates)
	assert.Equal(t, []caldate.Date{day(time.January, 9), day(time.January, 10)}, v.Stays[1].WeekendDates)
	assert.Empty(t, v.Stays[2].WeekendDates)
	assert.Equal(t, 2, v.CityWeekendNights[Makkah])
	assert.Equal(t, 2, v.CityWeekendNights[Madinah])

	for _, s := range v.Stays {
		for _, d := range s.WeekendDates {
			assert.True(t, caldate.IsWeekendNight(d), "%s is not a weekend night", d)
		}
	}
}

func TestProjectMarkWeekendRespectsCountedRange(t *testing.T) {
	// Thursday arrival: excluding it leaves Friday as the only weekend night.
	stays := []Stay{stay(Makkah, 3, day(time.January, 2))}

	v := Project(stays, ViewOptions{ExcludeArrival: true, MarkWeekend: true})

	assert.Equal(t, []caldate.Date{day(time.January, 3)}, v.Stays[0].WeekendDates)
	assert.Equal(t, 1, v.CityWeekendNights[Makkah])
}

func TestWeekendNightsMatchesDayWalk(t *testing.T) {
	first := day(time.February, 1)
	last := day(time.April, 30)

	var want []caldate.Date
	for _, d := range caldate.Range(first, last) {
		if caldate.IsWeekendNight(d) {
			want = append(want, d)
		}
	}

	assert.Equal(t, want, weekendNights(first, last))
	assert.Nil(t, weekendNights(last, first))
}

func TestViewSegments(t *testing.T) {
	v := Project(scenarioStays(), ViewOptions{ExcludeArrival: true})

	got := v.Segments()

	require.Len(t, got, 5)
	assert.Equal(t, 5, got[0].Nights)
	assert.Equal(t, "2025-01-02", got[0].CheckIn.ISO)
	assert.Equal(t, "2025-01-07", got[0].TravelDate.ISO)
	assert.Equal(t, SegmentTravel, got[1].Kind)
	assert.Equal(t, "2025-01-07", got[1].TravelDate.ISO)

	assert.Nil(t, View{}.Segments())
}
