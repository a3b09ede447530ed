package itinerary

import (
	"slices"

	"github.com/Arshadjaved786/umrah-calculator/internal/caldate"
)

// Stay is one contiguous block of nights in a single city.
// LastNight is CheckIn+Nights-1 and CheckOut, the day of departure, is LastNight+1.
type Stay struct {
	City      City         `json:"city"`
	Nights    int          `json:"nights"`
	CheckIn   caldate.Date `json:"checkIn"`
	LastNight caldate.Date `json:"lastNight"`
	CheckOut  caldate.Date `json:"checkOut"`
}

func newStay(city City, nights int, checkIn caldate.Date) Stay {
	s := Stay{City: city, Nights: nights, CheckIn: checkIn}
	s.recompute()
	return s
}

func (s *Stay) recompute() {
	s.LastNight = s.CheckIn.AddDays(s.Nights - 1)
	s.CheckOut = s.LastNight.AddDays(1)
}

// BuildChain lays the distribution out from start with no gaps: every stay
// checks in on the day the previous one checks out.
func BuildChain(start caldate.Date, d Distribution) []Stay {
	stays := make([]Stay, 0, len(d.Nights))
	cursor := start
	for i, nights := range d.Nights {
		city := Makkah
		if i < len(d.Cities) {
			city = d.Cities[i]
		}
		s := newStay(city, nights, cursor)
		stays = append(stays, s)
		cursor = s.CheckOut
	}
	return stays
}

// RebuildChain returns a copy of stays re-chained from startIndex onward.
// The stay at startIndex keeps its check-in; every later stay checks in on
// its predecessor's check-out. Stays before startIndex are copied as-is.
func RebuildChain(stays []Stay, startIndex int) []Stay {
	out := slices.Clone(stays)
	if startIndex < 0 || startIndex >= len(out) {
		return out
	}
	for i := startIndex; i < len(out); i++ {
		if i > startIndex {
			out[i].CheckIn = out[i-1].CheckOut
		}
		out[i].recompute()
	}
	return out
}

// TotalNights sums the nights of every stay.
func TotalNights(stays []Stay) int {
	total := 0
	for _, s := range stays {
		total += s.Nights
	}
	return total
}

// ForbiddenJunctions returns the indexes i for which the travel date between
// stays i and i+1 falls on the forbidden weekday.
func ForbiddenJunctions(stays []Stay) []int {
	var out []int
	for i := 0; i < len(stays)-1; i++ {
		if caldate.IsForbiddenTravelDay(stays[i].CheckOut) {
			out = append(out, i)
		}
	}
	return out
}
