package itinerary

import (
	"slices"

	"github.com/Arshadjaved786/umrah-calculator/internal/caldate"
)

// lockableStays is the only chain length on which locks are honoured.
const lockableStays = 3

// ManualStay is a stay under manual adjustment.
type ManualStay struct {
	Stay
	Locked bool `json:"locked"`
}

// AdjustResult is the outcome of one Adjust call. Stays is always a fresh
// slice; on a rejected adjustment it holds the input unchanged.
type AdjustResult struct {
	Stays []ManualStay `json:"stays"`
	// ForbiddenDayWarning is set when a rebuilt travel date falls on the
	// forbidden weekday. Nothing is moved to avoid it.
	ForbiddenDayWarning bool `json:"fridayWarning"`
	// BalanceWarning is set when the total could not be kept.
	BalanceWarning bool `json:"balanceWarning"`
	// Locked is set when the target was locked.
	Locked bool `json:"locked"`
}

// NewManualStays seeds the manual state from a projection: each stay starts
// from its counted nights and the chain from the first counted check-in.
//
// Every stay keeps at least one night. A stay counted at zero takes a night
// from the largest stay that can spare one; when none can, the total grows.
func NewManualStays(v View) []ManualStay {
	if len(v.Stays) == 0 {
		return nil
	}
	counted := make([]int, len(v.Stays))
	for i, cs := range v.Stays {
		counted[i] = cs.CountedNights
	}
	for i := range counted {
		if counted[i] >= 1 {
			continue
		}
		counted[i] = 1
		if donor := largestIndex(counted); counted[donor] > 1 {
			counted[donor]--
		}
	}

	out := make([]ManualStay, len(v.Stays))
	for i, cs := range v.Stays {
		out[i] = ManualStay{Stay: Stay{City: cs.City, Nights: counted[i]}}
	}
	out[0].CheckIn = v.Stays[0].CountedCheckIn
	rebuilt := RebuildChain(unwrap(out), 0)
	for i := range out {
		out[i].Stay = rebuilt[i]
	}
	return out
}

// Adjust moves one night onto (delta +1) or off (delta -1) the stay at
// index, taking it from or giving it to another stay so the total stays
// fixed. A night is taken from the largest other stay with more than one
// night and given to the smallest other stay; ties go to the earliest.
// Locks only count when there are exactly three stays. Out-of-range input
// comes back unchanged with every flag false.
func Adjust(stays []ManualStay, index, delta int) AdjustResult {
	updated := slices.Clone(stays)
	if index < 0 || index >= len(updated) || (delta != 1 && delta != -1) {
		return AdjustResult{Stays: updated}
	}

	useLock := len(updated) == lockableStays
	target := &updated[index]

	if useLock && target.Locked {
		return AdjustResult{Stays: updated, BalanceWarning: true, Locked: true}
	}
	if target.Nights+delta < 1 {
		return AdjustResult{Stays: updated, BalanceWarning: true}
	}

	other := -1
	for i, s := range updated {
		if i == index || (useLock && s.Locked) {
			continue
		}
		switch {
		case delta > 0:
			if s.Nights > 1 && (other == -1 || s.Nights > updated[other].Nights) {
				other = i
			}
		default:
			if other == -1 || s.Nights < updated[other].Nights {
				other = i
			}
		}
	}
	if other == -1 {
		return AdjustResult{Stays: updated, BalanceWarning: true}
	}

	target.Nights += delta
	updated[other].Nights -= delta

	rebuilt := RebuildChain(unwrap(updated), 0)
	res := AdjustResult{Stays: updated}
	for i := range updated {
		updated[i].Stay = rebuilt[i]
		if i < len(updated)-1 && caldate.IsForbiddenTravelDay(rebuilt[i].CheckOut) {
			res.ForbiddenDayWarning = true
		}
	}
	return res
}

// Stays returns the plain stays of a manual chain.
func Stays(manual []ManualStay) []Stay { return unwrap(manual) }

func unwrap(manual []ManualStay) []Stay {
	out := make([]Stay, len(manual))
	for i, m := range manual {
		out[i] = m.Stay
	}
	return out
}
