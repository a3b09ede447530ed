package itinerary

import "github.com/Arshadjaved786/umrah-calculator/internal/caldate"

// ResolveTravelDays walks the junctions once, front to back. When a travel
// date falls on the forbidden weekday the earlier stay keeps one more night,
// the later stay gives one up, and every following stay moves a day later.
//
// A junction is visited exactly once. A shift that pushes a later junction
// onto the forbidden weekday is not revisited.
//
// A later stay with a single night has nothing to give up; its junction is
// left in place and reported in unresolved so the trip length never changes.
func ResolveTravelDays(stays []Stay) (resolved []Stay, unresolved []int) {
	resolved = RebuildChain(stays, 0)
	for i := 0; i < len(resolved)-1; i++ {
		prev, next := &resolved[i], &resolved[i+1]

		if caldate.IsForbiddenTravelDay(prev.CheckOut) {
			if next.Nights > 1 {
				prev.Nights++
				prev.recompute()
				next.Nights--
			} else {
				unresolved = append(unresolved, i)
			}
		}

		next.CheckIn = prev.CheckOut
		resolved = RebuildChain(resolved, i+1)
	}
	return resolved, unresolved
}
