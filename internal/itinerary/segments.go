package itinerary

import "github.com/Arshadjaved786/umrah-calculator/internal/caldate"

// SegmentKind tells stay entries from travel entries in a display sequence.
type SegmentKind string

const (
	SegmentStay   SegmentKind = "stay"
	SegmentTravel SegmentKind = "travel"
)

// Segment is one entry of the flat display sequence. Stay entries carry the
// city and dates; TravelDate is the day of departure. Travel entries only
// carry TravelDate.
type Segment struct {
	Kind       SegmentKind        `json:"type"`
	City       City               `json:"city,omitempty"`
	Nights     int                `json:"nights,omitempty"`
	CheckIn    *caldate.Formatted `json:"checkIn,omitempty"`
	LastNight  *caldate.Formatted `json:"lastNight,omitempty"`
	TravelDate caldate.Formatted  `json:"travelDate"`
}

// Segments flattens stays into stay and travel entries: one travel entry
// between each pair of stays, none before the first or after the last.
func Segments(stays []Stay) []Segment {
	if len(stays) == 0 {
		return nil
	}
	out := make([]Segment, 0, 2*len(stays)-1)
	for i, s := range stays {
		checkIn := caldate.Format(s.CheckIn)
		lastNight := caldate.Format(s.LastNight)
		out = append(out, Segment{
			Kind:       SegmentStay,
			City:       s.City,
			Nights:     s.Nights,
			CheckIn:    &checkIn,
			LastNight:  &lastNight,
			TravelDate: caldate.Format(s.CheckOut),
		})
		if i < len(stays)-1 {
			out = append(out, Segment{
				Kind:       SegmentTravel,
				TravelDate: caldate.Format(s.CheckOut),
			})
		}
	}
	return out
}

// TravelDates returns the travel entries of a display sequence in order.
func TravelDates(segments []Segment) []caldate.Formatted {
	var out []caldate.Formatted
	for _, s := range segments {
		if s.Kind == SegmentTravel {
			out = append(out, s.TravelDate)
		}
	}
	return out
}
