package itinerary

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Arshadjaved786/umrah-calculator/internal/caldate"
)

// DefaultTotalDays is the trip length used when neither an exit date nor a
// day count is given.
const DefaultTotalDays = 15

// Options are the inputs of Generate. ExitDate takes precedence over TotalDays.
type Options struct {
	DepartureDate string `json:"departureDate"`
	ExitDate      string `json:"exitDate,omitempty"`
	TotalDays     int    `json:"totalDays,omitempty"`
	StartCity     City   `json:"startCity,omitempty"`
	ExitCity      City   `json:"exitCity,omitempty"`
	MaxMadinah    bool   `json:"maxMadinah,omitempty"`
}

// ValidationError reports unusable Generate input. Message is meant to be
// shown to the user as-is.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func invalid(msg string) error { return &ValidationError{Message: msg} }

// RawInput echoes the normalized inputs of a generated plan.
type RawInput struct {
	Departure    caldate.Formatted `json:"departure"`
	TotalDays    int               `json:"totalDays"`
	Distribution []int             `json:"distribution"`
	StartCity    City              `json:"startCity"`
	ExitCity     City              `json:"exitCity"`
}

// TravelInfo describes one junction: the travel date the distribution
// produced, the date actually used, and the neighbouring days when the
// original fell on the forbidden weekday.
type TravelInfo struct {
	Original   caldate.Formatted   `json:"original"`
	Default    caldate.Formatted   `json:"default"`
	Alternates []caldate.Formatted `json:"alternates"`
}

// Result is a generated itinerary.
type Result struct {
	Raw           RawInput     `json:"raw"`
	Stays         []Stay       `json:"stays"`
	Segments      []Segment    `json:"segments"`
	TravelInfos   []TravelInfo `json:"travelInfos"`
	MakkahNights  int          `json:"makkahNights"`
	MadinahNights int          `json:"madinahNights"`
	Notes         []string     `json:"notes"`
}

// Generate plans the stays for a trip, moves travel off the forbidden
// weekday and derives the display sequence. Bad input is reported as a
// *ValidationError; Generate keeps no state between calls.
func Generate(opts Options) (*Result, error) {
	dep, err := caldate.Parse(opts.DepartureDate)
	if err != nil {
		return nil, invalid("Invalid departure date")
	}

	var total int
	switch {
	case strings.TrimSpace(opts.ExitDate) != "":
		exit, err := caldate.Parse(opts.ExitDate)
		if err != nil {
			return nil, invalid("Invalid exit date")
		}
		total = caldate.DiffDaysInclusive(dep, exit)
		if total < 1 {
			return nil, invalid("Exit date must be same or after departure date")
		}
	case opts.TotalDays != 0:
		if opts.TotalDays < 1 {
			return nil, invalid("totalDays must be a positive integer")
		}
		total = opts.TotalDays
	default:
		total = DefaultTotalDays
	}

	start, exit := opts.StartCity, opts.ExitCity
	if start == "" {
		start = Makkah
	}
	if exit == "" {
		exit = Makkah
	}
	if !start.Valid() {
		return nil, invalid(fmt.Sprintf("Invalid start city %q", string(start)))
	}
	if !exit.Valid() {
		return nil, invalid(fmt.Sprintf("Invalid exit city %q", string(exit)))
	}

	dist := PlanDistribution(total, start, exit, opts.MaxMadinah)
	initial := BuildChain(dep, dist)
	stays, unresolved := ResolveTravelDays(initial)
	segments := Segments(stays)

	res := &Result{
		Raw: RawInput{
			Departure:    caldate.Format(dep),
			TotalDays:    total,
			Distribution: dist.Nights,
			StartCity:    start,
			ExitCity:     exit,
		},
		Stays:       stays,
		Segments:    segments,
		TravelInfos: buildTravelInfos(initial, segments),
	}

	for _, s := range stays {
		switch s.City {
		case Makkah:
			res.MakkahNights += s.Nights
		case Madinah:
			res.MadinahNights += s.Nights
		}
	}

	res.Notes = buildNotes(dist, total, start, exit, opts.MaxMadinah, stays, unresolved)
	return res, nil
}

func buildTravelInfos(initial []Stay, segments []Segment) []TravelInfo {
	travel := TravelDates(segments)
	infos := make([]TravelInfo, 0, max(0, len(initial)-1))
	for i := 0; i < len(initial)-1; i++ {
		orig := initial[i].CheckIn.AddDays(initial[i].Nights)
		info := TravelInfo{
			Original:   caldate.Format(orig),
			Default:    caldate.Format(orig),
			Alternates: []caldate.Formatted{},
		}
		if i < len(travel) {
			info.Default = travel[i]
		}
		if caldate.IsForbiddenTravelDay(orig) {
			info.Alternates = []caldate.Formatted{
				caldate.Format(orig.AddDays(-1)),
				caldate.Format(orig.AddDays(1)),
			}
		}
		infos = append(infos, info)
	}
	return infos
}

func buildNotes(dist Distribution, total int, start, exit City, maxMadinah bool, stays []Stay, unresolved []int) []string {
	parts := make([]string, len(dist.Nights))
	for i, n := range dist.Nights {
		parts[i] = strconv.Itoa(n)
	}

	notes := []string{"Distribution used: " + strings.Join(parts, " / ")}
	if maxMadinah {
		notes = append(notes, "Max Madinah ON")
	}
	if start == Madinah {
		notes = append(notes, "Start City: Madinah")
	}
	if exit != Makkah {
		notes = append(notes, "Exit City: "+exit.Label())
	}
	notes = append(notes, fmt.Sprintf("Total days: %d", total))

	for _, i := range unresolved {
		notes = append(notes, fmt.Sprintf("Travel on %s stays on a %s: %s has a single night to give",
			caldate.Format(stays[i].CheckOut).Human, caldate.ForbiddenTravelWeekday, stays[i+1].City.Label()))
	}
	return notes
}
