package itinerary

import (
	"time"

	"github.com/Arshadjaved786/umrah-calculator/internal/caldate"
	"github.com/teambition/rrule-go"
)

// ViewOptions are the display toggles applied on top of a generated plan.
type ViewOptions struct {
	// ExcludeArrival drops the first night of the first stay from the count.
	ExcludeArrival bool `json:"excludeArrival"`
	// ExcludeExit drops the last night of the last stay from the count.
	ExcludeExit bool `json:"excludeExit"`
	// MarkWeekend tags counted nights falling on a weekend weekday.
	MarkWeekend bool `json:"markWeekend"`
}

// CountedStay is a stay with its counted (billable) nights next to the planned ones.
type CountedStay struct {
	City             City           `json:"city"`
	OriginalNights   int            `json:"originalNights"`
	CountedNights    int            `json:"countedNights"`
	CheckIn          caldate.Date   `json:"checkIn"`
	LastNight        caldate.Date   `json:"lastNight"`
	CheckOut         caldate.Date   `json:"checkOut"`
	CountedCheckIn   caldate.Date   `json:"countedCheckIn"`
	CountedLastNight caldate.Date   `json:"countedLastNight"`
	NightDates       []caldate.Date `json:"nightDates"`
	WeekendDates     []caldate.Date `json:"weekendDates"`
}

// View is the counted projection of a stay chain.
type View struct {
	Options           ViewOptions   `json:"options"`
	Stays             []CountedStay `json:"stays"`
	CityNights        map[City]int  `json:"cityNights"`
	CityWeekendNights map[City]int  `json:"cityWeekendNights"`
	CountedTotal      int           `json:"countedTotal"`
}

// Project applies the view toggles to stays. The planned dates are kept on
// every CountedStay; only the counted fields move.
func Project(stays []Stay, opts ViewOptions) View {
	v := View{
		Options:           opts,
		Stays:             make([]CountedStay, 0, len(stays)),
		CityNights:        make(map[City]int, len(Cities)),
		CityWeekendNights: make(map[City]int, len(Cities)),
	}

	last := len(stays) - 1
	for i, s := range stays {
		cs := CountedStay{
			City:           s.City,
			OriginalNights: s.Nights,
			CountedNights:  s.Nights,
			CheckIn:        s.CheckIn,
			LastNight:      s.LastNight,
			CheckOut:       s.CheckOut,
			CountedCheckIn: s.CheckIn,
		}

		if opts.ExcludeArrival && i == 0 {
			cs.CountedNights = max(0, cs.CountedNights-1)
			cs.CountedCheckIn = s.CheckIn.AddDays(1)
		}
		if opts.ExcludeExit && i == last {
			cs.CountedNights = max(0, cs.CountedNights-1)
			cs.CountedLastNight = s.LastNight.AddDays(-1)
		} else {
			cs.CountedLastNight = cs.CountedCheckIn.AddDays(max(0, cs.CountedNights-1))
		}

		if cs.CountedNights > 0 {
			cs.NightDates = caldate.Range(cs.CountedCheckIn, cs.CountedLastNight)
			if opts.MarkWeekend {
				cs.WeekendDates = weekendNights(cs.CountedCheckIn, cs.CountedLastNight)
			}
		}

		v.CityNights[s.City] += cs.CountedNights
		v.CityWeekendNights[s.City] += len(cs.WeekendDates)
		v.CountedTotal += cs.CountedNights
		v.Stays = append(v.Stays, cs)
	}
	return v
}

// Segments returns the display sequence of the counted stays. Travel dates
// stay on the planned departure days.
func (v View) Segments() []Segment {
	if len(v.Stays) == 0 {
		return nil
	}
	out := make([]Segment, 0, 2*len(v.Stays)-1)
	for i, s := range v.Stays {
		checkIn := caldate.Format(s.CountedCheckIn)
		lastNight := caldate.Format(s.CountedLastNight)
		out = append(out, Segment{
			Kind:       SegmentStay,
			City:       s.City,
			Nights:     s.CountedNights,
			CheckIn:    &checkIn,
			LastNight:  &lastNight,
			TravelDate: caldate.Format(s.CheckOut),
		})
		if i < len(v.Stays)-1 {
			out = append(out, Segment{Kind: SegmentTravel, TravelDate: caldate.Format(s.CheckOut)})
		}
	}
	return out
}

var rruleWeekdays = map[time.Weekday]rrule.Weekday{
	time.Sunday:    rrule.SU,
	time.Monday:    rrule.MO,
	time.Tuesday:   rrule.TU,
	time.Wednesday: rrule.WE,
	time.Thursday:  rrule.TH,
	time.Friday:    rrule.FR,
	time.Saturday:  rrule.SA,
}

// weekendNights expands a weekly rule on the weekend weekdays over the
// nights from first to last inclusive.
func weekendNights(first, last caldate.Date) []caldate.Date {
	if last.Before(first) {
		return nil
	}

	byday := make([]rrule.Weekday, 0, len(caldate.WeekendWeekdays))
	for _, wd := range caldate.WeekendWeekdays {
		byday = append(byday, rruleWeekdays[wd])
	}

	r, err := rrule.NewRRule(rrule.ROption{
		Freq:      rrule.WEEKLY,
		Byweekday: byday,
		Dtstart:   first.Time(),
		Until:     last.Time(),
	})
	if err != nil {
		var out []caldate.Date
		for _, d := range caldate.Range(first, last) {
			if caldate.IsWeekendNight(d) {
				out = append(out, d)
			}
		}
		return out
	}

	var out []caldate.Date
	for _, t := range r.All() {
		out = append(out, caldate.FromTime(t.UTC()))
	}
	return out
}
