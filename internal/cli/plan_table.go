package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/Arshadjaved786/umrah-calculator/internal/caldate"
	"github.com/Arshadjaved786/umrah-calculator/internal/itinerary"
	"github.com/charmbracelet/lipgloss"
)

const (
	cityColWidth   = 9
	dateColWidth   = 14
	nightsColWidth = 7
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true)
	weekendStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C792EA"))
)

func padRight(s string, width int) string {
	if len(s) >= width {
		return s[:width]
	}
	return s + strings.Repeat(" ", width-len(s))
}

func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}

// renderPlanTable writes the counted stays with a travel line between each
// pair. travelInfos may be nil; when given, junctions whose original date
// was moved show where they came from.
func renderPlanTable(w io.Writer, v itinerary.View, travelInfos []itinerary.TravelInfo) {
	header := " # " + padRight("City", cityColWidth) + " " +
		padRight("Check-in", dateColWidth) + " " +
		padRight("Last night", dateColWidth) + " " +
		padLeft("Nights", nightsColWidth)
	if v.Options.MarkWeekend {
		header += " " + padLeft("Weekend", nightsColWidth)
	}
	_, _ = fmt.Fprintln(w, headerStyle.Render(header))
	_, _ = fmt.Fprintln(w, Silent(strings.Repeat("-", len(header))))

	for i, s := range v.Stays {
		row := fmt.Sprintf("%2d ", i+1) +
			Primary(padRight(s.City.Label(), cityColWidth)) + " " +
			Text(padRight(caldate.Format(s.CountedCheckIn).Human, dateColWidth)) + " " +
			Text(padRight(lastNightLabel(s), dateColWidth)) + " " +
			Text(padLeft(fmt.Sprintf("%d", s.CountedNights), nightsColWidth))
		if v.Options.MarkWeekend {
			row += " " + weekendStyle.Render(padLeft(fmt.Sprintf("%d", len(s.WeekendDates)), nightsColWidth))
		}
		_, _ = fmt.Fprintln(w, row)

		if i < len(v.Stays)-1 {
			_, _ = fmt.Fprintln(w, travelLine(s.CheckOut, i, travelInfos))
		}
	}

	_, _ = fmt.Fprintln(w, Silent(strings.Repeat("-", len(header))))
	var totals []string
	for _, city := range itinerary.Cities {
		if n, ok := v.CityNights[city]; ok && n > 0 {
			part := fmt.Sprintf("%s %d", city.Label(), n)
			if v.Options.MarkWeekend {
				part += fmt.Sprintf(" (%d weekend)", v.CityWeekendNights[city])
			}
			totals = append(totals, part)
		}
	}
	totals = append(totals, fmt.Sprintf("counted %d", v.CountedTotal))
	_, _ = fmt.Fprintln(w, Text(strings.Join(totals, " | ")))
}

func lastNightLabel(s itinerary.CountedStay) string {
	if s.CountedNights == 0 {
		return "-"
	}
	return caldate.Format(s.CountedLastNight).Human
}

func travelLine(day caldate.Date, junction int, travelInfos []itinerary.TravelInfo) string {
	label := "   " + Silent("travel  ") + Text(caldate.Format(day).Human)
	if caldate.IsForbiddenTravelDay(day) {
		label += " " + Warning("travel falls on a "+day.Weekday().String())
	}
	if junction < len(travelInfos) {
		ti := travelInfos[junction]
		if ti.Original.ISO != ti.Default.ISO && len(ti.Alternates) > 0 {
			alts := make([]string, len(ti.Alternates))
			for i, a := range ti.Alternates {
				alts[i] = a.Human
			}
			label += " " + Silent(fmt.Sprintf("(moved from %s; alternates %s)", ti.Original.Human, strings.Join(alts, ", ")))
		}
	}
	return label
}
