package pricing

import (
	"fmt"

	"github.com/Arshadjaved786/umrah-calculator/internal/itinerary"
)

// DefaultVisaSAR is the per-person visa fee used until the user sets one.
const DefaultVisaSAR = 300

// Vehicles are the transport vehicle classes offered for the ground legs.
var Vehicles = []string{"CAR", "H1", "GMC", "HIACE", "COASTER"}

// HotelLine is the stay priced in one city. WeekendPrice zero means weekend
// nights cost the regular price.
type HotelLine struct {
	City          itinerary.City `json:"city"`
	Name          string         `json:"name"`
	Nights        int            `json:"nights"`
	WeekendNights int            `json:"weekendNights"`
	PricePerNight float64        `json:"pricePerNight"`
	WeekendPrice  float64        `json:"weekendPrice,omitempty"`
}

// Cost is the SAR price of the line. Weekend nights are capped at Nights.
func (h HotelLine) Cost() float64 {
	nights := max(0, h.Nights)
	weekend := min(max(0, h.WeekendNights), nights)
	weekendPrice := h.PricePerNight
	if h.WeekendPrice > 0 {
		weekendPrice = h.WeekendPrice
	}
	return float64(nights-weekend)*h.PricePerNight + float64(weekend)*weekendPrice
}

// Transport holds the four ground sectors in SAR. Manual, when set, is used
// as the total instead of the sector sum.
type Transport struct {
	JeddahToMakkah  float64  `json:"jedMak"`
	MakkahToMadinah float64  `json:"makMed"`
	MadinahToMakkah float64  `json:"medMak"`
	MakkahToJeddah  float64  `json:"makJed"`
	Manual          *float64 `json:"manual,omitempty"`
	Vehicle         string   `json:"vehicle,omitempty"`
}

// Total is the transport cost per person in SAR.
func (t Transport) Total() float64 {
	if t.Manual != nil {
		return *t.Manual
	}
	return t.JeddahToMakkah + t.MakkahToMadinah + t.MadinahToMakkah + t.MakkahToJeddah
}

// Input is everything a quote is computed from.
type Input struct {
	Hotels    []HotelLine `json:"hotels"`
	Ticket    Money       `json:"ticket"`
	Airline   string      `json:"airline,omitempty"`
	VisaSAR   float64     `json:"visaSAR"`
	Transport Transport   `json:"transport"`
	Profit    Money       `json:"profit"`
	Pax       int         `json:"pax"`
	Rates     Rates       `json:"rates"`
}

// Totals are the group totals in each currency.
type Totals struct {
	SAR float64 `json:"SAR"`
	PKR float64 `json:"PKR"`
	USD float64 `json:"USD"`
}

// Quote is the priced breakdown. Every component is per person in SAR.
type Quote struct {
	HotelsSAR    float64 `json:"hotelsSAR"`
	TicketSAR    float64 `json:"ticketSAR"`
	VisaSAR      float64 `json:"visaSAR"`
	TransportSAR float64 `json:"transportSAR"`
	ProfitSAR    float64 `json:"profitSAR"`
	PerPersonSAR float64 `json:"perPersonSAR"`
	Pax          int     `json:"pax"`
	Totals       Totals  `json:"totals"`
}

// Calculate prices in. Pax below one counts as one and a non-positive
// profit is ignored.
func Calculate(in Input) (Quote, error) {
	ticketCurrency, err := ParseCurrency(string(in.Ticket.Currency))
	if err != nil {
		return Quote{}, err
	}
	profitCurrency, err := ParseCurrency(string(in.Profit.Currency))
	if err != nil {
		return Quote{}, err
	}
	for _, h := range in.Hotels {
		if h.Nights < 0 || h.PricePerNight < 0 {
			return Quote{}, fmt.Errorf("%s: nights and price must not be negative", h.City.Label())
		}
	}

	rates := in.Rates.orDefault()
	q := Quote{
		VisaSAR:      in.VisaSAR,
		TransportSAR: in.Transport.Total(),
		TicketSAR:    rates.ToSAR(in.Ticket.Amount, ticketCurrency),
		Pax:          max(1, in.Pax),
	}
	for _, h := range in.Hotels {
		q.HotelsSAR += h.Cost()
	}
	if in.Profit.Amount > 0 {
		q.ProfitSAR = rates.ToSAR(in.Profit.Amount, profitCurrency)
	}

	q.PerPersonSAR = q.HotelsSAR + q.TicketSAR + q.VisaSAR + q.TransportSAR + q.ProfitSAR
	q.Totals.SAR = q.PerPersonSAR * float64(q.Pax)
	q.Totals.PKR = rates.FromSAR(q.Totals.SAR, PKR)
	q.Totals.USD = rates.FromSAR(q.Totals.SAR, USD)
	return q, nil
}

// HotelLinesFromView builds one line per city from the counted nights of a
// projected plan. Cities without counted nights are skipped.
func HotelLinesFromView(v itinerary.View) []HotelLine {
	var lines []HotelLine
	for _, city := range itinerary.Cities {
		nights := v.CityNights[city]
		if nights == 0 {
			continue
		}
		lines = append(lines, HotelLine{
			City:          city,
			Nights:        nights,
			WeekendNights: v.CityWeekendNights[city],
		})
	}
	return lines
}
