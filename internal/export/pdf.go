package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Arshadjaved786/umrah-calculator/internal/caldate"
	"github.com/Arshadjaved786/umrah-calculator/internal/config"
	"github.com/Arshadjaved786/umrah-calculator/internal/itinerary"
	"github.com/Arshadjaved786/umrah-calculator/internal/pkgstore"
	"github.com/Arshadjaved786/umrah-calculator/internal/pricing"
	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	mconfig "github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

var (
	pdfHeaderColor = props.Color{Red: 20, Green: 70, Blue: 50}
	pdfMutedColor  = props.Color{Red: 120, Green: 120, Blue: 120}
	pdfLineColor   = props.Color{Red: 200, Green: 200, Blue: 200}
	pdfWarnColor   = props.Color{Red: 180, Green: 90, Blue: 0}
)

// Itinerary is what an itinerary PDF shows.
type Itinerary struct {
	Title  string
	Agency *config.Agency
	// ProfileURL, when set, is printed with its QR code in the footer.
	ProfileURL string
	View       itinerary.View
	Notes      []string
}

// ItineraryFromPlan collects the printable parts of a plan.
func ItineraryFromPlan(p *pkgstore.Plan, agency *config.Agency, profileURL string) Itinerary {
	doc := Itinerary{Title: "Umrah Itinerary", Agency: agency, ProfileURL: profileURL, View: p.Projection()}
	if p.Result != nil {
		doc.Notes = p.Result.Notes
	}
	return doc
}

// WriteItineraryPDF renders doc and saves it to outputPath.
func WriteItineraryPDF(doc Itinerary, outputPath string) error {
	m := newDocument()
	addHeader(m, doc.Title, doc.Agency)
	addItinerary(m, doc.View)
	addNotes(m, doc.Notes)
	if err := addProfileFooter(m, doc.ProfileURL); err != nil {
		return err
	}
	return save(m, outputPath)
}

// WritePackagePDF renders a saved package: its itinerary when one was
// attached, the cost breakdown and the totals.
func WritePackagePDF(p pkgstore.Package, profileURL, outputPath string) error {
	m := newDocument()

	title := p.Title
	if title == "" {
		title = "Umrah Package"
	}
	addHeader(m, title, p.Agency)
	m.AddRow(6, text.NewCol(12, fmt.Sprintf("Quote %s | %s", shortID(p.ID), p.UpdatedAt.Format("02 Jan 2006")), props.Text{
		Size:  9,
		Color: &pdfMutedColor,
	}))
	m.AddRow(4)

	if p.Itinerary != nil {
		addItinerary(m, p.Itinerary.Projection())
	}
	addQuote(m, p.Input, p.Quote)

	if p.Agency == nil {
		profileURL = ""
	}
	if err := addProfileFooter(m, profileURL); err != nil {
		return err
	}
	return save(m, outputPath)
}

func newDocument() core.Maroto {
	cfg := mconfig.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		Build()
	return maroto.New(cfg)
}

func save(m core.Maroto, outputPath string) error {
	doc, err := m.Generate()
	if err != nil {
		return fmt.Errorf("generating PDF: %w", err)
	}
	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return doc.Save(outputPath)
}

func addHeader(m core.Maroto, title string, agency *config.Agency) {
	m.AddRow(14, text.NewCol(12, title, props.Text{
		Style: fontstyle.Bold,
		Size:  16,
		Color: &pdfHeaderColor,
	}))
	if agency != nil {
		var parts []string
		for _, s := range []string{agency.Name, agency.Contact, agency.Email, agency.Website} {
			if s != "" {
				parts = append(parts, s)
			}
		}
		m.AddRow(8, text.NewCol(12, strings.Join(parts, " | "), props.Text{
			Size:  10,
			Color: &pdfMutedColor,
		}))
		if agency.Address != "" {
			m.AddRow(6, text.NewCol(12, agency.Address, props.Text{Size: 9, Color: &pdfMutedColor}))
		}
	}
	m.AddRow(4, line.NewCol(12, props.Line{Color: &pdfLineColor}))
	m.AddRow(4)
}

func addItinerary(m core.Maroto, v itinerary.View) {
	m.AddRow(8,
		text.NewCol(3, "City", boldCell(10)),
		text.NewCol(3, "Check-in", boldCell(10)),
		text.NewCol(3, "Last night", boldCell(10)),
		text.NewCol(1, "Nights", boldRight(10)),
		text.NewCol(2, "Weekend", boldRight(10)),
	)

	for i, seg := range v.Segments() {
		if seg.Kind == itinerary.SegmentTravel {
			m.AddRow(6, text.NewCol(12, "  Travel on "+seg.TravelDate.Human, travelCell(seg)))
			continue
		}
		weekend := ""
		if v.Options.MarkWeekend {
			weekend = fmt.Sprintf("%d", len(v.Stays[i/2].WeekendDates))
		}
		m.AddRow(7,
			text.NewCol(3, seg.City.Label(), props.Text{Size: 10}),
			text.NewCol(3, seg.CheckIn.Human, props.Text{Size: 10}),
			text.NewCol(3, seg.LastNight.Human, props.Text{Size: 10}),
			text.NewCol(1, fmt.Sprintf("%d", seg.Nights), props.Text{Size: 10, Align: align.Right}),
			text.NewCol(2, weekend, props.Text{Size: 10, Align: align.Right}),
		)
	}

	m.AddRow(4, line.NewCol(12, props.Line{Color: &pdfLineColor}))
	var totals []string
	for _, city := range itinerary.Cities {
		if n := v.CityNights[city]; n > 0 {
			totals = append(totals, fmt.Sprintf("%s %d", city.Label(), n))
		}
	}
	m.AddRow(8,
		text.NewCol(9, strings.Join(totals, " | "), props.Text{Size: 10, Color: &pdfMutedColor}),
		text.NewCol(3, fmt.Sprintf("%d nights", v.CountedTotal), boldRight(10)),
	)
	m.AddRow(4)
}

func travelCell(seg itinerary.Segment) props.Text {
	p := props.Text{Size: 9, Style: fontstyle.Italic, Color: &pdfMutedColor}
	if seg.TravelDate.Valid() && caldate.IsForbiddenTravelDay(seg.TravelDate.Date()) {
		p.Color = &pdfWarnColor
	}
	return p
}

func addNotes(m core.Maroto, notes []string) {
	if len(notes) == 0 {
		return
	}
	m.AddRow(7, text.NewCol(12, "Notes", boldCell(10)))
	for _, n := range notes {
		m.AddRow(5, text.NewCol(12, "- "+n, props.Text{Size: 8, Color: &pdfMutedColor}))
	}
	m.AddRow(4)
}

func addQuote(m core.Maroto, in pricing.Input, q pricing.Quote) {
	m.AddRow(8, text.NewCol(12, "Cost per person", boldCell(11)))

	for _, h := range in.Hotels {
		label := fmt.Sprintf("%s hotel: %s (%d nights", h.City.Label(), h.Name, h.Nights)
		if h.WeekendNights > 0 {
			label += fmt.Sprintf(", %d weekend", h.WeekendNights)
		}
		label += ")"
		addAmountRow(m, label, h.Cost())
	}
	ticket := "Air ticket"
	if in.Airline != "" {
		ticket += " (" + in.Airline + ")"
	}
	addAmountRow(m, ticket, q.TicketSAR)
	addAmountRow(m, "Visa", q.VisaSAR)
	transport := "Transport"
	if in.Transport.Vehicle != "" {
		transport += " (" + in.Transport.Vehicle + ")"
	}
	addAmountRow(m, transport, q.TransportSAR)
	if q.ProfitSAR > 0 {
		addAmountRow(m, "Service", q.ProfitSAR)
	}

	m.AddRow(4, line.NewCol(12, props.Line{Color: &pdfLineColor}))
	m.AddRow(8,
		text.NewCol(9, "Per person", boldCell(11)),
		text.NewCol(3, pricing.FormatAmount(q.PerPersonSAR, pricing.SAR), boldRight(11)),
	)
	m.AddRow(6, text.NewCol(12, fmt.Sprintf("Passengers: %d", q.Pax), props.Text{Size: 9, Color: &pdfMutedColor}))
	m.AddRow(4)

	m.AddRow(8, text.NewCol(12, "Group total", boldCell(11)))
	for _, t := range []pricing.Money{
		{Amount: q.Totals.SAR, Currency: pricing.SAR},
		{Amount: q.Totals.PKR, Currency: pricing.PKR},
		{Amount: q.Totals.USD, Currency: pricing.USD},
	} {
		m.AddRow(7,
			text.NewCol(9, string(t.Currency), props.Text{Size: 10}),
			text.NewCol(3, pricing.FormatAmount(t.Amount, t.Currency), boldRight(10)),
		)
	}
	m.AddRow(4)
}

func addAmountRow(m core.Maroto, label string, sar float64) {
	m.AddRow(6,
		text.NewCol(9, "  "+label, props.Text{Size: 9}),
		text.NewCol(3, pricing.FormatAmount(sar, pricing.SAR), props.Text{Size: 9, Align: align.Right}),
	)
}

func addProfileFooter(m core.Maroto, profileURL string) error {
	if profileURL == "" {
		return nil
	}
	png, err := QRPNG(profileURL, DefaultQRSize)
	if err != nil {
		return err
	}
	m.AddRow(4, line.NewCol(12, props.Line{Color: &pdfLineColor}))
	m.AddRow(30,
		text.NewCol(9, profileURL, props.Text{Size: 9, Color: &pdfMutedColor, Top: 12}),
		image.NewFromBytesCol(3, png, extension.Png, props.Rect{Center: true, Percent: 90}),
	)
	return nil
}

func boldCell(size float64) props.Text {
	return props.Text{Style: fontstyle.Bold, Size: size, Color: &pdfHeaderColor}
}

func boldRight(size float64) props.Text {
	return props.Text{Style: fontstyle.Bold, Size: size, Align: align.Right, Color: &pdfHeaderColor}
}

func shortID(id string) string {
	id = strings.TrimPrefix(id, "pkg_")
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
