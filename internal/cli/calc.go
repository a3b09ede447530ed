package cli

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/Arshadjaved786/umrah-calculator/internal/catalog"
	"github.com/Arshadjaved786/umrah-calculator/internal/config"
	"github.com/Arshadjaved786/umrah-calculator/internal/export"
	"github.com/Arshadjaved786/umrah-calculator/internal/itinerary"
	"github.com/Arshadjaved786/umrah-calculator/internal/pkgstore"
	"github.com/Arshadjaved786/umrah-calculator/internal/pricing"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// cityHotelFlags are the per-city calc inputs. Nil pointers mean the flag
// was not given.
type cityHotelFlags struct {
	hotel        string
	nights       *int
	price        *float64
	weekendPrice *float64
}

type calcFlags struct {
	hotels map[itinerary.City]*cityHotelFlags

	ticket         float64
	ticketCurrency string
	airline        string
	visa           *float64

	sectors   [4]float64
	transport *float64
	vehicle   string

	profit         float64
	profitCurrency string
	pax            int

	pick  bool
	save  bool
	title string
	pdf   string
}

var transportSectorFlags = [4]string{"jed-mak", "mak-med", "med-mak", "mak-jed"}

var calcCmd = LeafCommand{
	Use:   "calc",
	Short: "Price the saved plan: hotels, ticket, visa, transport and profit",
	Example: "  umrahplan calc --makkah-hotel \"Swissotel Makkah\" --madinah-hotel mdn-1 --ticket 180000 --ticket-currency PKR --pax 4\n" +
		"  umrahplan calc --pick --save --title \"Family package\" --pdf family.pdf",
	StrFlags: []StringFlag{
		{Name: "makkah-hotel", Usage: "Makkah hotel id or name from the catalog"},
		{Name: "madinah-hotel", Usage: "Madinah hotel id or name from the catalog"},
		{Name: "ticket-currency", Usage: "ticket currency (SAR, PKR or USD)", Default: "SAR"},
		{Name: "airline", Usage: "airline id, code or name from the catalog"},
		{Name: "vehicle", Usage: "transport vehicle (" + strings.Join(pricing.Vehicles, ", ") + ")"},
		{Name: "profit-currency", Usage: "profit currency (SAR, PKR or USD)", Default: "SAR"},
		{Name: "title", Usage: "package title when saving"},
		{Name: "pdf", Usage: "write the quote to this PDF file"},
	},
	IntFlags: []IntFlag{
		{Name: "makkah-nights", Usage: "override counted Makkah nights"},
		{Name: "madinah-nights", Usage: "override counted Madinah nights"},
		{Name: "pax", Usage: "number of passengers", Default: 1},
	},
	FloatFlags: []FloatFlag{
		{Name: "makkah-price", Usage: "override Makkah price per night (SAR)"},
		{Name: "madinah-price", Usage: "override Madinah price per night (SAR)"},
		{Name: "makkah-weekend-price", Usage: "override Makkah weekend price per night (SAR)"},
		{Name: "madinah-weekend-price", Usage: "override Madinah weekend price per night (SAR)"},
		{Name: "ticket", Usage: "air ticket price per person"},
		{Name: "visa", Usage: "visa fee per person in SAR (default from config)"},
		{Name: "jed-mak", Usage: "transport Jeddah to Makkah (SAR)"},
		{Name: "mak-med", Usage: "transport Makkah to Madinah (SAR)"},
		{Name: "med-mak", Usage: "transport Madinah to Makkah (SAR)"},
		{Name: "mak-jed", Usage: "transport Makkah to Jeddah (SAR)"},
		{Name: "transport", Usage: "manual transport total in SAR; replaces the sectors"},
		{Name: "profit", Usage: "profit per person"},
	},
	BoolFlags: []BoolFlag{
		{Name: "pick", Usage: "choose hotels and airline from the catalog interactively"},
		{Name: "save", Usage: "save the quote as a package"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		dataDir, err := getDataDir()
		if err != nil {
			return err
		}
		return runCalc(cmd, dataDir, readCalcFlags(cmd), promptKitFor(cmd), time.Now)
	},
}.Build()

func readCalcFlags(cmd *cobra.Command) calcFlags {
	f := cmd.Flags()
	cf := calcFlags{hotels: map[itinerary.City]*cityHotelFlags{}}

	changedInt := func(name string) *int {
		if !f.Changed(name) {
			return nil
		}
		v, _ := f.GetInt(name)
		return &v
	}
	changedFloat := func(name string) *float64 {
		if !f.Changed(name) {
			return nil
		}
		v, _ := f.GetFloat64(name)
		return &v
	}

	for _, city := range itinerary.Cities {
		c := string(city)
		h := &cityHotelFlags{
			nights:       changedInt(c + "-nights"),
			price:        changedFloat(c + "-price"),
			weekendPrice: changedFloat(c + "-weekend-price"),
		}
		h.hotel, _ = f.GetString(c + "-hotel")
		cf.hotels[city] = h
	}

	cf.ticket, _ = f.GetFloat64("ticket")
	cf.ticketCurrency, _ = f.GetString("ticket-currency")
	cf.airline, _ = f.GetString("airline")
	cf.visa = changedFloat("visa")
	for i, name := range transportSectorFlags {
		cf.sectors[i], _ = f.GetFloat64(name)
	}
	cf.transport = changedFloat("transport")
	cf.vehicle, _ = f.GetString("vehicle")
	cf.profit, _ = f.GetFloat64("profit")
	cf.profitCurrency, _ = f.GetString("profit-currency")
	cf.pax, _ = f.GetInt("pax")
	cf.pick, _ = f.GetBool("pick")
	cf.save, _ = f.GetBool("save")
	cf.title, _ = f.GetString("title")
	cf.pdf, _ = f.GetString("pdf")
	return cf
}

func runCalc(cmd *cobra.Command, dataDir string, cf calcFlags, kit PromptKit, now func() time.Time) error {
	cfg, err := loadConfig(dataDir)
	if err != nil {
		return err
	}
	plan, err := pkgstore.ReadLastPlan(dataDir)
	if err != nil {
		return err
	}

	in, err := buildCalcInput(cf, cfg, plan, openCatalog(dataDir), kit)
	if err != nil {
		return err
	}
	if len(in.Hotels) == 0 && plan == nil {
		return errNoPlan
	}

	quote, err := pricing.Calculate(in)
	if err != nil {
		return err
	}
	appLog.Debug("quote calculated",
		zap.Float64("per_person_sar", quote.PerPersonSAR),
		zap.Int("pax", quote.Pax),
	)

	w := cmd.OutOrStdout()
	printQuote(w, in, quote)

	pkg := pkgstore.Package{Title: cf.title, Agency: cfg.Agency(), Itinerary: plan, Input: in, Quote: quote}
	if cf.save {
		pkg, err = openPackages(dataDir).Save(pkg)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintf(w, "%s\n", Text(fmt.Sprintf("package saved (%s)", Primary(pkg.ID))))
	} else {
		pkg.UpdatedAt = now()
	}

	if cf.pdf != "" {
		_, profileURL := agencyProfile(cfg)
		if err := export.WritePackagePDF(pkg, profileURL, cf.pdf); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(w, "%s\n", Text(fmt.Sprintf("exported quote to %s", Primary(cf.pdf))))
	}
	return nil
}

// buildCalcInput starts from the counted nights of the saved plan and
// applies catalog picks and flag overrides on top.
func buildCalcInput(cf calcFlags, cfg *config.Config, plan *pkgstore.Plan, cat *catalog.Store, kit PromptKit) (pricing.Input, error) {
	var lines []pricing.HotelLine
	if plan != nil {
		lines = pricing.HotelLinesFromView(plan.Projection())
	}

	for _, city := range itinerary.Cities {
		hf := cf.hotels[city]
		if hf == nil {
			hf = &cityHotelFlags{}
		}
		idx := slices.IndexFunc(lines, func(l pricing.HotelLine) bool { return l.City == city })
		if hf.nights != nil {
			if *hf.nights < 0 {
				return pricing.Input{}, fmt.Errorf("--%s-nights must not be negative", city)
			}
			if idx < 0 {
				lines = append(lines, pricing.HotelLine{City: city})
				idx = len(lines) - 1
			}
			lines[idx].Nights = *hf.nights
			lines[idx].WeekendNights = min(lines[idx].WeekendNights, *hf.nights)
		}
		if idx < 0 {
			continue
		}

		hotel, err := pickHotel(cat, city, hf.hotel, cf.pick, kit)
		if err != nil {
			return pricing.Input{}, err
		}
		if hotel != nil {
			lines[idx].Name = hotel.Name
			lines[idx].PricePerNight = hotel.PricePerNight
			lines[idx].WeekendPrice = hotel.WeekendPrice
		}
		if hf.price != nil {
			lines[idx].PricePerNight = *hf.price
		}
		if hf.weekendPrice != nil {
			lines[idx].WeekendPrice = *hf.weekendPrice
		}
	}

	ticketCurrency, err := pricing.ParseCurrency(cf.ticketCurrency)
	if err != nil {
		return pricing.Input{}, fmt.Errorf("--ticket-currency: %w", err)
	}
	profitCurrency, err := pricing.ParseCurrency(cf.profitCurrency)
	if err != nil {
		return pricing.Input{}, fmt.Errorf("--profit-currency: %w", err)
	}

	airline, err := pickAirline(cat, cf.airline, cf.pick, kit)
	if err != nil {
		return pricing.Input{}, err
	}

	vehicle := strings.ToUpper(strings.TrimSpace(cf.vehicle))
	if vehicle != "" && !slices.Contains(pricing.Vehicles, vehicle) {
		return pricing.Input{}, fmt.Errorf("unknown vehicle %q (expected %s)", cf.vehicle, strings.Join(pricing.Vehicles, ", "))
	}

	visa := cfg.VisaSAR
	if cf.visa != nil {
		visa = *cf.visa
	}

	return pricing.Input{
		Hotels:  lines,
		Ticket:  pricing.Money{Amount: cf.ticket, Currency: ticketCurrency},
		Airline: airline,
		VisaSAR: visa,
		Transport: pricing.Transport{
			JeddahToMakkah:  cf.sectors[0],
			MakkahToMadinah: cf.sectors[1],
			MadinahToMakkah: cf.sectors[2],
			MakkahToJeddah:  cf.sectors[3],
			Manual:          cf.transport,
			Vehicle:         vehicle,
		},
		Profit: pricing.Money{Amount: cf.profit, Currency: profitCurrency},
		Pax:    cf.pax,
		Rates:  cfg.Rates,
	}, nil
}

func pickHotel(cat *catalog.Store, city itinerary.City, ref string, pick bool, kit PromptKit) (*catalog.Hotel, error) {
	if ref == "" && !pick {
		return nil, nil
	}
	hotels, err := cat.Hotels(city)
	if err != nil {
		return nil, err
	}
	if ref != "" {
		h := catalog.FindHotel(hotels, ref)
		if h == nil {
			return nil, fmt.Errorf("hotel '%s' not found in %s", ref, city.Label())
		}
		return h, nil
	}
	if len(hotels) == 0 {
		return nil, nil
	}

	labels := make([]string, len(hotels))
	for i, h := range hotels {
		labels[i] = h.Label()
	}
	i, err := kit.Select(city.Label()+" hotel", labels)
	if err != nil {
		return nil, err
	}
	return &hotels[i], nil
}

func pickAirline(cat *catalog.Store, ref string, pick bool, kit PromptKit) (string, error) {
	if ref == "" && !pick {
		return "", nil
	}
	airlines, err := cat.Airlines()
	if err != nil {
		return "", err
	}

	var a *catalog.Airline
	if ref != "" {
		a = catalog.FindAirline(airlines, ref)
		if a == nil {
			return "", fmt.Errorf("airline '%s' not found", ref)
		}
	} else if len(airlines) > 0 {
		labels := make([]string, len(airlines))
		for i, al := range airlines {
			labels[i] = airlineLabel(al)
		}
		i, err := kit.Select("Airline", labels)
		if err != nil {
			return "", err
		}
		a = &airlines[i]
	}
	if a == nil {
		return "", nil
	}
	return airlineLabel(*a), nil
}

func airlineLabel(a catalog.Airline) string {
	if a.Code == "" {
		return a.Name
	}
	return fmt.Sprintf("%s (%s)", a.Name, a.Code)
}

func printQuote(w io.Writer, in pricing.Input, q pricing.Quote) {
	row := func(label string, sar float64) {
		_, _ = fmt.Fprintf(w, "  %s %s\n", Text(padRight(label, 40)), Text(padLeft(pricing.FormatAmount(sar, pricing.SAR), 18)))
	}

	_, _ = fmt.Fprintln(w, headerStyle.Render("Cost per person"))
	for _, h := range in.Hotels {
		name := h.Name
		if name == "" {
			name = "hotel"
		}
		label := fmt.Sprintf("%s %s, %d nights", h.City.Label(), name, h.Nights)
		if h.WeekendNights > 0 {
			label += fmt.Sprintf(" (%d weekend)", h.WeekendNights)
		}
		row(label, h.Cost())
	}
	ticket := "Ticket"
	if in.Airline != "" {
		ticket += " " + in.Airline
	}
	if in.Ticket.Currency != "" && in.Ticket.Currency != pricing.SAR && in.Ticket.Amount > 0 {
		ticket += " [" + pricing.FormatAmount(in.Ticket.Amount, in.Ticket.Currency) + "]"
	}
	row(ticket, q.TicketSAR)
	row("Visa", q.VisaSAR)
	transport := "Transport"
	if in.Transport.Vehicle != "" {
		transport += " " + in.Transport.Vehicle
	}
	row(transport, q.TransportSAR)
	if q.ProfitSAR > 0 {
		row("Profit", q.ProfitSAR)
	}
	_, _ = fmt.Fprintln(w, Silent("  "+strings.Repeat("-", 59)))
	_, _ = fmt.Fprintf(w, "  %s %s\n", Primary(padRight("Per person", 40)), Primary(padLeft(pricing.FormatAmount(q.PerPersonSAR, pricing.SAR), 18)))
	_, _ = fmt.Fprintln(w)

	_, _ = fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("Total for %d pax", q.Pax)))
	for _, m := range []pricing.Money{
		{Amount: q.Totals.SAR, Currency: pricing.SAR},
		{Amount: q.Totals.PKR, Currency: pricing.PKR},
		{Amount: q.Totals.USD, Currency: pricing.USD},
	} {
		_, _ = fmt.Fprintf(w, "  %s\n", Info(pricing.FormatAmount(m.Amount, m.Currency)))
	}
}
