package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/Arshadjaved786/umrah-calculator/internal/config"
	"github.com/Arshadjaved786/umrah-calculator/internal/export"
	"github.com/Arshadjaved786/umrah-calculator/internal/itinerary"
	"github.com/Arshadjaved786/umrah-calculator/internal/pkgstore"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// planFlags holds the plan command's inputs. The pointer toggles are only
// set when the flag was given, so config defaults apply otherwise.
type planFlags struct {
	departure  string
	exit       string
	days       int
	start      string
	exitCity   string
	maxMadinah *bool

	excludeArrival *bool
	excludeExit    *bool
	markWeekend    *bool

	save   bool
	asJSON bool
	pdf    string
}

var planCmd = LeafCommand{
	Use:   "plan",
	Short: "Generate an itinerary split between Makkah and Madinah",
	Example: "  umrahplan plan --departure 2025-01-01 --days 15\n" +
		"  umrahplan plan --departure 2025-01-01 --exit 2025-01-20 --exit-city madinah --save",
	StrFlags: []StringFlag{
		{Name: "departure", Usage: "departure date (YYYY-MM-DD); prompted when omitted"},
		{Name: "exit", Usage: "exit date; takes precedence over --days"},
		{Name: "start", Usage: "first city (makkah or madinah)"},
		{Name: "exit-city", Usage: "last city (makkah or madinah)"},
		{Name: "pdf", Usage: "also write the itinerary to this PDF file"},
	},
	IntFlags: []IntFlag{
		{Name: "days", Usage: "total trip days (default from config)"},
	},
	BoolFlags: []BoolFlag{
		{Name: "max-madinah", Usage: "give Madinah as many nights as possible"},
		{Name: "exclude-arrival", Usage: "do not count the arrival night"},
		{Name: "exclude-exit", Usage: "do not count the exit night"},
		{Name: "mark-weekend", Usage: "tag Thursday and Friday nights", Default: true},
		{Name: "save", Usage: "store the plan for adjust and calc"},
		{Name: "json", Usage: "print the plan as JSON"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		dataDir, err := getDataDir()
		if err != nil {
			return err
		}
		return runPlan(cmd, dataDir, readPlanFlags(cmd), promptKitFor(cmd), time.Now)
	},
}.Build()

func readPlanFlags(cmd *cobra.Command) planFlags {
	f := cmd.Flags()
	var pf planFlags
	pf.departure, _ = f.GetString("departure")
	pf.exit, _ = f.GetString("exit")
	pf.days, _ = f.GetInt("days")
	pf.start, _ = f.GetString("start")
	pf.exitCity, _ = f.GetString("exit-city")
	pf.pdf, _ = f.GetString("pdf")
	pf.save, _ = f.GetBool("save")
	pf.asJSON, _ = f.GetBool("json")

	changedBool := func(name string) *bool {
		if !f.Changed(name) {
			return nil
		}
		v, _ := f.GetBool(name)
		return &v
	}
	pf.maxMadinah = changedBool("max-madinah")
	pf.excludeArrival = changedBool("exclude-arrival")
	pf.excludeExit = changedBool("exclude-exit")
	pf.markWeekend = changedBool("mark-weekend")
	return pf
}

// resolvePlanInput merges flags over the configured planning defaults.
func resolvePlanInput(pf planFlags, planning config.Planning) (itinerary.Options, itinerary.ViewOptions, error) {
	opts := itinerary.Options{
		DepartureDate: pf.departure,
		ExitDate:      pf.exit,
		TotalDays:     pf.days,
		StartCity:     planning.StartCity,
		ExitCity:      planning.ExitCity,
		MaxMadinah:    planning.MaxMadinah,
	}
	if opts.ExitDate == "" && opts.TotalDays == 0 {
		opts.TotalDays = planning.TotalDays
	}
	if pf.start != "" {
		c, err := itinerary.ParseCity(pf.start)
		if err != nil {
			return opts, itinerary.ViewOptions{}, fmt.Errorf("--start: %w", err)
		}
		opts.StartCity = c
	}
	if pf.exitCity != "" {
		c, err := itinerary.ParseCity(pf.exitCity)
		if err != nil {
			return opts, itinerary.ViewOptions{}, fmt.Errorf("--exit-city: %w", err)
		}
		opts.ExitCity = c
	}
	if pf.maxMadinah != nil {
		opts.MaxMadinah = *pf.maxMadinah
	}

	view := planning.ViewOptions()
	if pf.excludeArrival != nil {
		view.ExcludeArrival = *pf.excludeArrival
	}
	if pf.excludeExit != nil {
		view.ExcludeExit = *pf.excludeExit
	}
	if pf.markWeekend != nil {
		view.MarkWeekend = *pf.markWeekend
	}
	return opts, view, nil
}

func runPlan(cmd *cobra.Command, dataDir string, pf planFlags, kit PromptKit, now func() time.Time) error {
	cfg, err := loadConfig(dataDir)
	if err != nil {
		return err
	}

	if pf.departure == "" {
		pf.departure, err = kit.Prompt("Departure date (YYYY-MM-DD)")
		if err != nil {
			return err
		}
	}

	opts, view, err := resolvePlanInput(pf, cfg.Planning)
	if err != nil {
		return err
	}

	res, err := itinerary.Generate(opts)
	if err != nil {
		return err
	}
	appLog.Debug("plan generated",
		zap.Ints("distribution", res.Raw.Distribution),
		zap.Int("total_days", res.Raw.TotalDays),
		zap.Int("travel_junctions", len(res.TravelInfos)),
	)

	plan := &pkgstore.Plan{Options: opts, View: view, Result: res}
	projected := plan.Projection()
	w := cmd.OutOrStdout()

	if pf.asJSON {
		data, err := json.MarshalIndent(struct {
			Result *itinerary.Result `json:"result"`
			View   itinerary.View    `json:"view"`
		}{res, projected}, "", "  ")
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(w, string(data))
	} else {
		for _, n := range res.Notes {
			_, _ = fmt.Fprintln(w, Info(n))
		}
		_, _ = fmt.Fprintln(w)
		renderPlanTable(w, projected, travelInfosOf(plan))
	}

	if pf.save {
		if err := pkgstore.WriteLastPlan(dataDir, plan, now()); err != nil {
			return err
		}
		if !pf.asJSON {
			_, _ = fmt.Fprintf(w, "%s\n", Text(fmt.Sprintf("plan saved to %s", Silent(pkgstore.LastPlanPath(dataDir)))))
		}
	}

	if pf.pdf != "" {
		agency, profileURL := agencyProfile(cfg)
		if err := export.WriteItineraryPDF(export.ItineraryFromPlan(plan, agency, profileURL), pf.pdf); err != nil {
			return err
		}
		if !pf.asJSON {
			_, _ = fmt.Fprintf(w, "%s\n", Text(fmt.Sprintf("exported itinerary to %s", Primary(pf.pdf))))
		}
	}
	return nil
}

// agencyProfile returns the active agency and its public profile link.
func agencyProfile(cfg *config.Config) (*config.Agency, string) {
	a := cfg.Agency()
	if a == nil {
		return nil, ""
	}
	return a, agencyURL(cfg, a.Slug)
}

func agencyURL(cfg *config.Config, slug string) string {
	return config.ProfileURL(cfg.PublicURL, slug)
}

// travelInfosOf returns the generator's travel notes, which no longer apply
// once stays were moved by hand.
func travelInfosOf(p *pkgstore.Plan) []itinerary.TravelInfo {
	if p == nil || p.Result == nil || len(p.Manual) > 0 {
		return nil
	}
	return p.Result.TravelInfos
}
