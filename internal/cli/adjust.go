package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/Arshadjaved786/umrah-calculator/internal/caldate"
	"github.com/Arshadjaved786/umrah-calculator/internal/itinerary"
	"github.com/Arshadjaved786/umrah-calculator/internal/pkgstore"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var errNoPlan = fmt.Errorf("no saved plan; run 'umrahplan plan --save' first")

// adjustFlags are the non-interactive adjust actions. Stay and lock numbers
// are 1-based; zero means not given.
type adjustFlags struct {
	stay  int
	delta int
	lock  int
	reset bool
}

func (af adjustFlags) interactive() bool {
	return af.stay == 0 && af.lock == 0 && !af.reset
}

var adjustCmd = LeafCommand{
	Use:   "adjust",
	Short: "Move nights between the stays of the saved plan",
	Example: "  umrahplan adjust\n" +
		"  umrahplan adjust --stay 1 --delta 1\n" +
		"  umrahplan adjust --lock 3",
	IntFlags: []IntFlag{
		{Name: "stay", Usage: "stay number to change"},
		{Name: "delta", Usage: "+1 adds a night to the stay, -1 removes one", Default: 1},
		{Name: "lock", Usage: "toggle the lock on this stay number"},
	},
	BoolFlags: []BoolFlag{
		{Name: "reset", Usage: "drop manual changes and go back to the generated stays"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		dataDir, err := getDataDir()
		if err != nil {
			return err
		}
		var af adjustFlags
		af.stay, _ = cmd.Flags().GetInt("stay")
		af.delta, _ = cmd.Flags().GetInt("delta")
		af.lock, _ = cmd.Flags().GetInt("lock")
		af.reset, _ = cmd.Flags().GetBool("reset")
		return runAdjust(cmd, dataDir, af, time.Now)
	},
}.Build()

func runAdjust(cmd *cobra.Command, dataDir string, af adjustFlags, now func() time.Time) error {
	plan, err := pkgstore.ReadLastPlan(dataDir)
	if err != nil {
		return err
	}
	if plan == nil {
		return errNoPlan
	}
	w := cmd.OutOrStdout()

	if af.reset {
		plan.Manual = nil
		if err := pkgstore.WriteLastPlan(dataDir, plan, now()); err != nil {
			return err
		}
		_, _ = fmt.Fprintln(w, Text("manual changes cleared"))
		renderPlanTable(w, plan.Projection(), nil)
		return nil
	}

	if len(plan.Manual) == 0 {
		plan.Manual = itinerary.NewManualStays(plan.Projection())
	}
	if len(plan.Manual) == 0 {
		return fmt.Errorf("saved plan has no stays")
	}

	if af.interactive() {
		if !isTerminal(w) {
			_, _ = fmt.Fprint(w, renderManualStays(plan.Manual, -1))
			return nil
		}
		stays, saved, err := runAdjustTUI(cmd, plan.Manual)
		if err != nil || !saved {
			return err
		}
		plan.Manual = stays
		return saveManual(w, dataDir, plan, now)
	}

	if af.lock != 0 {
		if af.lock < 1 || af.lock > len(plan.Manual) {
			return fmt.Errorf("--lock must be between 1 and %d", len(plan.Manual))
		}
		plan.Manual[af.lock-1].Locked = !plan.Manual[af.lock-1].Locked
		if len(plan.Manual) != 3 {
			_, _ = fmt.Fprintln(w, Warning("locks only take effect on plans with three stays"))
		}
	}

	if af.stay != 0 {
		if af.stay < 1 || af.stay > len(plan.Manual) {
			return fmt.Errorf("--stay must be between 1 and %d", len(plan.Manual))
		}
		if af.delta != 1 && af.delta != -1 {
			return fmt.Errorf("--delta must be +1 or -1")
		}
		res := itinerary.Adjust(plan.Manual, af.stay-1, af.delta)
		appLog.Debug("manual adjustment",
			zap.Int("stay", af.stay),
			zap.Int("delta", af.delta),
			zap.Bool("balance_warning", res.BalanceWarning),
			zap.Bool("locked", res.Locked),
		)
		if msg := adjustMessage(res, af.stay-1); msg != "" {
			_, _ = fmt.Fprintln(w, Warning(msg))
		}
		if res.BalanceWarning {
			if af.lock != 0 {
				return saveManual(w, dataDir, plan, now)
			}
			_, _ = fmt.Fprint(w, renderManualStays(plan.Manual, af.stay-1))
			return nil
		}
		plan.Manual = res.Stays
	}

	return saveManual(w, dataDir, plan, now)
}

func saveManual(w io.Writer, dataDir string, plan *pkgstore.Plan, now func() time.Time) error {
	if err := pkgstore.WriteLastPlan(dataDir, plan, now()); err != nil {
		return err
	}
	_, _ = fmt.Fprint(w, renderManualStays(plan.Manual, -1))
	_, _ = fmt.Fprintln(w, Text("plan updated"))
	return nil
}

// adjustMessage explains a rejected or questionable adjustment. It returns
// "" when there is nothing to say.
func adjustMessage(res itinerary.AdjustResult, index int) string {
	switch {
	case res.Locked:
		return fmt.Sprintf("stay %d is locked", index+1)
	case res.BalanceWarning:
		return "no other stay can give or take a night; total kept unchanged"
	case res.ForbiddenDayWarning:
		return "a travel date now falls on a " + caldate.ForbiddenTravelWeekday.String()
	}
	return ""
}

// renderManualStays lists manual stays with their lock state. The row at
// cursor is highlighted; pass -1 for none.
func renderManualStays(stays []itinerary.ManualStay, cursor int) string {
	var b strings.Builder
	header := " # " + padRight("City", cityColWidth) + " " +
		padRight("Check-in", dateColWidth) + " " +
		padRight("Last night", dateColWidth) + " " +
		padLeft("Nights", nightsColWidth) + "  Lock"
	b.WriteString(headerStyle.Render(header))
	b.WriteString("\n")

	total := 0
	for i, s := range stays {
		lock := ""
		if s.Locked {
			lock = "locked"
		}
		row := fmt.Sprintf("%2d ", i+1) +
			padRight(s.City.Label(), cityColWidth) + " " +
			padRight(caldate.Format(s.CheckIn).Human, dateColWidth) + " " +
			padRight(caldate.Format(s.LastNight).Human, dateColWidth) + " " +
			padLeft(fmt.Sprintf("%d", s.Nights), nightsColWidth) + "  " + lock
		if i == cursor {
			b.WriteString(selectedStyle.Render(row))
		} else {
			b.WriteString(Text(row))
		}
		b.WriteString("\n")

		if i < len(stays)-1 {
			b.WriteString(travelLine(s.CheckOut, i, nil))
			b.WriteString("\n")
		}
		total += s.Nights
	}
	b.WriteString(Silent(fmt.Sprintf("total %d nights", total)))
	b.WriteString("\n")
	return b.String()
}
