package cli

import (
	"fmt"

	"github.com/Arshadjaved786/umrah-calculator/internal/catalog"
	"github.com/spf13/cobra"
)

var airlineCmd = GroupCommand{
	Use:   "airline",
	Short: "Manage the airline catalog",
	Subcommands: []*cobra.Command{
		airlineAddCmd,
		airlineListCmd,
		airlineUpdateCmd,
		airlineRemoveCmd,
		airlineResetCmd,
	},
}.Build()

var airlineFlags = []StringFlag{
	{Name: "name", Usage: "airline name"},
	{Name: "code", Usage: "IATA airline code, e.g. SV"},
	{Name: "logo", Usage: "logo URL"},
}

func airlineFromFlags(cmd *cobra.Command) catalog.Airline {
	var a catalog.Airline
	a.Name, _ = cmd.Flags().GetString("name")
	a.Code, _ = cmd.Flags().GetString("code")
	a.Logo, _ = cmd.Flags().GetString("logo")
	return a
}

var airlineAddCmd = LeafCommand{
	Use:      "add",
	Short:    "Add an airline",
	StrFlags: airlineFlags,
	RunE: func(cmd *cobra.Command, args []string) error {
		dataDir, err := getDataDir()
		if err != nil {
			return err
		}
		return runAirlineAdd(cmd, dataDir, airlineFromFlags(cmd), promptKitFor(cmd))
	},
}.Build()

var airlineListCmd = LeafCommand{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List airlines, most recently added first",
	RunE: func(cmd *cobra.Command, args []string) error {
		dataDir, err := getDataDir()
		if err != nil {
			return err
		}
		return runAirlineList(cmd, dataDir)
	},
}.Build()

var airlineUpdateCmd = LeafCommand{
	Use:      "update AIRLINE",
	Short:    "Replace an airline's name, code and logo",
	Args:     cobra.ExactArgs(1),
	StrFlags: airlineFlags,
	RunE: func(cmd *cobra.Command, args []string) error {
		dataDir, err := getDataDir()
		if err != nil {
			return err
		}
		return runAirlineUpdate(cmd, dataDir, args[0], airlineFromFlags(cmd))
	},
}.Build()

var airlineRemoveCmd = LeafCommand{
	Use:   "remove AIRLINE",
	Short: "Remove an airline",
	Args:  cobra.ExactArgs(1),
	BoolFlags: []BoolFlag{
		{Name: "yes", Usage: "skip confirmation prompt"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		dataDir, err := getDataDir()
		if err != nil {
			return err
		}
		yes, _ := cmd.Flags().GetBool("yes")
		return runAirlineRemove(cmd, dataDir, args[0], ResolveConfirmFunc(cmd, yes))
	},
}.Build()

var airlineResetCmd = LeafCommand{
	Use:   "reset",
	Short: "Restore the bundled airline list",
	BoolFlags: []BoolFlag{
		{Name: "yes", Usage: "skip confirmation prompt"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		dataDir, err := getDataDir()
		if err != nil {
			return err
		}
		yes, _ := cmd.Flags().GetBool("yes")
		return runAirlineReset(cmd, dataDir, ResolveConfirmFunc(cmd, yes))
	},
}.Build()

func runAirlineAdd(cmd *cobra.Command, dataDir string, a catalog.Airline, kit PromptKit) error {
	var err error
	if a.Name == "" {
		if a.Name, err = kit.Prompt("Airline name"); err != nil {
			return err
		}
	}
	added, err := openCatalog(dataDir).AddAirline(a)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", Text(fmt.Sprintf("airline '%s' added (%s)", Primary(airlineLabel(added)), Silent(added.ID))))
	return nil
}

func runAirlineList(cmd *cobra.Command, dataDir string) error {
	airlines, err := openCatalog(dataDir).Airlines()
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	if len(airlines) == 0 {
		_, _ = fmt.Fprintln(w, Silent("No airlines found."))
		return nil
	}
	for _, a := range airlines {
		_, _ = fmt.Fprintf(w, "%s  %s  %s\n", Silent(fmt.Sprintf("%-16s", a.ID)), Primary(padRight(a.Code, 3)), Text(a.Name))
	}
	return nil
}

func runAirlineUpdate(cmd *cobra.Command, dataDir, ref string, a catalog.Airline) error {
	cat := openCatalog(dataDir)
	airlines, err := cat.Airlines()
	if err != nil {
		return err
	}
	existing := catalog.FindAirline(airlines, ref)
	if existing == nil {
		return fmt.Errorf("airline '%s' not found", ref)
	}
	if a.Name == "" {
		a.Name = existing.Name
	}
	if a.Code == "" {
		a.Code = existing.Code
	}
	if a.Logo == "" {
		a.Logo = existing.Logo
	}

	updated, err := cat.UpdateAirline(existing.ID, a)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", Text(fmt.Sprintf("airline '%s' updated", Primary(airlineLabel(updated)))))
	return nil
}

func runAirlineRemove(cmd *cobra.Command, dataDir, ref string, confirm ConfirmFunc) error {
	cat := openCatalog(dataDir)
	airlines, err := cat.Airlines()
	if err != nil {
		return err
	}
	a := catalog.FindAirline(airlines, ref)
	if a == nil {
		return fmt.Errorf("airline '%s' not found", ref)
	}

	ok, err := confirm(fmt.Sprintf("Remove airline '%s'?", a.Name))
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("aborted")
	}
	if _, err := cat.RemoveAirline(a.ID); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", Text(fmt.Sprintf("airline '%s' removed", Primary(a.Name))))
	return nil
}

func runAirlineReset(cmd *cobra.Command, dataDir string, confirm ConfirmFunc) error {
	ok, err := confirm("Restore the default airlines? Local changes are lost.")
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("aborted")
	}
	airlines, err := openCatalog(dataDir).ResetAirlines()
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", Text(fmt.Sprintf("airlines restored to defaults (%d)", len(airlines))))
	return nil
}
