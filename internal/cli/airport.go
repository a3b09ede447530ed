package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var airportCmd = GroupCommand{
	Use:   "airport",
	Short: "Search and manage airports grouped by country",
	Subcommands: []*cobra.Command{
		airportSearchCmd,
		airportListCmd,
		airportAddCmd,
		airportUpdateCmd,
		airportRemoveCmd,
		airportCountryAddCmd,
		airportCountryRenameCmd,
		airportCountryRemoveCmd,
	},
}.Build()

var airportSearchCmd = LeafCommand{
	Use:   "search QUERY",
	Short: "Find airports by country, name or IATA code",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dataDir, err := getDataDir()
		if err != nil {
			return err
		}
		return runAirportSearch(cmd, dataDir, args[0])
	},
}.Build()

var airportListCmd = LeafCommand{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List countries and their airports",
	RunE: func(cmd *cobra.Command, args []string) error {
		dataDir, err := getDataDir()
		if err != nil {
			return err
		}
		return runAirportList(cmd, dataDir)
	},
}.Build()

var airportAddCmd = LeafCommand{
	Use:   "add COUNTRY NAME IATA",
	Short: "Add an airport to a country",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		dataDir, err := getDataDir()
		if err != nil {
			return err
		}
		return runAirportAdd(cmd, dataDir, args[0], args[1], args[2])
	},
}.Build()

var airportUpdateCmd = LeafCommand{
	Use:   "update COUNTRY AIRPORT NAME IATA",
	Short: "Replace an airport's name and IATA code",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		dataDir, err := getDataDir()
		if err != nil {
			return err
		}
		return runAirportUpdate(cmd, dataDir, args[0], args[1], args[2], args[3])
	},
}.Build()

var airportRemoveCmd = LeafCommand{
	Use:   "remove COUNTRY AIRPORT",
	Short: "Remove an airport by id or IATA code",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		dataDir, err := getDataDir()
		if err != nil {
			return err
		}
		return runAirportRemove(cmd, dataDir, args[0], args[1])
	},
}.Build()

var airportCountryAddCmd = LeafCommand{
	Use:   "country-add NAME",
	Short: "Add a country",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dataDir, err := getDataDir()
		if err != nil {
			return err
		}
		return runCountryAdd(cmd, dataDir, args[0])
	},
}.Build()

var airportCountryRenameCmd = LeafCommand{
	Use:   "country-rename COUNTRY NAME",
	Short: "Rename a country",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		dataDir, err := getDataDir()
		if err != nil {
			return err
		}
		return runCountryRename(cmd, dataDir, args[0], args[1])
	},
}.Build()

var airportCountryRemoveCmd = LeafCommand{
	Use:   "country-remove COUNTRY",
	Short: "Remove a country and all of its airports",
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
		return runCountryRemove(cmd, dataDir, args[0], ResolveConfirmFunc(cmd, yes))
	},
}.Build()

func runAirportSearch(cmd *cobra.Command, dataDir, query string) error {
	matches, err := openCatalog(dataDir).SearchAirports(query)
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	if len(matches) == 0 {
		_, _ = fmt.Fprintln(w, Silent("No airports found."))
		return nil
	}
	for _, m := range matches {
		_, _ = fmt.Fprintf(w, "%s  %s  %s\n", Primary(padRight(m.IATA, 3)), Text(m.Name), Silent(m.Country))
	}
	return nil
}

func runAirportList(cmd *cobra.Command, dataDir string) error {
	countries, err := openCatalog(dataDir).Countries()
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	if len(countries) == 0 {
		_, _ = fmt.Fprintln(w, Silent("No countries found."))
		return nil
	}
	for i, c := range countries {
		_, _ = fmt.Fprintf(w, "%s  %s\n", Silent(c.ID), Primary(c.Country))
		if len(c.Airports) == 0 {
			_, _ = fmt.Fprintln(w, Silent("└── (no airports)"))
		}
		for j, a := range c.Airports {
			branch := "├──"
			if j == len(c.Airports)-1 {
				branch = "└──"
			}
			_, _ = fmt.Fprintf(w, "%s\n", Text(fmt.Sprintf("%s %s  %s", branch, padRight(a.IATA, 3), a.Name)))
		}
		if i < len(countries)-1 {
			_, _ = fmt.Fprintln(w)
		}
	}
	return nil
}

func runAirportAdd(cmd *cobra.Command, dataDir, country, name, iata string) error {
	a, err := openCatalog(dataDir).AddAirport(country, name, iata)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", Text(fmt.Sprintf("airport '%s' (%s) added (%s)", Primary(a.Name), a.IATA, Silent(a.ID))))
	return nil
}

func runAirportUpdate(cmd *cobra.Command, dataDir, country, ref, name, iata string) error {
	a, err := openCatalog(dataDir).UpdateAirport(country, ref, name, iata)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", Text(fmt.Sprintf("airport '%s' (%s) updated", Primary(a.Name), a.IATA)))
	return nil
}

func runAirportRemove(cmd *cobra.Command, dataDir, country, ref string) error {
	ok, err := openCatalog(dataDir).RemoveAirport(country, ref)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("airport '%s' not found in %s", ref, country)
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", Text(fmt.Sprintf("airport '%s' removed", Primary(ref))))
	return nil
}

func runCountryAdd(cmd *cobra.Command, dataDir, name string) error {
	c, err := openCatalog(dataDir).AddCountry(name)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", Text(fmt.Sprintf("country '%s' added (%s)", Primary(c.Country), Silent(c.ID))))
	return nil
}

func runCountryRename(cmd *cobra.Command, dataDir, ref, name string) error {
	c, err := openCatalog(dataDir).RenameCountry(ref, name)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", Text(fmt.Sprintf("country renamed to '%s'", Primary(c.Country))))
	return nil
}

func runCountryRemove(cmd *cobra.Command, dataDir, ref string, confirm ConfirmFunc) error {
	ok, err := confirm(fmt.Sprintf("Remove country '%s' and all of its airports?", ref))
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("aborted")
	}
	removed, err := openCatalog(dataDir).RemoveCountry(ref)
	if err != nil {
		return err
	}
	if !removed {
		return fmt.Errorf("country '%s' not found", ref)
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", Text(fmt.Sprintf("country '%s' removed", Primary(ref))))
	return nil
}
