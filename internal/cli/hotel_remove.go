package cli

import (
	"fmt"

	"github.com/Arshadjaved786/umrah-calculator/internal/catalog"
	"github.com/spf13/cobra"
)

var hotelRemoveCmd = LeafCommand{
	Use:   "remove CITY HOTEL",
	Short: "Remove a hotel from a city's catalog",
	Args:  cobra.ExactArgs(2),
	BoolFlags: []BoolFlag{
		{Name: "yes", Usage: "skip confirmation prompt"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		dataDir, err := getDataDir()
		if err != nil {
			return err
		}
		yes, _ := cmd.Flags().GetBool("yes")
		return runHotelRemove(cmd, dataDir, args[0], args[1], ResolveConfirmFunc(cmd, yes))
	},
}.Build()

var hotelResetCmd = LeafCommand{
	Use:   "reset CITY",
	Short: "Drop local hotel edits and restore the bundled list",
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
		return runHotelReset(cmd, dataDir, args[0], ResolveConfirmFunc(cmd, yes))
	},
}.Build()

func runHotelRemove(cmd *cobra.Command, dataDir, cityArg, ref string, confirm ConfirmFunc) error {
	city, err := parseCityArg(cityArg)
	if err != nil {
		return err
	}
	cat := openCatalog(dataDir)
	hotels, err := cat.Hotels(city)
	if err != nil {
		return err
	}
	h := catalog.FindHotel(hotels, ref)
	if h == nil {
		return fmt.Errorf("hotel '%s' not found in %s", ref, city.Label())
	}

	ok, err := confirm(fmt.Sprintf("Remove hotel '%s' from %s?", h.Name, city.Label()))
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("aborted")
	}

	if _, err := cat.RemoveHotel(city, h.ID); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", Text(fmt.Sprintf("hotel '%s' removed", Primary(h.Name))))
	return nil
}

func runHotelReset(cmd *cobra.Command, dataDir, cityArg string, confirm ConfirmFunc) error {
	city, err := parseCityArg(cityArg)
	if err != nil {
		return err
	}
	ok, err := confirm(fmt.Sprintf("Restore the default %s hotels? Local changes are lost.", city.Label()))
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("aborted")
	}

	if err := openCatalog(dataDir).ResetHotels(city); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", Text(fmt.Sprintf("%s hotels restored to defaults", Primary(city.Label()))))
	return nil
}
