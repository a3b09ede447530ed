package cli

import (
	"fmt"

	"github.com/Arshadjaved786/umrah-calculator/internal/itinerary"
	"github.com/spf13/cobra"
)

var hotelCmd = GroupCommand{
	Use:   "hotel",
	Short: "Manage the Makkah and Madinah hotel catalogs",
	Subcommands: []*cobra.Command{
		hotelAddCmd,
		hotelListCmd,
		hotelUpdateCmd,
		hotelRemoveCmd,
		hotelResetCmd,
	},
}.Build()

func parseCityArg(arg string) (itinerary.City, error) {
	city, err := itinerary.ParseCity(arg)
	if err != nil {
		return "", err
	}
	if arg == "" {
		return "", fmt.Errorf("city is required (makkah or madinah)")
	}
	return city, nil
}
