package cli

import (
	"fmt"

	"github.com/Arshadjaved786/umrah-calculator/internal/catalog"
	"github.com/spf13/cobra"
)

var hotelAddCmd = LeafCommand{
	Use:     "add CITY",
	Short:   "Add a hotel to a city's catalog",
	Args:    cobra.ExactArgs(1),
	Example: "  umrahplan hotel add makkah --name \"Hilton Suites\" --stars 5 --distance 300m --price 650 --weekend-price 800",
	StrFlags: []StringFlag{
		{Name: "name", Usage: "hotel name; prompted when omitted"},
		{Name: "distance", Usage: "distance to the Haram, e.g. 350m or 1.2 km"},
	},
	IntFlags: []IntFlag{
		{Name: "stars", Usage: "star rating"},
	},
	FloatFlags: []FloatFlag{
		{Name: "price", Usage: "price per night in SAR"},
		{Name: "weekend-price", Usage: "Thursday and Friday night price in SAR"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		dataDir, err := getDataDir()
		if err != nil {
			return err
		}
		var h catalog.Hotel
		h.Name, _ = cmd.Flags().GetString("name")
		h.Distance, _ = cmd.Flags().GetString("distance")
		h.Stars, _ = cmd.Flags().GetInt("stars")
		h.PricePerNight, _ = cmd.Flags().GetFloat64("price")
		h.WeekendPrice, _ = cmd.Flags().GetFloat64("weekend-price")
		return runHotelAdd(cmd, dataDir, args[0], h, promptKitFor(cmd))
	},
}.Build()

func runHotelAdd(cmd *cobra.Command, dataDir, cityArg string, h catalog.Hotel, kit PromptKit) error {
	city, err := parseCityArg(cityArg)
	if err != nil {
		return err
	}
	if h.Name == "" {
		if h.Name, err = kit.Prompt("Hotel name"); err != nil {
			return err
		}
	}
	if h.Stars < 0 || h.Stars > 7 {
		return fmt.Errorf("--stars must be between 0 and 7")
	}
	if h.PricePerNight < 0 || h.WeekendPrice < 0 {
		return fmt.Errorf("prices must not be negative")
	}

	added, err := openCatalog(dataDir).AddHotel(city, h)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", Text(fmt.Sprintf("hotel '%s' added to %s (%s)", Primary(added.Name), city.Label(), Silent(added.ID))))
	return nil
}
