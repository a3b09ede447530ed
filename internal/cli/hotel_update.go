package cli

import (
	"fmt"

	"github.com/Arshadjaved786/umrah-calculator/internal/catalog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var hotelUpdateCmd = LeafCommand{
	Use:   "update CITY HOTEL",
	Short: "Change a hotel's details; only the given flags are changed",
	Args:  cobra.ExactArgs(2),
	StrFlags: []StringFlag{
		{Name: "name", Usage: "new hotel name"},
		{Name: "distance", Usage: "new distance to the Haram"},
	},
	IntFlags: []IntFlag{
		{Name: "stars", Usage: "new star rating"},
	},
	FloatFlags: []FloatFlag{
		{Name: "price", Usage: "new price per night in SAR"},
		{Name: "weekend-price", Usage: "new weekend price in SAR (0 clears it)"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		dataDir, err := getDataDir()
		if err != nil {
			return err
		}
		return runHotelUpdate(cmd, dataDir, args[0], args[1], hotelUpdateFromFlags(cmd.Flags()))
	},
}.Build()

func hotelUpdateFromFlags(f *pflag.FlagSet) catalog.HotelUpdate {
	var u catalog.HotelUpdate
	if f.Changed("name") {
		v, _ := f.GetString("name")
		u.Name = &v
	}
	if f.Changed("distance") {
		v, _ := f.GetString("distance")
		u.Distance = &v
	}
	if f.Changed("stars") {
		v, _ := f.GetInt("stars")
		u.Stars = &v
	}
	if f.Changed("price") {
		v, _ := f.GetFloat64("price")
		u.PricePerNight = &v
	}
	if f.Changed("weekend-price") {
		v, _ := f.GetFloat64("weekend-price")
		u.WeekendPrice = &v
	}
	return u
}

func runHotelUpdate(cmd *cobra.Command, dataDir, cityArg, ref string, u catalog.HotelUpdate) error {
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

	updated, err := cat.UpdateHotel(city, h.ID, u)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", Text(fmt.Sprintf("hotel '%s' updated: %s", Primary(updated.Name), updated.Label())))
	return nil
}
