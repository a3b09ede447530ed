package cli

import (
	"fmt"

	"github.com/Arshadjaved786/umrah-calculator/internal/catalog"
	"github.com/spf13/cobra"
)

var hotelListCmd = LeafCommand{
	Use:     "list CITY",
	Aliases: []string{"ls"},
	Short:   "List, filter and sort a city's hotels",
	Args:    cobra.ExactArgs(1),
	Example: "  umrahplan hotel list makkah --stars 5 --max-distance 1km --sort price",
	StrFlags: []StringFlag{
		{Name: "query", Usage: "match hotel name or distance"},
		{Name: "max-distance", Usage: "farthest distance, e.g. 500m or 1.5 km"},
		{Name: "sort", Usage: "relevance, price, distance or stars", Default: string(catalog.SortRelevance)},
	},
	IntFlags: []IntFlag{
		{Name: "stars", Usage: "only hotels with this star rating"},
	},
	FloatFlags: []FloatFlag{
		{Name: "max-price", Usage: "highest price per night in SAR"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		dataDir, err := getDataDir()
		if err != nil {
			return err
		}
		f := cmd.Flags()
		query, _ := f.GetString("query")
		maxDistance, _ := f.GetString("max-distance")
		sortBy, _ := f.GetString("sort")
		stars, _ := f.GetInt("stars")
		maxPrice, _ := f.GetFloat64("max-price")
		return runHotelList(cmd, dataDir, args[0], query, maxDistance, sortBy, stars, maxPrice)
	},
}.Build()

func runHotelList(cmd *cobra.Command, dataDir, cityArg, query, maxDistance, sortBy string, stars int, maxPrice float64) error {
	city, err := parseCityArg(cityArg)
	if err != nil {
		return err
	}
	filter := catalog.HotelFilter{Query: query, Stars: stars, MaxPrice: maxPrice}
	if filter.SortBy, err = catalog.ParseSortBy(sortBy); err != nil {
		return err
	}
	if maxDistance != "" {
		meters, ok := catalog.ParseDistanceMeters(maxDistance)
		if !ok {
			return fmt.Errorf("invalid --max-distance %q (expected e.g. 500m or 1.5 km)", maxDistance)
		}
		filter.MaxDistance = meters
	}

	hotels, err := openCatalog(dataDir).Hotels(city)
	if err != nil {
		return err
	}
	hotels = catalog.FilterHotels(hotels, filter)

	w := cmd.OutOrStdout()
	if len(hotels) == 0 {
		_, _ = fmt.Fprintln(w, Silent("No hotels found."))
		return nil
	}
	for _, h := range hotels {
		line := fmt.Sprintf("%s  %s  %s  %s  %s",
			Silent(fmt.Sprintf("%-20s", h.ID)),
			Primary(padRight(h.Name, 32)),
			Text(fmt.Sprintf("%d★", h.Stars)),
			Text(padRight(h.Distance, 8)),
			Text(fmt.Sprintf("SAR %g", h.PricePerNight)),
		)
		if h.WeekendPrice > 0 {
			line += " " + weekendStyle.Render(fmt.Sprintf("(weekend SAR %g)", h.WeekendPrice))
		}
		_, _ = fmt.Fprintln(w, line)
	}
	return nil
}
