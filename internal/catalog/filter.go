package catalog

import (
	"cmp"
	"fmt"
	"math"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

// SortBy orders filtered hotels.
type SortBy string

const (
	SortRelevance SortBy = "relevance"
	SortPrice     SortBy = "price"
	SortDistance  SortBy = "distance"
	SortStars     SortBy = "stars"
)

// ParseSortBy accepts the sort names case-insensitively; empty means relevance.
func ParseSortBy(s string) (SortBy, error) {
	switch v := SortBy(strings.ToLower(strings.TrimSpace(s))); v {
	case "":
		return SortRelevance, nil
	case SortRelevance, SortPrice, SortDistance, SortStars:
		return v, nil
	}
	return "", fmt.Errorf("unknown sort %q (expected relevance, price, distance or stars)", s)
}

// HotelFilter narrows a hotel list. Zero fields do not filter.
type HotelFilter struct {
	Query string
	// Stars keeps only hotels with exactly this rating.
	Stars int
	// MaxPrice is the highest accepted price per night.
	MaxPrice float64
	// MaxDistance is the farthest accepted distance in meters.
	MaxDistance int
	SortBy      SortBy
}

var distanceNumber = regexp.MustCompile(`\d+(?:[.,]\d+)?|[.,]\d+`)

// ParseDistanceMeters reads distances such as "350m", "1.2 km", "1200 m" or
// "0,5km". A bare number is taken as meters. Input holding more than one
// number, such as "1 km 200 m", is rejected.
func ParseDistanceMeters(s string) (int, bool) {
	v := strings.ToLower(strings.TrimSpace(s))
	if v == "" {
		return 0, false
	}

	numbers := distanceNumber.FindAllString(v, -1)
	if len(numbers) != 1 {
		return 0, false
	}
	n, err := strconv.ParseFloat(strings.Replace(numbers[0], ",", ".", 1), 64)
	if err != nil {
		return 0, false
	}
	if strings.Contains(v, "km") {
		n *= 1000
	}
	return int(math.Round(n)), true
}

// FilterHotels returns the hotels matching f, sorted as f asks. Relevance
// keeps the input order. Hotels whose distance cannot be read are kept by
// the distance filter and sort as zero meters.
func FilterHotels(hotels []Hotel, f HotelFilter) []Hotel {
	q := strings.ToLower(strings.TrimSpace(f.Query))

	out := make([]Hotel, 0, len(hotels))
	for _, h := range hotels {
		if f.Stars != 0 && h.Stars != f.Stars {
			continue
		}
		if f.MaxPrice > 0 && h.PricePerNight > f.MaxPrice {
			continue
		}
		if f.MaxDistance > 0 {
			if d, ok := ParseDistanceMeters(h.Distance); ok && d > f.MaxDistance {
				continue
			}
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(h.Name), q) &&
			!strings.Contains(strings.ToLower(h.Distance), q) {
			continue
		}
		out = append(out, h)
	}

	switch f.SortBy {
	case SortPrice:
		slices.SortStableFunc(out, func(a, b Hotel) int {
			return cmp.Compare(a.PricePerNight, b.PricePerNight)
		})
	case SortDistance:
		slices.SortStableFunc(out, func(a, b Hotel) int {
			da, _ := ParseDistanceMeters(a.Distance)
			db, _ := ParseDistanceMeters(b.Distance)
			return da - db
		})
	case SortStars:
		slices.SortStableFunc(out, func(a, b Hotel) int {
			return b.Stars - a.Stars
		})
	}
	return out
}
