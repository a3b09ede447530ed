package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDistanceMeters(t *testing.T) {
	tests := []struct {
		input  string
		want   int
		wantOK bool
	}{
		{"350m", 350, true},
		{"1.2 km", 1200, true},
		{"1200 m", 1200, true},
		{"0.5km", 500, true},
		{"0,5 KM", 500, true},
		{"800", 800, true},
		{"", 0, false},
		{"walking", 0, false},
		{"1 km 200 m", 0, false},
		{"1.2.3 km", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseDistanceMeters(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseSortBy(t *testing.T) {
	for input, want := range map[string]SortBy{"": SortRelevance, "Price": SortPrice, "distance": SortDistance, " STARS ": SortStars} {
		got, err := ParseSortBy(input)
		assert.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseSortBy("rating")
	assert.Error(t, err)
}

func names(hotels []Hotel) []string {
	out := make([]string, len(hotels))
	for i, h := range hotels {
		out[i] = h.Name
	}
	return out
}

func TestFilterHotels(t *testing.T) {
	hotels := []Hotel{
		{Name: "Alpha", Stars: 5, Distance: "100m", PricePerNight: 900},
		{Name: "Bravo", Stars: 4, Distance: "1.5 km", PricePerNight: 300},
		{Name: "Charlie", Stars: 3, Distance: "600m", PricePerNight: 150},
		{Name: "Delta", Stars: 4, Distance: "", PricePerNight: 450},
		{Name: "Echo Towers", Stars: 5, Distance: "350m", PricePerNight: 700},
	}

	tests := []struct {
		name   string
		filter HotelFilter
		want   []string
	}{
		{name: "no filter keeps order", filter: HotelFilter{}, want: []string{"Alpha", "Bravo", "Charlie", "Delta", "Echo Towers"}},
		{name: "stars", filter: HotelFilter{Stars: 4}, want: []string{"Bravo", "Delta"}},
		{name: "max price", filter: HotelFilter{MaxPrice: 450}, want: []string{"Bravo", "Charlie", "Delta"}},
		{name: "max distance keeps unknown distance", filter: HotelFilter{MaxDistance: 500}, want: []string{"Alpha", "Delta", "Echo Towers"}},
		{name: "query on name", filter: HotelFilter{Query: "towers"}, want: []string{"Echo Towers"}},
		{name: "query on distance", filter: HotelFilter{Query: "km"}, want: []string{"Bravo"}},
		{name: "sort by price", filter: HotelFilter{SortBy: SortPrice}, want: []string{"Charlie", "Bravo", "Delta", "Echo Towers", "Alpha"}},
		{name: "sort by distance", filter: HotelFilter{SortBy: SortDistance}, want: []string{"Delta", "Alpha", "Echo Towers", "Charlie", "Bravo"}},
		{name: "sort by stars is stable", filter: HotelFilter{SortBy: SortStars}, want: []string{"Alpha", "Echo Towers", "Bravo", "Delta", "Charlie"}},
		{name: "combined", filter: HotelFilter{Stars: 5, MaxPrice: 800, SortBy: SortPrice}, want: []string{"Echo Towers"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, names(FilterHotels(hotels, tt.filter)))
		})
	}
}

func TestHotelLabel(t *testing.T) {
	h := Hotel{Name: "Swissotel Makkah", Stars: 5, Distance: "50m", PricePerNight: 950}
	assert.Equal(t, "Swissotel Makkah | 5★ | 50m | SAR 950", h.Label())
}
