package itinerary

import (
	"fmt"
	"strings"
)

// City is one of the two stay cities.
type City string

const (
	Makkah  City = "makkah"
	Madinah City = "madinah"
)

// Cities lists every supported city in display order.
var Cities = []City{Makkah, Madinah}

// ParseCity reads a city name case-insensitively. An empty string yields Makkah.
func ParseCity(s string) (City, error) {
	switch City(strings.ToLower(strings.TrimSpace(s))) {
	case "", Makkah:
		return Makkah, nil
	case Madinah:
		return Madinah, nil
	}
	return "", fmt.Errorf("unknown city %q (expected makkah or madinah)", s)
}

// Valid reports whether c is a supported city.
func (c City) Valid() bool {
	return c == Makkah || c == Madinah
}

// Label returns the capitalized city name.
func (c City) Label() string {
	switch c {
	case Makkah:
		return "Makkah"
	case Madinah:
		return "Madinah"
	}
	return string(c)
}

// Other returns the opposite city.
func (c City) Other() City {
	if c == Madinah {
		return Makkah
	}
	return Madinah
}
