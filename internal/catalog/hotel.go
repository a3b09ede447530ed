package catalog

import (
	"fmt"
	"strings"

	"github.com/Arshadjaved786/umrah-calculator/internal/hashutil"
	"github.com/Arshadjaved786/umrah-calculator/internal/itinerary"
)

// Hotel is a bookable hotel in one city. Prices are per night in SAR.
// WeekendPrice is optional; zero means the regular price applies.
type Hotel struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Stars         int     `json:"stars"`
	Distance      string  `json:"distance"`
	PricePerNight float64 `json:"pricePerNight"`
	WeekendPrice  float64 `json:"weekendPrice,omitempty"`
}

// Label is the one-line description shown in pickers.
func (h Hotel) Label() string {
	return fmt.Sprintf("%s | %d★ | %s | SAR %g", h.Name, h.Stars, h.Distance, h.PricePerNight)
}

// HotelUpdate holds the fields to change; nil fields are left alone.
type HotelUpdate struct {
	Name          *string
	Stars         *int
	Distance      *string
	PricePerNight *float64
	WeekendPrice  *float64
}

var hotelIDPrefix = map[itinerary.City]string{
	itinerary.Makkah:  "mkh",
	itinerary.Madinah: "mdn",
}

func hotelsFile(city itinerary.City) (string, error) {
	if !city.Valid() {
		return "", fmt.Errorf("unknown city %q", string(city))
	}
	return "hotels_" + string(city) + ".json", nil
}

// Hotels returns the hotels of a city in stored order.
func (s *Store) Hotels(city itinerary.City) ([]Hotel, error) {
	name, err := hotelsFile(city)
	if err != nil {
		return nil, err
	}
	var hotels []Hotel
	if err := s.load(name, &hotels); err != nil {
		return nil, err
	}
	return hotels, nil
}

// FindHotel looks a hotel up by id, or by name when no id matches.
// Names are compared case-insensitively. It returns nil when nothing matches.
func FindHotel(hotels []Hotel, ref string) *Hotel {
	for i := range hotels {
		if hotels[i].ID == ref {
			return &hotels[i]
		}
	}
	for i := range hotels {
		if strings.EqualFold(hotels[i].Name, ref) {
			return &hotels[i]
		}
	}
	return nil
}

// AddHotel appends a hotel to a city's list, assigning an id when it has none.
func (s *Store) AddHotel(city itinerary.City, h Hotel) (Hotel, error) {
	if strings.TrimSpace(h.Name) == "" {
		return Hotel{}, fmt.Errorf("hotel name is required")
	}
	hotels, err := s.Hotels(city)
	if err != nil {
		return Hotel{}, err
	}
	if h.ID == "" {
		h.ID = hashutil.PrefixedID(hotelIDPrefix[city], h.Name)
	}
	if FindHotel(hotels, h.ID) != nil {
		return Hotel{}, fmt.Errorf("hotel '%s' already exists", h.ID)
	}

	hotels = append(hotels, h)
	name, _ := hotelsFile(city)
	if err := s.save(name, hotels); err != nil {
		return Hotel{}, err
	}
	return h, nil
}

// UpdateHotel applies u to the hotel with the given id.
func (s *Store) UpdateHotel(city itinerary.City, id string, u HotelUpdate) (Hotel, error) {
	hotels, err := s.Hotels(city)
	if err != nil {
		return Hotel{}, err
	}

	h := FindHotel(hotels, id)
	if h == nil {
		return Hotel{}, fmt.Errorf("hotel '%s' not found in %s", id, city.Label())
	}
	if u.Name != nil {
		h.Name = *u.Name
	}
	if u.Stars != nil {
		h.Stars = *u.Stars
	}
	if u.Distance != nil {
		h.Distance = *u.Distance
	}
	if u.PricePerNight != nil {
		h.PricePerNight = *u.PricePerNight
	}
	if u.WeekendPrice != nil {
		h.WeekendPrice = *u.WeekendPrice
	}

	name, _ := hotelsFile(city)
	if err := s.save(name, hotels); err != nil {
		return Hotel{}, err
	}
	return *h, nil
}

// RemoveHotel deletes a hotel and reports whether it existed.
func (s *Store) RemoveHotel(city itinerary.City, id string) (bool, error) {
	hotels, err := s.Hotels(city)
	if err != nil {
		return false, err
	}

	kept := make([]Hotel, 0, len(hotels))
	for _, h := range hotels {
		if h.ID != id {
			kept = append(kept, h)
		}
	}
	if len(kept) == len(hotels) {
		return false, nil
	}

	name, _ := hotelsFile(city)
	return true, s.save(name, kept)
}

// ResetHotels drops local edits so the bundled list applies again.
func (s *Store) ResetHotels(city itinerary.City) error {
	name, err := hotelsFile(city)
	if err != nil {
		return err
	}
	return s.reset(name)
}
