package catalog

import (
	"fmt"
	"strings"

	"github.com/Arshadjaved786/umrah-calculator/internal/hashutil"
	"github.com/Arshadjaved786/umrah-calculator/internal/stringutil"
)

const airportsFile = "airports.json"

// Airport is a departure or arrival airport. IATA codes are stored upper-case.
type Airport struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	IATA string `json:"iata"`
}

// Country groups the airports of one country.
type Country struct {
	ID       string    `json:"id"`
	Country  string    `json:"country"`
	Airports []Airport `json:"airports"`
}

// AirportMatch is a search hit with the country it belongs to.
type AirportMatch struct {
	Airport
	Country string `json:"country"`
}

// Countries returns every country with its airports.
func (s *Store) Countries() ([]Country, error) {
	var countries []Country
	if err := s.load(airportsFile, &countries); err != nil {
		return nil, err
	}
	return countries, nil
}

// SearchAirports matches query case-insensitively. A country whose name
// matches contributes all of its airports; otherwise airports match on name
// or IATA code. An empty query matches nothing.
func (s *Store) SearchAirports(query string) ([]AirportMatch, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil, nil
	}

	countries, err := s.Countries()
	if err != nil {
		return nil, err
	}

	var out []AirportMatch
	for _, c := range countries {
		countryHit := strings.Contains(strings.ToLower(c.Country), q)
		for _, a := range c.Airports {
			if countryHit ||
				strings.Contains(strings.ToLower(a.Name), q) ||
				strings.Contains(strings.ToLower(a.IATA), q) {
				out = append(out, AirportMatch{Airport: a, Country: c.Country})
			}
		}
	}
	return out, nil
}

func findCountry(countries []Country, ref string) *Country {
	for i := range countries {
		if countries[i].ID == ref || strings.EqualFold(countries[i].Country, ref) {
			return &countries[i]
		}
	}
	return nil
}

// AddCountry appends an empty country.
func (s *Store) AddCountry(name string) (Country, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Country{}, fmt.Errorf("country name is required")
	}
	countries, err := s.Countries()
	if err != nil {
		return Country{}, err
	}
	if findCountry(countries, name) != nil {
		return Country{}, fmt.Errorf("country '%s' already exists", name)
	}

	id := "country-" + stringutil.Slugify(name)
	if stringutil.Slugify(name) == "" || findCountry(countries, id) != nil {
		id = hashutil.PrefixedID("country", name)
	}
	c := Country{ID: id, Country: name, Airports: []Airport{}}
	countries = append(countries, c)
	if err := s.save(airportsFile, countries); err != nil {
		return Country{}, err
	}
	return c, nil
}

// RenameCountry changes the display name of a country.
func (s *Store) RenameCountry(ref, name string) (Country, error) {
	countries, err := s.Countries()
	if err != nil {
		return Country{}, err
	}
	c := findCountry(countries, ref)
	if c == nil {
		return Country{}, fmt.Errorf("country '%s' not found", ref)
	}
	c.Country = strings.TrimSpace(name)
	if err := s.save(airportsFile, countries); err != nil {
		return Country{}, err
	}
	return *c, nil
}

// RemoveCountry deletes a country with all its airports and reports whether it existed.
func (s *Store) RemoveCountry(ref string) (bool, error) {
	countries, err := s.Countries()
	if err != nil {
		return false, err
	}
	kept := make([]Country, 0, len(countries))
	for _, c := range countries {
		if c.ID != ref && !strings.EqualFold(c.Country, ref) {
			kept = append(kept, c)
		}
	}
	if len(kept) == len(countries) {
		return false, nil
	}
	return true, s.save(airportsFile, kept)
}

// AddAirport adds an airport to a country.
func (s *Store) AddAirport(countryRef, name, iata string) (Airport, error) {
	countries, err := s.Countries()
	if err != nil {
		return Airport{}, err
	}
	c := findCountry(countries, countryRef)
	if c == nil {
		return Airport{}, fmt.Errorf("country '%s' not found", countryRef)
	}

	a := Airport{
		ID:   hashutil.PrefixedID("ap", name+iata),
		Name: strings.TrimSpace(name),
		IATA: strings.ToUpper(strings.TrimSpace(iata)),
	}
	c.Airports = append(c.Airports, a)
	if err := s.save(airportsFile, countries); err != nil {
		return Airport{}, err
	}
	return a, nil
}

// UpdateAirport replaces the name and IATA code of an airport.
func (s *Store) UpdateAirport(countryRef, airportID, name, iata string) (Airport, error) {
	countries, err := s.Countries()
	if err != nil {
		return Airport{}, err
	}
	c := findCountry(countries, countryRef)
	if c == nil {
		return Airport{}, fmt.Errorf("country '%s' not found", countryRef)
	}
	for i := range c.Airports {
		a := &c.Airports[i]
		if a.ID != airportID && !strings.EqualFold(a.IATA, airportID) {
			continue
		}
		a.Name = strings.TrimSpace(name)
		a.IATA = strings.ToUpper(strings.TrimSpace(iata))
		if err := s.save(airportsFile, countries); err != nil {
			return Airport{}, err
		}
		return *a, nil
	}
	return Airport{}, fmt.Errorf("airport '%s' not found in %s", airportID, c.Country)
}

// RemoveAirport deletes an airport, matched by id or IATA code, and reports whether it existed.
func (s *Store) RemoveAirport(countryRef, airportID string) (bool, error) {
	countries, err := s.Countries()
	if err != nil {
		return false, err
	}
	c := findCountry(countries, countryRef)
	if c == nil {
		return false, fmt.Errorf("country '%s' not found", countryRef)
	}

	kept := make([]Airport, 0, len(c.Airports))
	for _, a := range c.Airports {
		if a.ID != airportID && !strings.EqualFold(a.IATA, airportID) {
			kept = append(kept, a)
		}
	}
	if len(kept) == len(c.Airports) {
		return false, nil
	}
	c.Airports = kept
	return true, s.save(airportsFile, countries)
}
