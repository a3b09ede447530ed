package catalog

import (
	"fmt"
	"strings"

	"github.com/Arshadjaved786/umrah-calculator/internal/hashutil"
)

const airlinesFile = "airlines.json"

// Airline is a carrier offered for the ticket leg.
type Airline struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
	Logo string `json:"logo,omitempty"`
}

// Airlines returns every airline, most recently added first.
func (s *Store) Airlines() ([]Airline, error) {
	var airlines []Airline
	if err := s.load(airlinesFile, &airlines); err != nil {
		return nil, err
	}
	return airlines, nil
}

// FindAirline looks an airline up by id, then by code or name (case-insensitive).
func FindAirline(airlines []Airline, ref string) *Airline {
	for i := range airlines {
		if airlines[i].ID == ref {
			return &airlines[i]
		}
	}
	for i := range airlines {
		if strings.EqualFold(airlines[i].Code, ref) || strings.EqualFold(airlines[i].Name, ref) {
			return &airlines[i]
		}
	}
	return nil
}

// AddAirline puts a new airline at the front of the list.
func (s *Store) AddAirline(a Airline) (Airline, error) {
	if strings.TrimSpace(a.Name) == "" {
		return Airline{}, fmt.Errorf("airline name is required")
	}
	airlines, err := s.Airlines()
	if err != nil {
		return Airline{}, err
	}

	a.ID = hashutil.PrefixedID("air", a.Name)
	a.Code = strings.ToUpper(strings.TrimSpace(a.Code))
	airlines = append([]Airline{a}, airlines...)
	if err := s.save(airlinesFile, airlines); err != nil {
		return Airline{}, err
	}
	return a, nil
}

// UpdateAirline replaces name, code and logo of the airline with the given id.
func (s *Store) UpdateAirline(id string, a Airline) (Airline, error) {
	airlines, err := s.Airlines()
	if err != nil {
		return Airline{}, err
	}

	existing := FindAirline(airlines, id)
	if existing == nil {
		return Airline{}, fmt.Errorf("airline '%s' not found", id)
	}
	existing.Name = a.Name
	existing.Code = strings.ToUpper(strings.TrimSpace(a.Code))
	existing.Logo = a.Logo

	if err := s.save(airlinesFile, airlines); err != nil {
		return Airline{}, err
	}
	return *existing, nil
}

// RemoveAirline deletes an airline and reports whether it existed.
func (s *Store) RemoveAirline(id string) (bool, error) {
	airlines, err := s.Airlines()
	if err != nil {
		return false, err
	}

	kept := make([]Airline, 0, len(airlines))
	for _, a := range airlines {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	if len(kept) == len(airlines) {
		return false, nil
	}
	return true, s.save(airlinesFile, kept)
}

// ResetAirlines restores the bundled airline list and returns it.
func (s *Store) ResetAirlines() ([]Airline, error) {
	if err := s.reset(airlinesFile); err != nil {
		return nil, err
	}
	return s.Airlines()
}
