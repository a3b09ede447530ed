// Package config holds the user's persistent settings: exchange rates, the
// default visa fee, planning defaults and agency profiles. Settings live in
// config.json inside the data directory; a few can be overridden from the
// environment.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/Arshadjaved786/umrah-calculator/internal/itinerary"
	"github.com/Arshadjaved786/umrah-calculator/internal/pricing"
)

const fileName = "config.json"

// DefaultPublicURL is the base of shared agency profile links.
const DefaultPublicURL = "https://umrah-calculator.app"

// Planning are the defaults applied to new plans when a flag is not given.
type Planning struct {
	TotalDays      int            `json:"totalDays"`
	StartCity      itinerary.City `json:"startCity"`
	ExitCity       itinerary.City `json:"exitCity"`
	MaxMadinah     bool           `json:"maxMadinah"`
	ExcludeArrival bool           `json:"excludeArrival"`
	ExcludeExit    bool           `json:"excludeExit"`
	MarkWeekend    bool           `json:"markWeekend"`
}

// Config is the content of config.json.
type Config struct {
	Rates     pricing.Rates `json:"rates"`
	VisaSAR   float64       `json:"visaSAR"`
	PublicURL string        `json:"publicURL"`
	Planning  Planning      `json:"planning"`
	// Agencies holds every saved agency profile, most recent first.
	Agencies []Agency `json:"agencies"`
	// ActiveAgency is the slug of the profile printed on quotes.
	ActiveAgency string `json:"activeAgency,omitempty"`
}

// Default returns the settings used before anything has been saved.
func Default() *Config {
	return &Config{
		Rates:     pricing.DefaultRates(),
		VisaSAR:   pricing.DefaultVisaSAR,
		PublicURL: DefaultPublicURL,
		Planning: Planning{
			TotalDays:   itinerary.DefaultTotalDays,
			StartCity:   itinerary.Makkah,
			ExitCity:    itinerary.Makkah,
			MarkWeekend: true,
		},
		Agencies: []Agency{},
	}
}

// Path returns the config file location inside dataDir.
func Path(dataDir string) string {
	return filepath.Join(dataDir, fileName)
}

// Read loads the config from dataDir. A missing file yields Default().
// Fields absent from the file keep their default values.
func Read(dataDir string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(Path(dataDir))
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", Path(dataDir), err)
	}
	if cfg.Agencies == nil {
		cfg.Agencies = []Agency{}
	}
	return cfg, nil
}

// Write saves cfg to dataDir, creating the directory if needed.
func Write(dataDir string, cfg *Config) error {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(Path(dataDir), data, 0644)
}

type setting struct {
	get func(c *Config) string
	set func(c *Config, v string) error
}

func parsePositive(v string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil || f <= 0 {
		return 0, fmt.Errorf("expected a positive number, got %q", v)
	}
	return f, nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func boolSetting(field func(c *Config) *bool) setting {
	return setting{
		get: func(c *Config) string { return strconv.FormatBool(*field(c)) },
		set: func(c *Config, v string) error {
			b, err := strconv.ParseBool(strings.TrimSpace(v))
			if err != nil {
				return fmt.Errorf("expected true or false, got %q", v)
			}
			*field(c) = b
			return nil
		},
	}
}

func citySetting(field func(c *Config) *itinerary.City) setting {
	return setting{
		get: func(c *Config) string { return string(*field(c)) },
		set: func(c *Config, v string) error {
			city, err := itinerary.ParseCity(v)
			if err != nil {
				return err
			}
			*field(c) = city
			return nil
		},
	}
}

var settings = map[string]setting{
	"rates.sar_to_pkr": {
		get: func(c *Config) string { return formatFloat(c.Rates.SARToPKR) },
		set: func(c *Config, v string) error {
			f, err := parsePositive(v)
			c.Rates.SARToPKR = f
			return err
		},
	},
	"rates.usd_to_sar": {
		get: func(c *Config) string { return formatFloat(c.Rates.USDToSAR) },
		set: func(c *Config, v string) error {
			f, err := parsePositive(v)
			c.Rates.USDToSAR = f
			return err
		},
	},
	"visa_sar": {
		get: func(c *Config) string { return formatFloat(c.VisaSAR) },
		set: func(c *Config, v string) error {
			f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
			if err != nil || f < 0 {
				return fmt.Errorf("expected a non-negative number, got %q", v)
			}
			c.VisaSAR = f
			return nil
		},
	},
	"public_url": {
		get: func(c *Config) string { return c.PublicURL },
		set: func(c *Config, v string) error {
			v = strings.TrimRight(strings.TrimSpace(v), "/")
			if !strings.HasPrefix(v, "http://") && !strings.HasPrefix(v, "https://") {
				return fmt.Errorf("expected an http(s) URL, got %q", v)
			}
			c.PublicURL = v
			return nil
		},
	},
	"planning.total_days": {
		get: func(c *Config) string { return strconv.Itoa(c.Planning.TotalDays) },
		set: func(c *Config, v string) error {
			n, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil || n < 1 {
				return fmt.Errorf("expected a positive whole number, got %q", v)
			}
			c.Planning.TotalDays = n
			return nil
		},
	},
	"planning.start_city":      citySetting(func(c *Config) *itinerary.City { return &c.Planning.StartCity }),
	"planning.exit_city":       citySetting(func(c *Config) *itinerary.City { return &c.Planning.ExitCity }),
	"planning.max_madinah":     boolSetting(func(c *Config) *bool { return &c.Planning.MaxMadinah }),
	"planning.exclude_arrival": boolSetting(func(c *Config) *bool { return &c.Planning.ExcludeArrival }),
	"planning.exclude_exit":    boolSetting(func(c *Config) *bool { return &c.Planning.ExcludeExit }),
	"planning.mark_weekend":    boolSetting(func(c *Config) *bool { return &c.Planning.MarkWeekend }),
}

// Keys lists every settable key in sorted order.
func Keys() []string {
	keys := make([]string, 0, len(settings))
	for k := range settings {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Get returns the value of key as text.
func (c *Config) Get(key string) (string, error) {
	s, ok := settings[key]
	if !ok {
		return "", fmt.Errorf("unknown config key '%s'", key)
	}
	return s.get(c), nil
}

// Set parses value and stores it under key. c is unchanged on error.
func (c *Config) Set(key, value string) error {
	s, ok := settings[key]
	if !ok {
		return fmt.Errorf("unknown config key '%s'", key)
	}
	next := *c
	if err := s.set(&next, value); err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*c = next
	return nil
}

// ViewOptions returns the planning toggles as projector options.
func (p Planning) ViewOptions() itinerary.ViewOptions {
	return itinerary.ViewOptions{
		ExcludeArrival: p.ExcludeArrival,
		ExcludeExit:    p.ExcludeExit,
		MarkWeekend:    p.MarkWeekend,
	}
}
