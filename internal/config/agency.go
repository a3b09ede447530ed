package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/Arshadjaved786/umrah-calculator/internal/stringutil"
)

const randomSlugPrefix = "ag"

// Agency is a travel agency profile printed on quotes and shared as a
// public profile link.
type Agency struct {
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	Contact  string `json:"contact,omitempty"`
	Email    string `json:"email,omitempty"`
	Address  string `json:"address,omitempty"`
	Whatsapp string `json:"whatsapp,omitempty"`
	Website  string `json:"website,omitempty"`
	Note     string `json:"note,omitempty"`
}

func (c *Config) findAgency(slug string) int {
	for i, a := range c.Agencies {
		if strings.EqualFold(a.Slug, slug) {
			return i
		}
	}
	return -1
}

// Agency returns the active profile, or nil when none is set.
func (c *Config) Agency() *Agency {
	if c.ActiveAgency == "" {
		return nil
	}
	i := c.findAgency(c.ActiveAgency)
	if i < 0 {
		return nil
	}
	return &c.Agencies[i]
}

// SaveAgency stores a profile and makes it active. A slug naming an
// existing profile updates it, keeping the stored value of any field left
// empty. Otherwise a new profile is added first in the list under a unique
// slug derived from the given slug or the name.
func (c *Config) SaveAgency(a Agency) (Agency, error) {
	if a.Slug != "" {
		if i := c.findAgency(stringutil.Slugify(a.Slug)); i >= 0 {
			merged := mergeAgency(c.Agencies[i], a)
			c.Agencies[i] = merged
			c.ActiveAgency = merged.Slug
			return merged, nil
		}
	}

	if strings.TrimSpace(a.Name) == "" {
		return Agency{}, fmt.Errorf("agency name is required")
	}
	base := a.Slug
	if base == "" {
		base = a.Name
	}
	a.Slug = stringutil.UniqueSlug(base, randomSlugPrefix, func(s string) bool {
		return c.findAgency(s) >= 0
	})

	c.Agencies = append([]Agency{a}, c.Agencies...)
	c.ActiveAgency = a.Slug
	return a, nil
}

// UseAgency makes an existing profile active.
func (c *Config) UseAgency(slug string) error {
	i := c.findAgency(slug)
	if i < 0 {
		return fmt.Errorf("agency '%s' not found", slug)
	}
	c.ActiveAgency = c.Agencies[i].Slug
	return nil
}

func mergeAgency(old, upd Agency) Agency {
	pick := func(o, n string) string {
		if strings.TrimSpace(n) != "" {
			return n
		}
		return o
	}
	return Agency{
		Name:     pick(old.Name, upd.Name),
		Slug:     old.Slug,
		Contact:  pick(old.Contact, upd.Contact),
		Email:    pick(old.Email, upd.Email),
		Address:  pick(old.Address, upd.Address),
		Whatsapp: pick(old.Whatsapp, upd.Whatsapp),
		Website:  pick(old.Website, upd.Website),
		Note:     pick(old.Note, upd.Note),
	}
}

// ProfileURL returns the public profile link of slug under base.
func ProfileURL(base, slug string) string {
	return strings.TrimRight(base, "/") + "/public/agency/" + url.PathEscape(slug)
}
