package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAgencyCreatesUniqueSlugs(t *testing.T) {
	cfg := Default()

	first, err := cfg.SaveAgency(Agency{Name: "Al Noor Travels", Contact: "+92 300 0000000"})
	require.NoError(t, err)
	assert.Equal(t, "al-noor-travels", first.Slug)

	second, err := cfg.SaveAgency(Agency{Name: "Al-Noor Travels!"})
	require.NoError(t, err)
	assert.Equal(t, "al-noor-travels-1", second.Slug)

	require.Len(t, cfg.Agencies, 2)
	assert.Equal(t, second.Slug, cfg.Agencies[0].Slug, "newest profile comes first")
	assert.Equal(t, second.Slug, cfg.Agency().Slug)
}

func TestSaveAgencyUpdatesExisting(t *testing.T) {
	cfg := Default()
	created, err := cfg.SaveAgency(Agency{Name: "Zamzam Tours", Contact: "111", Website: "https://zamzam.example"})
	require.NoError(t, err)

	updated, err := cfg.SaveAgency(Agency{Slug: created.Slug, Contact: "222"})
	require.NoError(t, err)

	assert.Equal(t, created.Slug, updated.Slug)
	assert.Equal(t, "Zamzam Tours", updated.Name)
	assert.Equal(t, "222", updated.Contact)
	assert.Equal(t, "https://zamzam.example", updated.Website)
	assert.Len(t, cfg.Agencies, 1)
}

func TestSaveAgencyRandomSlug(t *testing.T) {
	cfg := Default()

	a, err := cfg.SaveAgency(Agency{Name: "مکہ ٹریولز"})

	require.NoError(t, err)
	assert.Regexp(t, `^ag-[a-z0-9]{6}$`, a.Slug)
}

func TestSaveAgencyRequiresName(t *testing.T) {
	_, err := Default().SaveAgency(Agency{Slug: "unknown"})
	assert.EqualError(t, err, "agency name is required")
}

func TestUseAgency(t *testing.T) {
	cfg := Default()
	assert.Nil(t, cfg.Agency())

	a, err := cfg.SaveAgency(Agency{Name: "First"})
	require.NoError(t, err)
	_, err = cfg.SaveAgency(Agency{Name: "Second"})
	require.NoError(t, err)

	require.NoError(t, cfg.UseAgency("FIRST"))
	assert.Equal(t, a.Slug, cfg.Agency().Slug)

	assert.EqualError(t, cfg.UseAgency("third"), "agency 'third' not found")
}

func TestProfileURL(t *testing.T) {
	assert.Equal(t, "https://umrah-calculator.app/public/agency/al-noor", ProfileURL("https://umrah-calculator.app/", "al-noor"))
	assert.Equal(t, "http://localhost:3000/public/agency/a%20b", ProfileURL("http://localhost:3000", "a b"))
}
