package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execAirportSearch(dataDir, query string) (string, error) {
	stdout := new(bytes.Buffer)
	cmd := airportSearchCmd
	cmd.SetOut(stdout)
	err := runAirportSearch(cmd, dataDir, query)
	return stdout.String(), err
}

func TestAirportSearch(t *testing.T) {
	dataDir := t.TempDir()

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"by iata", "jed", []string{"JED", "King Abdulaziz International Airport", "Saudi Arabia"}},
		{"by country", "pakistan", []string{"KHI", "Jinnah International Airport"}},
		{"by name", "jinnah", []string{"KHI"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, err := execAirportSearch(dataDir, tt.query)
			require.NoError(t, err)
			for _, w := range tt.want {
				assert.Contains(t, stdout, w)
			}
		})
	}
}

func TestAirportSearchNoMatch(t *testing.T) {
	stdout, err := execAirportSearch(t.TempDir(), "zzz")

	require.NoError(t, err)
	assert.Contains(t, stdout, "No airports found.")
}

func TestAirportList(t *testing.T) {
	stdout := new(bytes.Buffer)
	cmd := airportListCmd
	cmd.SetOut(stdout)

	err := runAirportList(cmd, t.TempDir())

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "country-sa")
	assert.Contains(t, stdout.String(), "Saudi Arabia")
	assert.Contains(t, stdout.String(), "└── MED")
}

func TestAirportCountryLifecycle(t *testing.T) {
	dataDir := t.TempDir()
	stdout := new(bytes.Buffer)
	cmd := airportAddCmd
	cmd.SetOut(stdout)

	require.NoError(t, runCountryAdd(cmd, dataDir, "Turkey"))
	assert.Contains(t, stdout.String(), "country 'Turkey' added")

	require.NoError(t, runAirportAdd(cmd, dataDir, "turkey", "Istanbul Airport", "ist"))
	assert.Contains(t, stdout.String(), "airport 'Istanbul Airport' (IST) added")

	found, err := execAirportSearch(dataDir, "IST")
	require.NoError(t, err)
	assert.Contains(t, found, "Istanbul Airport")

	require.NoError(t, runAirportUpdate(cmd, dataDir, "Turkey", "IST", "Istanbul Airport", "ISL"))
	assert.Contains(t, stdout.String(), "airport 'Istanbul Airport' (ISL) updated")

	require.NoError(t, runCountryRename(cmd, dataDir, "Turkey", "Türkiye"))
	assert.Contains(t, stdout.String(), "country renamed to 'Türkiye'")

	require.NoError(t, runAirportRemove(cmd, dataDir, "Türkiye", "ISL"))
	assert.Contains(t, stdout.String(), "airport 'ISL' removed")

	err = runAirportRemove(cmd, dataDir, "Türkiye", "ISL")
	assert.EqualError(t, err, "airport 'ISL' not found in Türkiye")

	require.NoError(t, runCountryRemove(cmd, dataDir, "Türkiye", AlwaysYes()))
	assert.Contains(t, stdout.String(), "country 'Türkiye' removed")

	err = runCountryRemove(cmd, dataDir, "Türkiye", AlwaysYes())
	assert.EqualError(t, err, "country 'Türkiye' not found")
}

func TestAirportCountryRemoveDeclined(t *testing.T) {
	cmd := airportCountryRemoveCmd
	cmd.SetOut(new(bytes.Buffer))

	err := runCountryRemove(cmd, t.TempDir(), "Pakistan", func(string) (bool, error) { return false, nil })

	assert.EqualError(t, err, "aborted")
}
