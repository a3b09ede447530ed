package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Arshadjaved786/umrah-calculator/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execAirlineList(dataDir string) (string, error) {
	stdout := new(bytes.Buffer)
	cmd := airlineListCmd
	cmd.SetOut(stdout)
	err := runAirlineList(cmd, dataDir)
	return stdout.String(), err
}

func TestAirlineList(t *testing.T) {
	stdout, err := execAirlineList(t.TempDir())

	require.NoError(t, err)
	assert.Contains(t, stdout, "air-saudia")
	assert.Contains(t, stdout, "SV")
	assert.Contains(t, stdout, "Pakistan International Airlines")
}

func TestAirlineAddGoesFirst(t *testing.T) {
	dataDir := t.TempDir()
	stdout := new(bytes.Buffer)
	cmd := airlineAddCmd
	cmd.SetOut(stdout)

	err := runAirlineAdd(cmd, dataDir, catalog.Airline{Name: "Fly Jinnah", Code: "9p"}, NewPromptKit(strings.NewReader(""), stdout))

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "airline 'Fly Jinnah (9P)' added")

	list, err := execAirlineList(dataDir)
	require.NoError(t, err)
	assert.Less(t, strings.Index(list, "Fly Jinnah"), strings.Index(list, "Saudia"))
}

func TestAirlineAddPromptsForName(t *testing.T) {
	stdout := new(bytes.Buffer)
	cmd := airlineAddCmd
	cmd.SetOut(stdout)

	err := runAirlineAdd(cmd, t.TempDir(), catalog.Airline{}, NewPromptKit(strings.NewReader("\n"), stdout))

	assert.EqualError(t, err, "airline name is required")
}

func TestAirlineUpdateKeepsUnsetFields(t *testing.T) {
	dataDir := t.TempDir()
	stdout := new(bytes.Buffer)
	cmd := airlineUpdateCmd
	cmd.SetOut(stdout)

	err := runAirlineUpdate(cmd, dataDir, "SV", catalog.Airline{Name: "Saudia Airlines"})

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "airline 'Saudia Airlines (SV)' updated")
	airlines, err := openCatalog(dataDir).Airlines()
	require.NoError(t, err)
	a := catalog.FindAirline(airlines, "air-saudia")
	require.NotNil(t, a)
	assert.Equal(t, "Saudia Airlines", a.Name)
	assert.Equal(t, "SV", a.Code)
}

func TestAirlineUpdateNotFound(t *testing.T) {
	cmd := airlineUpdateCmd
	cmd.SetOut(new(bytes.Buffer))

	err := runAirlineUpdate(cmd, t.TempDir(), "nope", catalog.Airline{})

	assert.EqualError(t, err, "airline 'nope' not found")
}

func TestAirlineRemoveAndReset(t *testing.T) {
	dataDir := t.TempDir()
	stdout := new(bytes.Buffer)
	cmd := airlineRemoveCmd
	cmd.SetOut(stdout)

	require.NoError(t, runAirlineRemove(cmd, dataDir, "Qatar Airways", AlwaysYes()))
	assert.Contains(t, stdout.String(), "airline 'Qatar Airways' removed")
	list, err := execAirlineList(dataDir)
	require.NoError(t, err)
	assert.NotContains(t, list, "Qatar")

	require.NoError(t, runAirlineReset(cmd, dataDir, AlwaysYes()))
	assert.Contains(t, stdout.String(), "airlines restored to defaults (8)")
	list, err = execAirlineList(dataDir)
	require.NoError(t, err)
	assert.Contains(t, list, "Qatar")
}

func TestAirlineRemoveDeclined(t *testing.T) {
	stdout := new(bytes.Buffer)
	cmd := airlineRemoveCmd
	cmd.SetOut(stdout)

	err := runAirlineRemove(cmd, t.TempDir(), "SV", NewConfirmFunc(strings.NewReader("n\n"), stdout))

	assert.EqualError(t, err, "aborted")
}

func TestAirlineResetDeclined(t *testing.T) {
	cmd := airlineResetCmd
	cmd.SetOut(new(bytes.Buffer))

	err := runAirlineReset(cmd, t.TempDir(), func(string) (bool, error) { return false, nil })

	assert.EqualError(t, err, "aborted")
}
