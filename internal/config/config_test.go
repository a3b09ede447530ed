package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Arshadjaved786/umrah-calculator/internal/itinerary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Read(t.TempDir())

	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, 75.0, cfg.Rates.SARToPKR)
	assert.Equal(t, 3.75, cfg.Rates.USDToSAR)
	assert.Equal(t, 300.0, cfg.VisaSAR)
	assert.Equal(t, 15, cfg.Planning.TotalDays)
}

func TestWriteRead(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	cfg := Default()
	cfg.VisaSAR = 450
	cfg.Planning.ExitCity = itinerary.Madinah

	require.NoError(t, Write(dir, cfg))
	got, err := Read(dir)

	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestReadPartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(Path(dir), []byte(`{"visaSAR": 500}`), 0644))

	cfg, err := Read(dir)

	require.NoError(t, err)
	assert.Equal(t, 500.0, cfg.VisaSAR)
	assert.Equal(t, 75.0, cfg.Rates.SARToPKR)
	assert.Equal(t, itinerary.Makkah, cfg.Planning.StartCity)
}

func TestReadCorruptFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(Path(dir), []byte(`{`), 0644))

	_, err := Read(dir)
	assert.ErrorContains(t, err, "parsing")
}

func TestGetSet(t *testing.T) {
	tests := []struct {
		key     string
		value   string
		want    string
		wantErr bool
	}{
		{key: "rates.sar_to_pkr", value: "76.5", want: "76.5"},
		{key: "rates.usd_to_sar", value: "3.76", want: "3.76"},
		{key: "rates.usd_to_sar", value: "0", wantErr: true},
		{key: "visa_sar", value: "0", want: "0"},
		{key: "visa_sar", value: "-1", wantErr: true},
		{key: "public_url", value: "https://agency.example.com/", want: "https://agency.example.com"},
		{key: "public_url", value: "agency.example.com", wantErr: true},
		{key: "planning.total_days", value: "21", want: "21"},
		{key: "planning.total_days", value: "0", wantErr: true},
		{key: "planning.start_city", value: "Madinah", want: "madinah"},
		{key: "planning.exit_city", value: "jeddah", wantErr: true},
		{key: "planning.max_madinah", value: "true", want: "true"},
		{key: "planning.mark_weekend", value: "maybe", wantErr: true},
		{key: "nope", value: "1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			cfg := Default()
			before := *cfg

			err := cfg.Set(tt.key, tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, before, *cfg, "config must be unchanged on error")
				return
			}
			require.NoError(t, err)

			got, err := cfg.Get(tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKeys(t *testing.T) {
	keys := Keys()
	assert.Contains(t, keys, "rates.sar_to_pkr")
	assert.Contains(t, keys, "planning.exclude_arrival")
	assert.IsNonDecreasing(t, keys)

	for _, k := range keys {
		_, err := Default().Get(k)
		assert.NoError(t, err, k)
	}
}

func TestPlanningViewOptions(t *testing.T) {
	p := Planning{ExcludeArrival: true, MarkWeekend: true}
	assert.Equal(t, itinerary.ViewOptions{ExcludeArrival: true, MarkWeekend: true}, p.ViewOptions())
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	dotenv := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(dotenv, []byte("UMRAHPLAN_LOG_FORMAT=json\nUMRAHPLAN_PUBLIC_URL=https://from-dotenv.example\n"), 0644))

	t.Setenv("UMRAHPLAN_HOME", "/srv/umrah")
	t.Setenv("UMRAHPLAN_PUBLIC_URL", "https://from-env.example")

	t.Cleanup(func() { _ = os.Unsetenv("UMRAHPLAN_LOG_FORMAT") })

	e, err := LoadEnv(dotenv, filepath.Join(dir, "missing.env"))

	require.NoError(t, err)
	assert.Equal(t, "/srv/umrah", e.Home)
	assert.Equal(t, "json", e.LogFormat)
	assert.Equal(t, "warn", e.LogLevel)
	assert.Equal(t, "https://from-env.example", e.PublicURL, "real environment wins over dotenv")
	assert.Equal(t, "/srv/umrah", e.DataDir("/home/user"))

	cfg := Default()
	e.Apply(cfg)
	assert.Equal(t, "https://from-env.example", cfg.PublicURL)
}

func TestEnvDataDirDefault(t *testing.T) {
	assert.Equal(t, filepath.Join("/home/user", ".umrahplan"), Env{}.DataDir("/home/user"))
}
