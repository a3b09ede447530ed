package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersion(t *testing.T) {
	tests := []struct {
		name                  string
		version, commit, date string
		want                  string
	}{
		{"dev build", "dev", "none", "unknown", "umrahplan dev (commit: none, built: unknown)\n"},
		{"release", "1.2.0", "abc1234", "2025-01-01", "umrahplan 1.2.0 (commit: abc1234, built: 2025-01-01)\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			SetVersionInfo(tt.version, tt.commit, tt.date)
			t.Cleanup(func() { SetVersionInfo("dev", "none", "unknown") })

			buf := new(bytes.Buffer)
			rootCmd.SetOut(buf)
			rootCmd.SetArgs([]string{"version"})
			err := rootCmd.Execute()

			assert.NoError(t, err)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}
