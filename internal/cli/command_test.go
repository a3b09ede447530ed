package cli

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeafCommandBuild(t *testing.T) {
	cmd := LeafCommand{
		Use:     "test",
		Aliases: []string{"t"},
		Short:   "A test command",
		Example: "  umrahplan test",
		Args:    cobra.ExactArgs(1),
		BoolFlags: []BoolFlag{
			{Name: "max-madinah", Usage: "favour Madinah"},
			{Name: "mark-weekend", Usage: "tag weekend nights", Default: true},
		},
		StrFlags: []StringFlag{
			{Name: "start", Usage: "start city", Default: "makkah"},
		},
		IntFlags: []IntFlag{
			{Name: "days", Usage: "trip length", Default: 15},
		},
		FloatFlags: []FloatFlag{
			{Name: "price", Usage: "price per night", Default: 250.5},
		},
		RunE: func(cmd *cobra.Command, args []string) error { return nil },
	}.Build()

	assert.Equal(t, "test", cmd.Use)
	assert.Equal(t, []string{"t"}, cmd.Aliases)
	assert.Equal(t, "A test command", cmd.Short)
	assert.Equal(t, "  umrahplan test", cmd.Example)
	assert.NotNil(t, cmd.RunE)
	assert.NotNil(t, cmd.Args)

	for name, want := range map[string]string{
		"max-madinah":  "false",
		"mark-weekend": "true",
		"start":        "makkah",
		"days":         "15",
		"price":        "250.5",
	} {
		f := cmd.Flags().Lookup(name)
		require.NotNil(t, f, name)
		assert.Equal(t, want, f.DefValue, name)
	}
}

func TestLeafCommandBuildNoFlags(t *testing.T) {
	cmd := LeafCommand{
		Use:   "simple",
		Short: "A simple command",
		RunE:  func(cmd *cobra.Command, args []string) error { return nil },
	}.Build()

	assert.Equal(t, "simple", cmd.Use)
	assert.False(t, cmd.HasFlags())
}

func TestGroupCommandBuild(t *testing.T) {
	cmd := GroupCommand{
		Use:         "group",
		Aliases:     []string{"g"},
		Short:       "A group command",
		Subcommands: []*cobra.Command{{Use: "sub1"}, {Use: "sub2"}},
	}.Build()

	assert.Equal(t, "group", cmd.Use)
	assert.Equal(t, []string{"g"}, cmd.Aliases)
	assert.Nil(t, cmd.RunE)
	assert.Equal(t, []string{"sub1", "sub2"}, commandNames(cmd))
}

func TestGroupCommandBuildNoSubcommands(t *testing.T) {
	cmd := GroupCommand{Use: "empty", Short: "An empty group"}.Build()
	assert.Empty(t, cmd.Commands())
}

func commandNames(cmd *cobra.Command) []string {
	names := make([]string, len(cmd.Commands()))
	for i, c := range cmd.Commands() {
		names[i] = c.Name()
	}
	return names
}
