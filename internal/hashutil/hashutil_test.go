package hashutil

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

var hexPattern = regexp.MustCompile(`^[0-9a-f]{7}$`)

func TestGenerateIDFormat(t *testing.T) {
	id := GenerateID("Hilton Suites")
	assert.Regexp(t, hexPattern, id)
}

func TestGenerateIDUniqueness(t *testing.T) {
	id1 := GenerateID("Hilton Suites")
	id2 := GenerateID("Hilton Suites")
	assert.NotEqual(t, id1, id2, "IDs from successive calls should differ due to timestamp")
}

func TestGenerateIDFromSeedDeterministic(t *testing.T) {
	assert.Equal(t, GenerateIDFromSeed("fixed-seed"), GenerateIDFromSeed("fixed-seed"))
	assert.NotEqual(t, GenerateIDFromSeed("seed-a"), GenerateIDFromSeed("seed-b"))
}

func TestPrefixedID(t *testing.T) {
	assert.Regexp(t, `^mdn-[0-9a-f]{7}$`, PrefixedID("mdn", "Anwar Al Madinah"))
	assert.Regexp(t, `^air-[0-9a-f]{7}$`, PrefixedID("air", "Saudia"))
}
