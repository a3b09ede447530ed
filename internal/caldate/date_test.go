package caldate

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	// Fixed-offset zone avoids depending on tzdata.
	pkt := time.FixedZone("PKT", 5*60*60)

	tests := []struct {
		name    string
		input   string
		want    Date
		wantErr bool
	}{
		{name: "ISO date", input: "2025-01-01", want: Date{2025, time.January, 1}},
		{name: "ISO date with spaces", input: "  2025-03-15 ", want: Date{2025, time.March, 15}},
		{name: "leap day", input: "2024-02-29", want: Date{2024, time.February, 29}},
		{name: "UTC instant late evening moves to next local day", input: "2025-01-01T22:00:00Z", want: Date{2025, time.January, 2}},
		{name: "offset instant", input: "2025-01-01T10:00:00+03:00", want: Date{2025, time.January, 1}},
		{name: "local clock time", input: "2025-06-10T23:59", want: Date{2025, time.June, 10}},
		{name: "month name", input: "Jan 5 2025", want: Date{2025, time.January, 5}},
		{name: "day first", input: "5 January 2025", want: Date{2025, time.January, 5}},
		{name: "month containing t", input: "Oct 3 2025", want: Date{2025, time.October, 3}},
		{name: "slashes", input: "2025/12/31", want: Date{2025, time.December, 31}},

		{name: "empty", input: "", wantErr: true},
		{name: "garbage", input: "bad-date", wantErr: true},
		{name: "impossible ISO", input: "2025-02-30", wantErr: true},
		{name: "month out of range", input: "2025-13-01", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseIn(tt.input, pkt)
			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, got.IsZero())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseValue(t *testing.T) {
	d := Date{2025, time.May, 9}

	t.Run("date value", func(t *testing.T) {
		got, ok := ParseValue(d)
		assert.True(t, ok)
		assert.Equal(t, d, got)
	})

	t.Run("time value keeps its calendar day", func(t *testing.T) {
		got, ok := ParseValue(time.Date(2025, 5, 9, 23, 30, 0, 0, time.FixedZone("X", -10*60*60)))
		assert.True(t, ok)
		assert.Equal(t, d, got)
	})

	t.Run("timestamp", func(t *testing.T) {
		ms := time.Date(2025, 5, 9, 12, 0, 0, 0, time.Local).UnixMilli()
		got, ok := ParseValue(ms)
		assert.True(t, ok)
		assert.Equal(t, d, got)
	})

	t.Run("string", func(t *testing.T) {
		got, ok := ParseValue("2025-05-09")
		assert.True(t, ok)
		assert.Equal(t, d, got)
	})

	t.Run("invalid inputs never panic", func(t *testing.T) {
		for _, v := range []any{nil, "nope", Date{}, (*Date)(nil), time.Time{}, []int{1}, struct{}{}} {
			_, ok := ParseValue(v)
			assert.False(t, ok, "%#v", v)
		}
	})
}

func TestFormat(t *testing.T) {
	f := Format(Date{2025, time.January, 3})
	assert.Equal(t, "2025-01-03", f.ISO)
	assert.Equal(t, "03 Jan (Fri)", f.Human)
	assert.Equal(t, 5, f.Weekday)
	assert.True(t, f.Valid())
	assert.Equal(t, Date{2025, time.January, 3}, f.Date())

	invalid := Format(Date{})
	assert.Equal(t, "Invalid", invalid.ISO)
	assert.Equal(t, -1, invalid.Weekday)
	assert.False(t, invalid.Valid())
}

func TestAddDays(t *testing.T) {
	d := Date{2024, time.December, 30}

	assert.Equal(t, Date{2025, time.January, 2}, d.AddDays(3))
	assert.Equal(t, Date{2024, time.November, 30}, d.AddDays(-30))
	assert.Equal(t, Date{2024, time.March, 1}, Date{2024, time.February, 28}.AddDays(2))
	// input untouched
	assert.Equal(t, Date{2024, time.December, 30}, d)
}

func TestNewNormalizes(t *testing.T) {
	assert.Equal(t, Date{2025, time.February, 1}, New(2025, time.January, 32))
}

func TestDiffDaysInclusive(t *testing.T) {
	a := Date{2025, time.January, 1}

	assert.Equal(t, 1, DiffDaysInclusive(a, a))
	assert.Equal(t, 15, DiffDaysInclusive(a, Date{2025, time.January, 15}))
	assert.Equal(t, 0, DiffDaysInclusive(a, Date{2024, time.December, 31}))
	// crosses the March DST change in zones that have one
	assert.Equal(t, 32, DiffDaysInclusive(Date{2025, time.March, 1}, Date{2025, time.April, 1}))
}

func TestRange(t *testing.T) {
	got := Range(Date{2025, time.January, 30}, Date{2025, time.February, 2})
	assert.Equal(t, []Date{
		{2025, time.January, 30},
		{2025, time.January, 31},
		{2025, time.February, 1},
		{2025, time.February, 2},
	}, got)

	assert.Empty(t, Range(Date{2025, time.January, 2}, Date{2025, time.January, 1}))
}

func TestIsForbiddenTravelDay(t *testing.T) {
	// 2025-01-03 is a Friday
	assert.True(t, IsForbiddenTravelDay(Date{2025, time.January, 3}))
	assert.False(t, IsForbiddenTravelDay(Date{2025, time.January, 2}))
	assert.False(t, IsForbiddenTravelDay(Date{2025, time.January, 4}))
	assert.False(t, IsForbiddenTravelDay(Date{}))
}

func TestIsWeekendNight(t *testing.T) {
	assert.True(t, IsWeekendNight(Date{2025, time.January, 2}))  // Thu
	assert.True(t, IsWeekendNight(Date{2025, time.January, 3}))  // Fri
	assert.False(t, IsWeekendNight(Date{2025, time.January, 4})) // Sat
	assert.False(t, IsWeekendNight(Date{}))
}

func TestDateJSON(t *testing.T) {
	type wrapper struct {
		On  Date `json:"on"`
		Off Date `json:"off"`
	}

	data, err := json.Marshal(wrapper{On: Date{2025, time.July, 4}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"on":"2025-07-04","off":null}`, string(data))

	var w wrapper
	require.NoError(t, json.Unmarshal([]byte(`{"on":"2025-07-04","off":""}`), &w))
	assert.Equal(t, Date{2025, time.July, 4}, w.On)
	assert.True(t, w.Off.IsZero())

	assert.Error(t, json.Unmarshal([]byte(`{"on":"soon"}`), &w))
}
