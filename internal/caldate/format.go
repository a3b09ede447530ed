package caldate

import "fmt"

const invalidISO = "Invalid"

// Formatted is the display form of a date.
type Formatted struct {
	ISO     string `json:"iso"`
	Human   string `json:"human"`
	Weekday int    `json:"weekday"`
}

// Format renders d as {iso, "DD Mon (Dow)", weekday index}. The zero date
// yields ISO "Invalid" and weekday -1.
func Format(d Date) Formatted {
	if d.IsZero() {
		return Formatted{ISO: invalidISO, Human: "Invalid Date", Weekday: -1}
	}
	wd := d.Weekday()
	return Formatted{
		ISO:     d.String(),
		Human:   fmt.Sprintf("%02d %s (%s)", d.Day, d.Month.String()[:3], wd.String()[:3]),
		Weekday: int(wd),
	}
}

// Valid reports whether f was produced from a real date.
func (f Formatted) Valid() bool {
	return f.ISO != "" && f.ISO != invalidISO
}

// Date parses the ISO field back into a Date.
func (f Formatted) Date() Date {
	d, err := Parse(f.ISO)
	if err != nil {
		return zero
	}
	return d
}
