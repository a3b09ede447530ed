package itinerary

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlanDistribution(t *testing.T) {
	tests := []struct {
		name       string
		total      int
		start      City
		exit       City
		maxMadinah bool
		wantNights []int
		wantCities []City
	}{
		{name: "preset 15", total: 15, start: Makkah, exit: Makkah, wantNights: []int{6, 6, 3}, wantCities: []City{Makkah, Madinah, Makkah}},
		{name: "preset 21", total: 21, start: Makkah, exit: Makkah, wantNights: []int{8, 9, 4}, wantCities: []City{Makkah, Madinah, Makkah}},
		{name: "preset 28", total: 28, start: Makkah, exit: Makkah, wantNights: []int{10, 10, 8}, wantCities: []City{Makkah, Madinah, Makkah}},
		{name: "weighted 10", total: 10, start: Makkah, exit: Makkah, wantNights: []int{4, 4, 2}, wantCities: []City{Makkah, Madinah, Makkah}},
		{name: "weighted 13", total: 13, start: Makkah, exit: Makkah, wantNights: []int{5, 5, 3}, wantCities: []City{Makkah, Madinah, Makkah}},
		{name: "weighted 7", total: 7, start: Makkah, exit: Makkah, wantNights: []int{3, 3, 1}, wantCities: []City{Makkah, Madinah, Makkah}},
		{name: "weighted 4 borrows for last stay", total: 4, start: Makkah, exit: Makkah, wantNights: []int{2, 1, 1}, wantCities: []City{Makkah, Madinah, Makkah}},
		{name: "weighted 3", total: 3, start: Makkah, exit: Makkah, wantNights: []int{1, 1, 1}, wantCities: []City{Makkah, Madinah, Makkah}},
		{name: "start madinah", total: 15, start: Madinah, exit: Madinah, wantNights: []int{6, 6, 3}, wantCities: []City{Madinah, Makkah, Madinah}},
		{name: "two stays even", total: 10, start: Makkah, exit: Madinah, wantNights: []int{5, 5}, wantCities: []City{Makkah, Madinah}},
		{name: "two stays odd", total: 11, start: Madinah, exit: Makkah, wantNights: []int{5, 6}, wantCities: []City{Madinah, Makkah}},
		{name: "two stays minimum", total: 2, start: Makkah, exit: Madinah, wantNights: []int{1, 1}, wantCities: []City{Makkah, Madinah}},
		{name: "max madinah on preset", total: 15, start: Makkah, exit: Makkah, maxMadinah: true, wantNights: []int{2, 10, 3}, wantCities: []City{Makkah, Madinah, Makkah}},
		{name: "max madinah stops at the floor", total: 7, start: Makkah, exit: Makkah, maxMadinah: true, wantNights: []int{2, 4, 1}, wantCities: []City{Makkah, Madinah, Makkah}},
		{name: "max madinah ignored for two stays", total: 10, start: Makkah, exit: Madinah, maxMadinah: true, wantNights: []int{5, 5}, wantCities: []City{Makkah, Madinah}},
		{name: "short same-city trip", total: 2, start: Makkah, exit: Makkah, wantNights: []int{2}, wantCities: []City{Makkah}},
		{name: "one night with different cities", total: 1, start: Madinah, exit: Makkah, wantNights: []int{1}, wantCities: []City{Madinah}},
		{name: "non-positive total clamps to one", total: 0, start: Makkah, exit: Makkah, wantNights: []int{1}, wantCities: []City{Makkah}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PlanDistribution(tt.total, tt.start, tt.exit, tt.maxMadinah)
			assert.Equal(t, tt.wantNights, got.Nights)
			assert.Equal(t, tt.wantCities, got.Cities)
		})
	}
}

func TestPlanDistributionDoesNotAliasPresets(t *testing.T) {
	d := PlanDistribution(15, Makkah, Makkah, true)
	assert.Equal(t, []int{2, 10, 3}, d.Nights)
	assert.Equal(t, []int{6, 6, 3}, presetDistributions[15])
}

func TestPlanDistributionKeepsTotal(t *testing.T) {
	for total := 1; total <= 60; total++ {
		for _, start := range Cities {
			for _, exit := range Cities {
				for _, maxMadinah := range []bool{false, true} {
					name := fmt.Sprintf("%d/%s/%s/%t", total, start, exit, maxMadinah)
					d := PlanDistribution(total, start, exit, maxMadinah)
					assert.Equal(t, total, d.Total(), name)
					assert.Len(t, d.Cities, len(d.Nights), name)
					for i, n := range d.Nights {
						assert.GreaterOrEqual(t, n, 1, "%s stay %d", name, i)
					}
					if len(d.Cities) > 0 {
						assert.Equal(t, start, d.Cities[0], name)
					}
					if len(d.Cities) > 1 {
						assert.Equal(t, exit, d.Cities[len(d.Cities)-1], name)
					}
				}
			}
		}
	}
}

func TestParseCity(t *testing.T) {
	tests := []struct {
		input   string
		want    City
		wantErr bool
	}{
		{input: "makkah", want: Makkah},
		{input: "Madinah", want: Madinah},
		{input: " MADINAH ", want: Madinah},
		{input: "", want: Makkah},
		{input: "jeddah", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseCity(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCityHelpers(t *testing.T) {
	assert.Equal(t, "Makkah", Makkah.Label())
	assert.Equal(t, "Madinah", Madinah.Label())
	assert.Equal(t, Madinah, Makkah.Other())
	assert.Equal(t, Makkah, Madinah.Other())
	assert.False(t, City("taif").Valid())
}
