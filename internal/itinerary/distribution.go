package itinerary

import (
	"math"
	"slices"
)

// presetDistributions are the three-stay splits used for the common trip lengths.
var presetDistributions = map[int][]int{
	15: {6, 6, 3},
	21: {8, 9, 4},
	28: {10, 10, 8},
}

const (
	firstStayWeight  = 0.4
	secondStayWeight = 0.4

	// maxBiasShifts bounds how many nights the alternate-city bias may move.
	maxBiasShifts = 4
	// biasFloor is the night count the outer stays are reduced to under the bias.
	biasFloor = 2
)

// threeStayTemplates maps the start city to the first two cities of a
// three-stay trip. The third city is always the exit city.
var threeStayTemplates = map[City][2]City{
	Makkah:  {Makkah, Madinah},
	Madinah: {Madinah, Makkah},
}

// Distribution is the per-stay night split and the city of each stay.
type Distribution struct {
	Nights []int  `json:"nights"`
	Cities []City `json:"cities"`
}

// Total returns the sum of all nights.
func (d Distribution) Total() int {
	total := 0
	for _, n := range d.Nights {
		total += n
	}
	return total
}

// PlanDistribution splits total nights across stays. Different start and
// exit cities give two stays; the same city gives three, with the other city
// in the middle. maxAlternate biases a three-stay split toward the middle
// city.
//
// A three-stay trip needs at least three nights and a two-stay trip two.
// Shorter trips are planned as a single stay in the start city.
func PlanDistribution(total int, start, exit City, maxAlternate bool) Distribution {
	if total < 1 {
		total = 1
	}

	if start != exit && total >= 2 {
		return Distribution{
			Nights: twoStaySplit(total),
			Cities: []City{start, exit},
		}
	}

	if total < 3 {
		return Distribution{Nights: []int{total}, Cities: []City{start}}
	}

	nights, ok := presetDistributions[total]
	if ok {
		nights = slices.Clone(nights)
	} else {
		nights = weightedSplit(total)
	}

	if maxAlternate {
		nights = applyAlternateBias(nights)
	}

	return Distribution{Nights: nights, Cities: threeStayCities(start, exit)}
}

func threeStayCities(start, exit City) []City {
	tpl, ok := threeStayTemplates[start]
	if !ok {
		tpl = threeStayTemplates[Makkah]
	}
	last := Makkah
	if exit == Madinah {
		last = Madinah
	}
	return []City{tpl[0], tpl[1], last}
}

// twoStaySplit halves total, giving the odd night to the second stay.
func twoStaySplit(total int) []int {
	first := total / 2
	second := total - first
	return []int{max(1, first), max(1, second)}
}

// weightedSplit splits total 40/40/20. When the last stay rounds down to
// nothing it gets one night taken from the larger of the first two (the
// second on a tie); any rounding remainder then goes to the first stay.
func weightedSplit(total int) []int {
	a := max(1, int(math.Round(float64(total)*firstStayWeight)))
	b := max(1, int(math.Round(float64(total)*secondStayWeight)))
	c := total - (a + b)
	if c < 1 {
		c = 1
		if a > b {
			a = max(1, a-1)
		} else {
			b = max(1, b-1)
		}
	}

	nights := []int{a, b, c}
	nights[0] += total - (a + b + c)

	for i := range nights {
		for nights[i] < 1 {
			donor := largestIndex(nights)
			if donor == i || nights[donor] <= 1 {
				break
			}
			nights[donor]--
			nights[i]++
		}
	}
	return nights
}

// applyAlternateBias moves nights from the outer stays into the middle stay,
// first stay first, until neither exceeds biasFloor or the shift budget is spent.
func applyAlternateBias(nights []int) []int {
	if len(nights) != 3 {
		return nights
	}
	out := slices.Clone(nights)
	for shifts := 0; shifts < maxBiasShifts; shifts++ {
		switch {
		case out[0] > biasFloor:
			out[0]--
		case out[2] > biasFloor:
			out[2]--
		default:
			return out
		}
		out[1]++
	}
	return out
}

// largestIndex returns the index of the largest value; the first one wins ties.
func largestIndex(values []int) int {
	best := 0
	for i, v := range values {
		if v > values[best] {
			best = i
		}
	}
	return best
}
