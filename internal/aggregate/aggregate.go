// Package aggregate computes the dashboard metrics over a filtered view.
//
// Every function is pure. Callers must not pass an empty view to the scalar
// metrics; the dashboard short-circuits to its "no data" state before that.
package aggregate

import (
	"math"

	"salarydash/internal/model"
)

// MeanSalary returns the arithmetic mean of SalaryUSD.
func MeanSalary(view []model.Record) float64 {
	if len(view) == 0 {
		return math.NaN()
	}
	var sum float64
	for _, r := range view {
		sum += r.SalaryUSD
	}
	return sum / float64(len(view))
}

// MaxSalary returns the largest SalaryUSD.
func MaxSalary(view []model.Record) float64 {
	if len(view) == 0 {
		return math.NaN()
	}
	m := view[0].SalaryUSD
	for _, r := range view[1:] {
		if r.SalaryUSD > m {
			m = r.SalaryUSD
		}
	}
	return m
}

// Count returns the number of rows in the view.
func Count(view []model.Record) int {
	return len(view)
}

// MostFrequentTitle returns the modal job title. Ties go to the title seen first.
func MostFrequentTitle(view []model.Record) string {
	counts := make(map[string]int)
	order := make([]string, 0)
	for _, r := range view {
		if _, ok := counts[r.JobTitle]; !ok {
			order = append(order, r.JobTitle)
		}
		counts[r.JobTitle]++
	}

	best, bestN := "", 0
	for _, title := range order {
		if counts[title] > bestN {
			best, bestN = title, counts[title]
		}
	}
	return best
}

// Summarize computes the tile metrics of a non-empty view.
func Summarize(view []model.Record) model.Summary {
	return model.Summary{
		MeanSalary:        MeanSalary(view),
		MaxSalary:         MaxSalary(view),
		Count:             Count(view),
		MostFrequentTitle: MostFrequentTitle(view),
	}
}
