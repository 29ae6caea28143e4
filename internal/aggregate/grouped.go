package aggregate

import (
	"math"
	"sort"

	"salarydash/internal/model"
)

type group struct {
	key   string
	sum   float64
	count int
}

// groupBy accumulates salary sums per key in first-encountered order.
func groupBy(view []model.Record, key func(model.Record) string) []*group {
	index := make(map[string]*group)
	groups := make([]*group, 0)
	for _, r := range view {
		k := key(r)
		g, ok := index[k]
		if !ok {
			g = &group{key: k}
			index[k] = g
			groups = append(groups, g)
		}
		g.sum += r.SalaryUSD
		g.count++
	}
	return groups
}

func (g *group) mean() float64 {
	return g.sum / float64(g.count)
}

// TopTitlesByMean returns the n job titles with the highest mean salary,
// ordered ascending by mean so a horizontal bar chart draws the largest on top.
// Titles with equal means keep first-encountered precedence.
func TopTitlesByMean(view []model.Record, n int) []model.TitleMean {
	if n <= 0 {
		return []model.TitleMean{}
	}
	groups := groupBy(view, func(r model.Record) string { return r.JobTitle })

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].mean() > groups[j].mean()
	})
	if len(groups) > n {
		groups = groups[:n]
	}

	out := make([]model.TitleMean, len(groups))
	for i, g := range groups {
		// reverse the descending selection into ascending display order
		out[len(groups)-1-i] = model.TitleMean{JobTitle: g.key, MeanSalary: g.mean()}
	}
	return out
}

// RemoteCounts returns the number of rows per remote-work category,
// largest first, ties ordered by category name.
func RemoteCounts(view []model.Record) []model.CategoryCount {
	groups := groupBy(view, func(r model.Record) string { return r.Remote })
	out := make([]model.CategoryCount, 0, len(groups))
	for _, g := range groups {
		out = append(out, model.CategoryCount{Category: g.key, Count: g.count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// CountryMeans returns the mean salary per country among rows holding the given job title,
// sorted by country code.
func CountryMeans(view []model.Record, jobTitle string) []model.CountryMean {
	titled := make([]model.Record, 0)
	for _, r := range view {
		if r.JobTitle == jobTitle {
			titled = append(titled, r)
		}
	}

	groups := groupBy(titled, func(r model.Record) string { return r.CountryISO3 })
	out := make([]model.CountryMean, 0, len(groups))
	for _, g := range groups {
		out = append(out, model.CountryMean{CountryISO3: g.key, MeanSalary: g.mean(), Count: g.count})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CountryISO3 < out[j].CountryISO3 })
	return out
}

// Histogram buckets salaries into bins equal-width intervals spanning [min, max].
// The last bin is closed so the maximum is counted. A view whose salaries are
// all equal produces a single bin.
func Histogram(view []model.Record, bins int) []model.HistogramBin {
	if len(view) == 0 || bins <= 0 {
		return []model.HistogramBin{}
	}

	// Non-finite amounts cannot be placed in a bin and are left out.
	lo, hi := math.Inf(1), math.Inf(-1)
	finite := 0
	for _, r := range view {
		if math.IsNaN(r.SalaryUSD) || math.IsInf(r.SalaryUSD, 0) {
			continue
		}
		lo = math.Min(lo, r.SalaryUSD)
		hi = math.Max(hi, r.SalaryUSD)
		finite++
	}
	if finite == 0 {
		return []model.HistogramBin{}
	}
	if lo == hi {
		return []model.HistogramBin{{Low: lo, High: hi, Count: finite}}
	}

	width := (hi - lo) / float64(bins)
	out := make([]model.HistogramBin, bins)
	for i := range out {
		out[i].Low = lo + float64(i)*width
		out[i].High = lo + float64(i+1)*width
	}
	out[bins-1].High = hi

	for _, r := range view {
		if math.IsNaN(r.SalaryUSD) || math.IsInf(r.SalaryUSD, 0) {
			continue
		}
		i := int((r.SalaryUSD - lo) / width)
		if i < 0 {
			i = 0
		}
		if i >= bins {
			i = bins - 1
		}
		out[i].Count++
	}
	return out
}
