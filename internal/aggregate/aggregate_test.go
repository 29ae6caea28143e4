package aggregate

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salarydash/internal/model"
)

func rec(title, remote, country string, usd float64) model.Record {
	return model.Record{Year: 2023, JobTitle: title, Remote: remote, CountryISO3: country, SalaryUSD: usd}
}

func TestScalarMetrics(t *testing.T) {
	view := []model.Record{
		rec("Data Scientist", "remoto", "USA", 120000),
		rec("Analyst", "presencial", "BRA", 40000),
		rec("Analyst", "remoto", "BRA", 50000),
	}

	assert.InDelta(t, 70000, MeanSalary(view), 1e-9)
	assert.Equal(t, 120000.0, MaxSalary(view))
	assert.Equal(t, 3, Count(view))
	assert.Equal(t, "Analyst", MostFrequentTitle(view))
}

func TestScalarMetrics_SpecExample(t *testing.T) {
	view := []model.Record{rec("Data Scientist", "remoto", "US", 120000)}
	s := Summarize(view)
	assert.Equal(t, model.Summary{MeanSalary: 120000, MaxSalary: 120000, Count: 1, MostFrequentTitle: "Data Scientist"}, s)
}

func TestScalarMetrics_EmptyViewIsNaN(t *testing.T) {
	assert.True(t, math.IsNaN(MeanSalary(nil)))
	assert.True(t, math.IsNaN(MaxSalary(nil)))
	assert.Equal(t, 0, Count(nil))
	assert.Equal(t, "", MostFrequentTitle(nil))
}

func TestMostFrequentTitle_TieGoesToFirstEncountered(t *testing.T) {
	view := []model.Record{
		rec("A", "", "", 1),
		rec("B", "", "", 1),
		rec("B", "", "", 1),
		rec("A", "", "", 1),
	}
	assert.Equal(t, "A", MostFrequentTitle(view))
}

func TestTopTitlesByMean(t *testing.T) {
	var view []model.Record
	for i := 0; i < 15; i++ {
		// title i has mean 1000*(i+1)
		view = append(view,
			rec(fmt.Sprintf("T%02d", i), "", "", float64(1000*(i+1))-10),
			rec(fmt.Sprintf("T%02d", i), "", "", float64(1000*(i+1))+10),
		)
	}

	top := TopTitlesByMean(view, 10)

	require.Len(t, top, 10)
	assert.Equal(t, "T05", top[0].JobTitle)
	assert.Equal(t, "T14", top[9].JobTitle)
	assert.InDelta(t, 15000, top[9].MeanSalary, 1e-9)
	for i := 1; i < len(top); i++ {
		assert.LessOrEqual(t, top[i-1].MeanSalary, top[i].MeanSalary)
	}
}

func TestTopTitlesByMean_FewerThanN(t *testing.T) {
	view := []model.Record{rec("X", "", "", 10), rec("Y", "", "", 30), rec("X", "", "", 30)}
	top := TopTitlesByMean(view, 10)
	assert.Equal(t, []model.TitleMean{{JobTitle: "X", MeanSalary: 20}, {JobTitle: "Y", MeanSalary: 30}}, top)
}

func TestTopTitlesByMean_TiesKeepFirstEncountered(t *testing.T) {
	view := []model.Record{rec("First", "", "", 5), rec("Second", "", "", 5), rec("Third", "", "", 5)}
	top := TopTitlesByMean(view, 2)
	require.Len(t, top, 2)
	assert.Equal(t, "Second", top[0].JobTitle)
	assert.Equal(t, "First", top[1].JobTitle)
}

func TestTopTitlesByMean_NonPositiveN(t *testing.T) {
	assert.Empty(t, TopTitlesByMean([]model.Record{rec("X", "", "", 1)}, 0))
}

func TestRemoteCounts(t *testing.T) {
	view := []model.Record{
		rec("a", "presencial", "", 1),
		rec("a", "remoto", "", 1),
		rec("a", "hibrido", "", 1),
		rec("a", "remoto", "", 1),
		rec("a", "hibrido", "", 1),
		rec("a", "remoto", "", 1),
	}
	assert.Equal(t, []model.CategoryCount{
		{Category: "remoto", Count: 3},
		{Category: "hibrido", Count: 2},
		{Category: "presencial", Count: 1},
	}, RemoteCounts(view))
}

func TestCountryMeans(t *testing.T) {
	view := []model.Record{
		rec("Data Scientist", "", "USA", 100),
		rec("Data Scientist", "", "USA", 200),
		rec("Data Scientist", "", "BRA", 50),
		rec("Analyst", "", "DEU", 999),
	}
	assert.Equal(t, []model.CountryMean{
		{CountryISO3: "BRA", MeanSalary: 50, Count: 1},
		{CountryISO3: "USA", MeanSalary: 150, Count: 2},
	}, CountryMeans(view, "Data Scientist"))
	assert.Empty(t, CountryMeans(view, "Nobody"))
}

func TestHistogram(t *testing.T) {
	t.Run("equal width bins cover min and max", func(t *testing.T) {
		view := []model.Record{rec("", "", "", 0), rec("", "", "", 5), rec("", "", "", 9.99), rec("", "", "", 10), rec("", "", "", 30)}
		bins := Histogram(view, 3)
		require.Len(t, bins, 3)
		assert.Equal(t, 0.0, bins[0].Low)
		assert.Equal(t, 30.0, bins[2].High)
		assert.Equal(t, []int{3, 1, 1}, []int{bins[0].Count, bins[1].Count, bins[2].Count})
	})

	t.Run("counts add up", func(t *testing.T) {
		var view []model.Record
		for i := 0; i < 100; i++ {
			view = append(view, rec("", "", "", float64(i*i)))
		}
		total := 0
		for _, b := range Histogram(view, 30) {
			total += b.Count
		}
		assert.Equal(t, 100, total)
	})

	t.Run("non-finite amounts are skipped", func(t *testing.T) {
		view := []model.Record{rec("", "", "", math.NaN()), rec("", "", "", 10), rec("", "", "", math.Inf(1)), rec("", "", "", 20)}
		var bins []model.HistogramBin
		require.NotPanics(t, func() { bins = Histogram(view, 2) })
		require.Len(t, bins, 2)
		assert.Equal(t, 10.0, bins[0].Low)
		assert.Equal(t, 20.0, bins[1].High)
		assert.Equal(t, []int{1, 1}, []int{bins[0].Count, bins[1].Count})

		assert.Empty(t, Histogram([]model.Record{rec("", "", "", math.NaN())}, 30))
	})

	t.Run("single value", func(t *testing.T) {
		bins := Histogram([]model.Record{rec("", "", "", 7), rec("", "", "", 7)}, 30)
		assert.Equal(t, []model.HistogramBin{{Low: 7, High: 7, Count: 2}}, bins)
	})

	t.Run("empty", func(t *testing.T) {
		assert.Empty(t, Histogram(nil, 30))
	})
}
