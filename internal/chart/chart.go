// Package chart draws the dashboard charts as PNG images.
package chart

import (
	"errors"
	"fmt"
	"io"
	"math"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"salarydash/internal/format"
	"salarydash/internal/model"
)

// ErrNoData is returned when there is nothing to draw.
var ErrNoData = errors.New("no data to chart")

const (
	width  = 960
	height = 480
)

var barColor = drawing.ColorFromHex("4C78A8")

func barStyle() chart.Style {
	return chart.Style{FillColor: barColor, StrokeColor: barColor, StrokeWidth: 1}
}

// yRange pads the top of the axis and avoids the zero-height range go-chart rejects.
func yRange(values []float64) *chart.ContinuousRange {
	hi := 0.0
	for _, v := range values {
		hi = math.Max(hi, v)
	}
	if hi == 0 {
		hi = 1
	}
	return &chart.ContinuousRange{Min: 0, Max: hi * 1.1}
}

func barWidths(n int) (bar, spacing int) {
	if n <= 0 {
		return 0, 0
	}
	slot := (width - 120) / n
	spacing = slot / 5
	if spacing < 2 {
		spacing = 2
	}
	bar = slot - spacing
	if bar < 4 {
		bar = 4
	}
	return bar, spacing
}

func renderBars(w io.Writer, title, yName string, bars []chart.Value, yFormatter chart.ValueFormatter) error {
	if len(bars) == 0 {
		return ErrNoData
	}
	values := make([]float64, len(bars))
	for i, b := range bars {
		values[i] = b.Value
	}
	barW, spacing := barWidths(len(bars))

	bc := chart.BarChart{
		Title:      title,
		Width:      width,
		Height:     height,
		BarWidth:   barW,
		BarSpacing: spacing,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		XAxis:      chart.Style{TextRotationDegrees: 45, FontSize: 8},
		YAxis: chart.YAxis{
			Name:           yName,
			Range:          yRange(values),
			ValueFormatter: yFormatter,
		},
		Bars: bars,
	}
	if err := bc.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render %q: %w", title, err)
	}
	return nil
}

func moneyFormatter(v any) string {
	if f, ok := v.(float64); ok {
		return format.CompactMoney(f)
	}
	return ""
}

func countFormatter(v any) string {
	if f, ok := v.(float64); ok {
		return format.Int(int(math.Round(f)))
	}
	return ""
}

// TopTitles draws mean salary per job title. Items arrive ascending, so the
// best-paid title ends up at the far end of the axis.
func TopTitles(w io.Writer, items []model.TitleMean) error {
	bars := make([]chart.Value, len(items))
	for i, it := range items {
		bars[i] = chart.Value{Label: it.JobTitle, Value: it.MeanSalary, Style: barStyle()}
	}
	return renderBars(w, fmt.Sprintf("Top %d cargos por salário médio", len(items)), "USD", bars, moneyFormatter)
}

// SalaryHistogram draws the salary distribution.
func SalaryHistogram(w io.Writer, bins []model.HistogramBin) error {
	bars := make([]chart.Value, len(bins))
	for i, b := range bins {
		bars[i] = chart.Value{Label: format.CompactMoney(b.Low), Value: float64(b.Count), Style: barStyle()}
	}
	return renderBars(w, "Distribuição de salários anuais", "Registros", bars, countFormatter)
}

// CountryMeans draws the mean salary per country for one job title.
func CountryMeans(w io.Writer, jobTitle string, items []model.CountryMean) error {
	bars := make([]chart.Value, len(items))
	for i, it := range items {
		bars[i] = chart.Value{Label: it.CountryISO3, Value: it.MeanSalary, Style: barStyle()}
	}
	return renderBars(w, fmt.Sprintf("Salário médio de %s por país", jobTitle), "USD", bars, moneyFormatter)
}

// RemoteRatio draws the share of each remote-work category.
func RemoteRatio(w io.Writer, counts []model.CategoryCount) error {
	total := 0
	for _, c := range counts {
		total += c.Count
	}
	if total == 0 {
		return ErrNoData
	}

	values := make([]chart.Value, len(counts))
	for i, c := range counts {
		share := 100 * float64(c.Count) / float64(total)
		values[i] = chart.Value{Label: fmt.Sprintf("%s (%.1f%%)", c.Category, share), Value: float64(c.Count)}
	}

	pc := chart.PieChart{
		Title:  "Proporção dos tipos de trabalho",
		Width:  height,
		Height: height,
		Values: values,
	}
	if err := pc.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render remote ratio: %w", err)
	}
	return nil
}
