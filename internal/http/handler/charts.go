package handler

import (
	"bytes"
	"errors"
	"io"

	"github.com/gofiber/fiber/v2"

	"salarydash/internal/chart"
	"salarydash/internal/service"
)

type renderFunc func(w io.Writer, d *service.Dashboard) error

var charts = map[string]renderFunc{
	"top-titles.png": func(w io.Writer, d *service.Dashboard) error {
		return chart.TopTitles(w, d.TopTitles)
	},
	"salary-histogram.png": func(w io.Writer, d *service.Dashboard) error {
		return chart.SalaryHistogram(w, d.SalaryHistogram)
	},
	"remote-ratio.png": func(w io.Writer, d *service.Dashboard) error {
		return chart.RemoteRatio(w, d.RemoteCounts)
	},
	"country-means.png": func(w io.Writer, d *service.Dashboard) error {
		return chart.CountryMeans(w, d.CountryJobTitle, d.CountryMeans)
	},
}

// GetChart godoc
// @Summary Dashboard chart
// @Description One of top-titles.png, salary-histogram.png, remote-ratio.png, country-means.png for the selection.
// @Tags dashboard
// @Produce png
// @Param name path string true "chart file name"
// @Success 200 {file} file
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Failure 502 {object} errorPayload
// @Router /charts/{name} [get]
func GetChart(svc service.DashboardService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		render, ok := charts[c.Params("name")]
		if !ok {
			return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "chart not found")
		}

		sel, err := selectionFromQuery(c)
		if err != nil {
			return writeServiceError(c, err)
		}
		res, err := svc.Dashboard(c.UserContext(), sel)
		if err != nil {
			return writeServiceError(c, err)
		}
		if res.Empty {
			return writeError(c, fiber.StatusNotFound, "NO_DATA", res.Warning)
		}

		var buf bytes.Buffer
		if err := render(&buf, res); err != nil {
			if errors.Is(err, chart.ErrNoData) {
				return writeError(c, fiber.StatusNotFound, "NO_DATA", service.NoDataWarning)
			}
			return writeServiceError(c, err)
		}
		c.Set(fiber.HeaderCacheControl, "no-store")
		c.Type("png")
		return c.Send(buf.Bytes())
	}
}
