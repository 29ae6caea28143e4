package handler

import (
	"bytes"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"salarydash/internal/dataset"
	"salarydash/internal/service"
)

// GetOptions godoc
// @Summary Filter options
// @Description Sorted distinct values of ano, senioridade, contrato and tamanho_empresa.
// @Tags dashboard
// @Produce json
// @Success 200 {object} map[string][]string
// @Failure 502 {object} errorPayload
// @Router /api/options [get]
func GetOptions(svc service.DashboardService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		opts, err := svc.Options(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(opts)
	}
}

// GetSummary godoc
// @Summary Dashboard aggregates
// @Description Metrics and chart series for the selection. An empty view answers 200 with empty=true.
// @Tags dashboard
// @Produce json
// @Param ano query []string false "years" collectionFormat(multi)
// @Param senioridade query []string false "seniority levels" collectionFormat(multi)
// @Param contrato query []string false "contract types" collectionFormat(multi)
// @Param tamanho_empresa query []string false "company sizes" collectionFormat(multi)
// @Param filtered query string false "1 when absent fields select nothing"
// @Success 200 {object} service.Dashboard
// @Failure 400 {object} errorPayload
// @Failure 502 {object} errorPayload
// @Router /api/summary [get]
func GetSummary(svc service.DashboardService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sel, err := selectionFromQuery(c)
		if err != nil {
			return writeServiceError(c, err)
		}
		res, err := svc.Dashboard(c.UserContext(), sel)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}

// ListRecords godoc
// @Summary Filtered rows
// @Tags dashboard
// @Produce json
// @Param limit query int false "page size" default(10)
// @Param offset query int false "rows to skip" default(0)
// @Success 200 {object} service.RecordPage
// @Failure 400 {object} errorPayload
// @Failure 502 {object} errorPayload
// @Router /api/records [get]
func ListRecords(svc service.DashboardService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limitStr := c.Query("limit", "10")
		offsetStr := c.Query("offset", "0")
		limit, err := strconv.Atoi(limitStr)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
		}
		offset, err := strconv.Atoi(offsetStr)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_OFFSET", "invalid offset")
		}

		sel, err := selectionFromQuery(c)
		if err != nil {
			return writeServiceError(c, err)
		}
		res, err := svc.Records(c.UserContext(), sel, limit, offset)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}

// ExportRecords godoc
// @Summary Filtered rows as CSV
// @Tags dashboard
// @Produce text/csv
// @Success 200 {string} string
// @Failure 400 {object} errorPayload
// @Failure 502 {object} errorPayload
// @Router /api/records.csv [get]
func ExportRecords(svc service.DashboardService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sel, err := selectionFromQuery(c)
		if err != nil {
			return writeServiceError(c, err)
		}
		view, err := svc.View(c.UserContext(), sel)
		if err != nil {
			return writeServiceError(c, err)
		}

		var buf bytes.Buffer
		if err := dataset.Encode(&buf, view); err != nil {
			return writeServiceError(c, err)
		}
		c.Attachment("salarios.csv")
		c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
		return c.Send(buf.Bytes())
	}
}
