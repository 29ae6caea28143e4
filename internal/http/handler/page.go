package handler

import (
	"bytes"
	_ "embed"
	"html/template"
	"net/url"

	"github.com/gofiber/fiber/v2"

	"salarydash/internal/format"
	"salarydash/internal/model"
	"salarydash/internal/service"
)

const loadFailedBanner = "Não foi possível carregar o conjunto de dados. Tente novamente mais tarde."

//go:embed templates/dashboard.html
var dashboardHTML string

var dashboardTmpl = template.Must(template.New("dashboard").Funcs(template.FuncMap{
	"money": format.Money,
	"int":   format.Int,
}).Parse(dashboardHTML))

type optionView struct {
	Value    string
	Selected bool
}

type fieldView struct {
	Name    string
	Label   string
	Options []optionView
}

type pageData struct {
	Error     string
	Fields    []fieldView
	Dashboard *service.Dashboard
	Charts    map[string]string
	Rows      []model.Record
	RowsTotal int
	CSVURL    string
}

// DashboardPage godoc
// @Summary HTML dashboard
// @Description Filter sidebar, metric tiles, charts and the detail table for the selection.
// @Tags dashboard
// @Produce html
// @Success 200 {string} string
// @Failure 400 {string} string
// @Failure 502 {string} string
// @Router / [get]
func DashboardPage(svc service.DashboardService, tableLimit int) fiber.Handler {
	if tableLimit <= 0 {
		tableLimit = 500
	}
	return func(c *fiber.Ctx) error {
		ctx := c.UserContext()

		opts, err := svc.Options(ctx)
		if err != nil {
			status, _, _ := logServiceError(c, err)
			return renderPage(c, status, pageData{Error: loadFailedBanner})
		}

		sel, err := selectionFromQuery(c)
		if err != nil {
			logServiceError(c, err)
			return renderPage(c, fiber.StatusBadRequest, pageData{
				Error:  "Filtro inválido.",
				Fields: fieldViews(opts, model.Selection{}),
			})
		}

		dash, err := svc.Dashboard(ctx, sel)
		if err != nil {
			status, _, _ := logServiceError(c, err)
			return renderPage(c, status, pageData{Error: loadFailedBanner})
		}

		data := pageData{
			Fields:    fieldViews(opts, sel),
			Dashboard: dash,
		}
		if !dash.Empty {
			page, err := svc.Records(ctx, sel, tableLimit, 0)
			if err != nil {
				status, _, _ := logServiceError(c, err)
				return renderPage(c, status, pageData{Error: loadFailedBanner})
			}
			data.Rows = page.Items
			data.RowsTotal = page.Total
			suffix := filterQuery(c)
			data.Charts = make(map[string]string, len(charts))
			for name := range charts {
				data.Charts[name] = "/charts/" + name + suffix
			}
			data.CSVURL = "/api/records.csv" + suffix
		}
		return renderPage(c, fiber.StatusOK, data)
	}
}

func renderPage(c *fiber.Ctx, status int, data pageData) error {
	var buf bytes.Buffer
	if err := dashboardTmpl.Execute(&buf, data); err != nil {
		return err
	}
	c.Type("html", "utf-8")
	return c.Status(status).Send(buf.Bytes())
}

func fieldViews(opts model.FilterOptions, sel model.Selection) []fieldView {
	out := make([]fieldView, 0, len(model.FilterFields))
	for _, f := range model.FilterFields {
		fv := fieldView{Name: string(f), Label: f.Label()}
		for _, v := range opts[f] {
			fv.Options = append(fv.Options, optionView{Value: v, Selected: sel.Allows(f, v)})
		}
		out = append(out, fv)
	}
	return out
}

// filterQuery re-encodes the filter params of the request so links keep the same selection.
func filterQuery(c *fiber.Ctx) string {
	q := url.Values{}
	args := c.Context().QueryArgs()
	for _, f := range model.FilterFields {
		for _, v := range args.PeekMulti(string(f)) {
			q.Add(string(f), string(v))
		}
	}
	if c.Query(FilteredParam) == "1" {
		q.Set(FilteredParam, "1")
	}
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}
