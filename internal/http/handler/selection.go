package handler

import (
	"github.com/gofiber/fiber/v2"

	"salarydash/internal/filter"
	"salarydash/internal/model"
)

// FilteredParam marks a submitted filter form. With it, a field missing from the
// query selects nothing instead of everything.
const FilteredParam = "filtered"

// selectionFromQuery reads repeated query params (?senioridade=SE&senioridade=MI) into a Selection.
func selectionFromQuery(c *fiber.Ctx) (model.Selection, error) {
	args := c.Context().QueryArgs()
	values := make(map[string][]string, len(model.FilterFields))
	for _, f := range model.FilterFields {
		for _, v := range args.PeekMulti(string(f)) {
			values[string(f)] = append(values[string(f)], string(v))
		}
	}
	return filter.ParseSelection(values, c.Query(FilteredParam) == "1")
}
