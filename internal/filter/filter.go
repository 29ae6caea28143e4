// Package filter derives the distinct filter options of a dataset and the filtered
// view for a selection. All functions are pure and never mutate their input.
package filter

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"salarydash/internal/dataset"
	"salarydash/internal/model"
)

// ErrInvalidSelection is returned when a selected value cannot belong to its field.
var ErrInvalidSelection = errors.New("invalid selection")

// Options returns the sorted distinct values of every filterable field.
// Years sort numerically, the other fields lexically.
func Options(records []model.Record) model.FilterOptions {
	opts := make(model.FilterOptions, len(model.FilterFields))
	for _, f := range model.FilterFields {
		seen := make(map[string]struct{})
		values := make([]string, 0)
		for _, r := range records {
			v := r.Value(f)
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			values = append(values, v)
		}

		if f == model.FieldYear {
			sort.Slice(values, func(i, j int) bool {
				a, _ := strconv.Atoi(values[i])
				b, _ := strconv.Atoi(values[j])
				return a < b
			})
		} else {
			sort.Strings(values)
		}
		opts[f] = values
	}
	return opts
}

// ParseSelection builds a Selection from query-string style values keyed by field name.
//
// When explicit is false, a field without values is unrestricted (every option selected).
// When explicit is true the values come from a submitted form, where an empty multiselect
// sends nothing, so a field without values selects nothing.
func ParseSelection(values map[string][]string, explicit bool) (model.Selection, error) {
	sel := make(model.Selection)
	for _, f := range model.FilterFields {
		raw, ok := values[string(f)]
		if !ok || len(raw) == 0 {
			if explicit {
				sel.Restrict(f)
			}
			continue
		}

		chosen := make([]string, 0, len(raw))
		for _, v := range raw {
			v = strings.TrimSpace(v)
			if f == model.FieldYear {
				y, err := dataset.ParseYear(v)
				if err != nil {
					return nil, fmt.Errorf("%w: %s: %v", ErrInvalidSelection, f, err)
				}
				v = strconv.Itoa(y)
			}
			chosen = append(chosen, v)
		}
		sel.Restrict(f, chosen...)
	}
	return sel, nil
}

// Apply returns the rows whose value in every restricted field is selected.
// The result preserves dataset order and is always a fresh slice.
func Apply(records []model.Record, sel model.Selection) []model.Record {
	view := make([]model.Record, 0, len(records))
	for _, r := range records {
		if matches(r, sel) {
			view = append(view, r)
		}
	}
	return view
}

func matches(r model.Record, sel model.Selection) bool {
	for f := range sel {
		if !sel.Allows(f, r.Value(f)) {
			return false
		}
	}
	return true
}
