package dataset

import (
	"encoding/csv"
	"io"
	"strconv"

	"salarydash/internal/model"
)

// Encode writes records as CSV in Columns order, so the output decodes back to the same rows.
func Encode(w io.Writer, records []model.Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Columns); err != nil {
		return err
	}
	row := make([]string, len(Columns))
	for _, r := range records {
		row[0] = strconv.Itoa(r.Year)
		row[1] = r.Seniority
		row[2] = r.Contract
		row[3] = r.CompanySize
		row[4] = r.JobTitle
		row[5] = r.Remote
		row[6] = r.CountryISO3
		row[7] = strconv.FormatFloat(r.SalaryUSD, 'f', -1, 64)
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
