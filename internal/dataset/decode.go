package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"salarydash/internal/model"
)

var (
	// ErrRetrieval marks failures fetching the raw dataset (network, status, storage, SQL).
	ErrRetrieval = errors.New("dataset retrieval failed")
	// ErrParse marks a dataset that was fetched but could not be decoded.
	ErrParse = errors.New("dataset parse failed")
)

// Columns lists the CSV columns every dataset must provide.
var Columns = []string{
	"ano",
	"senioridade",
	"contrato",
	"tamanho_empresa",
	"cargo",
	"remoto",
	"residencia_iso3",
	"usd",
}

// Decode reads a CSV with a header row into records.
// Columns are matched by header name, so order is free and extra columns are ignored.
func Decode(r io.Reader) ([]model.Record, error) {
	cr := csv.NewReader(r)
	cr.ReuseRecord = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty input, header row missing", ErrParse)
		}
		return nil, fmt.Errorf("%w: read header: %v", ErrParse, err)
	}

	idx, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	records := make([]model.Record, 0, 1024)
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}
		line, _ := cr.FieldPos(0)

		rec, err := decodeRow(row, idx, line)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

func columnIndex(header []string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		name := strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		if _, dup := idx[name]; !dup {
			idx[name] = i
		}
	}

	var missing []string
	for _, c := range Columns {
		if _, ok := idx[c]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing columns %s", ErrParse, strings.Join(missing, ", "))
	}
	return idx, nil
}

func decodeRow(row []string, idx map[string]int, line int) (model.Record, error) {
	get := func(col string) string {
		i := idx[col]
		if i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	year, err := ParseYear(get("ano"))
	if err != nil {
		return model.Record{}, fmt.Errorf("%w: line %d column ano: %v", ErrParse, line, err)
	}
	usd, err := parseSalary(get("usd"))
	if err != nil {
		return model.Record{}, fmt.Errorf("%w: line %d column usd: %v", ErrParse, line, err)
	}

	return model.Record{
		Year:        year,
		Seniority:   get("senioridade"),
		Contract:    get("contrato"),
		CompanySize: get("tamanho_empresa"),
		JobTitle:    get("cargo"),
		Remote:      get("remoto"),
		CountryISO3: get("residencia_iso3"),
		SalaryUSD:   usd,
	}, nil
}

// ParseYear accepts integral years, including the "2023.0" form float-typed exports produce.
func ParseYear(s string) (int, error) {
	if s == "" {
		return 0, errors.New("empty value")
	}
	if y, err := strconv.ParseInt(s, 10, 32); err == nil {
		return int(y), nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid year %q", s)
	}
	if f != math.Trunc(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("non-integral year %q", s)
	}
	// Years are bounded to int32 so the conversion below is always defined.
	if f < math.MinInt32 || f > math.MaxInt32 {
		return 0, fmt.Errorf("year out of range %q", s)
	}
	return int(f), nil
}

func parseSalary(s string) (float64, error) {
	if s == "" {
		return 0, errors.New("empty value")
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	if err := CheckSalary(f); err != nil {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	return f, nil
}

// CheckSalary rejects NaN and infinite amounts, which no aggregate can bin or average.
func CheckSalary(f float64) error {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("non-finite amount %v", f)
	}
	return nil
}
