package model

import "time"

// Record is one salary observation: a person holding a job in a given year.
// It is a pure domain model with no transport or persistence coupling.
type Record struct {
	Year        int     `json:"ano"`
	Seniority   string  `json:"senioridade"`
	Contract    string  `json:"contrato"`
	CompanySize string  `json:"tamanho_empresa"`
	JobTitle    string  `json:"cargo"`
	Remote      string  `json:"remoto"`
	CountryISO3 string  `json:"residencia_iso3"`
	SalaryUSD   float64 `json:"usd"`
}

// Dataset is the full table as loaded from its locator.
// Records is shared read-only between requests and must never be mutated in place.
type Dataset struct {
	Records  []Record  `json:"-"`
	Source   string    `json:"source"`
	LoadedAt time.Time `json:"loaded_at"`
}

// Len returns the number of records in the dataset.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Records)
}
