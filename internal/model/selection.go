package model

import "strconv"

// Field names a categorical column the dashboard can filter on.
// The string value doubles as the CSV column and the query-string key.
type Field string

const (
	FieldYear        Field = "ano"
	FieldSeniority   Field = "senioridade"
	FieldContract    Field = "contrato"
	FieldCompanySize Field = "tamanho_empresa"
)

// FilterFields lists the filterable fields in sidebar order.
var FilterFields = []Field{FieldYear, FieldSeniority, FieldContract, FieldCompanySize}

// Label returns the human-readable sidebar label.
func (f Field) Label() string {
	switch f {
	case FieldYear:
		return "Ano"
	case FieldSeniority:
		return "Senioridade"
	case FieldContract:
		return "Tipo de Contrato"
	case FieldCompanySize:
		return "Tamanho da Empresa"
	default:
		return string(f)
	}
}

// Value returns the record's value for f in its canonical string form.
func (r Record) Value(f Field) string {
	switch f {
	case FieldYear:
		return strconv.Itoa(r.Year)
	case FieldSeniority:
		return r.Seniority
	case FieldContract:
		return r.Contract
	case FieldCompanySize:
		return r.CompanySize
	default:
		return ""
	}
}

// Selection holds the chosen values per field.
// A field missing from the map is unrestricted; a field mapped to an empty set matches nothing.
type Selection map[Field]map[string]struct{}

// Restrict sets the allowed values for f, replacing any previous restriction.
func (s Selection) Restrict(f Field, values ...string) {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	s[f] = set
}

// Allows reports whether v is selected for f.
func (s Selection) Allows(f Field, v string) bool {
	set, ok := s[f]
	if !ok {
		return true
	}
	_, ok = set[v]
	return ok
}

// FilterOptions lists the distinct values available per field, already sorted for display.
type FilterOptions map[Field][]string
