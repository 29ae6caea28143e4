package dataset

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salarydash/internal/model"
)

const sampleCSV = `ano,senioridade,contrato,tamanho_empresa,cargo,remoto,residencia_iso3,usd
2023,senior,integral,grande,Data Scientist,remoto,USA,120000
2023.0,junior,integral,pequena,Analyst,presencial,BRA,40000.5
`

func TestDecode(t *testing.T) {
	t.Run("header mapped rows", func(t *testing.T) {
		recs, err := Decode(strings.NewReader(sampleCSV))
		require.NoError(t, err)
		require.Len(t, recs, 2)

		assert.Equal(t, model.Record{
			Year:        2023,
			Seniority:   "senior",
			Contract:    "integral",
			CompanySize: "grande",
			JobTitle:    "Data Scientist",
			Remote:      "remoto",
			CountryISO3: "USA",
			SalaryUSD:   120000,
		}, recs[0])
		assert.Equal(t, 2023, recs[1].Year)
		assert.Equal(t, 40000.5, recs[1].SalaryUSD)
	})

	t.Run("column order free and extra columns ignored", func(t *testing.T) {
		in := "\ufeffusd,cargo,extra,ano,senioridade,contrato,tamanho_empresa,remoto,residencia_iso3\n" +
			"99,Engineer,x,2024,pleno,freelancer,media,hibrido,DEU\n"
		recs, err := Decode(strings.NewReader(in))
		require.NoError(t, err)
		require.Len(t, recs, 1)
		assert.Equal(t, "Engineer", recs[0].JobTitle)
		assert.Equal(t, 2024, recs[0].Year)
		assert.Equal(t, 99.0, recs[0].SalaryUSD)
		assert.Equal(t, "DEU", recs[0].CountryISO3)
	})

	t.Run("header only yields empty dataset", func(t *testing.T) {
		recs, err := Decode(strings.NewReader(strings.Join(Columns, ",") + "\n"))
		require.NoError(t, err)
		assert.Empty(t, recs)
	})

	t.Run("empty input", func(t *testing.T) {
		_, err := Decode(strings.NewReader(""))
		assert.ErrorIs(t, err, ErrParse)
	})

	t.Run("missing column", func(t *testing.T) {
		_, err := Decode(strings.NewReader("ano,cargo\n2023,x\n"))
		assert.ErrorIs(t, err, ErrParse)
		assert.Contains(t, err.Error(), "usd")
	})

	t.Run("bad salary names line and column", func(t *testing.T) {
		in := strings.Join(Columns, ",") + "\n2023,a,b,c,d,e,USA,lots\n"
		_, err := Decode(strings.NewReader(in))
		assert.ErrorIs(t, err, ErrParse)
		assert.Contains(t, err.Error(), "line 2 column usd")
	})

	t.Run("bad year", func(t *testing.T) {
		in := strings.Join(Columns, ",") + "\n2023.5,a,b,c,d,e,USA,1\n"
		_, err := Decode(strings.NewReader(in))
		assert.ErrorIs(t, err, ErrParse)
		assert.Contains(t, err.Error(), "column ano")
	})
}

func TestParseYear(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{in: "2020", want: 2020},
		{in: "2021.0", want: 2021},
		{in: "", wantErr: true},
		{in: "abc", wantErr: true},
		{in: "2021.25", wantErr: true},
		{in: "1e300", wantErr: true},
		{in: "-1e300", wantErr: true},
		{in: "99999999999999999999", wantErr: true},
		{in: "9999999999", wantErr: true},
		{in: "2.0e3", want: 2000},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseYear(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCheckSalary(t *testing.T) {
	assert.NoError(t, CheckSalary(120000))
	assert.NoError(t, CheckSalary(0))
	assert.Error(t, CheckSalary(math.NaN()))
	assert.Error(t, CheckSalary(math.Inf(1)))
	assert.Error(t, CheckSalary(math.Inf(-1)))
}
