package postgres

import (
	"context"
	"errors"
	"math"
	"testing"

	"salarydash/internal/dataset"
	"salarydash/internal/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var columns = []string{"ano", "senioridade", "contrato", "tamanho_empresa", "cargo", "remoto", "residencia_iso3", "usd"}

func TestNewRecordPostgres_TableName(t *testing.T) {
	_, err := NewRecordPostgres(nil, "salaries; DROP TABLE x", "postgres://db")
	assert.Error(t, err)

	repo, err := NewRecordPostgres(nil, "analytics.salaries", "postgres://db")
	require.NoError(t, err)
	assert.Contains(t, repo.query, `FROM "analytics"."salaries"`)
	assert.Equal(t, "postgres", repo.Kind())
	assert.Equal(t, "postgres://db", repo.Source())
}

func TestRecordPostgres_LoadAll(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo, err := NewRecordPostgres(db, "salaries", "postgres://db/salaries")
	require.NoError(t, err)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		rows := sqlmock.NewRows(columns).
			AddRow(2023, "senior", "integral", "grande", "Data Scientist", "remoto", "USA", 120000.0).
			AddRow(2022, "junior", "integral", "pequena", "Analyst", "presencial", "BRA", 40000.0)

		mock.ExpectQuery(`SELECT (.+) FROM "salaries"`).WillReturnRows(rows)

		recs, err := repo.LoadAll(ctx)

		assert.NoError(t, err)
		require.Len(t, recs, 2)
		assert.Equal(t, model.Record{
			Year: 2023, Seniority: "senior", Contract: "integral", CompanySize: "grande",
			JobTitle: "Data Scientist", Remote: "remoto", CountryISO3: "USA", SalaryUSD: 120000,
		}, recs[0])
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("query error", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM "salaries"`).WillReturnError(errors.New("relation does not exist"))

		recs, err := repo.LoadAll(ctx)

		assert.ErrorIs(t, err, dataset.ErrRetrieval)
		assert.Nil(t, recs)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("scan error", func(t *testing.T) {
		rows := sqlmock.NewRows(columns).
			AddRow("not-a-year", "senior", "integral", "grande", "Data Scientist", "remoto", "USA", 1.0)
		mock.ExpectQuery(`SELECT (.+) FROM "salaries"`).WillReturnRows(rows)

		_, err := repo.LoadAll(ctx)

		assert.ErrorIs(t, err, dataset.ErrParse)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("non-finite usd", func(t *testing.T) {
		rows := sqlmock.NewRows(columns).
			AddRow(2023, "senior", "integral", "grande", "Data Scientist", "remoto", "USA", 120000.0).
			AddRow(2023, "senior", "integral", "grande", "Data Scientist", "remoto", "USA", math.NaN())
		mock.ExpectQuery(`SELECT (.+) FROM "salaries"`).WillReturnRows(rows)

		recs, err := repo.LoadAll(ctx)

		assert.ErrorIs(t, err, dataset.ErrParse)
		assert.ErrorContains(t, err, "row 2 column usd")
		assert.Nil(t, recs)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("row iteration error", func(t *testing.T) {
		rows := sqlmock.NewRows(columns).
			AddRow(2023, "senior", "integral", "grande", "Data Scientist", "remoto", "USA", 1.0).
			RowError(0, errors.New("connection reset"))
		mock.ExpectQuery(`SELECT (.+) FROM "salaries"`).WillReturnRows(rows)

		_, err := repo.LoadAll(ctx)

		assert.ErrorIs(t, err, dataset.ErrRetrieval)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
