package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"strings"

	"github.com/jackc/pgx/v5"

	"salarydash/internal/dataset"
	"salarydash/internal/model"
	"salarydash/internal/repository"
)

var tableName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)?$`)

// RecordPostgres is a read-only PostgreSQL source for the salary table.
// It uses database/sql with a single SELECT and contains no business logic.
type RecordPostgres struct {
	db     *sql.DB
	table  string
	source string
	query  string
}

var _ repository.RecordRepository = (*RecordPostgres)(nil)

// NewRecordPostgres creates a source reading every row of table, optionally schema-qualified.
// source is the locator shown in logs and should already be redacted.
func NewRecordPostgres(db *sql.DB, table, source string) (*RecordPostgres, error) {
	if !tableName.MatchString(table) {
		return nil, fmt.Errorf("invalid table name %q", table)
	}
	ident := pgx.Identifier(strings.Split(table, ".")).Sanitize()
	return &RecordPostgres{
		db:     db,
		table:  table,
		source: source,
		query: `
		SELECT ano, senioridade, contrato, tamanho_empresa, cargo, remoto, residencia_iso3, usd
		FROM ` + ident,
	}, nil
}

// LoadAll returns every row of the table in physical order.
func (r *RecordPostgres) LoadAll(ctx context.Context) ([]model.Record, error) {
	rows, err := r.db.QueryContext(ctx, r.query)
	if err != nil {
		return nil, fmt.Errorf("%w: query %s: %v", dataset.ErrRetrieval, r.table, err)
	}
	defer rows.Close()

	items := make([]model.Record, 0)
	for rows.Next() {
		var rec model.Record
		if err := rows.Scan(
			&rec.Year,
			&rec.Seniority,
			&rec.Contract,
			&rec.CompanySize,
			&rec.JobTitle,
			&rec.Remote,
			&rec.CountryISO3,
			&rec.SalaryUSD,
		); err != nil {
			return nil, fmt.Errorf("%w: scan %s: %v", dataset.ErrParse, r.table, err)
		}
		if err := dataset.CheckSalary(rec.SalaryUSD); err != nil {
			return nil, fmt.Errorf("%w: %s row %d column usd: %v", dataset.ErrParse, r.table, len(items)+1, err)
		}
		items = append(items, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate %s: %v", dataset.ErrRetrieval, r.table, err)
	}
	return items, nil
}

// Source returns the redacted locator.
func (r *RecordPostgres) Source() string { return r.source }

// Kind returns "postgres".
func (r *RecordPostgres) Kind() string { return "postgres" }
