// Package locator picks the dataset source implementation from the configured URL scheme.
package locator

import (
	"fmt"
	"net/url"
	"strings"

	"salarydash/internal/config"
	"salarydash/internal/database"
	"salarydash/internal/repository"
	"salarydash/internal/repository/httpcsv"
	"salarydash/internal/repository/objectstore"
	"salarydash/internal/repository/postgres"
	"salarydash/internal/storage"
)

// Seams for tests.
var (
	newPostgres = database.NewPostgres
	newMinIO    = storage.NewMinIO
)

// Open builds the source for cfg.Dataset.URL. The returned close function
// releases any connection the source holds and is never nil.
func Open(cfg *config.AppConfig) (repository.RecordRepository, func() error, error) {
	noop := func() error { return nil }

	u, err := url.Parse(cfg.Dataset.URL)
	if err != nil {
		return nil, noop, fmt.Errorf("parse dataset url: %w", err)
	}

	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		return httpcsv.NewRecordHTTP(u.String(), Redact(u), nil), noop, nil

	case "s3":
		bucket := u.Host
		key := strings.TrimPrefix(u.Path, "/")
		if bucket == "" || key == "" {
			return nil, noop, fmt.Errorf("s3 dataset url must be s3://bucket/key")
		}
		store, err := newMinIO(cfg.MinIO)
		if err != nil {
			return nil, noop, fmt.Errorf("initialize object storage: %w", err)
		}
		return objectstore.NewRecordObjectStore(store, bucket, key), noop, nil

	case "postgres", "postgresql":
		db, err := newPostgres(cfg.Dataset.URL, cfg.Database)
		if err != nil {
			return nil, noop, fmt.Errorf("connect to database: %w", err)
		}
		repo, err := postgres.NewRecordPostgres(db, cfg.Dataset.Table, Redact(u))
		if err != nil {
			_ = db.Close()
			return nil, noop, err
		}
		return repo, db.Close, nil

	default:
		return nil, noop, fmt.Errorf("unsupported dataset url scheme %q", u.Scheme)
	}
}

// Redact returns u without userinfo, query or fragment, safe to log and to show on the page.
// Presigned URLs and DSN options carry secrets in the query, so it goes too.
func Redact(u *url.URL) string {
	c := *u
	c.User = nil
	c.RawQuery = ""
	c.ForceQuery = false
	c.Fragment = ""
	c.RawFragment = ""
	return c.String()
}
