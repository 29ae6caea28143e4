package service

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/singleflight"

	"salarydash/internal/logger"
	"salarydash/internal/metrics"
	"salarydash/internal/model"
	"salarydash/internal/repository"
)

var tracer = otel.Tracer("salarydash/internal/service")

// datasetCache memoizes the loaded dataset for the process.
// Concurrent misses share one load; the cached *model.Dataset is never mutated.
type datasetCache struct {
	repo    repository.RecordRepository
	ttl     time.Duration
	timeout time.Duration
	metrics *metrics.Dataset
	now     func() time.Time

	mu    sync.RWMutex
	ds    *model.Dataset
	group singleflight.Group
}

func newDatasetCache(repo repository.RecordRepository, ttl, timeout time.Duration, m *metrics.Dataset) *datasetCache {
	return &datasetCache{
		repo:    repo,
		ttl:     ttl,
		timeout: timeout,
		metrics: m,
		now:     time.Now,
	}
}

// Get returns the cached dataset, loading it on first use or after the TTL expired.
// When a reload fails the previous dataset keeps being served.
func (c *datasetCache) Get(ctx context.Context) (*model.Dataset, error) {
	c.mu.RLock()
	ds := c.ds
	c.mu.RUnlock()

	if ds != nil && !c.expired(ds) {
		return ds, nil
	}

	v, err, _ := c.group.Do("dataset", func() (any, error) {
		return c.load(ctx)
	})
	if err != nil {
		if ds != nil {
			logger.C(ctx).Warn().Err(err).
				Str("event", "dataset_reload_failed").
				Str("source", c.repo.Source()).
				Time("loaded_at", ds.LoadedAt).
				Msg("serving previously loaded dataset")
			return ds, nil
		}
		return nil, err
	}
	return v.(*model.Dataset), nil
}

// Peek returns the cached dataset without loading.
func (c *datasetCache) Peek() *model.Dataset {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.ds
}

func (c *datasetCache) expired(ds *model.Dataset) bool {
	return c.ttl > 0 && c.now().Sub(ds.LoadedAt) >= c.ttl
}

func (c *datasetCache) load(ctx context.Context) (*model.Dataset, error) {
	// The load is shared by every waiting request, so one caller going away must not cancel it.
	ctx = context.WithoutCancel(ctx)
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	ctx, span := tracer.Start(ctx, "dataset.load")
	defer span.End()
	span.SetAttributes(
		attribute.String("dataset.source_kind", c.repo.Kind()),
		attribute.String("dataset.source", c.repo.Source()),
	)

	log := logger.C(ctx)
	start := c.now()
	records, err := c.repo.LoadAll(ctx)
	took := c.now().Sub(start)
	c.metrics.ObserveLoad(c.repo.Kind(), err, took, len(records))

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "dataset load failed")
		log.Error().Err(err).
			Str("event", "dataset_load_failed").
			Str("source", c.repo.Source()).
			Int64("duration_ms", took.Milliseconds()).
			Msg("dataset load failed")
		return nil, err
	}

	ds := &model.Dataset{
		Records:  records,
		Source:   c.repo.Source(),
		LoadedAt: c.now(),
	}
	span.SetAttributes(attribute.Int("dataset.records", len(records)))
	log.Info().
		Str("event", "dataset_loaded").
		Str("source", ds.Source).
		Int("records", len(records)).
		Int64("duration_ms", took.Milliseconds()).
		Msg("dataset loaded")

	c.mu.Lock()
	c.ds = ds
	c.mu.Unlock()
	return ds, nil
}
