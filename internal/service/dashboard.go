package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"salarydash/internal/aggregate"
	"salarydash/internal/filter"
	"salarydash/internal/metrics"
	"salarydash/internal/model"
	"salarydash/internal/repository"
)

// NoDataWarning is shown instead of metrics when the selection matches no rows.
const NoDataWarning = "Nenhum dado para os filtros selecionados."

// ErrDatasetUnavailable wraps any failure to fetch or decode the dataset.
var ErrDatasetUnavailable = errors.New("dataset unavailable")

// Options tunes the dashboard pass.
type Options struct {
	TopN            int
	HistogramBins   int
	CountryJobTitle string
	CacheTTL        time.Duration
	FetchTimeout    time.Duration
}

// Dashboard is the result of one full pass over the dataset for a selection.
// When Empty is set only the dataset fields and Warning are populated.
type Dashboard struct {
	Empty           bool                  `json:"empty"`
	Warning         string                `json:"warning,omitempty"`
	Summary         *model.Summary        `json:"summary,omitempty"`
	TopTitles       []model.TitleMean     `json:"top_titles,omitempty"`
	SalaryHistogram []model.HistogramBin  `json:"salary_histogram,omitempty"`
	RemoteCounts    []model.CategoryCount `json:"remote_counts,omitempty"`
	CountryJobTitle string                `json:"country_job_title,omitempty"`
	CountryMeans    []model.CountryMean   `json:"country_means,omitempty"`
	DatasetSource   string                `json:"dataset_source"`
	DatasetLoadedAt time.Time             `json:"dataset_loaded_at"`
	DatasetRecords  int                   `json:"dataset_records"`
}

// RecordPage is the service-level DTO for the paginated detail table.
type RecordPage struct {
	Items []model.Record `json:"data"`
	Total int            `json:"total"`
}

// DashboardService defines the dashboard use cases. Every call recomputes its
// result from the cached dataset; nothing is kept between calls besides the dataset.
type DashboardService interface {
	// Options returns the distinct values offered for each filter field.
	Options(ctx context.Context) (model.FilterOptions, error)

	// Dashboard filters the dataset and computes every aggregate, or reports the empty state.
	Dashboard(ctx context.Context, sel model.Selection) (*Dashboard, error)

	// View returns the filtered rows in dataset order.
	View(ctx context.Context, sel model.Selection) ([]model.Record, error)

	// Records returns one page of the filtered rows using limit/offset.
	Records(ctx context.Context, sel model.Selection, limit, offset int) (*RecordPage, error)

	// Warm loads the dataset if it is not cached yet.
	Warm(ctx context.Context) error

	// Ready reports whether a dataset is cached.
	Ready() bool
}

type dashboardService struct {
	cache   *datasetCache
	opts    Options
	metrics *metrics.Dataset
}

// NewDashboardService constructs a new DashboardService reading from repo.
func NewDashboardService(repo repository.RecordRepository, opts Options, m *metrics.Dataset) DashboardService {
	if opts.TopN <= 0 {
		opts.TopN = 10
	}
	if opts.HistogramBins <= 0 {
		opts.HistogramBins = 30
	}
	return &dashboardService{
		cache:   newDatasetCache(repo, opts.CacheTTL, opts.FetchTimeout, m),
		opts:    opts,
		metrics: m,
	}
}

func (s *dashboardService) dataset(ctx context.Context) (*model.Dataset, error) {
	ds, err := s.cache.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDatasetUnavailable, err)
	}
	return ds, nil
}

func (s *dashboardService) Options(ctx context.Context) (model.FilterOptions, error) {
	ds, err := s.dataset(ctx)
	if err != nil {
		return nil, err
	}
	return filter.Options(ds.Records), nil
}

func (s *dashboardService) View(ctx context.Context, sel model.Selection) ([]model.Record, error) {
	ds, err := s.dataset(ctx)
	if err != nil {
		return nil, err
	}
	view := filter.Apply(ds.Records, sel)
	s.metrics.ObserveView(len(view))
	return view, nil
}

func (s *dashboardService) Dashboard(ctx context.Context, sel model.Selection) (*Dashboard, error) {
	ctx, span := tracer.Start(ctx, "dashboard.compute")
	defer span.End()

	ds, err := s.dataset(ctx)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	view := filter.Apply(ds.Records, sel)
	s.metrics.ObserveView(len(view))
	span.SetAttributes(attribute.Int("dashboard.filtered_rows", len(view)))

	out := &Dashboard{
		DatasetSource:   ds.Source,
		DatasetLoadedAt: ds.LoadedAt,
		DatasetRecords:  ds.Len(),
	}
	// No aggregate runs on an empty view.
	if len(view) == 0 {
		out.Empty = true
		out.Warning = NoDataWarning
		return out, nil
	}

	summary := aggregate.Summarize(view)
	out.Summary = &summary
	out.TopTitles = aggregate.TopTitlesByMean(view, s.opts.TopN)
	out.SalaryHistogram = aggregate.Histogram(view, s.opts.HistogramBins)
	out.RemoteCounts = aggregate.RemoteCounts(view)
	out.CountryJobTitle = s.opts.CountryJobTitle
	out.CountryMeans = aggregate.CountryMeans(view, s.opts.CountryJobTitle)
	return out, nil
}

// Records returns a page of the filtered view.
func (s *dashboardService) Records(ctx context.Context, sel model.Selection, limit, offset int) (*RecordPage, error) {
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}

	view, err := s.View(ctx, sel)
	if err != nil {
		return nil, err
	}

	total := len(view)
	if offset > total {
		offset = total
	}
	// Compare against the remaining rows so a huge limit cannot overflow offset+limit.
	end := total
	if limit < total-offset {
		end = offset + limit
	}
	return &RecordPage{Items: view[offset:end], Total: total}, nil
}

func (s *dashboardService) Warm(ctx context.Context) error {
	_, err := s.dataset(ctx)
	return err
}

func (s *dashboardService) Ready() bool {
	return s.cache.Peek() != nil
}
