package httpcsv

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	neturl "net/url"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"salarydash/internal/dataset"
	"salarydash/internal/model"
	"salarydash/internal/repository"
)

// maxErrorBody caps how much of a failed response is quoted in the error.
const maxErrorBody = 512

// RecordHTTP loads the dataset with a single GET of a CSV resource.
type RecordHTTP struct {
	url    string
	source string
	client *http.Client
}

var _ repository.RecordRepository = (*RecordHTTP)(nil)

// NewRecordHTTP creates a CSV-over-HTTP source. url is only used for the GET;
// source is what Source reports and must not carry credentials. An empty
// source falls back to url. A nil client gets an OpenTelemetry-instrumented
// default client.
func NewRecordHTTP(url, source string, client *http.Client) *RecordHTTP {
	if client == nil {
		client = &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}
	}
	if source == "" {
		source = url
	}
	return &RecordHTTP{url: url, source: source, client: client}
}

// LoadAll fetches and decodes the CSV. Any non-2xx status is a retrieval error.
func (r *RecordHTTP) LoadAll(ctx context.Context) ([]model.Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", dataset.ErrRetrieval, err)
	}
	req.Header.Set("Accept", "text/csv, text/plain;q=0.9, */*;q=0.5")

	resp, err := r.client.Do(req)
	if err != nil {
		// *url.Error repeats the full URL, query included.
		var uerr *neturl.Error
		if errors.As(err, &uerr) {
			err = uerr.Err
		}
		return nil, fmt.Errorf("%w: GET %s: %v", dataset.ErrRetrieval, r.source, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, fmt.Errorf("%w: GET %s: unexpected status %d: %s", dataset.ErrRetrieval, r.source, resp.StatusCode, snippet)
	}

	return dataset.Decode(resp.Body)
}

// Source returns the display form of the fetched URL.
func (r *RecordHTTP) Source() string { return r.source }

// Kind returns "http".
func (r *RecordHTTP) Kind() string { return "http" }
