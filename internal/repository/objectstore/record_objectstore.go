package objectstore

import (
	"context"
	"fmt"

	"salarydash/internal/dataset"
	"salarydash/internal/model"
	"salarydash/internal/repository"
	"salarydash/internal/storage"
)

// RecordObjectStore reads the dataset CSV from one object in an S3-compatible bucket.
type RecordObjectStore struct {
	store  storage.Storage
	bucket string
	key    string
}

var _ repository.RecordRepository = (*RecordObjectStore)(nil)

// NewRecordObjectStore creates an object storage source for s3://bucket/key.
func NewRecordObjectStore(store storage.Storage, bucket, key string) *RecordObjectStore {
	return &RecordObjectStore{store: store, bucket: bucket, key: key}
}

// LoadAll streams the object through the CSV decoder.
func (r *RecordObjectStore) LoadAll(ctx context.Context) ([]model.Record, error) {
	body, _, err := r.store.Get(ctx, r.bucket, r.key)
	if err != nil {
		return nil, fmt.Errorf("%w: get %s: %v", dataset.ErrRetrieval, r.Source(), err)
	}
	defer body.Close()

	return dataset.Decode(body)
}

// Source returns the s3:// locator.
func (r *RecordObjectStore) Source() string { return "s3://" + r.bucket + "/" + r.key }

// Kind returns "s3".
func (r *RecordObjectStore) Kind() string { return "s3" }
