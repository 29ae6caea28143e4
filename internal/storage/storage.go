package storage

import (
	"context"
	"io"
	"time"
)

// Package storage contains read access to S3-compatible object stores.
// Implementations stream object bodies and never buffer them to local disk.

// ObjectInfo contains basic information about an object in storage.
type ObjectInfo struct {
	Key          string
	Size         int64
	ETag         string
	ContentType  string
	LastModified time.Time
}

// Storage is a read-only, S3-compatible object storage client interface.
type Storage interface {
	// Get retrieves an object's content as a streaming reader alongside its info.
	Get(ctx context.Context, bucket, key string) (io.ReadCloser, ObjectInfo, error)
}
