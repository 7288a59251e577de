//go:generate mockgen -destination=../mocks/store.go -package=mocks github.com/bitmark-inc/diabetaku-api/store DatasetSource

// Package store loads the reference dataset from its storage backends.
package store

import (
	"context"
	"time"

	"github.com/bitmark-inc/diabetaku-api/schema"
)

const (
	SourceCSV      = "csv"
	SourceMongo    = "mongo"
	SourcePostgres = "postgres"

	defaultTimeout = 30 * time.Second
)

// DatasetSource reads every reference record from a backend and returns the
// validated dataset
type DatasetSource interface {
	Load(ctx context.Context) (*schema.Dataset, error)
}

// RecordWriter stores reference records, used by the import tool
type RecordWriter interface {
	Import(ctx context.Context, records []schema.Record) error
}

// Closer - close db connection
type Closer interface {
	Close()
}
