// Package storage defines the persistence ports of the scan history: scan
// records and the background jobs that maintain them.
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

import (
	"context"
	"qrscanner/pkg/domain"
	"time"

	"github.com/riverqueue/river"
)

// AllStorage groups every capability available both inside and outside a
// transaction.
type AllStorage interface {
	ScanRecordStorage
	JobStorage
}

// TxStorage is a storage handle bound to a database transaction. It is unusable
// after Commit or Rollback.
type TxStorage interface {
	AllStorage

	Commit() error
	Rollback() error
}

// Storage is a non-transactional storage handle.
type Storage interface {
	AllStorage

	// Close releases the connection pool.
	Close() error

	// Begin starts a transaction.
	Begin(ctx context.Context) (TxStorage, error)
	// WithTx runs cb in a transaction, committing when cb returns nil and
	// rolling back otherwise.
	WithTx(ctx context.Context, cb func(storage AllStorage) error) error
}

// ScanRecordFilter narrows a history query.
type ScanRecordFilter struct {
	// Trusted, when set, keeps only records with that verdict.
	Trusted *bool
	// Channel, when set, keeps only records decoded from that input.
	Channel domain.Channel
}

// ScanRecords is a page of scan records, newest first.
type ScanRecords struct {
	Records []domain.ScanRecord
	// NextCursor is the created_at to pass for the next page, or nil on the
	// last page.
	NextCursor *time.Time
}

// ScanRecordStorage persists the scan history.
type ScanRecordStorage interface {
	// StoreScanRecords inserts records and returns them with their generated
	// ID and CreatedAt.
	StoreScanRecords(ctx context.Context, records ...domain.ScanRecord) ([]domain.ScanRecord, error)
	// RecentScanRecords returns up to limit records created before cursor (or
	// the newest ones when cursor is zero).
	RecentScanRecords(ctx context.Context, filter ScanRecordFilter, cursor time.Time, limit uint) (ScanRecords, error)
	// DeleteScanRecordsBefore deletes records created before t and returns how
	// many were removed.
	DeleteScanRecordsBefore(ctx context.Context, t time.Time) (int64, error)
	// TrimScanRecords keeps the newest keep records and deletes the rest.
	TrimScanRecords(ctx context.Context, keep uint) (int64, error)
}

// JobStorage enqueues background jobs.
type JobStorage interface {
	// AddJob inserts a job. Inside a transaction the job only becomes visible
	// on commit. It reports false when a unique job already existed.
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}
