package history

import (
	"context"
	"qrscanner/pkg/serrors"
	"qrscanner/pkg/storage"
	"time"
)

const (
	// DefaultPageSize is used when no limit is given.
	DefaultPageSize = 20
	// MaxPageSize caps a single page.
	MaxPageSize = 100
)

// Service reads the scan history.
type Service struct {
	storage storage.ScanRecordStorage
}

// NewService creates a Service.
func NewService(s storage.ScanRecordStorage) *Service {
	return &Service{storage: s}
}

// Recent returns a page of records, newest first. A zero limit selects
// DefaultPageSize; larger limits are capped to MaxPageSize.
func (s *Service) Recent(ctx context.Context,
	filter storage.ScanRecordFilter,
	cursor time.Time,
	limit uint) (storage.ScanRecords, error) {
	if s == nil || s.storage == nil {
		return storage.ScanRecords{}, serrors.With(serrors.ErrUnavailable, "scan history is disabled")
	}

	switch {
	case limit == 0:
		limit = DefaultPageSize
	case limit > MaxPageSize:
		limit = MaxPageSize
	}

	page, err := s.storage.RecentScanRecords(ctx, filter, cursor, limit)
	if err != nil {
		return storage.ScanRecords{}, serrors.Wrap(serrors.ErrInternal, err, "could not list scan history")
	}

	return page, nil
}
