package postgres

import (
	"context"
	"fmt"
	"qrscanner/pkg/domain"
	"qrscanner/pkg/storage"
	"time"

	"github.com/doug-martin/goqu/v9"
)

const (
	scanRecordsTable = "scan_records"
)

func (p *PgSQL) StoreScanRecords(ctx context.Context, records ...domain.ScanRecord) ([]domain.ScanRecord, error) {
	if len(records) == 0 {
		return nil, nil
	}

	var result []PgScanRecord
	if err := p.Builder.Insert(scanRecordsTable).
		Rows(domainRecordsToPg(records)).
		Returning(&PgScanRecord{}).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store scan records into pg: %w", err)
	}

	return pgRecordsToDomain(result), nil
}

// RecentScanRecords returns a page ordered by created_at DESC, id DESC.
func (p *PgSQL) RecentScanRecords(ctx context.Context,
	filter storage.ScanRecordFilter,
	cursor time.Time,
	limit uint) (storage.ScanRecords, error) {
	var w []goqu.Expression
	if filter.Trusted != nil {
		w = append(w, goqu.I("trusted").Eq(*filter.Trusted))
	}
	if filter.Channel != "" {
		w = append(w, goqu.I("channel").Eq(string(filter.Channel)))
	}
	if !cursor.IsZero() {
		w = append(w, goqu.I("created_at").Lt(cursor))
	}

	// one extra row tells whether there is a next page
	ds := p.Builder.From(scanRecordsTable).
		Where(w...).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(limit + 1)

	var rows []PgScanRecord
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.ScanRecords{}, fmt.Errorf("could not fetch scan records from pg: %w", err)
	}

	var nextCursor *time.Time
	if uint(len(rows)) > limit {
		rows = rows[:limit]
		if limit > 0 {
			nextCursor = &rows[len(rows)-1].CreatedAt
		}
	}

	return storage.ScanRecords{
		Records:    pgRecordsToDomain(rows),
		NextCursor: nextCursor,
	}, nil
}

func (p *PgSQL) DeleteScanRecordsBefore(ctx context.Context, t time.Time) (int64, error) {
	res, err := p.Builder.Delete(scanRecordsTable).
		Where(goqu.I("created_at").Lt(t)).
		Executor().ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not delete old scan records in pg: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("could not count deleted scan records: %w", err)
	}

	return n, nil
}

func (p *PgSQL) TrimScanRecords(ctx context.Context, keep uint) (int64, error) {
	ds := p.Builder.Delete(scanRecordsTable)
	// goqu treats a zero limit as no limit
	if keep > 0 {
		newest := p.Builder.From(scanRecordsTable).
			Select("id").
			Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
			Limit(keep)
		ds = ds.Where(goqu.I("id").NotIn(newest))
	}

	res, err := ds.Executor().ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not trim scan records in pg: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("could not count trimmed scan records: %w", err)
	}

	return n, nil
}
