package postgres

import (
	"qrscanner/pkg/domain"
	"time"

	"github.com/google/uuid"
)

// PgScanRecord is the row layout of the scan_records table.
type PgScanRecord struct {
	ID        uuid.UUID `db:"id"         goqu:"skipinsert"`
	Text      string    `db:"text"`
	Channel   string    `db:"channel"`
	Trusted   bool      `db:"trusted"`
	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgScanRecord) ToDomain() domain.ScanRecord {
	return domain.ScanRecord{
		ID:        domain.ScanRecordID(p.ID),
		Text:      p.Text,
		Channel:   domain.Channel(p.Channel),
		Trusted:   p.Trusted,
		CreatedAt: p.CreatedAt,
	}
}

func (p *PgScanRecord) FromDomain(record domain.ScanRecord) {
	*p = PgScanRecord{
		ID:        uuid.UUID(record.ID),
		Text:      record.Text,
		Channel:   string(record.Channel),
		Trusted:   record.Trusted,
		CreatedAt: record.CreatedAt,
	}
}

func domainRecordsToPg(records []domain.ScanRecord) []PgScanRecord {
	out := make([]PgScanRecord, len(records))
	for i := range out {
		out[i].FromDomain(records[i])
	}

	return out
}

func pgRecordsToDomain(records []PgScanRecord) []domain.ScanRecord {
	out := make([]domain.ScanRecord, 0, len(records))
	for _, record := range records {
		out = append(out, record.ToDomain())
	}

	return out
}
