package domain

import (
	"time"

	"github.com/google/uuid"
)

// ScanRecordID uniquely identifies a scan record.
type ScanRecordID uuid.UUID

// ScanRecord is an audit entry for a decoded code, trusted or not.
type ScanRecord struct {
	// ID is assigned by the storage layer.
	ID ScanRecordID
	// Text is the decoded content, trimmed.
	Text string
	// Channel is the input the code was decoded from.
	Channel Channel
	// Trusted reports whether Text passed the domain whitelist.
	Trusted bool
	// CreatedAt is assigned by the storage layer.
	CreatedAt time.Time
}
