package storage

import "qrscanner/pkg/serrors"

// Transaction misuse errors returned by storage implementations.
var (
	// ErrAlreadyInTx is returned when Begin is called on a transactional handle.
	ErrAlreadyInTx = serrors.With(serrors.ErrConflict, "already in tx")
	// ErrNotInTx is returned when Commit or Rollback is called outside a
	// transaction.
	ErrNotInTx = serrors.With(serrors.ErrConflict, "not in tx")
)
