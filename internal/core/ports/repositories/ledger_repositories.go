package repositories

import (
	"context"

	"github.com/editorialops/edit_tracking_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerReader defines read operations over the append-only time ledger.
type LedgerReader interface {
	// FindEntriesByRecordID retrieves all closed intervals for a record,
	// ordered by start time.
	FindEntriesByRecordID(ctx context.Context, recordID int64) ([]domain.LedgerEntry, error)

	// SumHoursByRecordID returns the closed-interval totals for a record,
	// keyed by status. Statuses with no entries are absent from the map.
	SumHoursByRecordID(ctx context.Context, recordID int64) (map[domain.RecordStatus]decimal.Decimal, error)
}

// LedgerRepositoryFacade combines ledger repository interfaces. Appends and
// purges happen only inside the record repository's transition and deletion
// transactions, so no standalone write methods are exposed here.
type LedgerRepositoryFacade interface {
	LedgerReader
}
