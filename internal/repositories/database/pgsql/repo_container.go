package pgsql

import (
	portsrepo "github.com/editorialops/edit_tracking_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	recordRepo := newPgxRecordRepository(dbPool)
	ledgerRepo := newPgxLedgerRepository(dbPool)
	userRepo := newPgxUserRepository(dbPool)
	reportingRepo := newReportingRepository(dbPool)

	return portsrepo.RepositoryProvider{
		RecordRepo:    recordRepo,
		LedgerRepo:    ledgerRepo,
		UserRepo:      userRepo,
		ReportingRepo: reportingRepo,
	}
}
