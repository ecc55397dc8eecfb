package services

import (
	portsrepo "github.com/editorialops/edit_tracking_app/internal/core/ports/repositories"
	portssvc "github.com/editorialops/edit_tracking_app/internal/core/ports/services"
	"github.com/editorialops/edit_tracking_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.UserRepo)
	container.Record = NewRecordService(repos.RecordRepo, repos.UserRepo)
	container.Tracking = NewTrackingService(repos.RecordRepo, repos.LedgerRepo, NewTransitionAuthorizer())
	container.Reporting = NewReportingService(repos.ReportingRepo)

	return container
}

// Compile time interface implementation checks
var (
	_ portssvc.RecordSvcFacade    = (*recordService)(nil)
	_ portssvc.TrackingSvcFacade  = (*trackingService)(nil)
	_ portssvc.ReportingSvcFacade = (*reportingService)(nil)
)
