package services

import (
	"github.com/editorialops/edit_tracking_app/internal/core/domain"
	portssvc "github.com/editorialops/edit_tracking_app/internal/core/ports/services"
)

// developerSettable lists the statuses a developer may move their own records
// into. Developers never set BACKLOG or TODO; those belong to planning.
var developerSettable = map[domain.RecordStatus]bool{
	domain.StatusInProgress:   true,
	domain.StatusInReview:     true,
	domain.StatusReviewFailed: true,
	domain.StatusOnHold:       true,
	domain.StatusPublished:    true,
}

// transitionAuthorizer is the permission matrix gating status transitions.
type transitionAuthorizer struct{}

// NewTransitionAuthorizer creates the transition permission matrix.
func NewTransitionAuthorizer() portssvc.TransitionAuthorizerSvc {
	return &transitionAuthorizer{}
}

// Ensure transitionAuthorizer implements portssvc.TransitionAuthorizerSvc
var _ portssvc.TransitionAuthorizerSvc = (*transitionAuthorizer)(nil)

// IsAllowed reports whether role may move a record from current to next.
// Admins and leads may perform any transition. Developers may only act on
// records assigned to them, and only into statuses they own the work for.
// The no-op case (next == current) is rejected for everyone.
func (a *transitionAuthorizer) IsAllowed(role domain.UserRole, current, next domain.RecordStatus, isAssignee bool) bool {
	if next == current {
		return false
	}
	switch role {
	case domain.RoleAdmin, domain.RoleLead:
		return true
	case domain.RoleDeveloper:
		return isAssignee && developerSettable[next]
	}
	return false
}
