package application

import (
	"github.com/alimadkour96/4a8lny/internal/errs"
	"github.com/alimadkour96/4a8lny/internal/model"
	"github.com/alimadkour96/4a8lny/internal/utilities"
)

// transitions lists the statuses reachable from each status. Terminal statuses have no entry.
var transitions = map[string][]string{
	model.ApplicationStatusPending: {
		model.ApplicationStatusUnderReview,
		model.ApplicationStatusWithdrawn,
		model.ApplicationStatusRejected,
	},
	model.ApplicationStatusUnderReview: {
		model.ApplicationStatusShortlisted,
		model.ApplicationStatusRejected,
		model.ApplicationStatusWithdrawn,
	},
	model.ApplicationStatusShortlisted: {
		model.ApplicationStatusInterviewScheduled,
		model.ApplicationStatusRejected,
		model.ApplicationStatusWithdrawn,
	},
	model.ApplicationStatusInterviewScheduled: {
		model.ApplicationStatusInterviewCompleted,
		model.ApplicationStatusRejected,
		model.ApplicationStatusWithdrawn,
	},
	model.ApplicationStatusInterviewCompleted: {
		model.ApplicationStatusHired,
		model.ApplicationStatusRejected,
	},
}

// NextStatuses returns the statuses an application in from may move to.
func NextStatuses(from string) []string {
	return transitions[from]
}

// IsTerminal reports whether no transition leaves s.
func IsTerminal(s string) bool {
	return len(transitions[s]) == 0
}

// CheckTransition returns a ValidationError for an unknown target status and
// InvalidTransition when to is not reachable from from in one step.
func CheckTransition(from, to string) error {
	if !utilities.Contains(model.ApplicationStatuses, to) {
		return errs.Validation("Invalid status: %s", to)
	}
	if !utilities.Contains(transitions[from], to) {
		return errs.InvalidTransition("Cannot change status from %s to %s", from, to)
	}
	return nil
}

// CanWithdraw reports whether the applicant may still withdraw from status s.
// Interview Completed is withdrawable even though Withdrawn is not among its forward transitions.
func CanWithdraw(s string) bool {
	switch s {
	case model.ApplicationStatusHired, model.ApplicationStatusRejected, model.ApplicationStatusWithdrawn:
		return false
	default:
		return true
	}
}
