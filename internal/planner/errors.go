package planner

import (
	"fmt"
	"strings"

	"github.com/pedrohba/gradeplan/internal/pkg/apperrors"
)

// CycleError reports a prerequisite cycle among not-yet-completed courses.
// It is raised before any model is built; handing a contradictory precedence
// structure to the solver would only yield an unexplained "infeasible".
type CycleError struct {
	Members []string // in cycle order
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("prerequisite cycle: %s", strings.Join(e.Members, " -> "))
}

func (e *CycleError) Unwrap() error { return apperrors.ErrInvalidInput }

// MissingOfferingError reports a required course (or a remaining prerequisite
// of one) that has no offering anywhere in the horizon and therefore can never
// be scheduled.
type MissingOfferingError struct {
	CourseID string
	Blocked  []string // required courses that depend on it, empty if CourseID itself is required
}

func (e *MissingOfferingError) Error() string {
	if len(e.Blocked) == 0 {
		return fmt.Sprintf("required course %s has no offering in the planning horizon", e.CourseID)
	}
	return fmt.Sprintf("prerequisite %s has no offering in the planning horizon, blocking %s",
		e.CourseID, strings.Join(e.Blocked, ", "))
}

func (e *MissingOfferingError) Unwrap() error { return apperrors.ErrInvalidInput }

// UnknownCourseError reports a dangling course id reference in the caller's
// input (completed set or prerequisite list).
type UnknownCourseError struct {
	ID  string
	Ref string // where the id was referenced from
}

func (e *UnknownCourseError) Error() string {
	return fmt.Sprintf("unknown course id %s referenced by %s", e.ID, e.Ref)
}

func (e *UnknownCourseError) Unwrap() error { return apperrors.ErrInvalidInput }

// SolverError wraps a fault of the external solver. Never produced for
// ordinary infeasibility or timeouts.
type SolverError struct {
	Op  string
	Err error
}

func (e *SolverError) Error() string {
	return fmt.Sprintf("solver fault during %s: %v", e.Op, e.Err)
}

func (e *SolverError) Unwrap() error { return apperrors.ErrSolverFault }
