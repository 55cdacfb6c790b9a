package models

import "time"

// PlanStatus describes how trustworthy a returned plan is.
type PlanStatus string

const (
	// PlanOptimal means the plan was proven to use the fewest possible terms.
	PlanOptimal PlanStatus = "OPTIMAL"
	// PlanBestEffort means the time budget expired with a feasible plan in
	// hand but without a proof of optimality.
	PlanBestEffort PlanStatus = "BEST_EFFORT"
	// PlanInfeasible means no plan satisfies the constraints as given.
	PlanInfeasible PlanStatus = "INFEASIBLE"
)

// ScheduledCourse is one course placed in a term, pinned to a concrete section.
type ScheduledCourse struct {
	CourseID   string   `json:"courseId"`
	Name       string   `json:"name"`
	Credits    int      `json:"credits"`
	OfferingID string   `json:"offeringId"`
	Section    string   `json:"section"`
	Slots      []string `json:"slots"`
}

// TermPlan groups the courses assigned to a single future term. Term 1 is the
// student's next term.
type TermPlan struct {
	Term    int               `json:"term"`
	Credits int               `json:"credits"`
	Courses []ScheduledCourse `json:"courses"`
}

// PlanResult is the full outcome of one optimization run.
type PlanResult struct {
	Status      PlanStatus    `json:"status"`
	Terms       []TermPlan    `json:"terms"`
	TotalTerms  int           `json:"totalTerms"`
	Warnings    []string      `json:"warnings,omitempty"`
	Diagnostics []string      `json:"diagnostics,omitempty"`
	SolveTime   time.Duration `json:"-"`
}
