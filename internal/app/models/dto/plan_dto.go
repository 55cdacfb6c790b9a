package dto

import (
	"github.com/pedrohba/gradeplan/internal/app/models"
)

// CreatePlanRequest represents a plan optimization request. Every field except
// the completed set is optional and falls back to the configured defaults.
type CreatePlanRequest struct {
	CompletedCourses  []string       `json:"completedCourses"`
	Horizon           *int           `json:"horizon,omitempty" binding:"omitempty,gt=0"`
	MinCreditsPerTerm *int           `json:"minCreditsPerTerm,omitempty" binding:"omitempty,gte=0"`
	MaxCreditsPerTerm *int           `json:"maxCreditsPerTerm,omitempty" binding:"omitempty,gt=0"`
	TermOneParity     *string        `json:"termOneParity,omitempty" binding:"omitempty,oneof=ODD EVEN odd even"`
	SolveTimeLimitSec *int           `json:"solveTimeLimitSeconds,omitempty" binding:"omitempty,gt=0"`
	TieBreak          *string        `json:"tieBreak,omitempty" binding:"omitempty,oneof=front_load none"`
	ElectiveMinima    map[string]int `json:"electiveMinima,omitempty"`
}

// ScheduledCourseResponse represents one course placed in a term
type ScheduledCourseResponse struct {
	CourseID   string   `json:"courseId" example:"CS101"`
	Name       string   `json:"name" example:"Introduction to Programming"`
	Credits    int      `json:"credits" example:"4"`
	OfferingID string   `json:"offeringId" example:"CS101-A"`
	Section    string   `json:"section" example:"A"`
	Slots      []string `json:"slots" example:"MON 08:00-10:00,WED 08:00-10:00"`
}

// TermPlanResponse represents the courses assigned to one future term
type TermPlanResponse struct {
	Term    int                       `json:"term" example:"1"`
	Credits int                       `json:"credits" example:"18"`
	Courses []ScheduledCourseResponse `json:"courses"`
}

// PlanResponse represents the outcome of one optimization run
type PlanResponse struct {
	PlanID      string             `json:"planId" example:"550e8400-e29b-41d4-a716-446655440000"`
	Status      string             `json:"status" example:"OPTIMAL" enums:"OPTIMAL,BEST_EFFORT,INFEASIBLE"`
	Terms       []TermPlanResponse `json:"terms"`
	TotalTerms  int                `json:"totalTerms" example:"8"`
	Warnings    []string           `json:"warnings,omitempty"`
	Diagnostics []string           `json:"diagnostics,omitempty"`
	SolveTimeMs int64              `json:"solveTimeMs" example:"1532"`
}

// NewPlanResponse maps a plan result onto the response shape
func NewPlanResponse(planID string, result *models.PlanResult) *PlanResponse {
	resp := &PlanResponse{
		PlanID:      planID,
		Status:      string(result.Status),
		Terms:       make([]TermPlanResponse, 0, len(result.Terms)),
		TotalTerms:  result.TotalTerms,
		Warnings:    result.Warnings,
		Diagnostics: result.Diagnostics,
		SolveTimeMs: result.SolveTime.Milliseconds(),
	}
	for _, term := range result.Terms {
		tp := TermPlanResponse{
			Term:    term.Term,
			Credits: term.Credits,
			Courses: make([]ScheduledCourseResponse, 0, len(term.Courses)),
		}
		for _, course := range term.Courses {
			tp.Courses = append(tp.Courses, ScheduledCourseResponse{
				CourseID:   course.CourseID,
				Name:       course.Name,
				Credits:    course.Credits,
				OfferingID: course.OfferingID,
				Section:    course.Section,
				Slots:      course.Slots,
			})
		}
		resp.Terms = append(resp.Terms, tp)
	}
	return resp
}
