package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pedrohba/gradeplan/internal/app/models"
)

func TestNewPlanResponse_CarriesDomainStatus(t *testing.T) {
	for _, status := range []models.PlanStatus{models.PlanOptimal, models.PlanBestEffort, models.PlanInfeasible} {
		resp := NewPlanResponse("plan-1", &models.PlanResult{Status: status})
		assert.Equal(t, string(status), resp.Status)
	}
}

func TestNewPlanResponse_MapsTermsAndSolveTime(t *testing.T) {
	result := &models.PlanResult{
		Status: models.PlanOptimal,
		Terms: []models.TermPlan{
			{Term: 1, Credits: 8, Courses: []models.ScheduledCourse{
				{CourseID: "CS101", Name: "Intro", Credits: 4, OfferingID: "CS101-A", Section: "A", Slots: []string{"MON 08:00-10:00"}},
				{CourseID: "MA101", Name: "Calculus", Credits: 4, OfferingID: "MA101-A", Section: "A"},
			}},
		},
		TotalTerms: 1,
		SolveTime:  1500 * time.Millisecond,
	}

	resp := NewPlanResponse("plan-2", result)

	assert.Equal(t, "plan-2", resp.PlanID)
	assert.Equal(t, 1, resp.TotalTerms)
	assert.Equal(t, int64(1500), resp.SolveTimeMs)
	require.Len(t, resp.Terms, 1)
	require.Len(t, resp.Terms[0].Courses, 2)
	assert.Equal(t, 8, resp.Terms[0].Credits)
	assert.Equal(t, "CS101-A", resp.Terms[0].Courses[0].OfferingID)
	assert.Equal(t, []string{"MON 08:00-10:00"}, resp.Terms[0].Courses[0].Slots)
}
