package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pedrohba/gradeplan/internal/pkg/apperrors"
)

func validCourse(id string) *Course {
	return &Course{ID: id, Name: id, Credits: 4, Category: CategoryMandatory}
}

func TestNewCatalog_Valid(t *testing.T) {
	catalog, err := NewCatalog(
		[]*Course{validCourse("CS101"), validCourse("CS102")},
		[]*Offering{
			{ID: "CS101-A", CourseID: "CS101", Section: "A", Availability: Availability{Mode: AvailEveryTerm}},
		},
	)
	require.NoError(t, err)
	assert.Equal(t, 2, catalog.Len())
	assert.NotNil(t, catalog.Course("CS101"))
	assert.Nil(t, catalog.Course("NOPE"))
	assert.Len(t, catalog.Offerings("CS101"), 1)
}

func TestNewCatalog_DuplicateCourse(t *testing.T) {
	_, err := NewCatalog([]*Course{validCourse("CS101"), validCourse("CS101")}, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateCourse)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestNewCatalog_DanglingPrerequisite(t *testing.T) {
	course := validCourse("CS102")
	course.Prerequisites = []string{"CS101"}

	_, err := NewCatalog([]*Course{course}, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDanglingPrerequisite)
}

func TestNewCatalog_SelfPrerequisite(t *testing.T) {
	course := validCourse("CS101")
	course.Prerequisites = []string{"CS101"}

	_, err := NewCatalog([]*Course{course}, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSelfPrerequisite)
}

func TestNewCatalog_OrphanOffering(t *testing.T) {
	_, err := NewCatalog(
		[]*Course{validCourse("CS101")},
		[]*Offering{{ID: "X-1", CourseID: "NOPE", Section: "A"}},
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOrphanOffering)
}

func TestNewCatalog_InvalidCredits(t *testing.T) {
	course := validCourse("CS101")
	course.Credits = 0

	_, err := NewCatalog([]*Course{course}, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidCourseCredits)
}

func TestNewCatalog_InvalidSlot(t *testing.T) {
	_, err := NewCatalog(
		[]*Course{validCourse("CS101")},
		[]*Offering{{
			ID: "CS101-A", CourseID: "CS101", Section: "A",
			Slots:        []TimeSlot{{Day: time.Monday, StartMin: 10 * 60, EndMin: 9 * 60}},
			Availability: Availability{Mode: AvailEveryTerm},
		}},
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestCatalog_OfferingsSortedByID(t *testing.T) {
	catalog, err := NewCatalog(
		[]*Course{validCourse("CS101")},
		[]*Offering{
			{ID: "CS101-B", CourseID: "CS101", Section: "B", Availability: Availability{Mode: AvailEveryTerm}},
			{ID: "CS101-A", CourseID: "CS101", Section: "A", Availability: Availability{Mode: AvailEveryTerm}},
		},
	)
	require.NoError(t, err)

	offs := catalog.Offerings("CS101")
	require.Len(t, offs, 2)
	assert.Equal(t, "CS101-A", offs[0].ID)
	assert.Equal(t, "CS101-B", offs[1].ID)
}

func TestCatalog_CompletedCredits(t *testing.T) {
	free := &Course{ID: "HU100", Name: "HU100", Credits: 2, Category: CategoryFreeElective}
	restricted := &Course{ID: "ST210", Name: "ST210", Credits: 3, Category: CategoryRestricted}

	catalog, err := NewCatalog([]*Course{validCourse("CS101"), free, restricted}, nil)
	require.NoError(t, err)

	totals := catalog.CompletedCredits(NewCompletedSet("CS101", "HU100", "ST210"))
	assert.Equal(t, 4, totals[CategoryMandatory])
	assert.Equal(t, 2, totals[CategoryFreeElective])
	assert.Equal(t, 3, totals[CategoryRestricted])
}

func TestPlanningConfig_Validate(t *testing.T) {
	valid := PlanningConfig{
		Horizon:           8,
		MinCreditsPerTerm: 12,
		MaxCreditsPerTerm: 32,
		TermOneParity:     ParityOdd,
		SolveTimeLimit:    time.Minute,
		TieBreak:          TieBreakFrontLoad,
	}
	require.NoError(t, valid.Validate())

	cases := []struct {
		name   string
		mutate func(*PlanningConfig)
	}{
		{"zero horizon", func(c *PlanningConfig) { c.Horizon = 0 }},
		{"horizon too large", func(c *PlanningConfig) { c.Horizon = MaxHorizon + 1 }},
		{"negative min credits", func(c *PlanningConfig) { c.MinCreditsPerTerm = -1 }},
		{"zero max credits", func(c *PlanningConfig) { c.MaxCreditsPerTerm = 0 }},
		{"min above max", func(c *PlanningConfig) { c.MinCreditsPerTerm = 40 }},
		{"bad parity", func(c *PlanningConfig) { c.TermOneParity = "WEEKLY" }},
		{"zero time limit", func(c *PlanningConfig) { c.SolveTimeLimit = 0 }},
		{"bad tie break", func(c *PlanningConfig) { c.TieBreak = "random" }},
		{"minimum for mandatory", func(c *PlanningConfig) {
			c.ElectiveMinima = map[CourseCategory]int{CategoryMandatory: 10}
		}},
		{"negative minimum", func(c *PlanningConfig) {
			c.ElectiveMinima = map[CourseCategory]int{CategoryFreeElective: -1}
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid
			tc.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, apperrors.ErrInvalidConfig)
		})
	}
}
