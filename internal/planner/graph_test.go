package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pedrohba/gradeplan/internal/app/models"
	"github.com/pedrohba/gradeplan/internal/pkg/apperrors"
)

func mandatory(id string, credits int, prereqs ...string) *models.Course {
	return &models.Course{ID: id, Name: id, Credits: credits, Category: models.CategoryMandatory, Prerequisites: prereqs}
}

func elective(id string, credits int, prereqs ...string) *models.Course {
	return &models.Course{ID: id, Name: id, Credits: credits, Category: models.CategoryFreeElective, Prerequisites: prereqs}
}

func everyTerm(courseID, section string, slots ...models.TimeSlot) *models.Offering {
	return &models.Offering{
		ID:           courseID + "-" + section,
		CourseID:     courseID,
		Section:      section,
		Slots:        slots,
		Availability: models.Availability{Mode: models.AvailEveryTerm},
	}
}

func mustCatalog(t *testing.T, courses []*models.Course, offerings []*models.Offering) *models.Catalog {
	t.Helper()
	catalog, err := models.NewCatalog(courses, offerings)
	require.NoError(t, err)
	return catalog
}

func TestBuildPrecedenceGraph_Basic(t *testing.T) {
	catalog := mustCatalog(t,
		[]*models.Course{mandatory("A", 4), mandatory("B", 4, "A")},
		[]*models.Offering{everyTerm("A", "1"), everyTerm("B", "1")},
	)

	graph, err := BuildPrecedenceGraph(catalog, nil)
	require.NoError(t, err)
	assert.Len(t, graph.Remaining, 2)
	assert.Equal(t, []string{"B"}, graph.Dependents["A"])
	assert.Empty(t, graph.Warnings)
}

func TestBuildPrecedenceGraph_CompletedPrerequisiteDropsEdge(t *testing.T) {
	catalog := mustCatalog(t,
		[]*models.Course{mandatory("A", 4), mandatory("B", 4, "A")},
		[]*models.Offering{everyTerm("A", "1"), everyTerm("B", "1")},
	)

	graph, err := BuildPrecedenceGraph(catalog, models.NewCompletedSet("A"))
	require.NoError(t, err)
	assert.Len(t, graph.Remaining, 1)
	assert.NotContains(t, graph.Remaining, "A")
	assert.Empty(t, graph.Dependents["A"])
}

func TestBuildPrecedenceGraph_UnknownCompletedCourse(t *testing.T) {
	catalog := mustCatalog(t,
		[]*models.Course{mandatory("A", 4)},
		[]*models.Offering{everyTerm("A", "1")},
	)

	_, err := BuildPrecedenceGraph(catalog, models.NewCompletedSet("NOPE"))
	require.Error(t, err)

	var unknown *UnknownCourseError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "NOPE", unknown.ID)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestBuildPrecedenceGraph_Cycle(t *testing.T) {
	catalog := mustCatalog(t,
		[]*models.Course{mandatory("A", 4, "B"), mandatory("B", 4, "A")},
		[]*models.Offering{everyTerm("A", "1"), everyTerm("B", "1")},
	)

	_, err := BuildPrecedenceGraph(catalog, nil)
	require.Error(t, err)

	var cycle *CycleError
	require.ErrorAs(t, err, &cycle)
	assert.ElementsMatch(t, []string{"A", "B"}, cycle.Members)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestBuildPrecedenceGraph_CycleBrokenByCompletion(t *testing.T) {
	catalog := mustCatalog(t,
		[]*models.Course{mandatory("A", 4, "B"), mandatory("B", 4, "A")},
		[]*models.Offering{everyTerm("A", "1"), everyTerm("B", "1")},
	)

	// Completing one member leaves no cycle among remaining courses.
	graph, err := BuildPrecedenceGraph(catalog, models.NewCompletedSet("A"))
	require.NoError(t, err)
	assert.Len(t, graph.Remaining, 1)
}

func TestBuildPrecedenceGraph_RequiredCourseWithoutOffering(t *testing.T) {
	catalog := mustCatalog(t,
		[]*models.Course{mandatory("A", 4)},
		nil,
	)

	_, err := BuildPrecedenceGraph(catalog, nil)
	require.Error(t, err)

	var missing *MissingOfferingError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "A", missing.CourseID)
}

func TestBuildPrecedenceGraph_OfferinglessPrerequisiteOfRequired(t *testing.T) {
	catalog := mustCatalog(t,
		[]*models.Course{elective("F", 3), mandatory("E", 4, "F")},
		[]*models.Offering{everyTerm("E", "1")},
	)

	_, err := BuildPrecedenceGraph(catalog, nil)
	require.Error(t, err)

	var missing *MissingOfferingError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "F", missing.CourseID)
	assert.Equal(t, []string{"E"}, missing.Blocked)
}

func TestBuildPrecedenceGraph_OfferinglessElectiveWarnsOnly(t *testing.T) {
	catalog := mustCatalog(t,
		[]*models.Course{mandatory("A", 4), elective("X", 3)},
		[]*models.Offering{everyTerm("A", "1")},
	)

	graph, err := BuildPrecedenceGraph(catalog, nil)
	require.NoError(t, err)
	require.Len(t, graph.Warnings, 1)
	assert.Contains(t, graph.Warnings[0], "X")
}
