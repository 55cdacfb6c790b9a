package planner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pedrohba/gradeplan/internal/app/models"
)

func testConfig() models.PlanningConfig {
	return models.PlanningConfig{
		Horizon:           4,
		MinCreditsPerTerm: 0,
		MaxCreditsPerTerm: 32,
		TermOneParity:     models.ParityOdd,
		SolveTimeLimit:    10 * time.Second,
		TieBreak:          models.TieBreakFrontLoad,
	}
}

func buildTestModel(t *testing.T, catalog *models.Catalog, completed models.CompletedSet, cfg models.PlanningConfig, relax Relaxation) *pbModel {
	t.Helper()
	graph, err := BuildPrecedenceGraph(catalog, completed)
	require.NoError(t, err)
	m, err := buildModel(catalog, graph, cfg, relax)
	require.NoError(t, err)
	return m
}

func TestBuildModel_VariablesPerAvailableTerm(t *testing.T) {
	catalog := mustCatalog(t,
		[]*models.Course{mandatory("A", 4)},
		[]*models.Offering{everyTerm("A", "1")},
	)

	m := buildTestModel(t, catalog, nil, testConfig(), Relaxation{})

	// One uses and one sched var per term, plus one window var per term.
	assert.Len(t, m.uses, 4)
	assert.Len(t, m.sched, 4)
	assert.Len(t, m.window, 4)
	assert.Equal(t, 12, m.numVars)
}

func TestBuildModel_AvailabilityLimitsVariables(t *testing.T) {
	odd := &models.Offering{
		ID: "A-1", CourseID: "A", Section: "1",
		Availability: models.Availability{Mode: models.AvailOddTerms},
	}
	catalog := mustCatalog(t, []*models.Course{mandatory("A", 4)}, []*models.Offering{odd})

	m := buildTestModel(t, catalog, nil, testConfig(), Relaxation{})

	// Horizon 4 with parity ODD leaves terms 1 and 3.
	assert.Len(t, m.sched, 2)
	_, ok := m.sched[schedKey{"A", 1}]
	assert.True(t, ok)
	_, ok = m.sched[schedKey{"A", 2}]
	assert.False(t, ok)
}

func TestBuildModel_RequiredCourseUnschedulableWithinHorizon(t *testing.T) {
	explicit := &models.Offering{
		ID: "A-1", CourseID: "A", Section: "1",
		Availability: models.Availability{Mode: models.AvailExplicit, Terms: []int{6}},
	}
	catalog := mustCatalog(t, []*models.Course{mandatory("A", 4)}, []*models.Offering{explicit})

	graph, err := BuildPrecedenceGraph(catalog, nil)
	require.NoError(t, err)

	_, err = buildModel(catalog, graph, testConfig(), Relaxation{})
	require.Error(t, err)

	var missing *MissingOfferingError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "A", missing.CourseID)
}

func TestBuildModel_ExtraTermsCappedAtMaxHorizon(t *testing.T) {
	catalog := mustCatalog(t,
		[]*models.Course{mandatory("A", 4)},
		[]*models.Offering{everyTerm("A", "1")},
	)

	cfg := testConfig()
	cfg.Horizon = models.MaxHorizon - 1

	m := buildTestModel(t, catalog, nil, cfg, Relaxation{ExtraTerms: 10})
	assert.Equal(t, models.MaxHorizon, m.horizon)
}

func TestBuildModel_RelaxationsShrinkConstraints(t *testing.T) {
	slotA := models.TimeSlot{Day: time.Monday, StartMin: 8 * 60, EndMin: 10 * 60}
	slotB := models.TimeSlot{Day: time.Monday, StartMin: 9 * 60, EndMin: 11 * 60}
	catalog := mustCatalog(t,
		[]*models.Course{mandatory("A", 4), mandatory("B", 4)},
		[]*models.Offering{everyTerm("A", "1", slotA), everyTerm("B", "1", slotB)},
	)

	cfg := testConfig()
	cfg.MinCreditsPerTerm = 4

	full := buildTestModel(t, catalog, nil, cfg, Relaxation{})
	noCredits := buildTestModel(t, catalog, nil, cfg, Relaxation{WidenCredits: true})
	noConflicts := buildTestModel(t, catalog, nil, cfg, Relaxation{IgnoreConflicts: true})

	assert.Less(t, len(noCredits.constrs), len(full.constrs))
	assert.Less(t, len(noConflicts.constrs), len(full.constrs))
}

func TestBuildModel_Deterministic(t *testing.T) {
	catalog := mustCatalog(t,
		[]*models.Course{mandatory("A", 4), mandatory("B", 3, "A"), elective("C", 2)},
		[]*models.Offering{everyTerm("A", "1"), everyTerm("A", "2"), everyTerm("B", "1"), everyTerm("C", "1")},
	)

	m1 := buildTestModel(t, catalog, nil, testConfig(), Relaxation{})
	m2 := buildTestModel(t, catalog, nil, testConfig(), Relaxation{})

	assert.Equal(t, m1.numVars, m2.numVars)
	assert.Equal(t, m1.sched, m2.sched)
	assert.Equal(t, m1.uses, m2.uses)
	assert.Equal(t, len(m1.constrs), len(m2.constrs))
	assert.Equal(t, m1.costVars, m2.costVars)
	assert.Equal(t, m1.costWeights, m2.costWeights)
}

func TestBuildModel_TieBreakNoneDropsFrontLoadTerms(t *testing.T) {
	catalog := mustCatalog(t,
		[]*models.Course{mandatory("A", 4)},
		[]*models.Offering{everyTerm("A", "1")},
	)

	cfg := testConfig()
	frontLoad := buildTestModel(t, catalog, nil, cfg, Relaxation{})

	cfg.TieBreak = models.TieBreakNone
	none := buildTestModel(t, catalog, nil, cfg, Relaxation{})

	// Without the tie-break only the window indicators carry cost.
	assert.Len(t, none.costVars, len(none.window))
	assert.Greater(t, len(frontLoad.costVars), len(frontLoad.window))
}
