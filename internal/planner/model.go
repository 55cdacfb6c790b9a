package planner

import (
	"sort"

	"github.com/crillab/gophersat/solver"

	"github.com/pedrohba/gradeplan/internal/app/models"
)

// Relaxation switches off constraint groups. The zero value builds the full
// model; the infeasibility diagnosis ladder probes progressively relaxed
// variants to locate the binding constraint group.
type Relaxation struct {
	WidenCredits    bool // drop per-term credit bounds
	ExtraTerms      int  // extend the horizon by this many terms
	IgnoreConflicts bool // drop time-slot conflict constraints
}

type schedKey struct {
	course string
	term   int
}

type useKey struct {
	course   string
	term     int
	offering string
}

// pbModel is the pseudo-boolean encoding of one planning request. Every
// decision is a boolean variable, numbered from 1, so the whole mixed-integer
// structure of the problem reduces to linear constraints over literals.
type pbModel struct {
	horizon int
	courses []*models.Course // remaining, ordered by id

	numVars int
	sched   map[schedKey]int // scheduled(c,t)
	uses    map[useKey]int   // uses(c,t,s)
	window  []int            // window[t-1] = u(t), true iff the plan extends to term t

	constrs     []solver.PBConstr
	costVars    []int
	costWeights []int
}

func (m *pbModel) newVar() int {
	m.numVars++
	return m.numVars
}

// buildModel translates catalog + precedence graph + configuration into the
// optimization model. Construction is deterministic: identical inputs yield
// an identical variable numbering and constraint order.
func buildModel(catalog *models.Catalog, graph *PrecedenceGraph, cfg models.PlanningConfig, relax Relaxation) (*pbModel, error) {
	horizon := cfg.Horizon + relax.ExtraTerms
	if horizon > models.MaxHorizon {
		horizon = models.MaxHorizon
	}

	m := &pbModel{
		horizon: horizon,
		courses: orderedCourses(graph.Remaining),
		sched:   make(map[schedKey]int),
		uses:    make(map[useKey]int),
	}

	m.addAssignmentVars(catalog, cfg)

	if err := m.addOccurrenceConstraints(); err != nil {
		return nil, err
	}
	m.addPrecedenceConstraints(graph)
	m.addWindowConstraints()
	if !relax.WidenCredits {
		m.addCreditBounds(cfg)
	}
	if !relax.IgnoreConflicts {
		m.addConflictConstraints(catalog)
	}
	m.addElectiveMinima(catalog, cfg)
	m.addObjective(cfg)

	return m, nil
}

// addAssignmentVars creates scheduled(c,t) wherever at least one section of c
// runs at term t, plus the uses(c,t,s) choice variables linked to it: the uses
// variables of a (c,t) pair sum to exactly scheduled(c,t).
func (m *pbModel) addAssignmentVars(catalog *models.Catalog, cfg models.PlanningConfig) {
	for _, course := range m.courses {
		for t := 1; t <= m.horizon; t++ {
			var sections []int
			for _, off := range catalog.Offerings(course.ID) {
				if !off.Availability.Includes(t, cfg.TermOneParity) {
					continue
				}
				y := m.newVar()
				m.uses[useKey{course.ID, t, off.ID}] = y
				sections = append(sections, y)
			}
			if len(sections) == 0 {
				continue
			}

			x := m.newVar()
			m.sched[schedKey{course.ID, t}] = x

			// uses(c,t,s) -> scheduled(c,t), and scheduled(c,t) -> some section.
			for _, y := range sections {
				m.constrs = append(m.constrs, solver.PropClause(-y, x))
			}
			m.constrs = append(m.constrs, solver.PropClause(append([]int{-x}, sections...)...))
			if len(sections) > 1 {
				m.constrs = append(m.constrs, solver.AtMost(sections, 1))
			}
		}
	}
}

// addOccurrenceConstraints emits at-most-one-term for every course and
// exactly-one for required courses. A required course with no assignment
// variable at all can never be scheduled, which is an input error, not
// something to let the solver discover as bare infeasibility.
func (m *pbModel) addOccurrenceConstraints() error {
	for _, course := range m.courses {
		vars := m.schedVarsOf(course.ID)
		if course.Required() && len(vars) == 0 {
			return &MissingOfferingError{CourseID: course.ID}
		}
		if len(vars) == 0 {
			continue
		}
		if len(vars) > 1 {
			m.constrs = append(m.constrs, solver.AtMost(vars, 1))
		}
		if course.Required() {
			m.constrs = append(m.constrs, solver.AtLeast(vars, 1))
		}
	}
	return nil
}

// addPrecedenceConstraints encodes, for every remaining prerequisite edge
// p -> c and term t: scheduled(c,t) implies p scheduled at some term before t.
// At term 1 this collapses to a unit clause forbidding c.
func (m *pbModel) addPrecedenceConstraints(graph *PrecedenceGraph) {
	for _, course := range m.courses {
		for _, prereq := range course.Prerequisites {
			if _, remaining := graph.Remaining[prereq]; !remaining {
				continue // already completed, no constraint
			}
			for t := 1; t <= m.horizon; t++ {
				x, ok := m.sched[schedKey{course.ID, t}]
				if !ok {
					continue
				}
				clause := []int{-x}
				for earlier := 1; earlier < t; earlier++ {
					if p, ok := m.sched[schedKey{prereq, earlier}]; ok {
						clause = append(clause, p)
					}
				}
				m.constrs = append(m.constrs, solver.PropClause(clause...))
			}
		}
	}
}

// addWindowConstraints creates the plan-window indicators u(t). They are
// monotone (u(t+1) implies u(t)) and every scheduled course pulls its term
// into the window, so the window length is the last used term index.
func (m *pbModel) addWindowConstraints() {
	m.window = make([]int, m.horizon)
	for t := 1; t <= m.horizon; t++ {
		m.window[t-1] = m.newVar()
	}
	for t := 1; t < m.horizon; t++ {
		m.constrs = append(m.constrs, solver.PropClause(m.window[t-1], -m.window[t]))
	}
	for _, x := range m.orderedSched() {
		m.constrs = append(m.constrs, solver.PropClause(-x.varID, m.window[x.key.term-1]))
	}
}

// addCreditBounds emits the per-term credit window. The upper bound is
// unconditional; the lower bound only binds terms that are followed by
// another in-window term, which relaxes it for the final term of the plan
// and for terms past graduation.
func (m *pbModel) addCreditBounds(cfg models.PlanningConfig) {
	for t := 1; t <= m.horizon; t++ {
		var lits []int
		var weights []int
		for _, course := range m.courses {
			if x, ok := m.sched[schedKey{course.ID, t}]; ok {
				lits = append(lits, x)
				weights = append(weights, course.Credits)
			}
		}
		if len(lits) > 0 {
			// LtEq negates its lits argument in place; hand it a copy so the
			// lower-bound constraint below still sees the original literals.
			m.constrs = append(m.constrs, solver.LtEq(append([]int(nil), lits...), weights, cfg.MaxCreditsPerTerm))
		}
		if cfg.MinCreditsPerTerm > 0 && t < m.horizon {
			// sum(credits) >= min whenever u(t+1) holds.
			condLits := append(append([]int(nil), lits...), -m.window[t])
			condWeights := append(append([]int(nil), weights...), cfg.MinCreditsPerTerm)
			m.constrs = append(m.constrs, solver.GtEq(condLits, condWeights, cfg.MinCreditsPerTerm))
		}
	}
}

// addConflictConstraints forbids choosing two time-overlapping sections of
// distinct courses in the same term. This is the dense, quadratic part of the
// model, so overlap is computed once per offering pair and reused per term.
func (m *pbModel) addConflictConstraints(catalog *models.Catalog) {
	type offRef struct {
		courseID string
		off      *models.Offering
	}
	var offs []offRef
	for _, course := range m.courses {
		for _, off := range catalog.Offerings(course.ID) {
			offs = append(offs, offRef{course.ID, off})
		}
	}

	for i := 0; i < len(offs); i++ {
		for j := i + 1; j < len(offs); j++ {
			a, b := offs[i], offs[j]
			if a.courseID == b.courseID || !a.off.ConflictsWith(b.off) {
				continue
			}
			for t := 1; t <= m.horizon; t++ {
				ya, okA := m.uses[useKey{a.courseID, t, a.off.ID}]
				yb, okB := m.uses[useKey{b.courseID, t, b.off.ID}]
				if okA && okB {
					m.constrs = append(m.constrs, solver.AtMost([]int{ya, yb}, 1))
				}
			}
		}
	}
}

// addElectiveMinima enforces the per-category minimum elective credits that
// remain after deducting what the student already earned.
func (m *pbModel) addElectiveMinima(catalog *models.Catalog, cfg models.PlanningConfig) {
	if len(cfg.ElectiveMinima) == 0 {
		return
	}
	done := catalog.CompletedCredits(completedFromRemaining(catalog, m.courses))

	for _, category := range models.ElectiveCategories {
		remaining := cfg.ElectiveMinima[category] - done[category]
		if remaining <= 0 {
			continue
		}
		var lits []int
		var weights []int
		for _, course := range m.courses {
			if course.Category != category {
				continue
			}
			for t := 1; t <= m.horizon; t++ {
				if x, ok := m.sched[schedKey{course.ID, t}]; ok {
					lits = append(lits, x)
					weights = append(weights, course.Credits)
				}
			}
		}
		// Emitted even when unsatisfiable with the available electives; the
		// solver reports it and the diagnosis ladder explains it.
		m.constrs = append(m.constrs, solver.GtEq(lits, weights, remaining))
	}
}

// completedFromRemaining reconstructs the completed set as the complement of
// the remaining courses within the catalog.
func completedFromRemaining(catalog *models.Catalog, remaining []*models.Course) models.CompletedSet {
	left := make(map[string]struct{}, len(remaining))
	for _, c := range remaining {
		left[c.ID] = struct{}{}
	}
	completed := make(models.CompletedSet)
	for _, c := range catalog.Courses() {
		if _, ok := left[c.ID]; !ok {
			completed[c.ID] = struct{}{}
		}
	}
	return completed
}

// addObjective sets the boolean cost function: the window indicators carry a
// weight large enough to dominate every tie-break term, so minimizing the cost
// first minimizes the number of terms to graduation and then applies the
// configured tie-break.
func (m *pbModel) addObjective(cfg models.PlanningConfig) {
	dominant := 1
	if cfg.TieBreak == models.TieBreakFrontLoad {
		dominant = len(m.courses)*m.horizon + 1
	}
	for _, u := range m.window {
		m.costVars = append(m.costVars, u)
		m.costWeights = append(m.costWeights, dominant)
	}
	if cfg.TieBreak == models.TieBreakFrontLoad {
		for _, x := range m.orderedSched() {
			m.costVars = append(m.costVars, x.varID)
			m.costWeights = append(m.costWeights, x.key.term)
		}
	}
}

type schedEntry struct {
	key   schedKey
	varID int
}

// orderedSched returns the scheduled(c,t) variables in deterministic order.
func (m *pbModel) orderedSched() []schedEntry {
	out := make([]schedEntry, 0, len(m.sched))
	for key, v := range m.sched {
		out = append(out, schedEntry{key, v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].key.course != out[j].key.course {
			return out[i].key.course < out[j].key.course
		}
		return out[i].key.term < out[j].key.term
	})
	return out
}

// schedVarsOf lists the scheduled(c,t) variables of one course across terms.
func (m *pbModel) schedVarsOf(courseID string) []int {
	var vars []int
	for t := 1; t <= m.horizon; t++ {
		if x, ok := m.sched[schedKey{courseID, t}]; ok {
			vars = append(vars, x)
		}
	}
	return vars
}

// problem assembles the gophersat problem, attaching the cost function when
// optimizing and leaving it off for feasibility-only probes.
func (m *pbModel) problem(withObjective bool) *solver.Problem {
	pb := solver.ParsePBConstrs(m.constrs)
	if withObjective && len(m.costVars) > 0 {
		lits := make([]solver.Lit, len(m.costVars))
		for i, v := range m.costVars {
			lits[i] = solver.IntToLit(int32(v))
		}
		pb.SetCostFunc(lits, m.costWeights)
	}
	return pb
}
