package planner

import (
	"fmt"
	"sort"

	"github.com/pedrohba/gradeplan/internal/app/models"
)

// PrecedenceGraph is the directed prerequisite graph over the courses a
// student still has to take. Edges run prerequisite -> dependent. Prerequisites
// already satisfied by the completed set do not appear.
type PrecedenceGraph struct {
	Remaining  map[string]*models.Course
	Dependents map[string][]string // prerequisite id -> dependent course ids
	Warnings   []string
}

// BuildPrecedenceGraph validates the catalog against the completed set and
// constructs the precedence graph. It fails fast on dangling references,
// prerequisite cycles, and required courses that can never be offered.
func BuildPrecedenceGraph(catalog *models.Catalog, completed models.CompletedSet) (*PrecedenceGraph, error) {
	for id := range completed {
		if catalog.Course(id) == nil {
			return nil, &UnknownCourseError{ID: id, Ref: "completed set"}
		}
	}

	g := &PrecedenceGraph{
		Remaining:  make(map[string]*models.Course),
		Dependents: make(map[string][]string),
	}

	for _, course := range catalog.Courses() {
		if completed.Contains(course.ID) {
			continue
		}
		g.Remaining[course.ID] = course
	}

	for _, course := range orderedCourses(g.Remaining) {
		for _, prereq := range course.Prerequisites {
			if catalog.Course(prereq) == nil {
				return nil, &UnknownCourseError{ID: prereq, Ref: "prerequisites of " + course.ID}
			}
			if completed.Contains(prereq) {
				continue
			}
			g.Dependents[prereq] = append(g.Dependents[prereq], course.ID)
		}
	}

	if cycle := g.findCycle(); cycle != nil {
		return nil, &CycleError{Members: cycle}
	}

	if err := g.checkOfferings(catalog); err != nil {
		return nil, err
	}

	return g, nil
}

// findCycle runs a depth-first traversal tracking the recursion stack and
// returns the members of the first cycle found, or nil.
func (g *PrecedenceGraph) findCycle() []string {
	const (
		white = 0 // unvisited
		grey  = 1 // on the recursion stack
		black = 2 // done
	)
	color := make(map[string]int, len(g.Remaining))
	var stack []string
	var cycle []string

	var visit func(id string) bool
	visit = func(id string) bool {
		color[id] = grey
		stack = append(stack, id)
		for _, dep := range g.Dependents[id] {
			switch color[dep] {
			case white:
				if visit(dep) {
					return true
				}
			case grey:
				// Found a back edge; slice the stack from the first
				// occurrence of dep to name the cycle members.
				for i, member := range stack {
					if member == dep {
						cycle = append([]string(nil), stack[i:]...)
						return true
					}
				}
			}
		}
		stack = stack[:len(stack)-1]
		color[id] = black
		return false
	}

	for _, course := range orderedCourses(g.Remaining) {
		if color[course.ID] == white && visit(course.ID) {
			return cycle
		}
	}
	return nil
}

// checkOfferings verifies every required remaining course, and every remaining
// prerequisite on a required course's ancestry, has at least one offering.
// Offering-less electives are only warned about: the optimizer simply cannot
// pick them.
func (g *PrecedenceGraph) checkOfferings(catalog *models.Catalog) error {
	required := make(map[string]bool)
	for id, course := range g.Remaining {
		if course.Required() {
			required[id] = true
		}
	}

	// Everything a required course transitively depends on is itself required
	// to be schedulable.
	blockedBy := make(map[string][]string)
	for id := range required {
		for _, ancestor := range g.ancestors(id) {
			blockedBy[ancestor] = append(blockedBy[ancestor], id)
		}
	}

	for _, course := range orderedCourses(g.Remaining) {
		if len(catalog.Offerings(course.ID)) > 0 {
			continue
		}
		if required[course.ID] {
			return &MissingOfferingError{CourseID: course.ID}
		}
		if blocked := blockedBy[course.ID]; len(blocked) > 0 {
			sort.Strings(blocked)
			return &MissingOfferingError{CourseID: course.ID, Blocked: blocked}
		}
		g.Warnings = append(g.Warnings,
			fmt.Sprintf("course %s has no offering in the planning horizon and cannot be scheduled", course.ID))
	}

	return nil
}

// ancestors returns the remaining transitive prerequisites of a course.
func (g *PrecedenceGraph) ancestors(id string) []string {
	seen := make(map[string]bool)
	var out []string
	var walk func(string)
	walk = func(cur string) {
		course := g.Remaining[cur]
		if course == nil {
			return
		}
		for _, prereq := range course.Prerequisites {
			if _, remaining := g.Remaining[prereq]; !remaining || seen[prereq] {
				continue
			}
			seen[prereq] = true
			out = append(out, prereq)
			walk(prereq)
		}
	}
	walk(id)
	return out
}

// orderedCourses returns map values sorted by course id for deterministic
// traversal and error reporting.
func orderedCourses(m map[string]*models.Course) []*models.Course {
	out := make([]*models.Course, 0, len(m))
	for _, c := range m {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
