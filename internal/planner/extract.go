package planner

import (
	"fmt"
	"sort"

	"github.com/pedrohba/gradeplan/internal/app/models"
)

// extractPlan reads a satisfying assignment back into per-term plans. The
// section choice variables are the source of truth: each true uses(c,t,s)
// names the course, the term and the exact section. Extraction is a pure
// read, running it twice on the same assignment gives the same plan.
func extractPlan(catalog *models.Catalog, m *pbModel, assignment map[int]bool) []models.TermPlan {
	byTerm := make(map[int][]models.ScheduledCourse)

	for _, entry := range orderedUses(m) {
		if !assignment[entry.varID] {
			continue
		}
		course := catalog.Course(entry.key.course)
		offering := findOffering(catalog, entry.key.course, entry.key.offering)
		sc := models.ScheduledCourse{
			CourseID:   course.ID,
			Name:       course.Name,
			Credits:    course.Credits,
			OfferingID: offering.ID,
			Section:    offering.Section,
		}
		for _, slot := range offering.Slots {
			sc.Slots = append(sc.Slots, slot.String())
		}
		byTerm[entry.key.term] = append(byTerm[entry.key.term], sc)
	}

	terms := make([]int, 0, len(byTerm))
	for t := range byTerm {
		terms = append(terms, t)
	}
	sort.Ints(terms)

	plan := make([]models.TermPlan, 0, len(terms))
	for _, t := range terms {
		courses := byTerm[t]
		sort.Slice(courses, func(i, j int) bool { return courses[i].CourseID < courses[j].CourseID })
		credits := 0
		for _, c := range courses {
			credits += c.Credits
		}
		plan = append(plan, models.TermPlan{Term: t, Credits: credits, Courses: courses})
	}
	return plan
}

type useEntry struct {
	key   useKey
	varID int
}

func orderedUses(m *pbModel) []useEntry {
	out := make([]useEntry, 0, len(m.uses))
	for key, v := range m.uses {
		out = append(out, useEntry{key, v})
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i].key, out[j].key
		if a.course != b.course {
			return a.course < b.course
		}
		if a.term != b.term {
			return a.term < b.term
		}
		return a.offering < b.offering
	})
	return out
}

// verifyRequired cross-checks an extracted plan against the hard constraints:
// every satisfying model must place every required remaining course, so a
// missing one means the solver handed back a malformed assignment.
func verifyRequired(graph *PrecedenceGraph, terms []models.TermPlan) error {
	scheduled := make(map[string]struct{})
	for _, tp := range terms {
		for _, c := range tp.Courses {
			scheduled[c.CourseID] = struct{}{}
		}
	}
	for _, course := range orderedCourses(graph.Remaining) {
		if !course.Required() {
			continue
		}
		if _, ok := scheduled[course.ID]; !ok {
			return &SolverError{
				Op:  "plan extraction",
				Err: fmt.Errorf("required course %s missing from the solver model", course.ID),
			}
		}
	}
	return nil
}

func findOffering(catalog *models.Catalog, courseID, offeringID string) *models.Offering {
	for _, off := range catalog.Offerings(courseID) {
		if off.ID == offeringID {
			return off
		}
	}
	return nil
}
