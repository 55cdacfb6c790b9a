package models

import (
	"errors"
	"fmt"
	"sort"

	"github.com/pedrohba/gradeplan/internal/pkg/apperrors"
)

// Catalog validation errors. All of them wrap apperrors.ErrInvalidInput so the
// HTTP layer can classify them uniformly.
var (
	ErrDuplicateCourse       = errors.New("duplicate course id")
	ErrDanglingPrerequisite  = errors.New("prerequisite references unknown course")
	ErrSelfPrerequisite      = errors.New("course lists itself as prerequisite")
	ErrOrphanOffering        = errors.New("offering references unknown course")
	ErrInvalidCourseCredits  = errors.New("course credits must be positive")
	ErrInvalidCourseCategory = errors.New("unknown course category")
)

// Catalog is the immutable in-memory view of the curriculum: every course and
// every timetabled offering. Instances are never mutated after construction;
// reloads build a fresh Catalog and swap it in, so concurrent optimization
// requests can share one instance without locking.
type Catalog struct {
	courses   map[string]*Course
	offerings map[string][]*Offering // keyed by course id
}

// NewCatalog builds and validates a catalog from loaded records.
func NewCatalog(courses []*Course, offerings []*Offering) (*Catalog, error) {
	c := &Catalog{
		courses:   make(map[string]*Course, len(courses)),
		offerings: make(map[string][]*Offering),
	}

	for _, course := range courses {
		if _, ok := c.courses[course.ID]; ok {
			return nil, invalidInput(fmt.Errorf("%w: %s", ErrDuplicateCourse, course.ID))
		}
		c.courses[course.ID] = course
	}

	for _, off := range offerings {
		c.offerings[off.CourseID] = append(c.offerings[off.CourseID], off)
	}

	// Keep section order stable so model construction is deterministic.
	for _, offs := range c.offerings {
		sort.Slice(offs, func(i, j int) bool { return offs[i].ID < offs[j].ID })
	}

	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// validate re-checks the structural invariants the storage layer should have
// enforced. Upstream validation is not guaranteed complete, so the catalog
// never trusts it.
func (c *Catalog) validate() error {
	for id, course := range c.courses {
		if course.Credits <= 0 {
			return invalidInput(fmt.Errorf("%w: %s has %d", ErrInvalidCourseCredits, id, course.Credits))
		}
		if !course.Category.Valid() {
			return invalidInput(fmt.Errorf("%w: %s has %q", ErrInvalidCourseCategory, id, course.Category))
		}
		for _, prereq := range course.Prerequisites {
			if prereq == id {
				return invalidInput(fmt.Errorf("%w: %s", ErrSelfPrerequisite, id))
			}
			if _, ok := c.courses[prereq]; !ok {
				return invalidInput(fmt.Errorf("%w: %s requires %s", ErrDanglingPrerequisite, id, prereq))
			}
		}
	}

	for courseID, offs := range c.offerings {
		if _, ok := c.courses[courseID]; !ok {
			return invalidInput(fmt.Errorf("%w: %s", ErrOrphanOffering, courseID))
		}
		for _, off := range offs {
			for _, slot := range off.Slots {
				if err := slot.Validate(); err != nil {
					return invalidInput(fmt.Errorf("offering %s: %w", off.ID, err))
				}
			}
		}
	}

	return nil
}

func invalidInput(err error) error {
	return fmt.Errorf("%w: %w", apperrors.ErrInvalidInput, err)
}

// Course returns the course with the given id, or nil.
func (c *Catalog) Course(id string) *Course {
	return c.courses[id]
}

// Courses returns all courses ordered by id.
func (c *Catalog) Courses() []*Course {
	out := make([]*Course, 0, len(c.courses))
	for _, course := range c.courses {
		out = append(out, course)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Offerings returns the sections of a course, ordered by offering id.
func (c *Catalog) Offerings(courseID string) []*Offering {
	return c.offerings[courseID]
}

// Len returns the number of courses in the catalog.
func (c *Catalog) Len() int {
	return len(c.courses)
}

// CompletedSet holds the course ids a student has already finished. It is
// owned by the caller and read-only for the duration of one optimization run.
type CompletedSet map[string]struct{}

// NewCompletedSet builds a set from a list of course ids.
func NewCompletedSet(ids ...string) CompletedSet {
	set := make(CompletedSet, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

// Contains reports whether the course id is in the set.
func (s CompletedSet) Contains(id string) bool {
	_, ok := s[id]
	return ok
}

// CompletedCredits sums already-earned credits per category, used to deduct
// from the elective minimum-credit targets before modeling.
func (c *Catalog) CompletedCredits(completed CompletedSet) map[CourseCategory]int {
	totals := make(map[CourseCategory]int)
	for id := range completed {
		if course := c.courses[id]; course != nil {
			totals[course.Category] += course.Credits
		}
	}
	return totals
}
