package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/pedrohba/gradeplan/internal/pkg/helpers"
)

// TimeSlot is one weekly meeting window of a section, contained in a single day.
// Times are stored as minutes since midnight.
type TimeSlot struct {
	Day      time.Weekday `json:"day" db:"weekday"`
	StartMin int          `json:"startMin" db:"start_min"`
	EndMin   int          `json:"endMin" db:"end_min"`
}

// Overlaps reports whether two slots collide (same weekday, intersecting ranges).
func (s TimeSlot) Overlaps(o TimeSlot) bool {
	return s.Day == o.Day && s.StartMin < o.EndMin && o.StartMin < s.EndMin
}

var dayCodes = map[string]time.Weekday{
	"MON": time.Monday, "TUE": time.Tuesday, "WED": time.Wednesday,
	"THU": time.Thursday, "FRI": time.Friday, "SAT": time.Saturday, "SUN": time.Sunday,
}

var codeForDay = map[time.Weekday]string{
	time.Monday: "MON", time.Tuesday: "TUE", time.Wednesday: "WED",
	time.Thursday: "THU", time.Friday: "FRI", time.Saturday: "SAT", time.Sunday: "SUN",
}

// String renders the slot in the catalog exchange form, e.g. "MON 08:00-10:00".
func (s TimeSlot) String() string {
	return fmt.Sprintf("%s %s-%s",
		codeForDay[s.Day], helpers.ClockTime(s.StartMin), helpers.ClockTime(s.EndMin))
}

// ParseTimeSlot parses the exchange form produced by String.
func ParseTimeSlot(raw string) (TimeSlot, error) {
	parts := strings.Fields(strings.TrimSpace(raw))
	if len(parts) != 2 {
		return TimeSlot{}, fmt.Errorf("invalid time slot %q: want \"DAY HH:MM-HH:MM\"", raw)
	}

	day, ok := dayCodes[strings.ToUpper(parts[0])]
	if !ok {
		return TimeSlot{}, fmt.Errorf("invalid weekday %q in time slot %q", parts[0], raw)
	}

	var sh, sm, eh, em int
	if _, err := fmt.Sscanf(parts[1], "%d:%d-%d:%d", &sh, &sm, &eh, &em); err != nil {
		return TimeSlot{}, fmt.Errorf("invalid time range %q in time slot %q", parts[1], raw)
	}

	slot := TimeSlot{Day: day, StartMin: sh*60 + sm, EndMin: eh*60 + em}
	if err := slot.Validate(); err != nil {
		return TimeSlot{}, err
	}
	return slot, nil
}

// Validate checks the slot stays inside one day and has a positive duration.
func (s TimeSlot) Validate() error {
	if s.Day < time.Sunday || s.Day > time.Saturday {
		return fmt.Errorf("invalid weekday %d", s.Day)
	}
	if s.StartMin < 0 || s.EndMin > 24*60 || s.StartMin >= s.EndMin {
		return fmt.Errorf("invalid time range %d-%d", s.StartMin, s.EndMin)
	}
	return nil
}

// TermParity identifies whether an academic term is an odd or even semester.
type TermParity string

const (
	ParityOdd  TermParity = "ODD"
	ParityEven TermParity = "EVEN"
)

// AvailabilityMode selects how an offering's availability rule is interpreted.
type AvailabilityMode string

const (
	// AvailEveryTerm offerings run every term of the horizon.
	AvailEveryTerm AvailabilityMode = "EVERY"
	// AvailOddTerms offerings run only in odd academic semesters.
	AvailOddTerms AvailabilityMode = "ODD"
	// AvailEvenTerms offerings run only in even academic semesters.
	AvailEvenTerms AvailabilityMode = "EVEN"
	// AvailExplicit offerings list the plan term indices they run in.
	AvailExplicit AvailabilityMode = "EXPLICIT"
)

// Availability is the closed set of offering availability rules.
type Availability struct {
	Mode  AvailabilityMode `json:"mode"`
	Terms []int            `json:"terms,omitempty"` // only for AvailExplicit
}

// Includes reports whether the offering runs at the given plan term (1-based).
// firstTermParity is the academic parity of plan term 1, so that periodic
// rules line up with the student's actual start semester.
func (a Availability) Includes(term int, firstTermParity TermParity) bool {
	switch a.Mode {
	case AvailEveryTerm:
		return true
	case AvailOddTerms:
		return academicallyOdd(term, firstTermParity)
	case AvailEvenTerms:
		return !academicallyOdd(term, firstTermParity)
	case AvailExplicit:
		for _, t := range a.Terms {
			if t == term {
				return true
			}
		}
		return false
	}
	return false
}

// academicallyOdd maps a plan term index to semester parity.
func academicallyOdd(term int, firstTermParity TermParity) bool {
	if firstTermParity == ParityEven {
		return term%2 == 0
	}
	return term%2 == 1
}

// Offering is one timetabled section of a course.
type Offering struct {
	ID           string       `json:"id" db:"id"`
	CourseID     string       `json:"courseId" db:"course_id"`
	Section      string       `json:"section" db:"section"`
	Slots        []TimeSlot   `json:"slots"`
	Availability Availability `json:"availability"`
}

// ConflictsWith reports whether any pair of slots between the two offerings overlaps.
func (o *Offering) ConflictsWith(other *Offering) bool {
	for _, a := range o.Slots {
		for _, b := range other.Slots {
			if a.Overlaps(b) {
				return true
			}
		}
	}
	return false
}
