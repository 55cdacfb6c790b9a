package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

type seedCourse struct {
	id            string
	name          string
	credits       int
	category      string
	suggestedTerm *int
	prerequisites []string
}

type seedOffering struct {
	id       string
	courseID string
	section  string
	mode     string
	terms    []int
	slots    [][3]int // weekday, start minute, end minute
}

func term(t int) *int { return &t }

// A small starter curriculum so a fresh install can answer plan requests
// right away. Every insert is idempotent.
var defaultCourses = []seedCourse{
	{id: "CS101", name: "Introduction to Programming", credits: 4, category: "MANDATORY", suggestedTerm: term(1)},
	{id: "MA101", name: "Calculus I", credits: 4, category: "MANDATORY", suggestedTerm: term(1)},
	{id: "CS102", name: "Data Structures", credits: 4, category: "MANDATORY", suggestedTerm: term(2), prerequisites: []string{"CS101"}},
	{id: "MA102", name: "Calculus II", credits: 4, category: "MANDATORY", suggestedTerm: term(2), prerequisites: []string{"MA101"}},
	{id: "CS201", name: "Algorithms", credits: 4, category: "MANDATORY", suggestedTerm: term(3), prerequisites: []string{"CS102"}},
	{id: "CS202", name: "Computer Organization", credits: 4, category: "MANDATORY", suggestedTerm: term(3), prerequisites: []string{"CS101"}},
	{id: "ST210", name: "Probability and Statistics", credits: 3, category: "RESTRICTED", prerequisites: []string{"MA101"}},
	{id: "HU100", name: "Introduction to Philosophy", credits: 2, category: "FREE"},
}

var defaultOfferings = []seedOffering{
	{id: "CS101-A", courseID: "CS101", section: "A", mode: "EVERY", slots: [][3]int{{1, 8 * 60, 10 * 60}, {3, 8 * 60, 10 * 60}}},
	{id: "CS101-B", courseID: "CS101", section: "B", mode: "EVERY", slots: [][3]int{{2, 14 * 60, 16 * 60}, {4, 14 * 60, 16 * 60}}},
	{id: "MA101-A", courseID: "MA101", section: "A", mode: "EVERY", slots: [][3]int{{1, 10 * 60, 12 * 60}, {3, 10 * 60, 12 * 60}}},
	{id: "CS102-A", courseID: "CS102", section: "A", mode: "EVERY", slots: [][3]int{{2, 8 * 60, 10 * 60}, {4, 8 * 60, 10 * 60}}},
	{id: "MA102-A", courseID: "MA102", section: "A", mode: "EVERY", slots: [][3]int{{1, 14 * 60, 16 * 60}, {3, 14 * 60, 16 * 60}}},
	{id: "CS201-A", courseID: "CS201", section: "A", mode: "ODD", slots: [][3]int{{2, 10 * 60, 12 * 60}, {5, 10 * 60, 12 * 60}}},
	{id: "CS202-A", courseID: "CS202", section: "A", mode: "EVEN", slots: [][3]int{{1, 16 * 60, 18 * 60}, {4, 16 * 60, 18 * 60}}},
	{id: "ST210-A", courseID: "ST210", section: "A", mode: "EVERY", slots: [][3]int{{5, 14 * 60, 17 * 60}}},
	{id: "HU100-A", courseID: "HU100", section: "A", mode: "EXPLICIT", terms: []int{1, 3, 5, 7}, slots: [][3]int{{5, 8 * 60, 10 * 60}}},
}

// CreateDefaultData inserts the starter curriculum if it is not present yet.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating default data (courses/offerings)...")
	var finalErr error

	for _, course := range defaultCourses {
		_, err := dbPool.Exec(ctx, `
			INSERT INTO courses (id, name, credits, category, suggested_term)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (id) DO NOTHING`,
			course.id, course.name, course.credits, course.category, course.suggestedTerm)
		if err != nil {
			lgr.Error().Err(err).Str("course", course.id).Msg("Error seeding course")
			finalErr = errors.Join(finalErr, err)
		}
	}

	for _, course := range defaultCourses {
		for _, prereq := range course.prerequisites {
			_, err := dbPool.Exec(ctx, `
				INSERT INTO course_prerequisites (course_id, prerequisite_id)
				VALUES ($1, $2)
				ON CONFLICT DO NOTHING`,
				course.id, prereq)
			if err != nil {
				lgr.Error().Err(err).Str("course", course.id).Msg("Error seeding prerequisite")
				finalErr = errors.Join(finalErr, err)
			}
		}
	}

	for _, offering := range defaultOfferings {
		_, err := dbPool.Exec(ctx, `
			INSERT INTO offerings (id, course_id, section, availability_mode)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (id) DO NOTHING`,
			offering.id, offering.courseID, offering.section, offering.mode)
		if err != nil {
			lgr.Error().Err(err).Str("offering", offering.id).Msg("Error seeding offering")
			finalErr = errors.Join(finalErr, err)
			continue
		}

		for _, slot := range offering.slots {
			_, err := dbPool.Exec(ctx, `
				INSERT INTO offering_slots (offering_id, day, start_min, end_min)
				VALUES ($1, $2, $3, $4)
				ON CONFLICT DO NOTHING`,
				offering.id, slot[0], slot[1], slot[2])
			if err != nil {
				lgr.Error().Err(err).Str("offering", offering.id).Msg("Error seeding offering slot")
				finalErr = errors.Join(finalErr, err)
			}
		}

		for _, t := range offering.terms {
			_, err := dbPool.Exec(ctx, `
				INSERT INTO offering_terms (offering_id, term)
				VALUES ($1, $2)
				ON CONFLICT DO NOTHING`,
				offering.id, t)
			if err != nil {
				lgr.Error().Err(err).Str("offering", offering.id).Msg("Error seeding offering term")
				finalErr = errors.Join(finalErr, err)
			}
		}
	}

	if finalErr == nil {
		lgr.Info().Msg("Default data check complete.")
	}
	return finalErr
}
