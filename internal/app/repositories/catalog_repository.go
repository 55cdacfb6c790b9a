package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pedrohba/gradeplan/internal/app/models"
)

// CatalogRepository handles database operations for the course catalog
type CatalogRepository struct {
	db *pgxpool.Pool
}

// NewCatalogRepository creates a new catalog repository
func NewCatalogRepository(db *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{
		db: db,
	}
}

// LoadCatalog reads the whole catalog in one pass and assembles an immutable
// snapshot. Referential problems in the stored data surface through the
// catalog's own validation.
func (r *CatalogRepository) LoadCatalog(ctx context.Context) (*models.Catalog, error) {
	courses, err := r.loadCourses(ctx)
	if err != nil {
		return nil, err
	}

	if err := r.loadPrerequisites(ctx, courses); err != nil {
		return nil, err
	}

	offerings, err := r.loadOfferings(ctx)
	if err != nil {
		return nil, err
	}

	courseList := make([]*models.Course, 0, len(courses))
	for _, course := range courses {
		courseList = append(courseList, course)
	}

	return models.NewCatalog(courseList, offerings)
}

func (r *CatalogRepository) loadCourses(ctx context.Context) (map[string]*models.Course, error) {
	query := `
		SELECT id, name, credits, category, suggested_term
		FROM courses
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error retrieving courses: %w", err)
	}
	defer rows.Close()

	courses := make(map[string]*models.Course)
	for rows.Next() {
		var course models.Course
		if err := rows.Scan(
			&course.ID,
			&course.Name,
			&course.Credits,
			&course.Category,
			&course.SuggestedTerm,
		); err != nil {
			return nil, err
		}
		courses[course.ID] = &course
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}

func (r *CatalogRepository) loadPrerequisites(ctx context.Context, courses map[string]*models.Course) error {
	query := `
		SELECT course_id, prerequisite_id
		FROM course_prerequisites
		ORDER BY course_id, prerequisite_id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return fmt.Errorf("error retrieving prerequisites: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var courseID, prerequisiteID string
		if err := rows.Scan(&courseID, &prerequisiteID); err != nil {
			return err
		}
		if course, ok := courses[courseID]; ok {
			course.Prerequisites = append(course.Prerequisites, prerequisiteID)
		}
	}

	return rows.Err()
}

func (r *CatalogRepository) loadOfferings(ctx context.Context) ([]*models.Offering, error) {
	query := `
		SELECT id, course_id, section, availability_mode
		FROM offerings
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error retrieving offerings: %w", err)
	}
	defer rows.Close()

	byID := make(map[string]*models.Offering)
	var offerings []*models.Offering
	for rows.Next() {
		var offering models.Offering
		if err := rows.Scan(
			&offering.ID,
			&offering.CourseID,
			&offering.Section,
			&offering.Availability.Mode,
		); err != nil {
			return nil, err
		}
		byID[offering.ID] = &offering
		offerings = append(offerings, &offering)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.loadOfferingSlots(ctx, byID); err != nil {
		return nil, err
	}

	if err := r.loadOfferingTerms(ctx, byID); err != nil {
		return nil, err
	}

	return offerings, nil
}

func (r *CatalogRepository) loadOfferingSlots(ctx context.Context, offerings map[string]*models.Offering) error {
	query := `
		SELECT offering_id, day, start_min, end_min
		FROM offering_slots
		ORDER BY offering_id, day, start_min
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return fmt.Errorf("error retrieving offering slots: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var offeringID string
		var day int
		var slot models.TimeSlot
		if err := rows.Scan(&offeringID, &day, &slot.StartMin, &slot.EndMin); err != nil {
			return err
		}
		slot.Day = time.Weekday(day)
		if offering, ok := offerings[offeringID]; ok {
			offering.Slots = append(offering.Slots, slot)
		}
	}

	return rows.Err()
}

func (r *CatalogRepository) loadOfferingTerms(ctx context.Context, offerings map[string]*models.Offering) error {
	query := `
		SELECT offering_id, term
		FROM offering_terms
		ORDER BY offering_id, term
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return fmt.Errorf("error retrieving offering terms: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var offeringID string
		var term int
		if err := rows.Scan(&offeringID, &term); err != nil {
			return err
		}
		if offering, ok := offerings[offeringID]; ok {
			offering.Availability.Terms = append(offering.Availability.Terms, term)
		}
	}

	return rows.Err()
}
