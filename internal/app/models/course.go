package models

// CourseCategory classifies how a course counts towards graduation.
type CourseCategory string

const (
	// CategoryMandatory courses must appear in every graduation plan.
	CategoryMandatory CourseCategory = "MANDATORY"
	// CategoryRestricted electives draw from a restricted departmental list.
	CategoryRestricted CourseCategory = "RESTRICTED"
	// CategoryConditioned electives require departmental approval.
	CategoryConditioned CourseCategory = "CONDITIONED"
	// CategoryFreeElective courses may come from anywhere in the university.
	CategoryFreeElective CourseCategory = "FREE"
)

// ElectiveCategories lists the categories subject to minimum-credit targets.
var ElectiveCategories = []CourseCategory{CategoryRestricted, CategoryConditioned, CategoryFreeElective}

// Valid reports whether the category is one of the known values.
func (c CourseCategory) Valid() bool {
	switch c {
	case CategoryMandatory, CategoryRestricted, CategoryConditioned, CategoryFreeElective:
		return true
	}
	return false
}

// Elective reports whether the category counts as an elective.
func (c CourseCategory) Elective() bool {
	return c.Valid() && c != CategoryMandatory
}

// Course represents one course of the curriculum.
type Course struct {
	ID            string         `json:"id" db:"id"`
	Name          string         `json:"name" db:"name"`
	Credits       int            `json:"credits" db:"credits"`
	Category      CourseCategory `json:"category" db:"category"`
	Prerequisites []string       `json:"prerequisites" db:"-"`
	SuggestedTerm *int           `json:"suggestedTerm,omitempty" db:"suggested_term"` // Nullable
}

// Required reports whether the course must be scheduled for the student to graduate.
func (c *Course) Required() bool {
	return c.Category == CategoryMandatory
}
