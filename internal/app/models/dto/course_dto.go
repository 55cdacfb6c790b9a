package dto

import (
	"github.com/pedrohba/gradeplan/internal/app/models"
)

// OfferingResponse represents one section of a course
type OfferingResponse struct {
	ID               string   `json:"id" example:"CS101-A"`
	Section          string   `json:"section" example:"A"`
	Slots            []string `json:"slots" example:"MON 08:00-10:00"`
	AvailabilityMode string   `json:"availabilityMode" example:"EVERY" enums:"EVERY,ODD,EVEN,EXPLICIT"`
	Terms            []int    `json:"terms,omitempty"`
}

// CourseResponse represents basic course information
type CourseResponse struct {
	ID            string             `json:"id" example:"CS101"`
	Name          string             `json:"name" example:"Introduction to Programming"`
	Credits       int                `json:"credits" example:"4"`
	Category      string             `json:"category" example:"MANDATORY" enums:"MANDATORY,RESTRICTED,CONDITIONED,FREE"`
	Prerequisites []string           `json:"prerequisites"`
	SuggestedTerm *int               `json:"suggestedTerm,omitempty" example:"1"`
	Offerings     []OfferingResponse `json:"offerings,omitempty"`
}

// CourseListResponse represents a list of courses
type CourseListResponse struct {
	Courses []CourseResponse `json:"courses"`
	Total   int              `json:"total" example:"42"`
}

// NewCourseResponse maps a catalog course and its offerings onto the response shape
func NewCourseResponse(course *models.Course, offerings []*models.Offering) CourseResponse {
	resp := CourseResponse{
		ID:            course.ID,
		Name:          course.Name,
		Credits:       course.Credits,
		Category:      string(course.Category),
		Prerequisites: course.Prerequisites,
		SuggestedTerm: course.SuggestedTerm,
	}
	if resp.Prerequisites == nil {
		resp.Prerequisites = []string{}
	}
	for _, offering := range offerings {
		or := OfferingResponse{
			ID:               offering.ID,
			Section:          offering.Section,
			AvailabilityMode: string(offering.Availability.Mode),
			Terms:            offering.Availability.Terms,
		}
		for _, slot := range offering.Slots {
			or.Slots = append(or.Slots, slot.String())
		}
		resp.Offerings = append(resp.Offerings, or)
	}
	return resp
}
