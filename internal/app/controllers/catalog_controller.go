package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pedrohba/gradeplan/internal/app/models/dto"
	"github.com/pedrohba/gradeplan/internal/app/services"
	"github.com/pedrohba/gradeplan/internal/middleware"
)

// CatalogController handles catalog browsing and lifecycle operations
type CatalogController struct {
	catalogService *services.CatalogService
}

// NewCatalogController creates a new CatalogController
func NewCatalogController(catalogService *services.CatalogService) *CatalogController {
	return &CatalogController{
		catalogService: catalogService,
	}
}

// GetAllCourses retrieves all catalog courses
// @Summary Get all courses
// @Description Retrieves every course of the current catalog snapshot
// @Tags catalog
// @Accept json
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.CourseListResponse} "Courses retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Failure 503 {object} dto.ErrorResponse "Catalog not loaded"
// @Router /courses [get]
func (c *CatalogController) GetAllCourses(ctx *gin.Context) {
	courses, err := c.catalogService.GetAllCourses()
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	list := dto.CourseListResponse{
		Courses: make([]dto.CourseResponse, 0, len(courses)),
		Total:   len(courses),
	}
	for _, course := range courses {
		list.Courses = append(list.Courses, dto.NewCourseResponse(course, nil))
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      list,
		Timestamp: time.Now(),
	})
}

// GetCourseByID retrieves a course with its offerings
// @Summary Get course by ID
// @Description Retrieves a specific course with all its timetabled offerings
// @Tags catalog
// @Accept json
// @Produce json
// @Param id path string true "Course ID"
// @Success 200 {object} dto.APIResponse{data=dto.CourseResponse} "Course retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Failure 503 {object} dto.ErrorResponse "Catalog not loaded"
// @Router /courses/{id} [get]
func (c *CatalogController) GetCourseByID(ctx *gin.Context) {
	course, offerings, err := c.catalogService.GetCourse(ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.NewCourseResponse(course, offerings),
		Timestamp: time.Now(),
	})
}

// ReloadCatalog rebuilds the catalog snapshot from storage
// @Summary Reload the catalog
// @Description Reloads the catalog from the database and atomically replaces the in-memory snapshot
// @Tags catalog
// @Accept json
// @Produce json
// @Success 200 {object} dto.APIResponse "Catalog reloaded"
// @Failure 400 {object} dto.ErrorResponse "Stored catalog fails validation"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /catalog/reload [post]
func (c *CatalogController) ReloadCatalog(ctx *gin.Context) {
	catalog, err := c.catalogService.Reload(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      gin.H{"courses": catalog.Len()},
		Timestamp: time.Now(),
	})
}
