package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/pedrohba/gradeplan/internal/app/controllers"
	"github.com/pedrohba/gradeplan/internal/app/models/dto"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	planController *controllers.PlanController,
	catalogController *controllers.CatalogController,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// Plan routes
	plans := v1.Group("/plans")
	{
		plans.POST("", planController.CreatePlan)
	}

	// Catalog routes
	courses := v1.Group("/courses")
	{
		courses.GET("", catalogController.GetAllCourses)
		courses.GET("/:id", catalogController.GetCourseByID)
	}

	catalog := v1.Group("/catalog")
	{
		catalog.POST("/reload", catalogController.ReloadCatalog)
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})
}
