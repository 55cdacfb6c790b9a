package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pedrohba/gradeplan/internal/app/models"
	"github.com/pedrohba/gradeplan/internal/app/models/dto"
	"github.com/pedrohba/gradeplan/internal/app/services"
	"github.com/pedrohba/gradeplan/internal/middleware"
)

// PlanController handles plan optimization requests
type PlanController struct {
	planService *services.PlanService
}

// NewPlanController creates a new PlanController
func NewPlanController(planService *services.PlanService) *PlanController {
	return &PlanController{
		planService: planService,
	}
}

// CreatePlan computes an optimized study plan
// @Summary Compute a study plan
// @Description Runs the term-assignment optimization for the given completed set and returns a term-by-term plan
// @Tags plans
// @Accept json
// @Produce json
// @Param request body dto.CreatePlanRequest true "Completed courses and optional configuration overrides"
// @Success 200 {object} dto.APIResponse{data=dto.PlanResponse} "Plan computed (OPTIMAL or BEST_EFFORT)"
// @Success 422 {object} dto.APIResponse{data=dto.PlanResponse} "No feasible plan, diagnostics attached"
// @Failure 400 {object} dto.ErrorResponse "Invalid catalog reference or configuration"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Failure 503 {object} dto.ErrorResponse "Catalog not loaded"
// @Router /plans [post]
func (c *PlanController) CreatePlan(ctx *gin.Context) {
	var req dto.CreatePlanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid plan request")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	plan, err := c.planService.CreatePlan(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	// Infeasible outcomes are well-formed answers carrying diagnostics, so
	// they keep the response envelope and only change the status code.
	status := http.StatusOK
	if plan.Status == string(models.PlanInfeasible) {
		status = http.StatusUnprocessableEntity
	}

	ctx.JSON(status, dto.APIResponse{
		Data:      plan,
		Timestamp: time.Now(),
	})
}
