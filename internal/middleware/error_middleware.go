package middleware

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pedrohba/gradeplan/internal/app/models/dto"
	"github.com/pedrohba/gradeplan/internal/pkg/apperrors"
)

// --- Central Error Handling Middleware/Function ---

// HandleAPIError handles common API errors and returns appropriate responses
func HandleAPIError(c *gin.Context, err error) {
	// Surface the message and details of wrapped custom errors.
	var custom *apperrors.CustomError
	message := func(fallback string) string {
		if errors.As(err, &custom) && custom.Message != "" {
			return custom.Message
		}
		return fallback
	}

	// Check for specific error types
	switch {
	case errors.Is(err, apperrors.ErrResourceNotFound):
		respond(c, 404, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, message("Resource not found")))
		return
	case errors.Is(err, apperrors.ErrInvalidConfig):
		respond(c, 400, dto.NewErrorDetail(dto.ErrorCodeInvalidConfig, err.Error()))
		return
	case errors.Is(err, apperrors.ErrInvalidInput):
		respond(c, 400, dto.NewErrorDetail(dto.ErrorCodeInvalidCatalog, err.Error()))
		return
	case apperrors.Is(err, apperrors.ErrValidationFailed, apperrors.ErrBadRequest):
		respond(c, 400, dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error()))
		return
	case errors.Is(err, apperrors.ErrCatalogNotLoaded):
		respond(c, 503, dto.NewErrorDetail(dto.ErrorCodeCatalogNotLoaded, "Catalog not loaded yet"))
		return
	case errors.Is(err, apperrors.ErrSolverFault):
		respond(c, 500, dto.NewErrorDetail(dto.ErrorCodeSolverFault, "Solver fault").WithDebugInfo("%v", err))
		return
	default:
		// Handle unknown errors
		respond(c, 500, dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error"))
		return
	}
}

func respond(c *gin.Context, status int, detail *dto.ErrorDetail) {
	c.JSON(status, dto.APIResponse{
		Error:     detail,
		Timestamp: time.Now(),
	})
}
