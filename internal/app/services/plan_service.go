package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/pedrohba/gradeplan/internal/app/models"
	"github.com/pedrohba/gradeplan/internal/app/models/dto"
	"github.com/pedrohba/gradeplan/internal/planner"
)

// PlanService runs plan optimizations against the current catalog snapshot.
type PlanService struct {
	catalogService *CatalogService
	planner        *planner.Planner
	defaults       models.PlanningConfig
	logger         zerolog.Logger
}

// NewPlanService creates a new plan service
func NewPlanService(catalogService *CatalogService, pl *planner.Planner, defaults models.PlanningConfig, logger zerolog.Logger) *PlanService {
	return &PlanService{
		catalogService: catalogService,
		planner:        pl,
		defaults:       defaults,
		logger:         logger,
	}
}

// CreatePlan applies request overrides on top of the configured defaults and
// runs the optimization. Infeasible outcomes are plan results, not errors.
func (s *PlanService) CreatePlan(ctx context.Context, req *dto.CreatePlanRequest) (*dto.PlanResponse, error) {
	catalog, err := s.catalogService.Catalog()
	if err != nil {
		return nil, err
	}

	cfg := s.planningConfig(req)
	completed := models.NewCompletedSet(req.CompletedCourses...)

	s.logger.Debug().
		Int("completedCourses", len(completed)).
		Int("horizon", cfg.Horizon).
		Msg("Running plan optimization")

	result, err := s.planner.Optimize(ctx, catalog, completed, cfg)
	if err != nil {
		return nil, err
	}

	return dto.NewPlanResponse(uuid.New().String(), result), nil
}

// planningConfig merges request overrides into the configured defaults.
func (s *PlanService) planningConfig(req *dto.CreatePlanRequest) models.PlanningConfig {
	cfg := s.defaults

	if req.Horizon != nil {
		cfg.Horizon = *req.Horizon
	}
	if req.MinCreditsPerTerm != nil {
		cfg.MinCreditsPerTerm = *req.MinCreditsPerTerm
	}
	if req.MaxCreditsPerTerm != nil {
		cfg.MaxCreditsPerTerm = *req.MaxCreditsPerTerm
	}
	if req.TermOneParity != nil {
		cfg.TermOneParity = models.TermParity(strings.ToUpper(*req.TermOneParity))
	}
	if req.SolveTimeLimitSec != nil {
		cfg.SolveTimeLimit = time.Duration(*req.SolveTimeLimitSec) * time.Second
	}
	if req.TieBreak != nil {
		cfg.TieBreak = models.TieBreakPolicy(strings.ToLower(*req.TieBreak))
	}
	if len(req.ElectiveMinima) > 0 {
		minima := make(map[models.CourseCategory]int, len(req.ElectiveMinima))
		for category, minimum := range req.ElectiveMinima {
			minima[models.CourseCategory(strings.ToUpper(category))] = minimum
		}
		cfg.ElectiveMinima = minima
	}

	return cfg
}
