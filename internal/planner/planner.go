// Package planner turns a course catalog, a student's completed courses and a
// planning configuration into an optimized term-by-term study plan. The
// optimization is encoded as a pseudo-boolean problem and handed to gophersat;
// the primary objective is the fewest terms to graduation, with an optional
// front-loading tie-break.
package planner

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/pedrohba/gradeplan/internal/app/models"
)

// DefaultDiagnosisBudget bounds the total time spent probing relaxed model
// variants after an infeasible verdict.
const DefaultDiagnosisBudget = 10 * time.Second

// Planner runs plan optimizations. Safe for concurrent use; every call builds
// its own model and solver.
type Planner struct {
	logger          zerolog.Logger
	diagnosisBudget time.Duration
}

// New creates a Planner with the default diagnosis budget.
func New(logger zerolog.Logger) *Planner {
	return &Planner{
		logger:          logger,
		diagnosisBudget: DefaultDiagnosisBudget,
	}
}

// WithDiagnosisBudget overrides the time allowed for infeasibility probes.
func (p *Planner) WithDiagnosisBudget(budget time.Duration) *Planner {
	p.diagnosisBudget = budget
	return p
}

// Optimize computes a study plan. Invalid input or configuration comes back as
// an error wrapping apperrors.ErrInvalidInput or apperrors.ErrInvalidConfig;
// an unsolvable but well-formed problem comes back as a PlanResult with status
// INFEASIBLE and diagnostic hints, not as an error.
func (p *Planner) Optimize(ctx context.Context, catalog *models.Catalog, completed models.CompletedSet, cfg models.PlanningConfig) (*models.PlanResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	graph, err := BuildPrecedenceGraph(catalog, completed)
	if err != nil {
		return nil, err
	}

	if len(graph.Remaining) == 0 {
		p.logger.Info().Msg("Nothing left to schedule, returning empty plan")
		return &models.PlanResult{
			Status:   models.PlanOptimal,
			Terms:    []models.TermPlan{},
			Warnings: graph.Warnings,
		}, nil
	}

	m, err := buildModel(catalog, graph, cfg, Relaxation{})
	if err != nil {
		return nil, err
	}

	p.logger.Debug().
		Int("courses", len(graph.Remaining)).
		Int("horizon", m.horizon).
		Int("variables", m.numVars).
		Int("constraints", len(m.constrs)).
		Msg("Optimization model built")

	res, err := solveOptimal(ctx, m, cfg.SolveTimeLimit)
	if err != nil {
		return nil, err
	}

	switch res.outcome {
	case outcomeOptimal, outcomeBestEffort:
		terms := extractPlan(catalog, m, res.assignment)
		if err := verifyRequired(graph, terms); err != nil {
			return nil, err
		}
		status := models.PlanOptimal
		warnings := graph.Warnings
		if res.outcome == outcomeBestEffort {
			status = models.PlanBestEffort
			warnings = append(warnings,
				"the time budget expired before optimality was proven; the plan may use more terms than necessary")
		}
		totalTerms := 0
		if len(terms) > 0 {
			totalTerms = terms[len(terms)-1].Term
		}
		p.logger.Info().
			Str("status", string(status)).
			Int("totalTerms", totalTerms).
			Dur("solveTime", res.elapsed).
			Msg("Plan computed")
		return &models.PlanResult{
			Status:     status,
			Terms:      terms,
			TotalTerms: totalTerms,
			Warnings:   warnings,
			SolveTime:  res.elapsed,
		}, nil

	case outcomeInfeasible:
		p.logger.Info().Dur("solveTime", res.elapsed).Msg("Problem is infeasible, running diagnosis")
		hints := diagnoseInfeasibility(ctx, catalog, graph, cfg, p.diagnosisBudget)
		return &models.PlanResult{
			Status:      models.PlanInfeasible,
			Terms:       []models.TermPlan{},
			Warnings:    graph.Warnings,
			Diagnostics: hints,
			SolveTime:   res.elapsed,
		}, nil

	default:
		// The time budget expired before any model or refutation was found.
		p.logger.Warn().Dur("solveTime", res.elapsed).Msg("Solver exhausted its time budget without a verdict")
		return &models.PlanResult{
			Status:      models.PlanInfeasible,
			Terms:       []models.TermPlan{},
			Warnings:    graph.Warnings,
			Diagnostics: []string{"the time budget expired before the solver reached any verdict; raise the solve time limit"},
			SolveTime:   res.elapsed,
		}, nil
	}
}
