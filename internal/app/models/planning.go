package models

import (
	"fmt"
	"time"

	"github.com/pedrohba/gradeplan/internal/pkg/apperrors"
)

// MaxHorizon bounds how many future terms any plan may consider.
const MaxHorizon = 24

// TieBreakPolicy selects the secondary objective applied once the number of
// terms to graduation is minimal.
type TieBreakPolicy string

const (
	// TieBreakFrontLoad prefers denser, earlier terms among equally short plans.
	TieBreakFrontLoad TieBreakPolicy = "front_load"
	// TieBreakNone accepts any plan with the minimal number of terms.
	TieBreakNone TieBreakPolicy = "none"
)

// PlanningConfig carries the per-request optimization parameters.
type PlanningConfig struct {
	Horizon           int
	MinCreditsPerTerm int
	MaxCreditsPerTerm int
	TermOneParity     TermParity
	SolveTimeLimit    time.Duration
	ElectiveMinima    map[CourseCategory]int
	TieBreak          TieBreakPolicy
}

// Validate checks the configuration is internally consistent.
func (c PlanningConfig) Validate() error {
	if c.Horizon < 1 || c.Horizon > MaxHorizon {
		return fmt.Errorf("%w: horizon must be between 1 and %d, got %d",
			apperrors.ErrInvalidConfig, MaxHorizon, c.Horizon)
	}
	if c.MinCreditsPerTerm < 0 {
		return fmt.Errorf("%w: min credits per term must not be negative", apperrors.ErrInvalidConfig)
	}
	if c.MaxCreditsPerTerm <= 0 {
		return fmt.Errorf("%w: max credits per term must be positive", apperrors.ErrInvalidConfig)
	}
	if c.MinCreditsPerTerm > c.MaxCreditsPerTerm {
		return fmt.Errorf("%w: min credits per term (%d) exceeds max (%d)",
			apperrors.ErrInvalidConfig, c.MinCreditsPerTerm, c.MaxCreditsPerTerm)
	}
	if c.TermOneParity != ParityOdd && c.TermOneParity != ParityEven {
		return fmt.Errorf("%w: term one parity must be ODD or EVEN, got %q",
			apperrors.ErrInvalidConfig, c.TermOneParity)
	}
	if c.SolveTimeLimit <= 0 {
		return fmt.Errorf("%w: solve time limit must be positive", apperrors.ErrInvalidConfig)
	}
	switch c.TieBreak {
	case TieBreakFrontLoad, TieBreakNone:
	default:
		return fmt.Errorf("%w: unknown tie-break policy %q", apperrors.ErrInvalidConfig, c.TieBreak)
	}
	for category, minimum := range c.ElectiveMinima {
		if !category.Elective() {
			return fmt.Errorf("%w: minimum credits set for non-elective category %q",
				apperrors.ErrInvalidConfig, category)
		}
		if minimum < 0 {
			return fmt.Errorf("%w: minimum credits for %q must not be negative",
				apperrors.ErrInvalidConfig, category)
		}
	}
	return nil
}
