package planner

import (
	"context"
	"fmt"
	"time"

	"github.com/crillab/gophersat/solver"

	"github.com/pedrohba/gradeplan/internal/app/models"
)

// diagnoseExtraTerms is how far past the requested horizon the ladder looks
// when probing whether more terms would make the problem feasible.
const diagnoseExtraTerms = 4

// diagnoseInfeasibility probes progressively relaxed model variants to tell
// the caller which constraint group makes their problem unsolvable. Each probe
// is a feasibility-only solve under a slice of the diagnosis budget; probes
// that time out are simply skipped, a hint is advice, not a verdict.
func diagnoseInfeasibility(ctx context.Context, catalog *models.Catalog, graph *PrecedenceGraph, cfg models.PlanningConfig, budget time.Duration) []string {
	steps := []struct {
		relax Relaxation
		hint  string
	}{
		{
			Relaxation{WidenCredits: true},
			fmt.Sprintf("feasible without the %d-%d credits per term window; widen the credit bounds",
				cfg.MinCreditsPerTerm, cfg.MaxCreditsPerTerm),
		},
		{
			Relaxation{ExtraTerms: diagnoseExtraTerms},
			fmt.Sprintf("feasible with a longer horizon; %d terms are not enough", cfg.Horizon),
		},
		{
			Relaxation{WidenCredits: true, ExtraTerms: diagnoseExtraTerms, IgnoreConflicts: true},
			"feasible only when time-slot conflicts are ignored; conflicting offerings block every plan",
		},
	}

	perStep := budget / time.Duration(len(steps))
	var hints []string
	for _, step := range steps {
		m, err := buildModel(catalog, graph, cfg, step.relax)
		if err != nil {
			continue
		}
		status, err := solveFeasible(ctx, m, perStep)
		if err != nil {
			break // context gone, stop probing
		}
		if status == solver.Sat {
			hints = append(hints, step.hint)
			break
		}
	}

	if len(hints) == 0 {
		hints = append(hints, "no single constraint group explains the infeasibility; review the catalog and configuration together")
	}
	return hints
}
