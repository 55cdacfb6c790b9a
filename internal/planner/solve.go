package planner

import (
	"context"
	"time"

	"github.com/crillab/gophersat/solver"
)

// solveOutcome classifies what the driver got back from the solver.
type solveOutcome int

const (
	outcomeOptimal solveOutcome = iota
	outcomeBestEffort
	outcomeInfeasible
	outcomeUnknown
)

// solveResult carries the driver's verdict plus the best model found, if any.
type solveResult struct {
	outcome    solveOutcome
	assignment map[int]bool
	elapsed    time.Duration
}

// solveOptimal runs the anytime optimization loop. The solver publishes every
// improving solution on a channel; the driver keeps the latest incumbent and,
// when the time budget expires before optimality is proven, stops the search
// and returns the incumbent as a best-effort answer. Context cancellation
// aborts without waiting for the solver to wind down.
func solveOptimal(ctx context.Context, m *pbModel, limit time.Duration) (*solveResult, error) {
	s := solver.New(m.problem(true))

	results := make(chan solver.Result)
	stop := make(chan struct{})
	done := make(chan solver.Result, 1)

	start := time.Now()
	go func() {
		done <- s.Optimal(results, stop)
	}()

	timer := time.NewTimer(limit)
	defer timer.Stop()

	var incumbent *solver.Result
	stopped := false
	stopSearch := func() {
		if !stopped {
			close(stop)
			stopped = true
		}
	}

	incoming := results
	for {
		select {
		case res, ok := <-incoming:
			if !ok {
				incoming = nil // final verdict arrives on done
				continue
			}
			r := res
			incumbent = &r

		case final := <-done:
			return classify(final, incumbent, time.Since(start)), nil

		case <-ctx.Done():
			stopSearch()
			// The solver may still be blocked publishing an improving
			// solution; drain until it closes the channel so the search
			// goroutine is not stranded. done is buffered.
			go func() {
				for range results {
				}
			}()
			return nil, ctx.Err()

		case <-timer.C:
			stopSearch()
		}
	}
}

// classify maps the solver's final status onto the driver outcome. A stopped
// search that produced at least one incumbent is a usable best-effort plan,
// not a failure.
func classify(final solver.Result, incumbent *solver.Result, elapsed time.Duration) *solveResult {
	switch {
	case final.Status == solver.Sat:
		return &solveResult{outcome: outcomeOptimal, assignment: boolModel(final.Model), elapsed: elapsed}
	case final.Status == solver.Unsat:
		return &solveResult{outcome: outcomeInfeasible, elapsed: elapsed}
	case incumbent != nil:
		return &solveResult{outcome: outcomeBestEffort, assignment: boolModel(incumbent.Model), elapsed: elapsed}
	default:
		return &solveResult{outcome: outcomeUnknown, elapsed: elapsed}
	}
}

// solveFeasible answers a yes/no/unknown feasibility question within a time
// budget. With no cost function attached the search stops at the first model,
// which keeps the infeasibility diagnosis probes cheap.
func solveFeasible(ctx context.Context, m *pbModel, limit time.Duration) (solver.Status, error) {
	s := solver.New(m.problem(false))

	stop := make(chan struct{})
	done := make(chan solver.Result, 1)
	go func() {
		done <- s.Optimal(nil, stop)
	}()

	timer := time.NewTimer(limit)
	defer timer.Stop()

	stopped := false
	stopSearch := func() {
		if !stopped {
			close(stop)
			stopped = true
		}
	}

	for {
		select {
		case final := <-done:
			return final.Status, nil
		case <-timer.C:
			stopSearch()
		case <-ctx.Done():
			stopSearch()
			return solver.Indet, ctx.Err()
		}
	}
}

// boolModel flattens the solver's model into a variable id -> truth value map.
// The pseudo-boolean front end numbers variables from 1, so index i of the
// model slice holds the truth value of variable i+1.
func boolModel(m []bool) map[int]bool {
	out := make(map[int]bool, len(m))
	for i, val := range m {
		out[i+1] = val
	}
	return out
}
