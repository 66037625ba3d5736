package suite

import (
	"context"
	"fmt"
	"runtime"
	"slices"

	"github.com/alitto/pond/v2"
	"github.com/amp-labs/amp-tabular/contract"
	"github.com/amp-labs/amp-tabular/errors"
	"github.com/amp-labs/amp-tabular/frame"
)

// Apply enforces the suite's contracts in declaration order. Each contract
// sees the (possibly coerced) output of the one before it, so a suite can
// first add missing columns and then fill their nulls. The first failure
// stops the pass and is returned as-is.
func (s *Suite) Apply(ctx context.Context, f frame.Frame) (frame.Frame, error) {
	for _, c := range s.entries {
		applied, err := contract.Apply(ctx, c, f)
		if err != nil {
			return frame.Frame{}, err
		}

		f = applied
	}

	return f, nil
}

// Evaluate runs every contract's predicate against the same frame and
// reports all violations. Predicates never mutate their input, so they are
// checked concurrently on a worker pool.
func (s *Suite) Evaluate(ctx context.Context, f frame.Frame) Report {
	pool := pond.NewPool(runtime.NumCPU())
	defer pool.StopAndWait()

	group := pool.NewGroup()
	holds := make([]bool, len(s.entries))

	for i, c := range s.entries {
		group.Submit(func() {
			holds[i] = contract.Evaluate(ctx, c, f)
		})
	}

	_ = group.Wait()

	report := Report{}

	for i, c := range s.entries {
		if !holds[i] {
			report.failed = append(report.failed, c.Name())
		}
	}

	return report
}

// Report summarizes an Evaluate pass.
type Report struct {
	failed []string
}

// Passed reports whether every contract held.
func (r Report) Passed() bool {
	return len(r.failed) == 0
}

// Failed returns the names of the contracts that did not hold, in suite order.
func (r Report) Failed() []string {
	return slices.Clone(r.failed)
}

// Err returns nil when the report passed, or a single error joining one
// validation error per failed contract.
func (r Report) Err() error {
	var collection errors.Collection

	for _, name := range r.failed {
		collection.Add(fmt.Errorf("%w: contract %s did not hold", errors.ErrValidation, name))
	}

	return collection.GetError()
}
