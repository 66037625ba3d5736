package contract

import (
	"context"
	"fmt"
	"maps"

	"github.com/amp-labs/amp-tabular/errors"
	"github.com/amp-labs/amp-tabular/zero"
)

// Args carries the named arguments of a wrapped operation.
type Args map[string]any

// Target is an operation whose arguments can be guarded by contracts.
type Target func(ctx context.Context, args Args) (any, error)

// Binding ties an argument name to a contract over one container kind.
// Build bindings with Bind.
type Binding struct {
	name  string
	apply func(ctx context.Context, value any) (any, error)
}

// Bind pairs an argument name with a contract. At call time the argument's
// dynamic type must be the contract's container kind; anything else is a
// shape error.
func Bind[C any](argName string, c Contract[C]) Binding {
	return Binding{
		name: argName,
		apply: func(ctx context.Context, value any) (any, error) {
			container, ok := value.(C)
			if !ok {
				return nil, fmt.Errorf("%w: argument %q is %T, want %T",
					errors.ErrShape, argName, value, zero.Value[C]())
			}

			return Apply(ctx, c, container)
		},
	}
}

// Requires wraps target so that every bound argument is validated (and
// possibly coerced) before target runs. Coerced containers are substituted
// into the arguments the target receives; the caller's Args map is not
// modified. A bound name missing from the call is a configuration error, and
// validation errors from Apply propagate unmasked.
func Requires(target Target, bindings ...Binding) Target {
	return func(ctx context.Context, args Args) (any, error) {
		checked := maps.Clone(args)
		if checked == nil {
			checked = Args{}
		}

		for _, binding := range bindings {
			value, ok := checked[binding.name]
			if !ok {
				return nil, fmt.Errorf("%w: argument %q not present in call",
					errors.ErrConfiguration, binding.name)
			}

			coerced, err := binding.apply(ctx, value)
			if err != nil {
				return nil, err
			}

			checked[binding.name] = coerced
		}

		return target(ctx, checked)
	}
}
