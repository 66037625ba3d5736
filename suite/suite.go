// Package suite loads declarative lists of frame contracts from YAML, so
// pipeline authors can keep pre-conditions next to their pipeline definitions
// instead of in code. A suite applies its contracts in declaration order, or
// evaluates all of them to produce a report of every violation at once.
package suite

import (
	"fmt"

	"github.com/amp-labs/amp-tabular/contract"
	"github.com/amp-labs/amp-tabular/errors"
	"github.com/amp-labs/amp-tabular/frame"
	"gopkg.in/yaml.v3"
)

// Contract kinds accepted in suite documents.
const (
	KindHasColumns  = "has_columns"
	KindHasDtypes   = "has_dtypes"
	KindNotNaN      = "not_nan"
	KindUniqueIndex = "unique_index"
)

// document is the YAML shape of a suite file.
type document struct {
	Contracts []entrySpec `yaml:"contracts"`
}

// entrySpec is one declared contract. Kind selects the contract; the other
// fields parameterize it. Coerce and Message are optional per-instance
// overrides, identical to contract.WithCoercion and contract.WithMessage.
type entrySpec struct {
	Kind    string            `yaml:"kind"`
	Columns []string          `yaml:"columns,omitempty"`
	Dtypes  map[string]string `yaml:"dtypes,omitempty"`
	Coerce  *bool             `yaml:"coerce,omitempty"`
	Message string            `yaml:"message,omitempty"`
}

// Suite is an ordered list of frame contracts.
type Suite struct {
	entries []contract.Contract[frame.Frame]
}

// Parse reads a YAML suite document. Unknown kinds and missing parameters
// are configuration errors.
func Parse(data []byte) (*Suite, error) {
	var doc document

	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrConfiguration, err)
	}

	s := &Suite{entries: make([]contract.Contract[frame.Frame], 0, len(doc.Contracts))}

	for i, spec := range doc.Contracts {
		built, err := build(spec)
		if err != nil {
			return nil, fmt.Errorf("contract %d: %w", i, err)
		}

		s.entries = append(s.entries, built)
	}

	return s, nil
}

// Len returns the number of contracts in the suite.
func (s *Suite) Len() int {
	return len(s.entries)
}

// build turns one declared entry into a contract instance.
func build(spec entrySpec) (contract.Contract[frame.Frame], error) {
	var opts []contract.Option

	if spec.Coerce != nil {
		opts = append(opts, contract.WithCoercion(*spec.Coerce))
	}

	if spec.Message != "" {
		opts = append(opts, contract.WithMessage(spec.Message))
	}

	switch spec.Kind {
	case KindHasColumns:
		if len(spec.Columns) == 0 {
			return nil, fmt.Errorf("%w: has_columns needs at least one column",
				errors.ErrConfiguration)
		}

		return contract.NewHasColumns(spec.Columns, opts...), nil

	case KindHasDtypes:
		if len(spec.Dtypes) == 0 {
			return nil, fmt.Errorf("%w: has_dtypes needs at least one column dtype",
				errors.ErrConfiguration)
		}

		dtypes := make(map[string]frame.DType, len(spec.Dtypes))

		for name, dtypeName := range spec.Dtypes {
			dtype, err := frame.ParseDType(dtypeName)
			if err != nil {
				return nil, fmt.Errorf("%w: column %q: %w",
					errors.ErrConfiguration, name, err)
			}

			dtypes[name] = dtype
		}

		return contract.NewHasDtypes(dtypes, opts...), nil

	case KindNotNaN:
		return contract.NewNotNaNFrame(spec.Columns, opts...), nil

	case KindUniqueIndex:
		return contract.NewUniqueIndexFrame(opts...), nil

	default:
		return nil, fmt.Errorf("%w: unknown contract kind %q",
			errors.ErrConfiguration, spec.Kind)
	}
}
