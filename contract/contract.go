// Package contract implements declarative validation contracts over the
// containers in the frame package. A contract pairs a predicate with a
// best-effort coercion; Apply runs the shared protocol: check the predicate,
// optionally coerce on failure, and check once more. Concrete contracts for
// each container kind live in this package as a closed set of variants.
package contract

import (
	"context"
	"fmt"
	"time"

	"github.com/amp-labs/amp-tabular/contexts"
	"github.com/amp-labs/amp-tabular/errors"
	"github.com/amp-labs/amp-tabular/logger"
	"github.com/amp-labs/amp-tabular/optional"
	"github.com/amp-labs/amp-tabular/zero"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Contract is a validation rule over one container kind. Holds must be a pure
// function of the container's current content and must never mutate it.
// Coerce produces a new candidate container that may satisfy the predicate;
// it is best-effort and makes no guarantee that the candidate passes.
//
// Implementations embed settings, which supplies the config hook, so the
// shared Apply sequencing is written exactly once.
type Contract[C any] interface {
	// Name identifies the contract in messages, logs, and metrics.
	Name() string

	// Holds reports whether the predicate is satisfied.
	Holds(container C) bool

	// Coerce returns a transformed copy of the container that may satisfy
	// the predicate. The input is never modified.
	Coerce(container C) (C, error)

	// config exposes per-instance settings to the shared protocol.
	// Unexported on purpose: the set of container variants is closed.
	config() settings
}

// settings holds the per-instance configuration shared by every contract:
// an optional coercion override and an optional failure message. Embed it in
// a contract struct to satisfy the config hook.
type settings struct {
	coerce  optional.Value[bool]
	message string
}

func (s settings) config() settings {
	return s
}

// Option configures a contract instance at construction time.
type Option func(*settings)

// WithCoercion overrides the global coercion toggle for this instance.
func WithCoercion(enabled bool) Option {
	return func(s *settings) {
		s.coerce = optional.Some(enabled)
	}
}

// WithMessage replaces the rendered failure-template message with a fixed one.
func WithMessage(message string) Option {
	return func(s *settings) {
		s.message = message
	}
}

func newSettings(opts []Option) settings {
	var s settings
	for _, opt := range opts {
		opt(&s)
	}

	return s
}

// tracer instruments Apply. With no tracer provider configured (see the
// telemetry package) the spans are no-ops.
var tracer = otel.Tracer("github.com/amp-labs/amp-tabular/contract") //nolint:gochecknoglobals

// Evaluate reports whether the contract's predicate holds for the container.
// It never mutates the container and never returns an error: a failed
// predicate is simply false.
func Evaluate[C any](ctx context.Context, c Contract[C], container C) bool {
	ctx = contexts.EnsureContext(ctx)

	holds := c.Holds(container)

	recordEvaluation(c.Name(), holds)

	if !holds {
		logger.Get(ctx).Debug("contract predicate failed",
			"contract", c.Name(),
			"container", describe(container))
	}

	return holds
}

// Apply enforces the contract on the container. A passing container is
// returned unchanged. On failure, if coercion is enabled (the instance
// override, or else the global option), the contract's coercion runs once and
// the candidate is rechecked; a compliant candidate is returned. Everything
// else fails with an error wrapping errors.ErrValidation, after which the
// original container is untouched.
func Apply[C any](ctx context.Context, c Contract[C], container C) (C, error) {
	ctx = contexts.EnsureContext(ctx)

	ctx, span := tracer.Start(ctx, "contract.apply", trace.WithAttributes(
		attribute.String("contract", c.Name()),
	))
	defer span.End()

	start := time.Now()

	if c.Holds(container) {
		recordApplication(c.Name(), outcomeValid, time.Since(start))

		return container, nil
	}

	if !coercionEnabled(c) {
		recordApplication(c.Name(), outcomeRejected, time.Since(start))

		err := failure(c, container)
		span.SetStatus(codes.Error, "predicate failed, coercion disabled")
		span.RecordError(err)

		return zero.Value[C](), err
	}

	logger.Get(ctx).Warn("contract predicate failed, attempting coercion",
		"contract", c.Name(),
		"container", describe(container))

	candidate, err := c.Coerce(container)
	if err == nil && c.Holds(candidate) {
		recordApplication(c.Name(), outcomeCoerced, time.Since(start))
		span.SetAttributes(attribute.Bool("coerced", true))

		return candidate, nil
	}

	recordApplication(c.Name(), outcomeCoercionFailed, time.Since(start))

	failErr := failure(c, container)
	if err != nil {
		failErr = logger.AnnotateError(failErr, "coerce_error", err)
	}

	span.SetStatus(codes.Error, "coercion did not produce a compliant container")
	span.RecordError(failErr)

	return zero.Value[C](), failErr
}

// coercionEnabled resolves the effective coercion flag: the per-instance
// override wins, otherwise the global option applies.
func coercionEnabled[C any](c Contract[C]) bool {
	return c.config().coerce.GetOrElse(GlobalCoercion())
}

// failure builds the validation error for a contract/container pair. A
// per-instance message is used verbatim; otherwise the global failure
// template is rendered with the contract name and container description.
func failure[C any](c Contract[C], container C) error {
	message := c.config().message
	if message == "" {
		message = fmt.Sprintf(FailureTemplate(), c.Name(), describe(container))
	}

	return logger.AnnotateError(
		fmt.Errorf("%w: %s", errors.ErrValidation, message),
		"contract", c.Name(),
	)
}

// describe renders a container for messages. All frame containers implement
// fmt.Stringer; anything else falls back to %v.
func describe(container any) string {
	if s, ok := container.(fmt.Stringer); ok {
		return s.String()
	}

	return fmt.Sprintf("%v", container)
}
