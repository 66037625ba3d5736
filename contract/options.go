package contract

import (
	"github.com/amp-labs/amp-tabular/envutil"
	"go.uber.org/atomic"
)

// DefaultFailureTemplate is the failure message rendered when neither a
// per-instance message nor a custom template is configured. The first
// placeholder receives the contract name, the second a short container
// description.
const DefaultFailureTemplate = "contract %s violated by %s"

// Process-wide options, read by every contract at the moment Apply decides
// whether to coerce and what message to raise. Atomics keep concurrent reads
// safe; callers remain responsible for not mutating options concurrently
// with validation calls that are expected to observe a fixed configuration.
var (
	globalCoercion  = atomic.NewBool(false)                    //nolint:gochecknoglobals
	failureTemplate = atomic.NewString(DefaultFailureTemplate) //nolint:gochecknoglobals
)

// Defaults can be staged through the environment so that pipeline processes
// pick them up without code changes.
func init() { //nolint:gochecknoinits
	loadOptionsFromEnv()
}

func loadOptionsFromEnv() {
	globalCoercion.Store(
		envutil.Bool("TABULAR_COERCE", envutil.Default(false)).ValueOrElse(false))

	failureTemplate.Store(
		envutil.String("TABULAR_FAILURE_TEMPLATE",
			envutil.Default(DefaultFailureTemplate)).ValueOrElse(DefaultFailureTemplate))
}

// GlobalCoercion reports whether coercion is enabled for contracts that do
// not carry a per-instance override.
func GlobalCoercion() bool {
	return globalCoercion.Load()
}

// SetGlobalCoercion toggles coercion for all contracts without a
// per-instance override.
func SetGlobalCoercion(enabled bool) {
	globalCoercion.Store(enabled)
}

// FailureTemplate returns the current failure message template.
func FailureTemplate() string {
	return failureTemplate.Load()
}

// SetFailureTemplate replaces the failure message template. The template is
// rendered with fmt.Sprintf and two string arguments: the contract name and
// the container description.
func SetFailureTemplate(template string) {
	failureTemplate.Store(template)
}

// ResetOptions restores the built-in defaults. Intended for tests.
func ResetOptions() {
	globalCoercion.Store(false)
	failureTemplate.Store(DefaultFailureTemplate)
}
