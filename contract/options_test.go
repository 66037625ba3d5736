package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Options are process-wide, so these tests are deliberately not parallel.

func TestOptionsDefaults(t *testing.T) {
	defer ResetOptions()

	ResetOptions()

	assert.False(t, GlobalCoercion())
	assert.Equal(t, DefaultFailureTemplate, FailureTemplate())
}

func TestOptionsRoundTrip(t *testing.T) {
	defer ResetOptions()

	SetGlobalCoercion(true)
	assert.True(t, GlobalCoercion())

	SetFailureTemplate("rule %s broke on %s")
	assert.Equal(t, "rule %s broke on %s", FailureTemplate())

	ResetOptions()
	assert.False(t, GlobalCoercion())
	assert.Equal(t, DefaultFailureTemplate, FailureTemplate())
}

func TestOptionsFromEnv(t *testing.T) {
	defer ResetOptions()

	t.Setenv("TABULAR_COERCE", "true")
	t.Setenv("TABULAR_FAILURE_TEMPLATE", "rule %s broke on %s")

	loadOptionsFromEnv()

	assert.True(t, GlobalCoercion())
	assert.Equal(t, "rule %s broke on %s", FailureTemplate())
}

func TestOptionsFromEnvMalformed(t *testing.T) {
	defer ResetOptions()

	t.Setenv("TABULAR_COERCE", "definitely")

	loadOptionsFromEnv()

	assert.False(t, GlobalCoercion())
}
