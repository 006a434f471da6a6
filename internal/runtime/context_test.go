package runtime

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	fiterrors "github.com/fitlog-cli/fitlog/internal/errors"
	"github.com/fitlog-cli/fitlog/internal/output"
)

// newTestContext builds a runtime context against an in-memory database.
func newTestContext(t *testing.T) *Context {
	t.Helper()
	ctx, err := New(Options{
		InMemory:  true,
		Format:    output.FormatCLI,
		ColorMode: output.ColorNever,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, ctx.Close())
	})
	return ctx
}

func TestNewWiresRepositories(t *testing.T) {
	ctx := newTestContext(t)

	assert.NotNil(t, ctx.DB)
	assert.NotNil(t, ctx.GoalRepo)
	assert.NotNil(t, ctx.ProgressRepo)
	assert.NotNil(t, ctx.WorkoutRepo)
	assert.NotNil(t, ctx.Formatter)
}

func TestEnvironmentOverride(t *testing.T) {
	t.Setenv("FITLOG_DATABASE", ":memory:")

	ctx, err := New(DefaultOptions())
	require.NoError(t, err)
	defer ctx.Close()

	assert.NotNil(t, ctx.DB)
}

func TestIsJSON(t *testing.T) {
	ctx := newTestContext(t)
	assert.False(t, ctx.IsJSON())

	ctx.Formatter.Format = output.FormatJSON
	assert.True(t, ctx.IsJSON())
}

func TestFormatError(t *testing.T) {
	assert.Empty(t, FormatError(nil))

	plain := errors.New("boom")
	assert.Equal(t, "boom", FormatError(plain))

	ue := fiterrors.NewUserError("Invalid month", "Use a month like '2024-05'")
	msg := FormatError(ue)
	assert.Contains(t, msg, "Invalid month")
	assert.Contains(t, msg, "Hint: Use a month like '2024-05'")

	assert.Equal(t, "Use a month like '2024-05'", GetSuggestion(ue))
	assert.Empty(t, GetSuggestion(plain))
}
