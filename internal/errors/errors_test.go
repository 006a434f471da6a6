package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserErrorMessage(t *testing.T) {
	err := NewUserError("Invalid input", "Try --help")
	assert.Equal(t, "Invalid input", err.Error())

	err = NewUserErrorWithField("date", "notadate", "Could not parse date", "Use YYYY-MM-DD")
	assert.Equal(t, "Could not parse date: 'notadate'", err.Error())
}

func TestSystemErrorMessage(t *testing.T) {
	cause := errors.New("disk full")

	err := NewSystemError("write failed", cause)
	assert.Equal(t, "write failed", err.Error())
	assert.ErrorIs(t, err, cause)

	err = NewSystemErrorWithOp("goal_create", "write failed", cause)
	assert.Equal(t, "write failed during goal_create", err.Error())
}

func TestClassification(t *testing.T) {
	userErr := NewUserError("bad input", "fix it")
	sysErr := NewSystemError("boom", errors.New("cause"))

	assert.True(t, IsUserError(userErr))
	assert.False(t, IsUserError(sysErr))
	assert.True(t, IsSystemError(sysErr))
	assert.False(t, IsSystemError(userErr))
	assert.False(t, IsUserError(nil))
}

func TestClassificationThroughWrapping(t *testing.T) {
	userErr := NewUserError("bad input", "fix it")
	wrapped := fmt.Errorf("handling command: %w", userErr)

	assert.True(t, IsUserError(wrapped))

	ue, ok := AsUserError(wrapped)
	require.True(t, ok)
	assert.Equal(t, "fix it", ue.Suggestion)
}

func TestWrap(t *testing.T) {
	base := errors.New("base")

	err := Wrap(base, "context")
	require.Error(t, err)
	assert.Equal(t, "context: base", err.Error())
	assert.ErrorIs(t, err, base)

	assert.Nil(t, Wrap(nil, "context"))
	assert.Nil(t, Wrapf(nil, "context %d", 1))

	err = Wrapf(base, "goal %s", "g1")
	assert.Equal(t, "goal g1: base", err.Error())
}

func TestSentinels(t *testing.T) {
	wrapped := Wrap(ErrGoalNotFound, "show command")
	assert.ErrorIs(t, wrapped, ErrGoalNotFound)
	assert.NotErrorIs(t, wrapped, ErrWorkoutNotFound)
}
