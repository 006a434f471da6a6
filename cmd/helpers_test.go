package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDays(t *testing.T) {
	assert.Equal(t, "0 days", formatDays(0))
	assert.Equal(t, "1 day", formatDays(1))
	assert.Equal(t, "7 days", formatDays(7))
}

func TestFormatRemainingDays(t *testing.T) {
	assert.Equal(t, "3 days overdue", formatRemainingDays(-3))
	assert.Equal(t, "due today", formatRemainingDays(0))
	assert.Equal(t, "1 day left", formatRemainingDays(1))
	assert.Equal(t, "14 days left", formatRemainingDays(14))
}
