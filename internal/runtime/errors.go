package runtime

import (
	"github.com/fitlog-cli/fitlog/internal/errors"
)

// FormatError renders an error for terminal display, appending the
// suggestion when one exists.
func FormatError(err error) string {
	if err == nil {
		return ""
	}

	if ue, ok := errors.AsUserError(err); ok {
		msg := ue.Error()
		if ue.Suggestion != "" {
			msg += "\n  Hint: " + ue.Suggestion
		}
		return msg
	}

	return err.Error()
}

// GetSuggestion extracts a fix-it suggestion from an error, if any.
func GetSuggestion(err error) string {
	if ue, ok := errors.AsUserError(err); ok {
		return ue.Suggestion
	}
	return ""
}
