// Package parser provides natural-language date parsing for the FitLog CLI.
package parser

import (
	"strings"
	"time"

	"github.com/markusmobius/go-dateparser"

	"github.com/fitlog-cli/fitlog/internal/analytics"
	"github.com/fitlog-cli/fitlog/internal/errors"
)

// dateLayouts are explicit formats tried before natural-language parsing.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"Jan 2 2006",
	"Jan 2, 2006",
	"January 2 2006",
}

// monthLayouts are explicit formats for month arguments.
var monthLayouts = []string{
	"2006-01",
	"January 2006",
	"Jan 2006",
	"01/2006",
}

// ParseDate parses a date argument: empty or "today" resolve relative to
// now, explicit layouts are tried first, anything else goes through
// natural-language parsing ("yesterday", "last monday", "3 days ago").
// The result is normalized to a calendar day.
func ParseDate(input string, now time.Time) (time.Time, error) {
	input = strings.TrimSpace(input)

	switch strings.ToLower(input) {
	case "", "today", "now":
		return analytics.DateOf(now), nil
	case "yesterday":
		return analytics.DateOf(now).AddDate(0, 0, -1), nil
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, input); err == nil {
			return analytics.DateOf(t), nil
		}
	}

	cfg := &dateparser.Configuration{CurrentTime: now}
	result, err := dateparser.Parse(cfg, input)
	if err != nil {
		return time.Time{}, errors.NewUserErrorWithField("date", input,
			"Could not parse date",
			"Use a date like '2024-05-12', 'yesterday', or 'last monday'")
	}
	return analytics.DateOf(result.Time), nil
}

// ParseMonth parses a month argument: empty resolves to the current month,
// "last"/"next" shift relative to it, and explicit layouts or
// natural-language input name a month directly.
func ParseMonth(input string, now time.Time) (analytics.Month, error) {
	input = strings.TrimSpace(input)

	current := analytics.MonthOf(now)
	switch strings.ToLower(input) {
	case "", "this", "current":
		return current, nil
	case "last", "previous":
		return current.Prev(), nil
	case "next":
		return current.Next(), nil
	}

	for _, layout := range monthLayouts {
		if t, err := time.Parse(layout, input); err == nil {
			return analytics.MonthOf(t), nil
		}
	}

	cfg := &dateparser.Configuration{CurrentTime: now}
	result, err := dateparser.Parse(cfg, input)
	if err != nil {
		return analytics.Month{}, errors.NewUserErrorWithField("month", input,
			"Could not parse month",
			"Use a month like '2024-05', 'May 2024', or 'last'")
	}
	return analytics.MonthOf(result.Time), nil
}
