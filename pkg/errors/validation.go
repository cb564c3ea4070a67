package errors

import (
	"math"
	"regexp"
)

// symbolRegex matches valid parameter symbols: snake_case identifiers as
// they appear in input files and record output.
var symbolRegex = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// ValidateSymbol validates a parameter symbol.
//
// The validation rules are intentionally conservative:
//   - No empty symbols
//   - Lowercase snake_case only
//   - Maximum length of 64 characters
//
// Whether a symbol names an actual input field is checked separately against
// the parameter table.
func ValidateSymbol(symbol string) error {
	if symbol == "" {
		return New(ErrCodeInvalidSymbol, "parameter symbol cannot be empty")
	}
	if len(symbol) > 64 {
		return New(ErrCodeInvalidSymbol, "parameter symbol too long (max 64 characters)")
	}
	if !symbolRegex.MatchString(symbol) {
		return New(ErrCodeInvalidSymbol, "invalid parameter symbol: %q", symbol)
	}
	return nil
}

// ValidateBounds validates a [lower, upper] sampling interval.
func ValidateBounds(symbol string, lower, upper float64) error {
	if math.IsNaN(lower) || math.IsNaN(upper) {
		return New(ErrCodeInvalidConfig, "parameter %s: bounds must not be NaN", symbol)
	}
	if math.IsInf(lower, 0) || math.IsInf(upper, 0) {
		return New(ErrCodeInvalidConfig, "parameter %s: bounds must be finite", symbol)
	}
	if upper <= lower {
		return New(ErrCodeInvalidConfig, "parameter %s: upper_bound must exceed lower_bound", symbol)
	}
	return nil
}

// ValidatePositive validates that a named quantity is strictly positive.
func ValidatePositive(symbol string, v float64) error {
	if math.IsNaN(v) || v <= 0 {
		return New(ErrCodeInvalidParameter, "%s must be positive, got %g", symbol, v)
	}
	return nil
}
