package errors

import (
	"math"
	"strings"
	"testing"
)

func TestValidateSymbol(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid simple", "rmajor", false},
		{"valid with underscores", "dr_blkt_outboard", false},
		{"valid with digits", "d_vv_top", false},
		{"empty", "", true},
		{"uppercase", "RMajor", true},
		{"leading digit", "2theta", true},
		{"leading underscore", "_rmajor", true},
		{"spaces", "dr blkt", true},
		{"path characters", "../rmajor", true},
		{"too long", strings.Repeat("a", 65), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSymbol(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateSymbol(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidSymbol) {
				t.Errorf("ValidateSymbol(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidSymbol)
			}
		})
	}
}

func TestValidateBounds(t *testing.T) {
	tests := []struct {
		name         string
		lower, upper float64
		wantErr      bool
	}{
		{"valid", 0.5, 1.5, false},
		{"valid negative lower", -0.1, 0.1, false},
		{"equal", 1.0, 1.0, true},
		{"inverted", 2.0, 1.0, true},
		{"nan lower", math.NaN(), 1.0, true},
		{"inf upper", 0.0, math.Inf(1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBounds("rmajor", tt.lower, tt.upper)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateBounds(%g, %g) error = %v, wantErr %v", tt.lower, tt.upper, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePositive(t *testing.T) {
	if err := ValidatePositive("ripmax", 1.0); err != nil {
		t.Errorf("ValidatePositive(1.0) = %v, want nil", err)
	}
	for _, v := range []float64{0, -1, math.NaN()} {
		if err := ValidatePositive("ripmax", v); err == nil {
			t.Errorf("ValidatePositive(%g) = nil, want error", v)
		}
	}
}
