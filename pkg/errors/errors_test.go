package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidParameter, "test message: %s", "value")

	if err.Code != ErrCodeInvalidParameter {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidParameter)
	}

	if err.Message != "test message: value" {
		t.Errorf("Message = %v, want %v", err.Message, "test message: value")
	}

	expected := "INVALID_PARAMETER: test message: value"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeInvalidParams, cause, "failed to decode")

	if err.Code != ErrCodeInvalidParams {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidParams)
	}

	if !errors.Is(err, cause) {
		t.Error("wrapped error should match cause via errors.Is")
	}

	expected := "INVALID_PARAMS: failed to decode: underlying error"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestIs(t *testing.T) {
	err := New(ErrCodeInvalidConfig, "bad config")

	if !Is(err, ErrCodeInvalidConfig) {
		t.Error("Is should match the error's own code")
	}
	if Is(err, ErrCodeNotFound) {
		t.Error("Is should not match a different code")
	}
	if Is(errors.New("plain"), ErrCodeInvalidConfig) {
		t.Error("Is should not match a plain error")
	}
}

func TestIsThroughWrapping(t *testing.T) {
	inner := New(ErrCodeInvalidSymbol, "bad symbol")
	outer := fmt.Errorf("loading study: %w", inner)

	if !Is(outer, ErrCodeInvalidSymbol) {
		t.Error("Is should unwrap fmt.Errorf chains")
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeUnsupported, "nope")); got != ErrCodeUnsupported {
		t.Errorf("GetCode = %v, want %v", got, ErrCodeUnsupported)
	}
	if got := GetCode(errors.New("plain")); got != "" {
		t.Errorf("GetCode = %v, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeInvalidParameter, "unknown parameter %q", "tfcth")
	if got := UserMessage(err); got != `unknown parameter "tfcth"` {
		t.Errorf("UserMessage = %v", got)
	}

	plain := errors.New("plain error")
	if got := UserMessage(plain); got != "plain error" {
		t.Errorf("UserMessage = %v", got)
	}
}
