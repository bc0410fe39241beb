package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidInput, "test message: %s", "value")

	if err.Code != ErrCodeInvalidInput {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidInput)
	}

	if err.Message != "test message: value" {
		t.Errorf("Message = %v, want %v", err.Message, "test message: value")
	}

	expected := "INVALID_INPUT: test message: value"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeInvalidManifest, cause, "failed to decode")

	if err.Code != ErrCodeInvalidManifest {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidManifest)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	unwrapped := errors.Unwrap(err)
	if unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{
			name:     "matching code",
			err:      New(ErrCodeNotFound, "test"),
			code:     ErrCodeNotFound,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeNotFound, "test"),
			code:     ErrCodeMalformedGraph,
			expected: false,
		},
		{
			name:     "wrapped error",
			err:      Wrap(ErrCodeInputNotFound, New(ErrCodeInvalidInput, "inner"), "outer"),
			code:     ErrCodeInputNotFound,
			expected: true,
		},
		{
			name:     "non-Error type",
			err:      errors.New("plain error"),
			code:     ErrCodeInvalidInput,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			code:     ErrCodeInvalidInput,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Code
	}{
		{
			name:     "Error type",
			err:      New(ErrCodeMalformedGraph, "test"),
			expected: ErrCodeMalformedGraph,
		},
		{
			name:     "plain error",
			err:      errors.New("plain"),
			expected: "",
		},
		{
			name:     "nil",
			err:      nil,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.expected {
				t.Errorf("GetCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "Error type",
			err:      New(ErrCodeInvalidInput, "friendly message"),
			expected: "friendly message",
		},
		{
			name:     "plain error",
			err:      errors.New("plain error"),
			expected: "plain error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.expected {
				t.Errorf("UserMessage() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestTaxonomyConstructors(t *testing.T) {
	t.Run("input not found", func(t *testing.T) {
		cause := errors.New("no such file")
		err := InputNotFound("poetry.lock", cause)
		if !Is(err, ErrCodeInputNotFound) {
			t.Errorf("code = %v, want %v", err.Code, ErrCodeInputNotFound)
		}
		if !strings.Contains(err.Message, "poetry.lock") {
			t.Errorf("message %q should name the path", err.Message)
		}
		if !errors.Is(err, cause) {
			t.Error("cause should be preserved")
		}
	})

	t.Run("malformed graph", func(t *testing.T) {
		err := MalformedGraph("pkg:pypi/missing@1.0", "dependency of pkg:pypi/app@1.0")
		if !Is(err, ErrCodeMalformedGraph) {
			t.Errorf("code = %v, want %v", err.Code, ErrCodeMalformedGraph)
		}
		if !strings.Contains(err.Message, "pkg:pypi/missing@1.0") {
			t.Errorf("message %q should name the missing identifier", err.Message)
		}
	})

	t.Run("not found", func(t *testing.T) {
		err := NotFound("name", "Flask")
		if !Is(err, ErrCodeNotFound) {
			t.Errorf("code = %v, want %v", err.Code, ErrCodeNotFound)
		}
		if err.Message != `no component with name "Flask"` {
			t.Errorf("Message = %q", err.Message)
		}
	})
}
