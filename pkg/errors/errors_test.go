package errors

import (
	"errors"
	"testing"
)

func TestErrorString(t *testing.T) {
	cause := errors.New("permission denied")
	tests := []struct {
		err  *Error
		want string
	}{
		{New(ErrCodeInvalidInput, "bad name: %s", "x/y"), "INVALID_INPUT: bad name: x/y"},
		{AtLine(ErrCodeUnrecognizedToken, 7, "unknown token %q", "wat"), `UNRECOGNIZED_TOKEN: line 7: unknown token "wat"`},
		{Wrap(ErrCodeFileNotFound, cause, "read login.wf"), "FILE_NOT_FOUND: read login.wf: permission denied"},
		{&Error{Code: ErrCodeIndentJump, Line: 3, Message: "jump", Cause: cause}, "INDENT_JUMP: line 3: jump: permission denied"},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}

func TestWrapUnwraps(t *testing.T) {
	cause := errors.New("permission denied")
	err := Wrap(ErrCodeFileNotFound, cause, "read login.wf")
	if errors.Unwrap(err) != cause || !errors.Is(err, cause) {
		t.Errorf("Wrap should keep %v in the chain", cause)
	}
	if GetLine(AtLine(ErrCodeIndentJump, 4, "jump")) != 4 || GetLine(cause) != 0 {
		t.Error("GetLine should report the attributed line or 0")
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
			err:      New(ErrCodeMalformedHeader, "test"),
			code:     ErrCodeMalformedHeader,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeMalformedHeader, "test"),
			code:     ErrCodeIndentJump,
			expected: false,
		},
		{
			name:     "wrapped error",
			err:      Wrap(ErrCodeInvalidConfig, New(ErrCodeInvalidInput, "inner"), "outer"),
			code:     ErrCodeInvalidConfig,
			expected: true,
		},
		{
			name:     "fmt wrapped",
			err:      fmtWrap(AtLine(ErrCodeIndentJump, 3, "jump")),
			code:     ErrCodeIndentJump,
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

func fmtWrap(err error) error {
	return errors.Join(errors.New("parse"), err)
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Code
	}{
		{
			name:     "Error type",
			err:      New(ErrCodeInvalidFormat, "test"),
			expected: ErrCodeInvalidFormat,
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
			name:     "Error with line",
			err:      AtLine(ErrCodeUnrecognizedToken, 2, "unknown kind"),
			expected: "line 2: unknown kind",
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

func TestCodeFatal(t *testing.T) {
	if !ErrCodeMalformedHeader.Fatal() {
		t.Error("MALFORMED_HEADER should be fatal")
	}
	for _, c := range []Code{ErrCodeUnrecognizedToken, ErrCodeIndentJump, ErrCodeEmptyGridChild, ErrCodeZeroChildContainer, ErrCodeLeafChildren} {
		if c.Fatal() {
			t.Errorf("%s should be recoverable", c)
		}
	}
}
