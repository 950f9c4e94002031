package testutil

import (
	"testing"

	"github.com/lgbarn/varboard-go/internal/errors"
)

// Failure paths cannot be observed without a fake testing.TB, so these
// tests cover the success paths and the message formatting.

func TestAssertEqual_Success(t *testing.T) {
	AssertEqual(t, "hello", "hello")
	AssertEqual(t, 42, 42)
	AssertEqual(t, []int{1, 2, 3}, []int{1, 2, 3})
	AssertEqual(t, nil, nil)
	AssertEqual(t, 42, 42, "value should be %d", 42)
}

func TestAssertSameElements_Success(t *testing.T) {
	AssertSameElements(t, []string{"e4", "d4", "Nf3"}, []string{"Nf3", "e4", "d4"})
	AssertSameElements(t, nil, []string{})
	AssertSameElements(t, []string{"a", "a", "b"}, []string{"a", "b", "a"}, "duplicates")
}

func TestAssertNoError_Success(t *testing.T) {
	AssertNoError(t, nil)
	AssertNoError(t, nil, "operation should succeed")
}

func TestAssertErrorIs_Success(t *testing.T) {
	AssertErrorIs(t, errors.ErrIllegalMove, errors.ErrIllegalMove)
	AssertErrorIs(t, errors.Wrap(errors.ErrInvalidFEN, "side"), errors.ErrInvalidFEN)
	AssertErrorIs(t, &errors.MoveError{Err: errors.ErrAmbiguousMove, Notation: "Nd2"}, errors.ErrAmbiguousMove)
}

func TestFormatMessage(t *testing.T) {
	tests := []struct {
		name string
		args []interface{}
		want string
	}{
		{"no args", nil, ""},
		{"empty args", []interface{}{}, ""},
		{"single string", []interface{}{"hello"}, "hello"},
		{"single int", []interface{}{42}, "42"},
		{"format string", []interface{}{"hello %s", "world"}, "hello world"},
		{"format int", []interface{}{"value: %d", 42}, "value: 42"},
		{"format multiple", []interface{}{"%s %d %s", "test", 42, "end"}, "test 42 end"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatMessage(tt.args...)
			if got != tt.want {
				t.Errorf("formatMessage(%v) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}
