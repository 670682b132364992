// Package testutil provides shared test helpers for the rules engine:
// go-cmp based assertions and position and move fixtures.
package testutil

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// AssertEqual fails with a cmp diff when got and want differ. An optional
// format string and arguments prefix the failure.
func AssertEqual(t *testing.T, got, want interface{}, msgAndArgs ...interface{}) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		fail(t, "mismatch (-want +got):\n"+diff, msgAndArgs)
	}
}

// AssertDiff is AssertEqual with cmp options.
func AssertDiff(t *testing.T, got, want interface{}, opts ...cmp.Option) {
	t.Helper()
	if diff := cmp.Diff(want, got, opts...); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

// AssertNoError fails if err is not nil.
func AssertNoError(t *testing.T, err error, msgAndArgs ...interface{}) {
	t.Helper()
	if err != nil {
		fail(t, fmt.Sprintf("unexpected error: %v", err), msgAndArgs)
	}
}

// AssertError fails if err is nil.
func AssertError(t *testing.T, err error, msgAndArgs ...interface{}) {
	t.Helper()
	if err == nil {
		fail(t, "expected an error, got nil", msgAndArgs)
	}
}

// AssertErrorIs fails unless target is in err's chain.
func AssertErrorIs(t *testing.T, err, target error, msgAndArgs ...interface{}) {
	t.Helper()
	if !errors.Is(err, target) {
		fail(t, fmt.Sprintf("error %v is not %v", err, target), msgAndArgs)
	}
}

// AssertTrue fails if condition is false.
func AssertTrue(t *testing.T, condition bool, msgAndArgs ...interface{}) {
	t.Helper()
	if !condition {
		fail(t, "condition is false", msgAndArgs)
	}
}

func fail(t *testing.T, failure string, msgAndArgs []interface{}) {
	t.Helper()
	if prefix := messagePrefix(msgAndArgs); prefix != "" {
		failure = prefix + ": " + failure
	}
	t.Error(failure)
}

// messagePrefix renders the optional message of an assertion. A leading
// string is used as a format for the rest.
func messagePrefix(msgAndArgs []interface{}) string {
	if len(msgAndArgs) == 0 {
		return ""
	}
	format, ok := msgAndArgs[0].(string)
	if !ok {
		return fmt.Sprint(msgAndArgs[0])
	}
	if len(msgAndArgs) == 1 {
		return format
	}
	return fmt.Sprintf(format, msgAndArgs[1:]...)
}
