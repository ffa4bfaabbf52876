// Package assert provides non-fatal test assertions: on failure they
// call t.Errorf and let the test continue.
package assert

import (
	"reflect"
	"testing"
)

// NoError reports a test error if err is non-nil, without stopping the
// test.
func NoError(t testing.TB, err error, msgAndArgs ...interface{}) {
	t.Helper()
	if err != nil {
		t.Errorf("Unexpected error: %v %v", err, msgAndArgs)
	}
}

// Equal reports a test error unless want and got are deeply equal.
func Equal(t testing.TB, want, got interface{}, msgAndArgs ...interface{}) {
	t.Helper()
	if !reflect.DeepEqual(want, got) {
		t.Errorf("Values not equal: want %v, got %v %v", want, got, msgAndArgs)
	}
}

// DeepEqual reports a test error unless want and got are deeply equal.
func DeepEqual(t testing.TB, want, got interface{}, msgAndArgs ...interface{}) {
	t.Helper()
	Equal(t, want, got, msgAndArgs...)
}

// True reports a test error unless cond is true.
func True(t testing.TB, cond bool, msgAndArgs ...interface{}) {
	t.Helper()
	if !cond {
		t.Errorf("Expected condition to be true %v", msgAndArgs)
	}
}
