// Package require provides fatal test assertions: on failure they call
// t.Fatal, stopping the current test immediately. Thin wrappers over
// testify, trimmed to what this module's tests actually use.
package require

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

// NoError fails the test immediately if err is non-nil.
func NoError(t testing.TB, err error, msgAndArgs ...interface{}) {
	t.Helper()
	if err != nil {
		t.Fatalf("Unexpected error: %v %v", err, msgAndArgs)
	}
}

// ErrorIs fails the test unless errors.Is(err, target) holds.
func ErrorIs(t testing.TB, err, target error) {
	t.Helper()
	if !assert.ErrorIs(nopT{}, err, target) {
		t.Fatalf("Expected error %v to wrap %v", err, target)
	}
}

// ErrorContains fails the test unless err is non-nil and its message
// contains want.
func ErrorContains(t testing.TB, want string, err error) {
	t.Helper()
	if err == nil || !assert.ErrorContains(nopT{}, err, want) {
		t.Fatalf("Expected error containing %q, got %v", want, err)
	}
}

// Equal fails the test unless want and got are deeply equal.
func Equal(t testing.TB, want, got interface{}, msgAndArgs ...interface{}) {
	t.Helper()
	if !reflect.DeepEqual(want, got) {
		t.Fatalf("Values not equal: want %v, got %v %v", want, got, msgAndArgs)
	}
}

// NotNil fails the test if got is nil.
func NotNil(t testing.TB, got interface{}) {
	t.Helper()
	if got == nil || (reflect.ValueOf(got).Kind() == reflect.Ptr && reflect.ValueOf(got).IsNil()) {
		t.Fatalf("Expected non-nil value")
	}
}

// True fails the test unless cond is true.
func True(t testing.TB, cond bool, msgAndArgs ...interface{}) {
	t.Helper()
	if !cond {
		t.Fatalf("Expected condition to be true %v", msgAndArgs)
	}
}

// nopT satisfies testify's TestingT without ever actually failing the
// real *testing.T, letting ErrorIs/ErrorContains reuse testify's
// comparison logic before converting a false result into our own
// t.Fatalf call.
type nopT struct{}

func (nopT) Errorf(string, ...interface{}) {}
