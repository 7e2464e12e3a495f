// Package test contains helper functions for the testing of the rest of
// the project.
package test

import "testing"

// ExpectEquality is used to test equality between one value and another.
func ExpectEquality[T comparable](t *testing.T, value T, expectedValue T) bool {
	t.Helper()
	if value != expectedValue {
		t.Errorf("equality test of type %T failed: '%v' does not equal '%v'", value, value, expectedValue)
		return false
	}
	return true
}

// DemandEquality is the same as ExpectEquality but a failure is a test
// fatality.
//
// this is particularly useful if the values being tested are used in
// further tests and so must be correct. for example, testing that the
// lengths of two slices are equal before iterating over them in unison.
func DemandEquality[T comparable](t *testing.T, value T, expectedValue T) {
	t.Helper()
	if value != expectedValue {
		t.Fatalf("equality test of type %T failed: '%v' does not equal '%v'", value, value, expectedValue)
	}
}

// ExpectSuccess tests argument v for a success condition suitable for its
// type. currently supported types:
//
//	bool  -> bool == true
//	error -> error == nil
func ExpectSuccess(t *testing.T, v any) bool {
	t.Helper()

	switch v := v.(type) {
	case bool:
		if !v {
			t.Errorf("expected success (bool)")
			return false
		}

	case error:
		if v != nil {
			t.Errorf("expected success (error: %v)", v)
			return false
		}

	case nil:
		return true

	default:
		t.Fatalf("unsupported type (%T) for success expectation", v)
		return false
	}

	return true
}

// ExpectFailure tests argument v for a failure condition suitable for its
// type. currently supported types:
//
//	bool  -> bool == false
//	error -> error != nil
func ExpectFailure(t *testing.T, v any) bool {
	t.Helper()

	switch v := v.(type) {
	case bool:
		if v {
			t.Errorf("expected failure (bool)")
			return false
		}

	case error:
		if v == nil {
			t.Errorf("expected failure (error)")
			return false
		}

	case nil:
		t.Errorf("expected failure (nil)")
		return false

	default:
		t.Fatalf("unsupported type (%T) for failure expectation", v)
		return false
	}

	return true
}
