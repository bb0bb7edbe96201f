package testutil

import (
	"errors"
	"fmt"
	"os"
	"testing"
)

// mockTB captures whether a test failure occurred.
type mockTB struct {
	testing.TB // embedded for unimplemented methods
	failed     bool
}

func (m *mockTB) Helper()                           {}
func (m *mockTB) Fatal(args ...any)                 { m.failed = true }
func (m *mockTB) Fatalf(format string, args ...any) { m.failed = true }

func TestEqual(t *testing.T) {
	m := &mockTB{}

	Equal(m, "UInt32", "UInt32")
	if m.failed {
		t.Error("Equal(UInt32, UInt32) should pass")
	}

	m.failed = false
	Equal(m, 9, 10)
	if !m.failed {
		t.Error("Equal(9, 10) should fail")
	}
}

func TestSliceEqual(t *testing.T) {
	m := &mockTB{}

	SliceEqual(m, []string{"a.fidl", "b.fidl"}, []string{"a.fidl", "b.fidl"})
	if m.failed {
		t.Error("equal slices should pass")
	}

	m.failed = false
	SliceEqual(m, []string{"a.fidl"}, []string{"a.fidl", "b.fidl"})
	if !m.failed {
		t.Error("different length slices should fail")
	}
}

func TestErrorHelpers(t *testing.T) {
	m := &mockTB{}

	NoError(m, nil)
	if m.failed {
		t.Error("NoError(nil) should pass")
	}

	m.failed = false
	Error(m, nil)
	if !m.failed {
		t.Error("Error(nil) should fail")
	}

	wrapped := fmt.Errorf("loading: %w", os.ErrNotExist)
	m.failed = false
	ErrorIs(m, wrapped, os.ErrNotExist)
	if m.failed {
		t.Error("ErrorIs should see through wrapping")
	}

	m.failed = false
	ErrorIs(m, wrapped, os.ErrExist)
	if !m.failed {
		t.Error("ErrorIs with another target should fail")
	}
}

func TestErrorMessage(t *testing.T) {
	m := &mockTB{}

	ErrorMessage(m, errors.New("Unresolved reference 'Unknown'."), "Unresolved reference 'Unknown'.")
	if m.failed {
		t.Error("matching message should pass")
	}

	m.failed = false
	ErrorMessage(m, errors.New("other"), "Unresolved reference 'Unknown'.")
	if !m.failed {
		t.Error("different message should fail")
	}

	m.failed = false
	ErrorMessage(m, nil, "x")
	if !m.failed {
		t.Error("nil error should fail")
	}
}

func TestNil(t *testing.T) {
	m := &mockTB{}

	var nilPtr *int
	var nilSlice []int
	var nilMap map[string]int

	for _, v := range []any{nil, nilPtr, nilSlice, nilMap} {
		m.failed = false
		Nil(m, v)
		if m.failed {
			t.Errorf("Nil(%T) should pass", v)
		}
	}

	// Typed nil in interface.
	m.failed = false
	var typedNil error = (*os.PathError)(nil)
	Nil(m, typedNil)
	if m.failed {
		t.Error("Nil(typed nil in interface) should pass")
	}

	m.failed = false
	Nil(m, 42)
	if !m.failed {
		t.Error("Nil(42) should fail")
	}

	m.failed = false
	NotNil(m, nilPtr)
	if !m.failed {
		t.Error("NotNil(nil ptr) should fail")
	}
}

func TestLenAndEmpty(t *testing.T) {
	m := &mockTB{}

	Len(m, []int{1, 2, 3}, 3)
	if m.failed {
		t.Error("Len([1,2,3], 3) should pass")
	}

	m.failed = false
	NotEmpty(m, []int{})
	if !m.failed {
		t.Error("NotEmpty([]) should fail")
	}
}

func TestConditions(t *testing.T) {
	m := &mockTB{}

	True(m, false)
	if !m.failed {
		t.Error("True(false) should fail")
	}

	m.failed = false
	False(m, false)
	if m.failed {
		t.Error("False(false) should pass")
	}

	m.failed = false
	Contains(m, "u3 = ( 3 + 4 )", "3 + 4")
	if m.failed {
		t.Error("Contains should pass")
	}

	m.failed = false
	Greater(m, 3, 3)
	if !m.failed {
		t.Error("Greater(3, 3) should fail")
	}

	m.failed = false
	Fail(m, "some message")
	if !m.failed {
		t.Error("Fail should always fail")
	}
}

func TestFormatMsg(t *testing.T) {
	if got := formatMsg(nil); got != "assertion failed" {
		t.Errorf("formatMsg(nil) = %q, want %q", got, "assertion failed")
	}
	if got := formatMsg([]any{"value is %d", 42}); got != "value is 42" {
		t.Errorf("formatMsg with args = %q, want %q", got, "value is 42")
	}
	if got := formatMsg([]any{123}); got != "assertion failed" {
		t.Errorf("formatMsg(non-string) = %q, want %q", got, "assertion failed")
	}
}
