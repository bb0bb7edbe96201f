package types

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorIsMatchesKind(t *testing.T) {
	err := Errorf(KindUnresolvedReference, "Unknown", "Unresolved reference '%s'.", "Unknown")

	if !errors.Is(err, ErrUnresolvedReference) {
		t.Error("errors.Is should match the sentinel of the same kind")
	}
	if errors.Is(err, ErrAmbiguousReference) {
		t.Error("errors.Is should not match a sentinel of another kind")
	}
	if got, want := err.Error(), "Unresolved reference 'Unknown'."; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestKindOfWrapped(t *testing.T) {
	inner := Errorf(KindModelNotFound, "a.fidl", "Model '%s' not found.", "a.fidl")
	wrapped := fmt.Errorf("importing b.fidl: %w", inner)

	if got := KindOf(wrapped); got != KindModelNotFound {
		t.Errorf("KindOf() = %v, want %v", got, KindModelNotFound)
	}
	if got := KindOf(errors.New("plain")); got != ErrKindUnknown {
		t.Errorf("KindOf(plain) = %v, want %v", got, ErrKindUnknown)
	}
	if !errors.Is(wrapped, ErrModelNotFound) {
		t.Error("errors.Is should see through fmt wrapping")
	}
}

func TestErrorUnwrapCause(t *testing.T) {
	cause := errors.New("unexpected token")
	err := &Error{Kind: KindParseFailed, Name: "a.fidl", Message: "Failed to parse 'a.fidl': unexpected token", Err: cause}

	if !errors.Is(err, cause) {
		t.Error("cause should be reachable through Unwrap")
	}
}

func TestAllErrorKinds(t *testing.T) {
	seen := make(map[string]bool)
	phases := make(map[string]int)
	for _, info := range AllErrorKinds() {
		if seen[info.Name] {
			t.Errorf("duplicate kind name %q", info.Name)
		}
		seen[info.Name] = true
		phases[info.Phase]++
		if info.Name == "" || info.Name == ErrKindUnknown.String() {
			t.Errorf("kind %d has no name", int(info.Kind))
		}
	}

	tests := []struct {
		phase string
		want  int
	}{
		{"importer", 5},
		{"resolver", 9},
		{"eval", 7},
	}
	for _, tt := range tests {
		if phases[tt.phase] != tt.want {
			t.Errorf("phase %s: %d kinds, want %d", tt.phase, phases[tt.phase], tt.want)
		}
	}
}

func TestLoggerNilSafe(t *testing.T) {
	var l Logger
	if l.Enabled(LevelTrace) {
		t.Error("zero Logger should not be enabled")
	}
	l.Trace("ignored")

	c := NewLogger(nil, "resolver")
	if c.L != nil {
		t.Error("NewLogger(nil) should stay disabled")
	}
}
