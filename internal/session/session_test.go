package session

import (
	"errors"
	"reflect"
	"testing"
)

func newSession(names ...string) *Session {
	s := New()
	s.SetInterfaces(names)
	return s
}

func TestResolve_TypedOrdinal(t *testing.T) {
	tests := []struct {
		name    string
		typed   string
		pick    int
		want    string
		wantErr bool
	}{
		{name: "valid ordinal", typed: "2", pick: NoPick, want: "wlan1"},
		{name: "first", typed: "1", pick: NoPick, want: "wlan0"},
		{name: "last", typed: "3", pick: NoPick, want: "wlan2"},
		{name: "whitespace trimmed", typed: " 3 ", pick: NoPick, want: "wlan2"},
		{name: "zero falls through to error", typed: "0", pick: NoPick, wantErr: true},
		{name: "too large falls through to error", typed: "4", pick: NoPick, wantErr: true},
		{name: "not a number falls through to error", typed: "abc", pick: NoPick, wantErr: true},
		{name: "negative falls through to error", typed: "-1", pick: NoPick, wantErr: true},
		{name: "zero falls through to pick", typed: "0", pick: 2, want: "wlan2"},
		{name: "too large falls through to pick", typed: "4", pick: 0, want: "wlan0"},
		{name: "not a number falls through to pick", typed: "abc", pick: 1, want: "wlan1"},
		{name: "typed wins over pick", typed: "1", pick: 2, want: "wlan0"},
		{name: "empty uses pick", typed: "", pick: 1, want: "wlan1"},
		{name: "nothing", typed: "", pick: NoPick, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newSession("wlan0", "wlan1", "wlan2")
			// Pick mirrors into typed, so set typed afterwards.
			s.Pick(tt.pick)
			s.SetTyped(tt.typed)

			got, err := s.Resolve()
			if tt.wantErr {
				var selErr *SelectionError
				if !errors.As(err, &selErr) {
					t.Fatalf("expected *SelectionError, got %v", err)
				}
				if got != "" {
					t.Errorf("expected empty interface on error, got %q", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Resolve() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Resolve() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPick_MirrorsOrdinal(t *testing.T) {
	s := newSession("wlan0", "wlan1")

	s.Pick(1)
	if s.Typed() != "2" {
		t.Errorf("Typed() = %q, want %q", s.Typed(), "2")
	}
	if s.Picked() != 1 {
		t.Errorf("Picked() = %d, want 1", s.Picked())
	}

	s.Pick(5)
	if s.Picked() != NoPick {
		t.Errorf("out-of-range pick should clear, got %d", s.Picked())
	}
}

func TestSetInterfaces_InvalidatesSelection(t *testing.T) {
	s := newSession("wlan0", "wlan1", "wlan2")
	s.Pick(2)
	gen := s.Generation()

	s.SetInterfaces([]string{"wlan0mon"})

	if s.Typed() != "" {
		t.Errorf("typed ordinal survived refresh: %q", s.Typed())
	}
	if s.Picked() != NoPick {
		t.Errorf("pick survived refresh: %d", s.Picked())
	}
	if s.Generation() != gen+1 {
		t.Errorf("Generation() = %d, want %d", s.Generation(), gen+1)
	}
	if _, err := s.Resolve(); err == nil {
		t.Error("expected selection error after refresh")
	}
}

func TestInterfaces_ReturnsCopy(t *testing.T) {
	names := []string{"wlan0", "wlan1"}
	s := newSession(names...)
	names[0] = "changed"

	got := s.Interfaces()
	got[1] = "mutated"

	if want := []string{"wlan0", "wlan1"}; !reflect.DeepEqual(s.Interfaces(), want) {
		t.Errorf("Interfaces() = %v, want %v", s.Interfaces(), want)
	}
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
}

func TestSelectionError_Messages(t *testing.T) {
	tests := []struct {
		err  *SelectionError
		want string
	}{
		{&SelectionError{Count: 0}, "no wireless adapters available to select"},
		{&SelectionError{Count: 3}, "please select or enter a valid interface number"},
		{&SelectionError{Typed: "9", Count: 3}, `invalid interface number "9": enter a number between 1 and 3 or select one from the list`},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}
