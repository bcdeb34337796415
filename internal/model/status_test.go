package model

import "testing"

func TestStatusFromBackend(t *testing.T) {
	tests := []struct {
		in   string
		want Status
	}{
		{"Installed", StatusActive},
		{"Inactive", StatusInactive},
		{"", StatusInactive},
		{"installed", StatusInactive},
		{"Broken", StatusInactive},
	}
	for _, tt := range tests {
		if got := StatusFromBackend(tt.in); got != tt.want {
			t.Errorf("StatusFromBackend(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestStatusBackendRoundTrip(t *testing.T) {
	for _, s := range []Status{StatusActive, StatusInactive} {
		if got := StatusFromBackend(s.Backend()); got != s {
			t.Errorf("round trip of %v came back as %v", s, got)
		}
	}
}

func TestStatusToggle(t *testing.T) {
	if StatusActive.Toggle() != StatusInactive {
		t.Error("toggling active should give inactive")
	}
	if StatusInactive.Toggle() != StatusActive {
		t.Error("toggling inactive should give active")
	}
}
