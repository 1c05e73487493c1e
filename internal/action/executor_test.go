package action

import "testing"

func TestParseKeySequence(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Ctrl+Shift+A", "ctrl+shift+a"},
		{"ctrl+c", "ctrl+c"},
		{"Meta+Tab", "super+Tab"},
		{"F5", "F5"},
		{"Alt+ Space ", "alt+Space"},
		{"x", "x"},
	}
	for _, tc := range cases {
		got, err := ParseKeySequence(tc.in)
		if err != nil {
			t.Fatalf("%q: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("%q: expected %q, got %q", tc.in, tc.want, got)
		}
	}
}

func TestParseKeySequenceErrors(t *testing.T) {
	for _, in := range []string{"", "ctrl+shift", "a+b", "ctrl++"} {
		if _, err := ParseKeySequence(in); err == nil {
			t.Fatalf("%q: expected an error", in)
		}
	}
}
