package interp

import (
	"errors"
	"testing"
)

func TestParseMethod(t *testing.T) {
	tests := []struct {
		in   string
		want Method
		err  error
	}{
		{"", Nearest, nil},
		{"nearest", Nearest, nil},
		{" Linear ", Linear, nil},
		{"CUBIC", Cubic, nil},
		{"spline", Nearest, ErrUnknownMethod},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseMethod(tc.in)
			if !errors.Is(err, tc.err) {
				t.Fatalf("ParseMethod(%q) error = %v, want %v", tc.in, err, tc.err)
			}
			if got != tc.want {
				t.Fatalf("ParseMethod(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestMethodText(t *testing.T) {
	for _, m := range []Method{Nearest, Linear, Cubic} {
		b, err := m.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v): %v", m, err)
		}

		var back Method
		if err := back.UnmarshalText(b); err != nil {
			t.Fatalf("UnmarshalText(%q): %v", b, err)
		}
		if back != m {
			t.Fatalf("text round trip: got %v, want %v", back, m)
		}
	}

	if _, err := Method(9).MarshalText(); !errors.Is(err, ErrUnknownMethod) {
		t.Fatalf("MarshalText(9) error = %v, want ErrUnknownMethod", err)
	}
	if got := Method(9).String(); got != "Method(9)" {
		t.Fatalf("String() = %q", got)
	}

	m := Cubic
	if err := m.UnmarshalText([]byte("bogus")); !errors.Is(err, ErrUnknownMethod) {
		t.Fatalf("UnmarshalText error = %v", err)
	}
	if m != Cubic {
		t.Fatalf("failed UnmarshalText modified receiver: %v", m)
	}
}
