package interp

import (
	"fmt"
	"strings"
)

// Method selects a scattered interpolation scheme.
type Method int

const (
	Nearest Method = iota
	Linear
	Cubic
)

var methodNames = map[Method]string{
	Nearest: "nearest",
	Linear:  "linear",
	Cubic:   "cubic",
}

// String returns the lower-case method name.
func (m Method) String() string {
	if s, ok := methodNames[m]; ok {
		return s
	}
	return fmt.Sprintf("Method(%d)", int(m))
}

// ParseMethod converts a method name ("nearest", "linear", "cubic") into a
// Method. Matching ignores case and surrounding space; the empty string
// selects [Nearest].
func ParseMethod(s string) (Method, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return Nearest, nil
	}
	for m, n := range methodNames {
		if n == name {
			return m, nil
		}
	}
	return Nearest, fmt.Errorf("%w: %q", ErrUnknownMethod, s)
}

// MarshalText implements encoding.TextMarshaler.
func (m Method) MarshalText() ([]byte, error) {
	if _, ok := methodNames[m]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMethod, int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Method) UnmarshalText(text []byte) error {
	v, err := ParseMethod(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}
