package function

import (
	"fmt"
	"strings"
)

// Name selects one of the parametric functions.
type Name int

const (
	Sine Name = iota
	Sine2D
	MultiSine
	MultiSine2D
	Ripple
	Cylinder
	Sphere
	PulsingSphere

	numNames
)

var nameStrings = [numNames]string{
	Sine:          "Sine",
	Sine2D:        "Sine2D",
	MultiSine:     "MultiSine",
	MultiSine2D:   "MultiSine2D",
	Ripple:        "Ripple",
	Cylinder:      "Cylinder",
	Sphere:        "Sphere",
	PulsingSphere: "PulsingSphere",
}

// Names returns every function name in declaration order.
func Names() []Name {
	out := make([]Name, numNames)
	for i := range out {
		out[i] = Name(i)
	}
	return out
}

// Count is the number of declared names.
func Count() int { return int(numNames) }

// Valid reports whether n is a declared name.
func (n Name) Valid() bool { return n >= 0 && n < numNames }

func (n Name) String() string {
	if !n.Valid() {
		return fmt.Sprintf("Name(%d)", int(n))
	}
	return nameStrings[n]
}

// Next returns the following name, wrapping after the last one.
func (n Name) Next() Name { return Name((int(n) + 1) % int(numNames)) }

// Prev returns the preceding name, wrapping before the first one.
func (n Name) Prev() Name { return Name((int(n) + int(numNames) - 1) % int(numNames)) }

// ParseName resolves a case-insensitive function name. Dashes and
// underscores are ignored, so "multi-sine-2d" selects MultiSine2D.
func ParseName(s string) (Name, error) {
	key := normalize(s)
	for i, str := range nameStrings {
		if normalize(str) == key {
			return Name(i), nil
		}
	}
	return 0, fmt.Errorf("unknown function %q", s)
}

// MarshalText encodes the name for config and export formats.
func (n Name) MarshalText() ([]byte, error) {
	if !n.Valid() {
		return nil, fmt.Errorf("invalid function %d", int(n))
	}
	return []byte(n.String()), nil
}

// UnmarshalText decodes a name written by MarshalText or typed by a user.
func (n *Name) UnmarshalText(text []byte) error {
	parsed, err := ParseName(string(text))
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

func normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer("-", "", "_", "", " ", "").Replace(s)
}
