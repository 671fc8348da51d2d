// Package pigs implements the Pass the Pigs rules engine: the scoring table,
// the per-turn accumulator and the game phase machine.
package pigs

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// DieFace is one of the five resting positions of a thrown pig.
type DieFace int

const (
	// Sider is a pig lying on its side.
	Sider DieFace = iota
	// Hoofer is a pig standing on all four feet (trotter).
	Hoofer
	// Razorback is a pig lying on its back.
	Razorback
	// Snouter is a pig balanced on its snout and front legs.
	Snouter
	// Jowler is a pig balanced on its snout and ear (leaning jowler).
	Jowler
)

var faceNames = [...]string{
	Sider:     "sider",
	Hoofer:    "hoofer",
	Razorback: "razorback",
	Snouter:   "snouter",
	Jowler:    "jowler",
}

// Faces returns every DieFace in declaration order.
func Faces() []DieFace {
	return []DieFace{Sider, Hoofer, Razorback, Snouter, Jowler}
}

// ComboFaces returns the faces that may be reported as doubles or mixed combo picks.
func ComboFaces() []DieFace {
	return []DieFace{Hoofer, Razorback, Snouter, Jowler}
}

// Valid reports whether f is one of the five declared faces.
func (f DieFace) Valid() bool {
	return f >= Sider && f <= Jowler
}

// String returns the lowercase face name, e.g. "razorback".
func (f DieFace) String() string {
	if !f.Valid() {
		return fmt.Sprintf("DieFace(%d)", int(f))
	}
	return faceNames[f]
}

// ParseFace resolves a case-insensitive face name.
//
// Postcondition: Returns a valid DieFace or a non-nil error wrapping ErrInvalidFace.
func ParseFace(s string) (DieFace, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for f, n := range faceNames {
		if n == name {
			return DieFace(f), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidFace, s)
}

// UnmarshalYAML decodes a face from its name so content files can say
// `faces: [hoofer, jowler]`.
func (f *DieFace) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	parsed, err := ParseFace(name)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*f = parsed
	return nil
}

func isComboFace(f DieFace) bool {
	return f.Valid() && f != Sider
}
