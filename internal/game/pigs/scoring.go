package pigs

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed content/scores.yaml
var defaultScoresYAML []byte

var defaultTable = MustLoadTable(defaultScoresYAML)

// Pair is an ordered pair of faces used as a scoring table key.
type Pair struct {
	First  DieFace
	Second DieFace
}

// Table maps every combination of two faces to its point value.
// A Table is read-only after construction and safe for concurrent use.
type Table struct {
	points map[Pair]int
}

type scoreEntry struct {
	Faces  []DieFace `yaml:"faces"`
	Points int       `yaml:"points"`
}

type scoreFile struct {
	Scores []scoreEntry `yaml:"scores"`
}

// DefaultTable returns the standard scoring table embedded in the binary.
func DefaultTable() *Table {
	return defaultTable
}

// LoadTable parses a scoring table from YAML and verifies that every ordered
// pair of faces has an entry.
//
// Precondition: data is a YAML document with a top-level `scores` list.
// Postcondition: Returns a complete, symmetric Table or a non-nil error describing all defects.
func LoadTable(data []byte) (*Table, error) {
	var f scoreFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing scoring table: %w", err)
	}

	t := &Table{points: make(map[Pair]int, len(Faces())*len(Faces()))}
	var errs []string
	for i, e := range f.Scores {
		if len(e.Faces) != 2 {
			errs = append(errs, fmt.Sprintf("scores[%d]: expected 2 faces, got %d", i, len(e.Faces)))
			continue
		}
		if e.Points < 0 {
			errs = append(errs, fmt.Sprintf("scores[%d]: points must be >= 0, got %d", i, e.Points))
			continue
		}
		a, b := e.Faces[0], e.Faces[1]
		for _, p := range []Pair{{a, b}, {b, a}} {
			if existing, ok := t.points[p]; ok && existing != e.Points {
				errs = append(errs, fmt.Sprintf("scores[%d]: %s+%s redefined as %d (was %d)", i, a, b, e.Points, existing))
				continue
			}
			t.points[p] = e.Points
		}
	}

	for _, missing := range t.missing() {
		errs = append(errs, fmt.Sprintf("missing entry for %s+%s", missing.First, missing.Second))
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("invalid scoring table: %s", strings.Join(errs, "; "))
	}
	return t, nil
}

// LoadTableFile reads and validates a scoring table from path.
//
// Postcondition: Returns a complete Table or a non-nil error.
func LoadTableFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	t, err := LoadTable(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// MustLoadTable is LoadTable for package-level tables; it panics on any defect.
func MustLoadTable(data []byte) *Table {
	t, err := LoadTable(data)
	if err != nil {
		panic("pigs: MustLoadTable: " + err.Error())
	}
	return t
}

// Lookup returns the points scored by the pair (a, b). Argument order does not matter.
//
// Precondition: a and b are valid faces.
func (t *Table) Lookup(a, b DieFace) int {
	p, ok := t.points[Pair{a, b}]
	if !ok {
		// LoadTable guarantees completeness, so only an invalid face gets here.
		panic(fmt.Sprintf("pigs: no score for %s+%s", a, b))
	}
	return p
}

func (t *Table) missing() []Pair {
	var out []Pair
	for _, a := range Faces() {
		for _, b := range Faces() {
			if _, ok := t.points[Pair{a, b}]; !ok {
				out = append(out, Pair{a, b})
			}
		}
	}
	return out
}
