// Package catalog owns the static subject catalog of the program and the
// term-number rules.
package catalog

import (
	_ "embed"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"gopkg.in/yaml.v3"

	"github.com/tetrahub/academic-records/internal/domain/shared"
)

//go:embed subjects.yaml
var embeddedSubjects []byte

var defaultCatalog = mustLoadEmbedded()

// Default returns the process-wide catalog loaded from the embedded table.
func Default() *Catalog {
	return defaultCatalog
}

// Catalog is an immutable table of subjects keyed by term. Declaration order
// is preserved inside each term.
type Catalog struct {
	byTerm map[Term][]*Subject
	all    []*Subject
}

type catalogFile struct {
	Terms []struct {
		Term     int `yaml:"term"`
		Subjects []struct {
			Name    string `yaml:"name"`
			Credits int    `yaml:"credits"`
		} `yaml:"subjects"`
	} `yaml:"terms"`
}

// Load parses a catalog document. Every term 1..9 must be present with exactly
// SubjectsPerTerm subjects, credits must be positive and names unique.
func Load(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, shared.WrapError("catalog", "Load", shared.ErrInvalidFormat, "parse catalog", err)
	}

	c := &Catalog{byTerm: make(map[Term][]*Subject, int(MaxTerm))}
	seen := make(map[string]struct{})

	for _, entry := range file.Terms {
		term, err := ValidateTerm(entry.Term)
		if err != nil {
			return nil, err
		}
		if _, dup := c.byTerm[term]; dup {
			return nil, malformed(fmt.Errorf("term %d declared twice", term))
		}
		if len(entry.Subjects) != SubjectsPerTerm {
			return nil, malformed(fmt.Errorf("term %d has %d subjects, want %d", term, len(entry.Subjects), SubjectsPerTerm))
		}

		subjects := make([]*Subject, 0, SubjectsPerTerm)
		for _, raw := range entry.Subjects {
			name := strings.TrimSpace(raw.Name)
			if name == "" {
				return nil, malformed(fmt.Errorf("term %d has a subject without name", term))
			}
			if raw.Credits <= 0 {
				return nil, malformed(fmt.Errorf("subject %q has non-positive credits %d", name, raw.Credits))
			}
			key := foldName(name)
			if _, dup := seen[key]; dup {
				return nil, malformed(fmt.Errorf("subject %q declared twice", name))
			}
			seen[key] = struct{}{}

			s := &Subject{name: name, term: term, credits: raw.Credits}
			subjects = append(subjects, s)
			c.all = append(c.all, s)
		}
		c.byTerm[term] = subjects
	}

	for _, t := range Terms() {
		if _, ok := c.byTerm[t]; !ok {
			return nil, malformed(fmt.Errorf("term %d is missing", t))
		}
	}

	return c, nil
}

func foldName(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}

func malformed(err error) error {
	return shared.WrapError("catalog", "Load", shared.ErrInvalidFormat, "subject catalog is malformed", err)
}

func mustLoadEmbedded() *Catalog {
	c, err := Load(embeddedSubjects)
	if err != nil {
		panic(fmt.Sprintf("catalog: embedded subjects.yaml: %v", err))
	}
	return c
}

// SubjectsByTerm returns the subjects of term in declaration order. An unknown
// term yields an empty slice, never an error. The slice is a copy; the
// subjects are shared.
func (c *Catalog) SubjectsByTerm(term int) []*Subject {
	subjects := c.byTerm[Term(term)]
	out := make([]*Subject, len(subjects))
	copy(out, subjects)
	return out
}

// All returns every subject, terms ascending, declaration order within a term.
func (c *Catalog) All() []*Subject {
	out := make([]*Subject, len(c.all))
	copy(out, c.all)
	return out
}

// Lookup finds a subject by name under Unicode case folding, ignoring
// surrounding spaces.
func (c *Catalog) Lookup(name string) (*Subject, bool) {
	key := foldName(name)
	for _, s := range c.all {
		if foldName(s.name) == key {
			return s, true
		}
	}
	return nil, false
}

// Len returns the number of subjects in the catalog.
func (c *Catalog) Len() int {
	return len(c.all)
}

// TotalCredits returns the sum of credits of a term, 0 for an unknown term.
func (c *Catalog) TotalCredits(term int) int {
	total := 0
	for _, s := range c.byTerm[Term(term)] {
		total += s.credits
	}
	return total
}
