package catalog

import "fmt"

// Subject is a course of the catalog. Subjects are only built while the
// catalog loads and are shared by reference afterwards.
type Subject struct {
	name    string
	term    Term
	credits int
}

func (s *Subject) Name() string { return s.name }
func (s *Subject) Term() Term   { return s.term }
func (s *Subject) Credits() int { return s.credits }

// String implements fmt.Stringer.
func (s *Subject) String() string {
	return fmt.Sprintf("%s (term %d, %d credits)", s.name, s.term, s.credits)
}
