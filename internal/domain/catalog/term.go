package catalog

import (
	"fmt"

	"github.com/tetrahub/academic-records/internal/domain/shared"
)

// Term is an academic period (tetramestre) number.
type Term int

const (
	// MinTerm is the first term of the program.
	MinTerm Term = 1
	// MaxTerm is the last term of the program.
	MaxTerm Term = 9
	// SubjectsPerTerm is the fixed catalog size of every term.
	SubjectsPerTerm = 6
)

// IsValid reports whether the term lies in [MinTerm, MaxTerm].
func (t Term) IsValid() bool {
	return t >= MinTerm && t <= MaxTerm
}

// Int returns the underlying int value.
func (t Term) Int() int {
	return int(t)
}

// ValidateTerm returns n as a Term, or a range error when n is outside 1..9.
func ValidateTerm(n int) (Term, error) {
	t := Term(n)
	if !t.IsValid() {
		return 0, shared.WrapError("catalog", "ValidateTerm", shared.ErrValueOutOfRange,
			"invalid term number", fmt.Errorf("%d is outside %d-%d", n, MinTerm, MaxTerm))
	}
	return t, nil
}

// Terms returns every valid term in ascending order.
func Terms() []Term {
	out := make([]Term, 0, int(MaxTerm-MinTerm)+1)
	for t := MinTerm; t <= MaxTerm; t++ {
		out = append(out, t)
	}
	return out
}
