package student

import (
	"strings"

	"github.com/google/uuid"

	"github.com/tetrahub/academic-records/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// MAIN ENTITY: STUDENT
// ══════════════════════════════════════════════════════════════════════════════

// Student is a person registered in the academic record keeper.
// All attributes are fixed at construction; there are no setters.
type Student struct {
	id string

	firstName      string
	middleName     string
	lastName       string
	motherLastName string

	age         int
	gender      string
	nationality string

	address     string
	homePhone   string
	mobilePhone string
}

// NewStudentParams holds the values needed to build a Student.
type NewStudentParams struct {
	// ID is optional; a random UUID is generated when empty.
	ID string

	FirstName      string
	MiddleName     string // optional
	LastName       string
	MotherLastName string

	Age         int
	Gender      string
	Nationality string

	Address     string
	HomePhone   string
	MobilePhone string
}

// New validates params and creates a Student.
func New(params NewStudentParams) (*Student, error) {
	first := strings.TrimSpace(params.FirstName)
	last := strings.TrimSpace(params.LastName)
	if first == "" || last == "" {
		return nil, shared.ErrStudentNameMissing
	}
	if params.Age < 0 {
		return nil, shared.ErrStudentAgeNegative
	}

	id := params.ID
	if id == "" {
		id = uuid.NewString()
	}

	return &Student{
		id:             id,
		firstName:      first,
		middleName:     strings.TrimSpace(params.MiddleName),
		lastName:       last,
		motherLastName: strings.TrimSpace(params.MotherLastName),
		age:            params.Age,
		gender:         params.Gender,
		nationality:    params.Nationality,
		address:        params.Address,
		homePhone:      params.HomePhone,
		mobilePhone:    params.MobilePhone,
	}, nil
}

// FullName joins first, middle, last and maternal last names with single
// spaces. Empty segments are skipped, so a missing middle name never produces
// a double space.
func (s *Student) FullName() string {
	parts := make([]string, 0, 4)
	for _, p := range []string{s.firstName, s.middleName, s.lastName, s.motherLastName} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

// ID returns the student identifier.
func (s *Student) ID() string { return s.id }

func (s *Student) FirstName() string      { return s.firstName }
func (s *Student) MiddleName() string     { return s.middleName }
func (s *Student) LastName() string       { return s.lastName }
func (s *Student) MotherLastName() string { return s.motherLastName }
func (s *Student) Age() int               { return s.age }
func (s *Student) Gender() string         { return s.gender }
func (s *Student) Nationality() string    { return s.nationality }
func (s *Student) Address() string        { return s.address }
func (s *Student) HomePhone() string      { return s.homePhone }
func (s *Student) MobilePhone() string    { return s.mobilePhone }

// Is reports whether other refers to the same student. Records hold
// references, so pointer identity is checked first and the ID second.
func (s *Student) Is(other *Student) bool {
	if s == nil || other == nil {
		return false
	}
	return s == other || s.id == other.id
}

// String implements fmt.Stringer.
func (s *Student) String() string {
	return s.FullName()
}
