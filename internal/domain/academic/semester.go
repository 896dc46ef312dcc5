package academic

import (
	"github.com/tetrahub/academic-records/internal/domain/catalog"
	"github.com/tetrahub/academic-records/internal/domain/student"
)

// Semester is one opened term: its number, the subjects bound to it from the
// catalog and the students enrolled in it. Both lists only grow.
type Semester struct {
	number   int
	subjects []*catalog.Subject
	students []*student.Student
}

// NewSemester creates an empty term. The number is validated when the term is
// registered, not here.
func NewSemester(number int) *Semester {
	return &Semester{
		number:   number,
		subjects: make([]*catalog.Subject, 0, catalog.SubjectsPerTerm),
		students: make([]*student.Student, 0),
	}
}

// Number returns the term number.
func (s *Semester) Number() int { return s.number }

// BindSubjects appends catalog subjects to the term. The academic service
// calls it once per registration.
func (s *Semester) BindSubjects(subjects ...*catalog.Subject) {
	s.subjects = append(s.subjects, subjects...)
}

// Enroll appends a student to the term roster. Duplicates are not checked.
func (s *Semester) Enroll(st *student.Student) {
	s.students = append(s.students, st)
}

// Subjects returns the bound subjects in binding order.
func (s *Semester) Subjects() []*catalog.Subject {
	out := make([]*catalog.Subject, len(s.subjects))
	copy(out, s.subjects)
	return out
}

// Students returns the enrolled students in enrollment order.
func (s *Semester) Students() []*student.Student {
	out := make([]*student.Student, len(s.students))
	copy(out, s.students)
	return out
}

// Teaches reports whether subject is bound to this term.
func (s *Semester) Teaches(subject *catalog.Subject) bool {
	for _, sub := range s.subjects {
		if sub == subject {
			return true
		}
	}
	return false
}

// IsEnrolled reports whether st is on the term roster.
func (s *Semester) IsEnrolled(st *student.Student) bool {
	for _, enrolled := range s.students {
		if enrolled.Is(st) {
			return true
		}
	}
	return false
}
