package academic

import (
	"strings"

	"github.com/tetrahub/academic-records/internal/domain/catalog"
	"github.com/tetrahub/academic-records/internal/domain/shared"
)

// MaxTeacherSubjects is the teaching load limit.
const MaxTeacherSubjects = 3

// Teacher is a staff member with up to MaxTeacherSubjects assigned subjects.
type Teacher struct {
	name     string
	subjects []*catalog.Subject
}

// NewTeacher creates a teacher with no assignments.
func NewTeacher(name string) (*Teacher, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.ErrTeacherNameMissing
	}
	return &Teacher{
		name:     name,
		subjects: make([]*catalog.Subject, 0, MaxTeacherSubjects),
	}, nil
}

// Name returns the teacher name.
func (t *Teacher) Name() string { return t.name }

// AssignSubject adds subject to the teacher's load. When the load is already
// full the subject is dropped and false is returned; this is not an error.
func (t *Teacher) AssignSubject(subject *catalog.Subject) bool {
	if len(t.subjects) >= MaxTeacherSubjects {
		return false
	}
	t.subjects = append(t.subjects, subject)
	return true
}

// AssignedSubjects returns the assigned subjects in assignment order.
func (t *Teacher) AssignedSubjects() []*catalog.Subject {
	out := make([]*catalog.Subject, len(t.subjects))
	copy(out, t.subjects)
	return out
}

// IsFull reports whether the teacher holds MaxTeacherSubjects subjects.
func (t *Teacher) IsFull() bool {
	return len(t.subjects) >= MaxTeacherSubjects
}
