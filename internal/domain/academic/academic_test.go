package academic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tetrahub/academic-records/internal/domain/catalog"
	"github.com/tetrahub/academic-records/internal/domain/evaluation"
	"github.com/tetrahub/academic-records/internal/domain/shared"
	"github.com/tetrahub/academic-records/internal/domain/student"
)

func newStudent(t *testing.T, first string) *student.Student {
	t.Helper()
	s, err := student.New(student.NewStudentParams{FirstName: first, LastName: "Pérez"})
	require.NoError(t, err)
	return s
}

func newRecord(t *testing.T, st *student.Student, final float64) *AcademicRecord {
	t.Helper()
	ev, err := evaluation.New(evaluation.Scores{
		Projects: final, Homework: final, Activities: final,
		Partial1: final, Partial2: final, FinalExam: final,
	})
	require.NoError(t, err)

	sem := NewSemester(1)
	subject := catalog.Default().SubjectsByTerm(1)[0]
	r, err := NewRecord(st, subject, sem, ev)
	require.NoError(t, err)
	return r
}

func TestTeacher_CapsAtThreeSubjects(t *testing.T) {
	teacher, err := NewTeacher("Prof. Ruiz")
	require.NoError(t, err)

	subjects := catalog.Default().SubjectsByTerm(1)
	assert.True(t, teacher.AssignSubject(subjects[0]))
	assert.True(t, teacher.AssignSubject(subjects[1]))
	assert.True(t, teacher.AssignSubject(subjects[2]))
	assert.True(t, teacher.IsFull())

	assert.False(t, teacher.AssignSubject(subjects[3]))
	assert.Equal(t, subjects[:3], teacher.AssignedSubjects())
}

func TestNewTeacher_RequiresName(t *testing.T) {
	_, err := NewTeacher("  ")
	assert.ErrorIs(t, err, shared.ErrTeacherNameMissing)
}

func TestSemester_BindAndEnroll(t *testing.T) {
	sem := NewSemester(5)
	subjects := catalog.Default().SubjectsByTerm(5)
	sem.BindSubjects(subjects...)

	ana := newStudent(t, "Ana")
	luis := newStudent(t, "Luis")
	sem.Enroll(ana)

	assert.Equal(t, 5, sem.Number())
	assert.Equal(t, subjects, sem.Subjects())
	assert.True(t, sem.Teaches(subjects[3]))
	assert.False(t, sem.Teaches(catalog.Default().SubjectsByTerm(1)[0]))
	assert.True(t, sem.IsEnrolled(ana))
	assert.False(t, sem.IsEnrolled(luis))

	// Duplicates are kept.
	sem.Enroll(ana)
	assert.Len(t, sem.Students(), 2)
}

func TestNewRecord_RequiresAllParts(t *testing.T) {
	st := newStudent(t, "Ana")
	subject := catalog.Default().SubjectsByTerm(1)[0]
	sem := NewSemester(1)
	ev, err := evaluation.New(evaluation.Scores{})
	require.NoError(t, err)

	_, err = NewRecord(nil, subject, sem, ev)
	assert.ErrorIs(t, err, shared.ErrIncompleteRecord)
	_, err = NewRecord(st, nil, sem, ev)
	assert.ErrorIs(t, err, shared.ErrIncompleteRecord)
	_, err = NewRecord(st, subject, nil, ev)
	assert.ErrorIs(t, err, shared.ErrIncompleteRecord)
	_, err = NewRecord(st, subject, sem, nil)
	assert.ErrorIs(t, err, shared.ErrIncompleteRecord)

	r, err := NewRecord(st, subject, sem, ev)
	require.NoError(t, err)
	assert.NotEmpty(t, r.ID())
	assert.Same(t, st, r.Student())
	assert.False(t, r.RecordedAt().IsZero())
}

func TestAverage(t *testing.T) {
	st := newStudent(t, "Ana")

	assert.Zero(t, Average(nil))
	assert.InDelta(t, 80.0, Average([]*AcademicRecord{
		newRecord(t, st, 70),
		newRecord(t, st, 80),
		newRecord(t, st, 90),
	}), 1e-9)
}
