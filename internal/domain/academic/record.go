package academic

import (
	"time"

	"github.com/google/uuid"

	"github.com/tetrahub/academic-records/internal/domain/catalog"
	"github.com/tetrahub/academic-records/internal/domain/evaluation"
	"github.com/tetrahub/academic-records/internal/domain/shared"
	"github.com/tetrahub/academic-records/internal/domain/student"
)

// AcademicRecord is one completed grading event: a student evaluated in a
// subject of a term. It is never modified after creation.
type AcademicRecord struct {
	id         string
	student    *student.Student
	subject    *catalog.Subject
	semester   *Semester
	evaluation *evaluation.Evaluation
	recordedAt time.Time
}

// NewRecord links the four parts of a grading event. All of them are required.
func NewRecord(st *student.Student, subject *catalog.Subject, semester *Semester, ev *evaluation.Evaluation) (*AcademicRecord, error) {
	if st == nil || subject == nil || semester == nil || ev == nil {
		return nil, shared.ErrIncompleteRecord
	}
	return &AcademicRecord{
		id:         uuid.NewString(),
		student:    st,
		subject:    subject,
		semester:   semester,
		evaluation: ev,
		recordedAt: time.Now().UTC(),
	}, nil
}

func (r *AcademicRecord) ID() string                         { return r.id }
func (r *AcademicRecord) Student() *student.Student          { return r.student }
func (r *AcademicRecord) Subject() *catalog.Subject          { return r.subject }
func (r *AcademicRecord) Semester() *Semester                { return r.semester }
func (r *AcademicRecord) Evaluation() *evaluation.Evaluation { return r.evaluation }
func (r *AcademicRecord) RecordedAt() time.Time              { return r.recordedAt }

// FinalGrade returns the weighted grade of the evaluation.
func (r *AcademicRecord) FinalGrade() float64 {
	return r.evaluation.FinalGrade()
}
