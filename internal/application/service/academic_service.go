// Package service holds the application services that own the catalog, the
// term registrations, the roster and the academic ledger.
package service

import (
	"fmt"
	"log/slog"

	"github.com/tetrahub/academic-records/internal/domain/academic"
	"github.com/tetrahub/academic-records/internal/domain/catalog"
	"github.com/tetrahub/academic-records/internal/domain/evaluation"
	"github.com/tetrahub/academic-records/internal/domain/shared"
	"github.com/tetrahub/academic-records/internal/domain/student"
	"github.com/tetrahub/academic-records/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// ACADEMIC SERVICE
// Owns the subject catalog, term registration with catalog autoload, and the
// ledger of registered evaluations.
// ══════════════════════════════════════════════════════════════════════════════

// AcademicService manages terms and grading records.
type AcademicService struct {
	catalog   *catalog.Catalog
	ledger    academic.Ledger
	publisher shared.EventPublisher
	logger    *slog.Logger

	// strictBinding rejects records whose subject is not bound to the term or
	// whose student is not enrolled in it.
	strictBinding bool

	semesters []*academic.Semester
}

// AcademicServiceConfig contains the optional collaborators of AcademicService.
type AcademicServiceConfig struct {
	Catalog       *catalog.Catalog // defaults to catalog.Default()
	Publisher     shared.EventPublisher
	Logger        *slog.Logger
	StrictBinding bool
}

// NewAcademicService creates an AcademicService writing to ledger.
func NewAcademicService(ledger academic.Ledger, config AcademicServiceConfig) *AcademicService {
	if ledger == nil {
		panic("service: NewAcademicService requires a ledger")
	}
	if config.Catalog == nil {
		config.Catalog = catalog.Default()
	}
	if config.Publisher == nil {
		config.Publisher = shared.NopPublisher{}
	}
	if config.Logger == nil {
		config.Logger = slog.Default()
	}

	return &AcademicService{
		catalog:       config.Catalog,
		ledger:        ledger,
		publisher:     config.Publisher,
		logger:        config.Logger.With(logger.Component("academic_service")),
		strictBinding: config.StrictBinding,
		semesters:     make([]*academic.Semester, 0),
	}
}

// Catalog returns the subject catalog.
func (s *AcademicService) Catalog() *catalog.Catalog {
	return s.catalog
}

// SubjectsBySemester returns the catalog subjects of term in declaration
// order, or an empty slice for an unknown term.
func (s *AcademicService) SubjectsBySemester(term int) []*catalog.Subject {
	return s.catalog.SubjectsByTerm(term)
}

// AddSemester validates the term number and registers the term, binding every
// catalog subject of that term to it. Registering the same Semester twice
// binds its subjects twice; there is no idempotence guard.
func (s *AcademicService) AddSemester(sem *academic.Semester) error {
	if sem == nil {
		return shared.ErrSemesterNotProvided
	}
	if _, err := catalog.ValidateTerm(sem.Number()); err != nil {
		s.logger.Debug("term rejected", logger.Term(sem.Number()), logger.Err(err))
		return err
	}

	s.semesters = append(s.semesters, sem)
	subjects := s.catalog.SubjectsByTerm(sem.Number())
	sem.BindSubjects(subjects...)

	s.logger.Info("term opened", logger.Term(sem.Number()), slog.Int("subjects", len(subjects)))
	s.publish(shared.NewTermOpenedEvent(sem.Number(), len(subjects)))
	return nil
}

// EnrollStudentInSemester appends st to the term roster. Enrolling the same
// student twice is allowed.
func (s *AcademicService) EnrollStudentInSemester(sem *academic.Semester, st *student.Student) error {
	if sem == nil || st == nil {
		return shared.NewDomainError("academic", "EnrollStudentInSemester", shared.ErrInvalidInput, "semester and student are required")
	}
	sem.Enroll(st)

	s.logger.Debug("student enrolled", logger.Term(sem.Number()), logger.StudentName(st.FullName()))
	s.publish(shared.NewStudentEnrolledEvent(sem.Number(), st.ID()))
	return nil
}

// RegisterEvaluation creates an academic record and appends it to the ledger.
// Unless strict binding is enabled, the subject is not checked against the
// term and the student is not checked against the term roster.
func (s *AcademicService) RegisterEvaluation(
	st *student.Student,
	subject *catalog.Subject,
	sem *academic.Semester,
	ev *evaluation.Evaluation,
) (*academic.AcademicRecord, error) {
	record, err := academic.NewRecord(st, subject, sem, ev)
	if err != nil {
		return nil, err
	}

	if s.strictBinding {
		if !sem.Teaches(subject) {
			return nil, shared.WrapError("academic", "RegisterEvaluation", shared.ErrSubjectNotInTerm,
				"strict binding", fmt.Errorf("%q in term %d", subject.Name(), sem.Number()))
		}
		if !sem.IsEnrolled(st) {
			return nil, shared.WrapError("academic", "RegisterEvaluation", shared.ErrStudentNotEnrolled,
				"strict binding", fmt.Errorf("%q in term %d", st.FullName(), sem.Number()))
		}
	}

	s.ledger.Append(record)

	s.logger.Info("evaluation registered",
		logger.StudentName(st.FullName()),
		logger.Subject(subject.Name()),
		logger.Term(sem.Number()),
		logger.Grade(record.FinalGrade()),
	)
	s.publish(shared.NewEvaluationRecordedEvent(record.ID(), st.ID(), subject.Name(), sem.Number(), record.FinalGrade()))

	return record, nil
}

// AcademicRecords returns every record registered through the ledger, in
// registration order. The slice is a copy.
func (s *AcademicService) AcademicRecords() []*academic.AcademicRecord {
	return s.ledger.All()
}

// Semesters returns the registered terms in registration order.
func (s *AcademicService) Semesters() []*academic.Semester {
	out := make([]*academic.Semester, len(s.semesters))
	copy(out, s.semesters)
	return out
}

func (s *AcademicService) publish(event shared.Event) {
	if err := s.publisher.Publish(event); err != nil {
		s.logger.Warn("publish event failed", slog.String("event_type", string(event.EventType())), logger.Err(err))
	}
}
