package service

import (
	"log/slog"
	"strings"

	"golang.org/x/text/cases"

	"github.com/tetrahub/academic-records/internal/domain/academic"
	"github.com/tetrahub/academic-records/internal/domain/shared"
	"github.com/tetrahub/academic-records/internal/domain/student"
	"github.com/tetrahub/academic-records/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// STUDENT SERVICE
// Owns the roster and computes running averages over the ledger.
// ══════════════════════════════════════════════════════════════════════════════

// StudentService manages registered students and their record history.
type StudentService struct {
	roster    student.Roster
	ledger    academic.Ledger
	publisher shared.EventPublisher
	logger    *slog.Logger
}

// StudentServiceConfig contains the optional collaborators of StudentService.
type StudentServiceConfig struct {
	Publisher shared.EventPublisher
	Logger    *slog.Logger
}

// NewStudentService creates a StudentService. Passing the ledger given to the
// AcademicService makes both services share one source of truth; passing a
// separate ledger keeps two independent histories.
func NewStudentService(roster student.Roster, ledger academic.Ledger, config StudentServiceConfig) *StudentService {
	if roster == nil || ledger == nil {
		panic("service: NewStudentService requires a roster and a ledger")
	}
	if config.Publisher == nil {
		config.Publisher = shared.NopPublisher{}
	}
	if config.Logger == nil {
		config.Logger = slog.Default()
	}

	return &StudentService{
		roster:    roster,
		ledger:    ledger,
		publisher: config.Publisher,
		logger:    config.Logger.With(logger.Component("student_service")),
	}
}

// RegisterStudent appends st to the roster. Names are not required to be unique.
func (s *StudentService) RegisterStudent(st *student.Student) error {
	if st == nil {
		return shared.NewDomainError("student", "Register", shared.ErrInvalidInput, "student cannot be nil")
	}
	s.roster.Add(st)

	s.logger.Info("student registered", logger.StudentName(st.FullName()))
	if err := s.publisher.Publish(shared.NewStudentRegisteredEvent(st.ID(), st.FullName())); err != nil {
		s.logger.Warn("publish event failed", logger.Err(err))
	}
	return nil
}

// FindStudentByName returns the first registered student whose full name
// matches fullName ignoring case. The second result is false when nobody matches.
func (s *StudentService) FindStudentByName(fullName string) (*student.Student, bool) {
	wanted := foldName(fullName)
	for _, st := range s.roster.All() {
		if foldName(st.FullName()) == wanted {
			return st, true
		}
	}
	return nil, false
}

// FindStudentByID returns the registered student with the given ID.
func (s *StudentService) FindStudentByID(id string) (*student.Student, bool) {
	if id == "" {
		return nil, false
	}
	for _, st := range s.roster.All() {
		if st.ID() == id {
			return st, true
		}
	}
	return nil, false
}

// AddAcademicRecord appends record to the ledger. It returns false when the
// record is nil or already present, which is the case when the ledger is
// shared with the AcademicService that registered it.
func (s *StudentService) AddAcademicRecord(record *academic.AcademicRecord) bool {
	if record == nil {
		return false
	}
	added := s.ledger.Append(record)
	if !added {
		s.logger.Debug("record already in ledger", slog.String("record_id", record.ID()))
	}
	return added
}

// CalculateStudentAverage returns the mean final grade over the records of
// st. A student without records averages 0.
func (s *StudentService) CalculateStudentAverage(st *student.Student) float64 {
	if st == nil {
		return 0
	}
	return academic.Average(s.ledger.ForStudent(st))
}

// RecordsFor returns the record history of st in registration order.
func (s *StudentService) RecordsFor(st *student.Student) []*academic.AcademicRecord {
	if st == nil {
		return nil
	}
	return s.ledger.ForStudent(st)
}

// Students returns the roster in registration order.
func (s *StudentService) Students() []*student.Student {
	return s.roster.All()
}

func foldName(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}
