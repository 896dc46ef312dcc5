package service

import (
	"log/slog"
	"strings"

	"github.com/tetrahub/academic-records/internal/domain/academic"
	"github.com/tetrahub/academic-records/internal/domain/catalog"
	"github.com/tetrahub/academic-records/internal/domain/shared"
	"github.com/tetrahub/academic-records/pkg/logger"
)

// TeacherService keeps the staff list and applies the teaching load limit.
type TeacherService struct {
	publisher shared.EventPublisher
	logger    *slog.Logger

	// publishAssignments also emits events for accepted assignments.
	// Rejections are always published.
	publishAssignments bool

	teachers []*academic.Teacher
}

// TeacherServiceConfig contains the optional collaborators of TeacherService.
type TeacherServiceConfig struct {
	Publisher          shared.EventPublisher
	Logger             *slog.Logger
	PublishAssignments bool
}

// NewTeacherService creates a TeacherService.
func NewTeacherService(config TeacherServiceConfig) *TeacherService {
	if config.Publisher == nil {
		config.Publisher = shared.NopPublisher{}
	}
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	return &TeacherService{
		publisher:          config.Publisher,
		logger:             config.Logger.With(logger.Component("teacher_service")),
		publishAssignments: config.PublishAssignments,
		teachers:           make([]*academic.Teacher, 0),
	}
}

// RegisterTeacher creates a teacher and adds it to the staff list.
func (s *TeacherService) RegisterTeacher(name string) (*academic.Teacher, error) {
	t, err := academic.NewTeacher(name)
	if err != nil {
		return nil, err
	}
	s.teachers = append(s.teachers, t)
	return t, nil
}

// FindTeacher returns the first teacher whose name matches ignoring case.
func (s *TeacherService) FindTeacher(name string) (*academic.Teacher, bool) {
	wanted := foldName(name)
	for _, t := range s.teachers {
		if foldName(t.Name()) == wanted {
			return t, true
		}
	}
	return nil, false
}

// Teachers returns the staff list in registration order.
func (s *TeacherService) Teachers() []*academic.Teacher {
	out := make([]*academic.Teacher, len(s.teachers))
	copy(out, s.teachers)
	return out
}

// AssignSubject gives subject to t. When t already holds
// academic.MaxTeacherSubjects subjects the assignment is dropped: the
// rejection is logged and published, and false is returned without an error.
func (s *TeacherService) AssignSubject(t *academic.Teacher, subject *catalog.Subject) bool {
	if t == nil || subject == nil {
		return false
	}

	accepted := t.AssignSubject(subject)
	count := len(t.AssignedSubjects())

	if !accepted {
		s.logger.Warn("teaching load exceeded, assignment dropped",
			slog.String("teacher", t.Name()),
			logger.Subject(subject.Name()),
			slog.Int("limit", academic.MaxTeacherSubjects),
		)
	}
	if !accepted || s.publishAssignments {
		event := shared.NewTeacherAssignmentEvent(t.Name(), subject.Name(), count, accepted)
		if err := s.publisher.Publish(event); err != nil {
			s.logger.Warn("publish event failed", logger.Err(err))
		}
	}
	return accepted
}

// SubjectSummary joins the names of the teacher's subjects for display.
func SubjectSummary(t *academic.Teacher) string {
	names := make([]string, 0, academic.MaxTeacherSubjects)
	for _, s := range t.AssignedSubjects() {
		names = append(names, s.Name())
	}
	return strings.Join(names, ", ")
}
