// Package command contains write operations (CQRS - Commands).
package command

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/tetrahub/academic-records/internal/application/service"
	"github.com/tetrahub/academic-records/internal/domain/academic"
	"github.com/tetrahub/academic-records/internal/domain/catalog"
	"github.com/tetrahub/academic-records/internal/domain/evaluation"
	"github.com/tetrahub/academic-records/internal/domain/student"
	"github.com/tetrahub/academic-records/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// RECORD EVALUATION COMMAND
// Grades a student in a subject of a term and updates both services with the
// same record object.
// ══════════════════════════════════════════════════════════════════════════════

// RecordEvaluationCommand contains the data of one grading event.
type RecordEvaluationCommand struct {
	Student  *student.Student
	Subject  *catalog.Subject
	Semester *academic.Semester
	Scores   evaluation.Scores
}

// Validate validates the command.
func (c RecordEvaluationCommand) Validate() error {
	if c.Student == nil {
		return errors.New("record_evaluation: student is required")
	}
	if c.Subject == nil {
		return errors.New("record_evaluation: subject is required")
	}
	if c.Semester == nil {
		return errors.New("record_evaluation: semester is required")
	}
	return nil
}

// RecordEvaluationResult contains the result of recording an evaluation.
type RecordEvaluationResult struct {
	// Record is the ledger entry that was created.
	Record *academic.AcademicRecord

	// FinalGrade is the unrounded weighted grade.
	FinalGrade float64

	// Passed tells whether FinalGrade reaches the passing threshold.
	Passed bool

	// Average is the student's running average including this record.
	Average float64

	// AddedToStudentLedger is false when the student service shares the
	// academic ledger and the record was already there.
	AddedToStudentLedger bool
}

// ══════════════════════════════════════════════════════════════════════════════
// HANDLER
// ══════════════════════════════════════════════════════════════════════════════

// RecordEvaluationHandler handles the RecordEvaluationCommand.
type RecordEvaluationHandler struct {
	academic *service.AcademicService
	students *service.StudentService

	passingGrade float64
}

// RecordEvaluationHandlerConfig contains configuration for the handler.
type RecordEvaluationHandlerConfig struct {
	PassingGrade float64
}

// DefaultRecordEvaluationHandlerConfig returns default configuration.
func DefaultRecordEvaluationHandlerConfig() RecordEvaluationHandlerConfig {
	return RecordEvaluationHandlerConfig{
		PassingGrade: evaluation.DefaultPassingGrade,
	}
}

// NewRecordEvaluationHandler creates a new RecordEvaluationHandler.
func NewRecordEvaluationHandler(
	academicService *service.AcademicService,
	studentService *service.StudentService,
	config RecordEvaluationHandlerConfig,
) *RecordEvaluationHandler {
	if config.PassingGrade <= 0 {
		config = DefaultRecordEvaluationHandlerConfig()
	}
	return &RecordEvaluationHandler{
		academic:     academicService,
		students:     studentService,
		passingGrade: config.PassingGrade,
	}
}

// Handle executes the record evaluation command. Score validation failures
// are returned unchanged so callers can test them with shared.IsValidation.
func (h *RecordEvaluationHandler) Handle(ctx context.Context, cmd RecordEvaluationCommand) (*RecordEvaluationResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	ev, err := evaluation.New(cmd.Scores)
	if err != nil {
		return nil, err
	}

	record, err := h.academic.RegisterEvaluation(cmd.Student, cmd.Subject, cmd.Semester, ev)
	if err != nil {
		return nil, fmt.Errorf("record_evaluation: %w", err)
	}

	added := h.students.AddAcademicRecord(record)

	result := &RecordEvaluationResult{
		Record:               record,
		FinalGrade:           record.FinalGrade(),
		Passed:               evaluation.Passed(record.FinalGrade(), h.passingGrade),
		Average:              h.students.CalculateStudentAverage(cmd.Student),
		AddedToStudentLedger: added,
	}

	logger.FromContext(ctx).Debug("evaluation recorded",
		logger.StudentName(cmd.Student.FullName()),
		logger.Subject(cmd.Subject.Name()),
		logger.Grade(result.FinalGrade),
		slog.Float64("average", result.Average),
		slog.Bool("passed", result.Passed),
	)

	return result, nil
}
