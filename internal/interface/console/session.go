// Package console is the interactive text front end: it prompts for a term,
// a subject and six scores, records the evaluation and prints the report.
// All domain decisions are delegated to the application layer.
package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/text/language"

	"github.com/tetrahub/academic-records/internal/application/command"
	"github.com/tetrahub/academic-records/internal/application/query"
	"github.com/tetrahub/academic-records/internal/application/service"
	"github.com/tetrahub/academic-records/internal/domain/academic"
	"github.com/tetrahub/academic-records/internal/domain/catalog"
	"github.com/tetrahub/academic-records/internal/domain/evaluation"
	"github.com/tetrahub/academic-records/internal/domain/shared"
	"github.com/tetrahub/academic-records/internal/domain/student"
	"github.com/tetrahub/academic-records/pkg/logger"
	"github.com/tetrahub/academic-records/pkg/timeutil"
)

// Session runs one console consultation.
type Session struct {
	prompt    *Prompter
	presenter *Presenter
	logger    *slog.Logger

	academic *service.AcademicService
	students *service.StudentService
	record   *command.RecordEvaluationHandler
	report   *query.StudentReportHandler

	profile student.NewStudentParams
}

// SessionConfig wires a Session.
type SessionConfig struct {
	In  io.Reader
	Out io.Writer

	Academic *service.AcademicService
	Students *service.StudentService
	Record   *command.RecordEvaluationHandler
	Report   *query.StudentReportHandler

	// Profile is the student the session is opened for.
	Profile student.NewStudentParams

	// Language formats numbers; zero value means Spanish.
	Language language.Tag

	Logger *slog.Logger
}

// NewSession creates a Session.
func NewSession(cfg SessionConfig) *Session {
	if cfg.Language == language.Und {
		cfg.Language = language.Spanish
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &Session{
		prompt:    NewPrompter(cfg.In, cfg.Out),
		presenter: NewPresenter(cfg.Out, cfg.Language),
		logger:    cfg.Logger.With(logger.Component("console")),
		academic:  cfg.Academic,
		students:  cfg.Students,
		record:    cfg.Record,
		report:    cfg.Report,
		profile:   cfg.Profile,
	}
}

// Run executes the session. Running out of input returns io.ErrUnexpectedEOF.
// Invalid scores rejected by the evaluation are reported on the output and do
// not fail the session.
func (s *Session) Run(ctx context.Context) error {
	s.presenter.Banner("Sistema de Gestión Académica Unificado", timeutil.Now())

	st, err := student.New(s.profile)
	if err != nil {
		return fmt.Errorf("session student: %w", err)
	}
	if err := s.students.RegisterStudent(st); err != nil {
		return err
	}
	s.presenter.Line("Sesión iniciada como: " + st.FullName())

	term, err := s.prompt.Int("\nIngrese el número de tetramestre a consultar (1-9): ",
		"Error: Ingrese un número válido.",
		func(n int) error {
			if _, err := catalog.ValidateTerm(n); err != nil {
				return errors.New("Error: El rango debe ser de 1 a 9.")
			}
			return nil
		})
	if err != nil {
		return err
	}

	sem := academic.NewSemester(term)
	if err := s.academic.AddSemester(sem); err != nil {
		return err
	}
	if err := s.academic.EnrollStudentInSemester(sem, st); err != nil {
		return err
	}

	subjects := s.academic.SubjectsBySemester(term)
	s.presenter.Subjects(term, subjects)

	choice, err := s.prompt.Int("Seleccione el número de materia para evaluar: ", "",
		func(n int) error {
			if n < 1 || n > len(subjects) {
				return fmt.Errorf("Seleccione un número entre 1 y %d.", len(subjects))
			}
			return nil
		})
	if err != nil {
		return err
	}
	subject := subjects[choice-1]

	scores, err := s.captureScores()
	if err != nil {
		return err
	}

	result, err := s.record.Handle(ctx, command.RecordEvaluationCommand{
		Student:  st,
		Subject:  subject,
		Semester: sem,
		Scores:   scores,
	})
	if err != nil {
		if shared.IsValidation(err) {
			s.presenter.Line("Error en el procesamiento: " + err.Error())
			return s.finish()
		}
		return err
	}

	report, err := s.report.Handle(ctx, query.StudentReportQuery{StudentID: st.ID()})
	if err != nil {
		return err
	}
	s.presenter.Report(report, result)

	return s.finish()
}

func (s *Session) finish() error {
	s.presenter.Line("\nProceso finalizado. El sistema se cerrará.")
	return nil
}

// captureScores reads the six components in weight order, re-prompting until
// each value is a number within 0-100.
func (s *Session) captureScores() (evaluation.Scores, error) {
	s.presenter.Line("\n--- REGISTRO DE CALIFICACIONES (Escala 0-100) ---")

	values := make(map[evaluation.Component]float64, 6)
	for _, w := range evaluation.Weights() {
		component := w.Component
		v, err := s.prompt.Float(s.presenter.ScorePrompt(w),
			"Alerta: Ingrese un valor numérico válido.",
			func(f float64) error {
				if err := evaluation.ValidateScore(component, f); err != nil {
					s.logger.Debug("score rejected", logger.Err(err))
					return errors.New("Alerta: La nota debe estar entre 0 y 100.")
				}
				return nil
			})
		if err != nil {
			return evaluation.Scores{}, err
		}
		values[component] = v
	}

	return evaluation.Scores{
		Projects:   values[evaluation.ComponentProjects],
		Homework:   values[evaluation.ComponentHomework],
		Activities: values[evaluation.ComponentActivities],
		Partial1:   values[evaluation.ComponentPartial1],
		Partial2:   values[evaluation.ComponentPartial2],
		FinalExam:  values[evaluation.ComponentFinalExam],
	}, nil
}
