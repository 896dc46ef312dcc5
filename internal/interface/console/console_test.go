package console

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/tetrahub/academic-records/internal/application/command"
	"github.com/tetrahub/academic-records/internal/application/query"
	"github.com/tetrahub/academic-records/internal/application/service"
	"github.com/tetrahub/academic-records/internal/domain/evaluation"
	"github.com/tetrahub/academic-records/internal/domain/student"
	"github.com/tetrahub/academic-records/internal/infrastructure/persistence/memory"
	"github.com/tetrahub/academic-records/pkg/logger"
)

type harness struct {
	out      bytes.Buffer
	academic *service.AcademicService
	students *service.StudentService
}

func newHarness() *harness {
	ledger := memory.NewLedger()
	return &harness{
		academic: service.NewAcademicService(ledger, service.AcademicServiceConfig{Logger: logger.Discard()}),
		students: service.NewStudentService(memory.NewRoster(), ledger, service.StudentServiceConfig{Logger: logger.Discard()}),
	}
}

func (h *harness) run(t *testing.T, input string) error {
	t.Helper()
	h.out.Reset()
	s := NewSession(SessionConfig{
		In:       strings.NewReader(input),
		Out:      &h.out,
		Academic: h.academic,
		Students: h.students,
		Record:   command.NewRecordEvaluationHandler(h.academic, h.students, command.DefaultRecordEvaluationHandlerConfig()),
		Report:   query.NewStudentReportHandler(h.students, 0),
		Profile: student.NewStudentParams{
			FirstName: "Perla", MiddleName: "Yudith", LastName: "Delgadillo", MotherLastName: "Navarro",
			Address: "Monterrey, N.L.",
		},
		Language: language.English,
		Logger:   logger.Discard(),
	})
	return s.Run(context.Background())
}

func TestSession_FullConsultation(t *testing.T) {
	h := newHarness()
	err := h.run(t, "3\n2\n100 100 100 100 100 100\n")
	require.NoError(t, err)

	out := h.out.String()
	assert.Contains(t, out, "Sesión iniciada como: Perla Yudith Delgadillo Navarro")
	assert.Contains(t, out, "--- MATERIAS DISPONIBLES EN TETRAMESTRE 3 ---")
	assert.Contains(t, out, "2. Estructuras de Datos [8 Créditos]")
	assert.Contains(t, out, "Examen Final (30%): ")
	assert.Contains(t, out, "Materia:    Estructuras de Datos")
	assert.Contains(t, out, "Tetra:      3")
	assert.Contains(t, out, "Fecha:      ")
	assert.Contains(t, out, "CALIFICACIÓN FINAL EN MATERIA: 100.00")
	assert.Contains(t, out, "ESTATUS:    APROBADO")
	assert.Contains(t, out, "PROMEDIO GENERAL ACUMULADO:    100.00")
	assert.Contains(t, out, "Proceso finalizado.")

	assert.Len(t, h.academic.AcademicRecords(), 1)
	assert.Len(t, h.students.Students(), 1)
}

func TestSession_RepromptsInvalidInput(t *testing.T) {
	h := newHarness()
	input := strings.Join([]string{
		"abc", "0", "10", "1", // term
		"7", "1", // subject
		"x", "150", "100", // projects
		"-1", "0", // homework
		"0", "0", "0", "0,5", // activities, partials, final exam with decimal comma
	}, "\n")
	err := h.run(t, input)
	require.NoError(t, err)

	out := h.out.String()
	assert.Contains(t, out, "Error: Ingrese un número válido.")
	assert.Equal(t, 2, strings.Count(out, "Error: El rango debe ser de 1 a 9."))
	assert.Contains(t, out, "Seleccione un número entre 1 y 6.")
	assert.Contains(t, out, "Alerta: Ingrese un valor numérico válido.")
	assert.Equal(t, 2, strings.Count(out, "Alerta: La nota debe estar entre 0 y 100."))
	assert.Contains(t, out, "Materia:    Matemáticas Básicas")
	assert.Contains(t, out, "CALIFICACIÓN FINAL EN MATERIA: 20.15")
	assert.Contains(t, out, "ESTATUS:    REPROBADO")
}

func TestSession_SameNameReportsGradedStudent(t *testing.T) {
	h := newHarness()

	require.NoError(t, h.run(t, "1\n1\n100 100 100 100 100 100\n"))
	assert.Contains(t, h.out.String(), "PROMEDIO GENERAL ACUMULADO:    100.00")

	// Second session registers a new student with the same name.
	require.NoError(t, h.run(t, "1\n1\n0 0 0 0 0 0\n"))
	out := h.out.String()
	assert.Contains(t, out, "CALIFICACIÓN FINAL EN MATERIA: 0.00")
	assert.Contains(t, out, "PROMEDIO GENERAL ACUMULADO:    0.00")
	assert.NotContains(t, out, "100.00")

	require.Len(t, h.students.Students(), 2)
	assert.InDelta(t, 100.0, h.students.CalculateStudentAverage(h.students.Students()[0]), 1e-9)
	assert.Zero(t, h.students.CalculateStudentAverage(h.students.Students()[1]))
}

func TestSession_InputEndsEarly(t *testing.T) {
	h := newHarness()
	err := h.run(t, "4\n1\n90 90")
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	assert.Empty(t, h.academic.AcademicRecords())
}

func TestPresenter_ScorePrompt(t *testing.T) {
	pr := NewPresenter(io.Discard, language.English)
	prompts := make([]string, 0, 6)
	for _, w := range evaluation.Weights() {
		prompts = append(prompts, pr.ScorePrompt(w))
	}

	assert.Equal(t, []string{
		"Puntaje de Proyectos (20%): ",
		"Puntaje de Tareas (20%): ",
		"Puntaje de Actividades (10%): ",
		"Examen Parcial 1 (10%): ",
		"Examen Parcial 2 (10%): ",
		"Examen Final (30%): ",
	}, prompts)
}

func TestPresenter_History(t *testing.T) {
	var buf bytes.Buffer
	pr := NewPresenter(&buf, language.English)
	report := &query.StudentReportDTO{
		FullName: "Ana López",
		Lines: []query.ReportLineDTO{
			{Subject: "Cálculo Integral", Term: 3, FinalGrade: 90, Passed: true},
		},
		Average: 90,
	}

	pr.History(report)
	assert.Contains(t, buf.String(), "T3  Cálculo Integral")
	assert.Contains(t, buf.String(), "90.00  APROBADO")
}

func TestPresenter_Breakdown(t *testing.T) {
	var buf bytes.Buffer
	pr := NewPresenter(&buf, language.English)
	ev, err := evaluation.New(evaluation.Scores{
		Projects: 90, Homework: 80, Activities: 70, Partial1: 60, Partial2: 50, FinalExam: 40.5,
	})
	require.NoError(t, err)

	pr.Breakdown(ev)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 6)
	assert.True(t, strings.HasPrefix(lines[0], "Puntaje de Proyectos (20%): "))
	assert.True(t, strings.HasSuffix(lines[0], " 90.00"))
	assert.True(t, strings.HasPrefix(lines[5], "Examen Final (30%): "))
	assert.True(t, strings.HasSuffix(lines[5], " 40.50"))
}

func TestPresenter_BannerDate(t *testing.T) {
	var buf bytes.Buffer
	pr := NewPresenter(&buf, language.English)

	pr.Banner("Sistema", time.Date(2026, 10, 16, 18, 0, 0, 0, time.UTC))

	assert.Contains(t, buf.String(), "SISTEMA")
	assert.Contains(t, buf.String(), "16 de octubre de 2026")
}
