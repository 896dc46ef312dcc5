package query

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tetrahub/academic-records/internal/application/service"
	"github.com/tetrahub/academic-records/internal/domain/academic"
	"github.com/tetrahub/academic-records/internal/domain/evaluation"
	"github.com/tetrahub/academic-records/internal/domain/shared"
	"github.com/tetrahub/academic-records/internal/domain/student"
	"github.com/tetrahub/academic-records/internal/infrastructure/persistence/memory"
	"github.com/tetrahub/academic-records/pkg/logger"
)

func TestStudentReport(t *testing.T) {
	ledger := memory.NewLedger()
	as := service.NewAcademicService(ledger, service.AcademicServiceConfig{Logger: logger.Discard()})
	ss := service.NewStudentService(memory.NewRoster(), ledger, service.StudentServiceConfig{Logger: logger.Discard()})

	st, err := student.New(student.NewStudentParams{
		FirstName: "Perla", MiddleName: "Yudith", LastName: "Delgadillo", MotherLastName: "Navarro",
		Address: "Monterrey, N.L.", MobilePhone: "528131658748",
	})
	require.NoError(t, err)
	require.NoError(t, ss.RegisterStudent(st))

	sem := academic.NewSemester(4)
	require.NoError(t, as.AddSemester(sem))

	for i, score := range []float64{90, 50} {
		ev, err := evaluation.New(evaluation.Scores{
			Projects: score, Homework: score, Activities: score,
			Partial1: score, Partial2: score, FinalExam: score,
		})
		require.NoError(t, err)
		_, err = as.RegisterEvaluation(st, sem.Subjects()[i], sem, ev)
		require.NoError(t, err)
	}

	h := NewStudentReportHandler(ss, 0)
	report, err := h.Handle(context.Background(), StudentReportQuery{FullName: "perla yudith delgadillo navarro"})
	require.NoError(t, err)

	assert.Equal(t, st.ID(), report.StudentID)
	assert.Equal(t, "Perla Yudith Delgadillo Navarro", report.FullName)
	assert.Equal(t, "Monterrey, N.L.", report.Address)
	assert.Equal(t, "528131658748", report.MobilePhone)
	assert.Equal(t, evaluation.DefaultPassingGrade, report.PassingGrade)
	assert.InDelta(t, 70.0, report.Average, 1e-9)

	require.Len(t, report.Lines, 2)
	assert.Equal(t, sem.Subjects()[0].Name(), report.Lines[0].Subject)
	assert.Equal(t, 4, report.Lines[0].Term)
	assert.Equal(t, sem.Subjects()[0].Credits(), report.Lines[0].Credits)
	assert.True(t, report.Lines[0].Passed)
	assert.False(t, report.Lines[1].Passed)
}

func TestStudentReport_NoRecords(t *testing.T) {
	ss := service.NewStudentService(memory.NewRoster(), memory.NewLedger(), service.StudentServiceConfig{Logger: logger.Discard()})
	st, err := student.New(student.NewStudentParams{FirstName: "Ana", LastName: "López"})
	require.NoError(t, err)
	require.NoError(t, ss.RegisterStudent(st))

	report, err := NewStudentReportHandler(ss, 60).Handle(context.Background(), StudentReportQuery{FullName: "Ana López"})
	require.NoError(t, err)

	assert.Empty(t, report.Lines)
	assert.Zero(t, report.Average)
	assert.Equal(t, 60.0, report.PassingGrade)
}

func TestStudentReport_Errors(t *testing.T) {
	ss := service.NewStudentService(memory.NewRoster(), memory.NewLedger(), service.StudentServiceConfig{Logger: logger.Discard()})
	h := NewStudentReportHandler(ss, 70)

	_, err := h.Handle(context.Background(), StudentReportQuery{FullName: "  "})
	assert.Error(t, err)

	_, err = h.Handle(context.Background(), StudentReportQuery{FullName: "Nadie"})
	assert.True(t, shared.IsNotFound(err))
}

func TestStudentReport_ByIDWithDuplicateNames(t *testing.T) {
	ledger := memory.NewLedger()
	as := service.NewAcademicService(ledger, service.AcademicServiceConfig{Logger: logger.Discard()})
	ss := service.NewStudentService(memory.NewRoster(), ledger, service.StudentServiceConfig{Logger: logger.Discard()})

	first, err := student.New(student.NewStudentParams{FirstName: "Ana", LastName: "López"})
	require.NoError(t, err)
	second, err := student.New(student.NewStudentParams{FirstName: "Ana", LastName: "López"})
	require.NoError(t, err)
	require.NoError(t, ss.RegisterStudent(first))
	require.NoError(t, ss.RegisterStudent(second))

	sem := academic.NewSemester(1)
	require.NoError(t, as.AddSemester(sem))
	ev, err := evaluation.New(evaluation.Scores{FinalExam: 100})
	require.NoError(t, err)
	_, err = as.RegisterEvaluation(second, sem.Subjects()[0], sem, ev)
	require.NoError(t, err)

	h := NewStudentReportHandler(ss, 70)

	byName, err := h.Handle(context.Background(), StudentReportQuery{FullName: "Ana López"})
	require.NoError(t, err)
	assert.Equal(t, first.ID(), byName.StudentID)
	assert.Empty(t, byName.Lines)

	byID, err := h.Handle(context.Background(), StudentReportQuery{StudentID: second.ID(), FullName: "ignored"})
	require.NoError(t, err)
	assert.Equal(t, second.ID(), byID.StudentID)
	assert.Len(t, byID.Lines, 1)
	assert.InDelta(t, 30.0, byID.Average, 1e-9)

	_, err = h.Handle(context.Background(), StudentReportQuery{StudentID: "missing"})
	assert.True(t, shared.IsNotFound(err))
}
