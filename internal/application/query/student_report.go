// Package query contains read operations (CQRS - Queries).
package query

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tetrahub/academic-records/internal/application/service"
	"github.com/tetrahub/academic-records/internal/domain/evaluation"
	"github.com/tetrahub/academic-records/internal/domain/shared"
	"github.com/tetrahub/academic-records/internal/domain/student"
)

// ══════════════════════════════════════════════════════════════════════════════
// STUDENT REPORT QUERY
// Collects what the final academic report shows for one student.
// ══════════════════════════════════════════════════════════════════════════════

// StudentReportQuery identifies the student by ID or, when no ID is given, by
// full name. Names are not unique; a name lookup reports the first match.
type StudentReportQuery struct {
	StudentID string
	FullName  string
}

// Validate checks the query parameters.
func (q StudentReportQuery) Validate() error {
	if q.StudentID == "" && strings.TrimSpace(q.FullName) == "" {
		return errors.New("student_id or full_name must be provided")
	}
	return nil
}

// StudentReportDTO is the report of one student.
type StudentReportDTO struct {
	StudentID   string `json:"student_id"`
	FullName    string `json:"full_name"`
	Address     string `json:"address"`
	MobilePhone string `json:"mobile_phone"`

	Lines []ReportLineDTO `json:"lines"`

	// Average is the running average over all lines, 0 without lines.
	Average float64 `json:"average"`

	// PassingGrade is the threshold used for the Passed flags.
	PassingGrade float64 `json:"passing_grade"`
}

// ReportLineDTO is one graded subject.
type ReportLineDTO struct {
	RecordID   string  `json:"record_id"`
	Subject    string  `json:"subject"`
	Term       int     `json:"term"`
	Credits    int     `json:"credits"`
	FinalGrade float64 `json:"final_grade"`
	Passed     bool    `json:"passed"`
}

// StudentReportHandler handles StudentReportQuery.
type StudentReportHandler struct {
	students     *service.StudentService
	passingGrade float64
}

// NewStudentReportHandler creates a StudentReportHandler. A non-positive
// passingGrade selects evaluation.DefaultPassingGrade.
func NewStudentReportHandler(students *service.StudentService, passingGrade float64) *StudentReportHandler {
	if passingGrade <= 0 {
		passingGrade = evaluation.DefaultPassingGrade
	}
	return &StudentReportHandler{students: students, passingGrade: passingGrade}
}

// Handle executes the query. An unknown name yields an error matching
// shared.ErrNotFound.
func (h *StudentReportHandler) Handle(_ context.Context, q StudentReportQuery) (*StudentReportDTO, error) {
	if err := q.Validate(); err != nil {
		return nil, fmt.Errorf("student_report: %w", err)
	}

	st, ok := h.find(q)
	if !ok {
		return nil, shared.WrapError("student", "Report", shared.ErrNotFound, "student not found",
			fmt.Errorf("id=%q name=%q", q.StudentID, q.FullName))
	}

	records := h.students.RecordsFor(st)
	dto := &StudentReportDTO{
		StudentID:    st.ID(),
		FullName:     st.FullName(),
		Address:      st.Address(),
		MobilePhone:  st.MobilePhone(),
		Lines:        make([]ReportLineDTO, 0, len(records)),
		Average:      h.students.CalculateStudentAverage(st),
		PassingGrade: h.passingGrade,
	}
	for _, r := range records {
		grade := r.FinalGrade()
		dto.Lines = append(dto.Lines, ReportLineDTO{
			RecordID:   r.ID(),
			Subject:    r.Subject().Name(),
			Term:       r.Semester().Number(),
			Credits:    r.Subject().Credits(),
			FinalGrade: grade,
			Passed:     evaluation.Passed(grade, h.passingGrade),
		})
	}
	return dto, nil
}

func (h *StudentReportHandler) find(q StudentReportQuery) (*student.Student, bool) {
	if q.StudentID != "" {
		return h.students.FindStudentByID(q.StudentID)
	}
	return h.students.FindStudentByName(q.FullName)
}
