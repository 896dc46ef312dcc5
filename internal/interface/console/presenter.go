package console

import (
	"io"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/tetrahub/academic-records/internal/application/command"
	"github.com/tetrahub/academic-records/internal/application/query"
	"github.com/tetrahub/academic-records/internal/domain/catalog"
	"github.com/tetrahub/academic-records/internal/domain/evaluation"
	"github.com/tetrahub/academic-records/pkg/timeutil"
)

const ruleWide = "=============================================="
const ruleThin = "----------------------------------------------"

var componentLabels = map[evaluation.Component]string{
	evaluation.ComponentProjects:   "Puntaje de Proyectos",
	evaluation.ComponentHomework:   "Puntaje de Tareas",
	evaluation.ComponentActivities: "Puntaje de Actividades",
	evaluation.ComponentPartial1:   "Examen Parcial 1",
	evaluation.ComponentPartial2:   "Examen Parcial 2",
	evaluation.ComponentFinalExam:  "Examen Final",
}

// Presenter renders menus and reports. Numbers are formatted for the
// configured locale with two decimals.
type Presenter struct {
	out io.Writer
	p   *message.Printer
}

// NewPresenter creates a Presenter writing to out.
func NewPresenter(out io.Writer, tag language.Tag) *Presenter {
	return &Presenter{out: out, p: message.NewPrinter(tag)}
}

// Banner prints the session header with the campus date of now.
func (pr *Presenter) Banner(title string, now time.Time) {
	pr.p.Fprintln(pr.out, ruleWide)
	pr.p.Fprintln(pr.out, "   "+strings.ToUpper(title))
	pr.p.Fprintln(pr.out, "   "+timeutil.FormatLongSpanish(now))
	pr.p.Fprintln(pr.out, ruleWide)
}

// Line prints a plain line.
func (pr *Presenter) Line(s string) {
	pr.p.Fprintln(pr.out, s)
}

// Subjects prints the numbered subject menu of a term.
func (pr *Presenter) Subjects(term int, subjects []*catalog.Subject) {
	pr.p.Fprintf(pr.out, "\n--- MATERIAS DISPONIBLES EN TETRAMESTRE %d ---\n", term)
	for i, s := range subjects {
		pr.p.Fprintf(pr.out, "%d. %s [%d Créditos]\n", i+1, s.Name(), s.Credits())
	}
}

// ScorePrompt returns the capture prompt of a component, e.g.
// "Examen Final (30%): ".
func (pr *Presenter) ScorePrompt(w evaluation.Weight) string {
	label, ok := componentLabels[w.Component]
	if !ok {
		label = string(w.Component)
	}
	return pr.p.Sprintf("%s (%d%%): ", label, w.Percent())
}

// Report prints the final academic report of one grading event.
func (pr *Presenter) Report(report *query.StudentReportDTO, result *command.RecordEvaluationResult) {
	record := result.Record
	pr.p.Fprintln(pr.out, "\n"+ruleWide)
	pr.p.Fprintln(pr.out, "           REPORTE ACADÉMICO FINAL            ")
	pr.p.Fprintln(pr.out, ruleWide)
	pr.p.Fprintf(pr.out, "Alumno:     %s\n", report.FullName)
	pr.p.Fprintf(pr.out, "Ubicación:  %s\n", report.Address)
	pr.p.Fprintf(pr.out, "Materia:    %s\n", record.Subject().Name())
	pr.p.Fprintf(pr.out, "Tetra:      %d\n", record.Semester().Number())
	pr.p.Fprintf(pr.out, "Fecha:      %s\n", timeutil.FormatDateTimeStr(record.RecordedAt()))
	pr.p.Fprintln(pr.out, ruleThin)
	pr.Breakdown(record.Evaluation())
	pr.p.Fprintln(pr.out, ruleThin)
	pr.p.Fprintf(pr.out, "CALIFICACIÓN FINAL EN MATERIA: %.2f\n", result.FinalGrade)
	pr.p.Fprintf(pr.out, "ESTATUS:    %s\n", status(result.Passed))
	pr.p.Fprintf(pr.out, "PROMEDIO GENERAL ACUMULADO:    %.2f\n", report.Average)
	if len(report.Lines) > 1 {
		pr.p.Fprintln(pr.out, ruleThin)
		pr.History(report)
	}
	pr.p.Fprintln(pr.out, ruleWide)
}

// Breakdown prints each component score with its weight, in capture order.
func (pr *Presenter) Breakdown(ev *evaluation.Evaluation) {
	for _, w := range evaluation.Weights() {
		pr.p.Fprintf(pr.out, "%-30s %6.2f\n", pr.ScorePrompt(w), ev.Score(w.Component))
	}
}

// History prints every graded subject of a report. Report includes it when
// the student has more than one record.
func (pr *Presenter) History(report *query.StudentReportDTO) {
	for _, l := range report.Lines {
		pr.p.Fprintf(pr.out, "T%d  %-40s %6.2f  %s\n", l.Term, l.Subject, l.FinalGrade, status(l.Passed))
	}
}

func status(passed bool) string {
	if passed {
		return "APROBADO"
	}
	return "REPROBADO"
}
