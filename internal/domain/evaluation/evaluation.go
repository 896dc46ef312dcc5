// Package evaluation implements the weighted grade of a subject: six component
// scores on a 0-100 scale combined with fixed institutional weights.
package evaluation

import (
	"fmt"
	"math"

	"github.com/tetrahub/academic-records/internal/domain/shared"
)

// Score bounds, inclusive.
const (
	MinScore = 0.0
	MaxScore = 100.0
)

// DefaultPassingGrade is the institutional minimum final grade to pass.
const DefaultPassingGrade = 70.0

// Component identifies one graded activity of an evaluation.
type Component string

const (
	ComponentProjects   Component = "projects"
	ComponentHomework   Component = "homework"
	ComponentActivities Component = "activities"
	ComponentPartial1   Component = "partial_exam_1"
	ComponentPartial2   Component = "partial_exam_2"
	ComponentFinalExam  Component = "final_exam"
)

// Weight is the share of a component in the final grade.
type Weight struct {
	Component Component
	Factor    float64
}

// Percent returns the factor as a whole percentage, e.g. 20 for 0.20.
func (w Weight) Percent() int {
	return int(math.Round(w.Factor * 100))
}

// The factors sum to 1.0.
var weights = [...]Weight{
	{ComponentProjects, 0.20},
	{ComponentHomework, 0.20},
	{ComponentActivities, 0.10},
	{ComponentPartial1, 0.10},
	{ComponentPartial2, 0.10},
	{ComponentFinalExam, 0.30},
}

// Weights returns the component weights in capture order.
func Weights() []Weight {
	out := make([]Weight, len(weights))
	copy(out, weights[:])
	return out
}

// Scores carries the six raw component scores.
type Scores struct {
	Projects   float64
	Homework   float64
	Activities float64
	Partial1   float64
	Partial2   float64
	FinalExam  float64
}

// Evaluation is a validated, immutable set of component scores.
type Evaluation struct {
	scores Scores
}

// New validates every component against [0,100] and returns the evaluation.
// The first offending component is reported as a range error.
func New(s Scores) (*Evaluation, error) {
	for _, c := range []struct {
		component Component
		value     float64
	}{
		{ComponentProjects, s.Projects},
		{ComponentHomework, s.Homework},
		{ComponentActivities, s.Activities},
		{ComponentPartial1, s.Partial1},
		{ComponentPartial2, s.Partial2},
		{ComponentFinalExam, s.FinalExam},
	} {
		if err := ValidateScore(c.component, c.value); err != nil {
			return nil, err
		}
	}
	return &Evaluation{scores: s}, nil
}

// ValidateScore checks a single component value. Callers that capture scores
// one at a time use it to re-prompt before building the evaluation.
func ValidateScore(component Component, value float64) error {
	if math.IsNaN(value) || value < MinScore || value > MaxScore {
		return shared.WrapError("evaluation", "New", shared.ErrValueOutOfRange,
			fmt.Sprintf("invalid %s score", component),
			fmt.Errorf("%v is outside %v-%v", value, MinScore, MaxScore))
	}
	return nil
}

// Scores returns a copy of the component scores.
func (e *Evaluation) Scores() Scores {
	return e.scores
}

// Score returns the value of one component.
func (e *Evaluation) Score(c Component) float64 {
	switch c {
	case ComponentProjects:
		return e.scores.Projects
	case ComponentHomework:
		return e.scores.Homework
	case ComponentActivities:
		return e.scores.Activities
	case ComponentPartial1:
		return e.scores.Partial1
	case ComponentPartial2:
		return e.scores.Partial2
	case ComponentFinalExam:
		return e.scores.FinalExam
	default:
		return 0
	}
}

// FinalGrade computes the weighted grade. No rounding is applied.
func (e *Evaluation) FinalGrade() float64 {
	s := e.scores
	return s.Projects*0.20 +
		s.Homework*0.20 +
		s.Activities*0.10 +
		s.Partial1*0.10 +
		s.Partial2*0.10 +
		s.FinalExam*0.30
}

// Passed reports whether grade reaches threshold.
func Passed(grade, threshold float64) bool {
	return grade >= threshold
}
