package memory

import (
	"sync"

	"github.com/tetrahub/academic-records/internal/domain/student"
)

// ══════════════════════════════════════════════════════════════════════════════
// ROSTER
// ══════════════════════════════════════════════════════════════════════════════

// Roster implements student.Roster.
type Roster struct {
	mu       sync.RWMutex
	students []*student.Student
}

// NewRoster creates an empty roster.
func NewRoster() *Roster {
	return &Roster{students: make([]*student.Student, 0)}
}

// Add implements student.Roster.
func (r *Roster) Add(st *student.Student) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.students = append(r.students, st)
}

// All implements student.Roster.
func (r *Roster) All() []*student.Student {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*student.Student, len(r.students))
	copy(out, r.students)
	return out
}

// Count implements student.Roster.
func (r *Roster) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.students)
}
