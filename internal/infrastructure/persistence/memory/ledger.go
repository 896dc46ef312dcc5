// Package memory implements the in-process stores of the academic record
// keeper. Nothing is written to disk; state lives for one session.
package memory

import (
	"sync"

	"github.com/tetrahub/academic-records/internal/domain/academic"
	"github.com/tetrahub/academic-records/internal/domain/student"
)

// ══════════════════════════════════════════════════════════════════════════════
// LEDGER
// ══════════════════════════════════════════════════════════════════════════════

// Ledger implements academic.Ledger as an ordered slice with an ID index.
type Ledger struct {
	mu      sync.RWMutex
	records []*academic.AcademicRecord
	byID    map[string]struct{}
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		records: make([]*academic.AcademicRecord, 0),
		byID:    make(map[string]struct{}),
	}
}

// Append implements academic.Ledger.
func (l *Ledger) Append(record *academic.AcademicRecord) bool {
	if record == nil {
		return false
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.byID[record.ID()]; ok {
		return false
	}
	l.byID[record.ID()] = struct{}{}
	l.records = append(l.records, record)
	return true
}

// All implements academic.Ledger.
func (l *Ledger) All() []*academic.AcademicRecord {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]*academic.AcademicRecord, len(l.records))
	copy(out, l.records)
	return out
}

// ForStudent implements academic.Ledger.
func (l *Ledger) ForStudent(st *student.Student) []*academic.AcademicRecord {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]*academic.AcademicRecord, 0)
	for _, r := range l.records {
		if r.Student().Is(st) {
			out = append(out, r)
		}
	}
	return out
}

// Len implements academic.Ledger.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.records)
}
