package student

// ══════════════════════════════════════════════════════════════════════════════
// REPOSITORY INTERFACES
// Implementations live in infrastructure/persistence.
// ══════════════════════════════════════════════════════════════════════════════

// Roster is the ordered, append-only list of registered students.
type Roster interface {
	// Add appends a student. No uniqueness check is performed.
	Add(student *Student)

	// All returns the students in registration order. The returned slice is a copy.
	All() []*Student

	// Count returns the number of registered students.
	Count() int
}
