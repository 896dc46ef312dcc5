package academic

import "github.com/tetrahub/academic-records/internal/domain/student"

// Ledger is an append-only, ordered collection of academic records.
// Implementations live in infrastructure/persistence.
type Ledger interface {
	// Append adds a record. Appending a record whose ID is already present is
	// a no-op and returns false.
	Append(record *AcademicRecord) bool

	// All returns every record in append order. The slice is a copy.
	All() []*AcademicRecord

	// ForStudent returns the records of one student in append order.
	ForStudent(st *student.Student) []*AcademicRecord

	// Len returns the number of records.
	Len() int
}

// Average returns the mean final grade of records, or 0 when records is empty.
func Average(records []*AcademicRecord) float64 {
	if len(records) == 0 {
		return 0
	}
	var total float64
	for _, r := range records {
		total += r.FinalGrade()
	}
	return total / float64(len(records))
}
