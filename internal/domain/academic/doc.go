// Package academic binds the entity model together: terms (Semester) with
// their catalog subjects and enrolled students, teachers with their capped
// subject load, and the AcademicRecord facts kept in an append-only Ledger.
package academic
