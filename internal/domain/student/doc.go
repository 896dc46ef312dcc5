// Package student holds the Student entity.
//
// A Student is built once at registration with New and never changes:
//
//	s, err := student.New(student.NewStudentParams{
//	    FirstName:      "Perla",
//	    MiddleName:     "Yudith",
//	    LastName:       "Delgadillo",
//	    MotherLastName: "Navarro",
//	    Age:            38,
//	})
//	s.FullName() // "Perla Yudith Delgadillo Navarro"
//
// Academic records reference the same *Student value, so identity comparisons
// use Student.Is rather than comparing names.
//
// The Roster interface is implemented by the in-memory store in
// internal/infrastructure/persistence/memory.
package student
