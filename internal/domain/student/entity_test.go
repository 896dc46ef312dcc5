package student

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tetrahub/academic-records/internal/domain/shared"
)

func TestNew_FullNameWithMiddleName(t *testing.T) {
	s, err := New(NewStudentParams{
		FirstName:      "Perla",
		MiddleName:     "Yudith",
		LastName:       "Delgadillo",
		MotherLastName: "Navarro",
		Age:            38,
	})
	require.NoError(t, err)

	assert.Equal(t, "Perla Yudith Delgadillo Navarro", s.FullName())
	assert.Equal(t, 38, s.Age())
	assert.NotEmpty(t, s.ID())
}

func TestNew_FullNameWithoutMiddleName(t *testing.T) {
	s, err := New(NewStudentParams{
		FirstName:      "Ana",
		LastName:       "López",
		MotherLastName: "Ruiz",
	})
	require.NoError(t, err)

	assert.Equal(t, "Ana López Ruiz", s.FullName())
	assert.Equal(t, s.FullName(), s.String())
}

func TestNew_TrimsNames(t *testing.T) {
	s, err := New(NewStudentParams{FirstName: "  Ana ", MiddleName: "  ", LastName: " López"})
	require.NoError(t, err)

	assert.Equal(t, "Ana López", s.FullName())
}

func TestNew_Validation(t *testing.T) {
	_, err := New(NewStudentParams{LastName: "López"})
	assert.ErrorIs(t, err, shared.ErrStudentNameMissing)

	_, err = New(NewStudentParams{FirstName: "Ana", LastName: "   "})
	assert.ErrorIs(t, err, shared.ErrStudentNameMissing)

	_, err = New(NewStudentParams{FirstName: "Ana", LastName: "López", Age: -1})
	assert.ErrorIs(t, err, shared.ErrStudentAgeNegative)
}

func TestNew_KeepsGivenID(t *testing.T) {
	s, err := New(NewStudentParams{ID: "stu-1", FirstName: "Ana", LastName: "López"})
	require.NoError(t, err)

	assert.Equal(t, "stu-1", s.ID())
}

func TestStudent_Is(t *testing.T) {
	a, _ := New(NewStudentParams{ID: "stu-1", FirstName: "Ana", LastName: "López"})
	b, _ := New(NewStudentParams{ID: "stu-1", FirstName: "Ana", LastName: "López"})
	c, _ := New(NewStudentParams{FirstName: "Ana", LastName: "López"})

	assert.True(t, a.Is(a))
	assert.True(t, a.Is(b))
	assert.False(t, a.Is(c))
	assert.False(t, a.Is(nil))
}
