package entities

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPerson(t *testing.T) {
	birth := time.Date(1990, 5, 20, 0, 0, 0, 0, time.UTC)

	p := NewPerson("Maria Silva", "F", "maria@example.com", birth, "São Paulo", "Brasileira", "52998224725")

	assert.NotEqual(t, uuid.Nil, p.ID())
	assert.Equal(t, "Maria Silva", p.Name())
	assert.Equal(t, "F", p.Sex())
	assert.Equal(t, "maria@example.com", p.Email())
	assert.Equal(t, birth, p.BirthDate())
	assert.Equal(t, "São Paulo", p.BirthPlace())
	assert.Equal(t, "Brasileira", p.Nationality())
	assert.Equal(t, "52998224725", p.CPF().Digits())
	assert.False(t, p.CreatedAt().IsZero())
	assert.Nil(t, p.UpdatedAt())
}

func TestPerson_Update(t *testing.T) {
	birth := time.Date(1990, 5, 20, 0, 0, 0, 0, time.UTC)
	p := NewPerson("Maria Silva", "F", "maria@example.com", birth, "São Paulo", "Brasileira", "52998224725")

	newBirth := time.Date(1991, 1, 2, 0, 0, 0, 0, time.UTC)
	p.Update("Maria Souza", "F", "souza@example.com", newBirth, "Campinas", "Brasileira")

	assert.Equal(t, "Maria Souza", p.Name())
	assert.Equal(t, "souza@example.com", p.Email())
	assert.Equal(t, newBirth, p.BirthDate())
	assert.Equal(t, "Campinas", p.BirthPlace())
	require.NotNil(t, p.UpdatedAt())
	assert.WithinDuration(t, time.Now(), *p.UpdatedAt(), time.Second)

	// CPF is not part of the update surface.
	assert.Equal(t, "52998224725", p.CPF().Digits())
}

func TestReconstructPerson(t *testing.T) {
	id := uuid.New()
	birth := time.Date(1985, 3, 1, 0, 0, 0, 0, time.UTC)
	created := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
	updated := time.Date(2024, 2, 15, 9, 30, 0, 0, time.UTC)

	p := ReconstructPerson(id, "João", "M", "joao@example.com", birth, "Recife", "Brasileiro", "11144477735", created, &updated)

	assert.Equal(t, id, p.ID())
	assert.Equal(t, created, p.CreatedAt())
	require.NotNil(t, p.UpdatedAt())
	assert.Equal(t, updated, *p.UpdatedAt())
}
