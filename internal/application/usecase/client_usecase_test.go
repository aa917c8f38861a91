package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siges-soporte/siges-api/internal/application/dto"
	"github.com/siges-soporte/siges-api/internal/application/usecase"
	"github.com/siges-soporte/siges-api/internal/domain"
	"github.com/siges-soporte/siges-api/internal/domain/entity"
	"github.com/siges-soporte/siges-api/pkg/codegen"
)

func TestClientCreate_IDExplicitoLibre(t *testing.T) {
	uc := usecase.NewClientUseCase(newFakeClientRepo())

	resp, err := uc.Create(dto.CreateClientRequest{
		ID:    "AB1234",
		Info:  "Empresa",
		Email: []string{"contacto@empresa.cl"},
	})
	require.NoError(t, err)

	assert.Equal(t, "AB1234", resp.ID)
	assert.Equal(t, []string{"contacto@empresa.cl"}, resp.Email)
}

func TestClientCreate_IDTomado_Retorna409(t *testing.T) {
	repo := newFakeClientRepo(&entity.Client{ID: "AB1234"})
	uc := usecase.NewClientUseCase(repo)

	_, err := uc.Create(dto.CreateClientRequest{ID: "AB1234"})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestClientCreate_SinID_GeneraCodigoValido(t *testing.T) {
	uc := usecase.NewClientUseCase(newFakeClientRepo())

	resp, err := uc.Create(dto.CreateClientRequest{Info: "Empresa"})
	require.NoError(t, err)

	assert.True(t, codegen.Valid(resp.ID), "el código generado debe tener formato LLDDDD: %q", resp.ID)
}

func TestClientCreate_EspacioAgotado_RetornaErrCodeExhausted(t *testing.T) {
	// Todos los códigos consultados ya existen: el loop acotado se rinde.
	uc := usecase.NewClientUseCase(&takenClientRepo{})

	_, err := uc.Create(dto.CreateClientRequest{Info: "Empresa"})
	assert.ErrorIs(t, err, domain.ErrCodeExhausted)
}

func TestClientGetEmail_PrimeraDireccion(t *testing.T) {
	repo := newFakeClientRepo(&entity.Client{
		ID:     "AB1234",
		Emails: []string{"global@empresa.cl", "secundario@empresa.cl"},
	})
	uc := usecase.NewClientUseCase(repo)

	resp, err := uc.GetEmail("AB1234")
	require.NoError(t, err)
	assert.Equal(t, "global@empresa.cl", resp.Email)
}

func TestClientGetEmail_SinDirecciones_Retorna404(t *testing.T) {
	repo := newFakeClientRepo(&entity.Client{ID: "AB1234"})
	uc := usecase.NewClientUseCase(repo)

	_, err := uc.GetEmail("AB1234")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
