package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siges-soporte/siges-api/internal/application/dto"
	"github.com/siges-soporte/siges-api/internal/application/usecase"
	"github.com/siges-soporte/siges-api/internal/domain"
	"github.com/siges-soporte/siges-api/internal/domain/entity"
)

func newBotuserUC() (*usecase.BotuserUseCase, *fakeBotuserRepo, *fakeClientRepo) {
	clients := newFakeClientRepo(
		&entity.Client{ID: "AB1234", Info: "Cliente Uno", Emails: []string{"uno@cliente.cl"}},
		&entity.Client{ID: "CD5678", Info: "Cliente Dos", Emails: []string{"dos@cliente.cl"}},
		&entity.Client{ID: "EF9012", Info: "Cliente Tres"},
	)
	repo := newFakeBotuserRepo(clients)
	return usecase.NewBotuserUseCase(repo, clients), repo, clients
}

func clientIDsOf(resp *dto.BotuserResponse) []string {
	ids := make([]string, 0, len(resp.Clients))
	for _, c := range resp.Clients {
		ids = append(ids, c.ID)
	}
	return ids
}

func TestUpsert_TelefonoNuevo_CreaConEsasAsociaciones(t *testing.T) {
	uc, _, _ := newBotuserUC()

	resp, created, err := uc.Upsert(dto.UpsertBotuserRequest{
		Name:      "Juan",
		Phone:     "+56911111111",
		Area:      "P",
		ClientIDs: []string{"AB1234", "CD5678"},
	})
	require.NoError(t, err)

	assert.True(t, created, "teléfono nuevo debe reportarse como creado")
	assert.Equal(t, "Juan", resp.Name)
	assert.ElementsMatch(t, []string{"AB1234", "CD5678"}, clientIDsOf(resp))
}

func TestUpsert_TelefonoExistente_ActualizaYSumaAsociaciones(t *testing.T) {
	uc, _, _ := newBotuserUC()

	_, _, err := uc.Upsert(dto.UpsertBotuserRequest{
		Name:      "Juan",
		Phone:     "+56911111111",
		ClientIDs: []string{"AB1234"},
	})
	require.NoError(t, err)

	// Mismo teléfono con otro cliente: los campos se refrescan y la
	// asociación previa se conserva.
	resp, created, err := uc.Upsert(dto.UpsertBotuserRequest{
		Name:      "Juan Pérez",
		Phone:     "+56911111111",
		CanSOS:    true,
		ClientIDs: []string{"CD5678"},
	})
	require.NoError(t, err)

	assert.False(t, created, "teléfono existente debe reportarse como actualizado")
	assert.Equal(t, "Juan Pérez", resp.Name)
	assert.True(t, resp.CanSOS)
	assert.ElementsMatch(t, []string{"AB1234", "CD5678"}, clientIDsOf(resp),
		"el upsert suma asociaciones, nunca quita")
}

func TestUpsert_ClientesInexistentes_CortaSinMutar(t *testing.T) {
	uc, repo, _ := newBotuserUC()

	_, _, err := uc.Upsert(dto.UpsertBotuserRequest{
		Phone:     "+56922222222",
		ClientIDs: []string{"AB1234", "XX0000", "YY9999"},
	})

	var missing *domain.MissingClientsError
	require.ErrorAs(t, err, &missing)
	assert.ElementsMatch(t, []string{"XX0000", "YY9999"}, missing.IDs,
		"debe listar exactamente los ids que no resolvieron")
	assert.Empty(t, repo.botusers, "el lote se valida completo antes de mutar")
}

func TestUpsert_AreaInvalida_RetornaErrInvalidInput(t *testing.T) {
	uc, _, _ := newBotuserUC()

	_, _, err := uc.Upsert(dto.UpsertBotuserRequest{
		Phone:     "+56933333333",
		Area:      "Z",
		ClientIDs: []string{"AB1234"},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdate_ClientIDs_ReemplazaElConjunto(t *testing.T) {
	uc, _, _ := newBotuserUC()

	created, _, err := uc.Upsert(dto.UpsertBotuserRequest{
		Phone:     "+56944444444",
		ClientIDs: []string{"AB1234", "CD5678"},
	})
	require.NoError(t, err)

	resp, err := uc.Update(created.ID, dto.UpdateBotuserRequest{
		ClientIDs: []string{"EF9012"},
	})
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"EF9012"}, clientIDsOf(resp),
		"el PUT reemplaza el conjunto completo de asociaciones")
}

func TestUpdate_SinClientIDs_ConservaAsociaciones(t *testing.T) {
	uc, _, _ := newBotuserUC()

	created, _, err := uc.Upsert(dto.UpsertBotuserRequest{
		Phone:     "+56955555555",
		ClientIDs: []string{"AB1234"},
	})
	require.NoError(t, err)

	name := "Otro Nombre"
	resp, err := uc.Update(created.ID, dto.UpdateBotuserRequest{Name: &name})
	require.NoError(t, err)

	assert.Equal(t, "Otro Nombre", resp.Name)
	assert.ElementsMatch(t, []string{"AB1234"}, clientIDsOf(resp))
}

func TestUpdate_ClienteInexistente_RetornaMissingClients(t *testing.T) {
	uc, _, _ := newBotuserUC()

	created, _, err := uc.Upsert(dto.UpsertBotuserRequest{
		Phone:     "+56966666666",
		ClientIDs: []string{"AB1234"},
	})
	require.NoError(t, err)

	_, err = uc.Update(created.ID, dto.UpdateBotuserRequest{ClientIDs: []string{"ZZ0000"}})
	var missing *domain.MissingClientsError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, []string{"ZZ0000"}, missing.IDs)
}

func TestListByClient_ClienteDesconocido_Retorna404(t *testing.T) {
	uc, _, _ := newBotuserUC()

	_, err := uc.ListByClient("NO0000")
	assert.ErrorIs(t, err, domain.ErrClientNotFound)
}
