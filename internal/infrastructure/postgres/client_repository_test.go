package postgres_test

import (
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siges-soporte/siges-api/internal/domain"
	"github.com/siges-soporte/siges-api/internal/domain/entity"
	"github.com/siges-soporte/siges-api/internal/infrastructure/postgres"
)

func newClientRepo(t *testing.T) (pgxmock.PgxPoolIface, *postgres.ClientRepo) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock, postgres.NewClientRepository(mock)
}

func clientRows() *pgxmock.Rows {
	return pgxmock.NewRows([]string{"id", "email", "info", "vip", "vipmail", "testing"})
}

// ──────────────────────────────────────────────────────────────────────────────
// Lecturas
// ──────────────────────────────────────────────────────────────────────────────

func TestClientRepo_GetByID_EscaneaEmailComoArray(t *testing.T) {
	mock, repo := newClientRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM clients WHERE id").
		WithArgs("AB1234").
		WillReturnRows(clientRows().
			AddRow("AB1234", []string{"global@empresa.cl", "alterno@empresa.cl"}, "Empresa Uno", "si", "vip@empresa.cl", false))

	client, err := repo.GetByID("AB1234")
	require.NoError(t, err)
	require.NotNil(t, client)
	assert.Equal(t, "AB1234", client.ID)
	assert.Equal(t, []string{"global@empresa.cl", "alterno@empresa.cl"}, client.Emails)
	assert.Equal(t, "global@empresa.cl", client.GlobalEmail())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClientRepo_GetByID_SinFila_RetornaNilNil(t *testing.T) {
	mock, repo := newClientRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM clients WHERE id").
		WithArgs("ZZ0000").
		WillReturnRows(clientRows())

	client, err := repo.GetByID("ZZ0000")
	assert.NoError(t, err)
	assert.Nil(t, client, "cliente ausente no es un error")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClientRepo_FindByInfoAndEmail_MatcheaCualquierDireccion(t *testing.T) {
	mock, repo := newClientRepo(t)

	mock.ExpectQuery(`WHERE info = \$1 AND \$2 = ANY\(email\)`).
		WithArgs("Empresa Uno", "alterno@empresa.cl").
		WillReturnRows(clientRows().
			AddRow("AB1234", []string{"global@empresa.cl", "alterno@empresa.cl"}, "Empresa Uno", "", "", false))

	client, err := repo.FindByInfoAndEmail("Empresa Uno", "alterno@empresa.cl")
	require.NoError(t, err)
	require.NotNil(t, client)
	assert.Equal(t, "AB1234", client.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClientRepo_MissingIDs_ReportaSoloAusentes(t *testing.T) {
	mock, repo := newClientRepo(t)

	mock.ExpectQuery(`unnest\(\$1::text\[\]\)`).
		WithArgs([]string{"AB1234", "XX0000", "YY9999"}).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).
			AddRow("XX0000").
			AddRow("YY9999"))

	missing, err := repo.MissingIDs([]string{"AB1234", "XX0000", "YY9999"})
	require.NoError(t, err)
	assert.Equal(t, []string{"XX0000", "YY9999"}, missing)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClientRepo_MissingIDs_LoteVacio_NoConsulta(t *testing.T) {
	mock, repo := newClientRepo(t)

	missing, err := repo.MissingIDs(nil)
	assert.NoError(t, err)
	assert.Empty(t, missing)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ──────────────────────────────────────────────────────────────────────────────
// Escrituras
// ──────────────────────────────────────────────────────────────────────────────

func TestClientRepo_Create_IdDuplicado_RetornaConflict(t *testing.T) {
	mock, repo := newClientRepo(t)

	mock.ExpectExec("INSERT INTO clients").
		WithArgs("AB1234", []string{"global@empresa.cl"}, "Empresa Uno", "", "", false).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	err := repo.Create(&entity.Client{
		ID:     "AB1234",
		Emails: []string{"global@empresa.cl"},
		Info:   "Empresa Uno",
	})
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClientRepo_Update_SinFilas_RetornaNotFound(t *testing.T) {
	mock, repo := newClientRepo(t)

	mock.ExpectExec("UPDATE clients").
		WithArgs("ZZ0000", []string{"x@y.cl"}, "Nadie", "", "", false).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.Update(&entity.Client{ID: "ZZ0000", Emails: []string{"x@y.cl"}, Info: "Nadie"})
	assert.ErrorIs(t, err, domain.ErrClientNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
