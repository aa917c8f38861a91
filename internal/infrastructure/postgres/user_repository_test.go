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

func newUserRepo(t *testing.T) (pgxmock.PgxPoolIface, *postgres.UserRepo) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock, postgres.NewUserRepository(mock)
}

func strptr(s string) *string { return &s }

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestUserRepo_Create_CompletaIDGenerado(t *testing.T) {
	mock, repo := newUserRepo(t)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs("Juan", "Empresa", "juan@empresa.cl", "$2a$10$hash", entity.RoleCliente,
			entity.StatusPending, false, false, (*string)(nil)).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(7)))

	user := &entity.User{
		FirstName:    "Juan",
		RazonSocial:  "Empresa",
		Email:        "juan@empresa.cl",
		PasswordHash: "$2a$10$hash",
		Role:         entity.RoleCliente,
		Status:       entity.StatusPending,
	}
	require.NoError(t, repo.Create(user))
	assert.Equal(t, int64(7), user.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_Create_EmailDuplicado(t *testing.T) {
	mock, repo := newUserRepo(t)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs("Juan", "", "juan@empresa.cl", "h", entity.RoleCliente, 0, false, false, (*string)(nil)).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	err := repo.Create(&entity.User{
		FirstName: "Juan", Email: "juan@empresa.cl", PasswordHash: "h", Role: entity.RoleCliente,
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_Create_ClienteInexistente(t *testing.T) {
	mock, repo := newUserRepo(t)

	clientID := "ZZ0000"
	mock.ExpectQuery("INSERT INTO users").
		WithArgs("Juan", "", "juan@empresa.cl", "h", entity.RoleCliente, 0, false, false, &clientID).
		WillReturnError(&pgconn.PgError{Code: "23503"})

	err := repo.Create(&entity.User{
		FirstName: "Juan", Email: "juan@empresa.cl", PasswordHash: "h",
		Role: entity.RoleCliente, ClientID: &clientID,
	})
	assert.ErrorIs(t, err, domain.ErrClientNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ──────────────────────────────────────────────────────────────────────────────
// Lecturas con clientInfo
// ──────────────────────────────────────────────────────────────────────────────

func userWithClientRows() *pgxmock.Rows {
	return pgxmock.NewRows([]string{
		"id", "first_name", "razon_social", "email", "password_hash", "role",
		"status", "owner", "onboarding_completed", "client_id",
		"c_id", "c_email", "c_info", "c_vip", "c_vipmail", "c_testing",
	})
}

func TestUserRepo_GetByIDWithClient_ArmaClientInfo(t *testing.T) {
	mock, repo := newUserRepo(t)

	testing_ := true
	mock.ExpectQuery("LEFT JOIN clients c ON c.id = u.client_id").
		WithArgs(int64(7)).
		WillReturnRows(userWithClientRows().
			AddRow(int64(7), "Juan", "Empresa", "juan@empresa.cl", "h", entity.RoleCliente,
				1, false, true, strptr("AB1234"),
				strptr("AB1234"), []string{"global@empresa.cl"}, strptr("Empresa Uno"),
				strptr(""), strptr(""), &testing_))

	user, err := repo.GetByIDWithClient(7)
	require.NoError(t, err)
	require.NotNil(t, user)
	require.NotNil(t, user.ClientInfo)
	assert.Equal(t, "AB1234", user.ClientInfo.ID)
	assert.Equal(t, "Empresa Uno", user.ClientInfo.Info)
	assert.True(t, user.ClientInfo.Testing)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_GetByIDWithClient_SinClienteAsociado(t *testing.T) {
	mock, repo := newUserRepo(t)

	mock.ExpectQuery("LEFT JOIN clients c ON c.id = u.client_id").
		WithArgs(int64(7)).
		WillReturnRows(userWithClientRows().
			AddRow(int64(7), "Juan", "", "juan@empresa.cl", "h", entity.RoleAdmin,
				1, false, false, (*string)(nil),
				(*string)(nil), []string(nil), (*string)(nil), (*string)(nil), (*string)(nil), (*bool)(nil)))

	user, err := repo.GetByIDWithClient(7)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Nil(t, user.ClientInfo, "usuario sin cliente no debe traer clientInfo")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_GetByEmail_SinFila_RetornaNilNil(t *testing.T) {
	mock, repo := newUserRepo(t)

	mock.ExpectQuery("FROM users WHERE email").
		WithArgs("nadie@empresa.cl").
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "first_name", "razon_social", "email", "password_hash",
			"role", "status", "owner", "onboarding_completed", "client_id",
		}))

	user, err := repo.GetByEmail("nadie@empresa.cl")
	assert.NoError(t, err)
	assert.Nil(t, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ──────────────────────────────────────────────────────────────────────────────
// Escrituras
// ──────────────────────────────────────────────────────────────────────────────

func TestUserRepo_SetStatus_SinFilas_RetornaNotFound(t *testing.T) {
	mock, repo := newUserRepo(t)

	mock.ExpectExec("UPDATE users SET status").
		WithArgs(int64(99), entity.StatusEnabled).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.SetStatus(99, entity.StatusEnabled)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_Delete(t *testing.T) {
	mock, repo := newUserRepo(t)

	mock.ExpectExec("DELETE FROM users").
		WithArgs(int64(7)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	assert.NoError(t, repo.Delete(7))
	assert.NoError(t, mock.ExpectationsWereMet())
}
