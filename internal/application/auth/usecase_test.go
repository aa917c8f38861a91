package auth_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/siges-soporte/siges-api/internal/application/auth"
	"github.com/siges-soporte/siges-api/internal/application/dto"
	"github.com/siges-soporte/siges-api/internal/application/ports"
	"github.com/siges-soporte/siges-api/internal/domain"
	"github.com/siges-soporte/siges-api/internal/domain/entity"
	pkgjwt "github.com/siges-soporte/siges-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes locales: solo lo que auth toca de los repos.
// ──────────────────────────────────────────────────────────────────────────────

type memUserRepo struct {
	nextID int64
	users  map[int64]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[int64]*entity.User{}}
}

func (r *memUserRepo) Create(u *entity.User) error {
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	r.nextID++
	u.ID = r.nextID
	clone := *u
	r.users[u.ID] = &clone
	return nil
}

func (r *memUserRepo) GetByID(id int64) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	clone := *u
	return &clone, nil
}

func (r *memUserRepo) GetByIDWithClient(id int64) (*entity.User, error) {
	return r.GetByID(id)
}

func (r *memUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) List() ([]*entity.User, error) { return nil, nil }

func (r *memUserRepo) Update(u *entity.User) error {
	if _, ok := r.users[u.ID]; !ok {
		return domain.ErrUserNotFound
	}
	clone := *u
	r.users[u.ID] = &clone
	return nil
}

func (r *memUserRepo) UpdatePassword(id int64, hash string) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.PasswordHash = hash
	return nil
}

func (r *memUserRepo) SetStatus(id int64, status int) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Status = status
	return nil
}

func (r *memUserRepo) Delete(id int64) error {
	delete(r.users, id)
	return nil
}

type memClientRepo struct {
	clients map[string]*entity.Client
}

func (r *memClientRepo) Create(c *entity.Client) error            { return nil }
func (r *memClientRepo) GetByID(id string) (*entity.Client, error) {
	return r.clients[id], nil
}
func (r *memClientRepo) List() ([]*entity.Client, error)  { return nil, nil }
func (r *memClientRepo) Update(c *entity.Client) error    { return nil }
func (r *memClientRepo) FindByInfoAndEmail(info, email string) (*entity.Client, error) {
	return nil, nil
}
func (r *memClientRepo) MissingIDs(ids []string) ([]string, error) { return nil, nil }

type memMailer struct {
	sent []ports.Mail
	fail bool
}

func (m *memMailer) Send(mail ports.Mail) error {
	if m.fail {
		return &ports.SendError{Reason: ports.ReasonSend, Err: errors.New("smtp rechazado")}
	}
	m.sent = append(m.sent, mail)
	return nil
}

const (
	testSecret   = "test-secret-key-for-unit-tests"
	testIssuer   = "siges-api-test"
	frontendBase = "https://portal.siges.cl"
)

func newAuthUC(mailer *memMailer, clients map[string]*entity.Client) (*auth.AuthUseCase, *memUserRepo) {
	users := newMemUserRepo()
	uc := auth.NewAuthUseCase(users, &memClientRepo{clients: clients}, mailer, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     testIssuer,
	}, []string{"admin@siges.cl"}, frontendBase)
	return uc, users
}

func register(t *testing.T, uc *auth.AuthUseCase, email string) dto.RegisterResponse {
	t.Helper()
	resp, err := uc.Register(dto.RegisterRequest{
		FirstName:   "Juan",
		RazonSocial: "Empresa",
		Email:       email,
		Password:    "secreta1",
	})
	require.NoError(t, err)
	return *resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Registro
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_NaceDeshabilitadoYNotifica(t *testing.T) {
	mailer := &memMailer{}
	uc, _ := newAuthUC(mailer, nil)

	resp := register(t, uc, "juan@empresa.cl")

	assert.Equal(t, entity.StatusPending, resp.User.Status,
		"toda cuenta registrada nace pendiente de habilitación")
	assert.Empty(t, resp.Warnings)
	require.Len(t, mailer.sent, 2, "bienvenida + aviso a administradores")
	assert.Equal(t, []string{"juan@empresa.cl"}, mailer.sent[0].To)
	assert.Equal(t, []string{"admin@siges.cl"}, mailer.sent[1].To)
}

func TestRegister_CorreoFallido_DegradaAWarnings(t *testing.T) {
	uc, users := newAuthUC(&memMailer{fail: true}, nil)

	resp := register(t, uc, "juan@empresa.cl")

	assert.Len(t, resp.Warnings, 2, "ambos correos fallidos deben reportarse")
	created, _ := users.GetByEmail("juan@empresa.cl")
	assert.NotNil(t, created, "el fallo de correo nunca voltea el alta")
}

func TestRegister_EmailDuplicado_Retorna409(t *testing.T) {
	uc, _ := newAuthUC(&memMailer{}, nil)
	register(t, uc, "juan@empresa.cl")

	_, err := uc.Register(dto.RegisterRequest{
		FirstName: "Otro",
		Email:     "juan@empresa.cl",
		Password:  "secreta1",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_PendienteDeHabilitacion_Retorna403(t *testing.T) {
	uc, _ := newAuthUC(&memMailer{}, nil)
	register(t, uc, "juan@empresa.cl")

	_, err := uc.Login(dto.LoginRequest{Email: "juan@empresa.cl", Password: "secreta1"})
	assert.ErrorIs(t, err, domain.ErrUserDisabled)
}

func TestLogin_CredencialesMalas_Retorna401(t *testing.T) {
	uc, _ := newAuthUC(&memMailer{}, nil)
	register(t, uc, "juan@empresa.cl")

	_, err := uc.Login(dto.LoginRequest{Email: "juan@empresa.cl", Password: "equivocada"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(dto.LoginRequest{Email: "nadie@empresa.cl", Password: "secreta1"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized,
		"email inexistente y contraseña mala deben ser indistinguibles")
}

func TestLogin_Habilitado_EmiteTokenConClaims(t *testing.T) {
	clientID := "AB1234"
	uc, users := newAuthUC(&memMailer{}, map[string]*entity.Client{
		clientID: {ID: clientID, Emails: []string{"global@cliente.cl"}},
	})
	created := register(t, uc, "juan@empresa.cl")

	_, err := uc.Enable(created.User.ID)
	require.NoError(t, err)
	u := users.users[created.User.ID]
	u.ClientID = &clientID

	resp, err := uc.Login(dto.LoginRequest{Email: "juan@empresa.cl", Password: "secreta1"})
	require.NoError(t, err)

	claims, err := pkgjwt.ParseSession(testSecret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, created.User.ID, claims.UserID)
	assert.Equal(t, entity.RoleCliente, claims.Role)
	assert.Equal(t, "juan@empresa.cl", claims.Email)
	assert.Equal(t, clientID, claims.ClientID)

	require.NotNil(t, resp.User.ClientEmail)
	assert.Equal(t, "global@cliente.cl", *resp.User.ClientEmail)
}

func TestEnable_EsIdempotente(t *testing.T) {
	uc, _ := newAuthUC(&memMailer{}, nil)
	created := register(t, uc, "juan@empresa.cl")

	first, err := uc.Enable(created.User.ID)
	require.NoError(t, err)
	second, err := uc.Enable(created.User.ID)
	require.NoError(t, err)

	assert.Equal(t, entity.StatusEnabled, first.Status)
	assert.Equal(t, entity.StatusEnabled, second.Status)
}

// ──────────────────────────────────────────────────────────────────────────────
// Recuperación de contraseña
// ──────────────────────────────────────────────────────────────────────────────

func TestForgotPassword_EnviaLinkConToken(t *testing.T) {
	mailer := &memMailer{}
	uc, _ := newAuthUC(mailer, nil)
	register(t, uc, "juan@empresa.cl")

	resp, err := uc.ForgotPassword(dto.ForgotPasswordRequest{Email: "juan@empresa.cl"})
	require.NoError(t, err)

	assert.Empty(t, resp.Warnings)
	require.Len(t, mailer.sent, 3) // 2 de registro + recuperación
	assert.Contains(t, mailer.sent[2].HTML, frontendBase+"/?resetToken=")
	assert.Contains(t, mailer.sent[2].HTML, "#inicio")
}

func TestForgotPassword_EmailDesconocido_Retorna404(t *testing.T) {
	uc, _ := newAuthUC(&memMailer{}, nil)

	_, err := uc.ForgotPassword(dto.ForgotPasswordRequest{Email: "nadie@empresa.cl"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestForgotPassword_CorreoFallido_RespondeConWarning(t *testing.T) {
	mailer := &memMailer{}
	uc, _ := newAuthUC(mailer, nil)
	register(t, uc, "juan@empresa.cl")

	mailer.fail = true
	resp, err := uc.ForgotPassword(dto.ForgotPasswordRequest{Email: "juan@empresa.cl"})
	require.NoError(t, err, "el token ya fue emitido; el fallo no cancela la operación")
	assert.NotEmpty(t, resp.Warnings)
}

func TestResetPassword_FlujoCompleto(t *testing.T) {
	mailer := &memMailer{}
	uc, users := newAuthUC(mailer, nil)
	created := register(t, uc, "juan@empresa.cl")
	_, err := uc.Enable(created.User.ID)
	require.NoError(t, err)

	_, err = uc.ForgotPassword(dto.ForgotPasswordRequest{Email: "juan@empresa.cl"})
	require.NoError(t, err)

	// El link del correo lleva el token entre resetToken= y #inicio.
	html := mailer.sent[len(mailer.sent)-1].HTML
	start := strings.Index(html, "resetToken=") + len("resetToken=")
	end := strings.Index(html[start:], "#inicio")
	require.Positive(t, end)
	token := html[start : start+end]

	require.NoError(t, uc.ResetPassword(dto.ResetPasswordRequest{
		Token:       token,
		NewPassword: "renovada1",
	}))

	u := users.users[created.User.ID]
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("renovada1")))

	_, err = uc.Login(dto.LoginRequest{Email: "juan@empresa.cl", Password: "renovada1"})
	assert.NoError(t, err)
}

func TestResetPassword_TokenDeSesion_Rechazado(t *testing.T) {
	uc, _ := newAuthUC(&memMailer{}, nil)
	created := register(t, uc, "juan@empresa.cl")

	session, err := pkgjwt.GenerateSession(testSecret, created.User.ID, entity.RoleCliente, "juan@empresa.cl", "", testIssuer, 60)
	require.NoError(t, err)

	err = uc.ResetPassword(dto.ResetPasswordRequest{Token: session, NewPassword: "renovada1"})
	assert.ErrorIs(t, err, domain.ErrInvalidToken,
		"un token de sesión no debe servir para resetear la contraseña")
}

func TestResetPassword_Corta_Retorna400(t *testing.T) {
	uc, _ := newAuthUC(&memMailer{}, nil)

	err := uc.ResetPassword(dto.ResetPasswordRequest{Token: "x", NewPassword: "abc"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
