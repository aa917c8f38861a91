package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/siges-soporte/siges-api/internal/interfaces/http"
	pkgjwt "github.com/siges-soporte/siges-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testStaticKey = "bot-static-api-key"
	testIssuer    = "siges-api-test"
	testExpMin    = 60
)

// buildTestApp construye una aplicación Fiber mínima con VerifyRequest y un
// handler dummy que expone los locals cargados desde el token.
func buildTestApp(staticKey string) *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.VerifyRequest(staticKey, testJWTSecret),
		func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{
				"user_id":   apphttp.GetUserID(c),
				"role":      apphttp.GetRole(c),
				"email":     apphttp.GetEmail(c),
				"client_id": apphttp.GetClientID(c),
			})
		},
	)
	return app
}

func sessionToken(t *testing.T, role string) string {
	t.Helper()
	tok, err := pkgjwt.GenerateSession(testJWTSecret, 42, role, "user@siges.cl", "AB1234", testIssuer, testExpMin)
	require.NoError(t, err)
	return tok
}

func doRequest(t *testing.T, app *fiber.App, headers map[string]string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests VerifyRequest — api key estática
// ──────────────────────────────────────────────────────────────────────────────

func TestVerifyRequest_ApiKeyCorrecta_Pasa(t *testing.T) {
	app := buildTestApp(testStaticKey)
	resp := doRequest(t, app, map[string]string{"x-api-key": testStaticKey})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"la api key estática debe autenticar sin token")
}

func TestVerifyRequest_ApiKeyIncorrecta_Retorna403(t *testing.T) {
	app := buildTestApp(testStaticKey)
	resp := doRequest(t, app, map[string]string{"x-api-key": "clave-equivocada"})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_API_KEY")
}

func TestVerifyRequest_ApiKeySinConfigurar_Retorna500(t *testing.T) {
	// El backend no tiene clave configurada pero el caller manda una.
	app := buildTestApp("")
	resp := doRequest(t, app, map[string]string{"x-api-key": "cualquiera"})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "API_KEY_UNSET")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests VerifyRequest — token de sesión
// ──────────────────────────────────────────────────────────────────────────────

func TestVerifyRequest_TokenCrudo_CargaLocals(t *testing.T) {
	app := buildTestApp(testStaticKey)
	// Sin prefijo Bearer: los callers legados mandan el token pelado.
	resp := doRequest(t, app, map[string]string{"Authorization": sessionToken(t, "Admin")})
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, float64(42), body["user_id"])
	assert.Equal(t, "Admin", body["role"])
	assert.Equal(t, "user@siges.cl", body["email"])
	assert.Equal(t, "AB1234", body["client_id"])
}

func TestVerifyRequest_PrefijoBearer_TambienPasa(t *testing.T) {
	app := buildTestApp(testStaticKey)
	resp := doRequest(t, app, map[string]string{"Authorization": "Bearer " + sessionToken(t, "Cliente")})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestVerifyRequest_SinHeader_Retorna401(t *testing.T) {
	app := buildTestApp(testStaticKey)
	resp := doRequest(t, app, nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_TOKEN")
}

func TestVerifyRequest_TokenInvalido_Retorna500(t *testing.T) {
	app := buildTestApp(testStaticKey)
	resp := doRequest(t, app, map[string]string{"Authorization": "token.invalido.aqui"})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_TOKEN")
}

func TestVerifyRequest_TokenDeReset_NoEsSesion(t *testing.T) {
	app := buildTestApp(testStaticKey)
	reset, err := pkgjwt.GenerateReset(testJWTSecret, 42, testIssuer, 60)
	require.NoError(t, err)

	resp := doRequest(t, app, map[string]string{"Authorization": reset})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode,
		"un token de recuperación no debe autenticar requests")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireRole
// ──────────────────────────────────────────────────────────────────────────────

func buildRoleApp(allowed ...string) *fiber.App {
	app := fiber.New()
	app.Get("/admin-only",
		apphttp.VerifyRequest(testStaticKey, testJWTSecret),
		apphttp.RequireRole(allowed...),
		func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) },
	)
	return app
}

func TestRequireRole_AdminPasa(t *testing.T) {
	app := buildRoleApp("Admin")
	req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	req.Header.Set("Authorization", sessionToken(t, "Admin"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireRole_ClienteBloqueado(t *testing.T) {
	app := buildRoleApp("Admin")
	req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	req.Header.Set("Authorization", sessionToken(t, "Cliente"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestRequireRole_ApiKeySinRol_Bloqueada(t *testing.T) {
	// La api key autentica pero no trae rol: las rutas con RBAC la rechazan.
	app := buildRoleApp("Admin")
	req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	req.Header.Set("x-api-key", testStaticKey)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}
