package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/siges-soporte/siges-api/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testIssuer = "siges-api-test"
	testExpMin = 60
)

func TestGenerateSession_RoundTrip(t *testing.T) {
	tok, err := pkgjwt.GenerateSession(testSecret, 42, "Admin", "admin@siges.cl", "AB1234", testIssuer, testExpMin)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := pkgjwt.ParseSession(testSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "Admin", claims.Role)
	assert.Equal(t, "admin@siges.cl", claims.Email)
	assert.Equal(t, "AB1234", claims.ClientID)
	assert.Equal(t, testIssuer, claims.Issuer)
}

func TestGenerateSession_SecretVacio_RetornaError(t *testing.T) {
	_, err := pkgjwt.GenerateSession("", 1, "Cliente", "a@b.cl", "", testIssuer, testExpMin)
	assert.Error(t, err)
}

func TestParseSession_TokenExpirado_RetornaError(t *testing.T) {
	// Expiración -1 minuto: ya vencido al parsear.
	tok, err := pkgjwt.GenerateSession(testSecret, 1, "Cliente", "a@b.cl", "", testIssuer, -1)
	require.NoError(t, err)

	_, err = pkgjwt.ParseSession(testSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestParseSession_SecretIncorrecto_RetornaError(t *testing.T) {
	tok, err := pkgjwt.GenerateSession(testSecret, 1, "Cliente", "a@b.cl", "", testIssuer, testExpMin)
	require.NoError(t, err)

	_, err = pkgjwt.ParseSession("otro-secret-completamente-distinto", tok)
	assert.Error(t, err, "secret incorrecto debe invalidar el token")
}

// Un token de reset jamás debe servir como token de sesión, y viceversa:
// comparten firma pero el claim de propósito los separa.
func TestPurpose_ResetNoSirveComoSesion(t *testing.T) {
	reset, err := pkgjwt.GenerateReset(testSecret, 7, testIssuer, 60)
	require.NoError(t, err)

	_, err = pkgjwt.ParseSession(testSecret, reset)
	assert.Error(t, err, "token de reset no debe validar como sesión")

	claims, err := pkgjwt.ParseReset(testSecret, reset)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.NotEmpty(t, claims.ID, "el token de reset debe llevar jti aleatorio")
}

func TestPurpose_SesionNoSirveComoReset(t *testing.T) {
	session, err := pkgjwt.GenerateSession(testSecret, 7, "Admin", "a@b.cl", "", testIssuer, testExpMin)
	require.NoError(t, err)

	_, err = pkgjwt.ParseReset(testSecret, session)
	assert.Error(t, err, "token de sesión no debe validar como reset")
}
