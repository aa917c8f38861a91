package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Propósitos de token. Los tokens de sesión y de reset comparten firma pero no
// son intercambiables: Parse* verifica el propósito además de la firma/expiry.
const (
	PurposeSession = "session"
	PurposeReset   = "password_reset"
)

// Claims incluye los claims estándar JWT más los campos propios de la
// aplicación: identidad del usuario, rol para RBAC y cliente asociado.
type Claims struct {
	jwt.RegisteredClaims
	UserID   int64  `json:"user_id"`
	Role     string `json:"role,omitempty"` // "Admin" | "Cliente"
	Email    string `json:"email,omitempty"`
	ClientID string `json:"client_id,omitempty"`
	Purpose  string `json:"purpose"`
}

// GenerateSession genera el token de sesión firmado (HS256) con identidad y rol.
func GenerateSession(secret string, userID int64, role, email, clientID, issuer string, expMinutes int) (string, error) {
	return generate(secret, Claims{
		UserID:   userID,
		Role:     role,
		Email:    email,
		ClientID: clientID,
		Purpose:  PurposeSession,
	}, issuer, expMinutes)
}

// GenerateReset genera un token de recuperación de contraseña. Lleva un jti
// aleatorio y propósito propio para que nunca sirva como token de sesión.
func GenerateReset(secret string, userID int64, issuer string, expMinutes int) (string, error) {
	c := Claims{
		UserID:  userID,
		Purpose: PurposeReset,
	}
	c.ID = uuid.NewString()
	return generate(secret, c, issuer, expMinutes)
}

func generate(secret string, claims Claims, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims.Issuer = issuer
	claims.Subject = fmt.Sprintf("%d", claims.UserID)
	claims.IssuedAt = jwt.NewNumericDate(now)
	claims.ExpiresAt = jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute))
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida firma y expiración y devuelve los claims.
// Retorna error si el token es inválido, expirado o tiene firma incorrecta.
func Parse(secret, tokenString string) (*Claims, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("claims inválidos")
	}
	return claims, nil
}

// ParseSession valida el token y exige propósito de sesión.
func ParseSession(secret, tokenString string) (*Claims, error) {
	return parseWithPurpose(secret, tokenString, PurposeSession)
}

// ParseReset valida el token y exige propósito de recuperación.
func ParseReset(secret, tokenString string) (*Claims, error) {
	return parseWithPurpose(secret, tokenString, PurposeReset)
}

func parseWithPurpose(secret, tokenString, purpose string) (*Claims, error) {
	claims, err := Parse(secret, tokenString)
	if err != nil {
		return nil, err
	}
	if claims.Purpose != purpose {
		return nil, fmt.Errorf("propósito de token inesperado: %q", claims.Purpose)
	}
	return claims, nil
}
