package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/siges-soporte/siges-api/internal/application/dto"
	"github.com/siges-soporte/siges-api/pkg/jwt"
)

// Locals keys que deja el middleware de auth.
const (
	LocalUserID   = "user_id"
	LocalRole     = "role"
	LocalEmail    = "email"
	LocalClientID = "client_id"
)

// VerifyRequest autentica la request. Acepta dos mecanismos:
//
// x-api-key con la clave estática pasa directo (callers de servicio, el bot).
// Una clave presente pero incorrecta es 403; si llega clave pero el backend no
// tiene ninguna configurada es 500.
//
// Si no hay api key, el header Authorization se toma como el token JWT crudo;
// el prefijo "Bearer " es opcional (se tolera por los callers legados). Sin
// header es 401; un token que no verifica es 500.
func VerifyRequest(staticKey, jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if apiKey := c.Get("x-api-key"); apiKey != "" {
			if staticKey == "" {
				return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "API_KEY_UNSET", Message: "api key no configurada en el backend"})
			}
			if apiKey != staticKey {
				return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "INVALID_API_KEY", Message: "api key inválida"})
			}
			return c.Next()
		}

		tokenString := strings.TrimSpace(c.Get("Authorization"))
		if after, ok := strings.CutPrefix(tokenString, "Bearer "); ok {
			tokenString = strings.TrimSpace(after)
		}
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token requerido"})
		}
		claims, err := jwt.ParseSession(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "no se pudo verificar el token"})
		}
		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalRole, claims.Role)
		c.Locals(LocalEmail, claims.Email)
		c.Locals(LocalClientID, claims.ClientID)
		return c.Next()
	}
}

// RequireRole corta con 403 si el rol del token no está en la lista. Las
// requests autenticadas por api key no traen rol y también se rechazan.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		for _, r := range roles {
			if role == r {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "rol sin permiso para esta operación"})
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) int64 {
	v := c.Locals(LocalUserID)
	if v == nil {
		return 0
	}
	id, _ := v.(int64)
	return id
}

// GetRole devuelve el rol del contexto.
func GetRole(c *fiber.Ctx) string {
	v := c.Locals(LocalRole)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetEmail devuelve el email del contexto.
func GetEmail(c *fiber.Ctx) string {
	v := c.Locals(LocalEmail)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetClientID devuelve el cliente asociado del contexto.
func GetClientID(c *fiber.Ctx) string {
	v := c.Locals(LocalClientID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
