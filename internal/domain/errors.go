package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrClientNotFound     = errors.New("cliente no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrUserDisabled       = errors.New("usuario no habilitado")
	ErrInvalidToken       = errors.New("token inválido o expirado")
	ErrCodeExhausted      = errors.New("no se pudo generar un código único")
	ErrForeignKey         = errors.New("referencia a entidad inexistente")
)

// MissingClientsError lista los IDs de cliente que no resolvieron al validar
// una vinculación Botuser↔Client. Se valida el lote completo antes de mutar.
type MissingClientsError struct {
	IDs []string
}

func (e *MissingClientsError) Error() string {
	return "uno o más clientes especificados no existen"
}
