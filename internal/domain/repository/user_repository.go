package repository

import "github.com/siges-soporte/siges-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// Los Get* devuelven (nil, nil) cuando no hay fila.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id int64) (*entity.User, error)
	// GetByIDWithClient incluye el Client asociado (clientInfo) si existe.
	GetByIDWithClient(id int64) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	// List devuelve todos los usuarios con su clientInfo.
	List() ([]*entity.User, error)
	Update(user *entity.User) error
	UpdatePassword(id int64, passwordHash string) error
	SetStatus(id int64, status int) error
	Delete(id int64) error
}
