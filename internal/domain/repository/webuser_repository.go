package repository

import "github.com/siges-soporte/siges-api/internal/domain/entity"

// WebuserRepository define el puerto para credenciales web legadas.
type WebuserRepository interface {
	Create(webuser *entity.Webuser) error
	GetByEmail(email string) (*entity.Webuser, error)
	List() ([]*entity.Webuser, error)
	ListByUser(userID int64) ([]*entity.Webuser, error)
	// SetRole asigna rol y activa la credencial en un solo paso.
	SetRole(email, role string) error
	UpdatePassword(email, passwordHash string) error
}

// OperatorRepository define el puerto para operadores internos.
type OperatorRepository interface {
	Create(operator *entity.Operator) error
	GetByEmail(email string) (*entity.Operator, error)
	List() ([]*entity.Operator, error)
}

// StaffRepository define el puerto para el personal de soporte.
type StaffRepository interface {
	// List devuelve todo el staff con la información del usuario asociado.
	List() ([]*entity.Staff, error)
	ListByUser(userID int64) ([]*entity.Staff, error)
}

// RecommendationRepository define el puerto para recomendaciones del portal.
type RecommendationRepository interface {
	Create(rec *entity.Recommendation) error
	GetByID(id int64) (*entity.Recommendation, error)
	List() ([]*entity.Recommendation, error)
	Update(rec *entity.Recommendation) error
	Delete(id int64) error
}
