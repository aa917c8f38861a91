package repository

import "github.com/siges-soporte/siges-api/internal/domain/entity"

// BotuserRepository define el puerto de persistencia para Botuser y sus
// asociaciones con Client. Las asociaciones se manejan con métodos explícitos
// sobre ids planos: AddClients suma sin quitar, ReplaceClients reemplaza el
// conjunto completo.
type BotuserRepository interface {
	Create(botuser *entity.Botuser) error
	GetByID(id int64) (*entity.Botuser, error)
	GetByPhone(phone string) (*entity.Botuser, error)
	// List devuelve todos los botusers con sus clientes asociados.
	List() ([]*entity.Botuser, error)
	// ListByClient devuelve los botusers vinculados a un cliente.
	ListByClient(clientID string) ([]*entity.Botuser, error)
	Update(botuser *entity.Botuser) error
	AddClients(botuserID int64, clientIDs []string) error
	ReplaceClients(botuserID int64, clientIDs []string) error
	Delete(id int64) error
}
