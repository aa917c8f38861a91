package repository

import "github.com/siges-soporte/siges-api/internal/domain/entity"

// ClientRepository define el puerto de persistencia para Client.
type ClientRepository interface {
	Create(client *entity.Client) error
	GetByID(id string) (*entity.Client, error)
	List() ([]*entity.Client, error)
	Update(client *entity.Client) error
	// FindByInfoAndEmail busca por la tupla exacta (info, email); el email se
	// compara contra cualquiera de las direcciones del cliente.
	FindByInfoAndEmail(info, email string) (*entity.Client, error)
	// MissingIDs devuelve los ids del lote que no existen en la tabla.
	MissingIDs(ids []string) ([]string, error)
}
