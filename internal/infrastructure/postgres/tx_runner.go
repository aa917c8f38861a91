package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/siges-soporte/siges-api/internal/application/usecase"
	"github.com/siges-soporte/siges-api/internal/domain/repository"
)

// Ensure TxRunner implements usecase.UserTxRunner.
var _ usecase.UserTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunUserClient inicia una transacción, ejecuta fn con repos de usuario y
// cliente atados a la tx y hace Commit o Rollback. La usa el alta combinada
// cliente + usuario para no dejar clientes huérfanos.
func (r *TxRunner) RunUserClient(ctx context.Context, fn func(
	userRepo repository.UserRepository,
	clientRepo repository.ClientRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	userRepo := NewUserRepository(tx)
	clientRepo := NewClientRepository(tx)

	if err := fn(userRepo, clientRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
