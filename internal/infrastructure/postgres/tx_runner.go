package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stockpilot/stockpilot-api/internal/application/usecase"
	"github.com/stockpilot/stockpilot-api/internal/domain/repository"
)

// Ensure TxRunner implements usecase.ItemTxRunner and usecase.SaleTxRunner.
var _ usecase.ItemTxRunner = (*TxRunner)(nil)
var _ usecase.SaleTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunItems inicia una transacción con repos de artículos e historia y hace Commit o Rollback.
func (r *TxRunner) RunItems(ctx context.Context, fn func(
	items repository.ItemRepository,
	history repository.ItemHistoryRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	itemRepo := NewItemRepository(tx)
	historyRepo := NewItemHistoryRepository(tx)

	if err := fn(itemRepo, historyRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunSales inicia una transacción con repos de ventas y notificaciones (para CreateSale).
func (r *TxRunner) RunSales(ctx context.Context, fn func(
	sales repository.SaleRepository,
	notifications repository.NotificationRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	saleRepo := NewSaleRepository(tx)
	notificationRepo := NewNotificationRepository(tx)

	if err := fn(saleRepo, notificationRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
