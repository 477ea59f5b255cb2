package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// TxStarter открывает транзакции; *pgxpool.Pool и *pgx.Conn подходят.
type TxStarter interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// WithTx выполняет fn в одной транзакции. Сидер так пишет пользователя и его
// сотрудника вместе: если сотрудник не вставился, пользователь тоже не остаётся.
// Паника откатывает транзакцию и пробрасывается дальше.
func WithTx(ctx context.Context, db TxStarter, fn func(tx pgx.Tx) error) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("начало транзакции: %w", err)
	}

	finished := false
	defer func() {
		if !finished {
			_ = tx.Rollback(ctx)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			return errors.Join(err, fmt.Errorf("откат транзакции: %w", rbErr))
		}
		finished = true
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("фиксация транзакции: %w", err)
	}
	finished = true
	return nil
}
