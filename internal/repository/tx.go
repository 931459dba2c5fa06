package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const uniqueViolation = "23505"

var errNoTx = errors.New("row lock requires a transaction")

type txKey struct{}

func isUniqueViolation(err error) bool {
	var pgErr *pq.Error
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

func defaultStrategy() retry.Strategy {
	return retry.Strategy{
		Attempts: 3,
		Delay:    500 * time.Millisecond,
		Backoff:  2,
	}
}

type TxManager struct {
	db *dbpg.DB
}

func NewTxManager(db *dbpg.DB) *TxManager {
	return &TxManager{db: db}
}

// WithinTx открывает транзакцию и кладёт её в ctx. Вложенный вызов
// переиспользует внешнюю транзакцию.
func (m *TxManager) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := txFrom(ctx); ok {
		return fn(ctx)
	}

	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err = fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}

	return nil
}

func txFrom(ctx context.Context) (*sql.Tx, bool) {
	tx, ok := ctx.Value(txKey{}).(*sql.Tx)
	return tx, ok
}

// executor направляет запросы в транзакцию из ctx, а вне транзакции
// выполняет их с повторами.
type executor struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func (e executor) queryRow(ctx context.Context, query string, args ...any) (*sql.Row, error) {
	if tx, ok := txFrom(ctx); ok {
		return tx.QueryRowContext(ctx, query, args...), nil
	}
	return e.db.QueryRowWithRetry(ctx, e.strategy, query, args...)
}

func (e executor) query(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	if tx, ok := txFrom(ctx); ok {
		return tx.QueryContext(ctx, query, args...)
	}
	return e.db.QueryWithRetry(ctx, e.strategy, query, args...)
}

func (e executor) exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if tx, ok := txFrom(ctx); ok {
		return tx.ExecContext(ctx, query, args...)
	}
	return e.db.ExecWithRetry(ctx, e.strategy, query, args...)
}
