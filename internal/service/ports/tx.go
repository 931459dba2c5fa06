package ports

import "context"

// Transactor выполняет fn в одной транзакции: ошибка fn откатывает все изменения.
// Репозитории, вызванные с переданным ctx, работают внутри этой транзакции.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
