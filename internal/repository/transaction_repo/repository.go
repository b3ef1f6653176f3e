package transaction_repo

import (
	"context"
	"fmt"

	"lucky_slots/internal/model"
	"lucky_slots/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table           = "transactions"
	colID           = "id"
	colUserID       = "user_id"
	colKind         = "kind"
	colAmount       = "amount"
	colBalanceAfter = "balance_after"
	colCreatedAt    = "created_at"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewTransactionRepository(dbc *pgxpool.Pool) repository.TransactionRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// CreateTransaction - записывает пополнение или вывод. Возвращает ID записи
func (r *repo) CreateTransaction(ctx context.Context, tx *model.Transaction) (int64, error) {
	// Формируем запрос
	query := sq.Insert(table).
		Columns(colUserID, colKind, colAmount, colBalanceAfter, colCreatedAt).
		Values(tx.UserID, string(tx.Kind), int64(tx.Amount), int64(tx.BalanceAfter), tx.CreatedAt).
		Suffix("RETURNING " + colID).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var id int64
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert transaction: %w", err)
	}

	return id, nil
}

// ListTransactions - последние пополнения и выводы пользователя, новые первыми
func (r *repo) ListTransactions(ctx context.Context, userID int, limit int) ([]model.Transaction, error) {
	// Формируем запрос
	query := sq.Select(colID, colUserID, colKind, colAmount, colBalanceAfter, colCreatedAt).
		From(table).
		Where(sq.Eq{colUserID: userID}).
		OrderBy(colID + " DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("select transactions: %w", err)
	}
	defer rows.Close()

	txs := make([]model.Transaction, 0, limit)
	for rows.Next() {
		var (
			tx                   model.Transaction
			kind                 string
			amount, balanceAfter int64
		)
		if err = rows.Scan(&tx.ID, &tx.UserID, &kind, &amount, &balanceAfter, &tx.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		tx.Kind = model.TransactionKind(kind)
		tx.Amount = int(amount)
		tx.BalanceAfter = int(balanceAfter)
		txs = append(txs, tx)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}

	return txs, nil
}
