package user_repo

import (
	"context"
	"errors"
	"fmt"

	"lucky_slots/internal/model"
	"lucky_slots/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table            = "users"
	colID            = "id"
	colName          = "name"
	colPhone         = "phone"
	colPasswordHash  = "password_hash"
	colBalance       = "balance"
	colFreeSpins     = "free_spins"
	colTotalWinnings = "total_winnings"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewUserRepository(dbc *pgxpool.Pool) repository.UserRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// CreateUser - создает нового пользователя вместе с его счётом.
// Возвращает ID созданного пользователя или repository.ErrUserExists, если телефон занят
func (r *repo) CreateUser(ctx context.Context, user *model.User) (int, error) {
	// Формируем запрос
	query := sq.Insert(table).
		Columns(colName, colPhone, colPasswordHash, colBalance, colFreeSpins, colTotalWinnings).
		Values(user.Name, user.Phone, user.Password,
			int64(user.Account.Balance), user.Account.FreeSpins, int64(user.Account.TotalWinnings)).
		Suffix("RETURNING " + colID).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var id int
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return 0, repository.ErrUserExists
		}
		return 0, fmt.Errorf("insert user: %w", err)
	}

	return id, nil
}

// GetUserByPhone - возвращает пользователя со счётом по номеру телефона
func (r *repo) GetUserByPhone(ctx context.Context, phone string) (*model.User, error) {
	// Формируем запрос
	query := sq.Select(colID, colName, colPhone, colPasswordHash, colBalance, colFreeSpins, colTotalWinnings).
		From(table).
		Where(sq.Eq{colPhone: phone}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var (
		user              model.User
		balance, winnings int64
	)
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).
		Scan(&user.ID, &user.Name, &user.Phone, &user.Password, &balance, &user.Account.FreeSpins, &winnings)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrUserNotFound
		}
		return nil, fmt.Errorf("select user: %w", err)
	}

	user.Account.Balance = int(balance)
	user.Account.TotalWinnings = int(winnings)
	return &user, nil
}

// GetAccount - счёт пользователя по его ID
func (r *repo) GetAccount(ctx context.Context, id int) (model.Account, error) {
	return r.getAccount(ctx, id, false)
}

// GetAccountForUpdate - счёт пользователя с блокировкой строки до конца транзакции
func (r *repo) GetAccountForUpdate(ctx context.Context, id int) (model.Account, error) {
	return r.getAccount(ctx, id, true)
}

func (r *repo) getAccount(ctx context.Context, id int, forUpdate bool) (model.Account, error) {
	// Формируем запрос
	query := sq.Select(colBalance, colFreeSpins, colTotalWinnings).
		From(table).
		Where(sq.Eq{colID: id}).
		PlaceholderFormat(sq.Dollar)
	if forUpdate {
		query = query.Suffix("FOR UPDATE")
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return model.Account{}, err
	}

	var (
		acc               model.Account
		balance, winnings int64
	)
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).
		Scan(&balance, &acc.FreeSpins, &winnings)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Account{}, repository.ErrUserNotFound
		}
		return model.Account{}, fmt.Errorf("select account: %w", err)
	}

	acc.Balance = int(balance)
	acc.TotalWinnings = int(winnings)
	return acc, nil
}

// UpdateAccount - записывает новое состояние счёта пользователя
func (r *repo) UpdateAccount(ctx context.Context, id int, acc model.Account) error {
	// Формируем запрос
	query := sq.Update(table).
		Set(colBalance, int64(acc.Balance)).
		Set(colFreeSpins, acc.FreeSpins).
		Set(colTotalWinnings, int64(acc.TotalWinnings)).
		Where(sq.Eq{colID: id}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	tag, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return fmt.Errorf("update account: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}
