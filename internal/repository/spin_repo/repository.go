package spin_repo

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
	table               = "spins"
	colID               = "id"
	colUserID           = "user_id"
	colStake            = "stake"
	colReel1            = "reel_1"
	colReel2            = "reel_2"
	colReel3            = "reel_3"
	colPayout           = "payout"
	colFreeSpin         = "free_spin"
	colAwardedFreeSpins = "awarded_free_spins"
	colBalanceAfter     = "balance_after"
	colCreatedAt        = "created_at"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewSpinRepository(dbc *pgxpool.Pool) repository.SpinRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// CreateSpin - записывает спин в историю. Возвращает ID записи
func (r *repo) CreateSpin(ctx context.Context, rec *model.SpinRecord) (int64, error) {
	// Формируем запрос
	query := sq.Insert(table).
		Columns(colUserID, colStake, colReel1, colReel2, colReel3, colPayout,
			colFreeSpin, colAwardedFreeSpins, colBalanceAfter, colCreatedAt).
		Values(rec.UserID, rec.Stake, string(rec.Reels[0]), string(rec.Reels[1]), string(rec.Reels[2]), rec.Payout,
			rec.FreeSpin, rec.AwardedFreeSpins, int64(rec.BalanceAfter), rec.CreatedAt).
		Suffix("RETURNING " + colID).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var id int64
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert spin: %w", err)
	}

	return id, nil
}

// ListSpins - последние спины пользователя, новые первыми
func (r *repo) ListSpins(ctx context.Context, userID int, limit int) ([]model.SpinRecord, error) {
	// Формируем запрос
	query := sq.Select(colID, colUserID, colStake, colReel1, colReel2, colReel3, colPayout,
		colFreeSpin, colAwardedFreeSpins, colBalanceAfter, colCreatedAt).
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
		return nil, fmt.Errorf("select spins: %w", err)
	}
	defer rows.Close()

	spins := make([]model.SpinRecord, 0, limit)
	for rows.Next() {
		var (
			rec          model.SpinRecord
			r1, r2, r3   string
			balanceAfter int64
		)
		err = rows.Scan(&rec.ID, &rec.UserID, &rec.Stake, &r1, &r2, &r3, &rec.Payout,
			&rec.FreeSpin, &rec.AwardedFreeSpins, &balanceAfter, &rec.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan spin: %w", err)
		}
		rec.Reels = model.Reels{model.Symbol(r1), model.Symbol(r2), model.Symbol(r3)}
		rec.BalanceAfter = int(balanceAfter)
		spins = append(spins, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate spins: %w", err)
	}

	return spins, nil
}
