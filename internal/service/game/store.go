package game

import (
	"context"
	"fmt"

	"lucky_slots/internal/model"
	"lucky_slots/internal/repository"
)

// txStore пишет новое состояние счёта и запись об операции в текущую транзакцию
type txStore struct {
	userID   int
	userRepo repository.UserRepository
	spinRepo repository.SpinRepository
	txRepo   repository.TransactionRepository
}

func (st *txStore) SaveSpin(ctx context.Context, acc model.Account, rec model.SpinRecord) error {
	if err := st.userRepo.UpdateAccount(ctx, st.userID, acc); err != nil {
		return err
	}

	if _, err := st.spinRepo.CreateSpin(ctx, &rec); err != nil {
		return fmt.Errorf("record spin: %w", err)
	}

	return nil
}

func (st *txStore) SaveTransaction(ctx context.Context, acc model.Account, tx model.Transaction) error {
	if err := st.userRepo.UpdateAccount(ctx, st.userID, acc); err != nil {
		return err
	}

	if _, err := st.txRepo.CreateTransaction(ctx, &tx); err != nil {
		return fmt.Errorf("record transaction: %w", err)
	}

	return nil
}
