package converter

import (
	dto "lucky_slots/internal/api/dto/account"
	"lucky_slots/internal/model"

	"github.com/samber/lo"
)

func ToAccountResponse(ov *model.AccountOverview) dto.AccountResponse {
	options := ov.WithdrawOptions
	if options == nil {
		options = []int{}
	}
	return dto.AccountResponse{
		Balance:                ov.Balance,
		FreeSpins:              ov.FreeSpins,
		TotalWinnings:          ov.TotalWinnings,
		WithdrawalQuickAmounts: options,
	}
}

func ToTopUpResponse(res *model.TopUpResult) dto.TopUpResponse {
	return dto.TopUpResponse{
		Balance:       res.Account.Balance,
		FreeSpins:     res.Account.FreeSpins,
		TotalWinnings: res.Account.TotalWinnings,
		RedirectURL:   res.RedirectURL,
	}
}

func ToTransactionsResponse(txs []model.Transaction) []dto.TransactionItem {
	return lo.Map(txs, func(tx model.Transaction, _ int) dto.TransactionItem {
		return dto.TransactionItem{
			ID:           tx.ID,
			Kind:         string(tx.Kind),
			Amount:       tx.Amount,
			BalanceAfter: tx.BalanceAfter,
			CreatedAt:    tx.CreatedAt,
		}
	})
}
