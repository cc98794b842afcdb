package repository

import (
	"context"
	"fmt"

	"github.com/huynhtuanvt18/pah-mobile-client/internal/api"
	"github.com/huynhtuanvt18/pah-mobile-client/internal/models"
)

type WalletRepo struct {
	gw *api.Gateway
}

func NewWalletRepo(gw *api.Gateway) *WalletRepo {
	return &WalletRepo{gw: gw}
}

// CurrentUser returns the signed-in user's wallet with its balances.
func (r *WalletRepo) CurrentUser(ctx context.Context) (models.Wallet, error) {
	var wallet models.Wallet
	if err := r.gw.GetAuth(ctx, "/wallet/user/current", &wallet); err != nil {
		return models.Wallet{}, err
	}
	return wallet, nil
}

type TransactionRepo struct {
	gw *api.Gateway
}

func NewTransactionRepo(gw *api.Gateway) *TransactionRepo {
	return &TransactionRepo{gw: gw}
}

// CurrentUser lists the signed-in user's wallet transactions, paged.
func (r *TransactionRepo) CurrentUser(ctx context.Context, pageNumber int) ([]models.Transaction, error) {
	if pageNumber < 1 {
		pageNumber = 1
	}
	var transactions []models.Transaction
	path := fmt.Sprintf("/transaction/user/current?PageSize=%d&PageNumber=%d", DefaultPageSize, pageNumber)
	if err := r.gw.GetAuth(ctx, path, &transactions); err != nil {
		return nil, err
	}
	return transactions, nil
}
