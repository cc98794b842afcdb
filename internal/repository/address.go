package repository

import (
	"context"
	"fmt"

	"github.com/huynhtuanvt18/pah-mobile-client/internal/api"
	"github.com/huynhtuanvt18/pah-mobile-client/internal/models"
)

type AddressRepo struct {
	gw *api.Gateway
}

func NewAddressRepo(gw *api.Gateway) *AddressRepo {
	return &AddressRepo{gw: gw}
}

// ListCurrentUser returns every shipping address of the signed-in user.
func (r *AddressRepo) ListCurrentUser(ctx context.Context) ([]models.Address, error) {
	var addresses []models.Address
	if err := r.gw.GetAuth(ctx, "/address/user/current", &addresses); err != nil {
		return nil, err
	}
	return addresses, nil
}

func (r *AddressRepo) Create(ctx context.Context, input models.AddressInput) error {
	if err := validate.Struct(input); err != nil {
		return err
	}
	return r.gw.PostAuth(ctx, "/address", input, nil)
}

func (r *AddressRepo) Update(ctx context.Context, addressID int, input models.AddressInput) error {
	if err := validate.Struct(input); err != nil {
		return err
	}
	return r.gw.PostAuth(ctx, fmt.Sprintf("/address/%d", addressID), input, nil)
}

func (r *AddressRepo) Delete(ctx context.Context, addressID int) error {
	return r.gw.DeleteAuth(ctx, fmt.Sprintf("/address/%d", addressID))
}

// SetDefault flags one address as default. The backend clears the flag on
// the others; at most one address is default per user.
func (r *AddressRepo) SetDefault(ctx context.Context, addressID int) error {
	return r.gw.PostAuth(ctx, fmt.Sprintf("/address/default/%d", addressID), nil, nil)
}
