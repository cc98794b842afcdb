package repository

import (
	"context"

	"github.com/huynhtuanvt18/pah-mobile-client/internal/api"
	"github.com/huynhtuanvt18/pah-mobile-client/internal/models"
)

// AccountRepo covers the signed-in user's profile endpoints.
type AccountRepo struct {
	gw *api.Gateway
}

func NewAccountRepo(gw *api.Gateway) *AccountRepo {
	return &AccountRepo{gw: gw}
}

func (r *AccountRepo) CurrentUser(ctx context.Context) (models.User, error) {
	var user models.User
	if err := r.gw.GetAuth(ctx, "/user/current", &user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (r *AccountRepo) UpdateProfile(ctx context.Context, input models.ProfileUpdate) error {
	if err := validate.Struct(input); err != nil {
		return err
	}
	return r.gw.PostAuth(ctx, "/user/profile", input, nil)
}

func (r *AccountRepo) ChangePassword(ctx context.Context, input models.PasswordChange) error {
	if err := validate.Struct(input); err != nil {
		return err
	}
	return r.gw.PostAuth(ctx, "/user/password", input, nil)
}
