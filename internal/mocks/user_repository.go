package mocks

import (
	"context"

	"github.com/labelmint/labelmint/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type UserRepository struct {
	mock.Mock
}

func (u *UserRepository) Create(ctx context.Context, user *model.User) error {
	args := u.Called(ctx, user)
	return args.Error(0)
}

func (u *UserRepository) FindByID(ctx context.Context, id int64) (model.User, error) {
	args := u.Called(ctx, id)
	return args.Get(0).(model.User), args.Error(1)
}

func (u *UserRepository) FindByIDForUpdate(ctx context.Context, id int64) (model.User, error) {
	args := u.Called(ctx, id)
	return args.Get(0).(model.User), args.Error(1)
}

func (u *UserRepository) UpdateCredits(ctx context.Context, id int64, credits decimal.Decimal) error {
	args := u.Called(ctx, id, credits)
	return args.Error(0)
}
