package mocks

import (
	"context"

	"github.com/labelmint/labelmint/internal/model"
	"github.com/stretchr/testify/mock"
)

type PaymentRepository struct {
	mock.Mock
}

func (p *PaymentRepository) Create(ctx context.Context, payment *model.Payment) error {
	args := p.Called(ctx, payment)
	return args.Error(0)
}

func (p *PaymentRepository) FindByOrderIDForUpdate(ctx context.Context, orderID string) (model.Payment, error) {
	args := p.Called(ctx, orderID)
	return args.Get(0).(model.Payment), args.Error(1)
}

func (p *PaymentRepository) FindByOrderIDAndUserForUpdate(ctx context.Context, orderID string, userID int64) (model.Payment, error) {
	args := p.Called(ctx, orderID, userID)
	return args.Get(0).(model.Payment), args.Error(1)
}

func (p *PaymentRepository) Update(ctx context.Context, payment *model.Payment) error {
	args := p.Called(ctx, payment)
	return args.Error(0)
}

func (p *PaymentRepository) ListByUserID(userID int64) ([]model.Payment, error) {
	args := p.Called(userID)
	return args.Get(0).([]model.Payment), args.Error(1)
}
