package mocks

import (
	"context"

	"github.com/labelmint/labelmint/internal/model"
	"github.com/labelmint/labelmint/internal/repository"
	"github.com/stretchr/testify/mock"
)

type LabelRepository struct {
	mock.Mock
}

func (l *LabelRepository) MaxUnitIndex(ctx context.Context, userID int64, prefix string) (int, error) {
	args := l.Called(ctx, userID, prefix)
	return args.Int(0), args.Error(1)
}

func (l *LabelRepository) CreateBatch(ctx context.Context, labels []model.Label) error {
	args := l.Called(ctx, labels)
	return args.Error(0)
}

func (l *LabelRepository) ListByUserID(userID int64, filter repository.LabelFilter) ([]model.Label, error) {
	args := l.Called(userID, filter)
	return args.Get(0).([]model.Label), args.Error(1)
}

func (l *LabelRepository) CountByUserID(userID int64) (int64, error) {
	args := l.Called(userID)
	return args.Get(0).(int64), args.Error(1)
}
