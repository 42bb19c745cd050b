package service_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/labelmint/labelmint/internal/constants"
	"github.com/labelmint/labelmint/internal/mocks"
	"github.com/labelmint/labelmint/internal/model"
	"github.com/labelmint/labelmint/internal/service"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func labelTestUser(credits string) model.User {
	return model.User{
		ID:       42,
		Email:    "buyer@example.com",
		PublicID: "1a2b3c4d-9e8f-4a5b-8c7d-0e1f2a3b4c5d",
		Credits:  decimal.RequireFromString(credits),
	}
}

func TestLabel_CreateLabels(t *testing.T) {
	logger := zap.NewNop()
	txCtx := mock.AnythingOfType("*context.valueCtx")

	t.Run("allocates sequential codes and debits the ledger", func(t *testing.T) {
		mockTx := &mocks.TxManager{}
		mockUserRepo := &mocks.UserRepository{}
		mockLabelRepo := &mocks.LabelRepository{}

		svc := service.NewLabelService(mockTx, mockUserRepo, mockLabelRepo, logger, testMetrics)

		mockTx.On("WithTx", context.Background(),
			mock.AnythingOfType("func(context.Context) error")).Return(nil)

		mockUserRepo.On("FindByIDForUpdate", txCtx, int64(42)).Return(labelTestUser("2.00"), nil)

		prefix := "1a2b3c4d-box-ship-std-"
		mockLabelRepo.On("MaxUnitIndex", txCtx, int64(42), prefix).Return(0, nil)

		var captured []model.Label
		mockLabelRepo.On("CreateBatch", txCtx, mock.AnythingOfType("[]model.Label")).
			Run(func(args mock.Arguments) {
				captured = args.Get(1).([]model.Label)
			}).Return(nil)

		mockUserRepo.On("UpdateCredits", txCtx, int64(42),
			mock.MatchedBy(func(d decimal.Decimal) bool {
				return d.Equal(decimal.RequireFromString("0.5"))
			})).Return(nil)

		result, err := svc.CreateLabels(context.Background(), service.CreateLabelsCommand{
			UserID:   42,
			Name:     "Box",
			SkuType:  "Ship",
			Category: "Std",
			Units:    15,
		})

		require.NoError(t, err)
		require.Len(t, result.Created, 15)
		require.Len(t, captured, 15)

		for i, l := range captured {
			assert.Equal(t, i+1, l.UnitIndex)
			assert.Equal(t, fmt.Sprintf("%s%03d", prefix, i+1), l.Code)
		}
		assert.Equal(t, prefix+"001", result.Created[0].Code)
		assert.Equal(t, prefix+"015", result.Created[14].Code)
		assert.True(t, result.CreditsLeft.Equal(decimal.RequireFromString("0.5")))

		mockUserRepo.AssertExpectations(t)
		mockLabelRepo.AssertExpectations(t)
	})

	t.Run("continues from the highest existing unit index", func(t *testing.T) {
		mockTx := &mocks.TxManager{}
		mockUserRepo := &mocks.UserRepository{}
		mockLabelRepo := &mocks.LabelRepository{}

		svc := service.NewLabelService(mockTx, mockUserRepo, mockLabelRepo, logger, testMetrics)

		mockTx.On("WithTx", context.Background(),
			mock.AnythingOfType("func(context.Context) error")).Return(nil)

		mockUserRepo.On("FindByIDForUpdate", txCtx, int64(42)).Return(labelTestUser("10.00"), nil)

		prefix := "1a2b3c4d-box-ship-std-"
		mockLabelRepo.On("MaxUnitIndex", txCtx, int64(42), prefix).Return(7, nil)

		var captured []model.Label
		mockLabelRepo.On("CreateBatch", txCtx, mock.AnythingOfType("[]model.Label")).
			Run(func(args mock.Arguments) {
				captured = args.Get(1).([]model.Label)
			}).Return(nil)
		mockUserRepo.On("UpdateCredits", txCtx, int64(42), mock.Anything).Return(nil)

		result, err := svc.CreateLabels(context.Background(), service.CreateLabelsCommand{
			UserID:   42,
			Name:     "box",
			SkuType:  "ship",
			Category: "std",
			Units:    3,
		})

		require.NoError(t, err)
		require.Len(t, captured, 3)
		assert.Equal(t, prefix+"008", captured[0].Code)
		assert.Equal(t, prefix+"010", captured[2].Code)
		assert.Equal(t, 10, result.Created[2].UnitIndex)
	})

	t.Run("normalizes messy names into the code prefix", func(t *testing.T) {
		mockTx := &mocks.TxManager{}
		mockUserRepo := &mocks.UserRepository{}
		mockLabelRepo := &mocks.LabelRepository{}

		svc := service.NewLabelService(mockTx, mockUserRepo, mockLabelRepo, logger, testMetrics)

		mockTx.On("WithTx", context.Background(),
			mock.AnythingOfType("func(context.Context) error")).Return(nil)

		mockUserRepo.On("FindByIDForUpdate", txCtx, int64(42)).Return(labelTestUser("5.00"), nil)

		prefix := "1a2b3c4d-big-box-24-ship-stdcat-"
		mockLabelRepo.On("MaxUnitIndex", txCtx, int64(42), prefix).Return(0, nil)
		mockLabelRepo.On("CreateBatch", txCtx, mock.AnythingOfType("[]model.Label")).Return(nil)
		mockUserRepo.On("UpdateCredits", txCtx, int64(42), mock.Anything).Return(nil)

		result, err := svc.CreateLabels(context.Background(), service.CreateLabelsCommand{
			UserID:   42,
			Name:     "  Big  Box!! 24 ",
			SkuType:  "SHIP",
			Category: "Std/Cat",
			Units:    1,
		})

		require.NoError(t, err)
		assert.Equal(t, prefix+"001", result.Created[0].Code)

		mockLabelRepo.AssertExpectations(t)
	})

	t.Run("rejects mint that exceeds the credit balance", func(t *testing.T) {
		mockTx := &mocks.TxManager{}
		mockUserRepo := &mocks.UserRepository{}
		mockLabelRepo := &mocks.LabelRepository{}

		svc := service.NewLabelService(mockTx, mockUserRepo, mockLabelRepo, logger, testMetrics)

		mockTx.On("WithTx", context.Background(),
			mock.AnythingOfType("func(context.Context) error")).Return(nil)

		mockUserRepo.On("FindByIDForUpdate", txCtx, int64(42)).Return(labelTestUser("1.00"), nil)

		_, err := svc.CreateLabels(context.Background(), service.CreateLabelsCommand{
			UserID:   42,
			Name:     "box",
			SkuType:  "ship",
			Category: "std",
			Units:    11,
		})

		var serviceErr service.Error
		require.ErrorAs(t, err, &serviceErr)
		assert.Equal(t, constants.ErrCodeInsufficientCredits, serviceErr.Code)

		mockLabelRepo.AssertNotCalled(t, "CreateBatch", mock.Anything, mock.Anything)
		mockUserRepo.AssertNotCalled(t, "UpdateCredits", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("exact balance spend drains the ledger to zero", func(t *testing.T) {
		mockTx := &mocks.TxManager{}
		mockUserRepo := &mocks.UserRepository{}
		mockLabelRepo := &mocks.LabelRepository{}

		svc := service.NewLabelService(mockTx, mockUserRepo, mockLabelRepo, logger, testMetrics)

		mockTx.On("WithTx", context.Background(),
			mock.AnythingOfType("func(context.Context) error")).Return(nil)

		mockUserRepo.On("FindByIDForUpdate", txCtx, int64(42)).Return(labelTestUser("1.00"), nil)
		mockLabelRepo.On("MaxUnitIndex", txCtx, int64(42), mock.Anything).Return(0, nil)
		mockLabelRepo.On("CreateBatch", txCtx, mock.Anything).Return(nil)
		mockUserRepo.On("UpdateCredits", txCtx, int64(42),
			mock.MatchedBy(func(d decimal.Decimal) bool { return d.IsZero() })).Return(nil)

		result, err := svc.CreateLabels(context.Background(), service.CreateLabelsCommand{
			UserID:   42,
			Name:     "box",
			SkuType:  "ship",
			Category: "std",
			Units:    10,
		})

		require.NoError(t, err)
		assert.True(t, result.CreditsLeft.IsZero())
		mockUserRepo.AssertExpectations(t)
	})

	t.Run("rejects blank fields and non positive units", func(t *testing.T) {
		mockTx := &mocks.TxManager{}
		mockUserRepo := &mocks.UserRepository{}
		mockLabelRepo := &mocks.LabelRepository{}

		svc := service.NewLabelService(mockTx, mockUserRepo, mockLabelRepo, logger, testMetrics)

		cases := []service.CreateLabelsCommand{
			{UserID: 42, Name: "", SkuType: "ship", Category: "std", Units: 1},
			{UserID: 42, Name: "box", SkuType: "   ", Category: "std", Units: 1},
			{UserID: 42, Name: "box", SkuType: "ship", Category: "std", Units: 0},
			{UserID: 42, Name: "box", SkuType: "ship", Category: "std", Units: -3},
		}

		for _, cmd := range cases {
			_, err := svc.CreateLabels(context.Background(), cmd)

			var serviceErr service.Error
			require.ErrorAs(t, err, &serviceErr)
			assert.Equal(t, constants.ErrCodeInvalidPayload, serviceErr.Code)
		}

		mockUserRepo.AssertNotCalled(t, "FindByIDForUpdate", mock.Anything, mock.Anything)
	})
}
