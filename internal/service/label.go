package service

import (
	"context"
	"errors"
	"strings"

	"github.com/labelmint/labelmint/internal/constants"
	"github.com/labelmint/labelmint/internal/metrics"
	"github.com/labelmint/labelmint/internal/model"
	"github.com/labelmint/labelmint/internal/repository"
	"github.com/labelmint/labelmint/pkg/slug"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrInvalidPayload      = errors.New("INVALID_PAYLOAD")
	ErrInsufficientCredits = errors.New("INSUFFICIENT_CREDITS")
)

// One credit funds ten label units.
var unitsPerCredit = decimal.NewFromInt(10)

const indexWidth = 3

type LabelService interface {
	CreateLabels(ctx context.Context, cmd CreateLabelsCommand) (CreateLabelsResult, error)
	ListLabels(userID int64, filter repository.LabelFilter) ([]model.Label, error)
}

type labelService struct {
	txManager repository.TxManager
	userRepo  repository.UserRepository
	labelRepo repository.LabelRepository
	log       *zap.Logger
	metrics   *metrics.Metrics
}

func NewLabelService(txManager repository.TxManager, userRepo repository.UserRepository, labelRepo repository.LabelRepository, log *zap.Logger, metrics *metrics.Metrics) LabelService {
	return &labelService{txManager: txManager, userRepo: userRepo, labelRepo: labelRepo, log: log, metrics: metrics}
}

// CreateLabels mints cmd.Units sequential labels in the scope defined by the
// user and the normalized (name, type, category) tuple and debits the ledger,
// all in one transaction. The user row lock serializes concurrent allocations
// in the same scope so two allocators can never observe the same max index.
func (s *labelService) CreateLabels(ctx context.Context, cmd CreateLabelsCommand) (CreateLabelsResult, error) {
	name := strings.TrimSpace(cmd.Name)
	skuType := strings.TrimSpace(cmd.SkuType)
	category := strings.TrimSpace(cmd.Category)

	if cmd.Units <= 0 || name == "" || skuType == "" || category == "" {
		return CreateLabelsResult{}, NewServiceError(constants.ErrCodeInvalidPayload, ErrInvalidPayload)
	}

	required := decimal.NewFromInt(int64(cmd.Units)).Div(unitsPerCredit)

	var result CreateLabelsResult

	err := s.txManager.WithTx(ctx, func(ctx context.Context) error {
		user, err := s.userRepo.FindByIDForUpdate(ctx, cmd.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return NewServiceError(constants.ErrCodeUserNotFound, err)
			}
			return NewServiceError(constants.ErrCodeOperationFailed, err)
		}

		if user.Credits.LessThan(required) {
			s.metrics.RecordMintRejected()
			return NewServiceError(constants.ErrCodeInsufficientCredits, ErrInsufficientCredits)
		}

		prefix := user.Namespace() + "-" + slug.Make(name) + "-" + slug.Make(skuType) + "-" + slug.Make(category) + "-"

		maxIdx, err := s.labelRepo.MaxUnitIndex(ctx, user.ID, prefix)
		if err != nil {
			return NewServiceError(constants.ErrCodeOperationFailed, err)
		}

		labels := make([]model.Label, 0, cmd.Units)
		for i := 1; i <= cmd.Units; i++ {
			idx := maxIdx + i
			labels = append(labels, model.Label{
				UserID:    user.ID,
				Name:      name,
				SkuType:   skuType,
				Category:  category,
				UnitIndex: idx,
				Code:      prefix + slug.Pad(idx, indexWidth),
			})
		}

		if err := s.labelRepo.CreateBatch(ctx, labels); err != nil {
			s.log.Error("error create labels", zap.Error(err), zap.String("prefix", prefix))
			return NewServiceError(constants.ErrCodeOperationFailed, err)
		}

		user.Credits = user.Credits.Sub(required)
		if err := s.userRepo.UpdateCredits(ctx, user.ID, user.Credits); err != nil {
			s.log.Error("error debit credits", zap.Error(err), zap.Int64("user_id", user.ID))
			return NewServiceError(constants.ErrCodeOperationFailed, err)
		}

		created := make([]CreatedLabel, len(labels))
		for i, l := range labels {
			created[i] = CreatedLabel{ID: l.ID, Code: l.Code, UnitIndex: l.UnitIndex}
		}

		result = CreateLabelsResult{Created: created, CreditsLeft: user.Credits}
		return nil
	})
	if err != nil {
		return CreateLabelsResult{}, err
	}

	s.metrics.RecordLabelsMinted(len(result.Created))

	s.log.Info("Labels minted",
		zap.Int64("user_id", cmd.UserID),
		zap.Int("units", cmd.Units),
		zap.String("credits_left", result.CreditsLeft.String()))

	return result, nil
}

func (s *labelService) ListLabels(userID int64, filter repository.LabelFilter) ([]model.Label, error) {
	labels, err := s.labelRepo.ListByUserID(userID, filter)
	if err != nil {
		return nil, NewServiceError(constants.ErrCodeOperationFailed, err)
	}
	return labels, nil
}
