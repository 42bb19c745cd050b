package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/labelmint/labelmint/internal/constants"
	"github.com/labelmint/labelmint/internal/model"
	"github.com/labelmint/labelmint/internal/repository"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type UserService interface {
	CreateUser(ctx context.Context, cmd CreateUserCommand) (CreateUserResult, error)
	GetProfile(ctx context.Context, userID int64) (ProfileResult, error)
}

type userService struct {
	userRepo  repository.UserRepository
	labelRepo repository.LabelRepository
	log       *zap.Logger
}

func NewUserService(userRepo repository.UserRepository, labelRepo repository.LabelRepository, log *zap.Logger) UserService {
	return &userService{userRepo: userRepo, labelRepo: labelRepo, log: log}
}

func (s *userService) CreateUser(ctx context.Context, cmd CreateUserCommand) (CreateUserResult, error) {
	user := model.User{
		Email:     cmd.Email,
		PublicID:  uuid.NewString(),
		Credits:   decimal.Zero,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.userRepo.Create(ctx, &user); err != nil {
		if errors.Is(err, repository.ErrUserExists) {
			return CreateUserResult{}, NewServiceError(constants.ErrCodeUserExisted, err)
		}
		s.log.Error("error create user", zap.Error(err), zap.String("email", cmd.Email))
		return CreateUserResult{}, NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	s.log.Info("User created",
		zap.Int64("user_id", user.ID),
		zap.String("public_id", user.PublicID))

	return CreateUserResult{User: user}, nil
}

func (s *userService) GetProfile(ctx context.Context, userID int64) (ProfileResult, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ProfileResult{}, NewServiceError(constants.ErrCodeUserNotFound, err)
		}
		return ProfileResult{}, NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	count, err := s.labelRepo.CountByUserID(userID)
	if err != nil {
		return ProfileResult{}, NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	return ProfileResult{
		Email:      user.Email,
		PublicID:   user.PublicID,
		Credits:    user.Credits,
		LabelCount: count,
		CreatedAt:  user.CreatedAt,
	}, nil
}
