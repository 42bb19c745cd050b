package repository

import (
	"context"
	"errors"

	"github.com/go-sql-driver/mysql"
	"github.com/labelmint/labelmint/internal/model"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrUserExists   = errors.New("USER_EXISTS")
	ErrUserNotFound = errors.New("USER_NOT_FOUND")
)

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id int64) (model.User, error)
	// FindByIDForUpdate locks the user row for the duration of the
	// surrounding transaction. Must only be called inside WithTx.
	FindByIDForUpdate(ctx context.Context, id int64) (model.User, error)
	UpdateCredits(ctx context.Context, id int64, credits decimal.Decimal) error
}

type user struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &user{db: db}
}

func (r *user) Create(ctx context.Context, u *model.User) error {
	db := GetTx(ctx, r.db)
	err := db.Create(u).Error
	if err == nil {
		return nil
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return ErrUserExists
	}

	return err
}

func (r *user) FindByID(ctx context.Context, id int64) (model.User, error) {
	var u model.User
	err := GetTx(ctx, r.db).Where("id = ?", id).First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.User{}, ErrUserNotFound
		}
		return model.User{}, err
	}
	return u, nil
}

func (r *user) FindByIDForUpdate(ctx context.Context, id int64) (model.User, error) {
	var u model.User
	err := GetTx(ctx, r.db).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.User{}, ErrUserNotFound
		}
		return model.User{}, err
	}
	return u, nil
}

func (r *user) UpdateCredits(ctx context.Context, id int64, credits decimal.Decimal) error {
	return GetTx(ctx, r.db).Model(&model.User{}).
		Where("id = ?", id).
		Update("credits", credits).Error
}
