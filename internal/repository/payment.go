package repository

import (
	"context"
	"errors"

	"github.com/go-sql-driver/mysql"
	"github.com/labelmint/labelmint/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrPaymentExists   = errors.New("PAYMENT_EXISTS")
	ErrPaymentNotFound = errors.New("PAYMENT_NOT_FOUND")
)

type PaymentRepository interface {
	Create(ctx context.Context, payment *model.Payment) error
	// FindByOrderIDForUpdate locks the payment row keyed by the gateway
	// order id. Must only be called inside WithTx.
	FindByOrderIDForUpdate(ctx context.Context, orderID string) (model.Payment, error)
	// FindByOrderIDAndUserForUpdate additionally scopes the lookup to the
	// requesting user, for the client-callback path.
	FindByOrderIDAndUserForUpdate(ctx context.Context, orderID string, userID int64) (model.Payment, error)
	Update(ctx context.Context, payment *model.Payment) error
	ListByUserID(userID int64) ([]model.Payment, error)
}

type payment struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &payment{db: db}
}

func (r *payment) Create(ctx context.Context, p *model.Payment) error {
	db := GetTx(ctx, r.db)
	err := db.Create(p).Error
	if err == nil {
		return nil
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return ErrPaymentExists
	}

	return err
}

func (r *payment) FindByOrderIDForUpdate(ctx context.Context, orderID string) (model.Payment, error) {
	var p model.Payment
	err := GetTx(ctx, r.db).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("razorpay_order_id = ?", orderID).
		First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Payment{}, ErrPaymentNotFound
		}
		return model.Payment{}, err
	}
	return p, nil
}

func (r *payment) FindByOrderIDAndUserForUpdate(ctx context.Context, orderID string, userID int64) (model.Payment, error) {
	var p model.Payment
	err := GetTx(ctx, r.db).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("razorpay_order_id = ? AND user_id = ?", orderID, userID).
		First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Payment{}, ErrPaymentNotFound
		}
		return model.Payment{}, err
	}
	return p, nil
}

func (r *payment) Update(ctx context.Context, p *model.Payment) error {
	return GetTx(ctx, r.db).Save(p).Error
}

func (r *payment) ListByUserID(userID int64) ([]model.Payment, error) {
	var payments []model.Payment
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&payments).Error
	if err != nil {
		return nil, err
	}
	return payments, nil
}
