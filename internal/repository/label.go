package repository

import (
	"context"
	"errors"

	"github.com/go-sql-driver/mysql"
	"github.com/labelmint/labelmint/internal/model"
	"gorm.io/gorm"
)

var ErrLabelCodeExists = errors.New("LABEL_CODE_EXISTS")

const listLimit = 1000

type LabelFilter struct {
	Name     string
	SkuType  string
	Category string
}

type LabelRepository interface {
	// MaxUnitIndex returns the highest allocated sequence index among the
	// user's labels whose code starts with prefix, 0 when none exist.
	// Called inside WithTx while the user row is locked.
	MaxUnitIndex(ctx context.Context, userID int64, prefix string) (int, error)
	CreateBatch(ctx context.Context, labels []model.Label) error
	ListByUserID(userID int64, filter LabelFilter) ([]model.Label, error)
	CountByUserID(userID int64) (int64, error)
}

type label struct {
	db *gorm.DB
}

func NewLabelRepository(db *gorm.DB) LabelRepository {
	return &label{db: db}
}

func (r *label) MaxUnitIndex(ctx context.Context, userID int64, prefix string) (int, error) {
	var max int
	err := GetTx(ctx, r.db).Model(&model.Label{}).
		Where("user_id = ? AND code LIKE ?", userID, prefix+"%").
		Select("COALESCE(MAX(unit_index), 0)").
		Scan(&max).Error
	if err != nil {
		return 0, err
	}
	return max, nil
}

func (r *label) CreateBatch(ctx context.Context, labels []model.Label) error {
	db := GetTx(ctx, r.db)
	err := db.Create(&labels).Error
	if err == nil {
		return nil
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return ErrLabelCodeExists
	}

	return err
}

func (r *label) ListByUserID(userID int64, filter LabelFilter) ([]model.Label, error) {
	query := r.db.Where("user_id = ?", userID)

	if filter.Name != "" {
		term := "%" + filter.Name + "%"
		query = query.Where("LOWER(name) LIKE LOWER(?) OR LOWER(code) LIKE LOWER(?)", term, term)
	}
	if filter.SkuType != "" {
		query = query.Where("LOWER(sku_type) LIKE LOWER(?)", "%"+filter.SkuType+"%")
	}
	if filter.Category != "" {
		query = query.Where("LOWER(category) LIKE LOWER(?)", "%"+filter.Category+"%")
	}

	var labels []model.Label
	err := query.Order("id DESC").Limit(listLimit).Find(&labels).Error
	if err != nil {
		return nil, err
	}
	return labels, nil
}

func (r *label) CountByUserID(userID int64) (int64, error) {
	var count int64
	err := r.db.Model(&model.Label{}).Where("user_id = ?", userID).Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
