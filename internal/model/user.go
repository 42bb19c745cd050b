package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID        int64           `gorm:"column:id;primaryKey;autoIncrement"`
	Email     string          `gorm:"column:email;type:varchar(254);not null;uniqueIndex"`
	PublicID  string          `gorm:"column:public_id;type:char(36);not null;uniqueIndex"`
	Credits   decimal.Decimal `gorm:"column:credits;type:decimal(10,2);not null;default:0"`
	CreatedAt time.Time       `gorm:"column:created_at;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time       `gorm:"column:updated_at;default:CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP"`
}

func (User) TableName() string {
	return "users"
}

// Namespace is the external-facing prefix labels are coded under, the first
// eight characters of the public id.
func (u User) Namespace() string {
	if len(u.PublicID) < 8 {
		return u.PublicID
	}
	return u.PublicID[:8]
}
