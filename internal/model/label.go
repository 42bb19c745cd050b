package model

import "time"

// Label is one minted inventory label. Code is globally unique; UnitIndex is
// the per-scope sequence number embedded in the code suffix.
type Label struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement"`
	UserID    int64     `gorm:"column:user_id;not null;index"`
	Name      string    `gorm:"column:name;type:varchar(120);not null"`
	SkuType   string    `gorm:"column:sku_type;type:varchar(80);not null"`
	Category  string    `gorm:"column:category;type:varchar(80);not null"`
	UnitIndex int       `gorm:"column:unit_index;not null"`
	Code      string    `gorm:"column:code;type:varchar(300);not null;uniqueIndex"`
	CreatedAt time.Time `gorm:"column:created_at;default:CURRENT_TIMESTAMP"`
}

func (Label) TableName() string {
	return "labels"
}
