package model

import (
	"time"

	"github.com/google/uuid"
)

// ListModel mirrors the 'lists' table.
type ListModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID     uuid.UUID `gorm:"type:uuid;index"`
	Name        string    `gorm:"type:varchar(255);not null;index:idx_lists_name"`
	Description string    `gorm:"type:text"`
	Icon        string    `gorm:"type:varchar(255)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Tasks []TaskModel `gorm:"foreignKey:ListID"`
}

// TableName explicitly sets the table name for GORM.
func (ListModel) TableName() string {
	return "lists"
}
