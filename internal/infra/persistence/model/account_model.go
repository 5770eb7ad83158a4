// Package model holds the relational schema used by the postgres store.
package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	IndexAccountUsername   = "idx_accounts_username"
	IndexAccountEmailIndex = "idx_accounts_email_index"
)

// AccountModel mirrors the 'accounts' table. IDs are generated by the application.
type AccountModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username        string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_accounts_username"`
	EncryptedEmail  string    `gorm:"type:text;not null"`
	EmailIndex      string    `gorm:"type:char(64);not null;uniqueIndex:idx_accounts_email_index"`
	PasswordHash    string    `gorm:"type:varchar(72);not null"`
	PasswordNonce   string    `gorm:"type:varchar(64);not null"`
	GoogleID        string    `gorm:"type:varchar(255)"`
	FacebookID      string    `gorm:"type:varchar(255)"`
	GithubID        string    `gorm:"type:varchar(255)"`
	TwoFactorSecret string    `gorm:"type:varchar(255)"`
	APIKeys         []string  `gorm:"type:text;serializer:json"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Lists []ListModel `gorm:"foreignKey:OwnerID"`
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}
