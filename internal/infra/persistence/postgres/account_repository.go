package postgres

import (
	"context"
	"time"

	"tasker/config"
	"tasker/internal/domain/entity"
	"tasker/internal/domain/repository"
	"tasker/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type accountRepository struct {
	db      *gorm.DB
	timeout time.Duration
}

// NewAccountRepository stores accounts in the accounts table.
func NewAccountRepository(db *gorm.DB, cfg *config.Config) repository.AccountRepository {
	return &accountRepository{db: db, timeout: cfg.Store.Timeout}
}

func (r *accountRepository) Insert(ctx context.Context, account *entity.Account) error {
	const op = "insert account"

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	m := toAccountModel(account)
	m.ID = uuid.New()

	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return classify(op, err)
	}

	account.ID = m.ID.String()
	account.CreatedAt = m.CreatedAt
	account.UpdatedAt = m.UpdatedAt

	return nil
}

func (r *accountRepository) FindOne(ctx context.Context, filter repository.AccountFilter) (*entity.Account, error) {
	const op = "find account"

	column, value, ok := filterColumn(filter)
	if !ok {
		return nil, repository.NotFound(op)
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var m model.AccountModel
	if err := r.db.WithContext(ctx).Preload("Lists").Where(column+" = ?", value).Take(&m).Error; err != nil {
		return nil, classify(op, err)
	}

	return toAccountEntity(&m), nil
}

// filterColumn maps a filter to a column and bind value. ok is false when nothing can match.
func filterColumn(filter repository.AccountFilter) (string, any, bool) {
	switch filter.Field {
	case repository.FieldID:
		id, err := uuid.Parse(filter.Value)
		if err != nil {
			return "", nil, false
		}

		return "id", id, true
	case repository.FieldUsername:
		return "username", filter.Value, true
	case repository.FieldEmailIndex:
		return "email_index", filter.Value, true
	default:
		return "", nil, false
	}
}

func toAccountModel(a *entity.Account) *model.AccountModel {
	return &model.AccountModel{
		Username:        a.Username,
		EncryptedEmail:  a.EncryptedEmail,
		EmailIndex:      a.EmailIndex,
		PasswordHash:    a.PasswordHash,
		PasswordNonce:   a.PasswordNonce,
		GoogleID:        a.Auth.GoogleID,
		FacebookID:      a.Auth.FacebookID,
		GithubID:        a.Auth.GithubID,
		TwoFactorSecret: a.Auth.TwoFactorSecret,
		APIKeys:         a.Auth.APIKeys,
	}
}

func toAccountEntity(m *model.AccountModel) *entity.Account {
	listIDs := make([]string, 0, len(m.Lists))
	for _, l := range m.Lists {
		listIDs = append(listIDs, l.ID.String())
	}

	return &entity.Account{
		ID:             m.ID.String(),
		Username:       m.Username,
		EncryptedEmail: m.EncryptedEmail,
		EmailIndex:     m.EmailIndex,
		PasswordHash:   m.PasswordHash,
		PasswordNonce:  m.PasswordNonce,
		Auth: entity.AuthExtensions{
			GoogleID:        m.GoogleID,
			FacebookID:      m.FacebookID,
			GithubID:        m.GithubID,
			TwoFactorSecret: m.TwoFactorSecret,
			APIKeys:         m.APIKeys,
		},
		ListIDs:   listIDs,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
