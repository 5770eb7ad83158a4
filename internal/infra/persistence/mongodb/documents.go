package mongodb

import (
	"time"

	"tasker/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type accountDocument struct {
	ID            primitive.ObjectID   `bson:"_id,omitempty"`
	Username      string               `bson:"username"`
	Email         string               `bson:"email"`
	EmailIndex    string               `bson:"email_index"`
	Authorization authorizationDoc     `bson:"authorization"`
	Lists         []primitive.ObjectID `bson:"lists,omitempty"`
	CreatedAt     time.Time            `bson:"created_at"`
	UpdatedAt     time.Time            `bson:"updated_at"`
}

type authorizationDoc struct {
	Password        passwordDoc `bson:"password"`
	TwoFactorSecret string      `bson:"two_factor_secret,omitempty"`
	OAuth           oauthDoc    `bson:"oauth,omitempty"`
	APIKeys         []string    `bson:"api_keys,omitempty"`
}

type passwordDoc struct {
	Hash  string `bson:"hash"`
	Nonce string `bson:"nonce"`
}

type oauthDoc struct {
	Google   string `bson:"google,omitempty"`
	Facebook string `bson:"facebook,omitempty"`
	Github   string `bson:"github,omitempty"`
}

func toAccountDocument(a *entity.Account) *accountDocument {
	return &accountDocument{
		Username:   a.Username,
		Email:      a.EncryptedEmail,
		EmailIndex: a.EmailIndex,
		Authorization: authorizationDoc{
			Password:        passwordDoc{Hash: a.PasswordHash, Nonce: a.PasswordNonce},
			TwoFactorSecret: a.Auth.TwoFactorSecret,
			OAuth: oauthDoc{
				Google:   a.Auth.GoogleID,
				Facebook: a.Auth.FacebookID,
				Github:   a.Auth.GithubID,
			},
			APIKeys: a.Auth.APIKeys,
		},
		Lists:     toObjectIDs(a.ListIDs),
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func (d *accountDocument) toEntity() *entity.Account {
	listIDs := make([]string, 0, len(d.Lists))
	for _, id := range d.Lists {
		listIDs = append(listIDs, id.Hex())
	}

	return &entity.Account{
		ID:             d.ID.Hex(),
		Username:       d.Username,
		EncryptedEmail: d.Email,
		EmailIndex:     d.EmailIndex,
		PasswordHash:   d.Authorization.Password.Hash,
		PasswordNonce:  d.Authorization.Password.Nonce,
		Auth: entity.AuthExtensions{
			GoogleID:        d.Authorization.OAuth.Google,
			FacebookID:      d.Authorization.OAuth.Facebook,
			GithubID:        d.Authorization.OAuth.Github,
			TwoFactorSecret: d.Authorization.TwoFactorSecret,
			APIKeys:         d.Authorization.APIKeys,
		},
		ListIDs:   listIDs,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

// toObjectIDs drops ids that are not ObjectID hex; lists only ever live in this store.
func toObjectIDs(ids []string) []primitive.ObjectID {
	out := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			continue
		}
		out = append(out, oid)
	}

	return out
}
