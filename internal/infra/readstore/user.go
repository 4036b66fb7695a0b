package readstore

import (
	"context"
	"errors"

	"laborlink/internal/delivery"
	"laborlink/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserReadStore struct {
	db *pgxpool.Pool
}

func NewUserReadStore(db *pgxpool.Pool) *UserReadStore {
	return &UserReadStore{db: db}
}

func (s *UserReadStore) FindContact(ctx context.Context, userID uuid.UUID) (*delivery.RecipientContact, error) {
	contact := delivery.RecipientContact{UserID: userID}

	var email *string
	err := s.db.QueryRow(ctx,
		"SELECT email, fcm_token FROM users WHERE id = $1",
		userID,
	).Scan(&email, &contact.DeviceToken)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user contact", err)
	}

	if email != nil {
		contact.Email = *email
	}

	return &contact, nil
}
