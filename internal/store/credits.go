package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/forgeline/brandforge/internal/realtime"
)

// GetCredits returns the user's current credit balance. A user with no
// row has a balance of zero, not an error.
func (s *Store) GetCredits(ctx context.Context, userID string) (int64, error) {
	var balance int64
	err := s.dbConn.GetContext(ctx, &balance,
		`SELECT balance FROM user_credits WHERE user_id = ?`, userID)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("getting credits for %s: %w", userID, err)
	}
	return balance, nil
}

// SetCredits stores the user's new balance and publishes the change so
// open account views update without a refetch. The event carries the
// full balance, matching the last-write-wins reducer on the other end.
func (s *Store) SetCredits(ctx context.Context, userID string, balance int64) error {
	_, err := s.dbConn.ExecContext(ctx,
		`INSERT INTO user_credits (user_id, balance, updated_at)
		 VALUES (?, ?, ?)
		 ON CONFLICT (user_id) DO UPDATE SET balance = excluded.balance, updated_at = excluded.updated_at`,
		userID, balance, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("setting credits for %s: %w", userID, err)
	}

	s.publish("user_credits", realtime.ChangeUpdate, map[string]any{
		"user_id": userID,
		"balance": balance,
	})
	return nil
}

// SpendCredits debits the balance atomically and fails when the user
// cannot afford the amount.
func (s *Store) SpendCredits(ctx context.Context, userID string, amount int64) (int64, error) {
	res, err := s.dbConn.ExecContext(ctx,
		`UPDATE user_credits SET balance = balance - ?, updated_at = ?
		 WHERE user_id = ? AND balance >= ?`,
		amount, time.Now().UTC(), userID, amount)
	if err != nil {
		return 0, fmt.Errorf("spending credits for %s: %w", userID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return 0, fmt.Errorf("insufficient credits for %s", userID)
	}

	balance, err := s.GetCredits(ctx, userID)
	if err != nil {
		return 0, err
	}

	s.publish("user_credits", realtime.ChangeUpdate, map[string]any{
		"user_id": userID,
		"balance": balance,
	})
	return balance, nil
}
