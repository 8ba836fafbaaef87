package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/inkmap/inkmap/ink"
	"github.com/inkmap/inkmap/models"
	"github.com/inkmap/inkmap/store"
)

func (s *PostgresInkmapStore) EnsureInkAccount(ctx context.Context, userID string, initial int) error {
	account := models.InkAccount{
		UserID:      userID,
		Ink:         initial,
		LastUpdated: time.Now().UTC(),
	}
	// ON CONFLICT DO NOTHING: a second login must not reset the balance.
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "user_id"}}, DoNothing: true}).
		Create(&account).Error
}

func (s *PostgresInkmapStore) SettleInkBalance(ctx context.Context, userID string, policy ink.Policy) (int, error) {
	var balance int
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		account, err := lockInkAccount(tx, userID)
		if err != nil {
			return err
		}
		balance, err = settleLocked(tx, account, policy)
		return err
	})
	if err != nil {
		return 0, err
	}
	return balance, nil
}

// lockInkAccount takes the row-level exclusive lock that serializes all
// per-user ink mutations. Accounts are independent, so there is no
// cross-user contention.
func lockInkAccount(tx *gorm.DB, userID string) (*models.InkAccount, error) {
	var account models.InkAccount
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ?", userID).
		First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}
	return &account, nil
}

// settleLocked applies accrued regeneration to a locked account row and
// writes it back only when something actually changed.
func settleLocked(tx *gorm.DB, account *models.InkAccount, policy ink.Policy) (int, error) {
	settled, updated := ink.Settle(account.Ink, account.LastUpdated, time.Now().UTC(), policy)
	if settled == account.Ink && updated.Equal(account.LastUpdated) {
		return settled, nil
	}
	err := tx.Model(&models.InkAccount{}).
		Where("user_id = ?", account.UserID).
		Updates(map[string]any{"ink": settled, "last_updated": updated}).Error
	if err != nil {
		return 0, err
	}
	account.Ink = settled
	account.LastUpdated = updated
	return settled, nil
}

// spendInk settles then debits inside the caller's transaction. On
// insufficient funds the transaction is rolled back by the returned
// error, leaving the settled-but-not-debited state unwritten too — the
// whole operation is a no-op.
func spendInk(tx *gorm.DB, userID string, amount int, policy ink.Policy) (int, error) {
	account, err := lockInkAccount(tx, userID)
	if err != nil {
		return 0, err
	}
	remaining, updated, ok := ink.Spend(account.Ink, account.LastUpdated, time.Now().UTC(), amount, policy)
	if !ok {
		return 0, store.ErrInsufficientInk
	}
	err = tx.Model(&models.InkAccount{}).
		Where("user_id = ?", userID).
		Updates(map[string]any{"ink": remaining, "last_updated": updated}).Error
	if err != nil {
		return 0, err
	}
	return remaining, nil
}
