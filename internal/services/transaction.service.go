package services

import (
	"context"

	"fleetcheck/internal/database"
	"fleetcheck/internal/logger"

	"gorm.io/gorm"
)

type txContextKey struct{}

// GetTransaction returns the transaction stored in the context, if any.
// Repositories route their statements through it so multi-table writes
// share one transactional connection.
func GetTransaction(ctx context.Context) (*gorm.DB, bool) {
	tx, ok := ctx.Value(txContextKey{}).(*gorm.DB)
	return tx, ok
}

type TransactionService struct {
	db  database.DB
	log logger.Logger
}

func NewTransactionService(db database.DB) *TransactionService {
	return &TransactionService{
		db:  db,
		log: logger.New("TransactionService"),
	}
}

// Execute runs fn inside a single transaction. The transaction is placed in
// the context passed to fn; any error (or panic) rolls the whole thing back
// and the connection is always released.
func (s *TransactionService) Execute(ctx context.Context, fn func(ctx context.Context) error) error {
	log := s.log.Function("Execute")

	tx := s.db.SQLWithContext(ctx).Begin()
	if tx.Error != nil {
		return log.Err("failed to begin transaction", tx.Error)
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(context.WithValue(ctx, txContextKey{}, tx)); err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return log.Err("failed to commit transaction", err)
	}

	return nil
}
