package store

import (
	"github.com/fintrack/fintrack/internal/logger"
)

// Repositories aggregates every repository over one shared connection.
type Repositories struct {
	UserRepository
	CategoryRepository
	AccountRepository
	TransactionRepository
	GoalRepository
	ReminderRepository
}

// NewRepositories wires all repositories to the given database handle.
func NewRepositories(db *DB, log *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository:        NewUserRepository(db, log),
		CategoryRepository:    NewCategoryRepository(db, log),
		AccountRepository:     NewAccountRepository(db, log),
		TransactionRepository: NewTransactionRepository(db, log),
		GoalRepository:        NewGoalRepository(db, log),
		ReminderRepository:    NewReminderRepository(db, log),
	}
}
