package service

import (
	"github.com/fintrack/fintrack/internal/config"
	"github.com/fintrack/fintrack/internal/logger"
	"github.com/fintrack/fintrack/internal/store"
)

// Services aggregates every business service behind one wiring point.
type Services struct {
	AuthService        AuthService
	UserService        UserService
	CategoryService    CategoryService
	AccountService     AccountService
	TransactionService TransactionService
	GoalService        GoalService
	ReminderService    ReminderService
}

// NewServices wires all services to the repositories and configuration.
func NewServices(repositories *store.Repositories, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:     NewAuthService(repositories.UserRepository, cfg.Auth, logger),
		UserService:     NewUserService(repositories.UserRepository, logger),
		CategoryService: NewCategoryService(repositories.CategoryRepository, logger),
		AccountService:  NewAccountService(repositories.AccountRepository, logger),
		TransactionService: NewTransactionService(
			repositories.TransactionRepository,
			repositories.CategoryRepository,
			repositories.AccountRepository,
			logger,
		),
		GoalService:     NewGoalService(repositories.GoalRepository, repositories.AccountRepository, logger),
		ReminderService: NewReminderService(repositories.ReminderRepository, logger),
	}
}
