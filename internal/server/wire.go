package server

import (
	"staffhub/internal/config"
	"staffhub/internal/handler"
	"staffhub/internal/repository"
	"staffhub/internal/service"

	"go.mongodb.org/mongo-driver/mongo"
)

// Repositories bundles every persistence component.
type Repositories struct {
	Users       repository.IUserRepository
	Payroll     repository.IPayrollRepository
	Payments    repository.IPaymentRepository
	WorkRecords repository.IWorkRecordRepository
}

// Services bundles the business-logic layer.
type Services struct {
	Auth        *service.AuthService
	Users       *service.UserService
	Payroll     *service.PayrollService
	WorkRecords *service.WorkRecordService
}

// Handlers bundles the HTTP layer.
type Handlers struct {
	Auth        *handler.AuthHandler
	Users       *handler.UserHandler
	Payroll     *handler.PayrollHandler
	WorkRecords *handler.WorkRecordHandler
}

func InitRepositories(db *mongo.Database) *Repositories {
	return &Repositories{
		Users:       repository.NewUserRepository(db),
		Payroll:     repository.NewPayrollRepository(db),
		Payments:    repository.NewPaymentRepository(db),
		WorkRecords: repository.NewWorkRecordRepository(db),
	}
}

func InitServices(cfg *config.Config, repos *Repositories) *Services {
	return &Services{
		Auth:        service.NewAuthService(cfg),
		Users:       service.NewUserService(repos.Users),
		Payroll:     service.NewPayrollService(repos.Payroll, repos.Payments, repos.Users),
		WorkRecords: service.NewWorkRecordService(repos.WorkRecords),
	}
}

func InitHandlers(services *Services) *Handlers {
	return &Handlers{
		Auth:        handler.NewAuthHandler(services.Auth, services.Users),
		Users:       handler.NewUserHandler(services.Users, services.Payroll),
		Payroll:     handler.NewPayrollHandler(services.Payroll),
		WorkRecords: handler.NewWorkRecordHandler(services.WorkRecords),
	}
}
