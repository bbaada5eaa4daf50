package service

import (
	"github.com/watchearn/watchearn/internal/config"
	deposithandlers "github.com/watchearn/watchearn/internal/handlers/deposits"
	filehandlers "github.com/watchearn/watchearn/internal/handlers/files"
	planhandlers "github.com/watchearn/watchearn/internal/handlers/plans"
	withdrawalhandlers "github.com/watchearn/watchearn/internal/handlers/withdrawals"
	"github.com/watchearn/watchearn/internal/pg"
	"github.com/watchearn/watchearn/internal/repo"
	"github.com/watchearn/watchearn/internal/service/authservice"
	"github.com/watchearn/watchearn/internal/service/depositservice"
	"github.com/watchearn/watchearn/internal/service/fileservice"
	"github.com/watchearn/watchearn/internal/service/planservice"
	"github.com/watchearn/watchearn/internal/service/withdrawalservice"
	pkgauth "github.com/watchearn/watchearn/pkg/auth"
)

type Services struct {
	AuthService       *authservice.Service
	DepositService    deposithandlers.Service
	PlanService       planhandlers.Service
	WithdrawalService withdrawalhandlers.Service
	FileService       filehandlers.Service
}

func New(cfg *config.Config, repo *repo.Repositories, txManager pg.TXManager) *Services {
	authService := authservice.New(repo.UserRepo, repo.SessionRepo, &pkgauth.HashService{}, &pkgauth.JWTService{}, cfg.SessionTTL)
	depositService := depositservice.New(repo.DepositRepo, repo.ProgressRepo, txManager, cfg.DepositLock)
	planService := planservice.New(repo.ProgressRepo, repo.DepositRepo, repo.UserRepo, txManager)
	withdrawalService := withdrawalservice.New(repo.ProgressRepo, repo.WithdrawalRepo, txManager)
	fileService := fileservice.New(repo.FileRepo)

	return &Services{
		AuthService:       authService,
		DepositService:    depositService,
		PlanService:       planService,
		WithdrawalService: withdrawalService,
		FileService:       fileService,
	}
}
