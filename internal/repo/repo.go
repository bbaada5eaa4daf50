package repo

import (
	"github.com/watchearn/watchearn/internal/pg"
	depositrepo "github.com/watchearn/watchearn/internal/repo/deposit-repo"
	filerepo "github.com/watchearn/watchearn/internal/repo/file-repo"
	progressrepo "github.com/watchearn/watchearn/internal/repo/progress-repo"
	sessionrepo "github.com/watchearn/watchearn/internal/repo/session-repo"
	userrepo "github.com/watchearn/watchearn/internal/repo/user-repo"
	withdrawalrepo "github.com/watchearn/watchearn/internal/repo/withdrawal-repo"
)

type Repositories struct {
	UserRepo       *userrepo.Repository
	SessionRepo    *sessionrepo.Repository
	DepositRepo    *depositrepo.Repository
	ProgressRepo   *progressrepo.Repository
	WithdrawalRepo *withdrawalrepo.Repository
	FileRepo       *filerepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		UserRepo:       userrepo.New(conn),
		SessionRepo:    sessionrepo.New(conn),
		DepositRepo:    depositrepo.New(conn, txManager),
		ProgressRepo:   progressrepo.New(conn, txManager),
		WithdrawalRepo: withdrawalrepo.New(conn),
		FileRepo:       filerepo.New(conn),
	}
}
