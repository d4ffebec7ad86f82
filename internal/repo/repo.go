package repo

import (
	"github.com/ESChernov/steamrent/internal/pg"
	accountrepo "github.com/ESChernov/steamrent/internal/repo/account-repo"
	activityrepo "github.com/ESChernov/steamrent/internal/repo/activity-repo"
	"github.com/ESChernov/steamrent/internal/service/rentalservice"
)

type Repositories struct {
	AccountRepo  rentalservice.AccountRepo
	ActivityRepo rentalservice.ActivityRepo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		AccountRepo:  accountrepo.New(conn, txManager),
		ActivityRepo: activityrepo.New(conn),
	}
}
