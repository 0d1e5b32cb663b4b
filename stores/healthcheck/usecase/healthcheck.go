package usecase

import (
	"github.com/strategic-club/commerce-api/base/ctx"
	hcdomain "github.com/strategic-club/commerce-api/domain/healthcheck"
)

type impl struct {
	repo hcdomain.HealthCheckRepo
}

func New(repo hcdomain.HealthCheckRepo) hcdomain.HealthCheckUsecase {
	return &impl{repo: repo}
}

func (im *impl) Check(context ctx.Ctx) error {
	return im.repo.PingDB(context)
}
