package healthcheck

import (
	"github.com/strategic-club/commerce-api/base/ctx"
)

type HealthCheckRepo interface {
	PingDB(context ctx.Ctx) error
}

type HealthCheckUsecase interface {
	Check(context ctx.Ctx) error
}
