package repository

import (
	"time"

	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/strategic-club/commerce-api/base/ctx"
	"github.com/strategic-club/commerce-api/base/database/mongoclient"
	hcdomain "github.com/strategic-club/commerce-api/domain/healthcheck"
)

type impl struct {
	mgoClient *mongoclient.Client
}

func New(mgoClient *mongoclient.Client) hcdomain.HealthCheckRepo {
	return &impl{mgoClient: mgoClient}
}

func (im *impl) PingDB(context ctx.Ctx) error {
	ctx, cancel := ctx.WithTimeout(context, 2*time.Second)
	defer cancel()
	if err := im.mgoClient.Ping(ctx, readpref.Primary()); err != nil {
		context.WithField("err", err).Error("ping mongo error")
		return err
	}
	return nil
}
