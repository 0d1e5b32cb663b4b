package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/strategic-club/commerce-api/base/ctx"
	"github.com/strategic-club/commerce-api/domain"
	"github.com/strategic-club/commerce-api/domain/settings"
	"github.com/strategic-club/commerce-api/service/query"
)

type impl struct {
	q query.Mongo
}

func New(q query.Mongo) settings.Repo {
	return &impl{q}
}

func (im *impl) Get(c ctx.Ctx, key string) (string, error) {
	res := &settings.Setting{}
	if err := im.q.FindOne(c, domain.TableSettings, bson.M{"key": key}, res); err == query.ErrNotFound {
		return "", domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).Error("q.FindOne failed")
		return "", err
	}
	return res.Value, nil
}

func (im *impl) Set(c ctx.Ctx, key, value string) error {
	if err := im.q.Upsert(c, domain.TableSettings, bson.M{"key": key}, &settings.Setting{Key: key, Value: value}); err != nil {
		c.WithField("err", err).Error("q.Upsert failed")
		return err
	}
	return nil
}
