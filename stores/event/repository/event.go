package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/strategic-club/commerce-api/base/ctx"
	"github.com/strategic-club/commerce-api/domain"
	"github.com/strategic-club/commerce-api/domain/event"
	"github.com/strategic-club/commerce-api/service/query"
)

type impl struct {
	q query.Mongo
}

func New(q query.Mongo) event.Repo {
	return &impl{q}
}

func (im *impl) Insert(c ctx.Ctx, value *event.Event) error {
	if err := im.q.Insert(c, domain.TableEvents, value); err != nil {
		c.WithField("err", err).Error("q.Insert failed")
		return err
	}
	return nil
}

func (im *impl) FindAll(c ctx.Ctx, optFns ...event.FindAllOptionsFunc) ([]event.Event, error) {
	opts, err := event.GetFindAllOptions(optFns...)
	if err != nil {
		return nil, err
	}

	offset := 0
	limit := 0
	if opts.Offset != nil {
		offset = int(*opts.Offset)
	}
	if opts.Limit != nil {
		limit = int(*opts.Limit)
	}

	qry := bson.M{"type": bson.M{"$exists": true}}
	if opts.Type != nil {
		qry["type"] = *opts.Type
	}

	res := []event.Event{}
	if err := im.q.Search(c, domain.TableEvents, offset, limit, "-createdAt", qry, &res); err != nil {
		c.WithField("err", err).Error("q.Search failed")
		return nil, err
	}
	return res, nil
}
