package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/strategic-club/commerce-api/base/ctx"
	"github.com/strategic-club/commerce-api/domain"
	"github.com/strategic-club/commerce-api/domain/tgflag"
	"github.com/strategic-club/commerce-api/service/query"
)

type impl struct {
	q query.Mongo
}

func New(q query.Mongo) tgflag.Repo {
	return &impl{q}
}

func selector(key tgflag.Key) bson.M {
	return bson.M{
		"telegramId":  key.TelegramId,
		"nftContract": key.NftContract.ToLower(),
		"tokenId":     key.TokenId,
	}
}

func (im *impl) IsSet(c ctx.Ctx, key tgflag.Key) (bool, error) {
	res := &tgflag.Flag{}
	if err := im.q.FindOne(c, domain.TableTgFlags, selector(key), res); err == query.ErrNotFound {
		return false, nil
	} else if err != nil {
		c.WithField("err", err).Error("q.FindOne failed")
		return false, err
	}
	return res.IsSet, nil
}

func (im *impl) Set(c ctx.Ctx, key tgflag.Key) error {
	value := &tgflag.Flag{
		TelegramId:  key.TelegramId,
		NftContract: key.NftContract.ToLower(),
		TokenId:     key.TokenId,
		IsSet:       true,
	}
	if err := im.q.Upsert(c, domain.TableTgFlags, selector(key), value); err != nil {
		c.WithField("err", err).Error("q.Upsert failed")
		return err
	}
	return nil
}

func (im *impl) Unset(c ctx.Ctx, key tgflag.Key) error {
	// keep the record, a cleared flag stays queryable
	if err := im.q.CustomPatch(c, domain.TableTgFlags, selector(key), bson.M{"$set": bson.M{"isSet": false}}, false); err != nil && err != query.ErrNotFound {
		c.WithField("err", err).Error("q.CustomPatch failed")
		return err
	}
	return nil
}
