package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/strategic-club/commerce-api/base/ctx"
	"github.com/strategic-club/commerce-api/domain"
	"github.com/strategic-club/commerce-api/domain/mint"
	"github.com/strategic-club/commerce-api/service/query"
)

type impl struct {
	q query.Mongo
}

func New(q query.Mongo) mint.Repo {
	return &impl{q}
}

func selector(key domain.AssetKey) bson.M {
	key = key.ToLower()
	return bson.M{"nftContract": key.NftContract, "tokenId": key.TokenId}
}

func (im *impl) FindOne(c ctx.Ctx, key domain.AssetKey) (*mint.Mint, error) {
	res := &mint.Mint{}
	if err := im.q.FindOne(c, domain.TableMints, selector(key), res); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	}
	return res, nil
}

func (im *impl) FindLive(c ctx.Ctx, key domain.AssetKey) (*mint.Mint, error) {
	res, err := im.FindOne(c, key)
	if err != nil {
		return nil, err
	}
	if !res.IsActive {
		return nil, domain.ErrNotFound
	}
	return res, nil
}

func (im *impl) Create(c ctx.Ctx, value *mint.Mint) error {
	if err := im.q.Upsert(c, domain.TableMints, selector(value.AssetKey()), value); err != nil {
		c.WithField("err", err).Error("q.Upsert failed")
		return err
	}
	return nil
}

func (im *impl) Update(c ctx.Ctx, value *mint.Mint) error {
	return im.Create(c, value)
}

func (im *impl) ReservedAmount(c ctx.Ctx, key domain.AssetKey) (int64, error) {
	res, err := im.FindLive(c, key)
	if err == domain.ErrNotFound {
		return 0, nil
	} else if err != nil {
		return 0, err
	}
	if res.NftAmount == 0 {
		return 1, nil
	}
	return res.NftAmount, nil
}
