package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/strategic-club/commerce-api/base/ctx"
	"github.com/strategic-club/commerce-api/domain"
	"github.com/strategic-club/commerce-api/domain/redeem"
	"github.com/strategic-club/commerce-api/service/query"
)

type impl struct {
	q query.Mongo
}

func New(q query.Mongo) redeem.Repo {
	return &impl{q}
}

func (im *impl) findOne(c ctx.Ctx, qry bson.M) (*redeem.Redeem, error) {
	res := &redeem.Redeem{}
	if err := im.q.FindOne(c, domain.TableRedeems, qry, res); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	}
	return res, nil
}

func (im *impl) FindByRedeemer(c ctx.Ctx, redeemer domain.Address) (*redeem.Redeem, error) {
	return im.findOne(c, bson.M{"redeemer": redeemer.ToLower()})
}

func (im *impl) FindLiveByRedeemer(c ctx.Ctx, redeemer domain.Address) (*redeem.Redeem, error) {
	return im.findOne(c, bson.M{"redeemer": redeemer.ToLower(), "isActive": true})
}

func (im *impl) FindLiveByAsset(c ctx.Ctx, key domain.AssetKey) (*redeem.Redeem, error) {
	key = key.ToLower()
	return im.findOne(c, bson.M{"nftContract": key.NftContract, "tokenId": key.TokenId, "isActive": true})
}

func (im *impl) Create(c ctx.Ctx, value *redeem.Redeem) error {
	if err := im.q.Upsert(c, domain.TableRedeems, bson.M{"redeemer": value.Redeemer.ToLower()}, value); err != nil {
		c.WithField("err", err).Error("q.Upsert failed")
		return err
	}
	return nil
}

func (im *impl) Update(c ctx.Ctx, value *redeem.Redeem) error {
	return im.Create(c, value)
}

func (im *impl) ReservedAmount(c ctx.Ctx, key domain.AssetKey) (int64, error) {
	res, err := im.FindLiveByAsset(c, key)
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
