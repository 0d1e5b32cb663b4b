package settings

import (
	"github.com/strategic-club/commerce-api/base/ctx"
	"github.com/strategic-club/commerce-api/domain"
)

const KeyPaymentErc20Address = "paymentErc20Address"

type Setting struct {
	Key   string `json:"key" bson:"key"`
	Value string `json:"value" bson:"value"`
}

type Repo interface {
	Get(ctx.Ctx, string) (string, error)
	Set(c ctx.Ctx, key, value string) error
}

// UseCase manages the proceeds address payments are settled to.
type UseCase interface {
	GetPaymentAddress(ctx.Ctx) (domain.Address, error)
	// SetPaymentAddress fails with domain.ErrNullAddress on the null identity.
	SetPaymentAddress(ctx.Ctx, domain.Address) error
}
