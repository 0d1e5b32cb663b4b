package withdrawal

import (
	"github.com/strategic-club/commerce-api/base/ctx"
	"github.com/strategic-club/commerce-api/domain"
)

// UseCase releases escrowed inventory back to the service owner. Releases are
// guarded: inventory reserved by any live commitment never leaves escrow.
type UseCase interface {
	WithdrawErc721(ctx.Ctx, domain.AssetKey) error
	WithdrawErc1155(c ctx.Ctx, key domain.AssetKey, amount int64) error
}
