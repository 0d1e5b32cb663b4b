package commitment

import (
	"github.com/strategic-club/commerce-api/base/ctx"
	"github.com/strategic-club/commerce-api/domain"
)

// Reserver reports the quantity of an asset an engine currently holds under
// live commitments. ERC721 reservations report 1, ERC1155 reservations the
// committed amount. The withdrawal guard sums all registered reservers before
// releasing inventory.
type Reserver interface {
	ReservedAmount(ctx.Ctx, domain.AssetKey) (int64, error)
}
