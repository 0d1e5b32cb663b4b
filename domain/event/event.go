package event

import (
	"time"

	"github.com/strategic-club/commerce-api/base/ctx"
	"github.com/strategic-club/commerce-api/base/ptr"
)

type Type string

const (
	TypeAuctionCreated   Type = "AuctionCreated"
	TypeAuctionRemoved   Type = "AuctionRemoved"
	TypeAuctionBid       Type = "AuctionBid"
	TypeAuctionCompleted Type = "AuctionCompleted"

	TypeMintCreated   Type = "MintCreated"
	TypeMintRemoved   Type = "MintRemoved"
	TypeMintCompleted Type = "MintCompleted"

	TypeRedeemCreated   Type = "RedeemCreated"
	TypeRedeemRemoved   Type = "RedeemRemoved"
	TypeRedeemCompleted Type = "RedeemCompleted"

	TypeTelegramIdFlagSet   Type = "TelegramIdFlagSet"
	TypeTelegramIdFlagReset Type = "TelegramIdFlagReset"

	TypeErc721Withdrawn  Type = "ERC721Withdrawn"
	TypeErc1155Withdrawn Type = "ERC1155Withdrawn"

	TypePaymentAddressChanged Type = "PaymentERC20AddressChanged"
)

// Event is a side-channel record for external indexers. It carries the full
// set of changed fields so indexers can reconstruct state without re-querying
// the managers.
type Event struct {
	Type      Type                   `json:"type" bson:"type"`
	Payload   map[string]interface{} `json:"payload" bson:"payload"`
	CreatedAt time.Time              `json:"createdAt" bson:"createdAt"`
}

type FindAllOptions struct {
	Offset *int32 `bson:"-"`
	Limit  *int32 `bson:"-"`
	Type   *Type  `bson:"-"`
}

type FindAllOptionsFunc func(*FindAllOptions) error

func GetFindAllOptions(opts ...FindAllOptionsFunc) (FindAllOptions, error) {
	res := FindAllOptions{}
	for _, opt := range opts {
		if err := opt(&res); err != nil {
			return res, err
		}
	}
	return res, nil
}

func WithPagination(offset, limit int32) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Offset = ptr.Int32(offset)
		options.Limit = ptr.Int32(limit)
		return nil
	}
}

func WithType(t Type) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Type = &t
		return nil
	}
}

type Repo interface {
	Insert(ctx.Ctx, *Event) error
	FindAll(ctx.Ctx, ...FindAllOptionsFunc) ([]Event, error)
}

// Recorder is the write-side used by the engines. Recording is best-effort:
// a failed insert is logged, never surfaced, and never rolls anything back.
type Recorder interface {
	Record(c ctx.Ctx, t Type, payload map[string]interface{})
}

type UseCase interface {
	Recorder
	FindAll(ctx.Ctx, ...FindAllOptionsFunc) ([]Event, error)
}
