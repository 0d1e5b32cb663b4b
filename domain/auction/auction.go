package auction

import (
	"github.com/strategic-club/commerce-api/base/ctx"
	"github.com/strategic-club/commerce-api/domain"
)

type State int

const (
	StateInactive  State = 0
	StateActive    State = 1
	StateCompleted State = 2
)

// Auction is a time-boxed commitment over a single escrowed asset. Records are
// never deleted: State is the authoritative liveness signal and resolved
// records stay queryable.
type Auction struct {
	NftContract domain.Address `json:"nftContract" bson:"nftContract"`
	TokenId     domain.TokenId `json:"tokenId" bson:"tokenId"`
	// NftAmount is the escrowed quantity. Zero is the ERC721 sentinel.
	NftAmount                int64             `json:"nftAmount" bson:"nftAmount"`
	HighestBidder            domain.Address    `json:"highestBidder" bson:"highestBidder"`
	HighestTelegramId        domain.TelegramId `json:"highestTelegramId" bson:"highestTelegramId"`
	Erc20Contract            domain.Address    `json:"erc20Contract" bson:"erc20Contract"`
	Erc20StartPrice          string            `json:"erc20StartPrice" bson:"erc20StartPrice"`
	Erc20MinimumBidIncrement string            `json:"erc20MinimumBidIncrement" bson:"erc20MinimumBidIncrement"`
	Erc20HighestBid          string            `json:"erc20HighestBid" bson:"erc20HighestBid"`
	StartTime                int64             `json:"startTime" bson:"startTime"`
	EndTime                  int64             `json:"endTime" bson:"endTime"`
	ExtendTimeSec            int64             `json:"extendTimeSec" bson:"extendTimeSec"`
	State                    State             `json:"state" bson:"state"`
}

func (a *Auction) TokenType() domain.TokenType {
	if a.NftAmount == 0 {
		return domain.TokenType721
	}
	return domain.TokenType1155
}

func (a *Auction) AssetKey() domain.AssetKey {
	return domain.AssetKey{NftContract: a.NftContract, TokenId: a.TokenId}
}

func (a *Auction) IsExpiredAt(now int64) bool {
	return a.State == StateActive && now >= a.EndTime
}

func (a *Auction) IsActiveAt(now int64) bool {
	return a.State == StateActive && now < a.EndTime
}

// CreateAuctionPayload carries the owner-side auction terms.
type CreateAuctionPayload struct {
	NftContract   domain.Address   `json:"nftContract" validate:"required"`
	TokenId       domain.TokenId   `json:"tokenId" validate:"required"`
	TokenType     domain.TokenType `json:"tokenType" validate:"required"`
	NftAmount     int64            `json:"nftAmount"`
	Erc20Contract domain.Address   `json:"erc20Contract" validate:"required"`
	StartPrice    string           `json:"erc20StartPrice" validate:"required"`
	MinIncrement  string           `json:"erc20MinimumBidIncrement" validate:"required"`
	DurationSec   int64            `json:"durationSec" validate:"required"`
	ExtendTimeSec int64            `json:"extendTimeSec"`
}

type Repo interface {
	FindOne(ctx.Ctx, domain.AssetKey) (*Auction, error)
	// FindLive returns the live (ACTIVE) auction for the key, domain.ErrNotFound otherwise.
	FindLive(ctx.Ctx, domain.AssetKey) (*Auction, error)
	Create(ctx.Ctx, *Auction) error
	Update(ctx.Ctx, *Auction) error
	ReservedAmount(ctx.Ctx, domain.AssetKey) (int64, error)
}

type UseCase interface {
	CreateAuction(ctx.Ctx, *CreateAuctionPayload) (*Auction, error)
	RemoveAuction(ctx.Ctx, domain.AssetKey) error
	Bid(c ctx.Ctx, telegramId domain.TelegramId, key domain.AssetKey, bidder domain.Address, amount string) (*Auction, error)
	Complete(c ctx.Ctx, telegramId domain.TelegramId, key domain.AssetKey, caller domain.Address) (*Auction, error)
	GetAuction(ctx.Ctx, domain.AssetKey) (*Auction, error)
	IsActive(ctx.Ctx, domain.AssetKey) (bool, error)
	IsExpired(ctx.Ctx, domain.AssetKey) (bool, error)
	IsCompleted(ctx.Ctx, domain.AssetKey) (bool, error)
}
