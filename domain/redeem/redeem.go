package redeem

import (
	"github.com/strategic-club/commerce-api/base/ctx"
	"github.com/strategic-club/commerce-api/domain"
)

// Redeem is a pre-assigned claim reserving an escrowed asset for a single
// recipient. The forward record is keyed by recipient; repositories also keep
// the (nftContract, tokenId) -> recipient reverse index consistent with it.
type Redeem struct {
	Redeemer    domain.Address `json:"redeemer" bson:"redeemer"`
	NftContract domain.Address `json:"nftContract" bson:"nftContract"`
	TokenId     domain.TokenId `json:"tokenId" bson:"tokenId"`
	// NftAmount is the reserved quantity. Zero is the ERC721 sentinel.
	NftAmount     int64          `json:"nftAmount" bson:"nftAmount"`
	Erc20Contract domain.Address `json:"erc20Contract" bson:"erc20Contract"`
	Erc20Amount   string         `json:"erc20Amount" bson:"erc20Amount"`
	IsActive      bool           `json:"isActive" bson:"isActive"`
}

func (r *Redeem) TokenType() domain.TokenType {
	if r.NftAmount == 0 {
		return domain.TokenType721
	}
	return domain.TokenType1155
}

func (r *Redeem) AssetKey() domain.AssetKey {
	return domain.AssetKey{NftContract: r.NftContract, TokenId: r.TokenId}
}

type CreateRedeemPayload struct {
	Redeemer      domain.Address   `json:"redeemer" validate:"required"`
	NftContract   domain.Address   `json:"nftContract" validate:"required"`
	TokenId       domain.TokenId   `json:"tokenId" validate:"required"`
	TokenType     domain.TokenType `json:"tokenType" validate:"required"`
	NftAmount     int64            `json:"nftAmount"`
	Erc20Contract domain.Address   `json:"erc20Contract" validate:"required"`
	Erc20Amount   string           `json:"erc20Amount" validate:"required"`
}

type Repo interface {
	FindByRedeemer(ctx.Ctx, domain.Address) (*Redeem, error)
	// FindLiveByRedeemer returns the recipient's live redeem, domain.ErrNotFound otherwise.
	FindLiveByRedeemer(ctx.Ctx, domain.Address) (*Redeem, error)
	// FindLiveByAsset resolves the reverse index to the live redeem reserving the key.
	FindLiveByAsset(ctx.Ctx, domain.AssetKey) (*Redeem, error)
	Create(ctx.Ctx, *Redeem) error
	Update(ctx.Ctx, *Redeem) error
	ReservedAmount(ctx.Ctx, domain.AssetKey) (int64, error)
}

type UseCase interface {
	CreateRedeem(ctx.Ctx, *CreateRedeemPayload) (*Redeem, error)
	RemoveRedeem(ctx.Ctx, domain.Address) error
	Redeem(c ctx.Ctx, telegramId domain.TelegramId, caller domain.Address) (*Redeem, error)
	GetRedeem(ctx.Ctx, domain.Address) (*Redeem, error)
	GetRedeemer(ctx.Ctx, domain.AssetKey) (domain.Address, error)
}
