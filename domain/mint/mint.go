package mint

import (
	"github.com/strategic-club/commerce-api/base/ctx"
	"github.com/strategic-club/commerce-api/domain"
)

// Mint is a fixed-price sale commitment with decrementing inventory. Resolved
// records stay stored with IsActive=false.
type Mint struct {
	NftContract domain.Address `json:"nftContract" bson:"nftContract"`
	TokenId     domain.TokenId `json:"tokenId" bson:"tokenId"`
	// NftAmount is the remaining sellable quantity. Zero is the ERC721 sentinel.
	NftAmount     int64          `json:"nftAmount" bson:"nftAmount"`
	Erc20Contract domain.Address `json:"erc20Contract" bson:"erc20Contract"`
	Erc20Amount   string         `json:"erc20Amount" bson:"erc20Amount"`
	IsActive      bool           `json:"isActive" bson:"isActive"`
}

// TokenType derives the asset type from the remaining-amount sentinel. It is
// only meaningful on live records: resolved ERC1155 mints also end at zero.
func (m *Mint) TokenType() domain.TokenType {
	if m.NftAmount == 0 {
		return domain.TokenType721
	}
	return domain.TokenType1155
}

func (m *Mint) AssetKey() domain.AssetKey {
	return domain.AssetKey{NftContract: m.NftContract, TokenId: m.TokenId}
}

type CreateMintPayload struct {
	NftContract   domain.Address   `json:"nftContract" validate:"required"`
	TokenId       domain.TokenId   `json:"tokenId" validate:"required"`
	TokenType     domain.TokenType `json:"tokenType" validate:"required"`
	NftAmount     int64            `json:"nftAmount"`
	Erc20Contract domain.Address   `json:"erc20Contract" validate:"required"`
	Erc20Amount   string           `json:"erc20Amount" validate:"required"`
}

type Repo interface {
	FindOne(ctx.Ctx, domain.AssetKey) (*Mint, error)
	FindLive(ctx.Ctx, domain.AssetKey) (*Mint, error)
	Create(ctx.Ctx, *Mint) error
	Update(ctx.Ctx, *Mint) error
	ReservedAmount(ctx.Ctx, domain.AssetKey) (int64, error)
}

type UseCase interface {
	CreateMint(ctx.Ctx, *CreateMintPayload) (*Mint, error)
	RemoveMint(ctx.Ctx, domain.AssetKey) error
	Mint(c ctx.Ctx, telegramId domain.TelegramId, key domain.AssetKey, buyer domain.Address, quantity int64) (*Mint, error)
	GetMint(ctx.Ctx, domain.AssetKey) (*Mint, error)
	IsActive(ctx.Ctx, domain.AssetKey) (bool, error)
}
