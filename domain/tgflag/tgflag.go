package tgflag

import (
	"github.com/strategic-club/commerce-api/base/ctx"
	"github.com/strategic-club/commerce-api/domain"
)

// Flag is the one-shot claim guard for an off-chain identity. ERC721 flags are
// stored under domain.WildcardTokenId and apply contract-wide; ERC1155 flags
// are scoped to a single token id.
type Flag struct {
	TelegramId  domain.TelegramId `json:"telegramId" bson:"telegramId"`
	NftContract domain.Address    `json:"nftContract" bson:"nftContract"`
	TokenId     domain.TokenId    `json:"tokenId" bson:"tokenId"`
	IsSet       bool              `json:"isSet" bson:"isSet"`
}

type Key struct {
	TelegramId  domain.TelegramId
	NftContract domain.Address
	TokenId     domain.TokenId
}

type Repo interface {
	IsSet(ctx.Ctx, Key) (bool, error)
	Set(ctx.Ctx, Key) error
	Unset(ctx.Ctx, Key) error
}

type UseCase interface {
	IsSet(ctx.Ctx, Key) (bool, error)
	// SetFlag fails with domain.TelegramIdFlagAlreadySetError when already set.
	SetFlag(ctx.Ctx, Key) error
	// ResetFlag fails with domain.TelegramIdFlagNotSetError when not set.
	ResetFlag(ctx.Ctx, Key) error
}
