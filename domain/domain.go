package domain

import (
	"math/big"
	"strings"

	"golang.org/x/xerrors"
)

type Table string

const (
	TableAuctions Table = "auctions"
	TableMints    Table = "mints"
	TableRedeems  Table = "redeems"
	TableTgFlags  Table = "telegramIdFlags"
	TableEvents   Table = "commerceEvents"
	TableSettings Table = "settings"
)

type TokenType int

const (
	TokenType721  TokenType = 721
	TokenType1155 TokenType = 1155
)

type SortDir int8

const (
	SortDirAsc  SortDir = 1
	SortDirDesc SortDir = -1
)

type Address string

const EmptyAddress = Address("0x0000000000000000000000000000000000000000")

func (a Address) ToLower() Address {
	return Address(strings.ToLower(string(a)))
}

func (a Address) ToLowerStr() string {
	return strings.ToLower(string(a))
}

func (a Address) IsNull() bool {
	return len(a) == 0 || a.ToLower() == EmptyAddress
}

func (a Address) Equals(b Address) bool {
	return a.ToLowerStr() == b.ToLowerStr()
}

type TokenId string

func (i TokenId) String() string {
	return string(i)
}

func (i TokenId) ToBigInt() (*big.Int, error) {
	v, ok := new(big.Int).SetString(string(i), 10)
	if !ok {
		return nil, xerrors.Errorf("invalid token id %s", i)
	}
	return v, nil
}

// WildcardTokenId is the reserved token id (2^256-1) used to scope a telegram
// flag to a whole ERC721 contract instead of a single id.
const WildcardTokenId = TokenId("115792089237316195423570985008687907853269984665640564039457584007913129639935")

// TelegramId identifies the off-chain user behind a bid, mint or redeem.
// Zero is the null id.
type TelegramId uint64

func (t TelegramId) IsNull() bool {
	return t == 0
}

// AssetKey identifies a single escrowed asset.
type AssetKey struct {
	NftContract Address `json:"nftContract" bson:"nftContract"`
	TokenId     TokenId `json:"tokenId" bson:"tokenId"`
}

func (k AssetKey) ToLower() AssetKey {
	return AssetKey{NftContract: k.NftContract.ToLower(), TokenId: k.TokenId}
}

func (k AssetKey) IsNull() bool {
	return k.NftContract.IsNull()
}

func (k AssetKey) String() string {
	return k.NftContract.ToLowerStr() + "/" + k.TokenId.String()
}

// FlagTokenId returns the token id a telegram flag is scoped to: the wildcard
// for ERC721 assets, the asset's own id for ERC1155 assets.
func (k AssetKey) FlagTokenId(tokenType TokenType) TokenId {
	if tokenType == TokenType721 {
		return WildcardTokenId
	}
	return k.TokenId
}

func ToBigInt(strs []string) ([]*big.Int, error) {
	res := make([]*big.Int, len(strs))
	for i, s := range strs {
		v, ok := new(big.Int).SetString(s, 10)
		if !ok {
			return nil, xerrors.Errorf("invalid number format %s", s)
		}
		res[i] = v
	}
	return res, nil
}
