package ledger

import (
	"math/big"

	"github.com/strategic-club/commerce-api/base/ctx"
	"github.com/strategic-club/commerce-api/domain"
)

// AssetLedger is the external ledger holding the fungible payment asset and
// the escrowed NFTs. Every failure returned from it aborts the whole engine
// operation; nothing is retried.
type AssetLedger interface {
	Erc20BalanceOf(c ctx.Ctx, erc20 domain.Address, holder domain.Address) (*big.Int, error)
	// Erc20Transfer moves `amount` from `from` to `to` through the operator
	// allowance (transferFrom semantics).
	Erc20Transfer(c ctx.Ctx, erc20 domain.Address, from, to domain.Address, amount *big.Int) error

	Erc721OwnerOf(c ctx.Ctx, nftContract domain.Address, tokenId domain.TokenId) (domain.Address, error)
	// Erc721Transfer moves the escrowed token from the escrow holder to `to`.
	Erc721Transfer(c ctx.Ctx, nftContract domain.Address, to domain.Address, tokenId domain.TokenId) error

	Erc1155BalanceOf(c ctx.Ctx, nftContract domain.Address, holder domain.Address, tokenId domain.TokenId) (int64, error)
	Erc1155Transfer(c ctx.Ctx, nftContract domain.Address, to domain.Address, tokenId domain.TokenId, amount int64) error

	IsContract(c ctx.Ctx, addr domain.Address) (bool, error)

	// NotifyPaymentReceived invokes onERC20Received on a contract payment
	// recipient. A wrong magic value maps to domain.Erc20ReceiverRetValError,
	// a missing or reverting callback to domain.Erc20ReceiverNotImplError.
	NotifyPaymentReceived(c ctx.Ctx, receiver domain.Address, erc20 domain.Address, amount *big.Int) error

	// EscrowAddress is the identity holding escrowed inventory, i.e. the
	// on-chain manager itself.
	EscrowAddress() domain.Address
}
