package evm

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	bCtx "github.com/strategic-club/commerce-api/base/ctx"
	"github.com/strategic-club/commerce-api/domain"
	"github.com/strategic-club/commerce-api/domain/ledger"
	"github.com/strategic-club/commerce-api/service/chain"
	"github.com/strategic-club/commerce-api/service/chain/contract"
)

type impl struct {
	chainId      int32
	chainService chain.Client
	erc20        *contract.Erc20
	erc721       *contract.Erc721
	erc1155      *contract.Erc1155
	receiver     *contract.Erc20Receiver
}

// New builds the on-chain ledger. All escrowed inventory sits under the
// client's operator address, which also spends buyer allowances.
func New(chainId int32, chainService chain.Client) ledger.AssetLedger {
	return &impl{
		chainId:      chainId,
		chainService: chainService,
		erc20:        contract.NewErc20(chainService),
		erc721:       contract.NewErc721(chainService),
		erc1155:      contract.NewErc1155(chainService),
		receiver:     contract.NewErc20Receiver(chainService),
	}
}

func (im *impl) Erc20BalanceOf(c bCtx.Ctx, erc20 domain.Address, holder domain.Address) (*big.Int, error) {
	return im.erc20.BalanceOf(c, im.chainId, string(erc20), string(holder))
}

func (im *impl) Erc20Transfer(c bCtx.Ctx, erc20 domain.Address, from, to domain.Address, amount *big.Int) error {
	return im.erc20.TransferFrom(c, im.chainId, string(erc20), string(from), string(to), amount)
}

func (im *impl) Erc721OwnerOf(c bCtx.Ctx, nftContract domain.Address, tokenId domain.TokenId) (domain.Address, error) {
	id, err := tokenId.ToBigInt()
	if err != nil {
		return domain.EmptyAddress, err
	}
	owner, err := im.erc721.OwnerOf(c, im.chainId, string(nftContract), id)
	if err != nil {
		return domain.EmptyAddress, err
	}
	return domain.Address(owner).ToLower(), nil
}

func (im *impl) Erc721Transfer(c bCtx.Ctx, nftContract domain.Address, to domain.Address, tokenId domain.TokenId) error {
	id, err := tokenId.ToBigInt()
	if err != nil {
		return err
	}
	return im.erc721.SafeTransferFrom(c, im.chainId, string(nftContract), im.EscrowAddress().ToLowerStr(), string(to), id)
}

func (im *impl) Erc1155BalanceOf(c bCtx.Ctx, nftContract domain.Address, holder domain.Address, tokenId domain.TokenId) (int64, error) {
	id, err := tokenId.ToBigInt()
	if err != nil {
		return 0, err
	}
	bal, err := im.erc1155.BalanceOf(c, im.chainId, string(nftContract), string(holder), id)
	if err != nil {
		return 0, err
	}
	return bal.Int64(), nil
}

func (im *impl) Erc1155Transfer(c bCtx.Ctx, nftContract domain.Address, to domain.Address, tokenId domain.TokenId, amount int64) error {
	id, err := tokenId.ToBigInt()
	if err != nil {
		return err
	}
	return im.erc1155.SafeTransferFrom(c, im.chainId, string(nftContract), im.EscrowAddress().ToLowerStr(), string(to), id, big.NewInt(amount))
}

func (im *impl) IsContract(c bCtx.Ctx, addr domain.Address) (bool, error) {
	code, err := im.chainService.CodeAt(c, im.chainId, common.HexToAddress(string(addr)))
	if err != nil {
		return false, err
	}
	return len(code) > 0, nil
}

func (im *impl) NotifyPaymentReceived(c bCtx.Ctx, receiver domain.Address, erc20 domain.Address, amount *big.Int) error {
	return im.receiver.NotifyReceived(c, im.chainId, string(receiver), string(erc20), amount)
}

func (im *impl) EscrowAddress() domain.Address {
	return domain.Address(im.chainService.OperatorAddress().Hex()).ToLower()
}
