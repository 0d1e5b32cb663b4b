package contract

import (
	"math/big"

	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	baseabi "github.com/strategic-club/commerce-api/base/abi"
	bCtx "github.com/strategic-club/commerce-api/base/ctx"
	"github.com/strategic-club/commerce-api/service/chain"
)

type Erc1155 struct {
	chainService       chain.Client
	abi                ethabi.ABI
	erc1155InterfaceId [4]byte
}

func NewErc1155(chainService chain.Client) *Erc1155 {
	var interfaceId [4]byte
	copy(interfaceId[:], common.Hex2Bytes("d9b67a26"))
	return &Erc1155{
		abi:                baseabi.ERC1155TokenABI,
		chainService:       chainService,
		erc1155InterfaceId: interfaceId,
	}
}

func (e *Erc1155) Supports1155Interface(ctx bCtx.Ctx, chainId int32, addr string) (bool, error) {
	method := "supportsInterface"
	unpacked, err := e.chainService.Call(ctx, chainId, common.HexToAddress(addr), nil, e.abi, method, e.erc1155InterfaceId)
	if err != nil {
		return false, err
	}
	return unpacked[0].(bool), nil
}

func (e *Erc1155) BalanceOf(ctx bCtx.Ctx, chainId int32, addr string, owner string, id *big.Int) (*big.Int, error) {
	method := "balanceOf"
	unpacked, err := e.chainService.Call(ctx, chainId, common.HexToAddress(addr), nil, e.abi, method, common.HexToAddress(owner), id)
	if err != nil {
		return nil, err
	}
	return unpacked[0].(*big.Int), nil
}

func (e *Erc1155) SafeTransferFrom(ctx bCtx.Ctx, chainId int32, addr string, from string, to string, id *big.Int, value *big.Int) error {
	method := "safeTransferFrom"
	return e.chainService.Send(ctx, chainId, common.HexToAddress(addr), e.abi, method, common.HexToAddress(from), common.HexToAddress(to), id, value, []byte{})
}
