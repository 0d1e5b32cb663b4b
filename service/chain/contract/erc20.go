package contract

import (
	"math/big"

	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	baseabi "github.com/strategic-club/commerce-api/base/abi"
	bCtx "github.com/strategic-club/commerce-api/base/ctx"
	"github.com/strategic-club/commerce-api/service/chain"
)

type Erc20 struct {
	chainService chain.Client
	abi          ethabi.ABI
}

func NewErc20(chainService chain.Client) *Erc20 {
	return &Erc20{
		abi:          baseabi.ERC20TokenABI,
		chainService: chainService,
	}
}

func (e *Erc20) BalanceOf(ctx bCtx.Ctx, chainId int32, addr string, owner string) (*big.Int, error) {
	method := "balanceOf"
	unpacked, err := e.chainService.Call(ctx, chainId, common.HexToAddress(addr), nil, e.abi, method, common.HexToAddress(owner))
	if err != nil {
		return nil, err
	}
	return unpacked[0].(*big.Int), nil
}

func (e *Erc20) Allowance(ctx bCtx.Ctx, chainId int32, addr string, owner string, spender string) (*big.Int, error) {
	method := "allowance"
	unpacked, err := e.chainService.Call(ctx, chainId, common.HexToAddress(addr), nil, e.abi, method, common.HexToAddress(owner), common.HexToAddress(spender))
	if err != nil {
		return nil, err
	}
	return unpacked[0].(*big.Int), nil
}

func (e *Erc20) TransferFrom(ctx bCtx.Ctx, chainId int32, addr string, from string, to string, value *big.Int) error {
	method := "transferFrom"
	return e.chainService.Send(ctx, chainId, common.HexToAddress(addr), e.abi, method, common.HexToAddress(from), common.HexToAddress(to), value)
}
