package contract

import (
	"bytes"
	"math/big"

	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	baseabi "github.com/strategic-club/commerce-api/base/abi"
	bCtx "github.com/strategic-club/commerce-api/base/ctx"
	"github.com/strategic-club/commerce-api/domain"
	"github.com/strategic-club/commerce-api/service/chain"
)

// Erc20Receiver drives the payment notification callback. A contract
// acknowledges the payment by returning the onERC20Received selector.
type Erc20Receiver struct {
	chainService chain.Client
	abi          ethabi.ABI
}

func NewErc20Receiver(chainService chain.Client) *Erc20Receiver {
	return &Erc20Receiver{
		abi:          baseabi.ERC20ReceiverABI,
		chainService: chainService,
	}
}

func (e *Erc20Receiver) NotifyReceived(ctx bCtx.Ctx, chainId int32, addr string, erc20Contract string, amount *big.Int) error {
	method := "onERC20Received"
	unpacked, err := e.chainService.Call(ctx, chainId, common.HexToAddress(addr), nil, e.abi, method, common.HexToAddress(erc20Contract), amount)
	if err != nil {
		ctx.WithField("err", err).Error("onERC20Received call failed")
		return &domain.Erc20ReceiverNotImplError{Receiver: domain.Address(addr).ToLower()}
	}
	retval, ok := unpacked[0].([4]byte)
	if !ok || !bytes.Equal(retval[:], baseabi.Erc20ReceivedMagicValue[:]) {
		return &domain.Erc20ReceiverRetValError{Receiver: domain.Address(addr).ToLower()}
	}
	// the view call above only validates, the state-changing call settles
	return e.chainService.Send(ctx, chainId, common.HexToAddress(addr), e.abi, method, common.HexToAddress(erc20Contract), amount)
}
