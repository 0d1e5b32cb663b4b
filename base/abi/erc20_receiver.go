package abi

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/crypto"
)

var ERC20ReceiverABI abi.ABI

// Erc20ReceivedMagicValue is the selector of onERC20Received(address,uint256),
// the value a conforming payment receiver must answer with.
var Erc20ReceivedMagicValue [4]byte

var erc20ReceiverABI = `[{"type":"function","name":"onERC20Received","constant":false,"payable":false,"inputs":[{"type":"address","name":"erc20Contract"},{"type":"uint256","name":"amount"}],"outputs":[{"type":"bytes4"}]}]`

func init() {
	_abi, err := abi.JSON(strings.NewReader(erc20ReceiverABI))
	if err != nil {
		panic("Failed to parse erc20 receiver abi")
	}
	ERC20ReceiverABI = _abi
	copy(Erc20ReceivedMagicValue[:], crypto.Keccak256([]byte("onERC20Received(address,uint256)"))[:4])
}
