package chain

import (
	"crypto/ecdsa"
	"errors"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	bCtx "github.com/strategic-club/commerce-api/base/ctx"
	"github.com/strategic-club/commerce-api/base/log"
)

var (
	ErrUnsupportedChain = errors.New("unsupported chain")
	ErrTxReverted       = errors.New("transaction reverted")
)

type ClientCfg struct {
	RpcUrls map[int32]string
	// OperatorKey signs state-changing transactions. The derived address
	// holds all managed inventory in escrow.
	OperatorKey string
}

type Client interface {
	Call(bCtx.Ctx, int32, common.Address, *big.Int, abi.ABI, string, ...interface{}) ([]interface{}, error)
	Send(bCtx.Ctx, int32, common.Address, abi.ABI, string, ...interface{}) error
	CodeAt(bCtx.Ctx, int32, common.Address) ([]byte, error)
	OperatorAddress() common.Address
}

type clientImpl struct {
	clients     map[int32]*ethclient.Client
	operatorKey *ecdsa.PrivateKey
	operator    common.Address
}

func NewClient(ctx bCtx.Ctx, cfg *ClientCfg) (Client, error) {
	var anyerr error
	clients := make(map[int32]*ethclient.Client)
	for chainId, url := range cfg.RpcUrls {
		client, err := ethclient.DialContext(ctx, url)
		if err != nil {
			anyerr = err
			ctx.WithFields(log.Fields{
				"err":     err,
				"chainId": chainId,
				"url":     url,
			}).Warn("failed to dial rpc")
			// soft warning, still let the server start
			continue
		}
		clients[chainId] = client
	}

	key, err := crypto.HexToECDSA(cfg.OperatorKey)
	if err != nil {
		ctx.WithField("err", err).Error("invalid operator key")
		return nil, err
	}

	return &clientImpl{
		clients:     clients,
		operatorKey: key,
		operator:    crypto.PubkeyToAddress(key.PublicKey),
	}, anyerr
}

func (c *clientImpl) OperatorAddress() common.Address {
	return c.operator
}

func (c *clientImpl) Call(ctx bCtx.Ctx, chainId int32, addr common.Address, blk *big.Int, _abi abi.ABI, method string, params ...interface{}) ([]interface{}, error) {
	client, ok := c.clients[chainId]
	if !ok {
		return nil, ErrUnsupportedChain
	}

	data, err := _abi.Pack(method, params...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"params": params,
			"err":    err,
		}).Error("abi.Pack failed")
		return nil, err
	}
	msg := ethereum.CallMsg{
		To:   &addr,
		Data: data,
	}
	res, err := client.CallContract(ctx, msg, blk)
	if err != nil {
		ctx.WithField("err", err).Error("client.CallContract failed")
		return nil, err
	}
	unpacked, err := _abi.Unpack(method, res)
	if err != nil {
		ctx.WithField("err", err).Error("abi.Unpack failed")
		return nil, err
	}
	return unpacked, nil
}

func (c *clientImpl) Send(ctx bCtx.Ctx, chainId int32, addr common.Address, _abi abi.ABI, method string, params ...interface{}) error {
	client, ok := c.clients[chainId]
	if !ok {
		return ErrUnsupportedChain
	}

	data, err := _abi.Pack(method, params...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"params": params,
			"err":    err,
		}).Error("abi.Pack failed")
		return err
	}

	nonce, err := client.PendingNonceAt(ctx, c.operator)
	if err != nil {
		ctx.WithField("err", err).Error("client.PendingNonceAt failed")
		return err
	}
	gasPrice, err := client.SuggestGasPrice(ctx)
	if err != nil {
		ctx.WithField("err", err).Error("client.SuggestGasPrice failed")
		return err
	}
	gasLimit, err := client.EstimateGas(ctx, ethereum.CallMsg{
		From: c.operator,
		To:   &addr,
		Data: data,
	})
	if err != nil {
		// estimation fails when the call would revert
		ctx.WithField("err", err).Error("client.EstimateGas failed")
		return err
	}

	tx := types.NewTransaction(nonce, addr, big.NewInt(0), gasLimit, gasPrice, data)
	signed, err := types.SignTx(tx, types.NewEIP155Signer(big.NewInt(int64(chainId))), c.operatorKey)
	if err != nil {
		ctx.WithField("err", err).Error("types.SignTx failed")
		return err
	}

	if err := client.SendTransaction(ctx, signed); err != nil {
		ctx.WithField("err", err).Error("client.SendTransaction failed")
		return err
	}

	receipt, err := bind.WaitMined(ctx, client, signed)
	if err != nil {
		ctx.WithField("err", err).Error("bind.WaitMined failed")
		return err
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		ctx.WithField("tx", signed.Hash().Hex()).Error("transaction reverted")
		return ErrTxReverted
	}
	return nil
}

func (c *clientImpl) CodeAt(ctx bCtx.Ctx, chainId int32, addr common.Address) ([]byte, error) {
	client, ok := c.clients[chainId]
	if !ok {
		return nil, ErrUnsupportedChain
	}
	return client.CodeAt(ctx, addr, nil)
}
