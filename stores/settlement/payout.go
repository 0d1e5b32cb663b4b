package settlement

import (
	"math/big"

	"github.com/strategic-club/commerce-api/base/ctx"
	"github.com/strategic-club/commerce-api/domain"
	"github.com/strategic-club/commerce-api/domain/ledger"
)

// Payout runs the external interaction legs of a resolution: the ERC20
// payment, the receiver callback when the payee is a contract, and the NFT
// release from escrow. The payment leg registers a compensating reverse
// transfer so a later failure refunds the payer.
type Payout struct {
	Ledger    ledger.AssetLedger
	Payer     domain.Address
	Payee     domain.Address
	Erc20     domain.Address
	Amount    *big.Int
	TokenType domain.TokenType
	Key       domain.AssetKey
	NftTo     domain.Address
	NftAmount int64
}

func (p *Payout) Run(c ctx.Ctx, tx *Tx) error {
	if p.Amount != nil && p.Amount.Sign() > 0 {
		err := tx.Step(c, func(c ctx.Ctx) error {
			return p.Ledger.Erc20Transfer(c, p.Erc20, p.Payer, p.Payee, p.Amount)
		}, func(c ctx.Ctx) error {
			return p.Ledger.Erc20Transfer(c, p.Erc20, p.Payee, p.Payer, p.Amount)
		})
		if err != nil {
			c.WithField("err", err).Error("ledger.Erc20Transfer failed")
			return err
		}

		if isContract, err := p.Ledger.IsContract(c, p.Payee); err != nil {
			c.WithField("err", err).Error("ledger.IsContract failed")
			return err
		} else if isContract {
			if err := p.Ledger.NotifyPaymentReceived(c, p.Payee, p.Erc20, p.Amount); err != nil {
				c.WithField("err", err).Error("ledger.NotifyPaymentReceived failed")
				return err
			}
		}
	}

	if p.TokenType == domain.TokenType721 {
		if err := p.Ledger.Erc721Transfer(c, p.Key.NftContract, p.NftTo, p.Key.TokenId); err != nil {
			c.WithField("err", err).Error("ledger.Erc721Transfer failed")
			return err
		}
	} else {
		if err := p.Ledger.Erc1155Transfer(c, p.Key.NftContract, p.NftTo, p.Key.TokenId, p.NftAmount); err != nil {
			c.WithField("err", err).Error("ledger.Erc1155Transfer failed")
			return err
		}
	}
	return nil
}
