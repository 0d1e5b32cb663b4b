package usecase

import (
	"github.com/strategic-club/commerce-api/base/ctx"
	"github.com/strategic-club/commerce-api/base/keylock"
	"github.com/strategic-club/commerce-api/domain"
	"github.com/strategic-club/commerce-api/domain/commitment"
	"github.com/strategic-club/commerce-api/domain/event"
	"github.com/strategic-club/commerce-api/domain/ledger"
	"github.com/strategic-club/commerce-api/domain/withdrawal"
)

type WithdrawalUseCaseCfg struct {
	Ledger ledger.AssetLedger
	// Reservers are the engines whose live commitments pin inventory. The
	// guard sums them all before anything leaves escrow.
	Reservers []commitment.Reserver
	Event     event.Recorder
	// Owner receives withdrawn inventory.
	Owner domain.Address
	// Locks is the asset lock shared with the engines. Holding it across the
	// reservation read and the escrow transfer keeps a concurrent create from
	// committing inventory the withdrawal is about to drain.
	Locks *keylock.KeyLock
}

type impl struct {
	ledger    ledger.AssetLedger
	reservers []commitment.Reserver
	event     event.Recorder
	owner     domain.Address
	locks     *keylock.KeyLock
}

func New(cfg *WithdrawalUseCaseCfg) withdrawal.UseCase {
	locks := cfg.Locks
	if locks == nil {
		locks = keylock.New()
	}
	return &impl{
		ledger:    cfg.Ledger,
		reservers: cfg.Reservers,
		event:     cfg.Event,
		owner:     cfg.Owner.ToLower(),
		locks:     locks,
	}
}

func (im *impl) reservedAmount(c ctx.Ctx, key domain.AssetKey) (int64, error) {
	var sum int64
	for _, r := range im.reservers {
		n, err := r.ReservedAmount(c, key)
		if err != nil {
			c.WithField("err", err).Error("reserver.ReservedAmount failed")
			return 0, err
		}
		sum += n
	}
	return sum, nil
}

func (im *impl) WithdrawErc721(c ctx.Ctx, key domain.AssetKey) error {
	if key.IsNull() {
		return domain.ErrNullAddress
	}
	key = key.ToLower()

	im.locks.Lock(key.String())
	defer im.locks.Unlock(key.String())

	reserved, err := im.reservedAmount(c, key)
	if err != nil {
		return err
	}
	if reserved > 0 {
		return &domain.WithdrawError{NftContract: key.NftContract, TokenId: key.TokenId}
	}

	owner, err := im.ledger.Erc721OwnerOf(c, key.NftContract, key.TokenId)
	if err != nil || !owner.Equals(im.ledger.EscrowAddress()) {
		return &domain.NftError{NftContract: key.NftContract, TokenId: key.TokenId}
	}

	if err := im.ledger.Erc721Transfer(c, key.NftContract, im.owner, key.TokenId); err != nil {
		c.WithField("err", err).Error("ledger.Erc721Transfer failed")
		return err
	}

	im.event.Record(c, event.TypeErc721Withdrawn, map[string]interface{}{
		"nftContract": key.NftContract,
		"tokenId":     key.TokenId,
		"to":          im.owner,
	})
	return nil
}

func (im *impl) WithdrawErc1155(c ctx.Ctx, key domain.AssetKey, amount int64) error {
	if key.IsNull() {
		return domain.ErrNullAddress
	}
	if amount <= 0 {
		return domain.ErrAmount
	}
	key = key.ToLower()

	im.locks.Lock(key.String())
	defer im.locks.Unlock(key.String())

	reserved, err := im.reservedAmount(c, key)
	if err != nil {
		return err
	}
	bal, err := im.ledger.Erc1155BalanceOf(c, key.NftContract, im.ledger.EscrowAddress(), key.TokenId)
	if err != nil {
		c.WithField("err", err).Error("ledger.Erc1155BalanceOf failed")
		return err
	}
	if amount > bal-reserved {
		return &domain.WithdrawError{NftContract: key.NftContract, TokenId: key.TokenId}
	}

	if err := im.ledger.Erc1155Transfer(c, key.NftContract, im.owner, key.TokenId, amount); err != nil {
		c.WithField("err", err).Error("ledger.Erc1155Transfer failed")
		return err
	}

	im.event.Record(c, event.TypeErc1155Withdrawn, map[string]interface{}{
		"nftContract": key.NftContract,
		"tokenId":     key.TokenId,
		"amount":      amount,
		"to":          im.owner,
	})
	return nil
}
