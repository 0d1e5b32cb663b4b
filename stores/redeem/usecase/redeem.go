package usecase

import (
	"sync"

	"github.com/strategic-club/commerce-api/base/ctx"
	"github.com/strategic-club/commerce-api/base/keylock"
	"github.com/strategic-club/commerce-api/domain"
	"github.com/strategic-club/commerce-api/domain/event"
	"github.com/strategic-club/commerce-api/domain/ledger"
	"github.com/strategic-club/commerce-api/domain/redeem"
	"github.com/strategic-club/commerce-api/domain/settings"
	"github.com/strategic-club/commerce-api/domain/tgflag"
	"github.com/strategic-club/commerce-api/stores/settlement"
)

type RedeemUseCaseCfg struct {
	RedeemRepo redeem.Repo
	TgFlag     tgflag.UseCase
	Settings   settings.UseCase
	Ledger     ledger.AssetLedger
	Event      event.Recorder
	// Locks is the asset lock shared with the withdrawal guard and the other
	// engines.
	Locks *keylock.KeyLock
}

type impl struct {
	mu       sync.Mutex
	locks    *keylock.KeyLock
	redeem   redeem.Repo
	tgflag   tgflag.UseCase
	settings settings.UseCase
	ledger   ledger.AssetLedger
	event    event.Recorder
}

func New(cfg *RedeemUseCaseCfg) redeem.UseCase {
	locks := cfg.Locks
	if locks == nil {
		locks = keylock.New()
	}
	return &impl{
		locks:    locks,
		redeem:   cfg.RedeemRepo,
		tgflag:   cfg.TgFlag,
		settings: cfg.Settings,
		ledger:   cfg.Ledger,
		event:    cfg.Event,
	}
}

func (im *impl) checkEscrowed(c ctx.Ctx, key domain.AssetKey, tokenType domain.TokenType, amount int64) error {
	nftErr := &domain.NftError{NftContract: key.NftContract, TokenId: key.TokenId}
	if key.TokenId == domain.WildcardTokenId {
		return nftErr
	}
	if _, err := key.TokenId.ToBigInt(); err != nil {
		return nftErr
	}

	escrow := im.ledger.EscrowAddress()
	if tokenType == domain.TokenType721 {
		owner, err := im.ledger.Erc721OwnerOf(c, key.NftContract, key.TokenId)
		if err != nil || !owner.Equals(escrow) {
			return nftErr
		}
	} else {
		bal, err := im.ledger.Erc1155BalanceOf(c, key.NftContract, escrow, key.TokenId)
		if err != nil || bal < amount {
			return nftErr
		}
	}
	return nil
}

func (im *impl) CreateRedeem(c ctx.Ctx, p *redeem.CreateRedeemPayload) (*redeem.Redeem, error) {
	im.mu.Lock()
	defer im.mu.Unlock()

	if p.Redeemer.IsNull() || p.NftContract.IsNull() || p.Erc20Contract.IsNull() {
		return nil, domain.ErrNullAddress
	}
	key := domain.AssetKey{NftContract: p.NftContract, TokenId: p.TokenId}.ToLower()

	// hold the asset lock so the withdrawal guard cannot drain escrow between
	// the escrow check and the commitment write
	im.locks.Lock(key.String())
	defer im.locks.Unlock(key.String())

	// a zero redemption fee is allowed, the claim may be free
	prices, err := domain.ToBigInt([]string{p.Erc20Amount})
	if err != nil || prices[0].Sign() < 0 {
		return nil, domain.ErrAmount
	}

	nftAmount := p.NftAmount
	if p.TokenType == domain.TokenType721 {
		nftAmount = 0
	} else if nftAmount <= 0 {
		return nil, domain.ErrAmount
	}

	if err := im.checkEscrowed(c, key, p.TokenType, nftAmount); err != nil {
		return nil, err
	}

	if res, err := im.redeem.FindLiveByRedeemer(c, p.Redeemer); err == nil {
		return nil, &domain.RedeemAlreadyCreatedError{Redeemer: res.Redeemer}
	} else if err != domain.ErrNotFound {
		return nil, err
	}
	// one recipient per asset, surface who holds the conflicting claim
	if res, err := im.redeem.FindLiveByAsset(c, key); err == nil {
		return nil, &domain.RedeemAlreadyCreatedError{Redeemer: res.Redeemer}
	} else if err != domain.ErrNotFound {
		return nil, err
	}

	r := &redeem.Redeem{
		Redeemer:      p.Redeemer.ToLower(),
		NftContract:   key.NftContract,
		TokenId:       key.TokenId,
		NftAmount:     nftAmount,
		Erc20Contract: p.Erc20Contract.ToLower(),
		Erc20Amount:   p.Erc20Amount,
		IsActive:      true,
	}
	if err := im.redeem.Create(c, r); err != nil {
		c.WithField("err", err).Error("redeem.Create failed")
		return nil, err
	}

	im.event.Record(c, event.TypeRedeemCreated, map[string]interface{}{
		"redeemer":      r.Redeemer,
		"nftContract":   r.NftContract,
		"tokenId":       r.TokenId,
		"nftAmount":     r.NftAmount,
		"erc20Contract": r.Erc20Contract,
		"erc20Amount":   r.Erc20Amount,
	})
	return r, nil
}

func (im *impl) RemoveRedeem(c ctx.Ctx, redeemer domain.Address) error {
	im.mu.Lock()
	defer im.mu.Unlock()

	if redeemer.IsNull() {
		return domain.ErrNullAddress
	}

	r, err := im.redeem.FindLiveByRedeemer(c, redeemer)
	if err == domain.ErrNotFound {
		return &domain.RedeemNotCreatedError{Redeemer: redeemer.ToLower()}
	} else if err != nil {
		return err
	}

	r.IsActive = false
	if err := im.redeem.Update(c, r); err != nil {
		c.WithField("err", err).Error("redeem.Update failed")
		return err
	}

	im.event.Record(c, event.TypeRedeemRemoved, map[string]interface{}{
		"redeemer":    r.Redeemer,
		"nftContract": r.NftContract,
		"tokenId":     r.TokenId,
	})
	return nil
}

func (im *impl) Redeem(c ctx.Ctx, telegramId domain.TelegramId, caller domain.Address) (*redeem.Redeem, error) {
	im.mu.Lock()
	defer im.mu.Unlock()

	if telegramId.IsNull() {
		return nil, domain.ErrNullTelegramId
	}
	if caller.IsNull() {
		return nil, domain.ErrNullAddress
	}

	r, err := im.redeem.FindLiveByRedeemer(c, caller)
	if err == domain.ErrNotFound {
		return nil, &domain.RedeemNotCreatedError{Redeemer: caller.ToLower()}
	} else if err != nil {
		return nil, err
	}
	key := r.AssetKey()

	im.locks.Lock(key.String())
	defer im.locks.Unlock(key.String())

	flagKey := tgflag.Key{TelegramId: telegramId, NftContract: key.NftContract, TokenId: key.FlagTokenId(r.TokenType())}
	if set, err := im.tgflag.IsSet(c, flagKey); err != nil {
		return nil, err
	} else if set {
		return nil, &domain.TelegramIdFlagAlreadySetError{TelegramId: telegramId, NftContract: flagKey.NftContract, TokenId: flagKey.TokenId}
	}

	price, err := domain.ToBigInt([]string{r.Erc20Amount})
	if err != nil {
		return nil, domain.ErrAmount
	}
	var payment domain.Address
	if price[0].Sign() > 0 {
		payment, err = im.settings.GetPaymentAddress(c)
		if err != nil {
			c.WithField("err", err).Error("settings.GetPaymentAddress failed")
			return nil, err
		}
		bal, err := im.ledger.Erc20BalanceOf(c, r.Erc20Contract, caller)
		if err != nil {
			c.WithField("err", err).Error("ledger.Erc20BalanceOf failed")
			return nil, err
		}
		if bal.Cmp(price[0]) < 0 {
			return nil, domain.ErrAmount
		}
	}

	tokenType := r.TokenType()
	nftAmount := r.NftAmount
	if tokenType == domain.TokenType721 {
		nftAmount = 1
	}

	tx := settlement.New()
	prev := *r
	r.IsActive = false
	err = tx.Step(c, func(c ctx.Ctx) error {
		return im.redeem.Update(c, r)
	}, func(c ctx.Ctx) error {
		return im.redeem.Update(c, &prev)
	})
	if err != nil {
		c.WithField("err", err).Error("redeem.Update failed")
		return nil, err
	}

	err = tx.Step(c, func(c ctx.Ctx) error {
		return im.tgflag.SetFlag(c, flagKey)
	}, func(c ctx.Ctx) error {
		return im.tgflag.ResetFlag(c, flagKey)
	})
	if err != nil {
		tx.Rollback(c)
		return nil, err
	}

	payout := &settlement.Payout{
		Ledger:    im.ledger,
		Payer:     r.Redeemer,
		Payee:     payment,
		Erc20:     r.Erc20Contract,
		Amount:    price[0],
		TokenType: tokenType,
		Key:       key.ToLower(),
		NftTo:     r.Redeemer,
		NftAmount: nftAmount,
	}
	if err := payout.Run(c, tx); err != nil {
		tx.Rollback(c)
		return nil, err
	}

	im.event.Record(c, event.TypeRedeemCompleted, map[string]interface{}{
		"redeemer":    r.Redeemer,
		"nftContract": r.NftContract,
		"tokenId":     r.TokenId,
		"telegramId":  telegramId,
		"erc20Amount": r.Erc20Amount,
	})
	return r, nil
}

func (im *impl) GetRedeem(c ctx.Ctx, redeemer domain.Address) (*redeem.Redeem, error) {
	return im.redeem.FindByRedeemer(c, redeemer)
}

func (im *impl) GetRedeemer(c ctx.Ctx, key domain.AssetKey) (domain.Address, error) {
	r, err := im.redeem.FindLiveByAsset(c, key.ToLower())
	if err != nil {
		return domain.EmptyAddress, err
	}
	return r.Redeemer, nil
}
