package usecase

import (
	"math/big"
	"sync"

	"github.com/strategic-club/commerce-api/base/ctx"
	"github.com/strategic-club/commerce-api/base/keylock"
	"github.com/strategic-club/commerce-api/domain"
	"github.com/strategic-club/commerce-api/domain/event"
	"github.com/strategic-club/commerce-api/domain/ledger"
	"github.com/strategic-club/commerce-api/domain/mint"
	"github.com/strategic-club/commerce-api/domain/settings"
	"github.com/strategic-club/commerce-api/domain/tgflag"
	"github.com/strategic-club/commerce-api/stores/settlement"
)

type MintUseCaseCfg struct {
	MintRepo mint.Repo
	TgFlag   tgflag.UseCase
	Settings settings.UseCase
	Ledger   ledger.AssetLedger
	Event    event.Recorder
	// Locks is the asset lock shared with the withdrawal guard and the other
	// engines.
	Locks *keylock.KeyLock
}

type impl struct {
	mu       sync.Mutex
	locks    *keylock.KeyLock
	mint     mint.Repo
	tgflag   tgflag.UseCase
	settings settings.UseCase
	ledger   ledger.AssetLedger
	event    event.Recorder
}

func New(cfg *MintUseCaseCfg) mint.UseCase {
	locks := cfg.Locks
	if locks == nil {
		locks = keylock.New()
	}
	return &impl{
		locks:    locks,
		mint:     cfg.MintRepo,
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

func (im *impl) CreateMint(c ctx.Ctx, p *mint.CreateMintPayload) (*mint.Mint, error) {
	im.mu.Lock()
	defer im.mu.Unlock()

	if p.NftContract.IsNull() || p.Erc20Contract.IsNull() {
		return nil, domain.ErrNullAddress
	}
	key := domain.AssetKey{NftContract: p.NftContract, TokenId: p.TokenId}.ToLower()

	// hold the asset lock so the withdrawal guard cannot drain escrow between
	// the escrow check and the commitment write
	im.locks.Lock(key.String())
	defer im.locks.Unlock(key.String())

	prices, err := domain.ToBigInt([]string{p.Erc20Amount})
	if err != nil || prices[0].Sign() <= 0 {
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

	if _, err := im.mint.FindLive(c, key); err == nil {
		return nil, &domain.MintAlreadyCreatedError{NftContract: key.NftContract, TokenId: key.TokenId}
	} else if err != domain.ErrNotFound {
		return nil, err
	}

	m := &mint.Mint{
		NftContract:   key.NftContract,
		TokenId:       key.TokenId,
		NftAmount:     nftAmount,
		Erc20Contract: p.Erc20Contract.ToLower(),
		Erc20Amount:   p.Erc20Amount,
		IsActive:      true,
	}
	if err := im.mint.Create(c, m); err != nil {
		c.WithField("err", err).Error("mint.Create failed")
		return nil, err
	}

	im.event.Record(c, event.TypeMintCreated, map[string]interface{}{
		"nftContract":   m.NftContract,
		"tokenId":       m.TokenId,
		"nftAmount":     m.NftAmount,
		"erc20Contract": m.Erc20Contract,
		"erc20Amount":   m.Erc20Amount,
	})
	return m, nil
}

func (im *impl) RemoveMint(c ctx.Ctx, key domain.AssetKey) error {
	im.mu.Lock()
	defer im.mu.Unlock()

	key = key.ToLower()
	m, err := im.mint.FindLive(c, key)
	if err == domain.ErrNotFound {
		return &domain.MintNotCreatedError{NftContract: key.NftContract, TokenId: key.TokenId}
	} else if err != nil {
		return err
	}

	m.IsActive = false
	if err := im.mint.Update(c, m); err != nil {
		c.WithField("err", err).Error("mint.Update failed")
		return err
	}

	im.event.Record(c, event.TypeMintRemoved, map[string]interface{}{
		"nftContract": m.NftContract,
		"tokenId":     m.TokenId,
	})
	return nil
}

func (im *impl) Mint(c ctx.Ctx, telegramId domain.TelegramId, key domain.AssetKey, buyer domain.Address, quantity int64) (*mint.Mint, error) {
	im.mu.Lock()
	defer im.mu.Unlock()

	if telegramId.IsNull() {
		return nil, domain.ErrNullTelegramId
	}
	if buyer.IsNull() {
		return nil, domain.ErrNullAddress
	}
	key = key.ToLower()

	im.locks.Lock(key.String())
	defer im.locks.Unlock(key.String())

	m, err := im.mint.FindLive(c, key)
	if err == domain.ErrNotFound {
		return nil, &domain.MintNotCreatedError{NftContract: key.NftContract, TokenId: key.TokenId}
	} else if err != nil {
		return nil, err
	}

	flagKey := tgflag.Key{TelegramId: telegramId, NftContract: key.NftContract, TokenId: key.FlagTokenId(m.TokenType())}
	if set, err := im.tgflag.IsSet(c, flagKey); err != nil {
		return nil, err
	} else if set {
		return nil, &domain.TelegramIdFlagAlreadySetError{TelegramId: telegramId, NftContract: flagKey.NftContract, TokenId: flagKey.TokenId}
	}

	tokenType := m.TokenType()
	if tokenType == domain.TokenType721 {
		if quantity != 1 {
			return nil, domain.ErrAmount
		}
	} else if quantity <= 0 || quantity > m.NftAmount {
		return nil, domain.ErrAmount
	}

	unitPrice, err := domain.ToBigInt([]string{m.Erc20Amount})
	if err != nil {
		return nil, domain.ErrAmount
	}
	total := new(big.Int).Mul(unitPrice[0], big.NewInt(quantity))

	bal, err := im.ledger.Erc20BalanceOf(c, m.Erc20Contract, buyer)
	if err != nil {
		c.WithField("err", err).Error("ledger.Erc20BalanceOf failed")
		return nil, err
	}
	if bal.Cmp(total) < 0 {
		return nil, domain.ErrAmount
	}

	payment, err := im.settings.GetPaymentAddress(c)
	if err != nil {
		c.WithField("err", err).Error("settings.GetPaymentAddress failed")
		return nil, err
	}

	tx := settlement.New()
	prev := *m
	if tokenType == domain.TokenType721 {
		m.IsActive = false
	} else {
		m.NftAmount -= quantity
		if m.NftAmount == 0 {
			m.IsActive = false
		}
	}
	err = tx.Step(c, func(c ctx.Ctx) error {
		return im.mint.Update(c, m)
	}, func(c ctx.Ctx) error {
		return im.mint.Update(c, &prev)
	})
	if err != nil {
		c.WithField("err", err).Error("mint.Update failed")
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
		Payer:     buyer,
		Payee:     payment,
		Erc20:     m.Erc20Contract,
		Amount:    total,
		TokenType: tokenType,
		Key:       key,
		NftTo:     buyer.ToLower(),
		NftAmount: quantity,
	}
	if err := payout.Run(c, tx); err != nil {
		tx.Rollback(c)
		return nil, err
	}

	im.event.Record(c, event.TypeMintCompleted, map[string]interface{}{
		"nftContract": m.NftContract,
		"tokenId":     m.TokenId,
		"buyer":       buyer.ToLower(),
		"telegramId":  telegramId,
		"quantity":    quantity,
		"erc20Amount": total.String(),
	})
	return m, nil
}

func (im *impl) GetMint(c ctx.Ctx, key domain.AssetKey) (*mint.Mint, error) {
	return im.mint.FindOne(c, key.ToLower())
}

func (im *impl) IsActive(c ctx.Ctx, key domain.AssetKey) (bool, error) {
	m, err := im.mint.FindOne(c, key.ToLower())
	if err == domain.ErrNotFound {
		return false, nil
	} else if err != nil {
		return false, err
	}
	return m.IsActive, nil
}
