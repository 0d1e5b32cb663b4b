package usecase

import (
	"math/big"
	"sync"
	"time"

	"github.com/strategic-club/commerce-api/base/ctx"
	"github.com/strategic-club/commerce-api/base/keylock"
	"github.com/strategic-club/commerce-api/domain"
	"github.com/strategic-club/commerce-api/domain/auction"
	"github.com/strategic-club/commerce-api/domain/event"
	"github.com/strategic-club/commerce-api/domain/ledger"
	"github.com/strategic-club/commerce-api/domain/settings"
	"github.com/strategic-club/commerce-api/domain/tgflag"
	"github.com/strategic-club/commerce-api/stores/settlement"
)

type AuctionUseCaseCfg struct {
	AuctionRepo auction.Repo
	TgFlag      tgflag.UseCase
	Settings    settings.UseCase
	Ledger      ledger.AssetLedger
	Event       event.Recorder
	// Locks is the asset lock shared with the withdrawal guard and the other
	// engines. It keeps escrow checks and commitment writes ordered against
	// concurrent withdrawals of the same asset.
	Locks *keylock.KeyLock
	// Now overrides the clock, tests only
	Now func() time.Time
}

type impl struct {
	mu       sync.Mutex
	locks    *keylock.KeyLock
	auction  auction.Repo
	tgflag   tgflag.UseCase
	settings settings.UseCase
	ledger   ledger.AssetLedger
	event    event.Recorder
	now      func() time.Time
}

func New(cfg *AuctionUseCaseCfg) auction.UseCase {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	locks := cfg.Locks
	if locks == nil {
		locks = keylock.New()
	}
	return &impl{
		locks:    locks,
		auction:  cfg.AuctionRepo,
		tgflag:   cfg.TgFlag,
		settings: cfg.Settings,
		ledger:   cfg.Ledger,
		event:    cfg.Event,
		now:      now,
	}
}

// checkEscrowed verifies the asset exists and sits in escrow in the required
// quantity. The wildcard id is reserved for flag scoping and never auctionable.
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

func (im *impl) CreateAuction(c ctx.Ctx, p *auction.CreateAuctionPayload) (*auction.Auction, error) {
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

	prices, err := domain.ToBigInt([]string{p.StartPrice, p.MinIncrement})
	if err != nil {
		return nil, domain.ErrAmount
	}
	startPrice, minIncrement := prices[0], prices[1]
	if startPrice.Sign() <= 0 || minIncrement.Sign() <= 0 || p.DurationSec <= 0 || p.ExtendTimeSec < 0 {
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

	if _, err := im.auction.FindLive(c, key); err == nil {
		return nil, &domain.AuctionAlreadyActiveError{NftContract: key.NftContract, TokenId: key.TokenId}
	} else if err != domain.ErrNotFound {
		return nil, err
	}

	now := im.now().Unix()
	a := &auction.Auction{
		NftContract:              key.NftContract,
		TokenId:                  key.TokenId,
		NftAmount:                nftAmount,
		HighestBidder:            domain.EmptyAddress,
		Erc20Contract:            p.Erc20Contract.ToLower(),
		Erc20StartPrice:          p.StartPrice,
		Erc20MinimumBidIncrement: p.MinIncrement,
		Erc20HighestBid:          p.StartPrice,
		StartTime:                now,
		EndTime:                  now + p.DurationSec,
		ExtendTimeSec:            p.ExtendTimeSec,
		State:                    auction.StateActive,
	}
	if err := im.auction.Create(c, a); err != nil {
		c.WithField("err", err).Error("auction.Create failed")
		return nil, err
	}

	im.event.Record(c, event.TypeAuctionCreated, map[string]interface{}{
		"nftContract":              a.NftContract,
		"tokenId":                  a.TokenId,
		"nftAmount":                a.NftAmount,
		"erc20Contract":            a.Erc20Contract,
		"erc20StartPrice":          a.Erc20StartPrice,
		"erc20MinimumBidIncrement": a.Erc20MinimumBidIncrement,
		"startTime":                a.StartTime,
		"endTime":                  a.EndTime,
	})
	return a, nil
}

func (im *impl) RemoveAuction(c ctx.Ctx, key domain.AssetKey) error {
	im.mu.Lock()
	defer im.mu.Unlock()

	key = key.ToLower()
	a, err := im.auction.FindLive(c, key)
	if err == domain.ErrNotFound {
		return &domain.AuctionNotActiveError{NftContract: key.NftContract, TokenId: key.TokenId}
	} else if err != nil {
		return err
	}

	a.State = auction.StateInactive
	if err := im.auction.Update(c, a); err != nil {
		c.WithField("err", err).Error("auction.Update failed")
		return err
	}

	im.event.Record(c, event.TypeAuctionRemoved, map[string]interface{}{
		"nftContract": a.NftContract,
		"tokenId":     a.TokenId,
	})
	return nil
}

func (im *impl) Bid(c ctx.Ctx, telegramId domain.TelegramId, key domain.AssetKey, bidder domain.Address, amount string) (*auction.Auction, error) {
	im.mu.Lock()
	defer im.mu.Unlock()

	if telegramId.IsNull() {
		return nil, domain.ErrNullTelegramId
	}
	if bidder.IsNull() {
		return nil, domain.ErrNullAddress
	}
	key = key.ToLower()

	a, err := im.auction.FindLive(c, key)
	if err == domain.ErrNotFound {
		return nil, &domain.AuctionNotActiveError{NftContract: key.NftContract, TokenId: key.TokenId}
	} else if err != nil {
		return nil, err
	}
	now := im.now().Unix()
	if !a.IsActiveAt(now) {
		return nil, &domain.AuctionNotActiveError{NftContract: key.NftContract, TokenId: key.TokenId}
	}

	flagKey := tgflag.Key{TelegramId: telegramId, NftContract: key.NftContract, TokenId: key.FlagTokenId(a.TokenType())}
	if set, err := im.tgflag.IsSet(c, flagKey); err != nil {
		return nil, err
	} else if set {
		return nil, &domain.TelegramIdFlagAlreadySetError{TelegramId: telegramId, NftContract: flagKey.NftContract, TokenId: flagKey.TokenId}
	}

	vals, err := domain.ToBigInt([]string{amount, a.Erc20HighestBid, a.Erc20MinimumBidIncrement})
	if err != nil {
		return nil, domain.ErrAmount
	}
	bid, highest, minIncrement := vals[0], vals[1], vals[2]
	// the first bid competes against the start price, which seeds Erc20HighestBid
	if bid.Cmp(new(big.Int).Add(highest, minIncrement)) < 0 {
		return nil, domain.ErrAmount
	}

	bal, err := im.ledger.Erc20BalanceOf(c, a.Erc20Contract, bidder)
	if err != nil {
		c.WithField("err", err).Error("ledger.Erc20BalanceOf failed")
		return nil, err
	}
	if bal.Cmp(bid) < 0 {
		return nil, domain.ErrAmount
	}

	a.HighestBidder = bidder.ToLower()
	a.HighestTelegramId = telegramId
	a.Erc20HighestBid = amount
	// rolling anti-snipe window
	if a.EndTime-now <= a.ExtendTimeSec {
		a.EndTime += a.ExtendTimeSec
	}
	if err := im.auction.Update(c, a); err != nil {
		c.WithField("err", err).Error("auction.Update failed")
		return nil, err
	}

	im.event.Record(c, event.TypeAuctionBid, map[string]interface{}{
		"nftContract":     a.NftContract,
		"tokenId":         a.TokenId,
		"erc20Contract":   a.Erc20Contract,
		"bidder":          a.HighestBidder,
		"telegramId":      telegramId,
		"erc20HighestBid": a.Erc20HighestBid,
		"endTime":         a.EndTime,
	})
	return a, nil
}

func (im *impl) Complete(c ctx.Ctx, telegramId domain.TelegramId, key domain.AssetKey, caller domain.Address) (*auction.Auction, error) {
	im.mu.Lock()
	defer im.mu.Unlock()

	if telegramId.IsNull() {
		return nil, domain.ErrNullTelegramId
	}
	if caller.IsNull() {
		return nil, domain.ErrNullAddress
	}
	key = key.ToLower()

	im.locks.Lock(key.String())
	defer im.locks.Unlock(key.String())

	a, err := im.auction.FindLive(c, key)
	if err == domain.ErrNotFound {
		return nil, &domain.AuctionNotExpiredError{NftContract: key.NftContract, TokenId: key.TokenId}
	} else if err != nil {
		return nil, err
	}
	if !a.IsExpiredAt(im.now().Unix()) {
		return nil, &domain.AuctionNotExpiredError{NftContract: key.NftContract, TokenId: key.TokenId}
	}
	// an auction without bids has no winner, nobody may complete it
	if a.HighestBidder.IsNull() || !caller.Equals(a.HighestBidder) {
		return nil, &domain.BidderNotWinnerError{Bidder: caller.ToLower()}
	}

	flagKey := tgflag.Key{TelegramId: telegramId, NftContract: key.NftContract, TokenId: key.FlagTokenId(a.TokenType())}
	if set, err := im.tgflag.IsSet(c, flagKey); err != nil {
		return nil, err
	} else if set {
		return nil, &domain.TelegramIdFlagAlreadySetError{TelegramId: telegramId, NftContract: flagKey.NftContract, TokenId: flagKey.TokenId}
	}

	payment, err := im.settings.GetPaymentAddress(c)
	if err != nil {
		c.WithField("err", err).Error("settings.GetPaymentAddress failed")
		return nil, err
	}
	bid, err := domain.ToBigInt([]string{a.Erc20HighestBid})
	if err != nil {
		return nil, domain.ErrAmount
	}

	tx := settlement.New()
	prev := *a
	a.State = auction.StateCompleted
	err = tx.Step(c, func(c ctx.Ctx) error {
		return im.auction.Update(c, a)
	}, func(c ctx.Ctx) error {
		return im.auction.Update(c, &prev)
	})
	if err != nil {
		c.WithField("err", err).Error("auction.Update failed")
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

	nftAmount := a.NftAmount
	if a.TokenType() == domain.TokenType721 {
		nftAmount = 1
	}
	payout := &settlement.Payout{
		Ledger:    im.ledger,
		Payer:     a.HighestBidder,
		Payee:     payment,
		Erc20:     a.Erc20Contract,
		Amount:    bid[0],
		TokenType: a.TokenType(),
		Key:       key,
		NftTo:     a.HighestBidder,
		NftAmount: nftAmount,
	}
	if err := payout.Run(c, tx); err != nil {
		tx.Rollback(c)
		return nil, err
	}

	im.event.Record(c, event.TypeAuctionCompleted, map[string]interface{}{
		"nftContract":     a.NftContract,
		"tokenId":         a.TokenId,
		"winner":          a.HighestBidder,
		"telegramId":      telegramId,
		"erc20HighestBid": a.Erc20HighestBid,
	})
	return a, nil
}

func (im *impl) GetAuction(c ctx.Ctx, key domain.AssetKey) (*auction.Auction, error) {
	return im.auction.FindOne(c, key.ToLower())
}

func (im *impl) IsActive(c ctx.Ctx, key domain.AssetKey) (bool, error) {
	a, err := im.auction.FindOne(c, key.ToLower())
	if err == domain.ErrNotFound {
		return false, nil
	} else if err != nil {
		return false, err
	}
	return a.IsActiveAt(im.now().Unix()), nil
}

func (im *impl) IsExpired(c ctx.Ctx, key domain.AssetKey) (bool, error) {
	a, err := im.auction.FindOne(c, key.ToLower())
	if err == domain.ErrNotFound {
		return false, nil
	} else if err != nil {
		return false, err
	}
	return a.IsExpiredAt(im.now().Unix()), nil
}

func (im *impl) IsCompleted(c ctx.Ctx, key domain.AssetKey) (bool, error) {
	a, err := im.auction.FindOne(c, key.ToLower())
	if err == domain.ErrNotFound {
		return false, nil
	} else if err != nil {
		return false, err
	}
	return a.State == auction.StateCompleted, nil
}
