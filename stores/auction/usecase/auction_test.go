package usecase

import (
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/strategic-club/commerce-api/base/ctx"
	"github.com/strategic-club/commerce-api/base/keylock"
	"github.com/strategic-club/commerce-api/domain"
	"github.com/strategic-club/commerce-api/domain/auction"
	mAuction "github.com/strategic-club/commerce-api/domain/auction/mocks"
	"github.com/strategic-club/commerce-api/domain/event"
	mEvent "github.com/strategic-club/commerce-api/domain/event/mocks"
	mSettings "github.com/strategic-club/commerce-api/domain/settings/mocks"
	mTgflag "github.com/strategic-club/commerce-api/domain/tgflag/mocks"
	"github.com/strategic-club/commerce-api/domain/tgflag"
	"github.com/strategic-club/commerce-api/service/ledger/memory"
)

var mockCtx = ctx.Background()

var (
	nftContract = domain.Address("0xDCf0de6b17785A143D006E1515A6aFD123CdE8ba")
	erc20       = domain.Address("0x07fe9ffd85b54a3a18467d3b5e91a55ecc52a268")
	escrow      = domain.Address("0x1a01ecd2263a9d5b5967667e508ea22db478bc4b")
	bidder      = domain.Address("0xCE4468e7Ce84acEB74363F4EA64e5A038176F369")
	payee       = domain.Address("0xdf8650b0ca1260f7a2f4fdff9082aede554f65ad")
	tokenId     = domain.TokenId("42")
	telegramId  = domain.TelegramId(777)
)

type testsuite struct {
	suite.Suite
	mockRepo     *mAuction.Repo
	mockTgflag   *mTgflag.UseCase
	mockSettings *mSettings.UseCase
	mockEvent    *mEvent.Recorder
	ledger       *memory.Ledger
	locks        *keylock.KeyLock
	now          int64
	subject      auction.UseCase
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (t *testsuite) SetupTest() {
	t.mockRepo = &mAuction.Repo{}
	t.mockTgflag = &mTgflag.UseCase{}
	t.mockSettings = &mSettings.UseCase{}
	t.mockEvent = &mEvent.Recorder{}
	t.mockEvent.On("Record", mock.Anything, mock.Anything, mock.Anything).Maybe()
	t.ledger = memory.New(escrow)
	t.locks = keylock.New()
	t.now = 1_000_000
	t.subject = New(&AuctionUseCaseCfg{
		AuctionRepo: t.mockRepo,
		TgFlag:      t.mockTgflag,
		Settings:    t.mockSettings,
		Ledger:      t.ledger,
		Event:       t.mockEvent,
		Locks:       t.locks,
		Now:         func() time.Time { return time.Unix(t.now, 0) },
	})
}

func (t *testsuite) key() domain.AssetKey {
	return domain.AssetKey{NftContract: nftContract, TokenId: tokenId}.ToLower()
}

func (t *testsuite) activeAuction721() *auction.Auction {
	return &auction.Auction{
		NftContract:              nftContract.ToLower(),
		TokenId:                  tokenId,
		NftAmount:                0,
		HighestBidder:            domain.EmptyAddress,
		Erc20Contract:            erc20.ToLower(),
		Erc20StartPrice:          "100",
		Erc20MinimumBidIncrement: "10",
		Erc20HighestBid:          "100",
		StartTime:                t.now - 100,
		EndTime:                  t.now + 3600,
		ExtendTimeSec:            300,
		State:                    auction.StateActive,
	}
}

func (t *testsuite) TestCreateAuction721() {
	t.ledger.SetErc721Owner(nftContract, tokenId, escrow)
	t.mockRepo.On("FindLive", mockCtx, t.key()).Return(nil, domain.ErrNotFound).Once()
	t.mockRepo.On("Create", mockCtx, mock.Anything).Return(nil).Once()

	a, err := t.subject.CreateAuction(mockCtx, &auction.CreateAuctionPayload{
		NftContract:   nftContract,
		TokenId:       tokenId,
		TokenType:     domain.TokenType721,
		NftAmount:     5, // ignored for 721
		Erc20Contract: erc20,
		StartPrice:    "100",
		MinIncrement:  "10",
		DurationSec:   3600,
		ExtendTimeSec: 300,
	})
	t.NoError(err)
	t.Equal(int64(0), a.NftAmount)
	t.Equal(domain.TokenType721, a.TokenType())
	t.Equal("100", a.Erc20HighestBid)
	t.Equal(t.now+3600, a.EndTime)
	t.Equal(auction.StateActive, a.State)
	t.Equal(nftContract.ToLower(), a.NftContract)
}

func (t *testsuite) TestCreateAuction1155() {
	t.ledger.SetErc1155Balance(nftContract, escrow, tokenId, 10)
	t.mockRepo.On("FindLive", mockCtx, t.key()).Return(nil, domain.ErrNotFound).Once()
	t.mockRepo.On("Create", mockCtx, mock.Anything).Return(nil).Once()

	a, err := t.subject.CreateAuction(mockCtx, &auction.CreateAuctionPayload{
		NftContract:   nftContract,
		TokenId:       tokenId,
		TokenType:     domain.TokenType1155,
		NftAmount:     10,
		Erc20Contract: erc20,
		StartPrice:    "100",
		MinIncrement:  "10",
		DurationSec:   3600,
	})
	t.NoError(err)
	t.Equal(int64(10), a.NftAmount)
	t.Equal(domain.TokenType1155, a.TokenType())
}

func (t *testsuite) TestCreateAuctionNotEscrowed() {
	// 721 token held by someone else
	t.ledger.SetErc721Owner(nftContract, tokenId, bidder)

	_, err := t.subject.CreateAuction(mockCtx, &auction.CreateAuctionPayload{
		NftContract:   nftContract,
		TokenId:       tokenId,
		TokenType:     domain.TokenType721,
		Erc20Contract: erc20,
		StartPrice:    "100",
		MinIncrement:  "10",
		DurationSec:   3600,
	})
	t.IsType(&domain.NftError{}, err)
}

func (t *testsuite) TestCreateAuctionInsufficient1155Escrow() {
	t.ledger.SetErc1155Balance(nftContract, escrow, tokenId, 3)

	_, err := t.subject.CreateAuction(mockCtx, &auction.CreateAuctionPayload{
		NftContract:   nftContract,
		TokenId:       tokenId,
		TokenType:     domain.TokenType1155,
		NftAmount:     10,
		Erc20Contract: erc20,
		StartPrice:    "100",
		MinIncrement:  "10",
		DurationSec:   3600,
	})
	t.IsType(&domain.NftError{}, err)
}

func (t *testsuite) TestCreateAuctionWildcardTokenId() {
	_, err := t.subject.CreateAuction(mockCtx, &auction.CreateAuctionPayload{
		NftContract:   nftContract,
		TokenId:       domain.WildcardTokenId,
		TokenType:     domain.TokenType721,
		Erc20Contract: erc20,
		StartPrice:    "100",
		MinIncrement:  "10",
		DurationSec:   3600,
	})
	t.IsType(&domain.NftError{}, err)
}

func (t *testsuite) TestCreateAuctionAlreadyActive() {
	t.ledger.SetErc721Owner(nftContract, tokenId, escrow)
	t.mockRepo.On("FindLive", mockCtx, t.key()).Return(t.activeAuction721(), nil).Once()

	_, err := t.subject.CreateAuction(mockCtx, &auction.CreateAuctionPayload{
		NftContract:   nftContract,
		TokenId:       tokenId,
		TokenType:     domain.TokenType721,
		Erc20Contract: erc20,
		StartPrice:    "100",
		MinIncrement:  "10",
		DurationSec:   3600,
	})
	t.IsType(&domain.AuctionAlreadyActiveError{}, err)
}

func (t *testsuite) TestCreateAuctionBadPrices() {
	for _, p := range []*auction.CreateAuctionPayload{
		{NftContract: nftContract, TokenId: tokenId, TokenType: domain.TokenType721, Erc20Contract: erc20, StartPrice: "0", MinIncrement: "10", DurationSec: 3600},
		{NftContract: nftContract, TokenId: tokenId, TokenType: domain.TokenType721, Erc20Contract: erc20, StartPrice: "100", MinIncrement: "0", DurationSec: 3600},
		{NftContract: nftContract, TokenId: tokenId, TokenType: domain.TokenType721, Erc20Contract: erc20, StartPrice: "100", MinIncrement: "10", DurationSec: 0},
		{NftContract: nftContract, TokenId: tokenId, TokenType: domain.TokenType721, Erc20Contract: erc20, StartPrice: "abc", MinIncrement: "10", DurationSec: 3600},
		{NftContract: nftContract, TokenId: tokenId, TokenType: domain.TokenType1155, NftAmount: 0, Erc20Contract: erc20, StartPrice: "100", MinIncrement: "10", DurationSec: 3600},
	} {
		_, err := t.subject.CreateAuction(mockCtx, p)
		t.Equal(domain.ErrAmount, err)
	}
}

// Creating an auction must hold the asset lock shared with the withdrawal
// guard, so escrow cannot be drained between the ownership check and the
// commitment write.
func (t *testsuite) TestCreateAuctionHoldsAssetLock() {
	t.ledger.SetErc721Owner(nftContract, tokenId, escrow)

	entered := make(chan struct{})
	release := make(chan struct{})
	t.mockRepo.On("FindLive", mock.Anything, t.key()).Run(func(mock.Arguments) {
		close(entered)
		<-release
	}).Return(nil, domain.ErrNotFound).Once()
	t.mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()

	done := make(chan error, 1)
	go func() {
		_, err := t.subject.CreateAuction(mockCtx, &auction.CreateAuctionPayload{
			NftContract:   nftContract,
			TokenId:       tokenId,
			TokenType:     domain.TokenType721,
			Erc20Contract: erc20,
			StartPrice:    "100",
			MinIncrement:  "10",
			DurationSec:   3600,
			ExtendTimeSec: 300,
		})
		done <- err
	}()
	<-entered

	acquired := make(chan struct{})
	go func() {
		t.locks.Lock(t.key().String())
		t.locks.Unlock(t.key().String())
		close(acquired)
	}()

	select {
	case <-acquired:
		t.Fail("asset lock acquired while the create was in flight")
	case <-time.After(50 * time.Millisecond):
	}

	close(release)
	t.NoError(<-done)

	select {
	case <-acquired:
	case <-time.After(time.Second):
		t.Fail("asset lock not released after the create finished")
	}
}

func (t *testsuite) TestRemoveAuction() {
	a := t.activeAuction721()
	t.mockRepo.On("FindLive", mockCtx, t.key()).Return(a, nil).Once()
	t.mockRepo.On("Update", mockCtx, mock.MatchedBy(func(u *auction.Auction) bool {
		return u.State == auction.StateInactive
	})).Return(nil).Once()

	t.NoError(t.subject.RemoveAuction(mockCtx, t.key()))
}

func (t *testsuite) TestRemoveAuctionNotActive() {
	t.mockRepo.On("FindLive", mockCtx, t.key()).Return(nil, domain.ErrNotFound).Once()

	err := t.subject.RemoveAuction(mockCtx, t.key())
	t.IsType(&domain.AuctionNotActiveError{}, err)
}

func (t *testsuite) TestBid() {
	a := t.activeAuction721()
	t.ledger.SetErc20Balance(erc20, bidder, big.NewInt(200))
	t.mockRepo.On("FindLive", mockCtx, t.key()).Return(a, nil).Once()
	t.mockTgflag.On("IsSet", mockCtx, tgflag.Key{TelegramId: telegramId, NftContract: nftContract.ToLower(), TokenId: domain.WildcardTokenId}).Return(false, nil).Once()
	t.mockRepo.On("Update", mockCtx, mock.Anything).Return(nil).Once()

	got, err := t.subject.Bid(mockCtx, telegramId, t.key(), bidder, "110")
	t.NoError(err)
	t.Equal(bidder.ToLower(), got.HighestBidder)
	t.Equal(telegramId, got.HighestTelegramId)
	t.Equal("110", got.Erc20HighestBid)
	// outside the extension window, the end time stays put
	t.Equal(t.now+3600, got.EndTime)
}

func (t *testsuite) TestBidEventCarriesErc20Contract() {
	a := t.activeAuction721()
	t.ledger.SetErc20Balance(erc20, bidder, big.NewInt(200))
	t.mockRepo.On("FindLive", mockCtx, t.key()).Return(a, nil).Once()
	t.mockTgflag.On("IsSet", mockCtx, mock.Anything).Return(false, nil).Once()
	t.mockRepo.On("Update", mockCtx, mock.Anything).Return(nil).Once()

	rec := &mEvent.Recorder{}
	var payload map[string]interface{}
	rec.On("Record", mock.Anything, event.TypeAuctionBid, mock.Anything).Run(func(args mock.Arguments) {
		payload = args.Get(2).(map[string]interface{})
	}).Once()
	t.subject = New(&AuctionUseCaseCfg{
		AuctionRepo: t.mockRepo,
		TgFlag:      t.mockTgflag,
		Settings:    t.mockSettings,
		Ledger:      t.ledger,
		Event:       rec,
		Locks:       t.locks,
		Now:         func() time.Time { return time.Unix(t.now, 0) },
	})

	_, err := t.subject.Bid(mockCtx, telegramId, t.key(), bidder, "110")
	t.NoError(err)
	rec.AssertExpectations(t.T())
	t.Equal(erc20.ToLower(), payload["erc20Contract"])
	t.Equal("110", payload["erc20HighestBid"])
}

func (t *testsuite) TestBidFirstBidCompetesAgainstStartPrice() {
	a := t.activeAuction721()
	t.ledger.SetErc20Balance(erc20, bidder, big.NewInt(200))
	t.mockRepo.On("FindLive", mockCtx, t.key()).Return(a, nil).Once()
	t.mockTgflag.On("IsSet", mockCtx, mock.Anything).Return(false, nil).Once()

	// start price 100, increment 10: 109 is short even with no prior bid
	_, err := t.subject.Bid(mockCtx, telegramId, t.key(), bidder, "109")
	t.Equal(domain.ErrAmount, err)
}

func (t *testsuite) TestBidInsufficientBalance() {
	a := t.activeAuction721()
	t.ledger.SetErc20Balance(erc20, bidder, big.NewInt(50))
	t.mockRepo.On("FindLive", mockCtx, t.key()).Return(a, nil).Once()
	t.mockTgflag.On("IsSet", mockCtx, mock.Anything).Return(false, nil).Once()

	_, err := t.subject.Bid(mockCtx, telegramId, t.key(), bidder, "110")
	t.Equal(domain.ErrAmount, err)
}

func (t *testsuite) TestBidAntiSnipeExtension() {
	a := t.activeAuction721()
	a.EndTime = t.now + 60 // inside the 300s window
	t.ledger.SetErc20Balance(erc20, bidder, big.NewInt(200))
	t.mockRepo.On("FindLive", mockCtx, t.key()).Return(a, nil).Once()
	t.mockTgflag.On("IsSet", mockCtx, mock.Anything).Return(false, nil).Once()
	t.mockRepo.On("Update", mockCtx, mock.Anything).Return(nil).Once()

	got, err := t.subject.Bid(mockCtx, telegramId, t.key(), bidder, "110")
	t.NoError(err)
	t.Equal(t.now+60+300, got.EndTime)
}

func (t *testsuite) TestBidFlagAlreadySet() {
	a := t.activeAuction721()
	t.mockRepo.On("FindLive", mockCtx, t.key()).Return(a, nil).Once()
	t.mockTgflag.On("IsSet", mockCtx, tgflag.Key{TelegramId: telegramId, NftContract: nftContract.ToLower(), TokenId: domain.WildcardTokenId}).Return(true, nil).Once()

	_, err := t.subject.Bid(mockCtx, telegramId, t.key(), bidder, "110")
	t.IsType(&domain.TelegramIdFlagAlreadySetError{}, err)
}

func (t *testsuite) TestBid1155FlagScopedToTokenId() {
	a := t.activeAuction721()
	a.NftAmount = 10
	t.ledger.SetErc20Balance(erc20, bidder, big.NewInt(200))
	t.mockRepo.On("FindLive", mockCtx, t.key()).Return(a, nil).Once()
	t.mockTgflag.On("IsSet", mockCtx, tgflag.Key{TelegramId: telegramId, NftContract: nftContract.ToLower(), TokenId: tokenId}).Return(false, nil).Once()
	t.mockRepo.On("Update", mockCtx, mock.Anything).Return(nil).Once()

	_, err := t.subject.Bid(mockCtx, telegramId, t.key(), bidder, "110")
	t.NoError(err)
}

func (t *testsuite) TestBidExpiredAuction() {
	a := t.activeAuction721()
	a.EndTime = t.now
	t.mockRepo.On("FindLive", mockCtx, t.key()).Return(a, nil).Once()

	_, err := t.subject.Bid(mockCtx, telegramId, t.key(), bidder, "110")
	t.IsType(&domain.AuctionNotActiveError{}, err)
}

func (t *testsuite) TestBidNullArgs() {
	_, err := t.subject.Bid(mockCtx, domain.TelegramId(0), t.key(), bidder, "110")
	t.Equal(domain.ErrNullTelegramId, err)

	_, err = t.subject.Bid(mockCtx, telegramId, t.key(), domain.EmptyAddress, "110")
	t.Equal(domain.ErrNullAddress, err)
}

func (t *testsuite) TestComplete() {
	a := t.activeAuction721()
	a.HighestBidder = bidder.ToLower()
	a.HighestTelegramId = telegramId
	a.Erc20HighestBid = "150"
	a.EndTime = t.now - 1

	t.ledger.SetErc20Balance(erc20, bidder, big.NewInt(150))
	t.ledger.SetErc721Owner(nftContract, tokenId, escrow)

	flagKey := tgflag.Key{TelegramId: telegramId, NftContract: nftContract.ToLower(), TokenId: domain.WildcardTokenId}
	t.mockRepo.On("FindLive", mockCtx, t.key()).Return(a, nil).Once()
	t.mockTgflag.On("IsSet", mockCtx, flagKey).Return(false, nil).Once()
	t.mockSettings.On("GetPaymentAddress", mockCtx).Return(payee, nil).Once()
	t.mockRepo.On("Update", mockCtx, mock.MatchedBy(func(u *auction.Auction) bool {
		return u.State == auction.StateCompleted
	})).Return(nil).Once()
	t.mockTgflag.On("SetFlag", mockCtx, flagKey).Return(nil).Once()

	got, err := t.subject.Complete(mockCtx, telegramId, t.key(), bidder)
	t.NoError(err)
	t.Equal(auction.StateCompleted, got.State)

	payeeBal, _ := t.ledger.Erc20BalanceOf(mockCtx, erc20, payee)
	t.Equal(big.NewInt(150), payeeBal)
	owner, _ := t.ledger.Erc721OwnerOf(mockCtx, nftContract, tokenId)
	t.Equal(bidder.ToLower(), owner)
}

func (t *testsuite) TestCompleteContractPayeeAck() {
	a := t.activeAuction721()
	a.NftAmount = 3
	a.HighestBidder = bidder.ToLower()
	a.Erc20HighestBid = "150"
	a.EndTime = t.now - 1

	t.ledger.SetErc20Balance(erc20, bidder, big.NewInt(150))
	t.ledger.SetErc1155Balance(nftContract, escrow, tokenId, 3)
	t.ledger.RegisterReceiver(payee, memory.ReceiverAck)

	t.mockRepo.On("FindLive", mockCtx, t.key()).Return(a, nil).Once()
	t.mockTgflag.On("IsSet", mockCtx, mock.Anything).Return(false, nil).Once()
	t.mockSettings.On("GetPaymentAddress", mockCtx).Return(payee, nil).Once()
	t.mockRepo.On("Update", mockCtx, mock.Anything).Return(nil).Once()
	t.mockTgflag.On("SetFlag", mockCtx, mock.Anything).Return(nil).Once()

	_, err := t.subject.Complete(mockCtx, telegramId, t.key(), bidder)
	t.NoError(err)

	bal, _ := t.ledger.Erc1155BalanceOf(mockCtx, nftContract, bidder, tokenId)
	t.Equal(int64(3), bal)
}

func (t *testsuite) TestCompleteRollbackOnReceiverFailure() {
	a := t.activeAuction721()
	a.HighestBidder = bidder.ToLower()
	a.Erc20HighestBid = "150"
	a.EndTime = t.now - 1
	prevState := a.State

	t.ledger.SetErc20Balance(erc20, bidder, big.NewInt(150))
	t.ledger.SetErc721Owner(nftContract, tokenId, escrow)
	t.ledger.RegisterReceiver(payee, memory.ReceiverWrongValue)

	flagKey := tgflag.Key{TelegramId: telegramId, NftContract: nftContract.ToLower(), TokenId: domain.WildcardTokenId}
	t.mockRepo.On("FindLive", mockCtx, t.key()).Return(a, nil).Once()
	t.mockTgflag.On("IsSet", mockCtx, flagKey).Return(false, nil).Once()
	t.mockSettings.On("GetPaymentAddress", mockCtx).Return(payee, nil).Once()
	t.mockRepo.On("Update", mockCtx, mock.MatchedBy(func(u *auction.Auction) bool {
		return u.State == auction.StateCompleted
	})).Return(nil).Once()
	t.mockTgflag.On("SetFlag", mockCtx, flagKey).Return(nil).Once()
	// rollback unwinds the flag and the record in reverse order
	t.mockTgflag.On("ResetFlag", mockCtx, flagKey).Return(nil).Once()
	t.mockRepo.On("Update", mockCtx, mock.MatchedBy(func(u *auction.Auction) bool {
		return u.State == prevState
	})).Return(nil).Once()

	_, err := t.subject.Complete(mockCtx, telegramId, t.key(), bidder)
	t.IsType(&domain.Erc20ReceiverRetValError{}, err)

	// the payment leg was compensated, nothing moved
	bidderBal, _ := t.ledger.Erc20BalanceOf(mockCtx, erc20, bidder)
	t.Equal(big.NewInt(150), bidderBal)
	payeeBal, _ := t.ledger.Erc20BalanceOf(mockCtx, erc20, payee)
	t.Equal(big.NewInt(0), payeeBal)
	owner, _ := t.ledger.Erc721OwnerOf(mockCtx, nftContract, tokenId)
	t.Equal(escrow.ToLower(), owner)
}

func (t *testsuite) TestCompleteNotExpired() {
	a := t.activeAuction721()
	a.HighestBidder = bidder.ToLower()
	t.mockRepo.On("FindLive", mockCtx, t.key()).Return(a, nil).Once()

	_, err := t.subject.Complete(mockCtx, telegramId, t.key(), bidder)
	t.IsType(&domain.AuctionNotExpiredError{}, err)
}

func (t *testsuite) TestCompleteNotWinner() {
	a := t.activeAuction721()
	a.HighestBidder = bidder.ToLower()
	a.EndTime = t.now - 1
	t.mockRepo.On("FindLive", mockCtx, t.key()).Return(a, nil).Once()

	_, err := t.subject.Complete(mockCtx, telegramId, t.key(), payee)
	t.IsType(&domain.BidderNotWinnerError{}, err)
}

func (t *testsuite) TestCompleteNoBids() {
	a := t.activeAuction721()
	a.EndTime = t.now - 1
	t.mockRepo.On("FindLive", mockCtx, t.key()).Return(a, nil).Once()

	// nobody bid, nobody wins, not even the caller
	_, err := t.subject.Complete(mockCtx, telegramId, t.key(), bidder)
	t.IsType(&domain.BidderNotWinnerError{}, err)
}

func (t *testsuite) TestIsActiveIsExpiredIsCompleted() {
	a := t.activeAuction721()
	t.mockRepo.On("FindOne", mockCtx, t.key()).Return(a, nil)

	active, err := t.subject.IsActive(mockCtx, t.key())
	t.NoError(err)
	t.True(active)

	expired, err := t.subject.IsExpired(mockCtx, t.key())
	t.NoError(err)
	t.False(expired)

	t.now = a.EndTime
	active, _ = t.subject.IsActive(mockCtx, t.key())
	t.False(active)
	expired, _ = t.subject.IsExpired(mockCtx, t.key())
	t.True(expired)

	completed, err := t.subject.IsCompleted(mockCtx, t.key())
	t.NoError(err)
	t.False(completed)
}

func (t *testsuite) TestStatusQueriesMissingRecord() {
	t.mockRepo.On("FindOne", mockCtx, t.key()).Return(nil, domain.ErrNotFound)

	active, err := t.subject.IsActive(mockCtx, t.key())
	t.NoError(err)
	t.False(active)

	expired, err := t.subject.IsExpired(mockCtx, t.key())
	t.NoError(err)
	t.False(expired)

	completed, err := t.subject.IsCompleted(mockCtx, t.key())
	t.NoError(err)
	t.False(completed)
}
