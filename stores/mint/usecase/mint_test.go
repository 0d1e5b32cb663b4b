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
	mEvent "github.com/strategic-club/commerce-api/domain/event/mocks"
	"github.com/strategic-club/commerce-api/domain/mint"
	mMint "github.com/strategic-club/commerce-api/domain/mint/mocks"
	mSettings "github.com/strategic-club/commerce-api/domain/settings/mocks"
	"github.com/strategic-club/commerce-api/domain/tgflag"
	mTgflag "github.com/strategic-club/commerce-api/domain/tgflag/mocks"
	"github.com/strategic-club/commerce-api/service/ledger/memory"
)

var mockCtx = ctx.Background()

var (
	nftContract = domain.Address("0xdcf0de6b17785a143d006e1515a6afd123cde8ba")
	erc20       = domain.Address("0x07fe9ffd85b54a3a18467d3b5e91a55ecc52a268")
	escrow      = domain.Address("0x1a01ecd2263a9d5b5967667e508ea22db478bc4b")
	buyer       = domain.Address("0xce4468e7ce84aceb74363f4ea64e5a038176f369")
	payee       = domain.Address("0xdf8650b0ca1260f7a2f4fdff9082aede554f65ad")
	tokenId     = domain.TokenId("7")
	telegramId  = domain.TelegramId(555)
)

type testsuite struct {
	suite.Suite
	mockRepo     *mMint.Repo
	mockTgflag   *mTgflag.UseCase
	mockSettings *mSettings.UseCase
	mockEvent    *mEvent.Recorder
	ledger       *memory.Ledger
	locks        *keylock.KeyLock
	subject      mint.UseCase
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (t *testsuite) SetupTest() {
	t.mockRepo = &mMint.Repo{}
	t.mockTgflag = &mTgflag.UseCase{}
	t.mockSettings = &mSettings.UseCase{}
	t.mockEvent = &mEvent.Recorder{}
	t.mockEvent.On("Record", mock.Anything, mock.Anything, mock.Anything).Maybe()
	t.ledger = memory.New(escrow)
	t.locks = keylock.New()
	t.subject = New(&MintUseCaseCfg{
		MintRepo: t.mockRepo,
		TgFlag:   t.mockTgflag,
		Settings: t.mockSettings,
		Ledger:   t.ledger,
		Event:    t.mockEvent,
		Locks:    t.locks,
	})
}

// Creating a mint must hold the asset lock shared with the withdrawal guard,
// so escrow cannot be drained between the ownership check and the commitment
// write.
func (t *testsuite) TestCreateMintHoldsAssetLock() {
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
		_, err := t.subject.CreateMint(mockCtx, &mint.CreateMintPayload{
			NftContract:   nftContract,
			TokenId:       tokenId,
			TokenType:     domain.TokenType721,
			Erc20Contract: erc20,
			Erc20Amount:   "25",
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

func (t *testsuite) key() domain.AssetKey {
	return domain.AssetKey{NftContract: nftContract, TokenId: tokenId}
}

func (t *testsuite) liveMint1155(amount int64) *mint.Mint {
	return &mint.Mint{
		NftContract:   nftContract,
		TokenId:       tokenId,
		NftAmount:     amount,
		Erc20Contract: erc20,
		Erc20Amount:   "25",
		IsActive:      true,
	}
}

func (t *testsuite) TestCreateMint721() {
	t.ledger.SetErc721Owner(nftContract, tokenId, escrow)
	t.mockRepo.On("FindLive", mockCtx, t.key()).Return(nil, domain.ErrNotFound).Once()
	t.mockRepo.On("Create", mockCtx, mock.Anything).Return(nil).Once()

	m, err := t.subject.CreateMint(mockCtx, &mint.CreateMintPayload{
		NftContract:   nftContract,
		TokenId:       tokenId,
		TokenType:     domain.TokenType721,
		NftAmount:     9, // ignored for 721
		Erc20Contract: erc20,
		Erc20Amount:   "25",
	})
	t.NoError(err)
	t.Equal(int64(0), m.NftAmount)
	t.True(m.IsActive)
}

func (t *testsuite) TestCreateMintAlreadyCreated() {
	t.ledger.SetErc1155Balance(nftContract, escrow, tokenId, 10)
	t.mockRepo.On("FindLive", mockCtx, t.key()).Return(t.liveMint1155(10), nil).Once()

	_, err := t.subject.CreateMint(mockCtx, &mint.CreateMintPayload{
		NftContract:   nftContract,
		TokenId:       tokenId,
		TokenType:     domain.TokenType1155,
		NftAmount:     10,
		Erc20Contract: erc20,
		Erc20Amount:   "25",
	})
	t.IsType(&domain.MintAlreadyCreatedError{}, err)
}

func (t *testsuite) TestCreateMintNotEscrowed() {
	_, err := t.subject.CreateMint(mockCtx, &mint.CreateMintPayload{
		NftContract:   nftContract,
		TokenId:       tokenId,
		TokenType:     domain.TokenType1155,
		NftAmount:     10,
		Erc20Contract: erc20,
		Erc20Amount:   "25",
	})
	t.IsType(&domain.NftError{}, err)
}

func (t *testsuite) TestCreateMintBadAmounts() {
	for _, p := range []*mint.CreateMintPayload{
		{NftContract: nftContract, TokenId: tokenId, TokenType: domain.TokenType721, Erc20Contract: erc20, Erc20Amount: "0"},
		{NftContract: nftContract, TokenId: tokenId, TokenType: domain.TokenType721, Erc20Contract: erc20, Erc20Amount: "xyz"},
		{NftContract: nftContract, TokenId: tokenId, TokenType: domain.TokenType1155, NftAmount: 0, Erc20Contract: erc20, Erc20Amount: "25"},
	} {
		_, err := t.subject.CreateMint(mockCtx, p)
		t.Equal(domain.ErrAmount, err)
	}
}

func (t *testsuite) TestRemoveMint() {
	m := t.liveMint1155(10)
	t.mockRepo.On("FindLive", mockCtx, t.key()).Return(m, nil).Once()
	t.mockRepo.On("Update", mockCtx, mock.MatchedBy(func(u *mint.Mint) bool {
		return !u.IsActive
	})).Return(nil).Once()

	t.NoError(t.subject.RemoveMint(mockCtx, t.key()))
}

func (t *testsuite) TestRemoveMintNotCreated() {
	t.mockRepo.On("FindLive", mockCtx, t.key()).Return(nil, domain.ErrNotFound).Once()

	err := t.subject.RemoveMint(mockCtx, t.key())
	t.IsType(&domain.MintNotCreatedError{}, err)
}

func (t *testsuite) TestMint1155() {
	m := t.liveMint1155(10)
	t.ledger.SetErc20Balance(erc20, buyer, big.NewInt(100))
	t.ledger.SetErc1155Balance(nftContract, escrow, tokenId, 10)

	flagKey := tgflag.Key{TelegramId: telegramId, NftContract: nftContract, TokenId: tokenId}
	t.mockRepo.On("FindLive", mockCtx, t.key()).Return(m, nil).Once()
	t.mockTgflag.On("IsSet", mockCtx, flagKey).Return(false, nil).Once()
	t.mockSettings.On("GetPaymentAddress", mockCtx).Return(payee, nil).Once()
	t.mockRepo.On("Update", mockCtx, mock.MatchedBy(func(u *mint.Mint) bool {
		return u.NftAmount == 7 && u.IsActive
	})).Return(nil).Once()
	t.mockTgflag.On("SetFlag", mockCtx, flagKey).Return(nil).Once()

	got, err := t.subject.Mint(mockCtx, telegramId, t.key(), buyer, 3)
	t.NoError(err)
	t.Equal(int64(7), got.NftAmount)
	t.True(got.IsActive)

	// 3 units at 25 each
	payeeBal, _ := t.ledger.Erc20BalanceOf(mockCtx, erc20, payee)
	t.Equal(big.NewInt(75), payeeBal)
	bal, _ := t.ledger.Erc1155BalanceOf(mockCtx, nftContract, buyer, tokenId)
	t.Equal(int64(3), bal)
}

func (t *testsuite) TestMint1155Exhausted() {
	m := t.liveMint1155(3)
	t.ledger.SetErc20Balance(erc20, buyer, big.NewInt(100))
	t.ledger.SetErc1155Balance(nftContract, escrow, tokenId, 3)

	t.mockRepo.On("FindLive", mockCtx, t.key()).Return(m, nil).Once()
	t.mockTgflag.On("IsSet", mockCtx, mock.Anything).Return(false, nil).Once()
	t.mockSettings.On("GetPaymentAddress", mockCtx).Return(payee, nil).Once()
	t.mockRepo.On("Update", mockCtx, mock.MatchedBy(func(u *mint.Mint) bool {
		return u.NftAmount == 0 && !u.IsActive
	})).Return(nil).Once()
	t.mockTgflag.On("SetFlag", mockCtx, mock.Anything).Return(nil).Once()

	got, err := t.subject.Mint(mockCtx, telegramId, t.key(), buyer, 3)
	t.NoError(err)
	t.False(got.IsActive)
}

func (t *testsuite) TestMint721() {
	m := t.liveMint1155(0) // 721 sentinel
	t.ledger.SetErc20Balance(erc20, buyer, big.NewInt(100))
	t.ledger.SetErc721Owner(nftContract, tokenId, escrow)

	flagKey := tgflag.Key{TelegramId: telegramId, NftContract: nftContract, TokenId: domain.WildcardTokenId}
	t.mockRepo.On("FindLive", mockCtx, t.key()).Return(m, nil).Once()
	t.mockTgflag.On("IsSet", mockCtx, flagKey).Return(false, nil).Once()
	t.mockSettings.On("GetPaymentAddress", mockCtx).Return(payee, nil).Once()
	t.mockRepo.On("Update", mockCtx, mock.MatchedBy(func(u *mint.Mint) bool {
		return !u.IsActive
	})).Return(nil).Once()
	t.mockTgflag.On("SetFlag", mockCtx, flagKey).Return(nil).Once()

	_, err := t.subject.Mint(mockCtx, telegramId, t.key(), buyer, 1)
	t.NoError(err)

	owner, _ := t.ledger.Erc721OwnerOf(mockCtx, nftContract, tokenId)
	t.Equal(buyer, owner)
}

func (t *testsuite) TestMint721QuantityMustBeOne() {
	m := t.liveMint1155(0)
	t.mockRepo.On("FindLive", mockCtx, t.key()).Return(m, nil).Once()
	t.mockTgflag.On("IsSet", mockCtx, mock.Anything).Return(false, nil).Once()

	_, err := t.subject.Mint(mockCtx, telegramId, t.key(), buyer, 2)
	t.Equal(domain.ErrAmount, err)
}

func (t *testsuite) TestMintQuantityOverSupply() {
	m := t.liveMint1155(3)
	t.mockRepo.On("FindLive", mockCtx, t.key()).Return(m, nil).Once()
	t.mockTgflag.On("IsSet", mockCtx, mock.Anything).Return(false, nil).Once()

	_, err := t.subject.Mint(mockCtx, telegramId, t.key(), buyer, 4)
	t.Equal(domain.ErrAmount, err)
}

func (t *testsuite) TestMintInsufficientBalance() {
	m := t.liveMint1155(10)
	t.ledger.SetErc20Balance(erc20, buyer, big.NewInt(50))
	t.mockRepo.On("FindLive", mockCtx, t.key()).Return(m, nil).Once()
	t.mockTgflag.On("IsSet", mockCtx, mock.Anything).Return(false, nil).Once()

	// 3 units at 25 each needs 75
	_, err := t.subject.Mint(mockCtx, telegramId, t.key(), buyer, 3)
	t.Equal(domain.ErrAmount, err)
}

func (t *testsuite) TestMintFlagAlreadySet() {
	m := t.liveMint1155(10)
	t.mockRepo.On("FindLive", mockCtx, t.key()).Return(m, nil).Once()
	t.mockTgflag.On("IsSet", mockCtx, mock.Anything).Return(true, nil).Once()

	_, err := t.subject.Mint(mockCtx, telegramId, t.key(), buyer, 1)
	t.IsType(&domain.TelegramIdFlagAlreadySetError{}, err)
}

func (t *testsuite) TestMintNotCreated() {
	t.mockRepo.On("FindLive", mockCtx, t.key()).Return(nil, domain.ErrNotFound).Once()

	_, err := t.subject.Mint(mockCtx, telegramId, t.key(), buyer, 1)
	t.IsType(&domain.MintNotCreatedError{}, err)
}

func (t *testsuite) TestMintRollbackOnReceiverFailure() {
	m := t.liveMint1155(10)
	t.ledger.SetErc20Balance(erc20, buyer, big.NewInt(100))
	t.ledger.SetErc1155Balance(nftContract, escrow, tokenId, 10)
	t.ledger.RegisterReceiver(payee, memory.ReceiverNotImplemented)

	flagKey := tgflag.Key{TelegramId: telegramId, NftContract: nftContract, TokenId: tokenId}
	t.mockRepo.On("FindLive", mockCtx, t.key()).Return(m, nil).Once()
	t.mockTgflag.On("IsSet", mockCtx, flagKey).Return(false, nil).Once()
	t.mockSettings.On("GetPaymentAddress", mockCtx).Return(payee, nil).Once()
	t.mockRepo.On("Update", mockCtx, mock.MatchedBy(func(u *mint.Mint) bool {
		return u.NftAmount == 7
	})).Return(nil).Once()
	t.mockTgflag.On("SetFlag", mockCtx, flagKey).Return(nil).Once()
	t.mockTgflag.On("ResetFlag", mockCtx, flagKey).Return(nil).Once()
	t.mockRepo.On("Update", mockCtx, mock.MatchedBy(func(u *mint.Mint) bool {
		return u.NftAmount == 10 && u.IsActive
	})).Return(nil).Once()

	_, err := t.subject.Mint(mockCtx, telegramId, t.key(), buyer, 3)
	t.IsType(&domain.Erc20ReceiverNotImplError{}, err)

	buyerBal, _ := t.ledger.Erc20BalanceOf(mockCtx, erc20, buyer)
	t.Equal(big.NewInt(100), buyerBal)
	escrowBal, _ := t.ledger.Erc1155BalanceOf(mockCtx, nftContract, escrow, tokenId)
	t.Equal(int64(10), escrowBal)
}

func (t *testsuite) TestIsActive() {
	t.mockRepo.On("FindOne", mockCtx, t.key()).Return(t.liveMint1155(10), nil).Once()

	active, err := t.subject.IsActive(mockCtx, t.key())
	t.NoError(err)
	t.True(active)
}

func (t *testsuite) TestIsActiveMissingRecord() {
	t.mockRepo.On("FindOne", mockCtx, t.key()).Return(nil, domain.ErrNotFound).Once()

	active, err := t.subject.IsActive(mockCtx, t.key())
	t.NoError(err)
	t.False(active)
}
