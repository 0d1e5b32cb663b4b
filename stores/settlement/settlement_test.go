package settlement

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/xerrors"
	"github.com/strategic-club/commerce-api/base/ctx"
	"github.com/strategic-club/commerce-api/domain"
	"github.com/strategic-club/commerce-api/service/ledger/memory"
)

var mockCtx = ctx.Background()

func TestRollbackUnwindsInReverseOrder(t *testing.T) {
	req := require.New(t)
	tx := New()

	var applied, reverted []int
	for i := 1; i <= 3; i++ {
		i := i
		err := tx.Step(mockCtx, func(c ctx.Ctx) error {
			applied = append(applied, i)
			return nil
		}, func(c ctx.Ctx) error {
			reverted = append(reverted, i)
			return nil
		})
		req.NoError(err)
	}

	tx.Rollback(mockCtx)
	req.Equal([]int{1, 2, 3}, applied)
	req.Equal([]int{3, 2, 1}, reverted)
}

func TestFailedStepIsNotReverted(t *testing.T) {
	req := require.New(t)
	tx := New()

	var reverted []int
	req.NoError(tx.Step(mockCtx, func(c ctx.Ctx) error {
		return nil
	}, func(c ctx.Ctx) error {
		reverted = append(reverted, 1)
		return nil
	}))
	req.Error(tx.Step(mockCtx, func(c ctx.Ctx) error {
		return xerrors.New("boom")
	}, func(c ctx.Ctx) error {
		reverted = append(reverted, 2)
		return nil
	}))

	tx.Rollback(mockCtx)
	req.Equal([]int{1}, reverted)
}

func TestNilRevertIsSkipped(t *testing.T) {
	req := require.New(t)
	tx := New()

	req.NoError(tx.Step(mockCtx, func(c ctx.Ctx) error { return nil }, nil))
	tx.Rollback(mockCtx)
}

func TestRevertFailureIsSwallowed(t *testing.T) {
	req := require.New(t)
	tx := New()

	var reverted []int
	req.NoError(tx.Step(mockCtx, func(c ctx.Ctx) error { return nil }, func(c ctx.Ctx) error {
		reverted = append(reverted, 1)
		return nil
	}))
	req.NoError(tx.Step(mockCtx, func(c ctx.Ctx) error { return nil }, func(c ctx.Ctx) error {
		return xerrors.New("revert boom")
	}))

	// the failing revert must not stop the earlier one from running
	tx.Rollback(mockCtx)
	req.Equal([]int{1}, reverted)
}

func TestPayoutSkipsCallbackForEoaPayee(t *testing.T) {
	req := require.New(t)
	escrow := domain.Address("0x1a01ecd2263a9d5b5967667e508ea22db478bc4b")
	payer := domain.Address("0xce4468e7ce84aceb74363f4ea64e5a038176f369")
	payee := domain.Address("0xdf8650b0ca1260f7a2f4fdff9082aede554f65ad")
	erc20 := domain.Address("0x07fe9ffd85b54a3a18467d3b5e91a55ecc52a268")
	nftContract := domain.Address("0xdcf0de6b17785a143d006e1515a6afd123cde8ba")
	key := domain.AssetKey{NftContract: nftContract, TokenId: domain.TokenId("1")}

	l := memory.New(escrow)
	l.SetErc20Balance(erc20, payer, big.NewInt(100))
	l.SetErc721Owner(nftContract, key.TokenId, escrow)

	tx := New()
	payout := &Payout{
		Ledger:    l,
		Payer:     payer,
		Payee:     payee,
		Erc20:     erc20,
		Amount:    big.NewInt(100),
		TokenType: domain.TokenType721,
		Key:       key,
		NftTo:     payer,
		NftAmount: 1,
	}
	req.NoError(payout.Run(mockCtx, tx))

	bal, _ := l.Erc20BalanceOf(mockCtx, erc20, payee)
	req.Equal(big.NewInt(100), bal)
	owner, _ := l.Erc721OwnerOf(mockCtx, nftContract, key.TokenId)
	req.Equal(payer, owner)
}

func TestPayoutZeroAmountSkipsPaymentLeg(t *testing.T) {
	req := require.New(t)
	escrow := domain.Address("0x1a01ecd2263a9d5b5967667e508ea22db478bc4b")
	redeemer := domain.Address("0xce4468e7ce84aceb74363f4ea64e5a038176f369")
	nftContract := domain.Address("0xdcf0de6b17785a143d006e1515a6afd123cde8ba")
	key := domain.AssetKey{NftContract: nftContract, TokenId: domain.TokenId("2")}

	l := memory.New(escrow)
	l.SetErc1155Balance(nftContract, escrow, key.TokenId, 5)

	tx := New()
	payout := &Payout{
		Ledger:    l,
		Payer:     redeemer,
		Amount:    big.NewInt(0),
		TokenType: domain.TokenType1155,
		Key:       key,
		NftTo:     redeemer,
		NftAmount: 5,
	}
	req.NoError(payout.Run(mockCtx, tx))

	bal, _ := l.Erc1155BalanceOf(mockCtx, nftContract, redeemer, key.TokenId)
	req.Equal(int64(5), bal)
}

func TestPayoutNftFailureLeavesCompensationRegistered(t *testing.T) {
	req := require.New(t)
	escrow := domain.Address("0x1a01ecd2263a9d5b5967667e508ea22db478bc4b")
	payer := domain.Address("0xce4468e7ce84aceb74363f4ea64e5a038176f369")
	payee := domain.Address("0xdf8650b0ca1260f7a2f4fdff9082aede554f65ad")
	erc20 := domain.Address("0x07fe9ffd85b54a3a18467d3b5e91a55ecc52a268")
	nftContract := domain.Address("0xdcf0de6b17785a143d006e1515a6afd123cde8ba")
	// token never escrowed, the nft leg fails after the payment succeeds
	key := domain.AssetKey{NftContract: nftContract, TokenId: domain.TokenId("3")}

	l := memory.New(escrow)
	l.SetErc20Balance(erc20, payer, big.NewInt(100))

	tx := New()
	payout := &Payout{
		Ledger:    l,
		Payer:     payer,
		Payee:     payee,
		Erc20:     erc20,
		Amount:    big.NewInt(100),
		TokenType: domain.TokenType721,
		Key:       key,
		NftTo:     payer,
		NftAmount: 1,
	}
	req.Error(payout.Run(mockCtx, tx))

	tx.Rollback(mockCtx)
	bal, _ := l.Erc20BalanceOf(mockCtx, erc20, payer)
	req.Equal(big.NewInt(100), bal)
}
