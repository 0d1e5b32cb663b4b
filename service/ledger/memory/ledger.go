package memory

import (
	"math/big"
	"sync"

	"github.com/shopspring/decimal"
	bCtx "github.com/strategic-club/commerce-api/base/ctx"
	"github.com/strategic-club/commerce-api/domain"
	"golang.org/x/xerrors"
)

// ReceiverBehavior scripts how a registered contract answers the
// onERC20Received callback.
type ReceiverBehavior int

const (
	ReceiverAck ReceiverBehavior = iota
	ReceiverWrongValue
	ReceiverNotImplemented
)

// Ledger is a process-local asset ledger. It mirrors the on-chain one closely
// enough to drive every engine path, including callback failures, without an
// rpc endpoint.
type Ledger struct {
	mu sync.Mutex

	escrow       domain.Address
	erc20        map[domain.Address]map[domain.Address]decimal.Decimal
	erc721Owners map[domain.Address]map[domain.TokenId]domain.Address
	erc1155      map[domain.Address]map[domain.Address]map[domain.TokenId]int64
	contracts    map[domain.Address]bool
	receivers    map[domain.Address]ReceiverBehavior
}

func New(escrow domain.Address) *Ledger {
	return &Ledger{
		escrow:       escrow.ToLower(),
		erc20:        make(map[domain.Address]map[domain.Address]decimal.Decimal),
		erc721Owners: make(map[domain.Address]map[domain.TokenId]domain.Address),
		erc1155:      make(map[domain.Address]map[domain.Address]map[domain.TokenId]int64),
		contracts:    make(map[domain.Address]bool),
		receivers:    make(map[domain.Address]ReceiverBehavior),
	}
}

func (l *Ledger) SetErc20Balance(erc20, holder domain.Address, amount *big.Int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.setErc20(erc20.ToLower(), holder.ToLower(), decimal.NewFromBigInt(amount, 0))
}

func (l *Ledger) SetErc721Owner(nftContract domain.Address, tokenId domain.TokenId, owner domain.Address) {
	l.mu.Lock()
	defer l.mu.Unlock()
	nftContract = nftContract.ToLower()
	if l.erc721Owners[nftContract] == nil {
		l.erc721Owners[nftContract] = make(map[domain.TokenId]domain.Address)
	}
	l.erc721Owners[nftContract][tokenId] = owner.ToLower()
}

func (l *Ledger) SetErc1155Balance(nftContract domain.Address, holder domain.Address, tokenId domain.TokenId, amount int64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.setErc1155(nftContract.ToLower(), holder.ToLower(), tokenId, amount)
}

// RegisterContract marks an address as having code. Receivers registered via
// RegisterReceiver are contracts implicitly.
func (l *Ledger) RegisterContract(addr domain.Address) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.contracts[addr.ToLower()] = true
}

func (l *Ledger) RegisterReceiver(addr domain.Address, behavior ReceiverBehavior) {
	l.mu.Lock()
	defer l.mu.Unlock()
	addr = addr.ToLower()
	l.contracts[addr] = true
	l.receivers[addr] = behavior
}

func (l *Ledger) setErc20(erc20, holder domain.Address, amount decimal.Decimal) {
	if l.erc20[erc20] == nil {
		l.erc20[erc20] = make(map[domain.Address]decimal.Decimal)
	}
	l.erc20[erc20][holder] = amount
}

func (l *Ledger) erc20Balance(erc20, holder domain.Address) decimal.Decimal {
	if holders, ok := l.erc20[erc20]; ok {
		if bal, ok := holders[holder]; ok {
			return bal
		}
	}
	return decimal.Zero
}

func (l *Ledger) setErc1155(nftContract, holder domain.Address, tokenId domain.TokenId, amount int64) {
	if l.erc1155[nftContract] == nil {
		l.erc1155[nftContract] = make(map[domain.Address]map[domain.TokenId]int64)
	}
	if l.erc1155[nftContract][holder] == nil {
		l.erc1155[nftContract][holder] = make(map[domain.TokenId]int64)
	}
	l.erc1155[nftContract][holder][tokenId] = amount
}

func (l *Ledger) erc1155Balance(nftContract, holder domain.Address, tokenId domain.TokenId) int64 {
	if holders, ok := l.erc1155[nftContract]; ok {
		if ids, ok := holders[holder]; ok {
			return ids[tokenId]
		}
	}
	return 0
}

func (l *Ledger) Erc20BalanceOf(c bCtx.Ctx, erc20 domain.Address, holder domain.Address) (*big.Int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.erc20Balance(erc20.ToLower(), holder.ToLower()).BigInt(), nil
}

func (l *Ledger) Erc20Transfer(c bCtx.Ctx, erc20 domain.Address, from, to domain.Address, amount *big.Int) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	erc20 = erc20.ToLower()
	from = from.ToLower()
	to = to.ToLower()
	value := decimal.NewFromBigInt(amount, 0)
	bal := l.erc20Balance(erc20, from)
	if bal.LessThan(value) {
		return xerrors.Errorf("insufficient erc20 balance of %s", from)
	}
	l.setErc20(erc20, from, bal.Sub(value))
	l.setErc20(erc20, to, l.erc20Balance(erc20, to).Add(value))
	return nil
}

func (l *Ledger) Erc721OwnerOf(c bCtx.Ctx, nftContract domain.Address, tokenId domain.TokenId) (domain.Address, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if ids, ok := l.erc721Owners[nftContract.ToLower()]; ok {
		if owner, ok := ids[tokenId]; ok {
			return owner, nil
		}
	}
	return domain.EmptyAddress, xerrors.Errorf("token %s of %s does not exist", tokenId, nftContract)
}

func (l *Ledger) Erc721Transfer(c bCtx.Ctx, nftContract domain.Address, to domain.Address, tokenId domain.TokenId) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	nftContract = nftContract.ToLower()
	ids, ok := l.erc721Owners[nftContract]
	if !ok {
		return xerrors.Errorf("token %s of %s does not exist", tokenId, nftContract)
	}
	owner, ok := ids[tokenId]
	if !ok {
		return xerrors.Errorf("token %s of %s does not exist", tokenId, nftContract)
	}
	if !owner.Equals(l.escrow) {
		return xerrors.Errorf("token %s of %s is not held in escrow", tokenId, nftContract)
	}
	ids[tokenId] = to.ToLower()
	return nil
}

func (l *Ledger) Erc1155BalanceOf(c bCtx.Ctx, nftContract domain.Address, holder domain.Address, tokenId domain.TokenId) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.erc1155Balance(nftContract.ToLower(), holder.ToLower(), tokenId), nil
}

func (l *Ledger) Erc1155Transfer(c bCtx.Ctx, nftContract domain.Address, to domain.Address, tokenId domain.TokenId, amount int64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	nftContract = nftContract.ToLower()
	to = to.ToLower()
	bal := l.erc1155Balance(nftContract, l.escrow, tokenId)
	if bal < amount {
		return xerrors.Errorf("insufficient escrow balance of token %s of %s", tokenId, nftContract)
	}
	l.setErc1155(nftContract, l.escrow, tokenId, bal-amount)
	l.setErc1155(nftContract, to, tokenId, l.erc1155Balance(nftContract, to, tokenId)+amount)
	return nil
}

func (l *Ledger) IsContract(c bCtx.Ctx, addr domain.Address) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.contracts[addr.ToLower()], nil
}

func (l *Ledger) NotifyPaymentReceived(c bCtx.Ctx, receiver domain.Address, erc20 domain.Address, amount *big.Int) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	behavior, ok := l.receivers[receiver.ToLower()]
	if !ok {
		return &domain.Erc20ReceiverNotImplError{Receiver: receiver}
	}
	switch behavior {
	case ReceiverAck:
		return nil
	case ReceiverWrongValue:
		return &domain.Erc20ReceiverRetValError{Receiver: receiver}
	default:
		return &domain.Erc20ReceiverNotImplError{Receiver: receiver}
	}
}

func (l *Ledger) EscrowAddress() domain.Address {
	return l.escrow
}
