package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInternalServerError = errors.New("Internal Server Error")
	ErrNotFound            = errors.New("Your requested Item is not found")
	ErrBadParamInput       = errors.New("Given Param is not valid")

	// ErrNullAddress is returned when an address-like argument is the null identity.
	ErrNullAddress = errors.New("null address")
	// ErrNullTelegramId is returned when the telegram id argument is zero.
	ErrNullTelegramId = errors.New("null telegram id")
	// ErrAmount is returned for zero, out-of-range or insufficient-balance amounts.
	ErrAmount = errors.New("invalid amount")
)

// NftError is returned when an asset is not escrowed by the manager in the
// required quantity, or its id is outside the valid range.
type NftError struct {
	NftContract Address
	TokenId     TokenId
}

func (e *NftError) Error() string {
	return fmt.Sprintf("nft %s/%s not owned or out of range", e.NftContract, e.TokenId)
}

type AuctionAlreadyActiveError struct {
	NftContract Address
	TokenId     TokenId
}

func (e *AuctionAlreadyActiveError) Error() string {
	return fmt.Sprintf("auction for %s/%s already active", e.NftContract, e.TokenId)
}

type AuctionNotActiveError struct {
	NftContract Address
	TokenId     TokenId
}

func (e *AuctionNotActiveError) Error() string {
	return fmt.Sprintf("auction for %s/%s not active", e.NftContract, e.TokenId)
}

type AuctionNotExpiredError struct {
	NftContract Address
	TokenId     TokenId
}

func (e *AuctionNotExpiredError) Error() string {
	return fmt.Sprintf("auction for %s/%s not expired", e.NftContract, e.TokenId)
}

type BidderNotWinnerError struct {
	Bidder Address
}

func (e *BidderNotWinnerError) Error() string {
	return fmt.Sprintf("bidder %s is not the auction winner", e.Bidder)
}

type MintAlreadyCreatedError struct {
	NftContract Address
	TokenId     TokenId
}

func (e *MintAlreadyCreatedError) Error() string {
	return fmt.Sprintf("mint for %s/%s already created", e.NftContract, e.TokenId)
}

type MintNotCreatedError struct {
	NftContract Address
	TokenId     TokenId
}

func (e *MintNotCreatedError) Error() string {
	return fmt.Sprintf("mint for %s/%s not created", e.NftContract, e.TokenId)
}

// RedeemAlreadyCreatedError carries the recipient currently holding the
// conflicting redeem.
type RedeemAlreadyCreatedError struct {
	Redeemer Address
}

func (e *RedeemAlreadyCreatedError) Error() string {
	return fmt.Sprintf("redeem already created for %s", e.Redeemer)
}

type RedeemNotCreatedError struct {
	Redeemer Address
}

func (e *RedeemNotCreatedError) Error() string {
	return fmt.Sprintf("redeem not created for %s", e.Redeemer)
}

type TelegramIdFlagAlreadySetError struct {
	TelegramId  TelegramId
	NftContract Address
	TokenId     TokenId
}

func (e *TelegramIdFlagAlreadySetError) Error() string {
	return fmt.Sprintf("telegram id %d flag already set for %s/%s", e.TelegramId, e.NftContract, e.TokenId)
}

type TelegramIdFlagNotSetError struct {
	TelegramId  TelegramId
	NftContract Address
	TokenId     TokenId
}

func (e *TelegramIdFlagNotSetError) Error() string {
	return fmt.Sprintf("telegram id %d flag not set for %s/%s", e.TelegramId, e.NftContract, e.TokenId)
}

// WithdrawError is returned when a withdrawal would touch inventory still
// reserved by a live commitment.
type WithdrawError struct {
	NftContract Address
	TokenId     TokenId
}

func (e *WithdrawError) Error() string {
	return fmt.Sprintf("nft %s/%s is reserved by a live commitment", e.NftContract, e.TokenId)
}

// Erc20ReceiverRetValError is returned when the payment receiver callback
// answers with the wrong magic value.
type Erc20ReceiverRetValError struct {
	Receiver Address
}

func (e *Erc20ReceiverRetValError) Error() string {
	return fmt.Sprintf("erc20 receiver %s returned wrong value", e.Receiver)
}

// Erc20ReceiverNotImplError is returned when the payment receiver does not
// implement the callback at all.
type Erc20ReceiverNotImplError struct {
	Receiver Address
}

func (e *Erc20ReceiverNotImplError) Error() string {
	return fmt.Sprintf("erc20 receiver %s does not implement onERC20Received", e.Receiver)
}
