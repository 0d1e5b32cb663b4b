package usecase

import (
	"github.com/strategic-club/commerce-api/base/ctx"
	"github.com/strategic-club/commerce-api/domain"
	"github.com/strategic-club/commerce-api/domain/event"
	"github.com/strategic-club/commerce-api/domain/tgflag"
)

type impl struct {
	tgflag tgflag.Repo
	event  event.Recorder
}

func New(tgflag tgflag.Repo, event event.Recorder) tgflag.UseCase {
	return &impl{tgflag, event}
}

func (im *impl) IsSet(c ctx.Ctx, key tgflag.Key) (bool, error) {
	return im.tgflag.IsSet(c, key)
}

func (im *impl) SetFlag(c ctx.Ctx, key tgflag.Key) error {
	if key.TelegramId.IsNull() {
		return domain.ErrNullTelegramId
	}
	if key.NftContract.IsNull() {
		return domain.ErrNullAddress
	}

	if set, err := im.tgflag.IsSet(c, key); err != nil {
		c.WithField("err", err).Error("tgflag.IsSet failed")
		return err
	} else if set {
		return &domain.TelegramIdFlagAlreadySetError{
			TelegramId:  key.TelegramId,
			NftContract: key.NftContract,
			TokenId:     key.TokenId,
		}
	}

	if err := im.tgflag.Set(c, key); err != nil {
		c.WithField("err", err).Error("tgflag.Set failed")
		return err
	}

	im.event.Record(c, event.TypeTelegramIdFlagSet, map[string]interface{}{
		"telegramId":  key.TelegramId,
		"nftContract": key.NftContract.ToLower(),
		"tokenId":     key.TokenId,
	})
	return nil
}

func (im *impl) ResetFlag(c ctx.Ctx, key tgflag.Key) error {
	if key.TelegramId.IsNull() {
		return domain.ErrNullTelegramId
	}
	if key.NftContract.IsNull() {
		return domain.ErrNullAddress
	}

	if set, err := im.tgflag.IsSet(c, key); err != nil {
		c.WithField("err", err).Error("tgflag.IsSet failed")
		return err
	} else if !set {
		return &domain.TelegramIdFlagNotSetError{
			TelegramId:  key.TelegramId,
			NftContract: key.NftContract,
			TokenId:     key.TokenId,
		}
	}

	if err := im.tgflag.Unset(c, key); err != nil {
		c.WithField("err", err).Error("tgflag.Unset failed")
		return err
	}

	im.event.Record(c, event.TypeTelegramIdFlagReset, map[string]interface{}{
		"telegramId":  key.TelegramId,
		"nftContract": key.NftContract.ToLower(),
		"tokenId":     key.TokenId,
	})
	return nil
}
