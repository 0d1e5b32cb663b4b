package usecase

import (
	"github.com/strategic-club/commerce-api/base/ctx"
	"github.com/strategic-club/commerce-api/domain"
	"github.com/strategic-club/commerce-api/domain/event"
	"github.com/strategic-club/commerce-api/domain/settings"
)

type impl struct {
	settings settings.Repo
	event    event.Recorder
}

func New(settings settings.Repo, event event.Recorder) settings.UseCase {
	return &impl{settings, event}
}

func (im *impl) GetPaymentAddress(c ctx.Ctx) (domain.Address, error) {
	value, err := im.settings.Get(c, settings.KeyPaymentErc20Address)
	if err == domain.ErrNotFound {
		return domain.EmptyAddress, domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).Error("settings.Get failed")
		return domain.EmptyAddress, err
	}
	return domain.Address(value), nil
}

func (im *impl) SetPaymentAddress(c ctx.Ctx, addr domain.Address) error {
	if addr.IsNull() {
		return domain.ErrNullAddress
	}
	if err := im.settings.Set(c, settings.KeyPaymentErc20Address, addr.ToLowerStr()); err != nil {
		c.WithField("err", err).Error("settings.Set failed")
		return err
	}
	im.event.Record(c, event.TypePaymentAddressChanged, map[string]interface{}{
		"paymentErc20Address": addr.ToLowerStr(),
	})
	return nil
}
