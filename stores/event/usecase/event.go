package usecase

import (
	"time"

	"github.com/strategic-club/commerce-api/base/ctx"
	"github.com/strategic-club/commerce-api/domain/event"
)

type impl struct {
	event event.Repo
}

func New(event event.Repo) event.UseCase {
	return &impl{event}
}

// Record is best-effort. A lost event never fails or unwinds the operation
// that emitted it.
func (im *impl) Record(c ctx.Ctx, t event.Type, payload map[string]interface{}) {
	value := &event.Event{
		Type:      t,
		Payload:   payload,
		CreatedAt: time.Now(),
	}
	if err := im.event.Insert(c, value); err != nil {
		c.WithField("err", err).WithField("type", t).Error("event.Insert failed")
	}
}

func (im *impl) FindAll(c ctx.Ctx, optFns ...event.FindAllOptionsFunc) ([]event.Event, error) {
	return im.event.FindAll(c, optFns...)
}
