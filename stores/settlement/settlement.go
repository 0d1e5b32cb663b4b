package settlement

import (
	"github.com/strategic-club/commerce-api/base/ctx"
)

// Tx orders a resolving operation as checks, then local effects, then external
// interactions. Every applied step registers a compensating revert; Rollback
// unwinds them in reverse order when a later step fails.
type Tx struct {
	reverts []func(ctx.Ctx) error
}

func New() *Tx {
	return &Tx{}
}

// Step applies one step and registers its revert. A nil revert marks the step
// as not compensatable (e.g. an event emit).
func (t *Tx) Step(c ctx.Ctx, apply func(ctx.Ctx) error, revert func(ctx.Ctx) error) error {
	if err := apply(c); err != nil {
		return err
	}
	if revert != nil {
		t.reverts = append(t.reverts, revert)
	}
	return nil
}

// Rollback unwinds applied steps. Revert failures are logged and swallowed so
// the caller surfaces the original error, not the cleanup's.
func (t *Tx) Rollback(c ctx.Ctx) {
	for i := len(t.reverts) - 1; i >= 0; i-- {
		if err := t.reverts[i](c); err != nil {
			c.WithField("err", err).Error("settlement revert failed")
		}
	}
	t.reverts = nil
}
