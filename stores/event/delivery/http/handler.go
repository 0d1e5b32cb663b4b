package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/strategic-club/commerce-api/base/ctx"
	"github.com/strategic-club/commerce-api/base/delivery"
	"github.com/strategic-club/commerce-api/domain/event"
)

type handler struct {
	event event.UseCase
}

func New(e *echo.Echo, event event.UseCase) {
	h := &handler{event}
	e.GET("/events", h.list)
}

func (h *handler) list(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Offset int32  `query:"offset"`
		Limit  int32  `query:"limit"`
		Type   string `query:"type"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if p.Limit == 0 || p.Limit > 500 {
		p.Limit = 100
	}

	opts := []event.FindAllOptionsFunc{event.WithPagination(p.Offset, p.Limit)}
	if p.Type != "" {
		opts = append(opts, event.WithType(event.Type(p.Type)))
	}

	if res, err := h.event.FindAll(ctx, opts...); err != nil {
		return delivery.MakeErrResp(c, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}
