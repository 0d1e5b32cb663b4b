package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/strategic-club/commerce-api/base/ctx"
	"github.com/strategic-club/commerce-api/base/delivery"
	"github.com/strategic-club/commerce-api/domain"
	"github.com/strategic-club/commerce-api/domain/settings"
	authMiddleware "github.com/strategic-club/commerce-api/stores/auth/delivery/http/middleware"
)

type handler struct {
	settings settings.UseCase
}

func New(e *echo.Echo, settings settings.UseCase, auth *authMiddleware.AuthMiddleware) {
	h := &handler{settings}

	g := e.Group("/settings")

	g.PUT("/payment-address", h.setPaymentAddress, auth.Auth(), auth.IsAdmin())
	g.GET("/payment-address", h.getPaymentAddress)
}

func (h *handler) setPaymentAddress(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Address domain.Address `json:"address"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.settings.SetPaymentAddress(ctx, p.Address); err != nil {
		return delivery.MakeErrResp(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) getPaymentAddress(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	if res, err := h.settings.GetPaymentAddress(ctx); err != nil {
		return delivery.MakeErrResp(c, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}
