package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/strategic-club/commerce-api/base/ctx"
	"github.com/strategic-club/commerce-api/base/delivery"
	"github.com/strategic-club/commerce-api/domain"
	"github.com/strategic-club/commerce-api/domain/tgflag"
	authMiddleware "github.com/strategic-club/commerce-api/stores/auth/delivery/http/middleware"
)

type handler struct {
	tgflag tgflag.UseCase
}

func New(e *echo.Echo, tgflag tgflag.UseCase, auth *authMiddleware.AuthMiddleware) {
	h := &handler{tgflag}

	g := e.Group("/flags")

	g.PUT("", h.set, auth.Auth(), auth.IsAdmin())
	g.DELETE("", h.reset, auth.Auth(), auth.IsAdmin())
	g.GET("", h.isSet)
}

type params struct {
	TelegramId  domain.TelegramId `json:"telegramId" query:"telegramId"`
	NftContract domain.Address    `json:"nftContract" query:"nftContract"`
	TokenId     domain.TokenId    `json:"tokenId" query:"tokenId"`
}

func (p *params) key() tgflag.Key {
	return tgflag.Key{
		TelegramId:  p.TelegramId,
		NftContract: p.NftContract,
		TokenId:     p.TokenId,
	}
}

func (h *handler) set(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.tgflag.SetFlag(ctx, p.key()); err != nil {
		return delivery.MakeErrResp(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) reset(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.tgflag.ResetFlag(ctx, p.key()); err != nil {
		return delivery.MakeErrResp(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) isSet(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if set, err := h.tgflag.IsSet(ctx, p.key()); err != nil {
		return delivery.MakeErrResp(c, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, set)
	}
}
