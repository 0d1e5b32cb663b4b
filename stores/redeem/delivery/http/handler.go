package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/strategic-club/commerce-api/base/ctx"
	"github.com/strategic-club/commerce-api/base/delivery"
	"github.com/strategic-club/commerce-api/domain"
	"github.com/strategic-club/commerce-api/domain/redeem"
	"github.com/strategic-club/commerce-api/middleware"
	authMiddleware "github.com/strategic-club/commerce-api/stores/auth/delivery/http/middleware"
)

type handler struct {
	redeem redeem.UseCase
}

func New(e *echo.Echo, redeem redeem.UseCase, auth *authMiddleware.AuthMiddleware) {
	h := &handler{redeem}

	g := e.Group("/redeems")
	checkAddr := middleware.IsValidAddress("redeemer")

	g.POST("", h.create, auth.Auth(), auth.IsAdmin())
	g.DELETE("/:redeemer", h.remove, checkAddr, auth.Auth(), auth.IsAdmin())

	g.GET("/:redeemer", h.get, checkAddr)
	g.POST("/:redeemer/redeem", h.redeemAsset, checkAddr)

	g.GET("/assets/:nftContract/:tokenId/redeemer", h.getRedeemer, middleware.IsValidAddress("nftContract"))
}

func (h *handler) getRedeemer(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	key := domain.AssetKey{
		NftContract: domain.Address(c.Param("nftContract")),
		TokenId:     domain.TokenId(c.Param("tokenId")),
	}

	if res, err := h.redeem.GetRedeemer(ctx, key); err != nil {
		return delivery.MakeErrResp(c, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, map[string]domain.Address{"redeemer": res})
	}
}

func (h *handler) create(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := &redeem.CreateRedeemPayload{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if res, err := h.redeem.CreateRedeem(ctx, p); err != nil {
		return delivery.MakeErrResp(c, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusCreated, res)
	}
}

func (h *handler) remove(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	if err := h.redeem.RemoveRedeem(ctx, domain.Address(c.Param("redeemer"))); err != nil {
		return delivery.MakeErrResp(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	if res, err := h.redeem.GetRedeem(ctx, domain.Address(c.Param("redeemer"))); err != nil {
		return delivery.MakeErrResp(c, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

func (h *handler) redeemAsset(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		TelegramId domain.TelegramId `json:"telegramId"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if res, err := h.redeem.Redeem(ctx, p.TelegramId, domain.Address(c.Param("redeemer"))); err != nil {
		return delivery.MakeErrResp(c, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}
