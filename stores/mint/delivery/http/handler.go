package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/strategic-club/commerce-api/base/ctx"
	"github.com/strategic-club/commerce-api/base/delivery"
	"github.com/strategic-club/commerce-api/domain"
	"github.com/strategic-club/commerce-api/domain/mint"
	"github.com/strategic-club/commerce-api/middleware"
	authMiddleware "github.com/strategic-club/commerce-api/stores/auth/delivery/http/middleware"
)

type handler struct {
	mint mint.UseCase
}

func New(e *echo.Echo, mint mint.UseCase, auth *authMiddleware.AuthMiddleware) {
	h := &handler{mint}

	g := e.Group("/mints")
	checkAddr := middleware.IsValidAddress("nftContract")

	g.POST("", h.create, auth.Auth(), auth.IsAdmin())
	g.DELETE("/:nftContract/:tokenId", h.remove, checkAddr, auth.Auth(), auth.IsAdmin())

	g.GET("/:nftContract/:tokenId", h.get, checkAddr)
	g.POST("/:nftContract/:tokenId/purchases", h.purchase, checkAddr)
}

func assetKey(c echo.Context) domain.AssetKey {
	return domain.AssetKey{
		NftContract: domain.Address(c.Param("nftContract")),
		TokenId:     domain.TokenId(c.Param("tokenId")),
	}
}

func (h *handler) create(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := &mint.CreateMintPayload{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if res, err := h.mint.CreateMint(ctx, p); err != nil {
		return delivery.MakeErrResp(c, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusCreated, res)
	}
}

func (h *handler) remove(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	if err := h.mint.RemoveMint(ctx, assetKey(c)); err != nil {
		return delivery.MakeErrResp(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	if res, err := h.mint.GetMint(ctx, assetKey(c)); err != nil {
		return delivery.MakeErrResp(c, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

func (h *handler) purchase(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		TelegramId domain.TelegramId `json:"telegramId"`
		Buyer      domain.Address    `json:"buyer"`
		Quantity   int64             `json:"quantity"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if res, err := h.mint.Mint(ctx, p.TelegramId, assetKey(c), p.Buyer, p.Quantity); err != nil {
		return delivery.MakeErrResp(c, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}
