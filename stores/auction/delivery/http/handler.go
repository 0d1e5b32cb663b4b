package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/strategic-club/commerce-api/base/ctx"
	"github.com/strategic-club/commerce-api/base/delivery"
	"github.com/strategic-club/commerce-api/domain"
	"github.com/strategic-club/commerce-api/domain/auction"
	"github.com/strategic-club/commerce-api/middleware"
	authMiddleware "github.com/strategic-club/commerce-api/stores/auth/delivery/http/middleware"
)

type handler struct {
	auction auction.UseCase
}

func New(e *echo.Echo, auction auction.UseCase, auth *authMiddleware.AuthMiddleware) {
	h := &handler{auction}

	g := e.Group("/auctions")
	checkAddr := middleware.IsValidAddress("nftContract")

	g.POST("", h.create, auth.Auth(), auth.IsAdmin())
	g.DELETE("/:nftContract/:tokenId", h.remove, checkAddr, auth.Auth(), auth.IsAdmin())

	g.GET("/:nftContract/:tokenId", h.get, checkAddr)
	g.POST("/:nftContract/:tokenId/bids", h.bid, checkAddr)
	g.POST("/:nftContract/:tokenId/complete", h.complete, checkAddr)
}

func assetKey(c echo.Context) domain.AssetKey {
	return domain.AssetKey{
		NftContract: domain.Address(c.Param("nftContract")),
		TokenId:     domain.TokenId(c.Param("tokenId")),
	}
}

func (h *handler) create(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := &auction.CreateAuctionPayload{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if res, err := h.auction.CreateAuction(ctx, p); err != nil {
		return delivery.MakeErrResp(c, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusCreated, res)
	}
}

func (h *handler) remove(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	if err := h.auction.RemoveAuction(ctx, assetKey(c)); err != nil {
		return delivery.MakeErrResp(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	key := assetKey(c)

	res, err := h.auction.GetAuction(ctx, key)
	if err != nil {
		return delivery.MakeErrResp(c, err)
	}

	isActive, err := h.auction.IsActive(ctx, key)
	if err != nil {
		return delivery.MakeErrResp(c, err)
	}
	isExpired, err := h.auction.IsExpired(ctx, key)
	if err != nil {
		return delivery.MakeErrResp(c, err)
	}

	type response struct {
		*auction.Auction
		IsActive  bool `json:"isActive"`
		IsExpired bool `json:"isExpired"`
	}
	return delivery.MakeJsonResp(c, http.StatusOK, response{res, isActive, isExpired})
}

func (h *handler) bid(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		TelegramId domain.TelegramId `json:"telegramId"`
		Bidder     domain.Address    `json:"bidder"`
		Amount     string            `json:"erc20Amount"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if res, err := h.auction.Bid(ctx, p.TelegramId, assetKey(c), p.Bidder, p.Amount); err != nil {
		return delivery.MakeErrResp(c, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

func (h *handler) complete(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		TelegramId domain.TelegramId `json:"telegramId"`
		Caller     domain.Address    `json:"caller"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if res, err := h.auction.Complete(ctx, p.TelegramId, assetKey(c), p.Caller); err != nil {
		return delivery.MakeErrResp(c, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}
