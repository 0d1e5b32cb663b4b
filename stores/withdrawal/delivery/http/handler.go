package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/strategic-club/commerce-api/base/ctx"
	"github.com/strategic-club/commerce-api/base/delivery"
	"github.com/strategic-club/commerce-api/domain"
	"github.com/strategic-club/commerce-api/domain/withdrawal"
	authMiddleware "github.com/strategic-club/commerce-api/stores/auth/delivery/http/middleware"
)

type handler struct {
	withdrawal withdrawal.UseCase
}

func New(e *echo.Echo, withdrawal withdrawal.UseCase, auth *authMiddleware.AuthMiddleware) {
	h := &handler{withdrawal}

	g := e.Group("/withdrawals", auth.Auth(), auth.IsAdmin())

	g.POST("/erc721", h.withdrawErc721)
	g.POST("/erc1155", h.withdrawErc1155)
}

func (h *handler) withdrawErc721(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		NftContract domain.Address `json:"nftContract"`
		TokenId     domain.TokenId `json:"tokenId"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	key := domain.AssetKey{NftContract: p.NftContract, TokenId: p.TokenId}
	if err := h.withdrawal.WithdrawErc721(ctx, key); err != nil {
		return delivery.MakeErrResp(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) withdrawErc1155(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		NftContract domain.Address `json:"nftContract"`
		TokenId     domain.TokenId `json:"tokenId"`
		Amount      int64          `json:"amount"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	key := domain.AssetKey{NftContract: p.NftContract, TokenId: p.TokenId}
	if err := h.withdrawal.WithdrawErc1155(ctx, key, p.Amount); err != nil {
		return delivery.MakeErrResp(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}
