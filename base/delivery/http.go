package delivery

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/strategic-club/commerce-api/domain"
	"github.com/strategic-club/commerce-api/service/query"
)

type JsonResponseStatus string

const (
	JsonResponseStatusSuccess JsonResponseStatus = "success"
	JsonResponseStatusFail    JsonResponseStatus = "fail"
)

type JsonResponse struct {
	Data   interface{}        `json:"data"`
	Status JsonResponseStatus `json:"status"`
}

// MakeErrResp renders an error with the HTTP status its kind implies.
func MakeErrResp(c echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch err.(type) {
	case *domain.AuctionAlreadyActiveError,
		*domain.MintAlreadyCreatedError,
		*domain.RedeemAlreadyCreatedError,
		*domain.TelegramIdFlagAlreadySetError:
		status = http.StatusConflict
	case *domain.NftError,
		*domain.AuctionNotActiveError,
		*domain.AuctionNotExpiredError,
		*domain.MintNotCreatedError,
		*domain.RedeemNotCreatedError,
		*domain.TelegramIdFlagNotSetError,
		*domain.WithdrawError,
		*domain.Erc20ReceiverRetValError,
		*domain.Erc20ReceiverNotImplError:
		status = http.StatusBadRequest
	case *domain.BidderNotWinnerError:
		status = http.StatusForbidden
	}
	switch err {
	case domain.ErrBadParamInput, domain.ErrNullAddress, domain.ErrNullTelegramId, domain.ErrAmount:
		status = http.StatusBadRequest
	}
	return MakeJsonResp(c, status, err)
}

func MakeJsonResp(c echo.Context, status int, data interface{}) error {
	if err, ok := data.(error); ok {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, query.ErrNotFound) {
			status = http.StatusNotFound
		}
		data = err.Error()
	}

	if status >= 400 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusFail})
	}

	if status >= 200 && status < 300 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusSuccess})
	}

	return c.JSON(status, data)
}
