package validator

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// IsValidAddress reports whether address is a well-formed 20-byte hex address.
func IsValidAddress(address string) bool {
	if !common.IsHexAddress(address) {
		return false
	}
	return strings.EqualFold(common.HexToAddress(address).Hex(), address)
}

func NewCustomValidator(v *validator.Validate) echo.Validator {
	return &CustomValidator{v}
}

type CustomValidator struct {
	validator *validator.Validate
}

func (v *CustomValidator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}
