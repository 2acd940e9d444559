// Package order gates order submission and formats the dispatch message.
package order

import (
	"strings"

	"github.com/wsawebmaster/delivery/internal/cart"
	"github.com/wsawebmaster/delivery/internal/delivery"
)

// Validation codes.
const (
	CodeCartEmpty          = "CART_EMPTY"
	CodePostalCodeRequired = "POSTAL_CODE_REQUIRED"
	CodeMissingFields      = "MISSING_FIELDS"
	CodeInvalidPhone       = "INVALID_PHONE"
)

// ValidationError is a submission rejected before any message is built.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Is matches validation errors by code so errors.Is works against the sentinels below.
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	return ok && t.Code == e.Code
}

var (
	ErrCartEmpty = &ValidationError{
		Code:    CodeCartEmpty,
		Message: "Seu carrinho está vazio!",
	}
	ErrPostalCodeRequired = &ValidationError{
		Code:    CodePostalCodeRequired,
		Message: "Por favor, informe um CEP para calcular a entrega.",
	}
	ErrMissingFields = &ValidationError{
		Code:    CodeMissingFields,
		Message: "Por favor, preencha todos os campos obrigatórios.",
	}
	ErrInvalidPhone = &ValidationError{
		Code:    CodeInvalidPhone,
		Message: "Por favor, insira um telefone válido com 11 dígitos (ex: 11982470496).",
	}
)

// Customer holds the checkout form fields.
type Customer struct {
	Name           string
	Phone          string
	HouseNumber    string
	ReferencePoint string
	PaymentMethod  string
}

// Validate checks, in order, that the cart has items, a delivery zone is resolved, the
// required fields are filled and the phone is plausible. The first failure is returned.
func Validate(c *cart.Cart, res delivery.Resolution, customer Customer) error {
	if c == nil || c.IsEmpty() {
		return ErrCartEmpty
	}
	if !res.Resolved {
		return ErrPostalCodeRequired
	}
	if blank(customer.Name) || blank(customer.Phone) || blank(customer.HouseNumber) || blank(customer.PaymentMethod) {
		return ErrMissingFields
	}
	if !ValidPhone(customer.Phone) {
		return ErrInvalidPhone
	}
	return nil
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
