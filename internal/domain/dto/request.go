// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the storefront,
// providing validation and serialization for API communication.
package dto

import "strings"

// ChangeQuantityRequest adjusts the quantity of one menu item.
//
// @Description Request to add or remove units of a menu item
type ChangeQuantityRequest struct {
	// Name is the menu item name, exactly as listed in the menu.
	Name string `json:"name" binding:"required" example:"X Burguêr"`
	// Delta is the change in quantity, usually 1 or -1. At most MaxDelta either way.
	Delta int `json:"delta" example:"1"`
} // @name ChangeQuantityRequest

// ResolveZoneRequest asks for the delivery fee of a postal code.
//
// @Description Request to resolve the delivery zone of a postal code
type ResolveZoneRequest struct {
	// PostalCode may be formatted; only its digits are used.
	PostalCode string `json:"postal_code" example:"14090-000"`
} // @name ResolveZoneRequest

// SelectCategoryRequest changes the menu category on display.
//
// @Description Request to select a menu category
type SelectCategoryRequest struct {
	ID string `json:"id" example:"lanches"`
} // @name SelectCategoryRequest

// SubmitOrderRequest carries the checkout form.
//
// Business validation (required fields, phone shape) happens in the order
// package so it can be reported as a visitor notice; binding only checks the shape.
//
// @Description Checkout form
type SubmitOrderRequest struct {
	Name           string `json:"name" example:"Ana"`
	Phone          string `json:"phone" example:"11982470496"`
	HouseNumber    string `json:"house_number" example:"120"`
	ReferencePoint string `json:"reference_point" example:"Perto da padaria"`
	PaymentMethod  string `json:"payment_method" example:"Pix"`
} // @name SubmitOrderRequest

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// MaxDelta bounds a single quantity change in either direction.
const MaxDelta = 99

var (
	// ErrInvalidDelta is returned when delta is zero.
	ErrInvalidDelta = &ValidationError{
		Field:   "delta",
		Message: "must not be zero",
	}
	// ErrDeltaOutOfRange is returned when |delta| exceeds MaxDelta.
	ErrDeltaOutOfRange = &ValidationError{
		Field:   "delta",
		Message: "must be between -99 and 99",
	}
	// ErrInvalidName is returned when the item name is blank.
	ErrInvalidName = &ValidationError{
		Field:   "name",
		Message: "must not be blank",
	}
)

// Validate performs custom validation on the request.
func (r *ChangeQuantityRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return ErrInvalidName
	}
	if r.Delta == 0 {
		return ErrInvalidDelta
	}
	if r.Delta > MaxDelta || r.Delta < -MaxDelta {
		return ErrDeltaOutOfRange
	}
	return nil
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}
