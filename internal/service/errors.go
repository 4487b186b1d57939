package service

import "errors"

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")

	ErrEmptyItems      = errors.New("empty items")
	ErrQuantityInvalid = errors.New("quantity must be > 0")

	ErrProductNotFound   = errors.New("product not found")
	ErrCustomerNotFound  = errors.New("customer not found")
	ErrOrderNotFound     = errors.New("order not found")
	ErrQuoteNotFound     = errors.New("quote not found")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrAlreadyConverted  = errors.New("quote already converted to sale")

	ErrEmailAlreadyUsed   = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrCategoryNotFound    = errors.New("category not found")
	ErrOptionGroupNotFound = errors.New("option group not found")
	ErrSlugAlreadyExists   = errors.New("product slug already exists")
	ErrInvalidGroupRules   = errors.New("invalid option group rules")
)
