package services

import "errors"

// Domain errors. Controllers map these to the legacy status codes and
// plain-text bodies the storefront matches on.
var (
	ErrItemNotFound       = errors.New("item not found")
	ErrOutOfStock         = errors.New("item out of stock")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMissingCredentials = errors.New("missing credentials")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrEmailTaken         = errors.New("email already exists")
	ErrLoginRequired      = errors.New("login required")
	ErrEmptyCart          = errors.New("cart is empty")
)
