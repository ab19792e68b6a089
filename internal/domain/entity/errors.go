package entity

import "github.com/pkg/errors"

// Invariant violations detected by entity methods.
var (
	ErrInvalidPackageQuantity = errors.New("package quantity must be at least 1")
	ErrNegativePrice          = errors.New("price must not be negative")
	ErrNegativeStock          = errors.New("stock must not be negative")
	ErrDiscountAbovePrice     = errors.New("discount price must not exceed price")
	ErrInvalidStatusChange    = errors.New("order status transition not allowed")
)
