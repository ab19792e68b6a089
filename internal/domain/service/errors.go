package service

import "github.com/pkg/errors"

// ErrOutOfRange is returned by ShippingCalculator for destinations beyond the delivery radius.
var ErrOutOfRange = errors.New("destination out of delivery range")
