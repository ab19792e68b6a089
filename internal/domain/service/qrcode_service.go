package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateOrderQR renders the pickup code of an order as a PNG.
	GenerateOrderQR(orderID uuid.UUID, orderNumber string) ([]byte, error)

	// ParseOrderQR decodes the scanned payload and returns the order ID.
	ParseOrderQR(qrData string) (uuid.UUID, error)
}
