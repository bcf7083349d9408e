package service

import "storefront/internal/domain/entity"

// QRCodeService renders order-confirmation QR codes for the
// confirmation page.
type QRCodeService interface {
	// GenerateOrderQR encodes the order reference as a PNG image.
	GenerateOrderQR(order *entity.Order) ([]byte, error)
}
