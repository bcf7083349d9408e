// Package qrcode renders order-confirmation QR codes.
package qrcode

import (
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// orderQRData is the payload encoded into a confirmation QR code.
type orderQRData struct {
	OrderID string  `json:"order_id"`
	Total   float64 `json:"total"`
	Type    string  `json:"type"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateOrderQR encodes the order reference as a PNG image.
func (s *qrcodeService) GenerateOrderQR(order *entity.Order) ([]byte, error) {
	payload, err := json.Marshal(orderQRData{
		OrderID: order.OrderID,
		Total:   order.Total,
		Type:    "order-confirmation",
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode QR payload")
	}

	png, err := qrcode.Encode(string(payload), s.errorCorrectionLevel, s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render QR code")
	}

	return png, nil
}
