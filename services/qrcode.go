package services

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

// QRGenerator encodes an order confirmation link; customers scan it at
// pickup to pull up their order.
type QRGenerator struct {
	BaseURL string
}

func (g QRGenerator) Generate(orderCode string) ([]byte, error) {
	qrData := fmt.Sprintf("%s/order-confirmation?code=%s", g.BaseURL, orderCode)
	return qrcode.Encode(qrData, qrcode.Medium, 256)
}
