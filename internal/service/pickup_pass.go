package service

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

var _ PassEncoder = (*QRPassEncoder)(nil)

// QRPassEncoder renders the pickup pass shown at the counter. Scanning it
// pre-fills the verification form with the order id, token and OTP.
type QRPassEncoder struct {
	BaseURL string
}

func (e *QRPassEncoder) Encode(orderID, tokenNo int, otp string) ([]byte, error) {
	data := fmt.Sprintf("%s/verify?order_id=%d&token=%d&otp=%s", e.BaseURL, orderID, tokenNo, otp)
	return qrcode.Encode(data, qrcode.Medium, 256)
}
