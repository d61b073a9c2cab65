package share

import (
	qrcode "github.com/skip2/go-qrcode"
)

const qrImageSize = 512

// QRPNG renders the public product URL as a PNG suitable for print.
func QRPNG(url string) ([]byte, error) {
	return qrcode.Encode(url, qrcode.Medium, qrImageSize)
}
