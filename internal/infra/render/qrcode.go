package render

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

// DefaultQRSize размер стороны QR изображения в пикселях
const DefaultQRSize = 256

// QRCodePNG кодирует строку (токен check-in) в PNG
func QRCodePNG(content string, size int) ([]byte, error) {
	if size <= 0 {
		size = DefaultQRSize
	}

	png, err := qrcode.Encode(content, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQRCode, err)
	}

	return png, nil
}
