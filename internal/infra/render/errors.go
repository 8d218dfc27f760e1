package render

import "errors"

var (
	// ErrQRCode возвращается при ошибке генерации QR кода
	ErrQRCode = errors.New("render: failed to encode qr code")

	// ErrPDF возвращается при ошибке формирования PDF
	ErrPDF = errors.New("render: failed to build pdf")
)
