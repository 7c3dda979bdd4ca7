package qr

import (
	"fmt"
	"image"

	"github.com/makiuchi-d/gozxing"
	zxqrcode "github.com/makiuchi-d/gozxing/qrcode"
	qrcode "github.com/skip2/go-qrcode"
)

// DefaultPNGSize is the pixel edge length of generated label PNGs.
const DefaultPNGSize = 256

// EncodePNG renders payload text into a QR code PNG.
func EncodePNG(payload string, size int) ([]byte, error) {
	if size <= 0 {
		size = DefaultPNGSize
	}
	png, err := qrcode.Encode(payload, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("qr: encode png: %w", err)
	}
	return png, nil
}

// Decode extracts QR text from a decoded image. A frame containing no code is
// not an error: it returns ("", nil) so polling callers can simply try the
// next frame. Device/capture failures never reach this function — they are a
// separate condition owned by the scanner.
func Decode(img image.Image) (string, error) {
	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return "", fmt.Errorf("qr: binarize image: %w", err)
	}
	result, err := zxqrcode.NewQRCodeReader().Decode(bmp, nil)
	if err != nil {
		// gozxing reports "no code in frame" as a NotFoundException
		if _, ok := err.(gozxing.NotFoundException); ok {
			return "", nil
		}
		return "", fmt.Errorf("qr: decode: %w", err)
	}
	return result.GetText(), nil
}
