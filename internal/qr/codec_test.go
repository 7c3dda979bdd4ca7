package qr

import (
	"bytes"
	"image"
	_ "image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	payload := `{"type":"product","id":"1","name":"Acrylic Stand","sku":"ACS-0001"}`

	png, err := EncodePNG(payload, DefaultPNGSize)
	require.NoError(t, err)
	require.NotEmpty(t, png)

	img, format, err := image.Decode(bytes.NewReader(png))
	require.NoError(t, err)
	assert.Equal(t, "png", format)

	text, err := Decode(img)
	require.NoError(t, err)
	assert.Equal(t, payload, text)
}

func TestEncodePNGDefaultsSize(t *testing.T) {
	png, err := EncodePNG("x", 0)
	require.NoError(t, err)

	img, _, err := image.Decode(bytes.NewReader(png))
	require.NoError(t, err)
	assert.Equal(t, DefaultPNGSize, img.Bounds().Dx())
}

func TestDecodeBlankImageIsNotAnError(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 120, 120))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}

	text, err := Decode(img)
	require.NoError(t, err)
	assert.Empty(t, text)
}
