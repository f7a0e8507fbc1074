package qrcode

import (
	"bytes"
	"testing"

	"github.com/riaj03/savyo/config"

	"github.com/stretchr/testify/assert"
)

// pngMagic is the fixed 8-byte PNG file signature.
var pngMagic = []byte{0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a}

func TestQRCodeService_GenerateDealQR(t *testing.T) {
	svc := New(nil)

	png, err := svc.GenerateDealQR("https://example.com/deals/50-off-pizza")
	assert.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, pngMagic), "output should be a PNG image")
}

func TestQRCodeService_EmptyURL(t *testing.T) {
	svc := New(nil)

	png, err := svc.GenerateDealQR("")
	assert.Error(t, err)
	assert.Nil(t, png)
}

func TestQRCodeService_ConfiguredLevel(t *testing.T) {
	cfg := &config.Config{
		QRCode: &config.QRCodeConfig{
			Size:                 128,
			ErrorCorrectionLevel: "high",
		},
	}
	svc := New(cfg)

	png, err := svc.GenerateDealQR("https://example.com/deals/bogo-burrito")
	assert.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, pngMagic))
}
