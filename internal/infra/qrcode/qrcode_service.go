// Package qrcode renders deal share links as QR code images.
package qrcode

import (
	"github.com/pkg/errors"
	qrcodegen "github.com/skip2/go-qrcode"

	"github.com/riaj03/savyo/config"
	"github.com/riaj03/savyo/internal/domain/service"
)

const defaultSize = 256

// qrCodeService implements service.QRCodeService on top of skip2/go-qrcode.
type qrCodeService struct {
	size  int
	level qrcodegen.RecoveryLevel
}

// New builds the QR code service from configuration. Missing configuration
// falls back to a 256px medium-recovery code.
func New(cfg *config.Config) service.QRCodeService {
	size := defaultSize
	level := qrcodegen.Medium

	if cfg != nil && cfg.QRCode != nil {
		if cfg.QRCode.Size > 0 {
			size = cfg.QRCode.Size
		}
		level = parseRecoveryLevel(cfg.QRCode.ErrorCorrectionLevel)
	}

	return &qrCodeService{size: size, level: level}
}

// GenerateDealQR encodes the deal's external URL as a PNG image.
func (s *qrCodeService) GenerateDealQR(dealURL string) ([]byte, error) {
	if dealURL == "" {
		return nil, errors.New("deal url is empty")
	}

	png, err := qrcodegen.Encode(dealURL, s.level, s.size)
	if err != nil {
		return nil, errors.Wrap(err, "encode qr code")
	}

	return png, nil
}

func parseRecoveryLevel(level string) qrcodegen.RecoveryLevel {
	switch level {
	case "low":
		return qrcodegen.Low
	case "high":
		return qrcodegen.High
	case "highest":
		return qrcodegen.Highest
	default:
		return qrcodegen.Medium
	}
}
