package service

// QRCodeService defines the interface for QR code generation.
type QRCodeService interface {
	// GenerateDealQR renders the deal's external URL as a PNG QR code so a
	// deal page can be shared to a phone camera.
	GenerateDealQR(dealURL string) ([]byte, error)
}
