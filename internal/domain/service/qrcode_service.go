// Package service declares domain-facing service contracts implemented
// by the infrastructure layer.
package service

// QRCodeService defines the interface for QR code generation and
// parsing services used to share product pages.
type QRCodeService interface {
	// GenerateProductQR generates a QR code image for a product page.
	GenerateProductQR(productID int) ([]byte, error)

	// ParseProductQR parses QR code data and returns the product ID.
	ParseProductQR(qrData string) (int, error)
}
