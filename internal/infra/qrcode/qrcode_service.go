// Package qrcode renders shareable QR codes for product pages.
package qrcode

import (
	"encoding/json"
	"fmt"
	"strconv"

	"webmarket/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// QRCodeData represents the QR code data structure
type QRCodeData struct {
	ProductID string `json:"product_id"`
	Type      string `json:"type"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateProductQR generates a QR code image for a product page.
func (s *qrcodeService) GenerateProductQR(productID int) ([]byte, error) {
	data := QRCodeData{
		ProductID: strconv.Itoa(productID),
		Type:      "product",
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseProductQR parses QR code data and returns the product ID.
func (s *qrcodeService) ParseProductQR(qrData string) (int, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return 0, fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	// Validate type
	if data.Type != "product" {
		return 0, fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	productID, err := strconv.Atoi(data.ProductID)
	if err != nil {
		return 0, fmt.Errorf("failed to parse product ID: %w", err)
	}

	return productID, nil
}
