package service

import (
	"encoding/base64"
	"fmt"

	"github.com/skip2/go-qrcode"
)

const DefaultQRCodeSize = 256

// QRCodeGenerator рисует QR код короткой ссылки
type QRCodeGenerator struct {
	size int
}

// NewQRCodeGenerator создает генератор картинок size x size пикселей
func NewQRCodeGenerator(size int) *QRCodeGenerator {
	if size <= 0 {
		size = DefaultQRCodeSize
	}
	return &QRCodeGenerator{size: size}
}

// PNG возвращает QR код content в формате PNG
func (g *QRCodeGenerator) PNG(content string) ([]byte, error) {
	png, err := qrcode.Encode(content, qrcode.Medium, g.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate QR code: %w", err)
	}
	return png, nil
}

// DataURI возвращает QR код в виде data URI для атрибута src
func (g *QRCodeGenerator) DataURI(content string) (string, error) {
	png, err := g.PNG(content)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
