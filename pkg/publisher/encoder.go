package publisher

import (
	"fmt"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
)

// Encoder turns text into a PNG image of a scannable code.
type Encoder interface {
	Encode(text string) ([]byte, error)
}

// QREncoder renders QR symbols with a quiet-zone border.
type QREncoder struct {
	Level        qrcode.RecoveryLevel
	ModulePixels int
}

// ParseRecoveryLevel maps a config name to a QR error correction level.
func ParseRecoveryLevel(name string) (qrcode.RecoveryLevel, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "low", "l":
		return qrcode.Low, nil
	case "", "medium", "m":
		return qrcode.Medium, nil
	case "high", "q":
		return qrcode.High, nil
	case "highest", "h":
		return qrcode.Highest, nil
	}
	return qrcode.Medium, fmt.Errorf("unknown recovery level %q (want low, medium, high or highest)", name)
}

// NewQREncoder builds an encoder from config values. Each QR module is drawn
// as a modulePixels x modulePixels square.
func NewQREncoder(recoveryLevel string, modulePixels int) (*QREncoder, error) {
	level, err := ParseRecoveryLevel(recoveryLevel)
	if err != nil {
		return nil, err
	}
	if modulePixels <= 0 {
		return nil, fmt.Errorf("module pixels must be positive, got %d", modulePixels)
	}
	return &QREncoder{Level: level, ModulePixels: modulePixels}, nil
}

// Encode builds the smallest QR version that fits text and returns it as PNG.
// Output is deterministic for a given text and configuration.
func (e *QREncoder) Encode(text string) ([]byte, error) {
	q, err := qrcode.New(text, e.Level)
	if err != nil {
		return nil, err
	}
	// Negative size asks for a fixed number of pixels per module
	png, err := q.PNG(-e.ModulePixels)
	if err != nil {
		return nil, fmt.Errorf("failed to render PNG: %w", err)
	}
	return png, nil
}
