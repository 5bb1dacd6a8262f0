package service

import (
	"context"
	"fmt"
	"time"

	qrcode "github.com/skip2/go-qrcode"

	"kaineetam/internal/cache"
	"kaineetam/internal/errors"
)

const (
	qrImageSize = 256
	qrCacheTTL  = 1 * time.Hour
)

// QRRenderer renders payment links as scannable PNG images. Rendered images
// are memoized per link string; memoization is purely an optimization and the
// renderer works identically with the cache unavailable.
type QRRenderer struct {
	cache *cache.Client
}

// NewQRRenderer creates a new QR renderer.
func NewQRRenderer(cache *cache.Client) *QRRenderer {
	return &QRRenderer{cache: cache}
}

// RenderPNG encodes the given string into a QR code PNG. Decoding the image
// with any QR reader recovers the input byte-for-byte.
func (r *QRRenderer) RenderPNG(ctx context.Context, link string) ([]byte, error) {
	if link == "" {
		return nil, errors.ErrNothingToEncode
	}

	key := "qr:" + link
	if data, _ := r.cache.Get(ctx, key); data != nil {
		return data, nil
	}

	png, err := qrcode.Encode(link, qrcode.Medium, qrImageSize)
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}

	_ = r.cache.Set(ctx, key, png, qrCacheTTL)
	return png, nil
}
