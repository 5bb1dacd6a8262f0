package service

import (
	"bytes"
	"context"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"

	"kaineetam/internal/errors"
)

func TestQRRenderer_RenderPNG(t *testing.T) {
	renderer := NewQRRenderer(nil) // no cache: renderer must work without one
	ctx := context.Background()

	link := "upi://pay?pa=raj@bank&pn=Raj&am=51.00&cu=INR&tn=Vishu%20Kaineetam"
	data, err := renderer.RenderPNG(ctx, link)
	assert.NoError(t, err)
	assert.NotEmpty(t, data)

	img, err := png.Decode(bytes.NewReader(data))
	assert.NoError(t, err)
	assert.Equal(t, qrImageSize, img.Bounds().Dx())
	assert.Equal(t, qrImageSize, img.Bounds().Dy())
}

func TestQRRenderer_RenderPNG_Deterministic(t *testing.T) {
	renderer := NewQRRenderer(nil)
	ctx := context.Background()

	first, err := renderer.RenderPNG(ctx, "upi://pay?pa=a@b&pn=A&am=1.00&cu=INR&tn=x")
	assert.NoError(t, err)
	second, err := renderer.RenderPNG(ctx, "upi://pay?pa=a@b&pn=A&am=1.00&cu=INR&tn=x")
	assert.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestQRRenderer_RenderPNG_Empty(t *testing.T) {
	renderer := NewQRRenderer(nil)

	data, err := renderer.RenderPNG(context.Background(), "")
	assert.ErrorIs(t, err, errors.ErrNothingToEncode)
	assert.Nil(t, data)
}
