package raster

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewGray(image.Rect(0, 0, w, h))))
	return buf.Bytes()
}

func TestFromPNG(t *testing.T) {
	data := encodePNG(t, 1588, 4200)

	img, err := FromPNG(data)
	require.NoError(t, err)
	assert.Equal(t, 1588, img.Width)
	assert.Equal(t, 4200, img.Height)
	assert.Equal(t, data, img.PNG)
}

func TestFromPNG_Invalid(t *testing.T) {
	_, err := FromPNG([]byte("not an image"))
	require.Error(t, err)

	var capErr *CaptureError
	assert.True(t, errors.As(err, &capErr))
}

func TestNewChromeCapturer(t *testing.T) {
	c := NewChromeCapturer(".printWrap", 0, nil)
	assert.Equal(t, ".printWrap", c.Selector)
	assert.NotNil(t, c.Log)
}

func TestCaptureError_Unwrap(t *testing.T) {
	cause := errors.New("chrome not found")
	err := &CaptureError{Message: "browser capture failed", Cause: cause}
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "capture error: browser capture failed: chrome not found", err.Error())
}

var _ Capturer = (*ChromeCapturer)(nil)
