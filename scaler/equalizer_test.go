package scaler

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/stretchr/testify/require"
)

func uniformRGBA(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	return img
}

func TestEqualizerSettings(t *testing.T) {
	t.Parallel()

	s := EqualizerSettings{}
	require.True(t, s.IsNeutral())

	require.NoError(t, s.Set(EqualizerBrightness, 50))
	v, err := s.Get(EqualizerBrightness)
	require.NoError(t, err)
	require.Equal(t, 50, v)
	require.False(t, s.IsNeutral())

	v, err = s.Get(EqualizerHue)
	require.NoError(t, err)
	require.Zero(t, v)

	err = s.Set(EqualizerContrast, 101)
	var rangeErr ErrEqualizerValueOutOfRange
	require.True(t, errors.As(err, &rangeErr))
	require.Equal(t, EqualizerContrast, rangeErr.Property)

	_, err = s.Get("gamma")
	var unknownErr ErrUnknownEqualizerProperty
	require.True(t, errors.As(err, &unknownErr))
	require.Error(t, s.Set("gamma", 0))
}

func TestEqualizerApply(t *testing.T) {
	t.Parallel()

	img := uniformRGBA(4, 4, color.RGBA{R: 100, G: 100, B: 100, A: 255})

	neutral := EqualizerSettings{}.Apply(img)
	require.Equal(t, image.Image(img), neutral)

	brighter := EqualizerSettings{EqualizerBrightness: 50}.Apply(img)
	r, g, b, a := brighter.At(1, 1).RGBA()
	require.Equal(t, uint32(150), r>>8)
	require.Equal(t, uint32(150), g>>8)
	require.Equal(t, uint32(150), b>>8)
	require.Equal(t, uint32(255), a>>8)

	// the source is left intact
	require.Equal(t, color.RGBA{R: 100, G: 100, B: 100, A: 255}, img.RGBAAt(1, 1))
}
