package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xaionaro-go/avscale/pixfmt"
)

func TestParseAccept(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	d, err := parseAccept("")
	require.NoError(t, err)
	require.Equal(t, pixfmt.CapsSupported, d.QueryFormat(ctx, pixfmt.XYZ12))

	d, err = parseAccept("yuv420p:hw, rgba")
	require.NoError(t, err)
	require.Equal(t, pixfmt.CapsSupported|pixfmt.CapsSupportedByHW, d.QueryFormat(ctx, pixfmt.YUV420P))
	require.Equal(t, pixfmt.CapsSupported, d.QueryFormat(ctx, pixfmt.RGBA))
	require.Equal(t, pixfmt.CapsUnsupported, d.QueryFormat(ctx, pixfmt.NV12))

	_, err = parseAccept("yuv420p:sw")
	require.Error(t, err)
	_, err = parseAccept("yuv999p")
	require.Error(t, err)
}

func TestParseInputGeometry(t *testing.T) {
	t.Parallel()

	size, display, err := parseInputGeometry("720x480:720x540")
	require.NoError(t, err)
	require.Equal(t, 720, size.Width)
	require.Equal(t, 480, size.Height)
	require.Equal(t, 540, display.Height)

	size, display, err = parseInputGeometry("1920x1080")
	require.NoError(t, err)
	require.Equal(t, size, display)

	_, _, err = parseInputGeometry("1920")
	require.Error(t, err)
}
