package scaler

import (
	"context"
	"errors"
	"image"
	"testing"

	"github.com/asticode/go-astiav"
	"github.com/stretchr/testify/require"
	"github.com/xaionaro-go/avscale/frame"
	"github.com/xaionaro-go/avscale/pixfmt"
	"github.com/xaionaro-go/avscale/types"
)

func newVideo(t *testing.T, params types.ImageParams, fillBlack bool) *astiav.Frame {
	t.Helper()
	f, err := frame.NewVideo(context.Background(), params, fillBlack)
	require.NoError(t, err)
	t.Cleanup(func() { frame.Pool.Put(f) })
	return f
}

func frameImage(t *testing.T, f *astiav.Frame) image.Image {
	t.Helper()
	img, err := f.Data().GuessImageFormat()
	require.NoError(t, err)
	require.NoError(t, f.Data().ToImage(img))
	return img
}

// requireDark checks that the pixel is opaque and close to black.
func requireDark(t *testing.T, img image.Image, x, y int) {
	t.Helper()
	r, g, b, a := img.At(x, y).RGBA()
	require.Equal(t, uint32(0xff), a>>8)
	for _, c := range []uint32{r, g, b} {
		require.LessOrEqual(t, c>>8, uint32(32))
	}
}

func TestSoftwareScaleFrame(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := NewSoftware(ctx)
	defer s.Close(ctx)

	srcParams := imageParams(pixfmt.YUV420P, 64, 48)
	dstParams := imageParams(pixfmt.RGBA, 32, 24)
	src := newVideo(t, srcParams, true)
	dst := newVideo(t, dstParams, false)

	require.ErrorAs(t, s.ScaleFrame(ctx, src, dst), &ErrNotInitialized{})

	require.NoError(t, s.Reinit(ctx, srcParams, dstParams, Params{Algorithm: AlgorithmBilinear}))
	require.Contains(t, s.String(), "32x24")
	require.NoError(t, s.ScaleFrame(ctx, src, dst))
	require.Equal(t, 32, dst.Width())
	require.Equal(t, 24, dst.Height())
	requireDark(t, frameImage(t, dst), 16, 12)
}

func TestSoftwareFailedReinitKeepsContext(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := NewSoftware(ctx)
	defer s.Close(ctx)

	srcParams := imageParams(pixfmt.YUV420P, 64, 48)
	dstParams := imageParams(pixfmt.RGBA, 32, 24)
	src := newVideo(t, srcParams, true)
	dst := newVideo(t, dstParams, false)
	require.NoError(t, s.Reinit(ctx, srcParams, dstParams, Params{}))

	err := s.Reinit(ctx, srcParams, imageParams(pixfmt.RGBA, 0, 24), Params{})
	var sizeErr ErrInvalidSize
	require.True(t, errors.As(err, &sizeErr))
	require.True(t, sizeErr.IsOutput)

	err = s.Reinit(ctx, imageParams(pixfmt.YUV420P, 64, -1), dstParams, Params{})
	require.True(t, errors.As(err, &sizeErr))
	require.False(t, sizeErr.IsOutput)

	require.Contains(t, s.String(), "32x24")
	require.NoError(t, s.ScaleFrame(ctx, src, dst))

	// a successful Reinit replaces the context
	smallParams := imageParams(pixfmt.RGBA, 16, 12)
	small := newVideo(t, smallParams, false)
	require.NoError(t, s.Reinit(ctx, srcParams, smallParams, Params{Algorithm: AlgorithmPoint, AccurateRounding: true}))
	require.Contains(t, s.String(), "16x12")
	require.NoError(t, s.ScaleFrame(ctx, src, small))
	requireDark(t, frameImage(t, small), 8, 6)
}

func TestSoftwareClose(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := NewSoftware(ctx)

	srcParams := imageParams(pixfmt.YUV420P, 64, 48)
	dstParams := imageParams(pixfmt.RGBA, 32, 24)
	src := newVideo(t, srcParams, true)
	dst := newVideo(t, dstParams, false)
	require.NoError(t, s.Reinit(ctx, srcParams, dstParams, Params{}))

	require.NoError(t, s.Close(ctx))
	require.NoError(t, s.Close(ctx))
	require.True(t, s.IsClosed())
	require.ErrorAs(t, s.ScaleFrame(ctx, src, dst), &ErrClosed{})
	require.ErrorAs(t, s.Reinit(ctx, srcParams, dstParams, Params{}), &ErrClosed{})
}

func TestBildScaleFrame(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	b := NewBild()
	defer b.Close(ctx)

	srcParams := imageParams(pixfmt.YUV420P, 64, 48)
	dstParams := imageParams(pixfmt.RGBA, 32, 24)
	src := newVideo(t, srcParams, true)
	dst := newVideo(t, dstParams, false)

	require.NoError(t, b.Reinit(ctx, srcParams, dstParams, Params{}))
	require.NoError(t, b.ScaleFrame(ctx, src, dst))

	img := frameImage(t, dst)
	require.Equal(t, image.Rect(0, 0, 32, 24), img.Bounds())
	requireDark(t, img, 16, 12)
}
