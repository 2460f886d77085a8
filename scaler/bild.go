// bild.go implements a pure-Go engine producing packed RGBA frames.

package scaler

import (
	"context"
	"fmt"
	"image"
	"image/draw"

	"github.com/anthonynsimon/bild/transform"
	"github.com/asticode/go-astiav"
	"github.com/xaionaro-go/avscale/helpers/closuresignaler"
	"github.com/xaionaro-go/avscale/logger"
	"github.com/xaionaro-go/avscale/types"
	"github.com/xaionaro-go/xsync"
)

type Bild struct {
	*closuresignaler.ClosureSignaler

	locker      xsync.Mutex
	initialized bool
	src, dst    types.ImageParams
	filter      transform.ResampleFilter
	equalizer   EqualizerSettings
}

var (
	_ Engine    = (*Bild)(nil)
	_ Equalizer = (*Bild)(nil)
)

func NewBild() *Bild {
	return &Bild{
		ClosureSignaler: closuresignaler.New(),
		equalizer:       EqualizerSettings{},
	}
}

func (b *Bild) FormatSupport() FormatSupport {
	return RGBASupport
}

func (b *Bild) String() string {
	ctx := xsync.WithNoLogging(context.Background(), true)
	return xsync.DoR1(ctx, &b.locker, func() string {
		if !b.initialized {
			return "BildScaler(<uninitialized>)"
		}
		return fmt.Sprintf("BildScaler(%s -> %s)", b.src, b.dst)
	})
}

func resampleFilter(a Algorithm) transform.ResampleFilter {
	switch a {
	case AlgorithmPoint:
		return transform.NearestNeighbor
	case AlgorithmArea:
		return transform.Box
	case AlgorithmFastBilinear, AlgorithmBilinear, AlgorithmExperimental:
		return transform.Linear
	case AlgorithmGauss:
		return transform.Gaussian
	case AlgorithmSpline:
		return transform.MitchellNetravali
	case AlgorithmSinc, AlgorithmLanczos:
		return transform.Lanczos
	default:
		return transform.CatmullRom
	}
}

func (b *Bild) Reinit(
	ctx context.Context,
	src, dst types.ImageParams,
	params Params,
) (_err error) {
	logger.Tracef(ctx, "Reinit(ctx, %s, %s, %s)", src, dst, params)
	defer func() { logger.Tracef(ctx, "/Reinit(ctx, %s, %s, %s): %v", src, dst, params, _err) }()
	return xsync.DoA4R1(ctx, &b.locker, b.reinitLocked, ctx, src, dst, params)
}

func (b *Bild) reinitLocked(
	ctx context.Context,
	src, dst types.ImageParams,
	params Params,
) error {
	if b.IsClosed() {
		return ErrClosed{}
	}
	if !RGBASupport.IsSupportedInput(src.PixelFormat) {
		return ErrUnsupportedFormat{PixelFormat: src.PixelFormat}
	}
	if !RGBASupport.IsSupportedOutput(dst.PixelFormat) {
		return ErrUnsupportedFormat{PixelFormat: dst.PixelFormat, IsOutput: true}
	}
	if !src.Size.IsPositive() {
		return ErrInvalidSize{Size: src.Size}
	}
	if !dst.Size.IsPositive() {
		return ErrInvalidSize{Size: dst.Size, IsOutput: true}
	}
	if params.Param[0].IsSet() || params.Param[1].IsSet() {
		logger.Warnf(ctx, "the bild engine has no tuning parameters; %s is applied without them", params)
	}
	if params.ChromaDrop != 0 || params.AccurateRounding {
		logger.Debugf(ctx, "chroma drop and accurate rounding do not apply to RGBA output")
	}

	b.src, b.dst = src, dst
	b.filter = resampleFilter(params.Algorithm)
	b.initialized = true
	return nil
}

// ScaleImage resamples img to the configured output size and applies the
// equalizer.
func (b *Bild) ScaleImage(
	ctx context.Context,
	img image.Image,
) (_ret image.Image, _err error) {
	logger.Tracef(ctx, "ScaleImage")
	defer func() { logger.Tracef(ctx, "/ScaleImage: %v", _err) }()
	b.locker.Do(xsync.WithNoLogging(ctx, true), func() {
		_ret, _err = b.scaleImageLocked(ctx, img)
	})
	return
}

func (b *Bild) scaleImageLocked(
	ctx context.Context,
	img image.Image,
) (image.Image, error) {
	if b.IsClosed() {
		return nil, ErrClosed{}
	}
	if !b.initialized {
		return nil, ErrNotInitialized{}
	}

	var result image.Image = img
	bounds := img.Bounds()
	if bounds.Dx() != b.dst.Size.Width || bounds.Dy() != b.dst.Size.Height {
		result = transform.Resize(img, b.dst.Size.Width, b.dst.Size.Height, b.filter)
	}
	if !b.equalizer.IsNeutral() {
		result = b.equalizer.Apply(result)
	}
	return result, nil
}

func (b *Bild) ScaleFrame(
	ctx context.Context,
	src *astiav.Frame,
	dst *astiav.Frame,
) (_err error) {
	logger.Tracef(ctx, "ScaleFrame")
	defer func() { logger.Tracef(ctx, "/ScaleFrame: %v", _err) }()

	srcImg, err := src.Data().GuessImageFormat()
	if err != nil {
		return fmt.Errorf("unable to guess the image format: %w", err)
	}
	if err := src.Data().ToImage(srcImg); err != nil {
		return fmt.Errorf("unable to convert the image into Go's format: %w", err)
	}

	scaled, err := b.ScaleImage(ctx, srcImg)
	if err != nil {
		return err
	}

	dstImg, err := dst.Data().GuessImageFormat()
	if err != nil {
		return fmt.Errorf("unable to guess the output image format: %w", err)
	}
	if err := dst.Data().ToImage(dstImg); err != nil {
		return fmt.Errorf("unable to map the output frame: %w", err)
	}
	drawable, ok := dstImg.(draw.Image)
	if !ok {
		return fmt.Errorf("output image %T is not drawable", dstImg)
	}
	draw.Draw(drawable, drawable.Bounds(), scaled, scaled.Bounds().Min, draw.Src)
	if err := dst.Data().FromImage(dstImg); err != nil {
		return fmt.Errorf("unable to set the scaled frame: %w", err)
	}
	return nil
}

func (b *Bild) SetEqualizer(
	ctx context.Context,
	property EqualizerProperty,
	value int,
) error {
	return xsync.DoR1(ctx, &b.locker, func() error {
		return b.equalizer.Set(property, value)
	})
}

func (b *Bild) GetEqualizer(
	ctx context.Context,
	property EqualizerProperty,
) (_ret int, _err error) {
	b.locker.Do(ctx, func() {
		_ret, _err = b.equalizer.Get(property)
	})
	return
}

func (b *Bild) Close(ctx context.Context) error {
	logger.Tracef(ctx, "Close")
	defer logger.Tracef(ctx, "/Close")
	b.ClosureSignaler.Close(ctx)
	return nil
}
