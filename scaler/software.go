package scaler

import (
	"context"
	"fmt"

	"github.com/asticode/go-astiav"
	"github.com/xaionaro-go/avscale/helpers/closuresignaler"
	"github.com/xaionaro-go/avscale/logger"
	"github.com/xaionaro-go/avscale/types"
	avtypes "github.com/xaionaro-go/avscale/types/astiav"
	"github.com/xaionaro-go/xsync"
)

// Software is the libswscale engine.
//
// The scale context is created through astiav, which exposes neither the
// tuning parameters nor the colourspace details of libswscale, so Param is
// ignored and Software does not implement Equalizer.
type Software struct {
	*closuresignaler.ClosureSignaler

	support   *SWScaleSupport
	locker    xsync.Mutex
	swsCtx    *astiav.SoftwareScaleContext
	src, dst  types.ImageParams
	params    Params
	swsCtxGen uint64
}

var _ Engine = (*Software)(nil)

func NewSoftware(ctx context.Context) *Software {
	return &Software{
		ClosureSignaler: closuresignaler.New(),
		support:         NewSWScaleSupport(ctx),
	}
}

func (s *Software) FormatSupport() FormatSupport {
	return s.support
}

func (s *Software) String() string {
	ctx := xsync.WithNoLogging(context.Background(), true)
	return xsync.DoR1(ctx, &s.locker, func() string {
		if s.swsCtx == nil {
			return "SoftwareScaler(<uninitialized>)"
		}
		return fmt.Sprintf("SoftwareScaler(%s -> %s)", s.src, s.dst)
	})
}

func (s *Software) Reinit(
	ctx context.Context,
	src, dst types.ImageParams,
	params Params,
) (_err error) {
	logger.Tracef(ctx, "Reinit(ctx, %s, %s, %s)", src, dst, params)
	defer func() { logger.Tracef(ctx, "/Reinit(ctx, %s, %s, %s): %v", src, dst, params, _err) }()
	return xsync.DoA4R1(ctx, &s.locker, s.reinitLocked, ctx, src, dst, params)
}

func (s *Software) reinitLocked(
	ctx context.Context,
	src, dst types.ImageParams,
	params Params,
) error {
	if s.IsClosed() {
		return ErrClosed{}
	}

	srcPixFmt := avtypes.PixelFormatToAstiav(src.PixelFormat)
	if srcPixFmt == astiav.PixelFormatNone {
		return ErrUnsupportedFormat{PixelFormat: src.PixelFormat}
	}
	dstPixFmt := avtypes.PixelFormatToAstiav(dst.PixelFormat)
	if dstPixFmt == astiav.PixelFormatNone {
		return ErrUnsupportedFormat{PixelFormat: dst.PixelFormat, IsOutput: true}
	}

	if !src.Size.IsPositive() {
		return ErrInvalidSize{Size: src.Size}
	}
	if !dst.Size.IsPositive() {
		return ErrInvalidSize{Size: dst.Size, IsOutput: true}
	}

	for idx, param := range params.Param {
		if param.IsSet() {
			logger.Warnf(ctx, "the scaling context is created with the default tuning parameters; param%d=%v is ignored", idx+1, param.Get())
		}
	}

	swsCtx, err := astiav.CreateSoftwareScaleContext(
		src.Size.Width,
		src.Size.Height,
		srcPixFmt,
		dst.Size.Width,
		dst.Size.Height,
		dstPixFmt,
		astiav.NewSoftwareScaleContextFlags(astiav.SoftwareScaleContextFlag(params.ContextFlags())),
	)
	if err != nil {
		return fmt.Errorf("unable to create a software scale context: %w", err)
	}
	avtypes.SetFinalizerFree(ctx, swsCtx)

	if s.swsCtx != nil {
		avtypes.FreeNow(ctx, s.swsCtx)
	}
	s.swsCtx = swsCtx
	s.swsCtxGen++
	s.src, s.dst, s.params = src, dst, params
	logger.Debugf(ctx, "software scale context #%d: %s -> %s (%s)", s.swsCtxGen, src, dst, params)
	return nil
}

func (s *Software) Close(ctx context.Context) error {
	logger.Tracef(ctx, "Close")
	defer logger.Tracef(ctx, "/Close")
	if !s.ClosureSignaler.Close(ctx) {
		return nil
	}
	s.locker.Do(ctx, func() {
		if s.swsCtx != nil {
			avtypes.FreeNow(ctx, s.swsCtx)
			s.swsCtx = nil
		}
	})
	return nil
}

func (s *Software) ScaleFrame(
	ctx context.Context,
	src *astiav.Frame,
	dst *astiav.Frame,
) (_err error) {
	logger.Tracef(ctx, "ScaleFrame")
	defer func() { logger.Tracef(ctx, "/ScaleFrame: %v", _err) }()
	return xsync.DoR1(xsync.WithNoLogging(ctx, true), &s.locker, func() error {
		if s.IsClosed() {
			return ErrClosed{}
		}
		if s.swsCtx == nil {
			return ErrNotInitialized{}
		}
		if err := s.swsCtx.ScaleFrame(src, dst); err != nil {
			return fmt.Errorf("unable to scale a frame: %w", err)
		}
		return nil
	})
}
