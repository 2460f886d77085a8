// filter.go implements the scaling stage of a video filter chain.

// Package vfscale implements a video filter that converts frames to the
// pixel format and the size the next stage of the chain wants.
package vfscale

import (
	"context"
	"fmt"

	"github.com/asticode/go-astiav"
	"github.com/davecgh/go-spew/spew"
	"github.com/xaionaro-go/avscale/frame"
	"github.com/xaionaro-go/avscale/geometry"
	"github.com/xaionaro-go/avscale/logger"
	"github.com/xaionaro-go/avscale/negotiate"
	"github.com/xaionaro-go/avscale/pixfmt"
	"github.com/xaionaro-go/avscale/scaler"
	"github.com/xaionaro-go/avscale/types"
	"github.com/xaionaro-go/xsync"
)

type Downstream = negotiate.Downstream

type FrameAllocator interface {
	AllocFrame(ctx context.Context, params types.ImageParams) (*astiav.Frame, error)
}

type frameReleaser interface {
	ReleaseFrame(*astiav.Frame)
}

// Configuration is the result of a successful Reconfigure.
type Configuration struct {
	Input  types.ImageParams
	Output types.ImageParams
	Caps   pixfmt.Caps
}

func (c Configuration) String() string {
	return fmt.Sprintf("%s -> %s (%s)", c.Input, c.Output, c.Caps)
}

type Filter struct {
	locker     xsync.Mutex
	config     Config
	negotiator *negotiate.Negotiator
	engine     scaler.Engine
	allocator  FrameAllocator
	current    *Configuration
	closed     bool
	counters   types.Counters
}

// New returns a filter feeding `downstream`. A nil alloc means frame.PoolAllocator.
func New(
	ctx context.Context,
	cfg Config,
	downstream Downstream,
	engine scaler.Engine,
	alloc FrameAllocator,
) (_ret *Filter, _err error) {
	logger.Tracef(ctx, "New(ctx, %s, %T, %s, %T)", cfg, downstream, engine, alloc)
	defer func() { logger.Tracef(ctx, "/New(ctx, %s, %T, %s, %T): %v", cfg, downstream, engine, alloc, _err) }()

	if err := cfg.Validate(); err != nil {
		logger.Errorf(ctx, "rejected config %s: %v", cfg, err)
		return nil, err
	}
	if alloc == nil {
		alloc = frame.PoolAllocator{}
	}
	return &Filter{
		config:     cfg,
		negotiator: negotiate.New(engine.FormatSupport(), downstream),
		engine:     engine,
		allocator:  alloc,
	}, nil
}

func (f *Filter) String() string {
	return fmt.Sprintf("Scale(%s, %s)", f.config, f.engine)
}

// QueryFormat answers the previous stage whether it may send frames of
// pixel format `pixFmt`.
func (f *Filter) QueryFormat(
	ctx context.Context,
	pixFmt pixfmt.PixelFormat,
) pixfmt.Caps {
	return f.negotiator.QueryFormat(ctx, pixFmt)
}

// Reconfigure prepares the filter for input frames described by `in` and
// returns the description of the output frames. On failure the previous
// configuration stays in effect.
func (f *Filter) Reconfigure(
	ctx context.Context,
	in types.ImageParams,
) (_ret types.ImageParams, _err error) {
	logger.Tracef(ctx, "Reconfigure(ctx, %s)", in)
	defer func() { logger.Tracef(ctx, "/Reconfigure(ctx, %s): %s %v", in, _ret, _err) }()

	f.locker.Do(ctx, func() {
		_ret, _err = f.reconfigureLocked(ctx, in)
	})
	if _err != nil {
		f.counters.ReconfigurationsFailed.Inc()
		return types.ImageParams{}, _err
	}
	f.counters.Reconfigurations.Inc()
	return _ret, nil
}

func (f *Filter) reconfigureLocked(
	ctx context.Context,
	in types.ImageParams,
) (types.ImageParams, error) {
	if f.closed {
		return types.ImageParams{}, ErrClosed{}
	}

	negotiated, err := f.negotiator.Negotiate(ctx, in.PixelFormat)
	if err != nil {
		return types.ImageParams{}, fmt.Errorf("unable to negotiate the output pixel format: %w", err)
	}
	if !negotiated.Caps.IsSupported() {
		return types.ImageParams{}, ErrFormatRefused{PixelFormat: negotiated.PixelFormat}
	}

	resolved, err := geometry.Resolve(
		ctx,
		geometry.Input{Size: in.Size, DisplaySize: in.DisplaySize},
		f.config.DimensionSpec(),
		f.config.NoUpscale,
	)
	if err != nil {
		return types.ImageParams{}, fmt.Errorf("unable to resolve the output size: %w", err)
	}

	src := in
	out := types.ImageParams{
		PixelFormat: negotiated.PixelFormat,
		Size:        resolved.Size,
		DisplaySize: resolved.DisplaySize,
		ColorSpace:  in.ColorSpace,
		ColorLevels: in.ColorLevels,
	}
	if !src.PixelFormat.IsYUV() || !out.PixelFormat.IsYUV() {
		out.ResetColor()
	}
	src.GuessColor()
	out.GuessColor()

	if err := f.engine.Reinit(ctx, src, out, f.config.ScalerParams()); err != nil {
		logger.Warnf(ctx, "unable to initialize %s for %s -> %s: %v", f.engine, src, out, err)
		return types.ImageParams{}, ErrScalerInit{Src: src, Dst: out, Err: err}
	}

	f.current = &Configuration{
		Input:  in,
		Output: out,
		Caps:   negotiated.Caps,
	}
	logger.Debugf(ctx, "configured %s: %s", f.config, spew.Sdump(f.current))
	return out, nil
}

// CurrentConfig returns the configuration of the last successful Reconfigure.
func (f *Filter) CurrentConfig(ctx context.Context) (Configuration, bool) {
	var (
		result Configuration
		ok     bool
	)
	f.locker.Do(xsync.WithNoLogging(ctx, true), func() {
		if f.current == nil {
			return
		}
		result, ok = *f.current, true
	})
	return result, ok
}

// TransformFrame returns a newly allocated frame with the converted
// content of `in`; `in` is not modified.
func (f *Filter) TransformFrame(
	ctx context.Context,
	in *astiav.Frame,
) (_ret *astiav.Frame, _err error) {
	logger.Tracef(ctx, "TransformFrame(ctx, %p)", in)
	defer func() { logger.Tracef(ctx, "/TransformFrame(ctx, %p): %p %v", in, _ret, _err) }()

	if in == nil {
		return nil, ErrNilFrame{}
	}

	inSize := frameSize(in)
	f.counters.Frames.Received.Increment(inSize)
	f.locker.Do(xsync.WithNoLogging(ctx, true), func() {
		_ret, _err = f.transformFrameLocked(ctx, in)
	})
	if _err != nil {
		f.counters.Frames.Failed.Increment(inSize)
		return nil, _err
	}
	f.counters.Frames.Processed.Increment(frameSize(_ret))
	return _ret, nil
}

func (f *Filter) transformFrameLocked(
	ctx context.Context,
	in *astiav.Frame,
) (*astiav.Frame, error) {
	if f.closed {
		return nil, ErrClosed{}
	}
	if f.current == nil {
		return nil, ErrNotConfigured{}
	}

	out, err := f.allocator.AllocFrame(ctx, f.current.Output)
	if err != nil {
		return nil, fmt.Errorf("unable to allocate the output frame: %w", err)
	}
	frame.CopyAttributes(out, in)
	if err := f.engine.ScaleFrame(ctx, in, out); err != nil {
		f.releaseFrame(out)
		return nil, fmt.Errorf("unable to scale the frame: %w", err)
	}
	return out, nil
}

func (f *Filter) releaseFrame(fr *astiav.Frame) {
	if releaser, ok := f.allocator.(frameReleaser); ok {
		releaser.ReleaseFrame(fr)
	}
}

func frameSize(f *astiav.Frame) uint64 {
	if f == nil {
		return 0
	}
	size, err := f.ImageBufferSize(1)
	if err != nil || size < 0 {
		return 0
	}
	return uint64(size)
}

func (f *Filter) isClosed(ctx context.Context) bool {
	return xsync.DoR1(xsync.WithNoLogging(ctx, true), &f.locker, func() bool {
		return f.closed
	})
}

func (f *Filter) Stats() types.Statistics {
	return f.counters.ToStats()
}

func (f *Filter) Close(ctx context.Context) (_err error) {
	logger.Tracef(ctx, "Close")
	defer func() { logger.Tracef(ctx, "/Close: %v", _err) }()

	var alreadyClosed bool
	f.locker.Do(ctx, func() {
		alreadyClosed = f.closed
		f.closed = true
		f.current = nil
	})
	if alreadyClosed {
		return nil
	}
	if err := f.engine.Close(ctx); err != nil {
		return fmt.Errorf("unable to close %s: %w", f.engine, err)
	}
	return nil
}
