// scaler.go defines the interfaces of scaling engines.

// Package scaler provides the engines that do the actual pixel work of a
// scaling stage: converting pixel formats and resampling frames.
package scaler

import (
	"context"
	"fmt"

	"github.com/asticode/go-astiav"
	"github.com/xaionaro-go/avscale/pixfmt"
	"github.com/xaionaro-go/avscale/types"
)

// FormatSupport tells which pixel formats an engine can read and write.
type FormatSupport interface {
	IsSupportedInput(pixfmt.PixelFormat) bool
	IsSupportedOutput(pixfmt.PixelFormat) bool
}

// Engine is a reconfigurable scaler.
//
// Reinit must leave the previous configuration working if it fails.
type Engine interface {
	fmt.Stringer
	FormatSupport() FormatSupport
	Reinit(ctx context.Context, src, dst types.ImageParams, params Params) error
	ScaleFrame(ctx context.Context, src *astiav.Frame, dst *astiav.Frame) error
	types.Closer
}

// Equalizer is implemented by engines that can adjust picture properties
// while converting. Values are in range [-100, 100], 0 is neutral.
type Equalizer interface {
	SetEqualizer(ctx context.Context, property EqualizerProperty, value int) error
	GetEqualizer(ctx context.Context, property EqualizerProperty) (int, error)
}
