package geometry

import (
	"context"
	"fmt"

	"github.com/xaionaro-go/avscale/logger"
	"github.com/xaionaro-go/avscale/types"
)

// NoUpscale is the threshold of the upscaling suppression: when at least
// that many axes grow, the output keeps the input size.
type NoUpscale int

const (
	NoUpscaleDisabled NoUpscale = 0
	NoUpscaleAnyAxis  NoUpscale = 1
	NoUpscaleBothAxes NoUpscale = 2
)

func (n NoUpscale) IsValid() bool {
	return n >= NoUpscaleDisabled && n <= NoUpscaleBothAxes
}

// Input is the geometry of the incoming video.
type Input struct {
	Size        types.Resolution
	DisplaySize types.Resolution
}

// Resolved is the geometry of the outgoing video.
type Resolved struct {
	Size        types.Resolution
	DisplaySize types.Resolution
}

func (r Resolved) String() string {
	return fmt.Sprintf("%s (display %s)", r.Size, r.DisplaySize)
}

// Resolve computes the output geometry. Either a full Resolved value or an
// error is returned, never a partial result.
//
// A derived axis may truncate to 0 (e.g. width 1 with -3 on 1920x1080);
// such a geometry is returned as is and refused by the scaling engines.
func Resolve(
	ctx context.Context,
	in Input,
	spec Spec,
	noUpscale NoUpscale,
) (_ret Resolved, _err error) {
	logger.Tracef(ctx, "Resolve(ctx, %s, %s, %d)", in.Size, spec, noUpscale)
	defer func() { logger.Tracef(ctx, "/Resolve(ctx, %s, %s, %d): %v %v", in.Size, spec, noUpscale, _ret, _err) }()

	wDim, hDim, err := spec.Decode()
	if err != nil {
		return Resolved{}, err
	}
	if !in.Size.IsPositive() || !in.DisplaySize.IsPositive() {
		return Resolved{}, ErrInvalidInputGeometry{Size: in.Size, DisplaySize: in.DisplaySize}
	}

	w := resolveDirect(wDim, in.Size.Width, in.DisplaySize.Width)
	h := resolveDirect(hDim, in.Size.Height, in.DisplaySize.Height)

	// width first: if both were derived Decode would have failed already
	switch wDim.Mode {
	case ModeDeriveCodedAspect:
		w = h * in.Size.Width / in.Size.Height
	case ModeDeriveDisplayAspect:
		w = h * in.DisplaySize.Width / in.DisplaySize.Height
	}
	switch hDim.Mode {
	case ModeDeriveCodedAspect:
		h = w * in.Size.Height / in.Size.Width
	case ModeDeriveDisplayAspect:
		h = w * in.DisplaySize.Height / in.DisplaySize.Width
	}

	if wDim.RoundTo16 {
		w = RoundTo16(w)
	}
	if hDim.RoundTo16 {
		h = RoundTo16(h)
	}

	if noUpscale != NoUpscaleDisabled {
		grown := 0
		if w > in.Size.Width {
			grown++
		}
		if h > in.Size.Height {
			grown++
		}
		if grown >= int(noUpscale) {
			logger.Debugf(ctx, "upscaling to %dx%d is suppressed, keeping %s", w, h, in.Size)
			w, h = in.Size.Width, in.Size.Height
		}
	}

	size := types.Resolution{Width: w, Height: h}
	return Resolved{
		Size:        size,
		DisplaySize: DisplaySize(size, in.DisplaySize),
	}, nil
}

func resolveDirect(d Dimension, coded, display int) int {
	switch d.Mode {
	case ModeAbsolute:
		return d.Value
	case ModeSourceSize:
		return coded
	case ModeDisplaySize:
		return display
	default:
		return 0
	}
}

// RoundTo16 rounds v to the nearest multiple of 16, halves going up.
func RoundTo16(v int) int {
	return ((v + 8) / 16) * 16
}

// DisplaySize derives the display size for the pixel size `size` that keeps
// the aspect ratio of `inDisplay` and is not smaller than `size` in either
// dimension.
func DisplaySize(size, inDisplay types.Resolution) types.Resolution {
	if size.Height*inDisplay.Width > size.Width*inDisplay.Height {
		return types.Resolution{
			Width:  size.Height * inDisplay.Width / inDisplay.Height,
			Height: size.Height,
		}
	}
	return types.Resolution{
		Width:  size.Width,
		Height: size.Width * inDisplay.Height / inDisplay.Width,
	}
}
