package scaler

import (
	"context"

	"github.com/asticode/go-astiav"
	"github.com/xaionaro-go/avscale/logger"
	"github.com/xaionaro-go/avscale/pixfmt"
	avtypes "github.com/xaionaro-go/avscale/types/astiav"
	"github.com/xaionaro-go/xsync"
)

// SWScaleSupport reports which pixel formats libswscale can read and write.
//
// libswscale is asked directly when it could be loaded dynamically,
// otherwise a tiny conversion context is created to probe the format.
type SWScaleSupport struct {
	locker      xsync.Mutex
	useLibrary  bool
	inputCache  map[pixfmt.PixelFormat]bool
	outputCache map[pixfmt.PixelFormat]bool
}

func NewSWScaleSupport(ctx context.Context) *SWScaleSupport {
	useLibrary, err := initSWScaleLibrary()
	if err != nil {
		logger.Debugf(ctx, "unable to load libswscale dynamically, will probe formats by creating contexts: %v", err)
	}
	return &SWScaleSupport{
		useLibrary:  useLibrary,
		inputCache:  map[pixfmt.PixelFormat]bool{},
		outputCache: map[pixfmt.PixelFormat]bool{},
	}
}

func (s *SWScaleSupport) String() string {
	if s.useLibrary {
		return "SWScaleSupport(libswscale)"
	}
	return "SWScaleSupport(probe)"
}

func (s *SWScaleSupport) IsSupportedInput(f pixfmt.PixelFormat) bool {
	return s.isSupported(f, false)
}

func (s *SWScaleSupport) IsSupportedOutput(f pixfmt.PixelFormat) bool {
	return s.isSupported(f, true)
}

func (s *SWScaleSupport) isSupported(f pixfmt.PixelFormat, isOutput bool) bool {
	if !f.IsValid() || f.IsHWAccel() {
		return false
	}
	avPixFmt := avtypes.PixelFormatToAstiav(f)
	if avPixFmt == astiav.PixelFormatNone {
		return false
	}

	ctx := xsync.WithNoLogging(context.Background(), true)
	return xsync.DoR1(ctx, &s.locker, func() bool {
		cache := s.inputCache
		if isOutput {
			cache = s.outputCache
		}
		if result, ok := cache[f]; ok {
			return result
		}
		var result bool
		switch {
		case s.useLibrary && isOutput:
			result = swscaleIsSupportedOutput(avPixFmt)
		case s.useLibrary:
			result = swscaleIsSupportedInput(avPixFmt)
		case isOutput:
			result = probeConversion(astiav.PixelFormatYuv420P, avPixFmt)
		default:
			result = probeConversion(avPixFmt, astiav.PixelFormatYuv420P)
		}
		cache[f] = result
		return result
	})
}

func probeConversion(src, dst astiav.PixelFormat) bool {
	swsCtx, err := astiav.CreateSoftwareScaleContext(
		16, 16, src,
		16, 16, dst,
		astiav.NewSoftwareScaleContextFlags(astiav.SoftwareScaleContextFlag(AlgorithmPoint.contextFlag())),
	)
	if err != nil {
		return false
	}
	swsCtx.Free()
	return true
}

type rgbaSupport struct{}

// RGBASupport describes the formats of the Bild engine: a few planar YUV and
// grayscale formats in, packed RGBA out.
var RGBASupport rgbaSupport

func (rgbaSupport) String() string {
	return "RGBASupport"
}

func (rgbaSupport) IsSupportedInput(f pixfmt.PixelFormat) bool {
	switch f {
	case pixfmt.Y8,
		pixfmt.YUV410P, pixfmt.YUV411P, pixfmt.YUV420P,
		pixfmt.YUV422P, pixfmt.YUV440P, pixfmt.YUV444P,
		pixfmt.YUVA420P,
		pixfmt.RGBA:
		return true
	}
	return false
}

func (rgbaSupport) IsSupportedOutput(f pixfmt.PixelFormat) bool {
	return f == pixfmt.RGBA
}
