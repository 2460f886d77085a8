// frame.go provides helpers around the frames passed through a scaling stage.

// Package frame provides utilities for allocating video frames and moving
// their metadata between the input and the output of a scaling stage.
package frame

import (
	"github.com/asticode/go-astiav"
	"github.com/xaionaro-go/avscale/types"
	avtypes "github.com/xaionaro-go/avscale/types/astiav"
)

// ImageParams returns what the frame says about its own picture.
//
// The display size is derived from the sample aspect ratio by stretching
// one axis, never shrinking either.
func ImageParams(f *astiav.Frame) types.ImageParams {
	size := types.Resolution{Width: f.Width(), Height: f.Height()}
	return types.ImageParams{
		PixelFormat: avtypes.PixelFormatFromAstiav(f.PixelFormat()),
		Size:        size,
		DisplaySize: displaySizeFromSAR(size, avtypes.RationalFromAstiav(f.SampleAspectRatio())),
		ColorSpace:  avtypes.ColorSpaceFromAstiav(f.ColorSpace()),
		ColorLevels: avtypes.ColorLevelsFromAstiav(f.ColorRange()),
	}
}

func displaySizeFromSAR(size types.Resolution, sar types.Rational) types.Resolution {
	if sar.Num <= 0 || sar.Den <= 0 || sar.Num == sar.Den {
		return size
	}
	if sar.Num > sar.Den {
		return types.Resolution{
			Width:  int(int64(size.Width) * int64(sar.Num) / int64(sar.Den)),
			Height: size.Height,
		}
	}
	return types.Resolution{
		Width:  size.Width,
		Height: int(int64(size.Height) * int64(sar.Den) / int64(sar.Num)),
	}
}

// CopyAttributes copies the timing and the picture type of src to dst.
// Geometry and colour are not touched.
func CopyAttributes(dst, src *astiav.Frame) {
	dst.SetPts(src.Pts())
	dst.SetPktDts(src.PktDts())
	dst.SetDuration(src.Duration())
	dst.SetPictureType(src.PictureType())
}

// SetImageParams describes the picture of f according to params. It does
// not (re)allocate the buffers.
func SetImageParams(f *astiav.Frame, params types.ImageParams) {
	f.SetWidth(params.Size.Width)
	f.SetHeight(params.Size.Height)
	f.SetPixelFormat(avtypes.PixelFormatToAstiav(params.PixelFormat))
	f.SetSampleAspectRatio(avtypes.RationalToAstiav(params.SampleAspectRatio()))
	f.SetColorSpace(avtypes.ColorSpaceToAstiav(params.ColorSpace))
	f.SetColorRange(avtypes.ColorLevelsToAstiav(params.ColorLevels))
}
