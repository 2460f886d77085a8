//go:build !ios && !android && (amd64 || arm64)

package scaler

import (
	"github.com/asticode/go-astiav"
	"github.com/obinnaokechukwu/ffgo"
	"github.com/obinnaokechukwu/ffgo/avutil"
	"github.com/obinnaokechukwu/ffgo/swscale"
)

func initSWScaleLibrary() (bool, error) {
	if err := ffgo.Init(); err != nil {
		return false, err
	}
	return ffgo.IsLoaded(), nil
}

func swscaleIsSupportedInput(f astiav.PixelFormat) bool {
	return swscale.IsSupportedInput(avutil.PixelFormat(f))
}

func swscaleIsSupportedOutput(f astiav.PixelFormat) bool {
	return swscale.IsSupportedOutput(avutil.PixelFormat(f))
}
