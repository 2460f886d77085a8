//go:build ios || android || !(amd64 || arm64)

package scaler

import (
	"fmt"

	"github.com/asticode/go-astiav"
)

func initSWScaleLibrary() (bool, error) {
	return false, fmt.Errorf("dynamic loading of libswscale is not supported on this platform")
}

func swscaleIsSupportedInput(astiav.PixelFormat) bool {
	return false
}

func swscaleIsSupportedOutput(astiav.PixelFormat) bool {
	return false
}
