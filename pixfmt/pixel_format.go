// pixel_format.go defines the enumerable universe of pixel formats.

// Package pixfmt describes the pixel formats a scaling stage may consume or produce.
package pixfmt

import (
	"fmt"
	"strings"
)

// PixelFormat identifies a memory layout and colour model of frame samples.
//
// The zero value is None. The universe is fixed; see All.
type PixelFormat uint16

const (
	None PixelFormat = iota

	// planar YUV
	YUV444P
	YUV444P16
	YUV444P14
	YUV444P12
	YUV444P10
	YUV444P9
	YUV422P
	YUV422P16
	YUV422P14
	YUV422P12
	YUV422P10
	YUV422P9
	YUV420P
	YUV420P16
	YUV420P14
	YUV420P12
	YUV420P10
	YUV420P9
	YUVA420P
	YUV410P
	YUV411P
	YUV440P

	// semi-planar and packed YUV
	NV12
	NV21
	YUYV
	UYVY

	// packed RGB, 32 bits
	BGR0
	RGB0
	ABGR
	ARGB
	BGRA
	RGBA

	// packed RGB, 24 and 48 bits
	BGR24
	RGB24
	RGB48

	// planar RGB
	GBRP

	// packed RGB, 16 and 12 bits
	BGR565
	RGB565
	BGR555
	RGB555
	BGR444
	RGB444

	// grayscale, low-depth and palette
	Y8
	BGR8
	RGB8
	BGR4
	RGB4
	RGB4Byte
	BGR4Byte
	Mono
	MonoW
	PAL8

	XYZ12

	// hardware surfaces
	VAAPI
	VDPAU
	CUDA
	VideoToolbox
	MediaCodec
	QSV
	D3D11
	DRMPrime

	endOfPixelFormats
)

// All returns every known pixel format except None, in declaration order.
func All() []PixelFormat {
	result := make([]PixelFormat, 0, int(endOfPixelFormats)-1)
	for f := None + 1; f < endOfPixelFormats; f++ {
		result = append(result, f)
	}
	return result
}

// IsValid reports whether f belongs to the universe.
func (f PixelFormat) IsValid() bool {
	return f > None && f < endOfPixelFormats
}

func (f PixelFormat) String() string {
	if f == None {
		return "none"
	}
	if !f.IsValid() {
		return fmt.Sprintf("unknown_pixfmt_%d", uint16(f))
	}
	return descriptors[f].Name
}

// Descriptor returns the static description of f.
// An invalid format yields the zero Descriptor.
func (f PixelFormat) Descriptor() Descriptor {
	if !f.IsValid() {
		return Descriptor{}
	}
	return descriptors[f]
}

// Parse finds the pixel format by its name (case-insensitive).
func Parse(s string) (PixelFormat, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return None, fmt.Errorf("empty pixel format name")
	}
	for f := None + 1; f < endOfPixelFormats; f++ {
		if descriptors[f].Name == name {
			return f, nil
		}
	}
	return None, fmt.Errorf("unknown pixel format '%s'", s)
}

func (f PixelFormat) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

func (f *PixelFormat) UnmarshalText(b []byte) error {
	v, err := Parse(string(b))
	if err != nil {
		return err
	}
	*f = v
	return nil
}
