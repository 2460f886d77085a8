package negotiate

import (
	"github.com/xaionaro-go/avscale/pixfmt"
)

// Conversion is a preferred destination for a given source format.
type Conversion struct {
	From pixfmt.PixelFormat
	To   pixfmt.PixelFormat
}

// Conversions that involve no scaling of the chroma planes or have a fast
// path in the scaler; the earlier entry wins.
var preferredConversions = []Conversion{
	{pixfmt.YUYV, pixfmt.UYVY},
	{pixfmt.YUYV, pixfmt.YUV422P},
	{pixfmt.UYVY, pixfmt.YUYV},
	{pixfmt.UYVY, pixfmt.YUV422P},
	{pixfmt.YUV422P, pixfmt.YUYV},
	{pixfmt.YUV422P, pixfmt.UYVY},
	{pixfmt.YUV420P10, pixfmt.YUV420P},
	{pixfmt.GBRP, pixfmt.BGR24},
	{pixfmt.GBRP, pixfmt.RGB24},
	{pixfmt.GBRP, pixfmt.BGR0},
	{pixfmt.GBRP, pixfmt.RGB0},
	{pixfmt.PAL8, pixfmt.BGR0},
	{pixfmt.XYZ12, pixfmt.RGB48},
}

var preferredOutputs = []pixfmt.PixelFormat{
	// YUV
	pixfmt.YUV444P,
	pixfmt.YUV444P16,
	pixfmt.YUV444P14,
	pixfmt.YUV444P12,
	pixfmt.YUV444P10,
	pixfmt.YUV444P9,
	pixfmt.YUV422P,
	pixfmt.YUV422P16,
	pixfmt.YUV422P14,
	pixfmt.YUV422P12,
	pixfmt.YUV422P10,
	pixfmt.YUV422P9,
	pixfmt.YUV420P,
	pixfmt.YUV420P16,
	pixfmt.YUV420P14,
	pixfmt.YUV420P12,
	pixfmt.YUV420P10,
	pixfmt.YUV420P9,
	pixfmt.YUVA420P,
	pixfmt.YUV410P,
	pixfmt.YUV411P,
	pixfmt.NV12,
	pixfmt.NV21,
	pixfmt.YUYV,
	pixfmt.UYVY,
	pixfmt.YUV440P,

	// RGB and grayscale
	pixfmt.BGR0,
	pixfmt.RGB0,
	pixfmt.ABGR,
	pixfmt.ARGB,
	pixfmt.BGRA,
	pixfmt.RGBA,
	pixfmt.BGR24,
	pixfmt.RGB24,
	pixfmt.GBRP,
	pixfmt.RGB48,
	pixfmt.BGR565,
	pixfmt.RGB565,
	pixfmt.BGR555,
	pixfmt.RGB555,
	pixfmt.BGR444,
	pixfmt.RGB444,
	pixfmt.Y8,
	pixfmt.BGR8,
	pixfmt.RGB8,
	pixfmt.BGR4,
	pixfmt.RGB4,
	pixfmt.RGB4Byte,
	pixfmt.BGR4Byte,
	pixfmt.Mono,
	pixfmt.MonoW,
}

// PreferredConversions returns a copy of the default conversion preference table.
func PreferredConversions() []Conversion {
	return append([]Conversion(nil), preferredConversions...)
}

// PreferredOutputs returns a copy of the default list of output formats,
// formats with fast conversion paths first.
func PreferredOutputs() []pixfmt.PixelFormat {
	return append([]pixfmt.PixelFormat(nil), preferredOutputs...)
}
