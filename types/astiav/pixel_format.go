// pixel_format.go maps pixfmt.PixelFormat to and from libav pixel formats.

package astiav

import (
	"github.com/asticode/go-astiav"
	"github.com/xaionaro-go/avscale/pixfmt"
)

var pixelFormatToAstiav = map[pixfmt.PixelFormat]astiav.PixelFormat{
	pixfmt.YUV444P:   astiav.PixelFormatYuv444P,
	pixfmt.YUV444P16: astiav.PixelFormatYuv444P16Le,
	pixfmt.YUV444P14: astiav.PixelFormatYuv444P14Le,
	pixfmt.YUV444P12: astiav.PixelFormatYuv444P12Le,
	pixfmt.YUV444P10: astiav.PixelFormatYuv444P10Le,
	pixfmt.YUV444P9:  astiav.PixelFormatYuv444P9Le,
	pixfmt.YUV422P:   astiav.PixelFormatYuv422P,
	pixfmt.YUV422P16: astiav.PixelFormatYuv422P16Le,
	pixfmt.YUV422P14: astiav.PixelFormatYuv422P14Le,
	pixfmt.YUV422P12: astiav.PixelFormatYuv422P12Le,
	pixfmt.YUV422P10: astiav.PixelFormatYuv422P10Le,
	pixfmt.YUV422P9:  astiav.PixelFormatYuv422P9Le,
	pixfmt.YUV420P:   astiav.PixelFormatYuv420P,
	pixfmt.YUV420P16: astiav.PixelFormatYuv420P16Le,
	pixfmt.YUV420P14: astiav.PixelFormatYuv420P14Le,
	pixfmt.YUV420P12: astiav.PixelFormatYuv420P12Le,
	pixfmt.YUV420P10: astiav.PixelFormatYuv420P10Le,
	pixfmt.YUV420P9:  astiav.PixelFormatYuv420P9Le,
	pixfmt.YUVA420P:  astiav.PixelFormatYuva420P,
	pixfmt.YUV410P:   astiav.PixelFormatYuv410P,
	pixfmt.YUV411P:   astiav.PixelFormatYuv411P,
	pixfmt.YUV440P:   astiav.PixelFormatYuv440P,

	pixfmt.NV12: astiav.PixelFormatNv12,
	pixfmt.NV21: astiav.PixelFormatNv21,
	pixfmt.YUYV: astiav.PixelFormatYuyv422,
	pixfmt.UYVY: astiav.PixelFormatUyvy422,

	pixfmt.BGR0: astiav.PixelFormatBgr0,
	pixfmt.RGB0: astiav.PixelFormatRgb0,
	pixfmt.ABGR: astiav.PixelFormatAbgr,
	pixfmt.ARGB: astiav.PixelFormatArgb,
	pixfmt.BGRA: astiav.PixelFormatBgra,
	pixfmt.RGBA: astiav.PixelFormatRgba,

	pixfmt.BGR24: astiav.PixelFormatBgr24,
	pixfmt.RGB24: astiav.PixelFormatRgb24,
	pixfmt.RGB48: astiav.PixelFormatRgb48Le,
	pixfmt.GBRP:  astiav.PixelFormatGbrp,

	pixfmt.BGR565: astiav.PixelFormatBgr565Le,
	pixfmt.RGB565: astiav.PixelFormatRgb565Le,
	pixfmt.BGR555: astiav.PixelFormatBgr555Le,
	pixfmt.RGB555: astiav.PixelFormatRgb555Le,
	pixfmt.BGR444: astiav.PixelFormatBgr444Le,
	pixfmt.RGB444: astiav.PixelFormatRgb444Le,

	pixfmt.Y8:       astiav.PixelFormatGray8,
	pixfmt.BGR8:     astiav.PixelFormatBgr8,
	pixfmt.RGB8:     astiav.PixelFormatRgb8,
	pixfmt.BGR4:     astiav.PixelFormatBgr4,
	pixfmt.RGB4:     astiav.PixelFormatRgb4,
	pixfmt.RGB4Byte: astiav.PixelFormatRgb4Byte,
	pixfmt.BGR4Byte: astiav.PixelFormatBgr4Byte,
	pixfmt.Mono:     astiav.PixelFormatMonoblack,
	pixfmt.MonoW:    astiav.PixelFormatMonowhite,
	pixfmt.PAL8:     astiav.PixelFormatPal8,
	pixfmt.XYZ12:    astiav.PixelFormatXyz12Le,

	pixfmt.VAAPI:        astiav.PixelFormatVaapi,
	pixfmt.VDPAU:        astiav.PixelFormatVdpau,
	pixfmt.CUDA:         astiav.PixelFormatCuda,
	pixfmt.VideoToolbox: astiav.PixelFormatVideotoolbox,
	pixfmt.MediaCodec:   astiav.PixelFormatMediacodec,
	pixfmt.QSV:          astiav.PixelFormatQsv,
	pixfmt.D3D11:        astiav.PixelFormatD3D11,
	pixfmt.DRMPrime:     astiav.PixelFormatDrmPrime,
}

var pixelFormatFromAstiav = func() map[astiav.PixelFormat]pixfmt.PixelFormat {
	m := make(map[astiav.PixelFormat]pixfmt.PixelFormat, len(pixelFormatToAstiav))
	for k, v := range pixelFormatToAstiav {
		m[v] = k
	}
	return m
}()

// PixelFormatToAstiav returns astiav.PixelFormatNone for pixfmt.None and
// for formats libav has no equivalent of.
func PixelFormatToAstiav(f pixfmt.PixelFormat) astiav.PixelFormat {
	if r, ok := pixelFormatToAstiav[f]; ok {
		return r
	}
	return astiav.PixelFormatNone
}

// PixelFormatFromAstiav returns pixfmt.None for formats outside of pixfmt.All.
func PixelFormatFromAstiav(f astiav.PixelFormat) pixfmt.PixelFormat {
	return pixelFormatFromAstiav[f]
}
