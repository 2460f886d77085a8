package pixfmt

// Flags describe colour model and memory layout properties of a pixel format.
type Flags uint32

const (
	FlagYUV Flags = 1 << iota
	FlagRGB
	FlagGray
	FlagXYZ
	FlagPlanar
	FlagAlpha
	FlagPalette
	FlagHWAccel
	FlagBitstream
)

func (f Flags) Has(mask Flags) bool {
	return f&mask == mask
}

type Descriptor struct {
	Name  string
	Flags Flags

	// Bits is the depth of a single component; for packed formats with
	// components of different depth it is the depth of the largest one.
	Bits uint8

	// ChromaShiftX and ChromaShiftY are log2 of the chroma subsampling factors.
	ChromaShiftX uint8
	ChromaShiftY uint8

	Planes uint8
}

func (d Descriptor) IsYUV() bool     { return d.Flags.Has(FlagYUV) }
func (d Descriptor) IsRGB() bool     { return d.Flags.Has(FlagRGB) }
func (d Descriptor) IsHWAccel() bool { return d.Flags.Has(FlagHWAccel) }

func (f PixelFormat) IsHWAccel() bool {
	return f.Descriptor().IsHWAccel()
}

func (f PixelFormat) IsYUV() bool {
	return f.Descriptor().IsYUV()
}

func planarYUV(name string, bits, sx, sy uint8) Descriptor {
	return Descriptor{Name: name, Flags: FlagYUV | FlagPlanar, Bits: bits, ChromaShiftX: sx, ChromaShiftY: sy, Planes: 3}
}

func packedRGB(name string, bits uint8, extra Flags) Descriptor {
	return Descriptor{Name: name, Flags: FlagRGB | extra, Bits: bits, Planes: 1}
}

func hwSurface(name string) Descriptor {
	return Descriptor{Name: name, Flags: FlagHWAccel}
}

var descriptors = [endOfPixelFormats]Descriptor{
	None: {Name: "none"},

	YUV444P:   planarYUV("yuv444p", 8, 0, 0),
	YUV444P16: planarYUV("yuv444p16", 16, 0, 0),
	YUV444P14: planarYUV("yuv444p14", 14, 0, 0),
	YUV444P12: planarYUV("yuv444p12", 12, 0, 0),
	YUV444P10: planarYUV("yuv444p10", 10, 0, 0),
	YUV444P9:  planarYUV("yuv444p9", 9, 0, 0),
	YUV422P:   planarYUV("yuv422p", 8, 1, 0),
	YUV422P16: planarYUV("yuv422p16", 16, 1, 0),
	YUV422P14: planarYUV("yuv422p14", 14, 1, 0),
	YUV422P12: planarYUV("yuv422p12", 12, 1, 0),
	YUV422P10: planarYUV("yuv422p10", 10, 1, 0),
	YUV422P9:  planarYUV("yuv422p9", 9, 1, 0),
	YUV420P:   planarYUV("yuv420p", 8, 1, 1),
	YUV420P16: planarYUV("yuv420p16", 16, 1, 1),
	YUV420P14: planarYUV("yuv420p14", 14, 1, 1),
	YUV420P12: planarYUV("yuv420p12", 12, 1, 1),
	YUV420P10: planarYUV("yuv420p10", 10, 1, 1),
	YUV420P9:  planarYUV("yuv420p9", 9, 1, 1),
	YUVA420P: {
		Name: "yuva420p", Flags: FlagYUV | FlagPlanar | FlagAlpha,
		Bits: 8, ChromaShiftX: 1, ChromaShiftY: 1, Planes: 4,
	},
	YUV410P: planarYUV("yuv410p", 8, 2, 2),
	YUV411P: planarYUV("yuv411p", 8, 2, 0),
	YUV440P: planarYUV("yuv440p", 8, 0, 1),

	NV12: {Name: "nv12", Flags: FlagYUV, Bits: 8, ChromaShiftX: 1, ChromaShiftY: 1, Planes: 2},
	NV21: {Name: "nv21", Flags: FlagYUV, Bits: 8, ChromaShiftX: 1, ChromaShiftY: 1, Planes: 2},
	YUYV: {Name: "yuyv", Flags: FlagYUV, Bits: 8, ChromaShiftX: 1, Planes: 1},
	UYVY: {Name: "uyvy", Flags: FlagYUV, Bits: 8, ChromaShiftX: 1, Planes: 1},

	BGR0: packedRGB("bgr0", 8, 0),
	RGB0: packedRGB("rgb0", 8, 0),
	ABGR: packedRGB("abgr", 8, FlagAlpha),
	ARGB: packedRGB("argb", 8, FlagAlpha),
	BGRA: packedRGB("bgra", 8, FlagAlpha),
	RGBA: packedRGB("rgba", 8, FlagAlpha),

	BGR24: packedRGB("bgr24", 8, 0),
	RGB24: packedRGB("rgb24", 8, 0),
	RGB48: packedRGB("rgb48", 16, 0),

	GBRP: {Name: "gbrp", Flags: FlagRGB | FlagPlanar, Bits: 8, Planes: 3},

	BGR565: packedRGB("bgr565", 6, 0),
	RGB565: packedRGB("rgb565", 6, 0),
	BGR555: packedRGB("bgr555", 5, 0),
	RGB555: packedRGB("rgb555", 5, 0),
	BGR444: packedRGB("bgr444", 4, 0),
	RGB444: packedRGB("rgb444", 4, 0),

	Y8:       {Name: "y8", Flags: FlagYUV | FlagGray, Bits: 8, Planes: 1},
	BGR8:     packedRGB("bgr8", 3, 0),
	RGB8:     packedRGB("rgb8", 3, 0),
	BGR4:     packedRGB("bgr4", 2, FlagBitstream),
	RGB4:     packedRGB("rgb4", 2, FlagBitstream),
	RGB4Byte: packedRGB("rgb4_byte", 2, 0),
	BGR4Byte: packedRGB("bgr4_byte", 2, 0),
	Mono:     {Name: "mono", Flags: FlagYUV | FlagGray | FlagBitstream, Bits: 1, Planes: 1},
	MonoW:    {Name: "mono_w", Flags: FlagYUV | FlagGray | FlagBitstream, Bits: 1, Planes: 1},
	PAL8:     {Name: "pal8", Flags: FlagRGB | FlagPalette, Bits: 8, Planes: 2},

	XYZ12: {Name: "xyz12", Flags: FlagXYZ, Bits: 12, Planes: 1},

	VAAPI:        hwSurface("vaapi"),
	VDPAU:        hwSurface("vdpau"),
	CUDA:         hwSurface("cuda"),
	VideoToolbox: hwSurface("videotoolbox"),
	MediaCodec:   hwSurface("mediacodec"),
	QSV:          hwSurface("qsv"),
	D3D11:        hwSurface("d3d11"),
	DRMPrime:     hwSurface("drm_prime"),
}
