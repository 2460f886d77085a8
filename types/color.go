package types

import (
	"fmt"
	"strings"
)

type ColorSpace int

const (
	ColorSpaceAuto ColorSpace = iota
	ColorSpaceBT601
	ColorSpaceBT709
	ColorSpaceSMPTE240M
	ColorSpaceBT2020NC
	ColorSpaceBT2020C
	ColorSpaceRGB
	ColorSpaceXYZ
	ColorSpaceYCgCo
	endOfColorSpaces
)

var colorSpaceNames = [endOfColorSpaces]string{
	ColorSpaceAuto:      "auto",
	ColorSpaceBT601:     "bt.601",
	ColorSpaceBT709:     "bt.709",
	ColorSpaceSMPTE240M: "smpte-240m",
	ColorSpaceBT2020NC:  "bt.2020-ncl",
	ColorSpaceBT2020C:   "bt.2020-cl",
	ColorSpaceRGB:       "rgb",
	ColorSpaceXYZ:       "xyz",
	ColorSpaceYCgCo:     "ycgco",
}

func (c ColorSpace) String() string {
	if c < 0 || c >= endOfColorSpaces {
		return fmt.Sprintf("unknown_colorspace_%d", int(c))
	}
	return colorSpaceNames[c]
}

func ColorSpaceFromString(s string) (ColorSpace, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for c, name := range colorSpaceNames {
		if name == s {
			return ColorSpace(c), nil
		}
	}
	return ColorSpaceAuto, fmt.Errorf("unknown colorspace '%s'", s)
}

// ColorLevels is the range of the sample values.
type ColorLevels int

const (
	ColorLevelsAuto ColorLevels = iota
	// ColorLevelsTV is the limited ("MPEG") range, 16-235 for 8-bit luma.
	ColorLevelsTV
	// ColorLevelsPC is the full ("JPEG") range.
	ColorLevelsPC
)

func (l ColorLevels) String() string {
	switch l {
	case ColorLevelsAuto:
		return "auto"
	case ColorLevelsTV:
		return "tv"
	case ColorLevelsPC:
		return "pc"
	default:
		return fmt.Sprintf("unknown_levels_%d", int(l))
	}
}

// GuessYUVColorSpace picks the matrix a YUV stream of the given size most
// likely uses: HD material is BT.709, everything else is BT.601.
func GuessYUVColorSpace(width, height int) ColorSpace {
	if width >= 1280 || height > 576 {
		return ColorSpaceBT709
	}
	return ColorSpaceBT601
}
