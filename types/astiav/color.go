package astiav

import (
	"github.com/asticode/go-astiav"
	"github.com/xaionaro-go/avscale/types"
)

func ColorSpaceToAstiav(c types.ColorSpace) astiav.ColorSpace {
	switch c {
	case types.ColorSpaceBT601:
		return astiav.ColorSpaceBt470Bg
	case types.ColorSpaceBT709:
		return astiav.ColorSpaceBt709
	case types.ColorSpaceSMPTE240M:
		return astiav.ColorSpaceSmpte240M
	case types.ColorSpaceBT2020NC:
		return astiav.ColorSpaceBt2020Ncl
	case types.ColorSpaceBT2020C:
		return astiav.ColorSpaceBt2020Cl
	case types.ColorSpaceRGB:
		return astiav.ColorSpaceRgb
	case types.ColorSpaceYCgCo:
		return astiav.ColorSpaceYcgco
	default:
		return astiav.ColorSpaceUnspecified
	}
}

func ColorSpaceFromAstiav(c astiav.ColorSpace) types.ColorSpace {
	switch c {
	case astiav.ColorSpaceBt470Bg, astiav.ColorSpaceSmpte170M:
		return types.ColorSpaceBT601
	case astiav.ColorSpaceBt709:
		return types.ColorSpaceBT709
	case astiav.ColorSpaceSmpte240M:
		return types.ColorSpaceSMPTE240M
	case astiav.ColorSpaceBt2020Ncl:
		return types.ColorSpaceBT2020NC
	case astiav.ColorSpaceBt2020Cl:
		return types.ColorSpaceBT2020C
	case astiav.ColorSpaceRgb:
		return types.ColorSpaceRGB
	case astiav.ColorSpaceYcgco:
		return types.ColorSpaceYCgCo
	default:
		return types.ColorSpaceAuto
	}
}

func ColorLevelsToAstiav(l types.ColorLevels) astiav.ColorRange {
	switch l {
	case types.ColorLevelsTV:
		return astiav.ColorRangeMpeg
	case types.ColorLevelsPC:
		return astiav.ColorRangeJpeg
	default:
		return astiav.ColorRangeUnspecified
	}
}

func ColorLevelsFromAstiav(r astiav.ColorRange) types.ColorLevels {
	switch r {
	case astiav.ColorRangeMpeg:
		return types.ColorLevelsTV
	case astiav.ColorRangeJpeg:
		return types.ColorLevelsPC
	default:
		return types.ColorLevelsAuto
	}
}
