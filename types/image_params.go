package types

import (
	"fmt"

	"github.com/xaionaro-go/avscale/pixfmt"
)

// ImageParams describes a video stream at a filter boundary.
type ImageParams struct {
	PixelFormat pixfmt.PixelFormat `yaml:"pixel_format"`

	// Size is the coded size in pixels.
	Size Resolution `yaml:"size"`

	// DisplaySize is the intended presentation size; it differs from Size
	// when pixels are not square.
	DisplaySize Resolution `yaml:"display_size"`

	ColorSpace  ColorSpace  `yaml:"color_space"`
	ColorLevels ColorLevels `yaml:"color_levels"`
}

func (p ImageParams) String() string {
	return fmt.Sprintf("%s %s (display %s, %s/%s)",
		p.Size, p.PixelFormat, p.DisplaySize, p.ColorSpace, p.ColorLevels,
	)
}

// SampleAspectRatio is the shape of a single pixel, derived from the
// display and coded sizes.
func (p ImageParams) SampleAspectRatio() Rational {
	return Rational{
		Num: p.DisplaySize.Width * p.Size.Height,
		Den: p.DisplaySize.Height * p.Size.Width,
	}.Reduce()
}

// ResetColor forgets the colour metadata, so the next GuessColor infers it
// from the pixel format and the size.
func (p *ImageParams) ResetColor() {
	p.ColorSpace = ColorSpaceAuto
	p.ColorLevels = ColorLevelsAuto
}

// GuessColor fills in the colour metadata that is still unknown.
func (p *ImageParams) GuessColor() {
	desc := p.PixelFormat.Descriptor()
	switch {
	case desc.Flags.Has(pixfmt.FlagYUV):
		switch p.ColorSpace {
		case ColorSpaceBT601, ColorSpaceBT709, ColorSpaceSMPTE240M,
			ColorSpaceBT2020NC, ColorSpaceBT2020C, ColorSpaceYCgCo:
		default:
			p.ColorSpace = GuessYUVColorSpace(p.Size.Width, p.Size.Height)
		}
		if p.ColorLevels == ColorLevelsAuto {
			p.ColorLevels = ColorLevelsTV
		}
	case desc.Flags.Has(pixfmt.FlagRGB), desc.Flags.Has(pixfmt.FlagGray):
		p.ColorSpace = ColorSpaceRGB
		p.ColorLevels = ColorLevelsPC
	case desc.Flags.Has(pixfmt.FlagXYZ):
		p.ColorSpace = ColorSpaceXYZ
		p.ColorLevels = ColorLevelsPC
	default:
		p.ResetColor()
	}
}
