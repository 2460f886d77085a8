// dimension.go decodes the sentinel-encoded per-axis size requests.

// Package geometry resolves a requested output size against the geometry of
// the incoming video.
package geometry

import (
	"fmt"
)

// Mode is how a single axis of the output size is obtained.
type Mode int

const (
	// ModeAbsolute takes Dimension.Value literally.
	ModeAbsolute Mode = iota
	// ModeDisplaySize takes the display size of the input.
	ModeDisplaySize
	// ModeSourceSize takes the coded size of the input.
	ModeSourceSize
	// ModeDeriveDisplayAspect computes the axis from the other one,
	// keeping the display aspect ratio of the input.
	ModeDeriveDisplayAspect
	// ModeDeriveCodedAspect computes the axis from the other one,
	// keeping the coded aspect ratio of the input.
	ModeDeriveCodedAspect
)

func (m Mode) String() string {
	switch m {
	case ModeAbsolute:
		return "absolute"
	case ModeDisplaySize:
		return "display-size"
	case ModeSourceSize:
		return "source-size"
	case ModeDeriveDisplayAspect:
		return "derive-display-aspect"
	case ModeDeriveCodedAspect:
		return "derive-coded-aspect"
	default:
		return fmt.Sprintf("unknown_mode_%d", int(m))
	}
}

func (m Mode) IsDerived() bool {
	return m == ModeDeriveDisplayAspect || m == ModeDeriveCodedAspect
}

// Raw sentinel values of the dimension language.
const (
	RawDisplaySize         = 0
	RawSourceSize          = -1
	RawDeriveDisplayAspect = -2
	RawDeriveCodedAspect   = -3

	// RawRoundTo16 is subtracted from a non-absolute value to also request
	// rounding of the result to a multiple of 16.
	RawRoundTo16 = -8

	// RawMin is the smallest accepted raw value.
	RawMin = RawDeriveCodedAspect + RawRoundTo16
)

// Dimension is a decoded per-axis size request.
type Dimension struct {
	Mode      Mode
	Value     int
	RoundTo16 bool
}

func Absolute(v int) Dimension {
	return Dimension{Mode: ModeAbsolute, Value: v}
}

func (d Dimension) String() string {
	var s string
	if d.Mode == ModeAbsolute {
		s = fmt.Sprintf("%d", d.Value)
	} else {
		s = d.Mode.String()
	}
	if d.RoundTo16 {
		s += "/16"
	}
	return s
}

// DecodeDimension converts a raw sentinel-encoded value into a Dimension.
func DecodeDimension(raw int) (Dimension, error) {
	if raw > 0 {
		return Absolute(raw), nil
	}

	var d Dimension
	if raw <= RawRoundTo16 {
		raw -= RawRoundTo16
		d.RoundTo16 = true
	}

	switch raw {
	case RawDisplaySize:
		d.Mode = ModeDisplaySize
	case RawSourceSize:
		d.Mode = ModeSourceSize
	case RawDeriveDisplayAspect:
		d.Mode = ModeDeriveDisplayAspect
	case RawDeriveCodedAspect:
		d.Mode = ModeDeriveCodedAspect
	default:
		return Dimension{}, fmt.Errorf("value %d is out of the supported range", raw)
	}
	return d, nil
}

// Encode is the inverse of DecodeDimension.
func (d Dimension) Encode() int {
	var raw int
	switch d.Mode {
	case ModeAbsolute:
		return d.Value
	case ModeDisplaySize:
		raw = RawDisplaySize
	case ModeSourceSize:
		raw = RawSourceSize
	case ModeDeriveDisplayAspect:
		raw = RawDeriveDisplayAspect
	case ModeDeriveCodedAspect:
		raw = RawDeriveCodedAspect
	}
	if d.RoundTo16 {
		raw += RawRoundTo16
	}
	return raw
}

// Spec is the raw, sentinel-encoded output size request.
type Spec struct {
	Width  int `yaml:"w"`
	Height int `yaml:"h"`
}

func (s Spec) String() string {
	return fmt.Sprintf("%d:%d", s.Width, s.Height)
}

// Decode validates the request and converts both axes.
func (s Spec) Decode() (width, height Dimension, _err error) {
	defer func() {
		if _err != nil {
			_err = ErrInvalidDimensionSpec{Spec: s, Err: _err}
		}
	}()

	width, err := DecodeDimension(s.Width)
	if err != nil {
		return Dimension{}, Dimension{}, fmt.Errorf("width: %w", err)
	}
	height, err = DecodeDimension(s.Height)
	if err != nil {
		return Dimension{}, Dimension{}, fmt.Errorf("height: %w", err)
	}
	if width.Mode.IsDerived() && height.Mode.IsDerived() {
		return Dimension{}, Dimension{}, fmt.Errorf("both axes are derived from each other, nothing to anchor to")
	}
	return width, height, nil
}
