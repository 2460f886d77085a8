package scaler

import (
	"image"

	"github.com/anthonynsimon/bild/adjust"
)

type EqualizerProperty string

const (
	EqualizerBrightness = EqualizerProperty("brightness")
	EqualizerContrast   = EqualizerProperty("contrast")
	EqualizerSaturation = EqualizerProperty("saturation")
	EqualizerHue        = EqualizerProperty("hue")
)

const (
	EqualizerMin = -100
	EqualizerMax = 100
)

func EqualizerProperties() []EqualizerProperty {
	return []EqualizerProperty{
		EqualizerBrightness,
		EqualizerContrast,
		EqualizerSaturation,
		EqualizerHue,
	}
}

// EqualizerSettings is the current state of an equalizer; absent keys are 0.
type EqualizerSettings map[EqualizerProperty]int

func (s EqualizerSettings) IsNeutral() bool {
	for _, v := range s {
		if v != 0 {
			return false
		}
	}
	return true
}

func (s EqualizerSettings) Set(property EqualizerProperty, value int) error {
	if !isKnownEqualizerProperty(property) {
		return ErrUnknownEqualizerProperty{Property: property}
	}
	if value < EqualizerMin || value > EqualizerMax {
		return ErrEqualizerValueOutOfRange{Property: property, Value: value}
	}
	s[property] = value
	return nil
}

func (s EqualizerSettings) Get(property EqualizerProperty) (int, error) {
	if !isKnownEqualizerProperty(property) {
		return 0, ErrUnknownEqualizerProperty{Property: property}
	}
	return s[property], nil
}

func isKnownEqualizerProperty(property EqualizerProperty) bool {
	for _, p := range EqualizerProperties() {
		if p == property {
			return true
		}
	}
	return false
}

// Apply returns img adjusted by the settings; img itself is not modified.
func (s EqualizerSettings) Apply(img image.Image) image.Image {
	if v := s[EqualizerBrightness]; v != 0 {
		img = adjust.Brightness(img, float64(v)/100)
	}
	if v := s[EqualizerContrast]; v != 0 {
		img = adjust.Contrast(img, float64(v)/100)
	}
	if v := s[EqualizerSaturation]; v != 0 {
		img = adjust.Saturation(img, float64(v)/100)
	}
	if v := s[EqualizerHue]; v != 0 {
		// the full range maps to a half turn in each direction
		img = adjust.Hue(img, v*180/100)
	}
	return img
}
