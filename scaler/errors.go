package scaler

import (
	"fmt"

	"github.com/xaionaro-go/avscale/pixfmt"
	"github.com/xaionaro-go/avscale/types"
)

type ErrClosed struct{}

func (ErrClosed) Error() string {
	return "scaler is closed"
}

type ErrNotInitialized struct{}

func (ErrNotInitialized) Error() string {
	return "scaler is not initialized"
}

type ErrUnsupportedFormat struct {
	PixelFormat pixfmt.PixelFormat
	IsOutput    bool
}

func (e ErrUnsupportedFormat) Error() string {
	direction := "input"
	if e.IsOutput {
		direction = "output"
	}
	return fmt.Sprintf("pixel format %s is not supported as %s", e.PixelFormat, direction)
}

type ErrUnknownEqualizerProperty struct {
	Property EqualizerProperty
}

func (e ErrUnknownEqualizerProperty) Error() string {
	return fmt.Sprintf("unknown equalizer property '%s'", e.Property)
}

type ErrEqualizerValueOutOfRange struct {
	Property EqualizerProperty
	Value    int
}

func (e ErrEqualizerValueOutOfRange) Error() string {
	return fmt.Sprintf("value %d of equalizer property '%s' is out of range [%d, %d]", e.Value, e.Property, EqualizerMin, EqualizerMax)
}

type ErrInvalidSize struct {
	Size     types.Resolution
	IsOutput bool
}

func (e ErrInvalidSize) Error() string {
	direction := "input"
	if e.IsOutput {
		direction = "output"
	}
	return fmt.Sprintf("invalid %s size %s", direction, e.Size)
}
