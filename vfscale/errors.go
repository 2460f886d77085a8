package vfscale

import (
	"fmt"

	"github.com/xaionaro-go/avscale/pixfmt"
	"github.com/xaionaro-go/avscale/types"
)

type ErrInvalidConfig struct {
	Field string
	Err   error
}

func (e ErrInvalidConfig) Error() string {
	return fmt.Sprintf("invalid value of '%s': %v", e.Field, e.Err)
}

func (e ErrInvalidConfig) Unwrap() error {
	return e.Err
}

type ErrScalerInit struct {
	Src types.ImageParams
	Dst types.ImageParams
	Err error
}

func (e ErrScalerInit) Error() string {
	return fmt.Sprintf("unable to initialize the scaler for %s -> %s: %v", e.Src, e.Dst, e.Err)
}

func (e ErrScalerInit) Unwrap() error {
	return e.Err
}

type ErrFormatRefused struct {
	PixelFormat pixfmt.PixelFormat
}

func (e ErrFormatRefused) Error() string {
	return fmt.Sprintf("the next stage refused pixel format %s", e.PixelFormat)
}

type ErrNotConfigured struct{}

func (ErrNotConfigured) Error() string {
	return "the filter is not configured yet"
}

type ErrNotImplemented struct {
	Request Request
}

func (e ErrNotImplemented) Error() string {
	return fmt.Sprintf("request %s is not implemented", e.Request)
}

type ErrClosed struct{}

func (ErrClosed) Error() string {
	return "the filter is closed"
}

type ErrNilFrame struct{}

func (ErrNilFrame) Error() string {
	return "the input frame is nil"
}
