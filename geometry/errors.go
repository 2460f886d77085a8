package geometry

import (
	"fmt"

	"github.com/xaionaro-go/avscale/types"
)

type ErrInvalidDimensionSpec struct {
	Spec Spec
	Err  error
}

func (e ErrInvalidDimensionSpec) Error() string {
	return fmt.Sprintf("invalid dimension specification %s: %v", e.Spec, e.Err)
}

func (e ErrInvalidDimensionSpec) Unwrap() error {
	return e.Err
}

type ErrInvalidInputGeometry struct {
	Size        types.Resolution
	DisplaySize types.Resolution
}

func (e ErrInvalidInputGeometry) Error() string {
	return fmt.Sprintf("invalid input geometry: size %s, display size %s", e.Size, e.DisplaySize)
}
