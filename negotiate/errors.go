package negotiate

import (
	"fmt"

	"github.com/xaionaro-go/avscale/pixfmt"
)

type ErrNoSupportedFormat struct {
	Input pixfmt.PixelFormat
}

func (e ErrNoSupportedFormat) Error() string {
	return fmt.Sprintf("no supported output pixel format found for input %s", e.Input)
}
