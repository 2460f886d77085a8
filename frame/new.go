package frame

import (
	"context"
	"fmt"

	"github.com/asticode/go-astiav"
	"github.com/xaionaro-go/avscale/logger"
	"github.com/xaionaro-go/avscale/types"
)

// NewVideo returns a frame from Pool with buffers allocated for params.
// The content of the buffers is undefined unless fillBlack is set.
func NewVideo(
	ctx context.Context,
	params types.ImageParams,
	fillBlack bool,
) (_ret *astiav.Frame, _err error) {
	logger.Tracef(ctx, "NewVideo(ctx, %s, %v)", params, fillBlack)
	defer func() { logger.Tracef(ctx, "/NewVideo(ctx, %s, %v): %v, %v", params, fillBlack, _ret, _err) }()

	if !params.PixelFormat.IsValid() || !params.Size.IsPositive() {
		return nil, fmt.Errorf("invalid image parameters %s", params)
	}

	f := Pool.Get()
	defer func() {
		if _err != nil {
			Pool.Put(f)
		}
	}()

	SetImageParams(f, params)
	if err := f.AllocBuffer(0); err != nil {
		return nil, fmt.Errorf("unable to allocate frame buffer: %w", err)
	}
	if fillBlack {
		if err := f.ImageFillBlack(); err != nil {
			return nil, fmt.Errorf("unable to fill frame with black color: %w", err)
		}
	}
	return f, nil
}
