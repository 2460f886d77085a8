package frame

import (
	"context"

	"github.com/asticode/go-astiav"
	"github.com/xaionaro-go/avscale/types"
)

// PoolAllocator allocates output frames from Pool.
type PoolAllocator struct {
	FillBlack bool
}

func (a PoolAllocator) AllocFrame(
	ctx context.Context,
	params types.ImageParams,
) (*astiav.Frame, error) {
	return NewVideo(ctx, params, a.FillBlack)
}

// ReleaseFrame returns a frame obtained from AllocFrame back to Pool.
func (PoolAllocator) ReleaseFrame(f *astiav.Frame) {
	Pool.Put(f)
}
