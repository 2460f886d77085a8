// set_finalizer.go ties the lifetime of libav objects to the Go garbage collector.

package astiav

import (
	"context"
	"runtime"

	"github.com/xaionaro-go/avscale/logger"
)

// SetFinalizerFree makes the garbage collector Free the libav object
// if nobody did it explicitly.
func SetFinalizerFree[T interface{ Free() }](
	ctx context.Context,
	freer T,
) {
	runtime.SetFinalizer(freer, func(freer T) {
		logger.Debugf(ctx, "%T was not freed explicitly, freeing it in the finalizer", freer)
		freer.Free()
	})
}

// FreeNow frees an object previously passed to SetFinalizerFree and
// detaches its finalizer.
func FreeNow[T interface{ Free() }](
	ctx context.Context,
	freer T,
) {
	logger.Tracef(ctx, "freeing %T", freer)
	runtime.SetFinalizer(freer, nil)
	freer.Free()
}
