// pool.go implements a pool for reusing astiav.Frame objects.

package frame

import (
	"github.com/asticode/go-astiav"
	"github.com/xaionaro-go/avscale/pool"
)

// Pool recycles the frames of NewVideo; Put unreferences the buffers.
var Pool = pool.NewPool(
	astiav.AllocFrame,
	func(p *astiav.Frame) { p.Unref() },
	func(p *astiav.Frame) { p.Free() },
)
