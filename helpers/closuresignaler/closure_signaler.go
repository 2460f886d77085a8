// closure_signaler.go provides a close-once flag for engines.

// Package closuresignaler marks a resource as closed exactly once.
package closuresignaler

import (
	"context"

	"github.com/xaionaro-go/avscale/logger"
	"go.uber.org/atomic"
)

// ClosureSignaler is safe for concurrent use; the zero value is open.
type ClosureSignaler struct {
	closed atomic.Bool
}

func New() *ClosureSignaler {
	return &ClosureSignaler{}
}

// Close marks the resource as closed and reports if it was this call
// that closed it.
func (c *ClosureSignaler) Close(ctx context.Context) bool {
	if !c.closed.CompareAndSwap(false, true) {
		logger.Tracef(ctx, "already closed")
		return false
	}
	logger.Tracef(ctx, "closed")
	return true
}

func (c *ClosureSignaler) IsClosed() bool {
	return c.closed.Load()
}
