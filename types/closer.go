// closer.go defines the Closer interface.

package types

import (
	"context"
)

// Closer is implemented by everything holding libav resources.
type Closer interface {
	Close(context.Context) error
}
