package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/xaionaro-go/avscale/logger"
	"github.com/xaionaro-go/avscale/pixfmt"
)

// staticDownstream pretends to be the next stage of the chain.
type staticDownstream struct {
	caps map[pixfmt.PixelFormat]pixfmt.Caps
}

// parseAccept parses "yuv420p:hw,rgba" into a downstream: formats with
// the ":hw" suffix are accepted as is, the rest only with a conversion.
// An empty list accepts everything in software.
func parseAccept(s string) (*staticDownstream, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return &staticDownstream{}, nil
	}

	d := &staticDownstream{caps: map[pixfmt.PixelFormat]pixfmt.Caps{}}
	for _, item := range strings.Split(s, ",") {
		name, suffix, hasSuffix := strings.Cut(strings.TrimSpace(item), ":")
		f, err := pixfmt.Parse(name)
		if err != nil {
			return nil, fmt.Errorf("unable to parse '%s': %w", item, err)
		}
		caps := pixfmt.CapsSupported
		if hasSuffix {
			if suffix != "hw" {
				return nil, fmt.Errorf("unknown suffix '%s' of '%s', expected 'hw'", suffix, item)
			}
			caps |= pixfmt.CapsSupportedByHW
		}
		d.caps[f] = caps
	}
	return d, nil
}

func (d *staticDownstream) QueryFormat(
	ctx context.Context,
	f pixfmt.PixelFormat,
) pixfmt.Caps {
	if d.caps == nil {
		return pixfmt.CapsSupported
	}
	caps := d.caps[f]
	logger.Tracef(ctx, "downstream: %s -> %s", f, caps)
	return caps
}
