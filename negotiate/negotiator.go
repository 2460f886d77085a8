// negotiator.go implements the search for the best output pixel format.

// Package negotiate picks the pixel format a scaling stage should output,
// given what the scaler can produce and what the next stage accepts.
package negotiate

import (
	"context"
	"fmt"

	"github.com/xaionaro-go/avscale/logger"
	"github.com/xaionaro-go/avscale/pixfmt"
)

// BackendSupport tells which formats the scaling backend can read and write
// at all, regardless of the next stage.
type BackendSupport interface {
	IsSupportedInput(pixfmt.PixelFormat) bool
	IsSupportedOutput(pixfmt.PixelFormat) bool
}

// Downstream is the acceptance predicate of the next stage.
type Downstream interface {
	QueryFormat(ctx context.Context, f pixfmt.PixelFormat) pixfmt.Caps
}

type DownstreamFunc func(ctx context.Context, f pixfmt.PixelFormat) pixfmt.Caps

var _ Downstream = DownstreamFunc(nil)

func (fn DownstreamFunc) QueryFormat(ctx context.Context, f pixfmt.PixelFormat) pixfmt.Caps {
	return fn(ctx, f)
}

type Negotiator struct {
	Backend    BackendSupport
	Downstream Downstream

	// Conversions and Outputs override the default tables when not nil.
	Conversions []Conversion
	Outputs     []pixfmt.PixelFormat
}

func New(
	backend BackendSupport,
	downstream Downstream,
) *Negotiator {
	return &Negotiator{
		Backend:    backend,
		Downstream: downstream,
	}
}

func (n *Negotiator) String() string {
	return fmt.Sprintf("Negotiator(%T -> %T)", n.Backend, n.Downstream)
}

// Result is the outcome of a negotiation.
type Result struct {
	PixelFormat pixfmt.PixelFormat
	Caps        pixfmt.Caps
}

func (r Result) String() string {
	return fmt.Sprintf("%s (%s)", r.PixelFormat, r.Caps)
}

// CheckOutput is the single place deciding whether f is a usable output:
// the backend must be able to produce it and then the next stage decides.
func (n *Negotiator) CheckOutput(
	ctx context.Context,
	f pixfmt.PixelFormat,
) pixfmt.Caps {
	if !f.IsValid() || f.IsHWAccel() {
		return pixfmt.CapsUnsupported
	}
	if !n.Backend.IsSupportedOutput(f) {
		return pixfmt.CapsUnsupported
	}
	return n.Downstream.QueryFormat(ctx, f)
}

func (n *Negotiator) conversionsFor(in pixfmt.PixelFormat) []pixfmt.PixelFormat {
	table := n.Conversions
	if table == nil {
		table = preferredConversions
	}
	var result []pixfmt.PixelFormat
	for _, c := range table {
		if c.From == in {
			result = append(result, c.To)
		}
	}
	return result
}

func (n *Negotiator) outputs() []pixfmt.PixelFormat {
	if n.Outputs == nil {
		return preferredOutputs
	}
	return n.Outputs
}

// scan walks the candidates keeping the first software-supported one in
// *best; it stops and reports true on the first format the next stage
// takes without conversion.
func (n *Negotiator) scan(
	ctx context.Context,
	candidates []pixfmt.PixelFormat,
	best *pixfmt.PixelFormat,
) bool {
	for _, candidate := range candidates {
		caps := n.CheckOutput(ctx, candidate)
		logger.Tracef(ctx, "query(%s) -> %s", candidate, caps)
		if caps.IsSupportedByHW() {
			*best = candidate
			return true
		}
		if caps&pixfmt.CapsSupported != 0 && *best == pixfmt.None {
			*best = candidate
		}
	}
	return false
}

// BestOutputFormat returns the best format to convert `in` into. The
// input itself is tried first, then the preferred conversions of `in`,
// then the generic list; the first format with no conversion needed wins
// immediately, otherwise the first format supported at all. Only when
// nothing matched is the whole universe scanned.
func (n *Negotiator) BestOutputFormat(
	ctx context.Context,
	in pixfmt.PixelFormat,
) (_ret pixfmt.PixelFormat, _ok bool) {
	logger.Tracef(ctx, "BestOutputFormat(ctx, %s)", in)
	defer func() { logger.Tracef(ctx, "/BestOutputFormat(ctx, %s): %s %v", in, _ret, _ok) }()

	best := pixfmt.None
	for _, tier := range [][]pixfmt.PixelFormat{
		{in},
		n.conversionsFor(in),
		n.outputs(),
	} {
		if n.scan(ctx, tier, &best) {
			return best, true
		}
	}
	if best != pixfmt.None {
		return best, true
	}

	n.scan(ctx, pixfmt.All(), &best)
	return best, best != pixfmt.None
}

// QueryFormat answers the previous stage whether this stage can take f as
// its input. CapsSupportedByHW is only reported when f passes through
// unconverted.
func (n *Negotiator) QueryFormat(
	ctx context.Context,
	f pixfmt.PixelFormat,
) (_ret pixfmt.Caps) {
	logger.Tracef(ctx, "QueryFormat(ctx, %s)", f)
	defer func() { logger.Tracef(ctx, "/QueryFormat(ctx, %s): %s", f, _ret) }()

	if !f.IsValid() || f.IsHWAccel() {
		return pixfmt.CapsUnsupported
	}
	if !n.Backend.IsSupportedInput(f) {
		return pixfmt.CapsUnsupported
	}
	best, ok := n.BestOutputFormat(ctx, f)
	if !ok {
		return pixfmt.CapsUnsupported
	}
	caps := n.Downstream.QueryFormat(ctx, best)
	if !caps.IsSupported() {
		return pixfmt.CapsUnsupported
	}
	if f != best {
		caps &^= pixfmt.CapsSupportedByHW
	}
	return caps
}

// Negotiate picks the output format for `in` and confirms it with the
// next stage.
func (n *Negotiator) Negotiate(
	ctx context.Context,
	in pixfmt.PixelFormat,
) (_ret Result, _err error) {
	logger.Tracef(ctx, "Negotiate(ctx, %s)", in)
	defer func() { logger.Tracef(ctx, "/Negotiate(ctx, %s): %v %v", in, _ret, _err) }()

	best, ok := n.BestOutputFormat(ctx, in)
	if !ok {
		return Result{}, ErrNoSupportedFormat{Input: in}
	}
	return Result{
		PixelFormat: best,
		Caps:        n.Downstream.QueryFormat(ctx, best),
	}, nil
}
