package vfscale

import (
	"context"
	"fmt"

	"github.com/xaionaro-go/avscale/logger"
	"github.com/xaionaro-go/avscale/scaler"
)

type RequestType int

const (
	RequestTypeUndefined = RequestType(iota)
	RequestTypeGetEqualizer
	RequestTypeSetEqualizer
)

func (t RequestType) String() string {
	switch t {
	case RequestTypeUndefined:
		return "<undefined>"
	case RequestTypeGetEqualizer:
		return "get_equalizer"
	case RequestTypeSetEqualizer:
		return "set_equalizer"
	default:
		return fmt.Sprintf("unknown_request_%d", int(t))
	}
}

// Request is a runtime control message sent to the filter.
type Request struct {
	Type     RequestType
	Property scaler.EqualizerProperty

	// Value is only used by RequestTypeSetEqualizer.
	Value int
}

func (r Request) String() string {
	switch r.Type {
	case RequestTypeGetEqualizer:
		return fmt.Sprintf("%s(%s)", r.Type, r.Property)
	case RequestTypeSetEqualizer:
		return fmt.Sprintf("%s(%s=%d)", r.Type, r.Property, r.Value)
	default:
		return r.Type.String()
	}
}

type Response struct {
	Value int
}

// Control handles runtime requests; equalizer requests are served by the
// engine if it supports them.
func (f *Filter) Control(
	ctx context.Context,
	req Request,
) (_ret Response, _err error) {
	logger.Tracef(ctx, "Control(ctx, %s)", req)
	defer func() { logger.Tracef(ctx, "/Control(ctx, %s): %v %v", req, _ret, _err) }()

	if f.isClosed(ctx) {
		return Response{}, ErrClosed{}
	}

	equalizer, ok := f.engine.(scaler.Equalizer)
	if !ok {
		return Response{}, ErrNotImplemented{Request: req}
	}

	switch req.Type {
	case RequestTypeGetEqualizer:
		v, err := equalizer.GetEqualizer(ctx, req.Property)
		if err != nil {
			return Response{}, fmt.Errorf("unable to get the equalizer value: %w", err)
		}
		return Response{Value: v}, nil
	case RequestTypeSetEqualizer:
		if err := equalizer.SetEqualizer(ctx, req.Property, req.Value); err != nil {
			return Response{}, fmt.Errorf("unable to set the equalizer value: %w", err)
		}
		return Response{Value: req.Value}, nil
	default:
		return Response{}, ErrNotImplemented{Request: req}
	}
}
