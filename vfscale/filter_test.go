package vfscale

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/asticode/go-astiav"
	"github.com/stretchr/testify/require"
	"github.com/xaionaro-go/avscale/geometry"
	"github.com/xaionaro-go/avscale/negotiate"
	"github.com/xaionaro-go/avscale/pixfmt"
	"github.com/xaionaro-go/avscale/scaler"
	"github.com/xaionaro-go/avscale/types"
)

const (
	sw = pixfmt.CapsSupported
	hw = pixfmt.CapsSupported | pixfmt.CapsSupportedByHW
)

type anyFormat struct{}

func (anyFormat) IsSupportedInput(f pixfmt.PixelFormat) bool  { return !f.IsHWAccel() }
func (anyFormat) IsSupportedOutput(f pixfmt.PixelFormat) bool { return !f.IsHWAccel() }

type reinitCall struct {
	Src, Dst types.ImageParams
	Params   scaler.Params
}

type dummyEngine struct {
	locker    sync.Mutex
	reinitErr error
	scaleErr  error
	reinits   []reinitCall
	scaled    int
	closed    bool
}

var _ scaler.Engine = (*dummyEngine)(nil)

func (e *dummyEngine) String() string                      { return "dummyEngine" }
func (e *dummyEngine) FormatSupport() scaler.FormatSupport { return anyFormat{} }

func (e *dummyEngine) Reinit(_ context.Context, src, dst types.ImageParams, params scaler.Params) error {
	e.locker.Lock()
	defer e.locker.Unlock()
	if e.reinitErr != nil {
		return e.reinitErr
	}
	e.reinits = append(e.reinits, reinitCall{Src: src, Dst: dst, Params: params})
	return nil
}

func (e *dummyEngine) ScaleFrame(_ context.Context, src, dst *astiav.Frame) error {
	e.locker.Lock()
	defer e.locker.Unlock()
	if e.scaleErr != nil {
		return e.scaleErr
	}
	e.scaled++
	return nil
}

func (e *dummyEngine) Close(context.Context) error {
	e.locker.Lock()
	defer e.locker.Unlock()
	e.closed = true
	return nil
}

type dummyAllocator struct {
	locker    sync.Mutex
	allocated []types.ImageParams
	released  int
}

func (a *dummyAllocator) AllocFrame(_ context.Context, params types.ImageParams) (*astiav.Frame, error) {
	a.locker.Lock()
	defer a.locker.Unlock()
	a.allocated = append(a.allocated, params)
	return astiav.AllocFrame(), nil
}

func (a *dummyAllocator) ReleaseFrame(f *astiav.Frame) {
	a.locker.Lock()
	defer a.locker.Unlock()
	a.released++
	f.Free()
}

func acceptOnly(caps map[pixfmt.PixelFormat]pixfmt.Caps) Downstream {
	return negotiate.DownstreamFunc(func(_ context.Context, f pixfmt.PixelFormat) pixfmt.Caps {
		return caps[f]
	})
}

func hd(f pixfmt.PixelFormat) types.ImageParams {
	return types.ImageParams{
		PixelFormat: f,
		Size:        types.Resolution{Width: 1920, Height: 1080},
		DisplaySize: types.Resolution{Width: 1920, Height: 1080},
	}
}

func TestNewValidatesConfig(t *testing.T) {
	t.Parallel()

	tooBig := 101.0
	tests := []struct {
		name   string
		modify func(*Config)
		field  string
	}{
		{name: "dimension out of range", modify: func(c *Config) { c.Width = -5 }, field: "w:h"},
		{name: "both derived", modify: func(c *Config) { c.Width, c.Height = -2, -3 }, field: "w:h"},
		{name: "param", modify: func(c *Config) { c.Param = &tooBig }, field: "param"},
		{name: "param2", modify: func(c *Config) { c.Param2 = &tooBig }, field: "param2"},
		{name: "chroma drop", modify: func(c *Config) { c.ChromaDrop = 4 }, field: "chr_drop"},
		{name: "no upscale", modify: func(c *Config) { c.NoUpscale = 3 }, field: "noup"},
		{name: "algorithm", modify: func(c *Config) { c.Algorithm = 100 }, field: "algorithm"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := DefaultConfig()
			tt.modify(&cfg)
			_, err := New(context.Background(), cfg, acceptOnly(nil), &dummyEngine{}, &dummyAllocator{})
			var target ErrInvalidConfig
			require.True(t, errors.As(err, &target), "%v", err)
			require.Equal(t, tt.field, target.Field)
		})
	}

	_, err := New(context.Background(), DefaultConfig(), acceptOnly(nil), &dummyEngine{}, nil)
	require.NoError(t, err)
}

func TestReconfigure(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("passthrough format, scaled size", func(t *testing.T) {
		t.Parallel()

		engine := &dummyEngine{}
		cfg := DefaultConfig()
		cfg.Width, cfg.Height = 1280, geometry.RawDeriveDisplayAspect
		cfg.AccurateRounding = true
		f, err := New(ctx, cfg, acceptOnly(map[pixfmt.PixelFormat]pixfmt.Caps{pixfmt.YUV420P: hw}), engine, nil)
		require.NoError(t, err)

		in := hd(pixfmt.YUV420P)
		in.ColorSpace = types.ColorSpaceBT709
		out, err := f.Reconfigure(ctx, in)
		require.NoError(t, err)
		require.Equal(t, types.ImageParams{
			PixelFormat: pixfmt.YUV420P,
			Size:        types.Resolution{Width: 1280, Height: 720},
			DisplaySize: types.Resolution{Width: 1280, Height: 720},
			ColorSpace:  types.ColorSpaceBT709,
			ColorLevels: types.ColorLevelsTV,
		}, out)

		require.Len(t, engine.reinits, 1)
		require.Equal(t, out, engine.reinits[0].Dst)
		require.Equal(t, types.ColorLevelsTV, engine.reinits[0].Src.ColorLevels)
		require.Equal(t, scaler.ContextFlags(0x4|0x40000), engine.reinits[0].Params.ContextFlags())

		cur, ok := f.CurrentConfig(ctx)
		require.True(t, ok)
		require.Equal(t, Configuration{Input: in, Output: out, Caps: hw}, cur)
	})

	t.Run("conversion to RGB resets colour", func(t *testing.T) {
		t.Parallel()

		f, err := New(ctx, DefaultConfig(), acceptOnly(map[pixfmt.PixelFormat]pixfmt.Caps{pixfmt.RGBA: sw}), &dummyEngine{}, nil)
		require.NoError(t, err)

		in := hd(pixfmt.NV12)
		in.ColorSpace = types.ColorSpaceBT709
		in.ColorLevels = types.ColorLevelsTV
		out, err := f.Reconfigure(ctx, in)
		require.NoError(t, err)
		require.Equal(t, pixfmt.RGBA, out.PixelFormat)
		require.Equal(t, in.Size, out.Size)
		require.Equal(t, types.ColorSpaceRGB, out.ColorSpace)
		require.Equal(t, types.ColorLevelsPC, out.ColorLevels)

		cur, ok := f.CurrentConfig(ctx)
		require.True(t, ok)
		require.Equal(t, sw, cur.Caps)
	})

	t.Run("nothing accepted", func(t *testing.T) {
		t.Parallel()

		f, err := New(ctx, DefaultConfig(), acceptOnly(nil), &dummyEngine{}, nil)
		require.NoError(t, err)

		_, err = f.Reconfigure(ctx, hd(pixfmt.YUV420P))
		var target negotiate.ErrNoSupportedFormat
		require.True(t, errors.As(err, &target))
		require.Equal(t, pixfmt.YUV420P, target.Input)

		_, ok := f.CurrentConfig(ctx)
		require.False(t, ok)
	})
}

func TestReconfigureFailureKeepsPreviousConfig(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	engine := &dummyEngine{}
	f, err := New(ctx, DefaultConfig(), acceptOnly(map[pixfmt.PixelFormat]pixfmt.Caps{pixfmt.YUV420P: hw}), engine, nil)
	require.NoError(t, err)

	out, err := f.Reconfigure(ctx, hd(pixfmt.YUV420P))
	require.NoError(t, err)
	before, ok := f.CurrentConfig(ctx)
	require.True(t, ok)

	engine.reinitErr = fmt.Errorf("no memory")
	small := hd(pixfmt.YUV420P)
	small.Size = types.Resolution{Width: 640, Height: 360}
	_, err = f.Reconfigure(ctx, small)
	var initErr ErrScalerInit
	require.True(t, errors.As(err, &initErr))
	require.Equal(t, small.Size, initErr.Src.Size)
	require.ErrorContains(t, err, "no memory")

	engine.reinitErr = nil
	broken := hd(pixfmt.YUV420P)
	broken.DisplaySize = types.Resolution{}
	_, err = f.Reconfigure(ctx, broken)
	var geomErr geometry.ErrInvalidInputGeometry
	require.True(t, errors.As(err, &geomErr))

	after, ok := f.CurrentConfig(ctx)
	require.True(t, ok)
	require.Equal(t, before, after)
	require.Equal(t, out, after.Output)

	stats := f.Stats()
	require.Equal(t, uint64(1), stats.Reconfigurations)
	require.Equal(t, uint64(2), stats.ReconfigurationsFailed)
}

func TestReconfigureZeroDerivedAxis(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 1, geometry.RawDeriveCodedAspect
	f, err := New(ctx, cfg, acceptOnly(map[pixfmt.PixelFormat]pixfmt.Caps{pixfmt.RGBA: sw}), scaler.NewBild(), nil)
	require.NoError(t, err)

	_, err = f.Reconfigure(ctx, hd(pixfmt.YUV420P))
	require.ErrorAs(t, err, &ErrScalerInit{})
	var sizeErr scaler.ErrInvalidSize
	require.True(t, errors.As(err, &sizeErr))
	require.True(t, sizeErr.IsOutput)
	require.Equal(t, types.Resolution{Width: 1, Height: 0}, sizeErr.Size)

	_, ok := f.CurrentConfig(ctx)
	require.False(t, ok)
}

func TestQueryFormat(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f, err := New(ctx, DefaultConfig(), acceptOnly(map[pixfmt.PixelFormat]pixfmt.Caps{
		pixfmt.YUV420P: hw,
		pixfmt.VAAPI:   hw,
	}), &dummyEngine{}, nil)
	require.NoError(t, err)

	require.Equal(t, hw, f.QueryFormat(ctx, pixfmt.YUV420P))
	require.Equal(t, sw, f.QueryFormat(ctx, pixfmt.NV12))
	require.Equal(t, pixfmt.CapsUnsupported, f.QueryFormat(ctx, pixfmt.VAAPI))
}

func TestTransformFrame(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	engine := &dummyEngine{}
	alloc := &dummyAllocator{}
	f, err := New(ctx, DefaultConfig(), acceptOnly(map[pixfmt.PixelFormat]pixfmt.Caps{pixfmt.YUV420P: hw}), engine, alloc)
	require.NoError(t, err)

	in := astiav.AllocFrame()
	defer in.Free()
	in.SetPts(1000)
	in.SetPktDts(990)

	_, err = f.TransformFrame(ctx, in)
	require.ErrorAs(t, err, &ErrNotConfigured{})
	_, err = f.TransformFrame(ctx, nil)
	require.ErrorAs(t, err, &ErrNilFrame{})

	outParams, err := f.Reconfigure(ctx, hd(pixfmt.YUV420P))
	require.NoError(t, err)

	out, err := f.TransformFrame(ctx, in)
	require.NoError(t, err)
	defer out.Free()
	require.Equal(t, int64(1000), out.Pts())
	require.Equal(t, int64(990), out.PktDts())
	require.Equal(t, []types.ImageParams{outParams}, alloc.allocated)
	require.Equal(t, 1, engine.scaled)

	engine.scaleErr = fmt.Errorf("corrupted")
	_, err = f.TransformFrame(ctx, in)
	require.ErrorContains(t, err, "corrupted")
	require.Equal(t, 1, alloc.released)

	stats := f.Stats()
	require.Equal(t, uint64(3), stats.Frames.Received.Count)
	require.Equal(t, uint64(1), stats.Frames.Processed.Count)
	require.Equal(t, uint64(2), stats.Frames.Failed.Count)

	require.NoError(t, f.Close(ctx))
	require.True(t, engine.closed)
	_, err = f.TransformFrame(ctx, in)
	require.ErrorAs(t, err, &ErrClosed{})
	_, err = f.Reconfigure(ctx, hd(pixfmt.YUV420P))
	require.ErrorAs(t, err, &ErrClosed{})
	require.NoError(t, f.Close(ctx))
}

func TestControl(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	f, err := New(ctx, DefaultConfig(), acceptOnly(nil), &dummyEngine{}, nil)
	require.NoError(t, err)
	_, err = f.Control(ctx, Request{Type: RequestTypeGetEqualizer, Property: scaler.EqualizerBrightness})
	require.ErrorAs(t, err, &ErrNotImplemented{})

	software := scaler.NewSoftware(ctx)
	defer software.Close(ctx)
	f, err = New(ctx, DefaultConfig(), acceptOnly(nil), software, nil)
	require.NoError(t, err)
	_, err = f.Control(ctx, Request{Type: RequestTypeSetEqualizer, Property: scaler.EqualizerBrightness, Value: 10})
	require.ErrorAs(t, err, &ErrNotImplemented{})

	f, err = New(ctx, DefaultConfig(), acceptOnly(map[pixfmt.PixelFormat]pixfmt.Caps{pixfmt.RGBA: sw}), scaler.NewBild(), nil)
	require.NoError(t, err)

	resp, err := f.Control(ctx, Request{Type: RequestTypeSetEqualizer, Property: scaler.EqualizerContrast, Value: -20})
	require.NoError(t, err)
	require.Equal(t, -20, resp.Value)

	resp, err = f.Control(ctx, Request{Type: RequestTypeGetEqualizer, Property: scaler.EqualizerContrast})
	require.NoError(t, err)
	require.Equal(t, -20, resp.Value)

	_, err = f.Control(ctx, Request{Type: RequestTypeSetEqualizer, Property: "gamma", Value: 1})
	var unknown scaler.ErrUnknownEqualizerProperty
	require.True(t, errors.As(err, &unknown))

	_, err = f.Control(ctx, Request{Type: RequestTypeUndefined})
	require.ErrorAs(t, err, &ErrNotImplemented{})

	require.NoError(t, f.Close(ctx))
	_, err = f.Control(ctx, Request{Type: RequestTypeGetEqualizer, Property: scaler.EqualizerContrast})
	require.ErrorAs(t, err, &ErrClosed{})
}

func TestConcurrentUse(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 640, geometry.RawDeriveCodedAspect
	f, err := New(ctx, cfg, acceptOnly(map[pixfmt.PixelFormat]pixfmt.Caps{pixfmt.YUV420P: hw, pixfmt.RGBA: sw}), &dummyEngine{}, nil)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				in := hd(pixfmt.YUV420P)
				if (i+j)%2 == 0 {
					in.PixelFormat = pixfmt.NV12
				}
				_, _ = f.Reconfigure(ctx, in)
				_ = f.QueryFormat(ctx, in.PixelFormat)
				_, _ = f.CurrentConfig(ctx)
			}
		}(i)
	}
	wg.Wait()

	cur, ok := f.CurrentConfig(ctx)
	require.True(t, ok)
	require.Equal(t, types.Resolution{Width: 640, Height: 360}, cur.Output.Size)
	require.Equal(t, uint64(400), f.Stats().Reconfigurations)
}
