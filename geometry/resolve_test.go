package geometry

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xaionaro-go/avscale/types"
)

func res(w, h int) types.Resolution {
	return types.Resolution{Width: w, Height: h}
}

func TestResolve(t *testing.T) {
	t.Parallel()

	ntsc := Input{Size: res(720, 480), DisplaySize: res(720, 540)}
	square := Input{Size: res(1920, 1080), DisplaySize: res(1920, 1080)}

	tests := []struct {
		name      string
		in        Input
		spec      Spec
		noUpscale NoUpscale
		want      Resolved
	}{
		{
			name: "no scaling",
			in:   ntsc,
			spec: Spec{Width: -1, Height: -1},
			want: Resolved{Size: res(720, 480), DisplaySize: res(720, 540)},
		},
		{
			name: "display size",
			in:   ntsc,
			spec: Spec{Width: 0, Height: 0},
			want: Resolved{Size: res(720, 540), DisplaySize: res(720, 540)},
		},
		{
			name: "absolute width, height from display aspect",
			in:   ntsc,
			spec: Spec{Width: 1280, Height: RawDeriveDisplayAspect},
			want: Resolved{Size: res(1280, 960), DisplaySize: res(1280, 960)},
		},
		{
			name: "absolute width, height from coded aspect",
			in:   ntsc,
			spec: Spec{Width: 1280, Height: RawDeriveCodedAspect},
			want: Resolved{Size: res(1280, 853), DisplaySize: res(1280, 960)},
		},
		{
			name: "absolute height, width from display aspect",
			in:   ntsc,
			spec: Spec{Width: RawDeriveDisplayAspect, Height: 360},
			want: Resolved{Size: res(480, 360), DisplaySize: res(480, 360)},
		},
		{
			name: "absolute height, width from coded aspect",
			in:   ntsc,
			spec: Spec{Width: RawDeriveCodedAspect, Height: 360},
			want: Resolved{Size: res(540, 360), DisplaySize: res(540, 405)},
		},
		{
			name: "source size rounded to 16",
			in:   Input{Size: res(717, 481), DisplaySize: res(717, 481)},
			spec: Spec{Width: -9, Height: -9},
			want: Resolved{Size: res(720, 480), DisplaySize: res(720, 483)},
		},
		{
			name: "display size rounded to 16",
			in:   ntsc,
			spec: Spec{Width: -8, Height: -8},
			want: Resolved{Size: res(720, 544), DisplaySize: res(725, 544)},
		},
		{
			name: "derived and rounded",
			in:   square,
			spec: Spec{Width: 1000, Height: -11},
			want: Resolved{Size: res(1000, 560), DisplaySize: res(1000, 562)},
		},
		{
			name: "rounding happens after derivation",
			in:   square,
			spec: Spec{Width: -11, Height: 100},
			want: Resolved{Size: res(176, 100), DisplaySize: res(177, 100)},
		},
		{
			name:      "noup 1 reverts when one axis grows",
			in:        square,
			spec:      Spec{Width: 2560, Height: 720},
			noUpscale: NoUpscaleAnyAxis,
			want:      Resolved{Size: res(1920, 1080), DisplaySize: res(1920, 1080)},
		},
		{
			name:      "noup 2 keeps when only one axis grows",
			in:        square,
			spec:      Spec{Width: 2560, Height: 720},
			noUpscale: NoUpscaleBothAxes,
			want:      Resolved{Size: res(2560, 720), DisplaySize: res(2560, 1440)},
		},
		{
			name:      "noup 2 reverts when both axes grow",
			in:        square,
			spec:      Spec{Width: 3840, Height: RawDeriveCodedAspect},
			noUpscale: NoUpscaleBothAxes,
			want:      Resolved{Size: res(1920, 1080), DisplaySize: res(1920, 1080)},
		},
		{
			name:      "downscaling is not affected by noup",
			in:        square,
			spec:      Spec{Width: 1280, Height: 720},
			noUpscale: NoUpscaleAnyAxis,
			want:      Resolved{Size: res(1280, 720), DisplaySize: res(1280, 720)},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Resolve(context.Background(), tt.in, tt.spec, tt.noUpscale)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestResolveErrors(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	in := Input{Size: res(717, 481), DisplaySize: res(717, 481)}

	for _, spec := range []Spec{{-4, -4}, {-11, -11}, {-2, -3}, {-12, 100}} {
		got, err := Resolve(ctx, in, spec, NoUpscaleDisabled)
		var target ErrInvalidDimensionSpec
		require.True(t, errors.As(err, &target), "%s: %v", spec, err)
		require.Equal(t, Resolved{}, got)
	}

	_, err := Resolve(ctx, Input{Size: res(0, 480), DisplaySize: res(640, 480)}, Spec{-1, -1}, NoUpscaleDisabled)
	var target ErrInvalidInputGeometry
	require.True(t, errors.As(err, &target))

	_, err = Resolve(ctx, Input{Size: res(640, 480), DisplaySize: res(640, 0)}, Spec{-1, -1}, NoUpscaleDisabled)
	require.True(t, errors.As(err, &target))
}

func TestResolveDerivedAxisMayBeZero(t *testing.T) {
	t.Parallel()

	in := Input{Size: res(1920, 1080), DisplaySize: res(1920, 1080)}
	got, err := Resolve(context.Background(), in, Spec{Width: 1, Height: RawDeriveCodedAspect}, NoUpscaleDisabled)
	require.NoError(t, err)
	require.Equal(t, res(1, 0), got.Size)
	require.False(t, got.Size.IsPositive())
}

func TestResolveAbsoluteIsIdempotent(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		in := Input{
			Size:        res(1+rng.Intn(4000), 1+rng.Intn(4000)),
			DisplaySize: res(1+rng.Intn(4000), 1+rng.Intn(4000)),
		}
		spec := Spec{Width: 1 + rng.Intn(4000), Height: 1 + rng.Intn(4000)}
		got, err := Resolve(context.Background(), in, spec, NoUpscaleDisabled)
		require.NoError(t, err)
		require.Equal(t, res(spec.Width, spec.Height), got.Size)
	}
}

func TestRoundTo16(t *testing.T) {
	t.Parallel()

	for v := 0; v < 10000; v++ {
		r := RoundTo16(v)
		require.Zero(t, r%16, "%d -> %d", v, r)
		diff := r - v
		if diff < 0 {
			diff = -diff
		}
		require.LessOrEqual(t, diff, 8, "%d -> %d", v, r)
	}
	require.Equal(t, 16, RoundTo16(8))
	require.Equal(t, 0, RoundTo16(7))
}

func TestDisplaySizePreservesAspect(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 1000; i++ {
		size := res(1+rng.Intn(4000), 1+rng.Intn(4000))
		inDisplay := res(1+rng.Intn(4000), 1+rng.Intn(4000))
		got := DisplaySize(size, inDisplay)

		require.GreaterOrEqual(t, got.Width, size.Width)
		require.GreaterOrEqual(t, got.Height, size.Height)

		// one side is copied as is and the other is truncated,
		// so the cross products differ by less than one unit of the copied side
		lhs := got.Width * inDisplay.Height
		rhs := got.Height * inDisplay.Width
		if size.Height*inDisplay.Width > size.Width*inDisplay.Height {
			require.Equal(t, size.Height, got.Height)
			require.LessOrEqual(t, lhs, rhs)
			require.Less(t, rhs-lhs, inDisplay.Height)
		} else {
			require.Equal(t, size.Width, got.Width)
			require.LessOrEqual(t, rhs, lhs)
			require.Less(t, lhs-rhs, inDisplay.Width)
		}
	}
}
