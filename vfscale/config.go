package vfscale

import (
	"fmt"

	"github.com/xaionaro-go/avscale/geometry"
	"github.com/xaionaro-go/avscale/scaler"
	"github.com/xaionaro-go/typing"
)

const (
	ParamMin = 0
	ParamMax = 100
)

// Config is the user-facing configuration of the scaling stage.
type Config struct {
	// Width and Height are the requested output dimensions, see
	// geometry.DecodeDimension for the meaning of non-positive values.
	Width  int `yaml:"w"`
	Height int `yaml:"h"`

	// Param and Param2 tune the scaling algorithm; nil means the engine default.
	// They are validated here but not every engine honours them: neither
	// scaler.Software nor scaler.Bild can pass them on, both log and ignore them.
	Param  *float64 `yaml:"param,omitempty"`
	Param2 *float64 `yaml:"param2,omitempty"`

	ChromaDrop       int                `yaml:"chr_drop"`
	NoUpscale        geometry.NoUpscale `yaml:"noup"`
	AccurateRounding bool               `yaml:"arnd"`
	Algorithm        scaler.Algorithm   `yaml:"algorithm"`
}

// DefaultConfig keeps the input size.
func DefaultConfig() Config {
	return Config{
		Width:     geometry.RawSourceSize,
		Height:    geometry.RawSourceSize,
		Algorithm: scaler.AlgorithmDefault,
	}
}

func (cfg Config) String() string {
	return fmt.Sprintf("%s noup=%d %s", cfg.DimensionSpec(), cfg.NoUpscale, cfg.ScalerParams())
}

func (cfg Config) DimensionSpec() geometry.Spec {
	return geometry.Spec{Width: cfg.Width, Height: cfg.Height}
}

func (cfg Config) ScalerParams() scaler.Params {
	p := scaler.Params{
		Algorithm:        cfg.Algorithm,
		ChromaDrop:       cfg.ChromaDrop,
		AccurateRounding: cfg.AccurateRounding,
	}
	if p.Algorithm == scaler.AlgorithmUndefined {
		p.Algorithm = scaler.AlgorithmDefault
	}
	for idx, v := range []*float64{cfg.Param, cfg.Param2} {
		if v != nil {
			p.Param[idx] = typing.Opt(*v)
		}
	}
	return p
}

// Validate checks the ranges of every field.
func (cfg Config) Validate() error {
	if _, _, err := cfg.DimensionSpec().Decode(); err != nil {
		return ErrInvalidConfig{Field: "w:h", Err: err}
	}
	for _, param := range []struct {
		name  string
		value *float64
	}{
		{"param", cfg.Param},
		{"param2", cfg.Param2},
	} {
		if param.value == nil {
			continue
		}
		if *param.value < ParamMin || *param.value > ParamMax {
			return ErrInvalidConfig{
				Field: param.name,
				Err:   fmt.Errorf("%v is out of range [%d, %d]", *param.value, ParamMin, ParamMax),
			}
		}
	}
	if cfg.ChromaDrop < 0 || cfg.ChromaDrop > scaler.ChromaDropMax {
		return ErrInvalidConfig{
			Field: "chr_drop",
			Err:   fmt.Errorf("%d is out of range [0, %d]", cfg.ChromaDrop, scaler.ChromaDropMax),
		}
	}
	if !cfg.NoUpscale.IsValid() {
		return ErrInvalidConfig{
			Field: "noup",
			Err:   fmt.Errorf("%d is out of range [%d, %d]", cfg.NoUpscale, geometry.NoUpscaleDisabled, geometry.NoUpscaleBothAxes),
		}
	}
	if !cfg.Algorithm.IsValid() {
		return ErrInvalidConfig{
			Field: "algorithm",
			Err:   fmt.Errorf("unknown scaling algorithm %s", cfg.Algorithm),
		}
	}
	return nil
}
