package scaler

import (
	"fmt"
	"strings"

	"github.com/xaionaro-go/typing"
)

type Algorithm uint

const (
	AlgorithmUndefined = Algorithm(iota)
	AlgorithmFastBilinear
	AlgorithmBilinear
	AlgorithmBicubic
	AlgorithmExperimental
	AlgorithmPoint
	AlgorithmArea
	AlgorithmBicublin
	AlgorithmGauss
	AlgorithmSinc
	AlgorithmLanczos
	AlgorithmSpline
	endOfAlgorithms
)

const AlgorithmDefault = AlgorithmBicubic

func (a Algorithm) String() string {
	switch a {
	case AlgorithmUndefined:
		return "<undefined>"
	case AlgorithmFastBilinear:
		return "fast-bilinear"
	case AlgorithmBilinear:
		return "bilinear"
	case AlgorithmBicubic:
		return "bicubic"
	case AlgorithmExperimental:
		return "experimental"
	case AlgorithmPoint:
		return "point"
	case AlgorithmArea:
		return "area"
	case AlgorithmBicublin:
		return "bicublin"
	case AlgorithmGauss:
		return "gauss"
	case AlgorithmSinc:
		return "sinc"
	case AlgorithmLanczos:
		return "lanczos"
	case AlgorithmSpline:
		return "spline"
	default:
		return fmt.Sprintf("unknown_algorithm_%d", uint(a))
	}
}

// IsValid is true for the known algorithms and for AlgorithmUndefined,
// which means AlgorithmDefault.
func (a Algorithm) IsValid() bool {
	return a < endOfAlgorithms
}

func AlgorithmFromString(s string) (Algorithm, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for a := AlgorithmUndefined + 1; a < endOfAlgorithms; a++ {
		if a.String() == s {
			return a, nil
		}
	}
	return AlgorithmUndefined, fmt.Errorf("unknown scaling algorithm '%s'", s)
}

func (a Algorithm) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *Algorithm) UnmarshalText(b []byte) error {
	r, err := AlgorithmFromString(string(b))
	if err != nil {
		return err
	}
	*a = r
	return nil
}

// contextFlag returns the libswscale flag selecting the algorithm.
func (a Algorithm) contextFlag() ContextFlags {
	switch a {
	case AlgorithmFastBilinear:
		return 0x1
	case AlgorithmBilinear:
		return 0x2
	case AlgorithmBicubic, AlgorithmUndefined:
		return 0x4
	case AlgorithmExperimental:
		return 0x8
	case AlgorithmPoint:
		return 0x10
	case AlgorithmArea:
		return 0x20
	case AlgorithmBicublin:
		return 0x40
	case AlgorithmGauss:
		return 0x80
	case AlgorithmSinc:
		return 0x100
	case AlgorithmLanczos:
		return 0x200
	case AlgorithmSpline:
		return 0x400
	default:
		return 0x4
	}
}

// ContextFlags is the flags word of a libswscale context.
type ContextFlags uint32

const (
	ContextFlagAccurateRounding = ContextFlags(0x40000)

	chromaDropShift = 16
	ChromaDropMax   = 3
)

// Params are the quality knobs of an engine.
type Params struct {
	Algorithm Algorithm

	// Param are the algorithm tuning parameters (e.g. B and C of bicubic
	// or the width of gauss/lanczos); unset means the engine default.
	Param [2]typing.Optional[float64]

	// ChromaDrop skips chroma lines of the source: 0 keeps all of them,
	// each step halves the vertical chroma resolution.
	ChromaDrop int

	AccurateRounding bool
}

func (p Params) String() string {
	parts := []string{
		p.Algorithm.String(),
		fmt.Sprintf("chr-drop=%d", p.ChromaDrop),
		fmt.Sprintf("arnd=%v", p.AccurateRounding),
	}
	for i, v := range p.Param {
		if v.IsSet() {
			parts = append(parts, fmt.Sprintf("param%d=%v", i+1, v.Get()))
		}
	}
	return strings.Join(parts, " ")
}

// ContextFlags encodes the parameters as the flags word of libswscale.
func (p Params) ContextFlags() ContextFlags {
	flags := p.Algorithm.contextFlag()
	flags |= ContextFlags(p.ChromaDrop) << chromaDropShift
	if p.AccurateRounding {
		flags |= ContextFlagAccurateRounding
	}
	return flags
}
