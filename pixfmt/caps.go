package pixfmt

import (
	"strings"
)

// Caps is the answer of a consumer to "can you take this pixel format".
type Caps uint8

const (
	// CapsSupported means the format is accepted, possibly through a conversion.
	CapsSupported Caps = 1 << iota

	// CapsSupportedByHW means the format is consumed as is, with no conversion.
	CapsSupportedByHW
)

// CapsUnsupported is the zero answer.
const CapsUnsupported = Caps(0)

func (c Caps) IsSupported() bool {
	return c&(CapsSupported|CapsSupportedByHW) != 0
}

func (c Caps) IsSupportedByHW() bool {
	return c&CapsSupportedByHW != 0
}

func (c Caps) String() string {
	if c == CapsUnsupported {
		return "unsupported"
	}
	var parts []string
	if c&CapsSupported != 0 {
		parts = append(parts, "supported")
	}
	if c&CapsSupportedByHW != 0 {
		parts = append(parts, "supported_by_hw")
	}
	return strings.Join(parts, "|")
}
