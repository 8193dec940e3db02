package render

// BlendMode selects how a source color composites onto a pixel
type BlendMode uint8

const (
	BlendReplace BlendMode = iota
	BlendAlpha
	BlendAdd
	BlendScreen
)

// String returns the mode name
func (m BlendMode) String() string {
	switch m {
	case BlendReplace:
		return "replace"
	case BlendAlpha:
		return "alpha"
	case BlendAdd:
		return "add"
	case BlendScreen:
		return "screen"
	default:
		return "unknown"
	}
}

// Composite applies mode to dst with src at alpha
func Composite(dst, src RGB, mode BlendMode, alpha float64) RGB {
	switch mode {
	case BlendReplace:
		return src
	case BlendAdd:
		return Add(dst, src, alpha)
	case BlendScreen:
		return Screen(dst, src, alpha)
	default:
		return Blend(dst, src, alpha)
	}
}
