package drawq

// Flip is a bitmask describing how a texture is mirrored when drawn.
type Flip uint8

const (
	// NoFlip draws the texture as-is.
	NoFlip Flip = 0
	// HorizontalFlip mirrors the texture left-to-right.
	HorizontalFlip Flip = 1 << 0
	// VerticalFlip mirrors the texture top-to-bottom.
	VerticalFlip Flip = 1 << 1
)

// String returns a human-readable name for the flip mask.
func (f Flip) String() string {
	switch f {
	case NoFlip:
		return "NoFlip"
	case HorizontalFlip:
		return "HorizontalFlip"
	case VerticalFlip:
		return "VerticalFlip"
	case HorizontalFlip | VerticalFlip:
		return "HorizontalFlip|VerticalFlip"
	default:
		return "Unknown"
	}
}

// BlendFactor is a source or destination blend coefficient.
type BlendFactor uint8

const (
	// FactorZero contributes nothing.
	FactorZero BlendFactor = iota
	// FactorOne contributes the full component value.
	FactorOne
	// FactorSrcAlpha scales by the source alpha.
	FactorSrcAlpha
	// FactorOneMinusSrcAlpha scales by one minus the source alpha.
	FactorOneMinusSrcAlpha
	// FactorDstColor scales by the destination color.
	FactorDstColor
)

// blendFactorNames maps BlendFactor values to their string representation.
var blendFactorNames = [...]string{
	FactorZero:             "Zero",
	FactorOne:              "One",
	FactorSrcAlpha:         "SrcAlpha",
	FactorOneMinusSrcAlpha: "OneMinusSrcAlpha",
	FactorDstColor:         "DstColor",
}

// String returns the string representation of a BlendFactor.
func (f BlendFactor) String() string {
	if int(f) < len(blendFactorNames) {
		return blendFactorNames[f]
	}
	return "Unknown"
}

// Blend holds the source and destination blend factors applied when a
// request is composited.
type Blend struct {
	Src, Dst BlendFactor
}

// DefaultBlend returns standard alpha blending.
func DefaultBlend() Blend {
	return Blend{Src: FactorSrcAlpha, Dst: FactorOneMinusSrcAlpha}
}

// Common blend modes.
var (
	// BlendAdd accumulates light additively.
	BlendAdd = Blend{Src: FactorSrcAlpha, Dst: FactorOne}
	// BlendMod multiplies the destination by the source, used to apply
	// a lightmap over the color buffer.
	BlendMod = Blend{Src: FactorDstColor, Dst: FactorZero}
	// BlendNone overwrites the destination.
	BlendNone = Blend{Src: FactorOne, Dst: FactorZero}
)
