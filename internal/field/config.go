package field

import "image/color"

// Field tuning. The values reproduce the portfolio backdrop and are not meant
// to be changed per instance, except for the particle count.
const (
	DefaultCount       = 100
	InteractionRadius  = 100.0
	AttractionGain     = 0.00001
	ConnectionRadius   = 100.0
	MaxConnectionAlpha = 0.1
	LineWidth          = 1.0

	maxInitialSpeed = 0.25
	minRadius       = 1.0
	maxRadius       = 3.0
	minOpacity      = 0.2
	maxOpacity      = 0.7
)

// Tint is the fill and stroke color (#60a5fa) for particles and connections.
var Tint = color.RGBA{R: 0x60, G: 0xa5, B: 0xfa, A: 0xff}
