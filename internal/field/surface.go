package field

import "image/color"

// Surface is the drawable target of a frame. Alpha is applied on top of the
// color's own alpha and lies in [0, 1].
type Surface interface {
	Clear()
	FillCircle(x, y, radius float64, clr color.RGBA, alpha float64)
	StrokeLine(x0, y0, x1, y1, width float64, clr color.RGBA, alpha float64)
}

// Fade returns clr as a non-premultiplied color scaled by alpha.
func Fade(clr color.RGBA, alpha float64) color.NRGBA {
	if alpha < 0 {
		alpha = 0
	} else if alpha > 1 {
		alpha = 1
	}
	return color.NRGBA{R: clr.R, G: clr.G, B: clr.B, A: uint8(float64(clr.A)*alpha + 0.5)}
}
