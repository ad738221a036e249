package onepole

import (
	"math"
	"math/cmplx"
)

// firstOrderResponse evaluates (b0 + b1 z^-1) / (1 + a1 z^-1) at
// z = exp(i*2*pi*omega).
func firstOrderResponse(omega, b0, b1, a1 float64) complex128 {
	e1 := cmplx.Rect(1, -2*math.Pi*omega)
	return (complex(b0, 0) + complex(b1, 0)*e1) / (1 + complex(a1, 0)*e1)
}
