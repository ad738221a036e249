package core

import "math"

const defaultEpsilon = 1e-12

// Float is the numeric capability shared by all nodes. It is used both for
// the sample type flowing between nodes and for the internal computation
// precision of recurrences.
type Float interface {
	~float32 | ~float64
}

// Sin returns sin(x) evaluated in double precision.
func Sin[F Float](x F) F { return F(math.Sin(float64(x))) }

// Cos returns cos(x) evaluated in double precision.
func Cos[F Float](x F) F { return F(math.Cos(float64(x))) }

// Tan returns tan(x) evaluated in double precision.
func Tan[F Float](x F) F { return F(math.Tan(float64(x))) }

// Exp returns e**x evaluated in double precision.
func Exp[F Float](x F) F { return F(math.Exp(float64(x))) }

// Sqrt returns the square root of x evaluated in double precision.
func Sqrt[F Float](x F) F { return F(math.Sqrt(float64(x))) }

// Delerp is the inverse of linear interpolation: it returns the position of
// x relative to the segment [x0, x1], so that Delerp(x0, x1, x0) = 0 and
// Delerp(x0, x1, x1) = 1. The result is not clamped.
func Delerp[F Float](x0, x1, x F) F {
	return (x - x0) / (x1 - x0)
}

// Smooth9 is the 9th order smoothstep polynomial. It maps 0 to 0 and 1 to 1
// with the first four derivatives vanishing at both ends.
func Smooth9[F Float](x F) F {
	x2 := x * x
	return ((((70*x-315)*x+540)*x-420)*x + 126) * x2 * x2 * x
}

// Hash01 maps an integer to a pseudorandom number in [0, 1).
//
// The mapping is a SplitMix64 finalizer followed by taking the 53 most
// significant bits. Neighbouring inputs give uncorrelated outputs.
func Hash01(x uint64) float64 {
	x ^= 0x5555555555555555
	x *= 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return float64(x>>11) / (1 << 53)
}

// Clamp limits value to the inclusive range [min, max].
func Clamp(value, min, max float64) float64 {
	if min > max {
		min, max = max, min
	}

	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}

// NearlyEqual reports whether a and b are equal within eps.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// DBToLinear converts dB to linear amplitude (20*log10 convention).
func DBToLinear(db float64) float64 {
	return math.Pow(10, db/20)
}

// LinearToDB converts linear amplitude to dB (20*log10 convention).
// Returns -Inf for zero and NaN for negative values.
func LinearToDB(linear float64) float64 {
	if linear < 0 {
		return math.NaN()
	}

	if linear == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(linear)
}

// LinearPowerToDB converts linear power to dB (10*log10 convention).
// Returns -Inf for zero and NaN for negative values.
func LinearPowerToDB(power float64) float64 {
	if power < 0 {
		return math.NaN()
	}

	if power == 0 {
		return math.Inf(-1)
	}

	return 10 * math.Log10(power)
}
