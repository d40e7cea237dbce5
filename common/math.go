package common

import (
	"image/color"
	"math"
	"math/rand"
)

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// Clamp limits v to [lo, hi]. When lo > hi the result is lo.
func Clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// RandomRange returns a uniform value between a and b. The bounds may be
// given in either order.
func RandomRange(rng *rand.Rand, a, b float64) float64 {
	if a > b {
		a, b = b, a
	}
	return a + rng.Float64()*(b-a)
}

// HSL converts hue, saturation and lightness in [0, 1] to an opaque color.
func HSL(h, s, l float64) color.NRGBA {
	h = h - math.Floor(h)
	s = Clamp(s, 0, 1)
	l = Clamp(l, 0, 1)

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	r := hueToChannel(p, q, h+1.0/3.0)
	g := hueToChannel(p, q, h)
	b := hueToChannel(p, q, h-1.0/3.0)
	return color.NRGBA{R: toByte(r), G: toByte(g), B: toByte(b), A: 0xff}
}

func hueToChannel(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6.0:
		return p + (q-p)*6*t
	case t < 0.5:
		return q
	case t < 2.0/3.0:
		return p + (q-p)*(2.0/3.0-t)*6
	default:
		return p
	}
}

func toByte(v float64) uint8 {
	return uint8(math.Round(Clamp(v, 0, 1) * 255))
}
