package simplecolor

import "fmt"

type RGBA8 = RGBA[uint8]
type RGBA32 = RGBA[float32]
type RGBA64 = RGBA[float64]

var Transparent = RGBAOf(0.0, 0.0, 0.0, 0.0)

// RGBA is a color with an alpha channel on top of the three RGB
// channels. The alpha channel is independent of the color channels,
// every operation treats it the same way as the others.
type RGBA[T Channel] struct {
	RGB[T]

	// Alpha component
	A T
}

func RGBAOf[T Channel](r, g, b, a T) RGBA[T] {
	return RGBA[T]{RGB: RGBOf(r, g, b), A: a}
}

// OpaqueRGBA returns a black color with a fully opaque alpha channel:
// the maximum value for unsigned integer channels, 1 for floats.
func OpaqueRGBA[T Channel]() RGBA[T] {
	return RGBA[T]{A: opaque[T]()}
}

// RGBAFromSlice constructs a color from the channel values in col,
// in red, green, blue, alpha order.
func RGBAFromSlice[T Channel](col [4]T) RGBA[T] {
	return RGBAOf(col[0], col[1], col[2], col[3])
}

// RGBAFromIntegral constructs a floating point color from unsigned
// integer components, mapping each one linearly from its full range
// onto [0, 1].
func RGBAFromIntegral[F Float, I Integral](r, g, b, a I) RGBA[F] {
	return RGBFromIntegral[F](r, g, b).WithAlpha(IntegralToFloat[F](a))
}

// RGBAFromIntegralSlice is RGBAFromIntegral taking the components as a slice.
func RGBAFromIntegralSlice[F Float, I Integral](col [4]I) RGBA[F] {
	return RGBAFromIntegral[F](col[0], col[1], col[2], col[3])
}

// Slice returns the channel values in red, green, blue, alpha order.
func (c RGBA[T]) Slice() [4]T {
	return [4]T{c.R, c.G, c.B, c.A}
}

// Components returns the channel values in red, green, blue, alpha
// order. Useful for destructuring.
func (c RGBA[T]) Components() (r, g, b, a T) {
	return c.R, c.G, c.B, c.A
}

// Add returns the piecewise sum of both colors, including alpha. The
// result is not clamped, use Normalized to bring float channels back
// into [0, 1].
func (c RGBA[T]) Add(other RGBA[T]) RGBA[T] {
	return c.RGB.Add(other.RGB).WithAlpha(c.A + other.A)
}

// Sub returns the piecewise difference of both colors, including
// alpha. The result is not clamped, unsigned integer channels wrap
// around on underflow.
func (c RGBA[T]) Sub(other RGBA[T]) RGBA[T] {
	return c.RGB.Sub(other.RGB).WithAlpha(c.A - other.A)
}

// Mul returns the piecewise product of both colors, including alpha.
// The result is not clamped.
func (c RGBA[T]) Mul(other RGBA[T]) RGBA[T] {
	return c.RGB.Mul(other.RGB).WithAlpha(c.A * other.A)
}

// Div returns the piecewise quotient of both colors, including alpha.
// Division follows the channel type's own semantics: dividing an
// unsigned integer channel by zero panics, a float channel yields an
// infinity or NaN.
func (c RGBA[T]) Div(other RGBA[T]) RGBA[T] {
	return c.RGB.Div(other.RGB).WithAlpha(c.A / other.A)
}

// ClampScalar clamps every channel, including alpha, between the same
// two scalar bounds. It panics if min is greater than max.
func (c RGBA[T]) ClampScalar(min, max T) RGBA[T] {
	return c.RGB.ClampScalar(min, max).WithAlpha(Clamp(c.A, min, max))
}

// ClampColor clamps every channel between the corresponding channels
// of min and max. It panics if any channel of min is greater than the
// corresponding channel of max.
func (c RGBA[T]) ClampColor(min, max RGBA[T]) RGBA[T] {
	return c.RGB.ClampColor(min.RGB, max.RGB).WithAlpha(Clamp(c.A, min.A, max.A))
}

// Normalized applies Normalized to every channel, including alpha.
func (c RGBA[T]) Normalized() RGBA[T] {
	return c.RGB.Normalized().WithAlpha(Normalized(c.A))
}

// Inverted applies Inverted to every channel, including alpha.
func (c RGBA[T]) Inverted() RGBA[T] {
	return c.RGB.Inverted().WithAlpha(Inverted(c.A))
}

// Mix combines both colors under the additive color model. Identical
// to Add.
func (c RGBA[T]) Mix(other RGBA[T]) RGBA[T] {
	return c.Add(other)
}

// Greyscale returns the color with the three color channels set to the
// luminance of the original color. Alpha is kept as it is.
func (c RGBA[T]) Greyscale() RGBA[T] {
	return c.RGB.Greyscale().WithAlpha(c.A)
}

// Lerp performs linear interpolation between two colors, alpha
// included. The factor t is clamped into [0, 1]. The interpolation is
// computed in float64 and converted back, rounding to the nearest
// value for unsigned integer channels.
func (c RGBA[T]) Lerp(other RGBA[T], t float64) RGBA[T] {
	return c.RGB.Lerp(other.RGB, t).WithAlpha(lerpChannel(c.A, other.A, t))
}

func (c RGBA[T]) String() string {
	return fmt.Sprintf("rgba(r=%v, g=%v, b=%v, a=%v)", c.R, c.G, c.B, c.A)
}

// opaque returns the fully opaque alpha value for a channel type.
func opaque[T Channel]() T {
	var zero T
	switch v := any(zero).(type) {
	case uint8:
		return T(^v)
	case uint16:
		return T(^v)
	case uint32:
		return T(^v)
	case uint64:
		return T(^v)
	default:
		return T(1)
	}
}
