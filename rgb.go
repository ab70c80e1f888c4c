package simplecolor

import (
	"fmt"
	"math"
)

type RGB8 = RGB[uint8]
type RGB32 = RGB[float32]
type RGB64 = RGB[float64]

var White = RGBOf(1.0, 1.0, 1.0)
var Black = RGBOf(0.0, 0.0, 0.0)

// Rec. 709 luma coefficients.
const (
	lumaR = 0.2126
	lumaG = 0.7152
	lumaB = 0.0722
)

// RGB is a color with a red, a green and a blue channel. The channels
// are independent of each other, every operation applies to each of
// them separately. The zero value is black.
//
// RGB values are plain value types. Operations never modify the
// receiver, they return a new value.
type RGB[T Channel] struct {
	R, G, B T
}

func RGBOf[T Channel](r, g, b T) RGB[T] {
	return RGB[T]{R: r, G: g, B: b}
}

// RGBFromSlice constructs a color from the channel values in col,
// in red, green, blue order.
func RGBFromSlice[T Channel](col [3]T) RGB[T] {
	return RGBOf(col[0], col[1], col[2])
}

// RGBFromIntegral constructs a floating point color from unsigned
// integer components, mapping each one linearly from its full range
// onto [0, 1].
func RGBFromIntegral[F Float, I Integral](r, g, b I) RGB[F] {
	return RGBOf(
		IntegralToFloat[F](r),
		IntegralToFloat[F](g),
		IntegralToFloat[F](b))
}

// RGBFromIntegralSlice is RGBFromIntegral taking the components as a slice.
func RGBFromIntegralSlice[F Float, I Integral](col [3]I) RGB[F] {
	return RGBFromIntegral[F](col[0], col[1], col[2])
}

// Slice returns the channel values in red, green, blue order.
func (c RGB[T]) Slice() [3]T {
	return [3]T{c.R, c.G, c.B}
}

// Components returns the channel values in red, green, blue order.
// Useful for destructuring.
func (c RGB[T]) Components() (r, g, b T) {
	return c.R, c.G, c.B
}

// WithAlpha returns an RGBA color with the channels of this color and
// the given alpha value.
func (c RGB[T]) WithAlpha(a T) RGBA[T] {
	return RGBA[T]{RGB: c, A: a}
}

// Add returns the piecewise sum of both colors. The result is not
// clamped, use Normalized to bring float channels back into [0, 1].
func (c RGB[T]) Add(other RGB[T]) RGB[T] {
	c.R += other.R
	c.G += other.G
	c.B += other.B
	return c
}

// Sub returns the piecewise difference of both colors. The result is
// not clamped, unsigned integer channels wrap around on underflow.
func (c RGB[T]) Sub(other RGB[T]) RGB[T] {
	c.R -= other.R
	c.G -= other.G
	c.B -= other.B
	return c
}

// Mul returns the piecewise product of both colors. The result is not
// clamped.
func (c RGB[T]) Mul(other RGB[T]) RGB[T] {
	c.R *= other.R
	c.G *= other.G
	c.B *= other.B
	return c
}

// Div returns the piecewise quotient of both colors. Division follows
// the channel type's own semantics: dividing an unsigned integer
// channel by zero panics, a float channel yields an infinity or NaN.
func (c RGB[T]) Div(other RGB[T]) RGB[T] {
	c.R /= other.R
	c.G /= other.G
	c.B /= other.B
	return c
}

// ClampScalar clamps every channel between the same two scalar bounds.
// It panics if min is greater than max.
func (c RGB[T]) ClampScalar(min, max T) RGB[T] {
	return RGBOf(
		Clamp(c.R, min, max),
		Clamp(c.G, min, max),
		Clamp(c.B, min, max))
}

// ClampColor clamps every channel between the corresponding channels
// of min and max. It panics if any channel of min is greater than the
// corresponding channel of max.
func (c RGB[T]) ClampColor(min, max RGB[T]) RGB[T] {
	return RGBOf(
		Clamp(c.R, min.R, max.R),
		Clamp(c.G, min.G, max.G),
		Clamp(c.B, min.B, max.B))
}

// Normalized applies Normalized to every channel.
func (c RGB[T]) Normalized() RGB[T] {
	return RGBOf(
		Normalized(c.R),
		Normalized(c.G),
		Normalized(c.B))
}

// Inverted applies Inverted to every channel.
func (c RGB[T]) Inverted() RGB[T] {
	return RGBOf(
		Inverted(c.R),
		Inverted(c.G),
		Inverted(c.B))
}

// Luminance returns the relative brightness of the color as a
// Rec. 709 weighted sum of the channels. The sum is computed in
// float64 and rounded to the nearest value for unsigned integer
// channels, so the luminance of an already grey color is the channel
// value itself.
func (c RGB[T]) Luminance() T {
	return channelOfFloat[T](lumaR*float64(c.R) + lumaG*float64(c.G) + lumaB*float64(c.B))
}

// Mix combines both colors under the additive color model. Identical
// to Add.
func (c RGB[T]) Mix(other RGB[T]) RGB[T] {
	return c.Add(other)
}

// Greyscale returns the color with every channel set to the luminance
// of the original color.
func (c RGB[T]) Greyscale() RGB[T] {
	l := c.Luminance()
	return RGBOf(l, l, l)
}

// Lerp performs linear interpolation between two colors. The factor t
// is clamped into [0, 1]. The interpolation is computed in float64 and
// converted back, rounding to the nearest value for unsigned integer
// channels.
func (c RGB[T]) Lerp(other RGB[T], t float64) RGB[T] {
	return RGBOf(
		lerpChannel(c.R, other.R, t),
		lerpChannel(c.G, other.G, t),
		lerpChannel(c.B, other.B, t))
}

func (c RGB[T]) String() string {
	return fmt.Sprintf("rgb(r=%v, g=%v, b=%v)", c.R, c.G, c.B)
}

func lerpChannel[T Channel](a, b T, t float64) T {
	t = clamp01(t)
	return channelOfFloat[T](float64(a)*(1-t) + float64(b)*t)
}

// channelOfFloat converts a float64 back into a channel value. Float
// channels keep the value as is, unsigned integer channels round to
// the nearest value.
func channelOfFloat[T Channel](value float64) T {
	var zero T
	switch any(zero).(type) {
	case float32, float64:
		return T(value)
	default:
		return T(math.Round(value))
	}
}
