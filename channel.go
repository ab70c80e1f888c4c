package simplecolor

import "fmt"

// Integral is the set of unsigned integer types usable as a color
// channel. Their full representable range is the normalized range:
// 0 is darkest, the maximum value is brightest.
type Integral interface {
	uint8 | uint16 | uint32 | uint64
}

// Float is the set of floating point types usable as a color channel.
// The normalized range is [0, 1], though values outside of it can be
// represented.
type Float interface {
	float32 | float64
}

// Channel is the set of all types usable as a color channel.
type Channel interface {
	Integral | Float
}

// Inverted returns the opposite of a channel value. Unsigned integer
// channels are reflected within their full range, so Inverted(Inverted(x))
// always returns x. Floating point channels are normalized first and then
// reflected within [0, 1].
func Inverted[T Channel](value T) T {
	switch v := any(value).(type) {
	case uint8:
		return T(^uint8(0) - v)
	case uint16:
		return T(^uint16(0) - v)
	case uint32:
		return T(^uint32(0) - v)
	case uint64:
		return T(^uint64(0) - v)
	case float32:
		return T(1 - clamp01(v))
	case float64:
		return T(1 - clamp01(v))
	}

	panic("simplecolor: unsupported channel type")
}

// Normalized clamps a floating point channel value into [0, 1].
// Unsigned integer channels are returned unchanged, their whole range
// is already normalized. A NaN value is passed through unchanged.
func Normalized[T Channel](value T) T {
	switch v := any(value).(type) {
	case float32:
		return T(clamp01(v))
	case float64:
		return T(clamp01(v))
	default:
		return value
	}
}

// Clamp restricts a channel value to the interval [min, max]. It panics
// if min is greater than max. A NaN value compares false against both
// bounds and is returned unchanged.
func Clamp[T Channel](value, min, max T) T {
	if min > max {
		panic(fmt.Sprintf("simplecolor: clamp bounds out of order: min %v > max %v", min, max))
	}

	if value > max {
		return max
	}

	if value < min {
		return min
	}

	return value
}

// IntegralToFloat maps an unsigned integer channel value linearly from
// its full range onto [0, 1], with 0 mapping to 0 and the maximum value
// mapping to 1.
func IntegralToFloat[F Float, I Integral](value I) F {
	return F(value) / F(maxOf[I]())
}

func maxOf[I Integral]() I {
	return ^I(0)
}

func clamp01[F Float](value F) F {
	return Clamp(value, 0, 1)
}
