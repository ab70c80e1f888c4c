package simplecolor

import "image/color"

// RGBA implements the standard color.Color interface. The channels
// are scaled to 16 bit with a fully opaque alpha value. Float channels
// are clamped into [0, 1] before scaling.
func (c RGB[T]) RGBA() (r, g, b, a uint32) {
	return channelTo16(c.R), channelTo16(c.G), channelTo16(c.B), 0xffff
}

// RGBA implements the standard color.Color interface. The channels
// are scaled to 16 bit and premultiplied by alpha, as the interface
// requires. Float channels are clamped into [0, 1] before scaling.
func (c RGBA[T]) RGBA() (r, g, b, a uint32) {
	a = channelTo16(c.A)

	r = channelTo16(c.R) * a / 0xffff
	g = channelTo16(c.G) * a / 0xffff
	b = channelTo16(c.B) * a / 0xffff

	return r, g, b, a
}

// FromColor converts a standard library color into a floating point
// RGBA color, undoing the alpha premultiplication of color.Color.
func FromColor[F Float](c color.Color) RGBA[F] {
	r16, g16, b16, a16 := c.RGBA()
	if a16 == 0 {
		return RGBA[F]{}
	}

	return RGBAOf(
		F(r16)/F(a16),
		F(g16)/F(a16),
		F(b16)/F(a16),
		F(a16)/0xffff)
}

// channelTo16 scales a channel value to a 16 bit color component.
func channelTo16[T Channel](value T) uint32 {
	switch v := any(value).(type) {
	case uint8:
		return uint32(v) * 0x101
	case uint16:
		return uint32(v)
	case uint32:
		return uint32(v >> 16)
	case uint64:
		return uint32(v >> 48)
	case float32:
		return uint32(clamp01(v) * 0xffff)
	case float64:
		return uint32(clamp01(v) * 0xffff)
	}

	panic("simplecolor: unsupported channel type")
}
