// Package simplecolor provides generic RGB and RGBA color values and
// common functions for manipulating them. It is intended to be used
// standalone, or to complement vector math libraries in graphics
// programming.
//
// Colors are parameterized over their channel type: the unsigned
// integer types treat their full range as the normalized range, the
// floating point types use [0, 1]. All operations are piecewise, every
// channel is processed independently of the others.
package simplecolor
