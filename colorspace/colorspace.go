// Package colorspace describes the pixel layouts the resampler understands.
//
// A Colorspace is a closed, tagged set of layouts (grayscale, grayscale with
// alpha, RGB and its padded/alpha variants, and CMYK). Each tag carries a
// fixed channel count along with which channels, if any, carry sRGB-encoded
// data, which channel (if any) is alpha, and which channel (if any) is an
// ignored filler byte.
package colorspace

import "fmt"

// Colorspace tags the layout of one pixel's channels.
type Colorspace int

const (
	// G is single-channel grayscale, no gamma or alpha handling.
	G Colorspace = iota
	// GA is grayscale with a trailing premultiplied alpha channel.
	GA
	// RGB is three sRGB-encoded channels, no alpha.
	RGB
	// RGBX is RGB padded with one ignored filler byte.
	RGBX
	// RGBA is sRGB-encoded RGB with a premultiplied alpha channel.
	RGBA
	// CMYK is four plain (non-gamma) channels, no alpha.
	CMYK
)

// invalid is returned as the channel index for metadata queries that don't
// apply to a given colorspace (e.g. AlphaChannel on RGB).
const invalid = -1

// Channels returns the number of bytes per pixel for cs.
func (cs Colorspace) Channels() int {
	switch cs {
	case G:
		return 1
	case GA:
		return 2
	case RGB:
		return 3
	case RGBX, RGBA, CMYK:
		return 4
	default:
		return 0
	}
}

// GammaChannels returns how many of the leading channels carry sRGB-encoded
// samples. It is always 0 or 3: only the RGB-family colorspaces gamma-encode,
// and when they do it is always their first three channels.
func (cs Colorspace) GammaChannels() int {
	switch cs {
	case RGB, RGBX, RGBA:
		return 3
	default:
		return 0
	}
}

// AlphaChannel returns the index of the alpha channel and true, or (invalid,
// false) if cs has no alpha channel.
func (cs Colorspace) AlphaChannel() (int, bool) {
	switch cs {
	case GA:
		return 1, true
	case RGBA:
		return 3, true
	default:
		return invalid, false
	}
}

// FillerChannel returns the index of the ignored padding channel and true, or
// (invalid, false) if cs has no filler channel.
func (cs Colorspace) FillerChannel() (int, bool) {
	switch cs {
	case RGBX:
		return 3, true
	default:
		return invalid, false
	}
}

// Valid reports whether cs is one of the closed set of known colorspaces.
func (cs Colorspace) Valid() bool {
	switch cs {
	case G, GA, RGB, RGBX, RGBA, CMYK:
		return true
	default:
		return false
	}
}

func (cs Colorspace) String() string {
	switch cs {
	case G:
		return "G"
	case GA:
		return "GA"
	case RGB:
		return "RGB"
	case RGBX:
		return "RGBX"
	case RGBA:
		return "RGBA"
	case CMYK:
		return "CMYK"
	default:
		return fmt.Sprintf("Colorspace(%d)", int(cs))
	}
}
