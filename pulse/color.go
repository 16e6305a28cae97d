package pulse

import (
	"math"

	"github.com/oliverbestmann/tricam/glm"
	"github.com/oliverbestmann/webgpu/wgpu"
)

// Color is a straight rgba color value with alpha in linear rgb color space.
type Color struct {
	linear glm.Vec4f
}

// ColorLinearRGBA creates a new Color value from the given color values.
func ColorLinearRGBA(r, g, b, a float32) Color {
	return Color{linear: glm.Vec4f{r, g, b, a}}
}

// ColorSRGBA creates a Color value from non linear srgb encoded values. The color values
// will be transferred into linear rgb space.
// This is the usual color format of color pickers.
func ColorSRGBA(r, g, b, a float32) Color {
	return ColorLinearRGBA(degamma(r), degamma(g), degamma(b), a)
}

// ToWGPU converts the color to a clear value. The surface format decides
// whether it is encoded to srgb on write.
func (c Color) ToWGPU() wgpu.Color {
	return wgpu.Color{
		R: float64(c.linear[0]),
		G: float64(c.linear[1]),
		B: float64(c.linear[2]),
		A: float64(c.linear[3]),
	}
}

func degamma(value float32) float32 {
	x := float64(value)

	// https://www.w3.org/TR/css-color-4/#color-conversion-code
	sign := math.Copysign(1, x)
	abs := math.Abs(x)
	if abs <= 0.04045 {
		return float32(x / 12.92)
	}

	return float32(sign * math.Pow((abs+0.055)/1.055, 2.4))
}
