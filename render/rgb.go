package render

// RGB is an 8-bit per channel color, converted to tcell only at flush
type RGB struct {
	R, G, B uint8
}

func clamp8(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	}
	return uint8(v)
}

// Blend mixes src over c with alpha in [0, 1]
func (c RGB) Blend(src RGB, alpha float64) RGB {
	if alpha <= 0 {
		return c
	}
	if alpha >= 1 {
		return src
	}
	return c.Lerp(src, alpha)
}

// Lerp interpolates from c to other by t, unclamped t extrapolates within channel range
func (c RGB) Lerp(other RGB, t float64) RGB {
	return RGB{
		R: clamp8(float64(c.R) + (float64(other.R)-float64(c.R))*t),
		G: clamp8(float64(c.G) + (float64(other.G)-float64(c.G))*t),
		B: clamp8(float64(c.B) + (float64(other.B)-float64(c.B))*t),
	}
}

// Max keeps the brighter value per channel
func (c RGB) Max(src RGB) RGB {
	return RGB{R: max(c.R, src.R), G: max(c.G, src.G), B: max(c.B, src.B)}
}

// Add sums channels, saturating at 255
func (c RGB) Add(src RGB) RGB {
	return RGB{
		R: uint8(min(int(c.R)+int(src.R), 255)),
		G: uint8(min(int(c.G)+int(src.G), 255)),
		B: uint8(min(int(c.B)+int(src.B), 255)),
	}
}

// Scale multiplies every channel by factor, clamped to [0, 1]
func (c RGB) Scale(factor float64) RGB {
	if factor >= 1 {
		return c
	}
	if factor <= 0 {
		return RGB{}
	}
	return RGB{R: clamp8(float64(c.R) * factor), G: clamp8(float64(c.G) * factor), B: clamp8(float64(c.B) * factor)}
}
