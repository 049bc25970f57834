package color

// FromPacked unpacks a 0xAABBGGRR color into float components.
func FromPacked(p uint32) Color {
	return Color{
		R: float32(p&0xff) / 255.0,
		G: float32((p>>8)&0xff) / 255.0,
		B: float32((p>>16)&0xff) / 255.0,
		A: float32((p>>24)&0xff) / 255.0,
	}
}

// Packed converts c back to 0xAABBGGRR. Each channel is scaled by 255 and
// truncated toward zero, matching how draw colors reach the renderer.
func (c Color) Packed() uint32 {
	return uint32(toByte(c.R)) |
		uint32(toByte(c.G))<<8 |
		uint32(toByte(c.B))<<16 |
		uint32(toByte(c.A))<<24
}

// RGBA8 returns the truncated byte channels of c.
func (c Color) RGBA8() (r, g, b, a uint8) {
	return toByte(c.R), toByte(c.G), toByte(c.B), toByte(c.A)
}

// FromRGBA8 builds a Color from byte channels.
func FromRGBA8(r, g, b, a uint8) Color {
	return Color{
		R: float32(r) / 255.0,
		G: float32(g) / 255.0,
		B: float32(b) / 255.0,
		A: float32(a) / 255.0,
	}
}

// toByte scales v by 255 and truncates. Out of range input is clamped
// first so that interpolation overshoot cannot wrap around.
func toByte(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v * 255)
}
