package raster

// ShipOffsetY is how far below the viewport center the ship is anchored.
const ShipOffsetY = 200

// Ship palette.
const (
	shipHull    Color = 0xA8B4C8
	shipWing    Color = 0x6C7A94
	shipSpine   Color = 0x3C4458
	shipCockpit Color = 0x7FD8FF
	shipGlass   Color = 0xE8F8FF
	shipEngine  Color = 0xFF7A2A
	shipFlame   Color = 0xFFD060
)

// Fixed light for the ship panels, roughly from the upper left and towards
// the viewer.
const (
	shipLightX float32 = -0.45
	shipLightY float32 = -0.55
	shipLightZ float32 = 0.70

	shipAmbient float32 = 0.35
)

// ShipAnchor returns the ship's screen anchor for a w×h target.
func ShipAnchor(w, h int) (x, y int) { return w / 2, h/2 + ShipOffsetY }

// DrawShip draws the decorative ship overlay. It depends only on the target
// size, never on camera, zoom or time.
func DrawShip(t Target) {
	w, h := t.Size()
	ax, ay := ShipAnchor(w, h)

	// Hull: a triangle pointing up, nose at (0,-22).
	FillTriangle(t, ax, ay-22, ax-12, ay+14, ax+12, ay+14, panelShader(ax, ay, 12, 22, shipHull))

	// Wing strips.
	wing := panelShader(ax, ay, 26, 10, shipWing)
	FillRect(t, ax-26, ay+2, 14, 8, wing)
	FillRect(t, ax+12, ay+2, 14, 8, wing)

	DrawLine(t, ax, ay-18, ax, ay+12, shipSpine)

	// Engines with a hot core.
	for _, ex := range [2]int{ax - 6, ax + 6} {
		FillCircle(t, ex, ay+16, 3, Flat(shipEngine))
		FillCircle(t, ex, ay+17, 1.5, Flat(shipFlame))
	}

	// Cockpit with a glint.
	FillCircle(t, ax, ay-6, 4, Flat(shipCockpit))
	FillCircle(t, ax-1, ay-8, 1.2, Flat(shipGlass))
}

// panelShader shades base with the panel pattern in local coordinates around
// the anchor. halfW and halfH shape the pseudo-normal like a flattened dome.
func panelShader(ax, ay int, halfW, halfH float32, base Color) Shader {
	return func(x, y int) Color {
		lx := float32(x - ax)
		ly := float32(y - ay)
		return base.Shade(shipIntensity(lx, ly, halfW, halfH))
	}
}

func shipIntensity(lx, ly, halfW, halfH float32) float32 {
	nx := lx / halfW
	ny := ly / halfH
	nz2 := 1 - nx*nx - ny*ny
	var nz float32
	if nz2 > 0 {
		nz = sqrtF(nz2)
	}
	dot := nx*shipLightX + ny*shipLightY + nz*shipLightZ
	if dot < 0 {
		dot = 0
	}
	base := shipAmbient + (1-shipAmbient)*dot

	v := sinF(lx*0.9) * cosF(ly*0.9)
	if v < 0 {
		v = -v
	}
	pattern := 0.75 + 0.25*v
	return clampF32(base*pattern, 0, 1)
}
