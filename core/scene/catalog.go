package scene

// DefaultBodies returns the built-in system: the Sun and six planets.
func DefaultBodies() []Body {
	return []Body{
		{Name: "Sun", Radius: 30, Color: 0xFFCC33, Central: true},
		{Name: "Mercury", Radius: 6, Distance: 150, OrbitSpeed: 0.05, SpinSpeed: 0.10, Color: 0xAAAAAA},
		{Name: "Venus", Radius: 10, Distance: 260, OrbitSpeed: 0.035, SpinSpeed: 0.09, Color: 0xFFCC88},
		{Name: "Earth", Radius: 11, Distance: 380, OrbitSpeed: 0.03, SpinSpeed: 0.12, Color: 0x3366FF},
		{Name: "Mars", Radius: 9, Distance: 500, OrbitSpeed: 0.026, SpinSpeed: 0.11, Color: 0xCC5533},
		{Name: "Jupiter", Radius: 18, Distance: 650, OrbitSpeed: 0.018, SpinSpeed: 0.20, Color: 0xDDBB88},
		{Name: "Saturn", Radius: 16, Distance: 820, OrbitSpeed: 0.014, SpinSpeed: 0.18, Color: 0xEEDD99, Ring: true},
	}
}
