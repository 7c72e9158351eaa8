package domain

import "math"

// Immutable planar coordinates of a city.
type Coordinates struct {
	X float64
	Y float64
}

// DistanceTo returns the straight-line Euclidean distance between two points.
func (c Coordinates) DistanceTo(o Coordinates) float64 {
	return math.Hypot(c.X-o.X, c.Y-o.Y)
}

// Finite reports whether both components are finite numbers.
func (c Coordinates) Finite() bool {
	return !math.IsInf(c.X, 0) && !math.IsNaN(c.X) && !math.IsInf(c.Y, 0) && !math.IsNaN(c.Y)
}

// Return coordinates as [x, y] for storage and wire formats.
func (c Coordinates) CoordsToList() []float64 { return []float64{c.X, c.Y} }
