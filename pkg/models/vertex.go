package models

import "fmt"

// Vertex is a space-time point (x, y, z in cm, t in ns)
type Vertex struct {
	x, y, z, t float64
}

// NewVertex creates a vertex from its four coordinates
func NewVertex(x, y, z, t float64) Vertex {
	return Vertex{x: x, y: y, z: z, t: t}
}

// X, Y and Z return the spatial coordinates in cm, T the time in ns
func (v Vertex) X() float64 { return v.x }
func (v Vertex) Y() float64 { return v.y }
func (v Vertex) Z() float64 { return v.z }
func (v Vertex) T() float64 { return v.t }

func (v Vertex) String() string {
	return fmt.Sprintf("(%g, %g, %g, %g)", v.x, v.y, v.z, v.t)
}
