package tessellation

import "github.com/golang/geo/r3"

// Surface is the base shape a mesh is laid over.
type Surface interface {
	// Elevation returns the height of pos above the base surface.
	Elevation(pos r3.Vector) float64
	// Up returns the unit outward direction at pos.
	Up(pos r3.Vector) r3.Vector
}

// Plane is the z = 0 plane with +z up.
type Plane struct{}

// Elevation returns pos.Z.
func (Plane) Elevation(pos r3.Vector) float64 { return pos.Z }

// Up returns +z.
func (Plane) Up(r3.Vector) r3.Vector { return r3.Vector{Z: 1} }

// Sphere is a sphere centred on the origin.
type Sphere struct {
	Radius float64
}

// Elevation returns the distance of pos above the sphere.
func (s Sphere) Elevation(pos r3.Vector) float64 { return pos.Norm() - s.Radius }

// Up returns the radial direction through pos.
func (s Sphere) Up(pos r3.Vector) r3.Vector {
	if pos.Norm() == 0 {
		return r3.Vector{Z: 1}
	}
	return pos.Normalize()
}
