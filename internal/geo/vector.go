// Package geo computes globe coordinates and the curved flight paths drawn
// between consecutive itinerary stops.
package geo

import "math"

// Vector is a point or direction in 3D globe space. The Y axis points
// through the north pole.
type Vector struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

func (v Vector) Add(o Vector) Vector { return Vector{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

func (v Vector) Sub(o Vector) Vector { return Vector{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

func (v Vector) Scale(s float64) Vector { return Vector{v.X * s, v.Y * s, v.Z * s} }

func (v Vector) Len() float64 { return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z) }

func (v Vector) DistanceTo(o Vector) float64 { return v.Sub(o).Len() }

// Normalize returns the unit vector in v's direction, or the zero vector
// when v has no length.
func (v Vector) Normalize() Vector {
	l := v.Len()
	if l == 0 {
		return Vector{}
	}
	return v.Scale(1 / l)
}

// Lerp interpolates linearly from a (t=0) to b (t=1).
func Lerp(a, b Vector, t float64) Vector {
	return Vector{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
		Z: a.Z + (b.Z-a.Z)*t,
	}
}

// FromLatLng maps latitude/longitude in degrees to a point on a sphere of
// the given radius: φ = 90°−lat, θ = lng+180°,
// point = r·(−sinφ·cosθ, cosφ, sinφ·sinθ).
func FromLatLng(lat, lng, radius float64) Vector {
	phi := (90 - lat) * math.Pi / 180
	theta := (lng + 180) * math.Pi / 180
	return Vector{
		X: -(radius * math.Sin(phi) * math.Cos(theta)),
		Y: radius * math.Cos(phi),
		Z: radius * math.Sin(phi) * math.Sin(theta),
	}
}
