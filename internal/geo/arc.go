package geo

import (
	"github.com/travelglobal/planner/internal/domain"
)

const (
	// GlobeRadius is the radius stops are placed at, just above the globe mesh.
	GlobeRadius = 2.05

	// DefaultSegments is the number of interpolation steps per arc.
	DefaultSegments = 64

	// liftFactor scales the straight-line hop distance into extra arc height.
	liftFactor = 0.3
)

// Palette is cycled through to colour successive arcs.
var Palette = []string{"#f97316", "#0ea5e9", "#8b5cf6", "#22c55e", "#f59e0b", "#ec4899"}

// Arc is the flight path from one stop to the next.
type Arc struct {
	Key    string   `json:"key"`
	FromID string   `json:"from_id"`
	ToID   string   `json:"to_id"`
	Color  string   `json:"color"`
	Points []Vector `json:"points"`
}

// ArcPoints returns segments+1 points on a quadratic curve from start to end.
// The control point is the chord midpoint pushed out to radius plus a lift
// proportional to the chord length, so longer hops arc higher.
func ArcPoints(start, end Vector, radius float64, segments int) []Vector {
	if segments < 1 {
		segments = 1
	}
	mid := start.Add(end).Scale(0.5).Normalize().Scale(radius + start.DistanceTo(end)*liftFactor)

	points := make([]Vector, 0, segments+1)
	for i := 0; i <= segments; i++ {
		t := float64(i) / float64(segments)
		p1 := Lerp(start, mid, t)
		p2 := Lerp(mid, end, t)
		points = append(points, Lerp(p1, p2, t))
	}
	return points
}

// Arcs returns one arc per consecutive pair of items, in sequence order.
// Fewer than two items produce no arcs.
func Arcs(items []domain.ItineraryItem, segments int) []Arc {
	if len(items) < 2 {
		return []Arc{}
	}

	arcs := make([]Arc, 0, len(items)-1)
	for i := 0; i < len(items)-1; i++ {
		from, to := items[i], items[i+1]
		start := FromLatLng(from.Coordinates.Lat, from.Coordinates.Lng, GlobeRadius)
		end := FromLatLng(to.Coordinates.Lat, to.Coordinates.Lng, GlobeRadius)
		arcs = append(arcs, Arc{
			Key:    from.ID + "-" + to.ID,
			FromID: from.ID,
			ToID:   to.ID,
			Color:  Palette[i%len(Palette)],
			Points: ArcPoints(start, end, GlobeRadius, segments),
		})
	}
	return arcs
}
