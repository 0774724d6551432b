package geom

import (
	"errors"
	"fmt"
	"math"

	earcut "github.com/flywave/go-earcut"
)

// ErrTooFewPoints is returned when a polygon has fewer than three vertices.
var ErrTooFewPoints = errors.New("polygon needs at least 3 points")

// MinCircleSegments is the lowest segment count CirclePolygon will emit.
const MinCircleSegments = 8

// CirclePolygon approximates a circle with an n-gon. Vertices are ordered
// counter-clockwise in screen space starting at angle 0.
func CirclePolygon(center Vector2f, radius float32, segments int) []Vector2f {
	if segments < MinCircleSegments {
		segments = MinCircleSegments
	}
	pts := make([]Vector2f, segments)
	step := 2 * math.Pi / float64(segments)
	for i := range pts {
		a := step * float64(i)
		pts[i] = Vector2f{
			X: center.X + radius*float32(math.Cos(a)),
			Y: center.Y + radius*float32(math.Sin(a)),
		}
	}
	return pts
}

// SegmentsForRadius picks a segment count that keeps edges around 4 units long.
func SegmentsForRadius(radius float32) int {
	n := int(math.Ceil(2 * math.Pi * float64(radius) / 4))
	if n < MinCircleSegments {
		return MinCircleSegments
	}
	if n > 256 {
		return 256
	}
	return n
}

// Triangulate splits a simple polygon into triangles and returns indices into
// points, three per triangle.
func Triangulate(points []Vector2f) ([]uint16, error) {
	if len(points) < 3 {
		return nil, ErrTooFewPoints
	}
	if len(points) > math.MaxUint16 {
		return nil, fmt.Errorf("polygon has %d points, max %d", len(points), math.MaxUint16)
	}

	flat := make([]float64, 0, len(points)*2)
	for _, p := range points {
		flat = append(flat, float64(p.X), float64(p.Y))
	}

	tris, err := earcut.Earcut(flat, nil, 2)
	if err != nil {
		return nil, fmt.Errorf("triangulating %d points: %w", len(points), err)
	}

	indices := make([]uint16, len(tris))
	for i, t := range tris {
		indices[i] = uint16(t)
	}
	return indices, nil
}
