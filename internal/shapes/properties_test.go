package shapes

import (
	"math"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestPolygonPointsProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(1903)
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("n vertices all at the circumradius", prop.ForAll(
		func(n int, flatToFlat float64) bool {
			pts, ok := pointPairs(PolygonPoints(n, flatToFlat, 50, 50, 0))
			if !ok || len(pts) != n {
				return false
			}
			want := flatToFlat / (2 * math.Cos(math.Pi/float64(n)))
			for _, p := range pts {
				if math.Abs(math.Hypot(p[0]-50, p[1]-50)-want) > 0.01 {
					return false
				}
			}
			return true
		},
		gen.IntRange(3, 24),
		gen.Float64Range(1, 90),
	))

	properties.Property("rotation moves vertices but keeps the radius", prop.ForAll(
		func(n int, rotation float64) bool {
			pts, ok := pointPairs(PolygonPoints(n, 60, 50, 50, rotation))
			if !ok || len(pts) != n {
				return false
			}
			want := 60 / (2 * math.Cos(math.Pi/float64(n)))
			for _, p := range pts {
				if math.Abs(math.Hypot(p[0]-50, p[1]-50)-want) > 0.01 {
					return false
				}
			}
			return true
		},
		gen.IntRange(3, 12),
		gen.Float64Range(-360, 360),
	))

	properties.Property("vertices follow the given center", prop.ForAll(
		func(cx, cy float64) bool {
			pts, ok := pointPairs(PolygonPoints(6, 40, cx, cy, 0))
			if !ok || len(pts) != 6 {
				return false
			}
			want := 40 / (2 * math.Cos(math.Pi/6))
			for _, p := range pts {
				if math.Abs(math.Hypot(p[0]-cx, p[1]-cy)-want) > 0.01 {
					return false
				}
			}
			return true
		},
		gen.Float64Range(10, 90),
		gen.Float64Range(10, 90),
	))

	properties.TestingRun(t)
}

func TestStarProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(2741)
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("2*lobes vertices alternate radii and the path closes", prop.ForAll(
		func(lobes int, outer, ratio float64) bool {
			inner := outer * ratio
			attr := Star(lobes, outer, inner)
			if !strings.HasPrefix(attr, `d="M `) || !strings.HasSuffix(attr, `Z"`) {
				return false
			}
			pts, ok := starVertices(attr)
			if !ok || len(pts) != lobes*2 {
				return false
			}
			for i, p := range pts {
				want := outer
				if i%2 != 0 {
					want = inner
				}
				if math.Abs(math.Hypot(p[0]-50, p[1]-50)-want) > 0.01 {
					return false
				}
			}
			// vertex 0 sits straight above center
			return math.Abs(pts[0][0]-50) <= 0.01 && pts[0][1] < 50
		},
		gen.IntRange(2, 24),
		gen.Float64Range(5, 48),
		gen.Float64Range(0.2, 0.9),
	))

	properties.TestingRun(t)
}
