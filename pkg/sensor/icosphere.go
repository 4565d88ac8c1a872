package sensor

import (
	gomath "math"

	"github.com/Faultbox/basefinder/pkg/math"
)

// DirectionCount is the number of look directions in the search sphere.
const DirectionCount = 320

// icosphereLevels is the number of 4-way subdivisions applied to the
// icosahedron; 20 * 4^2 faces gives DirectionCount.
const icosphereLevels = 2

var directions = buildIcosphere()

// Directions returns the fixed unit look directions: the face centroids of a
// twice-subdivided icosahedron, projected onto the unit sphere.
func Directions() [DirectionCount]math.Vec3 {
	return directions
}

type triangle [3]math.Vec3

func buildIcosphere() [DirectionCount]math.Vec3 {
	t := (1 + gomath.Sqrt(5)) / 2
	verts := [12]math.Vec3{
		{X: -1, Y: t}, {X: 1, Y: t}, {X: -1, Y: -t}, {X: 1, Y: -t},
		{Y: -1, Z: t}, {Y: 1, Z: t}, {Y: -1, Z: -t}, {Y: 1, Z: -t},
		{X: t, Z: -1}, {X: t, Z: 1}, {X: -t, Z: -1}, {X: -t, Z: 1},
	}
	faces := [20][3]int{
		{0, 11, 5}, {0, 5, 1}, {0, 1, 7}, {0, 7, 10}, {0, 10, 11},
		{1, 5, 9}, {5, 11, 4}, {11, 10, 2}, {10, 7, 6}, {7, 1, 8},
		{3, 9, 4}, {3, 4, 2}, {3, 2, 6}, {3, 6, 8}, {3, 8, 9},
		{4, 9, 5}, {2, 4, 11}, {6, 2, 10}, {8, 6, 7}, {9, 8, 1},
	}

	tris := make([]triangle, 0, len(faces))
	for _, f := range faces {
		tris = append(tris, triangle{
			verts[f[0]].Normalize(),
			verts[f[1]].Normalize(),
			verts[f[2]].Normalize(),
		})
	}

	for level := 0; level < icosphereLevels; level++ {
		next := make([]triangle, 0, len(tris)*4)
		for _, tri := range tris {
			a, b, c := tri[0], tri[1], tri[2]
			ab := a.Add(b).Normalize()
			bc := b.Add(c).Normalize()
			ca := c.Add(a).Normalize()
			next = append(next,
				triangle{a, ab, ca},
				triangle{b, bc, ab},
				triangle{c, ca, bc},
				triangle{ab, bc, ca},
			)
		}
		tris = next
	}

	var out [DirectionCount]math.Vec3
	for i, tri := range tris {
		out[i] = tri[0].Add(tri[1]).Add(tri[2]).Normalize()
	}
	return out
}
