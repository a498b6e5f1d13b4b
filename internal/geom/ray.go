package geom

import "math"

// Ray is a half-line starting at Origin. Dir is expected to be normalized.
type Ray struct {
	Origin Vec3
	Dir    Vec3
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Dir.Scale(t))
}

// IntersectBox returns the distance to the first intersection of r with b using the slab method.
// A ray starting inside the box hits at distance 0.
func (r Ray) IntersectBox(b Box) (float64, bool) {
	if b.IsEmpty() {
		return 0, false
	}

	tMin := math.Inf(-1)
	tMax := math.Inf(1)

	slab := func(origin, dir, lo, hi float64) bool {
		if dir == 0 {
			return origin >= lo && origin <= hi
		}
		t1 := (lo - origin) / dir
		t2 := (hi - origin) / dir
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
		return tMin <= tMax
	}

	if !slab(r.Origin.X, r.Dir.X, b.Min.X, b.Max.X) ||
		!slab(r.Origin.Y, r.Dir.Y, b.Min.Y, b.Max.Y) ||
		!slab(r.Origin.Z, r.Dir.Z, b.Min.Z, b.Max.Z) {
		return 0, false
	}

	if tMax < 0 {
		return 0, false
	}
	if tMin < 0 {
		return 0, true
	}
	return tMin, true
}
