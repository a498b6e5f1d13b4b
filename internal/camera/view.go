package camera

import (
	"math"

	"github.com/pixil98/go-adventure/internal/geom"
)

var worldUp = geom.V(0, 1, 0)

// Lens describes a perspective projection.
type Lens struct {
	// FovY is the vertical field of view in degrees.
	FovY float64 `json:"fov_y"`
}

func DefaultLens() Lens {
	return Lens{FovY: 75}
}

// Viewport is the client's drawing surface in pixels.
type Viewport struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// NDC converts client pixel coordinates to normalized device coordinates in [-1, 1], y up.
func (v Viewport) NDC(x, y float64) (float64, float64, bool) {
	if v.Width <= 0 || v.Height <= 0 {
		return 0, 0, false
	}
	return x/v.Width*2 - 1, -(y/v.Height)*2 + 1, true
}

// View is a snapshot of everything needed to turn a click into a ray.
type View struct {
	Position geom.Vec3
	Target   geom.Vec3
	Lens     Lens
	Viewport Viewport
}

// View captures the camera's current pose.
func (f *Follow) View(lens Lens, vp Viewport) View {
	return View{Position: f.Position, Target: f.Target, Lens: lens, Viewport: vp}
}

// Ray returns the world-space ray through the given normalized device coordinates.
func (v View) Ray(ndcX, ndcY float64) geom.Ray {
	forward := v.Target.Sub(v.Position).Normalize()
	if forward == (geom.Vec3{}) {
		forward = geom.V(0, 0, -1)
	}
	right := forward.Cross(worldUp).Normalize()
	if right == (geom.Vec3{}) {
		// Looking straight up or down.
		right = geom.V(1, 0, 0)
	}
	up := right.Cross(forward)

	aspect := 1.0
	if v.Viewport.Height > 0 {
		aspect = v.Viewport.Width / v.Viewport.Height
	}
	tanHalf := math.Tan(v.Lens.FovY * math.Pi / 180 / 2)

	dir := forward.
		Add(right.Scale(ndcX * tanHalf * aspect)).
		Add(up.Scale(ndcY * tanHalf)).
		Normalize()

	return geom.Ray{Origin: v.Position, Dir: dir}
}

// ScreenRay returns the ray through client pixel coordinates.
func (v View) ScreenRay(x, y float64) (geom.Ray, bool) {
	nx, ny, ok := v.Viewport.NDC(x, y)
	if !ok {
		return geom.Ray{}, false
	}
	return v.Ray(nx, ny), true
}
