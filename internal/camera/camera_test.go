package camera

import (
	"math"
	"testing"

	"github.com/pixil98/go-adventure/internal/geom"
	"github.com/pixil98/go-testutil"
)

func TestFollow_Update(t *testing.T) {
	f := NewFollow(DefaultConfig())
	player := geom.V(0, 0, 10)

	desired := f.Desired(player, 0)
	testutil.AssertEqual(t, "desired", desired, geom.V(0, 5, 15))

	prev := f.Position.Sub(desired).Length()
	for i := 0; i < 500; i++ {
		f.Update(player, 0)
		testutil.AssertEqual(t, "target", f.Target, player)

		dist := f.Position.Sub(desired).Length()
		if dist >= prev {
			t.Fatalf("tick %d: distance did not shrink (%v -> %v)", i, prev, dist)
		}
		if dist == 0 {
			t.Fatalf("tick %d: camera reached the target exactly", i)
		}
		prev = dist
	}
	if prev > 1e-6 {
		t.Errorf("camera still %v away after 500 ticks", prev)
	}
}

func TestFollow_Frame(t *testing.T) {
	f := NewFollow(DefaultConfig())
	f.Frame(geom.V(10, 3, 12), geom.V(10, 1, 7))

	testutil.AssertEqual(t, "position", f.Position, geom.V(10, 3, 12))
	testutil.AssertEqual(t, "target", f.Target, geom.V(10, 1, 7))
}

func TestViewport_NDC(t *testing.T) {
	vp := Viewport{Width: 800, Height: 600}

	x, y, ok := vp.NDC(400, 300)
	testutil.AssertEqual(t, "ok", ok, true)
	testutil.AssertEqual(t, "center x", x, 0.0)
	testutil.AssertEqual(t, "center y", y, 0.0)

	x, y, _ = vp.NDC(0, 0)
	testutil.AssertEqual(t, "corner x", x, -1.0)
	testutil.AssertEqual(t, "corner y", y, 1.0)

	_, _, ok = Viewport{}.NDC(1, 1)
	testutil.AssertEqual(t, "empty viewport", ok, false)
}

func TestView_Ray(t *testing.T) {
	v := View{
		Position: geom.V(0, 0, 10),
		Target:   geom.V(0, 0, 0),
		Lens:     Lens{FovY: 90},
		Viewport: Viewport{Width: 100, Height: 100},
	}

	center := v.Ray(0, 0)
	testutil.AssertEqual(t, "origin", center.Origin, geom.V(0, 0, 10))
	if center.Dir.Sub(geom.V(0, 0, -1)).Length() > 1e-9 {
		t.Errorf("center dir = %+v", center.Dir)
	}

	// With a 90 degree fov the top edge of the screen is 45 degrees up.
	top := v.Ray(0, 1)
	if math.Abs(top.Dir.Y-math.Sqrt2/2) > 1e-9 || math.Abs(top.Dir.Z+math.Sqrt2/2) > 1e-9 {
		t.Errorf("top dir = %+v", top.Dir)
	}

	right, ok := v.ScreenRay(100, 50)
	testutil.AssertEqual(t, "ok", ok, true)
	if right.Dir.X <= 0 {
		t.Errorf("right edge ray should point +x, got %+v", right.Dir)
	}
}
