package geometry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/PistachioCake/raytracing/pkg/core"
)

func TestTranslate(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1, DummyMaterial{})
	moved := NewTranslate(sphere, core.NewVec3(5, 0, 0))

	box := moved.BoundingBox()
	if box.X.Min != 4 || box.X.Max != 6 {
		t.Errorf("Expected translated X extent [4, 6], got %v", box.X)
	}

	ray := core.NewRay(core.NewVec3(5, 0, 5), core.NewVec3(0, 0, -1))
	hit, ok := moved.Hit(ray, core.PositiveInterval)
	if !ok {
		t.Fatal("Expected hit on translated sphere")
	}
	if !vecNear(hit.Point, core.NewVec3(5, 0, 1), 1e-9) {
		t.Errorf("Expected hit point (5, 0, 1), got %v", hit.Point)
	}
	if !vecNear(hit.Normal, core.NewVec3(0, 0, 1), 1e-9) {
		t.Errorf("Expected normal (0, 0, 1), got %v", hit.Normal)
	}

	if _, ok := moved.Hit(core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1)), core.PositiveInterval); ok {
		t.Error("Ray through the original position should miss")
	}
}

func TestRotate_RoundTrip(t *testing.T) {
	random := rand.New(rand.NewSource(8))
	sphere := NewSphere(core.NewVec3(1, 2, 3), 1, DummyMaterial{})

	for axis := 0; axis < 3; axis++ {
		r := NewRotate(sphere, axis, random.Float64()*360-180)
		for i := 0; i < 20; i++ {
			p := core.NewVec3(random.Float64()*10, random.Float64()*10, random.Float64()*10)
			if got := r.UnrotatePoint(r.RotatePoint(p)); !vecNear(got, p, 1e-9) {
				t.Errorf("axis %d: round trip of %v gave %v", axis, p, got)
			}
			if p.Axis(axis) != r.RotatePoint(p).Axis(axis) {
				t.Errorf("axis %d: rotation changed the axis component", axis)
			}
		}
	}
}

func TestRotateY_QuarterTurn(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 0.5, DummyMaterial{})
	r := NewRotateY(sphere, 90)

	// Counterclockwise about +Y takes +X to -Z
	if got := r.RotatePoint(core.NewVec3(1, 0, 0)); !vecNear(got, core.NewVec3(0, 0, -1), 1e-12) {
		t.Errorf("RotatePoint(+X) = %v, want (0, 0, -1)", got)
	}
}

func TestRotate_BoundingBoxContainsRotatedObject(t *testing.T) {
	box := NewBox(core.NewVec3(0, 0, 0), core.NewVec3(2, 1, 1), DummyMaterial{})
	rotated := NewRotateY(box, 45)
	bbox := rotated.BoundingBox()

	// Rotating all 8 corners by 45 degrees widens X and Z to sqrt(2)-ish spans
	childBox := box.BoundingBox()
	for _, corner := range childBox.Corners() {
		p := rotated.RotatePoint(corner)
		if !bbox.X.Contains(p.X) || !bbox.Y.Contains(p.Y) || !bbox.Z.Contains(p.Z) {
			t.Errorf("rotated corner %v outside %v", p, bbox)
		}
	}
	if bbox.IsEmpty() {
		t.Fatal("rotated bounding box should not be empty")
	}
	if bbox.X.Size() <= childBox.X.Size()*math.Sqrt2/2 {
		t.Errorf("rotated X extent %v too small", bbox.X)
	}
}

func TestRotate_HitMatchesRotatedGeometry(t *testing.T) {
	quad := NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0), DummyMaterial{})
	rotated := NewRotateY(quad, 90)

	// The quad now lies in the YZ plane spanning z in [-1, 0]
	ray := core.NewRay(core.NewVec3(5, 0.5, -0.5), core.NewVec3(-1, 0, 0))
	hit, ok := rotated.Hit(ray, core.PositiveInterval)
	if !ok {
		t.Fatal("Expected hit on rotated quad")
	}
	if !vecNear(hit.Point, core.NewVec3(0, 0.5, -0.5), 1e-9) {
		t.Errorf("Expected hit point (0, 0.5, -0.5), got %v", hit.Point)
	}
	if !vecNear(hit.Normal, core.NewVec3(1, 0, 0), 1e-9) {
		t.Errorf("Expected world normal (1, 0, 0), got %v", hit.Normal)
	}
	if !rotated.BoundingBox().Hit(ray, core.PositiveInterval) {
		t.Error("Bounding box should contain the hit")
	}
}

func TestNewRotate_InvalidAxisPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for axis 3")
		}
	}()
	NewRotate(NewSphere(core.Vec3{}, 1, DummyMaterial{}), 3, 10)
}

func TestInstanceComposition(t *testing.T) {
	box := NewBox(core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1), DummyMaterial{})
	placed := NewTranslate(NewRotateY(box, 180), core.NewVec3(10, 0, 0))

	// Rotating 180 about Y maps [0,1] in x and z to [-1,0]; then x shifts by 10
	bbox := placed.BoundingBox()
	if math.Abs(bbox.X.Min-9) > 0.01 || math.Abs(bbox.X.Max-10) > 0.01 {
		t.Errorf("Expected X extent near [9, 10], got %v", bbox.X)
	}

	ray := core.NewRay(core.NewVec3(9.5, 0.5, 5), core.NewVec3(0, 0, -1))
	hit, ok := placed.Hit(ray, core.PositiveInterval)
	if !ok {
		t.Fatal("Expected hit on composed instance")
	}
	if math.Abs(hit.Point.Z) > 1e-9 {
		t.Errorf("Expected hit on the z=0 face, got %v", hit.Point)
	}
}
