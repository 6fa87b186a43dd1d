package physics

import (
	"math"
	"testing"
)

func box(cx, cy, cz, half float64) AABB {
	c := Vec3{cx, cy, cz}
	h := Vec3{half, half, half}
	return AABB{Min: c.Sub(h), Max: c.Add(h)}
}

func TestOverlapsBasic(t *testing.T) {
	cases := []struct {
		name string
		a, b AABB
		want bool
	}{
		{"coincident", box(0, 0, 0, 1), box(0, 0, 0, 1), true},
		{"partial overlap", box(0, 0, 0, 1), box(1.5, 0, 0, 1), true},
		{"separated on x", box(0, 0, 0, 1), box(3, 0, 0, 1), false},
		{"separated on y", box(0, 0, 0, 1), box(0, 3, 0, 1), false},
		{"separated on z", box(0, 0, 0, 1), box(0, 0, 3, 1), false},
		{"overlap on two axes only", box(0, 0, 0, 1), box(0.5, 0.5, 5, 1), false},
		{"contained", box(0, 0, 0, 3), box(0.5, 0.5, 0.5, 0.1), true},
	}
	for _, tc := range cases {
		if got := Overlaps(tc.a, tc.b); got != tc.want {
			t.Fatalf("%s: Overlaps = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestOverlapsTouchingFacesCount(t *testing.T) {
	// Exactly touching faces intersect.
	a := box(0, 0, 0, 1)
	b := box(2, 0, 0, 1)
	if !Overlaps(a, b) {
		t.Fatalf("touching boxes should overlap")
	}
}

func TestOverlapsSymmetric(t *testing.T) {
	pairs := []struct{ a, b AABB }{
		{box(0, 0, 0, 1), box(1.5, 0.5, -0.5, 1)},
		{box(0, 0, 0, 1), box(10, 0, 0, 1)},
		{box(-5, 2, 3, 2), box(-4, 1, 2, 0.5)},
	}
	for i, p := range pairs {
		if Overlaps(p.a, p.b) != Overlaps(p.b, p.a) {
			t.Fatalf("pair %d: Overlaps not symmetric", i)
		}
	}
}

func TestIntersectsUsesScaleAsHalfExtents(t *testing.T) {
	a := &Transform{Position: Vec3{}, Scale: Vec3{1, 1, 1}}
	b := &Transform{Position: Vec3{X: 1.9}, Scale: Vec3{1, 1, 1}}
	if !Intersects(a, b) {
		t.Fatalf("boxes 1.9 apart with half-extent 1 should intersect")
	}
	b.Position.X = 2.1
	if Intersects(a, b) {
		t.Fatalf("boxes 2.1 apart with half-extent 1 should not intersect")
	}
}

func TestIntegrate(t *testing.T) {
	tr := &Transform{
		Position: Vec3{X: 1, Y: 2, Z: 3},
		Velocity: Vec3{X: 0.5, Y: -1, Z: 2},
	}
	tr.Integrate()
	want := Vec3{X: 1.5, Y: 1, Z: 5}
	if tr.Position != want {
		t.Fatalf("position after integrate = %+v, want %+v", tr.Position, want)
	}
}

func TestSanitizeClearsNonFinite(t *testing.T) {
	tr := &Transform{
		Position: Vec3{X: math.NaN()},
		Velocity: Vec3{Z: math.Inf(1)},
	}
	tr.Sanitize()
	if tr.Position != (Vec3{}) {
		t.Fatalf("non-finite position not cleared: %+v", tr.Position)
	}
	if tr.Velocity != (Vec3{}) {
		t.Fatalf("non-finite velocity not cleared: %+v", tr.Velocity)
	}

	ok := &Transform{Position: Vec3{X: 1}, Velocity: Vec3{Y: 2}}
	ok.Sanitize()
	if ok.Position != (Vec3{X: 1}) || ok.Velocity != (Vec3{Y: 2}) {
		t.Fatalf("finite transform should be untouched: %+v", ok)
	}
}

func TestSmoothstep(t *testing.T) {
	if got := Smoothstep(-1); got != 0 {
		t.Fatalf("Smoothstep(-1) = %f, want 0", got)
	}
	if got := Smoothstep(2); got != 1 {
		t.Fatalf("Smoothstep(2) = %f, want 1", got)
	}
	if got := Smoothstep(0.5); math.Abs(got-0.5) > 1e-12 {
		t.Fatalf("Smoothstep(0.5) = %f, want 0.5", got)
	}
	// Monotone on [0,1].
	prev := 0.0
	for i := 1; i <= 100; i++ {
		v := Smoothstep(float64(i) / 100)
		if v < prev {
			t.Fatalf("Smoothstep not monotone at t=%f", float64(i)/100)
		}
		prev = v
	}
}
