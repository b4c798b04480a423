package physics

import (
	"errors"
	"math"
	"testing"

	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/geometry"
)

const dt = 1.0 / 60

func mustBody(t *testing.T, w *World, kind Kind, pos geometry.Vector3D, radius float64) *RigidBody {
	t.Helper()
	b, err := w.NewBody(kind, pos, 1, radius)
	if err != nil {
		t.Fatalf("NewBody: %v", err)
	}
	return b
}

func TestWorld_NewBody(t *testing.T) {
	w := NewWorld()
	tests := []struct {
		name         string
		mass, radius float64
		wantErr      bool
	}{
		{"valid", 1, 0.5, false},
		{"zero mass", 0, 0.5, true},
		{"negative radius", 1, -1, true},
		{"NaN mass", math.NaN(), 1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := w.NewBody(KindAgent, geometry.Zero, tt.mass, tt.radius)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewBody error = %v; wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidBody) {
				t.Errorf("error %v does not wrap ErrInvalidBody", err)
			}
		})
	}
	if w.Len() != 1 {
		t.Errorf("Len = %d; want 1", w.Len())
	}
	b := w.Bodies()[0]
	if b.UseGravity() || !b.Velocity().IsZero() || !b.Rotation().Eq(geometry.Identity) {
		t.Errorf("new body not at rest without gravity: %v", b)
	}
}

func TestRigidBody_ApplyForce(t *testing.T) {
	w := NewWorld()
	b, err := w.NewBody(KindAgent, geometry.Zero, 2, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	b.SetVelocity(geometry.Vector3D{X: 1})
	b.ApplyForce(geometry.Vector3D{X: 4, Z: -8}, 0.5)
	want := geometry.Vector3D{X: 2, Z: -2}
	if got := b.Velocity(); !got.Eq(want) {
		t.Errorf("Velocity = %v; want %v", got, want)
	}
	if !b.Position().IsZero() {
		t.Errorf("ApplyForce moved the body to %v", b.Position())
	}
}

func TestWorld_StepGravity(t *testing.T) {
	w := NewWorld()
	floating := mustBody(t, w, KindAgent, geometry.Vector3D{Y: 1.5}, 0.5)
	falling := mustBody(t, w, KindAgent, geometry.Vector3D{X: 10, Y: 1.5}, 0.5)
	falling.SetUseGravity(true)
	floating.SetVelocity(geometry.Vector3D{Z: 6})

	w.Step(0.5)

	if got := floating.Position(); !got.Eq(geometry.Vector3D{Y: 1.5, Z: 3}) {
		t.Errorf("floating body at %v", got)
	}
	if got := falling.Velocity(); !got.Eq(DefaultGravity.Mul(0.5)) {
		t.Errorf("falling velocity = %v", got)
	}
	if got := falling.Position().Y; got >= 1.5 {
		t.Errorf("falling body did not drop: y = %v", got)
	}
	if w.Steps() != 1 {
		t.Errorf("Steps = %d; want 1", w.Steps())
	}
}

func TestWorld_CustomGravity(t *testing.T) {
	w := NewWorld(WithGravity(geometry.Zero))
	b := mustBody(t, w, KindAgent, geometry.Zero, 0.5)
	b.SetUseGravity(true)
	w.Step(1)
	if !b.Position().IsZero() {
		t.Errorf("body moved without gravity to %v", b.Position())
	}
}

func TestWorld_Contacts(t *testing.T) {
	w := NewWorld()
	agent := mustBody(t, w, KindAgent, geometry.Vector3D{X: 1}, 0.5)
	mustBody(t, w, KindAgent, geometry.Vector3D{X: 1.5}, 0.5) // overlaps agent, nobody reports
	shot := mustBody(t, w, KindProjectile, geometry.Zero, 1)
	shot.SetReportContacts(true)

	var got []Contact
	w.OnContact(func(c Contact) { got = append(got, c) })

	if n := w.Step(dt); n != 1 {
		t.Fatalf("Step found %d contacts; want 1", n)
	}
	if len(got) != 1 || got[0].Body != shot || got[0].Other != agent {
		t.Fatalf("contacts = %v", got)
	}

	shot.SetPosition(geometry.Vector3D{X: 50})
	got = nil
	if n := w.Step(dt); n != 0 || len(got) != 0 {
		t.Errorf("far shot reported %d contacts", n)
	}
}

func TestWorld_ContactConsumedByListener(t *testing.T) {
	w := NewWorld()
	mustBody(t, w, KindAgent, geometry.Vector3D{X: 0.5}, 0.5)
	mustBody(t, w, KindAgent, geometry.Vector3D{X: -0.5}, 0.5)
	shot := mustBody(t, w, KindProjectile, geometry.Zero, 1)
	shot.SetReportContacts(true)

	calls := 0
	w.OnContact(func(c Contact) {
		calls++
		c.Body.SetReportContacts(false)
	})
	w.Step(dt)
	if calls != 1 {
		t.Errorf("listener called %d times; want 1", calls)
	}
}

func TestWorld_Remove(t *testing.T) {
	w := NewWorld()
	a := mustBody(t, w, KindAgent, geometry.Zero, 0.5)
	b := mustBody(t, w, KindAgent, geometry.Zero, 0.5)
	w.Remove(a)
	w.Remove(a)
	w.Remove(nil)
	if w.Len() != 1 || w.Bodies()[0] != b {
		t.Errorf("bodies after remove = %v", w.Bodies())
	}
	if !a.Removed() || b.Removed() {
		t.Errorf("removed flags: a=%v b=%v", a.Removed(), b.Removed())
	}
	if a.ID() == b.ID() {
		t.Errorf("bodies share id %d", a.ID())
	}
}

func BenchmarkWorldStep(b *testing.B) {
	w := NewWorld()
	for i := 0; i < 100; i++ {
		body, _ := w.NewBody(KindAgent, geometry.Vector3D{X: float64(i), Y: 1.5}, 1, 0.5)
		body.SetVelocity(geometry.Vector3D{Z: 10})
	}
	for i := 0; i < 4; i++ {
		p, _ := w.NewBody(KindProjectile, geometry.Vector3D{X: float64(i * 20), Y: 10}, 1, 1)
		p.SetReportContacts(true)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		w.Step(dt)
	}
}
