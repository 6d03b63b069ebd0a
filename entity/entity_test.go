package entity

import (
	"errors"
	"image/color"
	"testing"

	"github.com/gogpu/boxplay/physics"
)

func boxAt(x, y float64) BoxSpec {
	return BoxSpec{
		Pos:      physics.V(x, y),
		W:        40,
		H:        40,
		Friction: 1,
		Color:    color.RGBA{R: 255, B: 255, A: 255},
	}
}

func TestSpawnStatic(t *testing.T) {
	w := physics.NewWorld()
	r := NewRegistry()

	e, err := SpawnStatic(w, r, boxAt(10, 20))
	if err != nil {
		t.Fatal(err)
	}
	if e.IsPlayable() {
		t.Error("static entity is playable")
	}
	if k, _ := w.Kind(e.Body); k != physics.Static {
		t.Errorf("kind = %v, want Static", k)
	}
	if p, _ := w.Position(e.Body); p != physics.V(10, 20) {
		t.Errorf("position = %v", p)
	}
	if e.ControlledBody() != e.Body {
		t.Error("ControlledBody of a plain entity is not its body")
	}
}

func TestSpawnPlayer_Direct(t *testing.T) {
	w := physics.NewWorld()
	r := NewRegistry()

	e, err := SpawnPlayer(w, r, PlayerSpec{BoxSpec: boxAt(0, 0), Mass: 0.25, Design: Direct})
	if err != nil {
		t.Fatal(err)
	}
	if !e.IsPlayable() {
		t.Fatal("player not playable")
	}
	if e.Playable.Anchor != 0 {
		t.Error("direct player has an anchor")
	}
	if e.ControlledBody() != e.Body {
		t.Error("direct player does not control its own body")
	}
	if w.Len() != 1 {
		t.Errorf("world has %d bodies, want 1", w.Len())
	}
}

func TestSpawnPlayer_Anchored(t *testing.T) {
	w := physics.NewWorld()
	r := NewRegistry()

	e, err := SpawnPlayer(w, r, PlayerSpec{BoxSpec: boxAt(0, 0), Mass: 0.25, Design: Anchored})
	if err != nil {
		t.Fatal(err)
	}
	p := e.Playable
	if p.Anchor == 0 || p.Pivot == 0 || p.Gear == 0 {
		t.Fatalf("anchored payload incomplete: %+v", p)
	}
	if k, _ := w.Kind(p.Anchor); k != physics.Kinematic {
		t.Errorf("anchor kind = %v, want Kinematic", k)
	}
	if e.ControlledBody() != p.Anchor {
		t.Error("anchored player does not control its anchor")
	}

	if err := r.Remove(w, e.ID); err != nil {
		t.Fatal(err)
	}
	if w.Valid(p.Anchor) || w.ConstraintValid(p.Pivot) || w.ConstraintValid(p.Gear) {
		t.Error("anchor or constraints survived entity removal")
	}
	if w.Len() != 0 {
		t.Errorf("world has %d bodies after removal, want 0", w.Len())
	}
}

func TestSpawnPlayer_InvalidMass(t *testing.T) {
	w := physics.NewWorld()
	r := NewRegistry()

	_, err := SpawnPlayer(w, r, PlayerSpec{BoxSpec: boxAt(0, 0), Mass: 0})
	if !errors.Is(err, physics.ErrInvalidMass) {
		t.Errorf("err = %v, want ErrInvalidMass", err)
	}
	if r.Len() != 0 || w.Len() != 0 {
		t.Error("failed spawn left state behind")
	}
}

func TestRegistry_PlayablesInSpawnOrder(t *testing.T) {
	w := physics.NewWorld()
	r := NewRegistry()

	if _, err := SpawnStatic(w, r, boxAt(0, 0)); err != nil {
		t.Fatal(err)
	}
	first, err := SpawnPlayer(w, r, PlayerSpec{BoxSpec: boxAt(100, 0), Mass: 1})
	if err != nil {
		t.Fatal(err)
	}
	second, err := SpawnPlayer(w, r, PlayerSpec{BoxSpec: boxAt(200, 0), Mass: 1})
	if err != nil {
		t.Fatal(err)
	}

	ps := r.Playables()
	if len(ps) != 2 || ps[0] != first || ps[1] != second {
		t.Errorf("Playables() = %v, want [first second]", ps)
	}
	if got, ok := r.FirstPlayable(); !ok || got != first {
		t.Error("FirstPlayable did not return the first spawned player")
	}
	if got, ok := r.Get(second.ID); !ok || got != second {
		t.Error("Get did not find the second player")
	}
}

func TestRegistry_RemoveUnknown(t *testing.T) {
	r := NewRegistry()
	if err := r.Remove(physics.NewWorld(), 99); !errors.Is(err, ErrUnknownEntity) {
		t.Errorf("err = %v, want ErrUnknownEntity", err)
	}
}

func TestParseDesign(t *testing.T) {
	for _, d := range []Design{Direct, Anchored} {
		got, ok := ParseDesign(d.String())
		if !ok || got != d {
			t.Errorf("ParseDesign(%q) = %v, %v", d.String(), got, ok)
		}
	}
	if _, ok := ParseDesign("tank"); ok {
		t.Error("ParseDesign accepted an unknown name")
	}
}
