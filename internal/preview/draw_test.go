package preview

import (
	"math"
	"testing"

	"github.com/phanxgames/tableau"
)

func box(id, parent string, x, y, w, h float64) tableau.ElementSnapshot {
	e := tableau.NewElement(id)
	e.ParentID = parent
	e.X, e.Y, e.Width, e.Height = x, y, w, h
	return e
}

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestLayoutPainterOrder(t *testing.T) {
	hidden := box("ghost", "", 0, 0, 10, 10)
	hidden.Visible = false
	frame := tableau.Frame{
		"z-root": box("z-root", "", 0, 0, 100, 100),
		"a-kid":  box("a-kid", "z-root", 10, 10, 20, 20),
		"b-root": box("b-root", "", 0, 0, 50, 50),
		"flat":   box("flat", "", 0, 0, 0, 10),
		"ghost":  hidden,
	}

	ops := Layout(frame, 0, 0)
	var ids []string
	for _, op := range ops {
		ids = append(ids, op.ID)
	}
	want := []string{"b-root", "z-root", "a-kid"}
	if len(ids) != len(want) {
		t.Fatalf("ops = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("ops = %v, want %v", ids, want)
		}
	}
	if ops[2].Depth != 1 {
		t.Errorf("kid depth = %d, want 1", ops[2].Depth)
	}
}

func TestLayoutGeometry(t *testing.T) {
	e := box("card", "", 20, 10, 100, 50)
	e.TranslateX = 5
	frame := tableau.Frame{"card": e}

	op := Layout(frame, 8, 8)[0]
	x0, y0 := op.GeoM.Apply(0, 0)
	x1, y1 := op.GeoM.Apply(1, 1)
	if !near(x0, 33) || !near(y0, 18) || !near(x1, 133) || !near(y1, 68) {
		t.Fatalf("corners = (%v,%v) (%v,%v)", x0, y0, x1, y1)
	}

	e.Rotation = 90
	e.Scale = 0.5
	frame["card"] = e
	op = Layout(frame, 0, 0)[0]
	// centre stays put, the half-size box is turned a quarter
	cx, cy := op.GeoM.Apply(0.5, 0.5)
	if !near(cx, 75) || !near(cy, 35) {
		t.Fatalf("centre = (%v,%v), want (75,35)", cx, cy)
	}
	tx, ty := op.GeoM.Apply(0, 0)
	if !near(tx, 87.5) || !near(ty, 10) {
		t.Fatalf("rotated corner = (%v,%v), want (87.5,10)", tx, ty)
	}
}

func TestLayoutClampsOpacity(t *testing.T) {
	e := box("a", "", 0, 0, 1, 1)
	e.Opacity = 1.4
	op := Layout(tableau.Frame{"a": e}, 0, 0)[0]
	if op.Alpha != 1 {
		t.Errorf("alpha = %v, want 1", op.Alpha)
	}
}

func TestLayoutParentCycle(t *testing.T) {
	frame := tableau.Frame{
		"a": box("a", "b", 0, 0, 1, 1),
		"b": box("b", "a", 0, 0, 1, 1),
	}
	if ops := Layout(frame, 0, 0); len(ops) != 2 {
		t.Fatalf("ops = %d, want 2", len(ops))
	}
}

func TestHitTest(t *testing.T) {
	frame := tableau.Frame{
		"card":  box("card", "", 0, 0, 200, 100),
		"badge": box("badge", "card", 180, 0, 20, 20),
	}
	ops := Layout(frame, 0, 0)

	tests := []struct {
		x, y float64
		want string
	}{
		{50, 50, "card"},
		{190, 10, "badge"},
		{250, 50, ""},
	}
	for _, tt := range tests {
		if got := HitTest(ops, tt.x, tt.y); got != tt.want {
			t.Errorf("HitTest(%v,%v) = %q, want %q", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestHitTestRotated(t *testing.T) {
	e := box("bar", "", 0, 45, 100, 10)
	e.Rotation = 90
	ops := Layout(tableau.Frame{"bar": e}, 0, 0)

	if got := HitTest(ops, 50, 10); got != "bar" {
		t.Errorf("point on rotated bar = %q, want bar", got)
	}
	if got := HitTest(ops, 10, 50); got != "" {
		t.Errorf("point off rotated bar = %q, want none", got)
	}
}

func TestHitTestSkipsCollapsedScale(t *testing.T) {
	e := box("gone", "", 0, 0, 10, 10)
	e.Scale = 0
	ops := Layout(tableau.Frame{"gone": e}, 0, 0)
	if got := HitTest(ops, 5, 5); got != "" {
		t.Errorf("HitTest = %q, want none", got)
	}
}

func TestFillForIsStable(t *testing.T) {
	if fillFor("card") != fillFor("card") {
		t.Fatal("fill colour changed between calls")
	}
}
