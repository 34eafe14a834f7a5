package preview

import (
	"hash/fnv"
	"image/color"
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/tableau"
)

// DrawOp is one element ready to paint. GeoM maps the unit square onto the
// element's screen rectangle, rotation and scale included.
type DrawOp struct {
	ID    string
	Depth int
	GeoM  ebiten.GeoM
	Alpha float32
	Fill  color.RGBA
}

var palette = []color.RGBA{
	{R: 0x4c, G: 0x9a, B: 0xff, A: 0xff},
	{R: 0xff, G: 0x8a, B: 0x3d, A: 0xff},
	{R: 0x5c, G: 0xd6, B: 0x8a, A: 0xff},
	{R: 0xe8, G: 0x5d, B: 0x9c, A: 0xff},
	{R: 0xf2, G: 0xc9, B: 0x4c, A: 0xff},
	{R: 0x9b, G: 0x7b, B: 0xf0, A: 0xff},
}

// fillFor picks a stable palette colour for an element id.
func fillFor(id string) color.RGBA {
	h := fnv.New32a()
	_, _ = h.Write([]byte(id))
	return palette[h.Sum32()%uint32(len(palette))]
}

// Layout turns a frame into draw operations in painter order: shallower
// elements first, ties broken by id. Hidden and zero-sized elements are
// left out. originX and originY place the artboard on screen.
func Layout(frame tableau.Frame, originX, originY float64) []DrawOp {
	ops := make([]DrawOp, 0, len(frame))
	for id, e := range frame {
		if !e.Visible || e.Width <= 0 || e.Height <= 0 {
			continue
		}
		var g ebiten.GeoM
		g.Scale(e.Width, e.Height)
		g.Translate(-e.Width/2, -e.Height/2)
		g.Scale(e.Scale, e.Scale)
		g.Rotate(e.Rotation * math.Pi / 180)
		g.Translate(originX+e.X+e.TranslateX+e.Width/2, originY+e.Y+e.TranslateY+e.Height/2)
		ops = append(ops, DrawOp{
			ID:    id,
			Depth: depthOf(frame, id),
			GeoM:  g,
			Alpha: float32(math.Max(0, math.Min(1, e.Opacity))),
			Fill:  fillFor(id),
		})
	}
	sort.Slice(ops, func(i, j int) bool {
		if ops[i].Depth != ops[j].Depth {
			return ops[i].Depth < ops[j].Depth
		}
		return ops[i].ID < ops[j].ID
	})
	return ops
}

// depthOf counts ancestors present in the frame. Cycles stop the walk.
func depthOf(frame tableau.Frame, id string) int {
	depth := 0
	for cur := frame[id].ParentID; cur != "" && depth < len(frame); depth++ {
		parent, ok := frame[cur]
		if !ok {
			break
		}
		cur = parent.ParentID
	}
	return depth
}

var whitePixel *ebiten.Image

func ensureWhitePixel() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(color.White)
	}
	return whitePixel
}

// Render paints ops onto dst in order.
func Render(dst *ebiten.Image, ops []DrawOp) {
	src := ensureWhitePixel()
	for i := range ops {
		op := &ops[i]
		if op.Alpha <= 0 {
			continue
		}
		var opts ebiten.DrawImageOptions
		opts.GeoM = op.GeoM
		opts.ColorScale.ScaleWithColor(op.Fill)
		opts.ColorScale.ScaleAlpha(op.Alpha)
		dst.DrawImage(src, &opts)
	}
}

// HitTest returns the id of the topmost op containing the screen point, or
// "" when nothing is hit. Transparent elements still receive the pointer.
func HitTest(ops []DrawOp, x, y float64) string {
	for i := len(ops) - 1; i >= 0; i-- {
		g := ops[i].GeoM
		if !g.IsInvertible() {
			continue
		}
		g.Invert()
		lx, ly := g.Apply(x, y)
		if lx >= 0 && lx <= 1 && ly >= 0 && ly <= 1 {
			return ops[i].ID
		}
	}
	return ""
}
