package glide

import (
	"errors"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testResources has only the fixed 7x13 font, for predictable sizes.
func testResources() *Resources {
	return &Resources{
		Fonts:   []*Font{basicFont},
		Bitmaps: map[string]image.Image{},
	}
}

func newTestGlide(t *testing.T, width, height int, fit bool) (*Glide, *MemDisplay) {
	t.Helper()
	d := NewMemDisplay(width, height)
	g, err := New(d, &Options{FitToScreen: fit, Fonts: testResources()})
	require.NoError(t, err)
	t.Cleanup(g.Close)
	return g, d
}

// recorder records the touches it receives.
type recorder struct {
	touches []Touch
}

func (ui *recorder) Draw(w *Window, self *Kid, img *image.RGBA, orig image.Point, force bool) {
}

func (ui *recorder) Touch(w *Window, self *Kid, t Touch) (r Result) {
	ui.touches = append(ui.touches, t)
	r.Hit = ui
	r.Consumed = true
	return
}

func (ui *recorder) Mark(self *Kid, o UI) (marked bool) {
	return self.Mark(o)
}

func (ui *recorder) Print(self *Kid, indent int) {
	PrintUI("recorder", self, indent)
}

func (ui *recorder) phases() (l []Phase) {
	for _, t := range ui.touches {
		l = append(l, t.Phase)
	}
	return
}

// solid fills its area and counts draws.
type solid struct {
	Color Color
	draws int
}

func (ui *solid) Draw(w *Window, self *Kid, img *image.RGBA, orig image.Point, force bool) {
	ui.draws++
	fill(img, rect(self.R.Size()).Add(orig), ui.Color)
}

func (ui *solid) Touch(w *Window, self *Kid, t Touch) (r Result) {
	return
}

func (ui *solid) Mark(self *Kid, o UI) (marked bool) {
	return self.Mark(o)
}

func (ui *solid) Print(self *Kid, indent int) {
	PrintUI("solid", self, indent)
}

func TestNew(t *testing.T) {
	_, err := New(nil, nil)
	assert.True(t, errors.Is(err, ErrArgument))

	_, err = New(NewMemDisplay(0, 10), &Options{Fonts: testResources()})
	assert.True(t, errors.Is(err, ErrArgument))

	g, _ := newTestGlide(t, 480, 272, false)
	assert.Equal(t, image.Pt(480, 272), g.ScreenSize())
	assert.Equal(t, White, g.Background)
	assert.True(t, errors.Is(g.SetScreenSize(image.Pt(-1, 5)), ErrArgument))
	require.NoError(t, g.SetScreenSize(image.Pt(320, 240)))
	assert.Equal(t, image.Pt(320, 240), g.ScreenSize())
}

func TestSetScreenSizeFit(t *testing.T) {
	g, d := newTestGlide(t, 100, 100, true)
	w := NewWindow("w", 100, 100, White)
	g.SetWindow(w)
	require.NoError(t, g.SetScreenSize(image.Pt(200, 150)))
	assert.Equal(t, image.Pt(200, 150), w.Size())
	assert.True(t, w.Dirty())

	g.FitToScreen = false
	require.NoError(t, g.SetScreenSize(image.Pt(300, 300)))
	assert.Equal(t, image.Pt(200, 150), w.Size())
	g.Render()
	assert.Equal(t, 2, d.Flushes)
}

func TestRenderCoalesced(t *testing.T) {
	g, d := newTestGlide(t, 100, 100, false)
	w := NewWindow("w", 100, 100, 0x112233ff)
	a := &solid{Color: 0xff0000ff}
	b := &solid{Color: 0x00ff00ff}
	require.NoError(t, w.Canvas.Add(NewKid("a", image.Rect(0, 0, 10, 10), a)))
	require.NoError(t, w.Canvas.Add(NewKid("b", image.Rect(50, 50, 60, 60), b)))

	g.SetWindow(w)
	assert.Equal(t, 1, d.Flushes)
	assert.Equal(t, 1, a.draws)
	assert.Equal(t, Color(0x112233ff), colorAt(d.Image, 30, 30))
	assert.Equal(t, Color(0xff0000ff), colorAt(d.Image, 5, 5))

	g.Render()
	assert.Equal(t, 1, d.Flushes, "nothing changed")

	g.MarkDraw(a)
	g.MarkDraw(b)
	g.MarkDraw(a)
	g.Render()
	assert.Equal(t, 2, d.Flushes, "marks coalesced into one flush")
	assert.Equal(t, 2, a.draws)
	assert.Equal(t, 2, b.draws)

	g.Render()
	assert.Equal(t, 2, d.Flushes)
}

func TestRenderPartial(t *testing.T) {
	g, d := newTestGlide(t, 100, 100, false)
	w := NewWindow("w", 100, 100, White)
	a := &solid{Color: 0xff0000ff}
	b := &solid{Color: 0x0000ffff}
	far := &solid{Color: Black}
	require.NoError(t, w.Canvas.Add(NewKid("a", image.Rect(0, 0, 20, 20), a)))
	require.NoError(t, w.Canvas.Add(NewKid("b", image.Rect(10, 10, 30, 30), b)))
	require.NoError(t, w.Canvas.Add(NewKid("far", image.Rect(80, 80, 90, 90), far)))
	g.SetWindow(w)

	// redrawing a also redraws b on top of it, but not far
	g.MarkDraw(a)
	g.Render()
	assert.Equal(t, 2, a.draws)
	assert.Equal(t, 2, b.draws)
	assert.Equal(t, 1, far.draws)
	assert.Equal(t, Color(0x0000ffff), colorAt(d.Image, 15, 15), "b stays on top")

	w.ChildByName("b").Hidden = true
	g.MarkDraw(b)
	g.Render()
	assert.Equal(t, Color(0xff0000ff), colorAt(d.Image, 15, 15), "hidden b no longer drawn")
	assert.Equal(t, White, colorAt(d.Image, 25, 25))
}

func TestRenderAlpha(t *testing.T) {
	g, d := newTestGlide(t, 20, 20, false)
	w := NewWindow("w", 20, 20, White)
	k := NewKid("half", image.Rect(0, 0, 10, 10), &solid{Color: Black})
	k.Alpha = 128
	require.NoError(t, w.Canvas.Add(k))
	g.SetWindow(w)

	c := d.Image.RGBAAt(5, 5)
	assert.InDelta(t, 127, int(c.R), 2)
	assert.Equal(t, uint8(0xff), c.A)
	assert.Equal(t, White, colorAt(d.Image, 15, 15))
}

func TestInput(t *testing.T) {
	g, d := newTestGlide(t, 100, 100, false)
	w := NewWindow("w", 100, 100, White)
	s := &solid{Color: Black}
	require.NoError(t, w.Canvas.Add(NewKid("s", image.Rect(0, 0, 10, 10), s)))
	g.SetWindow(w)

	ran := false
	g.Input(Input{Type: InputFunc, Func: func() {
		ran = true
		g.MarkDraw(s)
	}})
	assert.True(t, ran)
	assert.Equal(t, 2, d.Flushes, "render after func")

	g.Input(Input{Type: InputError, Error: errors.New("test")})
	assert.Equal(t, 2, d.Flushes)

	assert.Equal(t, w, g.Window())
	assert.NotNil(t, g.ChildByName("s"))
	assert.Nil(t, g.ChildByName("missing"))
}

func TestCall(t *testing.T) {
	g, _ := newTestGlide(t, 10, 10, false)
	done := make(chan struct{})
	g.Call <- func() { close(done) }
	e := <-g.Inputs
	require.Equal(t, InputFunc, e.Type)
	g.Input(e)
	<-done
}

func colorAt(img *image.RGBA, x, y int) Color {
	c := img.RGBAAt(x, y)
	return Color(uint32(c.R)<<24 | uint32(c.G)<<16 | uint32(c.B)<<8 | uint32(c.A))
}
