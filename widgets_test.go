package glide

import (
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func showKid(t *testing.T, ui UI, r image.Rectangle) (*Glide, *Window, *Kid) {
	t.Helper()
	g, _ := newTestGlide(t, 200, 200, false)
	w := NewWindow("w", 200, 200, White)
	k := NewKid("k", r, ui)
	require.NoError(t, w.Canvas.Add(k))
	g.SetWindow(w)
	return g, w, k
}

func TestButtonClick(t *testing.T) {
	b := NewButton("ok")
	clicks := 0
	b.Click = func() Event {
		clicks++
		return Event{}
	}
	g, _, k := showKid(t, b, image.Rect(10, 10, 90, 40))

	g.Touch(Touch{Point: image.Pt(20, 20), Phase: TouchDown})
	assert.True(t, b.pressed)
	assert.Equal(t, Clean, k.Draw, "pressed state drawn")
	g.Touch(Touch{Point: image.Pt(25, 20), Phase: TouchMove})
	g.Touch(Touch{Point: image.Pt(25, 20), Phase: TouchUp})
	assert.Equal(t, 1, clicks)
	assert.False(t, b.pressed)

	// released outside
	g.Touch(Touch{Point: image.Pt(20, 20), Phase: TouchDown})
	g.Touch(Touch{Point: image.Pt(150, 150), Phase: TouchUp})
	assert.Equal(t, 1, clicks)

	// cancelled
	g.Touch(Touch{Point: image.Pt(20, 20), Phase: TouchDown})
	g.Touch(Touch{Phase: TouchCancel})
	assert.False(t, b.pressed)
	g.Touch(Touch{Point: image.Pt(20, 20), Phase: TouchUp})
	assert.Equal(t, 1, clicks)

	k.Disabled = true
	gtap(g, image.Pt(20, 20))
	assert.Equal(t, 1, clicks)
}

func TestButtonPressedDraw(t *testing.T) {
	b := NewButton("")
	b.Background = White
	b.TintColor = Black
	b.TintAmount = 128
	g, _, _ := showKid(t, b, image.Rect(0, 0, 100, 40))
	d := g.Display.(*MemDisplay)

	assert.Equal(t, White, colorAt(d.Image, 50, 20))
	g.Touch(Touch{Point: image.Pt(50, 20), Phase: TouchDown})
	assert.Equal(t, RGB(0x7f, 0x7f, 0x7f), colorAt(d.Image, 50, 20))
	g.Touch(Touch{Point: image.Pt(50, 20), Phase: TouchUp})
	assert.Equal(t, White, colorAt(d.Image, 50, 20))
}

func TestCheckbox(t *testing.T) {
	cb := NewCheckbox(false)
	var states []bool
	cb.Changed = func(checked bool) Event {
		states = append(states, checked)
		return Event{}
	}
	g, _, _ := showKid(t, cb, image.Rect(0, 0, CheckboxSize, CheckboxSize))
	gtap(g, image.Pt(5, 5))
	gtap(g, image.Pt(5, 5))
	assert.Equal(t, []bool{true, false}, states)
	assert.False(t, cb.Checked)
}

func TestRadiobuttonGroup(t *testing.T) {
	g, _ := newTestGlide(t, 200, 200, false)
	w := NewWindow("w", 200, 200, White)
	a := NewRadiobutton("a")
	b := NewRadiobutton("b")
	a.Group = []*Radiobutton{a, b}
	b.Group = a.Group
	a.Checked = true
	var changes []string
	changed := func(v string) Event {
		changes = append(changes, v)
		return Event{}
	}
	a.Changed = changed
	b.Changed = changed
	ka := NewKid("a", image.Rect(0, 0, 32, 32), a)
	kb := NewKid("b", image.Rect(50, 0, 82, 32), b)
	require.NoError(t, w.Canvas.Add(ka))
	require.NoError(t, w.Canvas.Add(kb))
	g.SetWindow(w)

	gtap(g, image.Pt(60, 10))
	assert.True(t, b.Checked)
	assert.False(t, a.Checked)
	assert.Equal(t, Clean, ka.Draw, "unchecked radiobutton redrawn")

	gtap(g, image.Pt(60, 10))
	assert.Equal(t, []string{"b"}, changes, "no change for a checked radiobutton")

	gtap(g, image.Pt(10, 10))
	assert.Equal(t, []string{"b", "a"}, changes)
	assert.False(t, b.Checked)
}

func TestTextBlock(t *testing.T) {
	tb := NewTextBlock("hello")
	g, _, _ := showKid(t, tb, image.Rect(0, 0, 100, 20))
	r := g.Window().Touch(Touch{Point: image.Pt(5, 5), Phase: TouchDown})
	assert.False(t, r.Consumed, "without Click, touches are not consumed")

	clicks := 0
	tb.Click = func() Event {
		clicks++
		return Event{}
	}
	gtap(g, image.Pt(5, 5))
	assert.Equal(t, 1, clicks)
}

func TestWrap(t *testing.T) {
	f := basicFont // 7 pixels per glyph
	assert.Equal(t, []string{"abc"}, wrap(f, "abc", 100))
	assert.Equal(t, []string{"ab", "cd", "e"}, wrap(f, "abcde", 14))
	assert.Equal(t, []string{"a", "b"}, wrap(f, "ab", 1), "at least one glyph per line")
	assert.Equal(t, []string{"ab", "", "c"}, wrap(f, "ab\n\nc", 100))
	assert.Equal(t, []string{""}, wrap(f, "", 100))
}

func TestTextBox(t *testing.T) {
	tb := NewTextBox("héllo")
	assert.Equal(t, "héllo", tb.shown())
	pw := NewPasswordBox("héllo")
	assert.Equal(t, "*****", pw.shown())

	taps := 0
	pw.Tap = func() Event {
		taps++
		pw.Text = "changed"
		return Event{NeedDraw: true}
	}
	g, _, k := showKid(t, pw, image.Rect(0, 0, 100, 30))
	gtap(g, image.Pt(5, 5))
	assert.Equal(t, 1, taps)
	assert.Equal(t, Clean, k.Draw)
	assert.Equal(t, strings.Repeat("*", 7), pw.shown())
}

func TestProgressBar(t *testing.T) {
	r := image.Rect(0, 0, 100, 50)
	pb := NewProgressBar(25, 100)
	assert.Equal(t, image.Rect(0, 0, 25, 50), pb.bar(r))
	pb.Direction = DirectionLeft
	assert.Equal(t, image.Rect(75, 0, 100, 50), pb.bar(r))
	pb.Direction = DirectionUp
	assert.Equal(t, image.Rect(0, 38, 100, 50), pb.bar(r))
	pb.Direction = DirectionDown
	assert.Equal(t, image.Rect(0, 0, 100, 12), pb.bar(r))

	pb.Direction = DirectionRight
	pb.Value = 150
	assert.Equal(t, r, pb.bar(r), "clamped")
	pb.Value = -5
	assert.True(t, pb.bar(r).Empty())
	pb.MaxValue = 0
	assert.True(t, pb.bar(r).Empty())
}

func TestImageScale(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 40, 20))
	for y := 0; y < 20; y++ {
		for x := 0; x < 40; x++ {
			src.Set(x, y, color.RGBA{0xff, 0, 0, 0xff})
		}
	}
	ui := &Image{Image: src}
	assert.Equal(t, image.Pt(20, 10), ui.scale(image.Pt(20, 20)).Bounds().Size(), "aspect kept")
	first := ui.scale(image.Pt(20, 20))
	assert.Equal(t, first, ui.scale(image.Pt(20, 20)), "cached")
	ui.Stretch = true
	assert.Equal(t, image.Pt(20, 20), ui.scale(image.Pt(20, 20)).Bounds().Size())
	assert.Equal(t, src, ui.scale(image.Pt(40, 20)), "same size, not scaled")

	ui.Stretch = false
	g, _, _ := showKid(t, ui, image.Rect(0, 0, 20, 20))
	d := g.Display.(*MemDisplay)
	assert.Equal(t, White, colorAt(d.Image, 10, 2), "centered, background above")
	assert.Equal(t, Color(0xff0000ff), colorAt(d.Image, 10, 10))
}

// TestDrawAll draws each widget with the default fonts, pressed and not,
// partly off-screen.
func TestDrawAll(t *testing.T) {
	fonts, err := DefaultResources()
	require.NoError(t, err)
	d := NewMemDisplay(120, 100)
	g, err := New(d, &Options{Fonts: fonts})
	require.NoError(t, err)
	defer g.Close()

	dropdown := NewDropdown("choose", options(3))
	checked := NewCheckbox(true)
	radio := NewRadiobutton("r")
	radio.Checked = true
	uis := []UI{
		NewButton("Reset\nProgress"),
		checked,
		radio,
		dropdown,
		NewTextBlock("a longer text that wraps"),
		NewPasswordBox("secret"),
		NewProgressBar(50, 100),
		&Image{Image: image.NewRGBA(image.Rect(0, 0, 8, 8))},
	}
	for _, ui := range uis {
		w := NewWindow("w", 120, 100, White)
		require.NoError(t, w.Canvas.Add(NewKid("in", image.Rect(10, 10, 90, 50), ui)))
		require.NoError(t, w.Canvas.Add(NewKid("out", image.Rect(100, 80, 180, 120), ui)))
		g.SetWindow(w)
		g.Touch(Touch{Point: image.Pt(20, 20), Phase: TouchDown})
		g.Touch(Touch{Phase: TouchCancel})
	}
	assert.GreaterOrEqual(t, d.Flushes, len(uis))
}
