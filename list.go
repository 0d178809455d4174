package glide

import (
	"fmt"
	"image"
	"image/draw"
)

const (
	ListMinWidth     = 100 // narrowest list
	ListPadding      = 8   // above, below and left of each row's text
	ListMinRowHeight = 32
	ListScrollbar    = 4 // width of the scroll position bar

	// MaxIgnoredMoves is the number of moves after a press that are ignored
	// before the press turns into a drag.
	MaxIgnoredMoves = 1
)

// Option is a row of a Dropdown or List.
type Option struct {
	Label string
	Value string
}

// TapOption is sent to OnTapOption handlers when a row is tapped.
type TapOption struct {
	Index int
	Label string
	Value string
}

// List is a popup showing options as rows, of which a part is visible in its
// viewport. Dragging scrolls it, tapping a row selects it.
// The rows are drawn to an off-screen image once, and redrawn only when the
// rows change.
type List struct {
	Font        *Font
	Background  Color
	FontColor   Color
	LineColor   Color // between rows
	BorderColor Color
	BarColor    Color

	options   []Option
	r         image.Rectangle // viewport, in screen coordinates
	rowHeight int
	visible   int
	offset    int // scroll offset in pixels

	img        *image.RGBA
	imgRows    int
	imgWidth   int
	renders    int
	tapOptions handlers[func(TapOption) Event]
	closes     handlers[func() Event]

	// touch session
	pressY      int
	pressOffset int
	pressed     bool
	moving      bool
	ignored     int
}

var _ UI = &List{}

// NewList returns a list for options, centered on a screen of the given size.
// Its width is clamped to ListMinWidth and the screen width. The viewport
// shows one row less than fits on the screen.
func NewList(options []Option, width int, screen image.Point, font *Font) (*List, error) {
	if screen.X <= 0 || screen.Y <= 0 {
		return nil, fmt.Errorf("%w: screen size %v", ErrArgument, screen)
	}
	if font == nil {
		return nil, fmt.Errorf("%w: nil font", ErrArgument)
	}
	ui := &List{
		Font:        font,
		Background:  White,
		FontColor:   Black,
		LineColor:   0xddddddff,
		BorderColor: 0x666666ff,
		BarColor:    0xbbbbbbff,
		options:     options,
	}
	ui.rowHeight = maximum(font.Height()+2*ListPadding, ListMinRowHeight)
	ui.visible = maximum(0, screen.Y/ui.rowHeight-1)
	width = clamp(width, ListMinWidth, screen.X)
	height := ui.visible * ui.rowHeight
	p := image.Pt((screen.X-width)/2, (screen.Y-height)/2)
	ui.r = image.Rectangle{p, p.Add(image.Pt(width, height))}
	return ui, nil
}

// Rect is the viewport on the screen.
func (ui *List) Rect() image.Rectangle {
	return ui.r
}

func (ui *List) RowHeight() int {
	return ui.rowHeight
}

func (ui *List) VisibleRows() int {
	return ui.visible
}

func (ui *List) Options() []Option {
	return ui.options
}

// SetOptions replaces the rows. The viewport stays as it is.
func (ui *List) SetOptions(options []Option) {
	ui.options = options
	ui.offset = clamp(ui.offset, 0, ui.maxOffset())
}

func (ui *List) Offset() int {
	return ui.offset
}

// ScrollTo sets the scroll offset, clamped to the content. It returns whether the offset changed.
func (ui *List) ScrollTo(offset int) bool {
	o := ui.offset
	ui.offset = clamp(offset, 0, ui.maxOffset())
	return o != ui.offset
}

func (ui *List) maxOffset() int {
	return maximum(0, len(ui.options)*ui.rowHeight-ui.r.Dy())
}

// OnTapOption registers fn to be called when a row is tapped.
func (ui *List) OnTapOption(fn func(TapOption) Event) *Subscription {
	return ui.tapOptions.add(fn)
}

// OnClose registers fn to be called when a tap starts outside the list.
func (ui *List) OnClose(fn func() Event) *Subscription {
	return ui.closes.add(fn)
}

// Close releases the off-screen image. The list can still be drawn later.
func (ui *List) Close() {
	ui.img = nil
	ui.imgRows = 0
	ui.imgWidth = 0
}

func (ui *List) render() {
	width := ui.r.Dx()
	ui.img = image.NewRGBA(image.Rect(0, 0, width, len(ui.options)*ui.rowHeight))
	fill(ui.img, ui.img.Rect, ui.Background)
	for i, o := range ui.options {
		r := image.Rect(0, i*ui.rowHeight, width, (i+1)*ui.rowHeight)
		text := r
		text.Min.X += ListPadding
		text.Max.X -= ListPadding
		drawText(ui.img, text, ui.Font, ui.FontColor, o.Label, HalignLeft, ValignMiddle)
		if i > 0 {
			fill(ui.img, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+1), ui.LineColor)
		}
	}
	ui.imgRows = len(ui.options)
	ui.imgWidth = width
	ui.renders++
}

func (ui *List) Draw(w *Window, self *Kid, img *image.RGBA, orig image.Point, force bool) {
	w.debugDraw("List", self)
	if len(ui.options) == 0 {
		return
	}
	if ui.img == nil || ui.imgRows != len(ui.options) || ui.imgWidth != ui.r.Dx() {
		ui.render()
	}
	ui.offset = clamp(ui.offset, 0, ui.maxOffset())

	r := rect(ui.r.Size()).Add(orig)
	if ui.img.Rect.Dy() < r.Dy() {
		fill(img, r, ui.Background)
	}
	draw.Draw(img, r, ui.img, image.Pt(0, ui.offset), draw.Src)

	if h := ui.img.Rect.Dy(); h > r.Dy() && !r.Empty() {
		barH := maximum(ListScrollbar, r.Dy()*r.Dy()/h)
		barY := r.Min.Y + (r.Dy()-barH)*ui.offset/ui.maxOffset()
		fill(img, image.Rect(r.Max.X-ListScrollbar-1, barY, r.Max.X-1, barY+barH), ui.BarColor)
	}
	drawBorder(img, r, 1, ui.BorderColor)
}

func (ui *List) reset() {
	ui.pressed = false
	ui.moving = false
	ui.ignored = 0
}

// Touch runs the gesture state machine. A press inside followed by a release
// inside, without a drag, taps the row under the release. A release of a
// press that started outside closes the list.
func (ui *List) Touch(w *Window, self *Kid, t Touch) (r Result) {
	r.Hit = ui
	r.Consumed = true
	in := t.Point.In(rect(ui.r.Size()))

	switch t.Phase {
	case TouchDown:
		ui.reset()
		if in {
			ui.pressY = t.Y
			ui.pressOffset = ui.offset
			ui.pressed = true
		}
	case TouchMove:
		if !ui.pressed {
			return
		}
		if !ui.moving {
			if ui.ignored < MaxIgnoredMoves {
				ui.ignored++
			} else {
				ui.moving = true
			}
			return
		}
		if ui.ScrollTo(ui.pressOffset - (t.Y - ui.pressY)) {
			self.Draw = Dirty
		}
	case TouchUp:
		pressed, moving := ui.pressed, ui.moving
		ui.reset()
		if !pressed {
			for _, fn := range ui.closes.list() {
				propagateEvent(self, &r, fn())
			}
			return
		}
		if !in || moving || ui.rowHeight == 0 {
			return
		}
		index := floorDiv(ui.offset+t.Y, ui.rowHeight)
		if index < 0 || index >= len(ui.options) {
			return
		}
		o := ui.options[index]
		tap := TapOption{index, o.Label, o.Value}
		for _, fn := range ui.tapOptions.list() {
			propagateEvent(self, &r, fn(tap))
		}
	case TouchCancel:
		ui.reset()
	}
	return
}

func (ui *List) Mark(self *Kid, o UI) (marked bool) {
	return self.Mark(o)
}

func (ui *List) Print(self *Kid, indent int) {
	PrintUI(fmt.Sprintf("List rows=%d offset=%d", len(ui.options), ui.offset), self, indent)
}
