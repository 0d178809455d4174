package glide

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"image"
	"io"
	"strings"
)

// A builder makes a kid for an element. It consumes the element up to and
// including its end tag.
type builder func(l *loader, e xml.StartElement) *Kid

var (
	builders map[string]builder

	// recognized, but skipped with all they contain
	unsupported = map[string]bool{
		"DataGrid": true,
		"Slider":   true,
	}
)

// containerTag is accepted within a Window, its children are added to the window.
const containerTag = "Canvas"

func init() {
	builders = map[string]builder{
		"Button":      buildButton,
		"CheckBox":    buildCheckBox,
		"Dropdown":    buildDropdown,
		"Image":       buildImage,
		"PasswordBox": buildPasswordBox,
		"ProgressBar": buildProgressBar,
		"RadioButton": buildRadioButton,
		"TextBlock":   buildTextBlock,
		"TextBox":     buildTextBox,
	}
	for name, b := range builders {
		if b == nil {
			panic("glide: nil builder for " + name)
		}
		if unsupported[name] || name == containerTag {
			panic("glide: builder for unsupported element " + name)
		}
	}
	if unsupported[containerTag] {
		panic("glide: container element marked unsupported")
	}
}

// LoadWindow loads a window from markup in src. Newlines, carriage returns and
// tabs are removed from src first.
// The window is not shown, see SetWindow.
func (g *Glide) LoadWindow(src string) (*Window, error) {
	src = strings.NewReplacer("\n", "", "\r", "", "\t", "").Replace(src)
	return g.LoadWindowBytes([]byte(src))
}

// LoadWindowReader reads markup from r and loads it like LoadWindow.
func (g *Glide) LoadWindowReader(r io.Reader) (*Window, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading markup: %w", err)
	}
	return g.LoadWindow(string(buf))
}

// LoadWindowBytes loads a window from markup. The markup has a Glide element
// with a Window element, holding the widgets. When FitToScreen is set, a
// window smaller than the screen is made the size of the screen.
// On error, no window is returned.
func (g *Glide) LoadWindowBytes(buf []byte) (w *Window, err error) {
	check, handle := errorHandler(func(xerr error) {
		w = nil
		err = xerr
	})
	defer handle()

	l := &loader{g: g, check: check, groups: map[string][]*Radiobutton{}}
	w = l.load(buf)
	return w, nil
}

type loader struct {
	g      *Glide
	r      *reader
	check  func(error, string)
	groups map[string][]*Radiobutton
	radios []*Radiobutton
}

func (l *loader) schema(tag, msg string) {
	l.check(&SchemaError{Tag: tag, Msg: msg}, "markup")
}

func (l *loader) load(buf []byte) *Window {
	l.r = &reader{xml.NewDecoder(bytes.NewReader(buf)), l.check}
	if _, ok := l.r.seek("Glide"); !ok {
		l.schema("", "Glide not detected")
	}

	// start over, the window may be anywhere below
	l.r = &reader{xml.NewDecoder(bytes.NewReader(buf)), l.check}
	e, ok := l.r.seek("Window")
	if !ok {
		l.schema("", "missing Window")
	}
	a := l.attrs(e)
	width := a.int("Width", 0)
	height := a.int("Height", 0)
	if l.g.FitToScreen {
		screen := l.g.ScreenSize()
		if width < screen.X || height < screen.Y {
			width, height = screen.X, screen.Y
		}
	}
	w := NewWindow(a.str("Name", ""), width, height, a.color("BackColor", White))
	l.elements(w.Canvas, "Window")

	for _, rb := range l.radios {
		if rb.GroupName == "" {
			rb.Group = []*Radiobutton{rb}
		} else {
			rb.Group = l.groups[rb.GroupName]
		}
	}
	return w
}

// elements adds a kid to c for each element until the end tag of parent.
func (l *loader) elements(c *Canvas, parent string) {
	for {
		switch t := l.r.next().(type) {
		case xml.EndElement:
			// the decoder checks that this ends parent
			return
		case xml.StartElement:
			name := t.Name.Local
			switch {
			case name == containerTag:
				l.elements(c, containerTag)
				continue
			case unsupported[name]:
				l.r.skip()
				continue
			}
			b, ok := builders[name]
			if !ok {
				l.schema(name, "not a valid UI component")
			}
			l.check(c.Add(b(l, t)), name)
		}
	}
}

// reader reads elements from markup, skipping text, comments and other tokens.
type reader struct {
	d     *xml.Decoder
	check func(error, string)
}

func (r *reader) token() (xml.Token, bool) {
	t, err := r.d.Token()
	if err == io.EOF {
		return nil, false
	}
	if err != nil {
		var serr *xml.SyntaxError
		if errors.As(err, &serr) {
			err = fmt.Errorf("%w: %s", ErrSchema, err)
		}
		r.check(err, "parsing markup")
	}
	return t, true
}

// seek returns the next element named name.
func (r *reader) seek(name string) (xml.StartElement, bool) {
	for {
		t, ok := r.token()
		if !ok {
			return xml.StartElement{}, false
		}
		if e, ok := t.(xml.StartElement); ok && e.Name.Local == name {
			return e, true
		}
	}
}

// next returns the next start or end element.
func (r *reader) next() xml.Token {
	for {
		t, ok := r.token()
		if !ok {
			r.check(&SchemaError{Msg: "unexpected end of markup"}, "markup")
		}
		switch t := t.(type) {
		case xml.StartElement:
			return t.Copy()
		case xml.EndElement:
			return t
		}
	}
}

// skip consumes the rest of the element last returned.
func (r *reader) skip() {
	r.check(r.d.Skip(), "skipping element")
}

// attrs gives typed access to the attributes of an element.
type attrs struct {
	l     *loader
	tag   string
	attrs []xml.Attr
}

func (l *loader) attrs(e xml.StartElement) attrs {
	return attrs{l, e.Name.Local, e.Attr}
}

func (a attrs) get(name string) (string, bool) {
	for _, x := range a.attrs {
		if x.Name.Local == name {
			return x.Value, true
		}
	}
	return "", false
}

func (a attrs) checkAttr(err error, name string) {
	a.l.check(err, fmt.Sprintf("%s attribute %s", a.tag, name))
}

func (a attrs) str(name, def string) string {
	if s, ok := a.get(name); ok {
		return s
	}
	return def
}

func (a attrs) int(name string, def int) int {
	s, ok := a.get(name)
	if !ok {
		return def
	}
	v, err := ToInt(s)
	a.checkAttr(err, name)
	return v
}

func (a attrs) uint16(name string, def uint16) uint16 {
	s, ok := a.get(name)
	if !ok {
		return def
	}
	v, err := ToUint16(s)
	a.checkAttr(err, name)
	return v
}

func (a attrs) bool(name string, def bool) bool {
	s, ok := a.get(name)
	return ToBool(s, ok, def)
}

func (a attrs) color(name string, def Color) Color {
	s, ok := a.get(name)
	if !ok {
		return def
	}
	c, err := ToColor(s)
	a.checkAttr(err, name)
	return c
}

// font returns the named font, or the default font if absent.
func (a attrs) font(name string) *Font {
	s, ok := a.get(name)
	if !ok {
		return a.l.g.Fonts.Default()
	}
	f, err := a.l.g.Fonts.Font(s)
	a.checkAttr(err, name)
	return f
}

func (a attrs) halign(name string, def Halign) Halign {
	s, ok := a.get(name)
	if !ok {
		return def
	}
	v, err := ToHalign(s)
	a.checkAttr(err, name)
	return v
}

func (a attrs) valign(name string, def Valign) Valign {
	s, ok := a.get(name)
	if !ok {
		return def
	}
	v, err := ToValign(s)
	a.checkAttr(err, name)
	return v
}

// kid reads the attributes common to all widgets. Without Width or Height,
// the natural size is used.
func (a attrs) kid(ui UI, natural image.Point) *Kid {
	x := a.int("X", 0)
	y := a.int("Y", 0)
	width := a.int("Width", natural.X)
	height := a.int("Height", natural.Y)
	if width < 0 || height < 0 {
		a.checkAttr(fmt.Errorf("%w: negative size %dx%d", ErrFormat, width, height), "Width/Height")
	}
	k := NewKid(a.str("Name", ""), image.Rect(x, y, x+width, y+height), ui)
	k.Alpha = uint8(minimum(int(a.uint16("Alpha", 255)), 255))
	k.Hidden = !a.bool("Visible", true)
	k.Disabled = !a.bool("Enabled", true)
	return k
}

func buildButton(l *loader, e xml.StartElement) *Kid {
	a := l.attrs(e)
	ui := NewButton(unescapeText(a.str("Text", "")))
	ui.Font = a.font("Font")
	ui.FontColor = a.color("FontColor", ui.FontColor)
	ui.DisabledFontColor = a.color("DisabledFontColor", ui.DisabledFontColor)
	ui.TintColor = a.color("TintColor", ui.TintColor)
	ui.TintAmount = int(a.uint16("TintAmount", uint16(ui.TintAmount)))
	k := a.kid(ui, image.ZP)
	l.r.skip()
	return k
}

func buildCheckBox(l *loader, e xml.StartElement) *Kid {
	a := l.attrs(e)
	ui := NewCheckbox(a.bool("Checked", false))
	k := a.kid(ui, pt(CheckboxSize))
	l.r.skip()
	return k
}

func buildDropdown(l *loader, e xml.StartElement) *Kid {
	a := l.attrs(e)
	ui := NewDropdown(a.str("Text", ""), nil)
	ui.Font = a.font("Font")
	ui.FontColor = a.color("FontColor", ui.FontColor)
	k := a.kid(ui, image.ZP)

	for {
		switch t := l.r.next().(type) {
		case xml.EndElement:
			return k
		case xml.StartElement:
			if t.Name.Local != "Option" {
				l.r.skip()
				continue
			}
			var o struct {
				Value string `xml:"Value,attr"`
				Label string `xml:",chardata"`
			}
			l.check(l.r.d.DecodeElement(&o, &t), "Dropdown Option")
			ui.Options = append(ui.Options, Option{strings.TrimSpace(o.Label), o.Value})
		}
	}
}

func buildImage(l *loader, e xml.StartElement) *Kid {
	a := l.attrs(e)
	ui := &Image{Stretch: a.bool("Stretch", false)}
	if src, ok := a.get("Src"); ok {
		img, err := l.g.Fonts.Bitmap(src)
		a.checkAttr(err, "Src")
		ui.Image = img
	}
	k := a.kid(ui, image.ZP)
	l.r.skip()
	return k
}

func buildTextBox(l *loader, e xml.StartElement) *Kid {
	return l.textBox(e, NewTextBox)
}

func buildPasswordBox(l *loader, e xml.StartElement) *Kid {
	return l.textBox(e, NewPasswordBox)
}

func (l *loader) textBox(e xml.StartElement, fn func(string) *TextBox) *Kid {
	a := l.attrs(e)
	ui := fn(a.str("Text", ""))
	ui.Halign = a.halign("TextAlign", HalignLeft)
	ui.Font = a.font("Font")
	ui.FontColor = a.color("FontColor", ui.FontColor)
	k := a.kid(ui, image.ZP)
	l.r.skip()
	return k
}

func buildProgressBar(l *loader, e xml.StartElement) *Kid {
	a := l.attrs(e)
	ui := NewProgressBar(a.int("Value", 0), a.int("MaxValue", 100))
	ui.Direction = ToDirection(a.str("Direction", ""))
	k := a.kid(ui, image.ZP)
	l.r.skip()
	return k
}

func buildRadioButton(l *loader, e xml.StartElement) *Kid {
	a := l.attrs(e)
	ui := NewRadiobutton(a.str("Value", ""))
	ui.Checked = a.bool("Checked", false)
	ui.GroupName = a.str("GroupName", "")
	ui.ShowBackground = a.bool("ShowBackground", ui.ShowBackground)
	ui.Color = a.color("Color", ui.Color)
	ui.OutlineColor = a.color("OutlineColor", ui.OutlineColor)
	ui.SelectedColor = a.color("SelectedColor", ui.SelectedColor)
	ui.SelectedOutlineColor = a.color("SelectedOutlineColor", ui.SelectedOutlineColor)
	k := a.kid(ui, pt(RadiobuttonSize))
	l.radios = append(l.radios, ui)
	if ui.GroupName != "" {
		l.groups[ui.GroupName] = append(l.groups[ui.GroupName], ui)
	}
	l.r.skip()
	return k
}

func buildTextBlock(l *loader, e xml.StartElement) *Kid {
	a := l.attrs(e)
	ui := NewTextBlock(unescapeText(a.str("Text", "")))
	ui.Halign = a.halign("TextAlign", HalignLeft)
	ui.Valign = a.valign("TextVerticalAlign", ui.Valign)
	ui.Font = a.font("Font")
	ui.FontColor = a.color("FontColor", ui.FontColor)
	ui.BackColor = a.color("BackColor", ui.BackColor)
	ui.ShowBackColor = a.bool("ShowBackColor", false)
	k := a.kid(ui, image.ZP)
	l.r.skip()
	return k
}
