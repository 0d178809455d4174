package glide

import (
	"fmt"
	"strconv"
	"strings"
)

type Halign int

const (
	HalignLeft = Halign(iota)
	HalignCenter
	HalignRight
)

type Valign int

const (
	ValignMiddle = Valign(iota)
	ValignTop
	ValignBottom
)

// Alignment is a set of alignment flags, as found in TextAlign attributes.
type Alignment uint8

const (
	AlignLeft Alignment = 1 << iota
	AlignCenter
	AlignRight
	AlignTop
	AlignBottom
)

// Halign returns the horizontal component, left when a has none.
func (a Alignment) Halign() Halign {
	switch {
	case a&AlignCenter != 0:
		return HalignCenter
	case a&AlignRight != 0:
		return HalignRight
	}
	return HalignLeft
}

// Valign returns the vertical component, middle when a has none.
func (a Alignment) Valign() Valign {
	switch {
	case a&AlignTop != 0:
		return ValignTop
	case a&AlignBottom != 0:
		return ValignBottom
	}
	return ValignMiddle
}

// Direction is the direction in which a ProgressBar fills.
type Direction int

const (
	DirectionRight = Direction(iota)
	DirectionLeft
	DirectionUp
	DirectionDown
)

func ToInt(s string) (int, error) {
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: integer %q", ErrFormat, s)
	}
	return int(v), nil
}

func ToUint16(s string) (uint16, error) {
	v, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, fmt.Errorf("%w: unsigned 16-bit integer %q", ErrFormat, s)
	}
	return uint16(v), nil
}

// ToBool returns def if the attribute is not present, and otherwise whether it is exactly "True".
func ToBool(s string, present bool, def bool) bool {
	if !present {
		return def
	}
	return s == "True"
}

// ToColor parses six hex digits "rrggbb", in any case, into an opaque color.
func ToColor(s string) (Color, error) {
	if len(s) != 6 {
		return 0, fmt.Errorf("%w: color %q", ErrFormat, s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: color %q", ErrFormat, s)
	}
	return Color(v<<8 | 0xff), nil
}

func ToHalign(s string) (Halign, error) {
	switch s {
	case "Left":
		return HalignLeft, nil
	case "Center":
		return HalignCenter, nil
	case "Right":
		return HalignRight, nil
	}
	return 0, fmt.Errorf("%w: horizontal alignment %q", ErrArgument, s)
}

func ToValign(s string) (Valign, error) {
	switch s {
	case "Top":
		return ValignTop, nil
	case "Middle", "Center":
		return ValignMiddle, nil
	case "Bottom":
		return ValignBottom, nil
	}
	return 0, fmt.Errorf("%w: vertical alignment %q", ErrArgument, s)
}

func ToAlignment(s string) (Alignment, error) {
	switch s {
	case "Left":
		return AlignLeft, nil
	case "Center":
		return AlignCenter, nil
	case "Right":
		return AlignRight, nil
	case "Top":
		return AlignTop, nil
	case "Bottom":
		return AlignBottom, nil
	}
	return 0, fmt.Errorf("%w: alignment %q", ErrArgument, s)
}

// ToDirection never fails, unknown values fill to the right.
func ToDirection(s string) Direction {
	switch s {
	case "Up":
		return DirectionUp
	case "Down":
		return DirectionDown
	case "Left":
		return DirectionLeft
	}
	return DirectionRight
}

// unescapeText turns the two characters `\n` into a newline.
func unescapeText(s string) string {
	return strings.ReplaceAll(s, `\n`, "\n")
}
