package glide

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToInt(t *testing.T) {
	v, err := ToInt("-42")
	require.NoError(t, err)
	assert.Equal(t, -42, v)

	for _, s := range []string{"", "abc", "1.5", "0x10", "99999999999"} {
		_, err := ToInt(s)
		assert.True(t, errors.Is(err, ErrFormat), "ToInt(%q): %v", s, err)
	}
}

func TestToUint16(t *testing.T) {
	v, err := ToUint16("65535")
	require.NoError(t, err)
	assert.Equal(t, uint16(65535), v)

	for _, s := range []string{"-1", "65536", "x"} {
		_, err := ToUint16(s)
		assert.True(t, errors.Is(err, ErrFormat), "ToUint16(%q): %v", s, err)
	}
}

func TestToBool(t *testing.T) {
	assert.True(t, ToBool("", false, true), "absent uses default")
	assert.False(t, ToBool("", false, false), "absent uses default")
	assert.True(t, ToBool("True", true, false))
	assert.False(t, ToBool("true", true, true), "case-sensitive")
	assert.False(t, ToBool("False", true, true))
	assert.False(t, ToBool("", true, true), "present but empty")
}

func TestToColor(t *testing.T) {
	c, err := ToColor("dce3e7")
	require.NoError(t, err)
	assert.Equal(t, Color(0xdce3e7ff), c)
	assert.Equal(t, "dce3e7", c.Hex())

	c, err = ToColor("DCE3E7")
	require.NoError(t, err)
	assert.Equal(t, "dce3e7", c.Hex())

	for _, s := range []string{"", "#dce3e7", "dce3e", "dce3e7ff", "ghijkl", "+ce3e7"} {
		_, err := ToColor(s)
		assert.True(t, errors.Is(err, ErrFormat), "ToColor(%q): %v", s, err)
	}
}

func TestAlign(t *testing.T) {
	h, err := ToHalign("Center")
	require.NoError(t, err)
	assert.Equal(t, HalignCenter, h)
	_, err = ToHalign("Top")
	assert.True(t, errors.Is(err, ErrArgument))

	v, err := ToValign("Bottom")
	require.NoError(t, err)
	assert.Equal(t, ValignBottom, v)
	v, err = ToValign("Center")
	require.NoError(t, err)
	assert.Equal(t, ValignMiddle, v)
	_, err = ToValign("left")
	assert.True(t, errors.Is(err, ErrArgument))

	for s, exp := range map[string]Alignment{"Left": AlignLeft, "Center": AlignCenter, "Right": AlignRight, "Top": AlignTop, "Bottom": AlignBottom} {
		a, err := ToAlignment(s)
		require.NoError(t, err)
		assert.Equal(t, exp, a, s)
	}
	_, err = ToAlignment("Middle")
	assert.True(t, errors.Is(err, ErrArgument))

	assert.Equal(t, HalignRight, AlignRight.Halign())
	assert.Equal(t, HalignLeft, AlignTop.Halign())
	assert.Equal(t, ValignTop, AlignTop.Valign())
	assert.Equal(t, ValignMiddle, AlignCenter.Valign())
}

func TestToDirection(t *testing.T) {
	assert.Equal(t, DirectionUp, ToDirection("Up"))
	assert.Equal(t, DirectionDown, ToDirection("Down"))
	assert.Equal(t, DirectionLeft, ToDirection("Left"))
	assert.Equal(t, DirectionRight, ToDirection("Right"))
	assert.Equal(t, DirectionRight, ToDirection(""))
	assert.Equal(t, DirectionRight, ToDirection("sideways"))
}

func TestUnescapeText(t *testing.T) {
	assert.Equal(t, "a\nb\nc", unescapeText(`a\nb\nc`))
	assert.Equal(t, "plain", unescapeText("plain"))
}

func TestColor(t *testing.T) {
	r, g, b, a := Color(0xff000080).RGBA()
	assert.Equal(t, uint32(0x8080), r, "premultiplied")
	assert.Equal(t, uint32(0), g)
	assert.Equal(t, uint32(0), b)
	assert.Equal(t, uint32(0x8080), a)

	assert.Equal(t, Color(0x102030ff), RGB(0x10, 0x20, 0x30))
	assert.Equal(t, uint8(0x80), Color(0xff000080).Alpha())
	assert.Equal(t, Color(0x10203040), RGB(0x10, 0x20, 0x30).WithAlpha(0x40))

	assert.Equal(t, Black, White.blend(Black, 256))
	assert.Equal(t, White, White.blend(Black, 0))
	assert.Equal(t, RGB(0x7f, 0x7f, 0x7f), White.blend(Black, 128))
	assert.Equal(t, uint8(0x40), White.WithAlpha(0x40).blend(Black, 128).Alpha(), "alpha kept")
}
