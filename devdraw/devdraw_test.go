package devdraw

import (
	"image"
	"testing"

	"9fans.net/go/draw"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mjl-/glide"
)

func TestTouch(t *testing.T) {
	var tt glide.TouchTracker
	origin := image.Pt(100, 50)

	_, ok := touch(&tt, draw.Mouse{Point: image.Pt(110, 60)}, origin)
	assert.False(t, ok, "hover without button")

	tc, ok := touch(&tt, draw.Mouse{Point: image.Pt(110, 60), Buttons: 1, Msec: 5}, origin)
	require.True(t, ok)
	assert.Equal(t, glide.Touch{Point: image.Pt(10, 10), Phase: glide.TouchDown, Msec: 5}, tc)

	_, ok = touch(&tt, draw.Mouse{Point: image.Pt(110, 60), Buttons: 1}, origin)
	assert.False(t, ok, "no movement")

	tc, ok = touch(&tt, draw.Mouse{Point: image.Pt(120, 70), Buttons: 1}, origin)
	require.True(t, ok)
	assert.Equal(t, glide.TouchMove, tc.Phase)
	assert.Equal(t, image.Pt(20, 20), tc.Point)

	tc, ok = touch(&tt, draw.Mouse{Point: image.Pt(120, 70)}, origin)
	require.True(t, ok)
	assert.Equal(t, glide.TouchUp, tc.Phase)

	_, ok = touch(&tt, draw.Mouse{Point: image.Pt(120, 70), Buttons: 4}, origin)
	assert.False(t, ok, "button 3 is not a touch")
}

func TestRows(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	for i := range img.Pix {
		img.Pix[i] = byte(i)
	}
	buf := rows(nil, img, image.Rect(1, 1, 3, 3))
	require.Len(t, buf, 2*2*4)
	assert.Equal(t, img.Pix[img.PixOffset(1, 1):img.PixOffset(3, 1)], buf[:8])
	assert.Equal(t, img.Pix[img.PixOffset(1, 2):img.PixOffset(3, 2)], buf[8:])
}
