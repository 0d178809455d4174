package glide

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTouchTracker(t *testing.T) {
	var tt TouchTracker

	_, ok := tt.Update(image.Pt(1, 1), false, 0)
	assert.False(t, ok, "release without press")

	tc, ok := tt.Update(image.Pt(1, 1), true, 10)
	assert.True(t, ok)
	assert.Equal(t, Touch{image.Pt(1, 1), TouchDown, 10}, tc)
	assert.True(t, tt.Pressed())

	_, ok = tt.Update(image.Pt(1, 1), true, 20)
	assert.False(t, ok, "pressed, not moved")

	tc, ok = tt.Update(image.Pt(2, 3), true, 30)
	assert.True(t, ok)
	assert.Equal(t, TouchMove, tc.Phase)

	tc, ok = tt.Update(image.Pt(4, 4), false, 40)
	assert.True(t, ok)
	assert.Equal(t, Touch{image.Pt(4, 4), TouchUp, 40}, tc)
	assert.False(t, tt.Pressed())
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "down", TouchDown.String())
	assert.Equal(t, "cancel", TouchCancel.String())
	assert.Equal(t, "invalid", Phase(9).String())
}
