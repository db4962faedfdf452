package mandel

import (
	"image"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewport_ToPlaneCorners(t *testing.T) {
	tests := []struct {
		name   string
		vp     Viewport
		width  int
		height int
	}{
		{name: "default 320x240", vp: DefaultViewport(), width: 320, height: 240},
		{name: "default 1x1", vp: DefaultViewport(), width: 1, height: 1},
		{name: "seahorse 1920x1080", vp: Landmarks["seahorse-valley"], width: 1920, height: 1080},
		{name: "tiny odd size", vp: Viewport{XStart: -0.7435, XEnd: -0.7420, YStart: 0.1310, YEnd: 0.1325}, width: 7, height: 13},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x0, y0 := tt.vp.ToPlane(0, 0, tt.width, tt.height)
			assert.Equal(t, tt.vp.XStart, x0)
			assert.Equal(t, tt.vp.YStart, y0)

			x1, y1 := tt.vp.ToPlane(float64(tt.width), float64(tt.height), tt.width, tt.height)
			assert.InDelta(t, tt.vp.XEnd, x1, 1e-12)
			assert.InDelta(t, tt.vp.YEnd, y1, 1e-12)
		})
	}
}

func TestViewport_ToPlaneExtrapolates(t *testing.T) {
	vp := DefaultViewport()
	x, y := vp.ToPlane(-320, 480, 320, 240)
	assert.InDelta(t, -6.0, x, 1e-12)
	assert.InDelta(t, 3.0, y, 1e-12)
}

func TestViewport_Zoom(t *testing.T) {
	vp := DefaultViewport().Zoom(image.Rect(80, 60, 240, 180), 320, 240)

	assert.InDelta(t, -1.625, vp.XStart, 1e-12)
	assert.InDelta(t, 0.125, vp.XEnd, 1e-12)
	assert.InDelta(t, -0.5, vp.YStart, 1e-12)
	assert.InDelta(t, 0.5, vp.YEnd, 1e-12)
	assert.True(t, vp.Valid())
}

func TestViewport_ZoomNormalizesDragDirection(t *testing.T) {
	forward := DefaultViewport().Zoom(image.Rect(80, 60, 240, 180), 320, 240)
	backward := DefaultViewport().Zoom(image.Rect(240, 180, 80, 60), 320, 240)
	assert.Equal(t, forward, backward)
}

func TestViewport_Valid(t *testing.T) {
	tests := []struct {
		name string
		vp   Viewport
		want bool
	}{
		{name: "default", vp: DefaultViewport(), want: true},
		{name: "collapsed x", vp: Viewport{XStart: 1, XEnd: 1, YStart: 0, YEnd: 1}, want: false},
		{name: "inverted y", vp: Viewport{XStart: 0, XEnd: 1, YStart: 1, YEnd: 0}, want: false},
		{name: "nan", vp: Viewport{XStart: math.NaN(), XEnd: 1, YStart: 0, YEnd: 1}, want: false},
		{name: "inf", vp: Viewport{XStart: 0, XEnd: math.Inf(1), YStart: 0, YEnd: 1}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.vp.Valid())
			if tt.want {
				assert.NoError(t, tt.vp.Check())
			} else {
				assert.ErrorIs(t, tt.vp.Check(), ErrInvalidViewport)
			}
		})
	}
}

func TestLandmark(t *testing.T) {
	vp, err := Landmark("")
	require.NoError(t, err)
	assert.Equal(t, DefaultViewport(), vp)

	vp, err = Landmark("Seahorse-Valley")
	require.NoError(t, err)
	assert.Equal(t, -0.8, vp.XStart)

	_, err = Landmark("atlantis")
	assert.ErrorIs(t, err, ErrUnknownLandmark)
	assert.Contains(t, err.Error(), "seahorse-valley")
}

func TestLandmarks_AllValid(t *testing.T) {
	names := LandmarkNames()
	require.Len(t, names, len(Landmarks))
	assert.IsIncreasing(t, names)
	for _, name := range names {
		assert.Truef(t, Landmarks[name].Valid(), "landmark %s", name)
	}
}

func TestButton_String(t *testing.T) {
	assert.Equal(t, "left", ButtonLeft.String())
	assert.Equal(t, "right", ButtonRight.String())
	assert.Equal(t, "unknown", Button(42).String())
}
