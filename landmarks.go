package mandel

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var ErrUnknownLandmark = errors.New("unknown landmark")

// Landmarks are named viewports onto classic regions of the set.
var Landmarks = map[string]Viewport{
	"default": DefaultViewport(),

	// dense filaments and repeating seahorse curls
	"seahorse-valley": {XStart: -0.8, XEnd: -0.7, YStart: 0.05, YEnd: 0.15},

	// large bulb with trunk-like tendrils
	"elephant-valley": {XStart: -1.85, XEnd: -1.75, YStart: -0.10, YEnd: -0.02},

	"spiral-minibrot": {XStart: -0.7435, XEnd: -0.7420, YStart: 0.1310, YEnd: 0.1325},
	"triple-spiral":   {XStart: -0.7480, XEnd: -0.7450, YStart: 0.0950, YEnd: 0.0980},

	"valley-of-the-dragon": {XStart: -0.7400, XEnd: -0.7350, YStart: 0.1800, YEnd: 0.1850},

	// self-similar copy inside a spiral arm
	"minibrot-in-mini-spiral": {XStart: -1.7390, XEnd: -1.7375, YStart: -0.0235, YEnd: -0.0220},
}

// Landmark looks up a viewport by name. Names are case-insensitive and an empty
// name selects the default viewport.
func Landmark(name string) (Viewport, error) {
	if name == "" {
		return DefaultViewport(), nil
	}
	v, ok := Landmarks[strings.ToLower(name)]
	if !ok {
		return Viewport{}, fmt.Errorf("%w %q (known: %s)", ErrUnknownLandmark, name, strings.Join(LandmarkNames(), ", "))
	}
	return v, nil
}

// LandmarkNames returns the known landmark names in sorted order.
func LandmarkNames() []string {
	names := make([]string, 0, len(Landmarks))
	for name := range Landmarks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
