package stairloop

import "sort"

// Keyframer is the scene-host side of the animation hand-off: whatever can
// record translate, scale, and color keys at integer frames can play back
// the ball animation. Implementations include the in-memory Track and any
// external keyframing bridge.
type Keyframer interface {
	SetTranslate(frame int, p Point3)
	SetScale(frame int, sx, sy, sz float64)
	SetColor(frame int, c Color)
}

// Apply replays the animator's samples into k: a translate and scale key on
// every frame, and a color key at frame 0 and on each landing. The
// horizontal scale is applied to both horizontal axes.
func (a *Animator) Apply(k Keyframer) {
	for s := range a.All() {
		k.SetTranslate(s.Frame, s.Position)
		k.SetScale(s.Frame, s.ScaleH, s.ScaleV, s.ScaleH)
		if s.Frame == 0 || s.Landing {
			k.SetColor(s.Frame, s.Color)
		}
	}
}

// TranslateKey is a recorded position key.
type TranslateKey struct {
	Frame    int
	Position Point3
}

// ScaleKey is a recorded scale key.
type ScaleKey struct {
	Frame      int
	SX, SY, SZ float64
}

// ColorKey is a recorded color key.
type ColorKey struct {
	Frame int
	Color Color
}

// Track is an in-memory Keyframer: it records keys in the order they are
// set, assuming non-decreasing frame numbers (which is what Apply emits).
type Track struct {
	Translations []TranslateKey
	Scales       []ScaleKey
	Colors       []ColorKey
}

// NewTrack returns an empty track.
func NewTrack() *Track {
	return &Track{}
}

// SetTranslate records a position key.
func (t *Track) SetTranslate(frame int, p Point3) {
	t.Translations = append(t.Translations, TranslateKey{Frame: frame, Position: p})
}

// SetScale records a scale key.
func (t *Track) SetScale(frame int, sx, sy, sz float64) {
	t.Scales = append(t.Scales, ScaleKey{Frame: frame, SX: sx, SY: sy, SZ: sz})
}

// SetColor records a color key.
func (t *Track) SetColor(frame int, c Color) {
	t.Colors = append(t.Colors, ColorKey{Frame: frame, Color: c})
}

// PositionAt returns the recorded position at the greatest keyed frame that
// is <= frame. ok is false when frame precedes every key.
func (t *Track) PositionAt(frame int) (Point3, bool) {
	i := sort.Search(len(t.Translations), func(i int) bool {
		return t.Translations[i].Frame > frame
	})
	if i == 0 {
		return Point3{}, false
	}
	return t.Translations[i-1].Position, true
}

// ScaleAt returns the recorded scale at the greatest keyed frame <= frame.
func (t *Track) ScaleAt(frame int) (sx, sy, sz float64, ok bool) {
	i := sort.Search(len(t.Scales), func(i int) bool {
		return t.Scales[i].Frame > frame
	})
	if i == 0 {
		return 0, 0, 0, false
	}
	k := t.Scales[i-1]
	return k.SX, k.SY, k.SZ, true
}

// ColorAt returns the color in effect at frame: the most recent color key at
// or before it.
func (t *Track) ColorAt(frame int) (Color, bool) {
	i := sort.Search(len(t.Colors), func(i int) bool {
		return t.Colors[i].Frame > frame
	})
	if i == 0 {
		return Color{}, false
	}
	return t.Colors[i-1].Color, true
}

// LastFrame returns the highest keyed frame, or 0 for an empty track.
func (t *Track) LastFrame() int {
	if len(t.Translations) == 0 {
		return 0
	}
	return t.Translations[len(t.Translations)-1].Frame
}
