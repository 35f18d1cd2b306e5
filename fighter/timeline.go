package fighter

import (
	"fmt"
	"time"
)

// Playback rates outside this range are rejected at load time.
const (
	MinFPS = 0.01
	MaxFPS = 1000
)

// AnimationKey joins an animation source and tag into a lookup key.
func AnimationKey(source, tag string) string {
	return source + "#" + tag
}

// AnimationDef describes one tagged clip of a sprite sheet.
type AnimationDef struct {
	Source     string
	Tag        string
	Start      int // absolute frame index of the clip's first frame
	FrameCount int
	FPS        float64
	Loop       bool
}

// FrameDuration is the display time of a single frame. It is zero for a
// definition that fails Validate.
func (d AnimationDef) FrameDuration() time.Duration {
	if d.FPS < MinFPS || d.FPS > MaxFPS {
		return 0
	}
	return time.Duration(float64(time.Second) / d.FPS)
}

// Validate rejects clips that cannot be played.
func (d AnimationDef) Validate() error {
	if d.FrameCount < 1 {
		return fmt.Errorf("%w: %s/%s frame_count %d", ErrBadAnimation, d.Source, d.Tag, d.FrameCount)
	}
	if d.FPS < MinFPS || d.FPS > MaxFPS {
		return fmt.Errorf("%w: %s/%s fps %v outside [%v, %v]", ErrBadAnimation, d.Source, d.Tag, d.FPS, MinFPS, MaxFPS)
	}
	return nil
}

// Timeline plays an AnimationDef. It never reports frame changes through
// callbacks; Advance returns how many frames were crossed.
type Timeline struct {
	def     AnimationDef
	frame   int
	acc     time.Duration
	elapsed int
	playing bool
	flipH   bool
}

func NewTimeline(def AnimationDef) *Timeline {
	if def.FrameCount <= 0 {
		def.FrameCount = 1
	}
	return &Timeline{def: def, frame: def.Start}
}

func (t *Timeline) Def() AnimationDef { return t.def }

// Frame is the absolute frame index currently shown.
func (t *Timeline) Frame() int { return t.frame }

// Offset is the current frame relative to the clip's start frame.
func (t *Timeline) Offset() int { return t.frame - t.def.Start }

// Elapsed counts frames shown to completion since the last Play.
func (t *Timeline) Elapsed() int { return t.elapsed }

func (t *Timeline) Playing() bool { return t.playing }

func (t *Timeline) FlipH() bool { return t.flipH }

func (t *Timeline) SetFlipH(flip bool) { t.flipH = flip }

// Play starts playback from the current position.
func (t *Timeline) Play() {
	t.playing = true
}

func (t *Timeline) Stop() {
	t.playing = false
}

// Reset rewinds to the clip's own start frame.
func (t *Timeline) Reset() {
	t.frame = t.def.Start
	t.acc = 0
	t.elapsed = 0
}

// Advance moves playback forward by dt and returns the number of frames
// crossed. Non-looping clips hold their last frame. A timeline built from
// an invalid definition never advances.
func (t *Timeline) Advance(dt time.Duration) int {
	step := t.def.FrameDuration()
	if !t.playing || dt <= 0 || step <= 0 {
		return 0
	}
	t.acc += dt
	crossed := 0
	last := t.def.Start + t.def.FrameCount - 1
	for t.acc >= step {
		t.acc -= step
		t.elapsed++
		crossed++
		if t.frame < last {
			t.frame++
			continue
		}
		if t.def.Loop {
			t.frame = t.def.Start
			continue
		}
		t.playing = false
		t.acc = 0
		break
	}
	return crossed
}
