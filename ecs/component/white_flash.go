package component

// WhiteFlash makes a character's hull render white while On. Timing is in
// update ticks.
type WhiteFlash struct {
	// Frames remaining for the whole flash.
	Frames int
	// Interval in frames between toggles of On.
	Interval int
	Timer    int
	On       bool
}

var WhiteFlashComponent = NewComponent[WhiteFlash]()
