package fighter

// continuationWatcher is a one-shot trigger armed when a state with an
// automatic continuation becomes active.
type continuationWatcher struct {
	armed        bool
	startFrame   int
	frameCount   int
	targetFrame  int
	continuation StateID
}

func (w *continuationWatcher) arm(start, count int, next StateID) {
	w.armed = next != StateNone
	w.startFrame = start
	w.frameCount = count
	w.targetFrame = start + count - 1
	w.continuation = next
}

func (w *continuationWatcher) disarm() {
	*w = continuationWatcher{}
}

// check reports the continuation once the timeline has shown its target
// frame to completion, which is one full loop from the start frame. The
// watcher disarms itself when it fires.
func (w *continuationWatcher) check(t *Timeline) (StateID, bool) {
	if !w.armed || t == nil || t.Elapsed() < w.frameCount {
		return StateNone, false
	}
	next := w.continuation
	w.disarm()
	return next, true
}
