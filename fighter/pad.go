package fighter

// ControlPad turns one press-drag-release gesture over the 3x3 pad into an
// ordered, de-duplicated position sequence. A gesture only starts on the
// center cell.
type ControlPad struct {
	started bool
	seq     []Position
	lit     [BottomRight + 1]bool
}

func NewControlPad() *ControlPad {
	return &ControlPad{seq: make([]Position, 0, 10)}
}

// Started reports whether a gesture is in progress.
func (p *ControlPad) Started() bool { return p.started }

// Sequence returns a copy of the positions recorded so far.
func (p *ControlPad) Sequence() []Position {
	return append([]Position(nil), p.seq...)
}

// Lit reports whether pos was visited by the current gesture.
func (p *ControlPad) Lit(pos Position) bool {
	return pos.Valid() && p.lit[pos]
}

// Press begins a gesture when pos is the center cell.
func (p *ControlPad) Press(pos Position) {
	if p.started || pos != Center {
		return
	}
	p.started = true
	p.record(pos)
}

// Move extends a started gesture when pos differs from the last position.
func (p *ControlPad) Move(pos Position) {
	if !p.started || !pos.Valid() {
		return
	}
	if p.seq[len(p.seq)-1] == pos {
		return
	}
	p.record(pos)
}

// Release ends the gesture and returns its sequence as one candidate.
func (p *ControlPad) Release() ([]Position, bool) {
	if !p.started {
		return nil, false
	}
	out := p.Sequence()
	p.started = false
	p.seq = p.seq[:0]
	p.lit = [BottomRight + 1]bool{}
	return out, true
}

func (p *ControlPad) record(pos Position) {
	p.seq = append(p.seq, pos)
	p.lit[pos] = true
}
