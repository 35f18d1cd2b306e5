package component

import "github.com/milk9111/ohko/fighter"

// ComboInput collects flushed sequences and facing requests from the input
// systems until the character system consumes them.
type ComboInput struct {
	Sequences [][]fighter.Position

	FacingLeft    bool
	FacingPending bool
}

// Push queues one flushed sequence.
func (c *ComboInput) Push(seq []fighter.Position) {
	c.Sequences = append(c.Sequences, seq)
}

// Face requests a facing change.
func (c *ComboInput) Face(left bool) {
	c.FacingLeft = left
	c.FacingPending = true
}

var ComboInputComponent = NewComponent[ComboInput]()
