package fighter

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrComboTooLong    = errors.New("fighter: combo sequence exceeds key capacity")
	ErrInvalidPosition = errors.New("fighter: invalid pad position")
	ErrDuplicateCombo  = errors.New("fighter: combo sequence defined twice")
	ErrEmptyCombo      = errors.New("fighter: empty combo sequence")
)

// Position is one cell of the 3x3 directional pad. Values are numbered
// column by column starting at the top-left; zero means unknown.
type Position uint8

const (
	PositionUnknown Position = iota
	TopLeft
	MiddleLeft
	BottomLeft
	TopCenter
	Center
	BottomCenter
	TopRight
	MiddleRight
	BottomRight
)

var positionNames = [...]string{
	PositionUnknown: "Unknown",
	TopLeft:         "TopLeft",
	MiddleLeft:      "MiddleLeft",
	BottomLeft:      "BottomLeft",
	TopCenter:       "TopCenter",
	Center:          "Center",
	BottomCenter:    "BottomCenter",
	TopRight:        "TopRight",
	MiddleRight:     "MiddleRight",
	BottomRight:     "BottomRight",
}

func (p Position) String() string {
	if int(p) < len(positionNames) {
		return positionNames[p]
	}
	return fmt.Sprintf("Position(%d)", uint8(p))
}

func (p Position) Valid() bool {
	return p >= TopLeft && p <= BottomRight
}

// ParsePosition resolves a position name, case-insensitively.
func ParsePosition(name string) (Position, error) {
	for i, n := range positionNames {
		if i == int(PositionUnknown) {
			continue
		}
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return Position(i), nil
		}
	}
	return PositionUnknown, fmt.Errorf("%w: %q", ErrInvalidPosition, name)
}

// PositionAt returns the position of grid cell (col, row), both in 0..2.
func PositionAt(col, row int) Position {
	if col < 0 || col > 2 || row < 0 || row > 2 {
		return PositionUnknown
	}
	return Position(col*3 + row + 1)
}

const (
	comboSlotBits = 9
	comboKeyBits  = 128

	// MaxComboLength is the longest sequence that fits the key. Slot 0 is
	// reserved, so slots 1..MaxComboLength occupy bits 9..125.
	MaxComboLength = comboKeyBits/comboSlotBits - 1
)

// ComboKey is a 128-bit packing of a position sequence: slot i (1-based)
// sits at bit offset 9*i and slot 0 stays zero.
type ComboKey struct {
	Hi, Lo uint64
}

func (k *ComboKey) set(offset uint, v uint64) {
	if offset < 64 {
		k.Lo |= v << offset
		if offset+comboSlotBits > 64 {
			k.Hi |= v >> (64 - offset)
		}
		return
	}
	k.Hi |= v << (offset - 64)
}

func (k ComboKey) String() string {
	return fmt.Sprintf("%016x%016x", k.Hi, k.Lo)
}

// EncodeCombo packs seq into a ComboKey. Sequences longer than
// MaxComboLength and positions outside the pad are rejected.
func EncodeCombo(seq []Position) (ComboKey, error) {
	var key ComboKey
	if len(seq) > MaxComboLength {
		return key, fmt.Errorf("%w: %d > %d", ErrComboTooLong, len(seq), MaxComboLength)
	}
	for i, p := range seq {
		if !p.Valid() {
			return ComboKey{}, fmt.Errorf("%w: %v at slot %d", ErrInvalidPosition, p, i+1)
		}
		key.set(uint(comboSlotBits*(i+1)), uint64(p))
	}
	return key, nil
}

// ComboEntry maps an ordered sequence to a target state.
type ComboEntry struct {
	Sequence []Position
	State    StateID
}

// ComboTable is an immutable exact-match lookup from sequences to states.
type ComboTable struct {
	entries map[ComboKey]StateID
}

// NewComboTable builds a table from literal entries.
func NewComboTable(entries ...ComboEntry) (*ComboTable, error) {
	t := &ComboTable{entries: make(map[ComboKey]StateID, len(entries))}
	for _, e := range entries {
		if len(e.Sequence) == 0 {
			return nil, fmt.Errorf("%w: target %s", ErrEmptyCombo, e.State)
		}
		key, err := EncodeCombo(e.Sequence)
		if err != nil {
			return nil, fmt.Errorf("fighter: combo for %s: %w", e.State, err)
		}
		if prev, ok := t.entries[key]; ok {
			return nil, fmt.Errorf("%w: %v maps to %s and %s", ErrDuplicateCombo, e.Sequence, prev, e.State)
		}
		t.entries[key] = e.State
	}
	return t, nil
}

// Recognize returns the state bound to exactly seq. Unknown, oversized and
// malformed sequences all yield false.
func (t *ComboTable) Recognize(seq []Position) (StateID, bool) {
	key, err := EncodeCombo(seq)
	if err != nil {
		return StateNone, false
	}
	return t.Lookup(key)
}

func (t *ComboTable) Lookup(key ComboKey) (StateID, bool) {
	if t == nil {
		return StateNone, false
	}
	s, ok := t.entries[key]
	return s, ok
}

func (t *ComboTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// Targets lists the distinct states reachable through the table.
func (t *ComboTable) Targets() []StateID {
	if t == nil {
		return nil
	}
	seen := make(map[StateID]bool, len(t.entries))
	out := make([]StateID, 0, len(t.entries))
	for _, s := range t.entries {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
