package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// CharacterSpec is the declarative document describing one character type.
type CharacterSpec struct {
	Name         string                         `yaml:"name"`
	Initial      string                         `yaml:"initial"`
	GroundTag    string                         `yaml:"ground_tag"`
	HitReaction  string                         `yaml:"hit_reaction"`
	ImpulseSpeed float64                        `yaml:"impulse_speed"`
	Fallback     Vec2                           `yaml:"fallback"`
	Body         BodySpec                       `yaml:"body"`
	Animations   map[string]map[string]ClipSpec `yaml:"animations"`
	Combos       []ComboSpec                    `yaml:"combos"`
	Impulses     []ImpulseSpec                  `yaml:"impulses"`
	States       map[string]StateSpec           `yaml:"states"`
}

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}
	return DecodeSpec[T](filename, data)
}

// DecodeSpec unmarshals a document. JSON documents decode too.
func DecodeSpec[T any](filename string, data []byte) (T, error) {
	var zero T
	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}
	return spec, nil
}

type BodySpec struct {
	Width  float64    `yaml:"width"`
	Height float64    `yaml:"height"`
	Mass   float64    `yaml:"mass"`
	Color  *YAMLColor `yaml:"color"`
}

// ClipSpec is one tagged clip of a sprite sheet.
type ClipSpec struct {
	Start      int     `yaml:"start"`
	FrameCount int     `yaml:"frame_count"`
	FPS        float64 `yaml:"fps"`
	Loop       *bool   `yaml:"loop"`
}

type ComboSpec struct {
	Sequence []string `yaml:"sequence"`
	State    string   `yaml:"state"`
}

type ImpulseSpec struct {
	From   string `yaml:"from"`
	To     string `yaml:"to"`
	Vector Vec2   `yaml:"vector"`
}

type StateSpec struct {
	AnimationName         string               `yaml:"animation_name"`
	AnimationTag          string               `yaml:"animation_tag"`
	AutomaticContinuation *string              `yaml:"automatic_continuation"`
	Frames                map[string]FrameSpec `yaml:"frames"`
}

type FrameSpec struct {
	Boxes   []BoxSpec    `yaml:"boxes"`
	Effects []EffectSpec `yaml:"effects"`
}

type BoxSpec struct {
	Type             string   `yaml:"type"`
	Rectangle        RectSpec `yaml:"rectangle"`
	CollisionTag     string   `yaml:"collision_tag"`
	DamageMultiplier float64  `yaml:"damage_multiplier"`
}

type EffectSpec struct {
	Type        string  `yaml:"type"`
	Vector      Vec2    `yaml:"vector"`
	SpeedFactor float64 `yaml:"speed_factor"`
}

// Vec2 is a 2-element numeric sequence.
type Vec2 struct {
	X, Y float64
}

func (v *Vec2) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.SequenceNode || len(value.Content) != 2 {
		return fmt.Errorf("line %d: vector must be a 2-element sequence", value.Line)
	}
	var xy [2]float64
	for i, n := range value.Content {
		if n.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: vector component must be a number", n.Line)
		}
		f, err := strconv.ParseFloat(n.Value, 64)
		if err != nil {
			return fmt.Errorf("line %d: vector component %q: %w", n.Line, n.Value, err)
		}
		xy[i] = f
	}
	v.X, v.Y = xy[0], xy[1]
	return nil
}

// RectSpec is an integer rectangle written as {location: [x, y], size: [w, h]}.
type RectSpec struct {
	Location [2]int
	Size     [2]int
}

func (r *RectSpec) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: rectangle must be a mapping", value.Line)
	}
	var hasLocation, hasSize bool
	for i := 0; i+1 < len(value.Content); i += 2 {
		key, seq := value.Content[i].Value, value.Content[i+1]
		var dst *[2]int
		switch key {
		case "location":
			dst, hasLocation = &r.Location, true
		case "size":
			dst, hasSize = &r.Size, true
		default:
			return fmt.Errorf("line %d: unknown rectangle field %q", value.Content[i].Line, key)
		}
		pair, err := intPair(key, seq)
		if err != nil {
			return err
		}
		*dst = pair
	}
	if !hasLocation || !hasSize {
		return fmt.Errorf("line %d: rectangle needs location and size", value.Line)
	}
	return nil
}

// intPair decodes a 2-element sequence of integers. Fractions are rejected.
func intPair(key string, seq *yaml.Node) ([2]int, error) {
	var out [2]int
	if seq.Kind != yaml.SequenceNode || len(seq.Content) != 2 {
		return out, fmt.Errorf("line %d: rectangle %s must be a 2-element sequence", seq.Line, key)
	}
	for i, n := range seq.Content {
		if n.Kind != yaml.ScalarNode {
			return out, fmt.Errorf("line %d: rectangle %s component must be an integer", n.Line, key)
		}
		v, err := strconv.Atoi(n.Value)
		if err != nil {
			return out, fmt.Errorf("line %d: rectangle %s component %q is not an integer", n.Line, key, n.Value)
		}
		out[i] = v
	}
	return out, nil
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
