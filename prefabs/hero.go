package prefabs

import (
	"fmt"

	"github.com/milk9111/ohko/fighter"
)

// HeroFile is the document name of the hero character.
const HeroFile = "hero.yaml"

const (
	HeroIdle         fighter.StateID = "Idle"
	HeroPunchACharge fighter.StateID = "PunchACharge"
	HeroPunchA       fighter.StateID = "PunchA"
	HeroPunchBCharge fighter.StateID = "PunchBCharge"
	HeroPunchB       fighter.StateID = "PunchB"
	HeroPunchCCharge fighter.StateID = "PunchCCharge"
	HeroPunchC       fighter.StateID = "PunchC"
	HeroKickACharge  fighter.StateID = "KickACharge"
	HeroKickA        fighter.StateID = "KickA"
	HeroBack         fighter.StateID = "Back"
)

// HeroStates is the hero's closed state set.
var HeroStates = []fighter.StateID{
	HeroIdle,
	HeroPunchACharge,
	HeroPunchA,
	HeroPunchBCharge,
	HeroPunchB,
	HeroPunchCCharge,
	HeroPunchC,
	HeroKickACharge,
	HeroKickA,
	HeroBack,
}

// Character is a built character type together with the document it came
// from, which still carries presentation fields such as the body size.
type Character struct {
	Type *fighter.CharacterType
	Spec CharacterSpec
}

// LoadCharacter reads, decodes and builds a character document.
func LoadCharacter(filename string, states []fighter.StateID) (*Character, error) {
	spec, err := LoadSpec[CharacterSpec](filename)
	if err != nil {
		return nil, err
	}
	char, err := Build(&spec, states)
	if err != nil {
		return nil, fmt.Errorf("prefabs: build %s: %w", filename, err)
	}
	return &Character{Type: char, Spec: spec}, nil
}

func LoadHero() (*Character, error) {
	return LoadCharacter(HeroFile, HeroStates)
}
