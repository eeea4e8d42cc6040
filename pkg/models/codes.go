package models

import "fmt"

// Unclassified is the value of every classification code that has not been set
const Unclassified int16 = -1

// Current types
const (
	CurrentCC int16 = 0
	CurrentNC int16 = 1
)

// Interaction modes
const (
	ModeQE  int16 = 0
	ModeRes int16 = 1
	ModeDIS int16 = 2
	ModeCoh int16 = 3
	ModeMEC int16 = 10
)

// Interaction types. Resonant production has many final-state specific codes;
// CCRes and NCRes are the representative proton/pi channels.
const (
	InteractionCCQE  int16 = 1001
	InteractionNCQE  int16 = 1002
	InteractionCCRes int16 = 1003
	InteractionNCRes int16 = 1007
	InteractionCCDIS int16 = 1091
	InteractionNCDIS int16 = 1092
	InteractionNCCoh int16 = 1096
	InteractionCCCoh int16 = 1097
	InteractionMEC   int16 = 1100
)

var currentNames = map[int16]string{
	CurrentCC: "CC",
	CurrentNC: "NC",
}

var modeNames = map[int16]string{
	ModeQE:  "QE",
	ModeRes: "RES",
	ModeDIS: "DIS",
	ModeCoh: "COH",
	ModeMEC: "MEC",
}

// CurrentName returns a label for a current type code
func CurrentName(code int16) string {
	return codeName(currentNames, code)
}

// ModeName returns a label for an interaction mode code
func ModeName(code int16) string {
	return codeName(modeNames, code)
}

func codeName(names map[int16]string, code int16) string {
	if code == Unclassified {
		return "unclassified"
	}
	if name, ok := names[code]; ok {
		return name
	}
	return fmt.Sprintf("unknown(%d)", code)
}

// InteractionTypeFor picks the interaction type code for a current/mode pair
func InteractionTypeFor(current, mode int16) int16 {
	cc := current == CurrentCC
	switch mode {
	case ModeQE:
		if cc {
			return InteractionCCQE
		}
		return InteractionNCQE
	case ModeRes:
		if cc {
			return InteractionCCRes
		}
		return InteractionNCRes
	case ModeDIS:
		if cc {
			return InteractionCCDIS
		}
		return InteractionNCDIS
	case ModeCoh:
		if cc {
			return InteractionCCCoh
		}
		return InteractionNCCoh
	case ModeMEC:
		return InteractionMEC
	default:
		return Unclassified
	}
}
