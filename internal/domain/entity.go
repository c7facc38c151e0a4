package domain

import "strconv"

const (
	// NormalLevel is the reference ("daylight") colour temperature in Kelvin.
	NormalLevel = 6495
	// Factor is the decay applied between two consecutive levels of the cycle.
	Factor = 0.8
	// LevelCount is the number of steps below NormalLevel in the cycle.
	LevelCount = 5
	// MaxLevelCount bounds the cycle length accepted from the command line.
	MaxLevelCount = 64

	// OSDMin, OSDMid and OSDMax describe the scale shown on the overlay bar.
	OSDMin = 0
	OSDMid = NormalLevel
	OSDMax = 8000
)

// IconKind is the icon name understood by the shell overlay.
type IconKind string

const (
	IconSunrise IconKind = "daytime-sunrise-symbolic"
	IconSunset  IconKind = "daytime-sunset-symbolic"
)

func (i IconKind) String() string {
	return string(i)
}

// LevelDescriptor places a temperature on the overlay scale.
// Mid is the value drawn as a full bar; Max may exceed it.
type LevelDescriptor struct {
	Min   int
	Mid   int
	Max   int
	Level int
}

// NewLevelDescriptor validates the scale before any fraction is computed.
func NewLevelDescriptor(min, mid, max, level int) (LevelDescriptor, error) {
	if mid == min {
		return LevelDescriptor{}, ErrDegenerateLevel
	}
	return LevelDescriptor{Min: min, Mid: mid, Max: max, Level: level}, nil
}

// LevelFraction is (Level-Min)/(Mid-Min).
func (d LevelDescriptor) LevelFraction() float64 {
	return float64(d.Level-d.Min) / float64(d.Mid-d.Min)
}

// MaxFraction is (Max-Min)/(Mid-Min).
func (d LevelDescriptor) MaxFraction() float64 {
	return float64(d.Max-d.Min) / float64(d.Mid-d.Min)
}

// LoopResult describes a single step through the cycle.
type LoopResult struct {
	Previous int
	Next     int
	Icon     IconKind
	Label    string
}

// Label formats a temperature for display, e.g. "4156K".
func Label(level int) string {
	return strconv.Itoa(level) + "K"
}
