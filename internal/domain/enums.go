package domain

// Level is the difficulty tag on a definition.
type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

// IsValid reports whether the level is one of the known values.
func (l Level) IsValid() bool {
	switch l {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
		return true
	}
	return false
}

// OrDefault returns the level itself when valid, LevelIntermediate otherwise.
func (l Level) OrDefault() Level {
	if l.IsValid() {
		return l
	}
	return LevelIntermediate
}

// Canonical accent tags. The accent column is free-form, but these two
// are the values the audio resolver classifies into.
const (
	AccentUS = "US"
	AccentUK = "UK"
)

// DefaultLanguage is the language code assigned to entries that arrive
// without one.
const DefaultLanguage = "en"
