package domain

import "fmt"

// Cable is an immutable length of cable identified by name.
// Pieces returned by a split are new Cable values.
type Cable struct {
	// Length is the total measurable size in whole units
	Length int `json:"length" toml:"length" yaml:"length"`

	// Name identifies the cable (e.g., "coconut" or "coconut-03")
	Name string `json:"name" toml:"name" yaml:"name"`
}

// NewCable creates a Cable after checking that length is positive and
// name is non-empty.
func NewCable(length int, name string) (Cable, error) {
	if length <= 0 {
		return Cable{}, fmt.Errorf("%w: got %d", ErrInvalidLength, length)
	}
	if name == "" {
		return Cable{}, ErrEmptyName
	}
	return Cable{Length: length, Name: name}, nil
}

// String returns "name(length)".
func (c Cable) String() string {
	return fmt.Sprintf("%s(%d)", c.Name, c.Length)
}
