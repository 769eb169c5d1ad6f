package fleet

import (
	"encoding/json"
	"fmt"
)

// Outcome classifies a single resolved shot.
type Outcome int

const (
	Miss Outcome = iota
	Hit
	Sunk
)

func (o *Outcome) FromString(str string) error {
	switch str {
	case "miss":
		*o = Miss
	case "hit":
		*o = Hit
	case "sunk":
		*o = Sunk
	default:
		return fmt.Errorf("invalid shot outcome: %q", str)
	}
	return nil
}

func (o Outcome) String() string {
	switch o {
	case Miss:
		return "miss"
	case Hit:
		return "hit"
	case Sunk:
		return "sunk"
	default:
		panic("invalid shot outcome")
	}
}

func (o Outcome) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.String())
}
