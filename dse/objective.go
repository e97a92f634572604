package dse

import (
	"errors"
	"fmt"
)

// Objective selects the scalar minimised by the search.
type Objective int

const (
	// Throughput minimises the average inverse IOPS per access.
	Throughput Objective = iota
	// Latency minimises the average device latency per access.
	Latency
)

// ErrUnknownObjective is returned for an Objective other than Throughput or Latency.
var ErrUnknownObjective = errors.New("unknown objective")

var objectiveNames = map[Objective]string{
	Throughput: "throughput",
	Latency:    "latency",
}

// ParseObjective maps "throughput" or "latency" to an Objective.
func ParseObjective(s string) (Objective, error) {
	for o, name := range objectiveNames {
		if name == s {
			return o, nil
		}
	}
	return 0, fmt.Errorf("%w %q; valid: throughput, latency", ErrUnknownObjective, s)
}

// IsValid reports whether o is a known objective.
func (o Objective) IsValid() bool {
	_, ok := objectiveNames[o]
	return ok
}

func (o Objective) String() string {
	if name, ok := objectiveNames[o]; ok {
		return name
	}
	return fmt.Sprintf("Objective(%d)", int(o))
}

// MarshalText implements encoding.TextMarshaler.
func (o Objective) MarshalText() ([]byte, error) {
	if !o.IsValid() {
		return nil, fmt.Errorf("%w %d", ErrUnknownObjective, int(o))
	}
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *Objective) UnmarshalText(text []byte) error {
	parsed, err := ParseObjective(string(text))
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}
