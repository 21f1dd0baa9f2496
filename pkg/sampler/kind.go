package sampler

import (
	"strings"

	"golang.org/x/xerrors"
)

// Kind selects a sample pattern generator
type Kind int

const (
	Regular Kind = iota
	Jittered
	NRooks
	MultiJittered
)

var kindNames = map[Kind]string{
	Regular:       "regular",
	Jittered:      "jittered",
	NRooks:        "nrooks",
	MultiJittered: "multijittered",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

func (k Kind) needsSquare() bool {
	return k == Regular || k == Jittered || k == MultiJittered
}

// ParseKind maps a generator name, as printed by String, back to its Kind
func ParseKind(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for kind, kindName := range kindNames {
		if kindName == name {
			return kind, nil
		}
	}
	return 0, xerrors.Errorf("unknown sampler %q: %w", name, ErrInvalidPattern)
}

// Kinds lists every generator name
func Kinds() []string {
	return []string{Regular.String(), Jittered.String(), NRooks.String(), MultiJittered.String()}
}
