package platform

import (
	"fmt"
	"strings"
)

// ActivatorKind is a pattern of activator tiles placed on a platform
type ActivatorKind int

const (
	// SingleOnEdge places one activator on a random corner of the platform
	SingleOnEdge ActivatorKind = iota
)

// ActivatorKinds lists every ActivatorKind in declaration order.
var ActivatorKinds = []ActivatorKind{SingleOnEdge}

func (k ActivatorKind) String() string {
	switch k {
	case SingleOnEdge:
		return "single_on_edge"
	}
	return fmt.Sprintf("ActivatorKind(%d)", int(k))
}

// ParseActivatorKind converts a name such as "single_on_edge" to its ActivatorKind
func ParseActivatorKind(name string) (ActivatorKind, error) {
	for _, k := range ActivatorKinds {
		if strings.EqualFold(strings.TrimSpace(name), k.String()) {
			return k, nil
		}
	}
	return SingleOnEdge, fmt.Errorf("unknown activator kind '%s'", name)
}

// ActivatorSelection tells PlaceActivator whether to pick the pattern itself
// or to use an explicit one.
type ActivatorSelection struct {
	explicit bool
	kind     ActivatorKind
}

// Auto lets the generator choose the activator pattern for the platform
func Auto() ActivatorSelection {
	return ActivatorSelection{}
}

// Explicit places the given activator pattern
func Explicit(kind ActivatorKind) ActivatorSelection {
	return ActivatorSelection{explicit: true, kind: kind}
}

// Kind returns the explicit kind; ok is false for Auto
func (s ActivatorSelection) Kind() (kind ActivatorKind, ok bool) {
	return s.kind, s.explicit
}

func (s ActivatorSelection) String() string {
	if !s.explicit {
		return "auto"
	}
	return s.kind.String()
}
