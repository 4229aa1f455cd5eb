package matcher

import (
	"fmt"
	"strings"

	"split-targeting-engine/internal/targeting"
)

// OverlapError reports a targeting whose value and alternative sets share
// members.
type OverlapError struct {
	Dimension targeting.Dimension
	Overlap   []string
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("%s targeting: values and alternatives overlap on [%s]",
		e.Dimension, strings.Join(e.Overlap, ", "))
}

// IncompatibleError reports a device value unaccounted for by the union of
// a targeting's values and alternatives, which signals a stale or
// incomplete sibling set.
type IncompatibleError struct {
	Dimension   targeting.Dimension
	DeviceValue string
	Declared    []string
}

func (e *IncompatibleError) Error() string {
	return fmt.Sprintf("%s targeting: device value %q not covered by declared values or alternatives [%s]",
		e.Dimension, e.DeviceValue, strings.Join(e.Declared, ", "))
}

func declaredUnion(t keyed) []string {
	return append(t.ValueKeys(), t.AlternativeKeys()...)
}
