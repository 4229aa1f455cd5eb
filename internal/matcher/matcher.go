// Package matcher decides, per targeting dimension, whether one device's
// resolved properties match or are compatible with a value/alternative
// targeting pair.
package matcher

import (
	"fmt"

	"split-targeting-engine/internal/devicespec"
	"split-targeting-engine/internal/targeting"
)

// Matcher is the shared per-dimension contract. Implementations are plain
// value types over a read-only device spec, selected through the
// dimension-keyed table returned by ForDevice.
type Matcher interface {
	Dimension() targeting.Dimension

	// DeviceDimensionPresent reports whether the device supplies a value
	// for this dimension; some dimensions, like tier, are optional on a
	// device.
	DeviceDimensionPresent() bool

	// ApkTargetingPresent reports whether the aggregate carries this
	// dimension.
	ApkTargetingPresent(t targeting.ApkTargeting) bool

	// MatchesApkTargeting projects this dimension out of the aggregate and
	// evaluates the match predicate. Alternatives never contribute to a
	// positive match. Panics if the dimension is absent from the
	// aggregate; callers check ApkTargetingPresent first.
	MatchesApkTargeting(t targeting.ApkTargeting) (bool, error)

	// CheckApkCompatible validates that the device's value for this
	// dimension is accounted for by the union of the targeting's values
	// and alternatives, returning an IncompatibleError otherwise.
	CheckApkCompatible(t targeting.ApkTargeting) error

	// VariantTargetingPresent reports whether the variant-level aggregate
	// carries this dimension; dimensions that never appear at variant
	// level always report false.
	VariantTargetingPresent(t targeting.VariantTargeting) bool

	// MatchesVariantTargeting is MatchesApkTargeting for the
	// variant-level aggregate. Panics if the dimension is absent.
	MatchesVariantTargeting(t targeting.VariantTargeting) (bool, error)
}

// ForDevice returns one matcher per known dimension, all reading the same
// device spec.
func ForDevice(device devicespec.Spec) map[targeting.Dimension]Matcher {
	return map[targeting.Dimension]Matcher{
		targeting.DimensionAbi:                      AbiMatcher{Device: device},
		targeting.DimensionScreenDensity:            ScreenDensityMatcher{Device: device},
		targeting.DimensionLanguage:                 LanguageMatcher{Device: device},
		targeting.DimensionSdkVersion:               SdkVersionMatcher{Device: device},
		targeting.DimensionTextureCompressionFormat: TextureCompressionFormatMatcher{Device: device},
		targeting.DimensionDeviceTier:               DeviceTierMatcher{Device: device},
		targeting.DimensionCountrySet:               CountrySetMatcher{Device: device},
		targeting.DimensionSdkRuntime:               SdkRuntimeMatcher{Device: device},
	}
}

// keyed is satisfied by every value/alternative targeting type.
type keyed interface {
	ValueKeys() []string
	AlternativeKeys() []string
}

// checkDisjoint rejects a targeting whose value and alternative sets
// intersect; such a pair denotes a construction bug upstream and is never
// silently resolved by picking one side.
func checkDisjoint(dim targeting.Dimension, t keyed) error {
	alts := make(map[string]struct{})
	for _, k := range t.AlternativeKeys() {
		alts[k] = struct{}{}
	}
	var overlap []string
	for _, k := range t.ValueKeys() {
		if _, ok := alts[k]; ok {
			overlap = append(overlap, k)
		}
	}
	if len(overlap) > 0 {
		return &OverlapError{Dimension: dim, Overlap: overlap}
	}
	return nil
}

// mustTargeting panics when a projection is requested for a dimension the
// aggregate does not carry: a precondition violation, not a runtime
// condition.
func mustTargeting[T any](dim targeting.Dimension, t *T) T {
	if t == nil {
		panic(fmt.Sprintf("%s targeting requested from an aggregate that does not carry it", dim))
	}
	return *t
}
