package apkmatcher

import (
	"fmt"

	"split-targeting-engine/internal/observability"
	"split-targeting-engine/internal/targeting"
)

// dimensionKeys projects one dimension's value and alternative sets out of
// an APK aggregate as canonical strings.
var dimensionKeys = map[targeting.Dimension]func(targeting.ApkTargeting) (values, alts []string, present bool){
	targeting.DimensionAbi: func(t targeting.ApkTargeting) ([]string, []string, bool) {
		if t.Abi == nil {
			return nil, nil, false
		}
		return t.Abi.ValueKeys(), t.Abi.AlternativeKeys(), true
	},
	targeting.DimensionScreenDensity: func(t targeting.ApkTargeting) ([]string, []string, bool) {
		if t.ScreenDensity == nil {
			return nil, nil, false
		}
		return t.ScreenDensity.ValueKeys(), t.ScreenDensity.AlternativeKeys(), true
	},
	targeting.DimensionLanguage: func(t targeting.ApkTargeting) ([]string, []string, bool) {
		if t.Language == nil {
			return nil, nil, false
		}
		return t.Language.ValueKeys(), t.Language.AlternativeKeys(), true
	},
	targeting.DimensionSdkVersion: func(t targeting.ApkTargeting) ([]string, []string, bool) {
		if t.SdkVersion == nil {
			return nil, nil, false
		}
		return t.SdkVersion.ValueKeys(), t.SdkVersion.AlternativeKeys(), true
	},
	targeting.DimensionTextureCompressionFormat: func(t targeting.ApkTargeting) ([]string, []string, bool) {
		if t.TextureCompressionFormat == nil {
			return nil, nil, false
		}
		return t.TextureCompressionFormat.ValueKeys(), t.TextureCompressionFormat.AlternativeKeys(), true
	},
	targeting.DimensionDeviceTier: func(t targeting.ApkTargeting) ([]string, []string, bool) {
		if t.DeviceTier == nil {
			return nil, nil, false
		}
		return t.DeviceTier.ValueKeys(), t.DeviceTier.AlternativeKeys(), true
	},
	targeting.DimensionCountrySet: func(t targeting.ApkTargeting) ([]string, []string, bool) {
		if t.CountrySet == nil {
			return nil, nil, false
		}
		return t.CountrySet.ValueKeys(), t.CountrySet.AlternativeKeys(), true
	},
	targeting.DimensionSdkRuntime: func(t targeting.ApkTargeting) ([]string, []string, bool) {
		if t.SdkRuntime == nil {
			return nil, nil, false
		}
		if t.SdkRuntime.RequiresSdkRuntime {
			return []string{"required"}, nil, true
		}
		return []string{"not-required"}, nil, true
	},
}

// CheckSiblingConsistency validates one split level: across the sibling
// APK targetings, no two siblings claim the same device value on any
// dimension, and every sibling's values are acknowledged by each other
// sibling's alternatives. A failure signals a generator bug, typically a
// dimension domain that grew without the alternatives being regenerated.
func CheckSiblingConsistency(siblings []targeting.ApkTargeting) error {
	for _, dim := range targeting.ApkTargetingDimensions {
		project := dimensionKeys[dim]

		type entry struct {
			index  int
			values []string
			alts   map[string]struct{}
		}
		var entries []entry
		for i, s := range siblings {
			values, alts, present := project(s)
			if !present {
				continue
			}
			altSet := make(map[string]struct{}, len(alts))
			for _, a := range alts {
				altSet[a] = struct{}{}
			}
			entries = append(entries, entry{index: i, values: values, alts: altSet})
		}
		// The SDK-runtime flag denotes the split's own requirement, not a
		// partition of a value domain.
		if dim == targeting.DimensionSdkRuntime || len(entries) < 2 {
			continue
		}

		claimed := make(map[string]int)
		for _, e := range entries {
			for _, v := range e.values {
				if prev, ok := claimed[v]; ok {
					return fmt.Errorf("%s: siblings %d and %d both claim value %q", dim, prev, e.index, v)
				}
				claimed[v] = e.index
			}
		}
		for _, e := range entries {
			for _, other := range entries {
				if other.index == e.index {
					continue
				}
				for _, v := range other.values {
					if _, ok := e.alts[v]; !ok {
						return fmt.Errorf("%s: sibling %d does not acknowledge value %q of sibling %d in its alternatives",
							dim, e.index, v, other.index)
					}
				}
			}
		}
	}
	return nil
}

// CheckCompatibleWithSiblings audits that this device is accounted for by
// every sibling's values or alternatives, for each dimension the device
// resolves. A targeting can be compatible without matching; this check is
// the consistency guard, not the selection predicate.
func (m *Matcher) CheckCompatibleWithSiblings(siblings []targeting.ApkTargeting) error {
	for _, s := range siblings {
		for _, dim := range targeting.ApkTargetingDimensions {
			dm := m.matchers[dim]
			if !dm.ApkTargetingPresent(s) || !dm.DeviceDimensionPresent() {
				continue
			}
			if err := dm.CheckApkCompatible(s); err != nil {
				observability.IncompatibilitiesTotal.WithLabelValues(dim.String()).Inc()
				return err
			}
		}
	}
	return nil
}
