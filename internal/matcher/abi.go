package matcher

import (
	"strings"

	"split-targeting-engine/internal/devicespec"
	"split-targeting-engine/internal/targeting"
)

// AbiMatcher matches the device's supported-architecture list, ordered by
// device preference, against ABI targeting. A split matches when it
// declares at least one architecture the device supports.
type AbiMatcher struct {
	Device devicespec.Spec
}

func (m AbiMatcher) Dimension() targeting.Dimension { return targeting.DimensionAbi }

func (m AbiMatcher) DeviceDimensionPresent() bool { return len(m.Device.SupportedAbis) > 0 }

// Targeting projects the ABI sub-message out of an APK aggregate.
func (m AbiMatcher) Targeting(t targeting.ApkTargeting) targeting.AbiTargeting {
	return mustTargeting(m.Dimension(), t.Abi)
}

func (m AbiMatcher) Matches(tt targeting.AbiTargeting) (bool, error) {
	if err := checkDisjoint(m.Dimension(), tt); err != nil {
		return false, err
	}
	for _, name := range m.Device.SupportedAbis {
		if containsAbi(tt.Value, name) {
			return true, nil
		}
	}
	return false, nil
}

func (m AbiMatcher) CheckDeviceCompatible(tt targeting.AbiTargeting) error {
	if err := checkDisjoint(m.Dimension(), tt); err != nil {
		return err
	}
	for _, name := range m.Device.SupportedAbis {
		if containsAbi(tt.Value, name) || containsAbi(tt.Alternatives, name) {
			return nil
		}
	}
	return &IncompatibleError{
		Dimension:   m.Dimension(),
		DeviceValue: strings.Join(m.Device.SupportedAbis, ", "),
		Declared:    declaredUnion(tt),
	}
}

func (m AbiMatcher) ApkTargetingPresent(t targeting.ApkTargeting) bool { return t.Abi != nil }

func (m AbiMatcher) MatchesApkTargeting(t targeting.ApkTargeting) (bool, error) {
	return m.Matches(m.Targeting(t))
}

func (m AbiMatcher) CheckApkCompatible(t targeting.ApkTargeting) error {
	return m.CheckDeviceCompatible(m.Targeting(t))
}

func (m AbiMatcher) VariantTargetingPresent(t targeting.VariantTargeting) bool {
	return t.Abi != nil
}

func (m AbiMatcher) MatchesVariantTargeting(t targeting.VariantTargeting) (bool, error) {
	return m.Matches(mustTargeting(m.Dimension(), t.Abi))
}

func containsAbi(abis []targeting.Abi, name string) bool {
	for _, a := range abis {
		if string(a) == name {
			return true
		}
	}
	return false
}
