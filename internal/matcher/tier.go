package matcher

import (
	"split-targeting-engine/internal/devicespec"
	"split-targeting-engine/internal/targeting"
)

// DeviceTierMatcher matches the device's performance tier, an optional
// device property, by exact string equality.
type DeviceTierMatcher struct {
	Device devicespec.Spec
}

func (m DeviceTierMatcher) Dimension() targeting.Dimension { return targeting.DimensionDeviceTier }

func (m DeviceTierMatcher) DeviceDimensionPresent() bool { return m.Device.DeviceTier != "" }

func (m DeviceTierMatcher) Targeting(t targeting.ApkTargeting) targeting.DeviceTierTargeting {
	return mustTargeting(m.Dimension(), t.DeviceTier)
}

func (m DeviceTierMatcher) Matches(tt targeting.DeviceTierTargeting) (bool, error) {
	if err := checkDisjoint(m.Dimension(), tt); err != nil {
		return false, err
	}
	return containsString(tt.Value, m.Device.DeviceTier), nil
}

func (m DeviceTierMatcher) CheckDeviceCompatible(tt targeting.DeviceTierTargeting) error {
	if err := checkDisjoint(m.Dimension(), tt); err != nil {
		return err
	}
	tier := m.Device.DeviceTier
	if containsString(tt.Value, tier) || containsString(tt.Alternatives, tier) {
		return nil
	}
	return &IncompatibleError{
		Dimension:   m.Dimension(),
		DeviceValue: tier,
		Declared:    declaredUnion(tt),
	}
}

func (m DeviceTierMatcher) ApkTargetingPresent(t targeting.ApkTargeting) bool {
	return t.DeviceTier != nil
}

func (m DeviceTierMatcher) MatchesApkTargeting(t targeting.ApkTargeting) (bool, error) {
	return m.Matches(m.Targeting(t))
}

func (m DeviceTierMatcher) CheckApkCompatible(t targeting.ApkTargeting) error {
	return m.CheckDeviceCompatible(m.Targeting(t))
}

// Tier targeting never appears at variant level.
func (m DeviceTierMatcher) VariantTargetingPresent(targeting.VariantTargeting) bool { return false }

func (m DeviceTierMatcher) MatchesVariantTargeting(targeting.VariantTargeting) (bool, error) {
	return m.Matches(mustTargeting[targeting.DeviceTierTargeting](m.Dimension(), nil))
}
