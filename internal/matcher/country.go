package matcher

import (
	"split-targeting-engine/internal/devicespec"
	"split-targeting-engine/internal/targeting"
)

// CountrySetMatcher matches the device's country-set name, an optional
// device property, by exact string equality.
type CountrySetMatcher struct {
	Device devicespec.Spec
}

func (m CountrySetMatcher) Dimension() targeting.Dimension { return targeting.DimensionCountrySet }

func (m CountrySetMatcher) DeviceDimensionPresent() bool { return m.Device.CountrySet != "" }

func (m CountrySetMatcher) Targeting(t targeting.ApkTargeting) targeting.CountrySetTargeting {
	return mustTargeting(m.Dimension(), t.CountrySet)
}

func (m CountrySetMatcher) Matches(tt targeting.CountrySetTargeting) (bool, error) {
	if err := checkDisjoint(m.Dimension(), tt); err != nil {
		return false, err
	}
	return containsString(tt.Value, m.Device.CountrySet), nil
}

func (m CountrySetMatcher) CheckDeviceCompatible(tt targeting.CountrySetTargeting) error {
	if err := checkDisjoint(m.Dimension(), tt); err != nil {
		return err
	}
	cs := m.Device.CountrySet
	if containsString(tt.Value, cs) || containsString(tt.Alternatives, cs) {
		return nil
	}
	return &IncompatibleError{
		Dimension:   m.Dimension(),
		DeviceValue: cs,
		Declared:    declaredUnion(tt),
	}
}

func (m CountrySetMatcher) ApkTargetingPresent(t targeting.ApkTargeting) bool {
	return t.CountrySet != nil
}

func (m CountrySetMatcher) MatchesApkTargeting(t targeting.ApkTargeting) (bool, error) {
	return m.Matches(m.Targeting(t))
}

func (m CountrySetMatcher) CheckApkCompatible(t targeting.ApkTargeting) error {
	return m.CheckDeviceCompatible(m.Targeting(t))
}

// Country-set targeting never appears at variant level.
func (m CountrySetMatcher) VariantTargetingPresent(targeting.VariantTargeting) bool { return false }

func (m CountrySetMatcher) MatchesVariantTargeting(targeting.VariantTargeting) (bool, error) {
	return m.Matches(mustTargeting[targeting.CountrySetTargeting](m.Dimension(), nil))
}
