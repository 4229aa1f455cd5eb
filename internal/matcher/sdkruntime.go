package matcher

import (
	"split-targeting-engine/internal/devicespec"
	"split-targeting-engine/internal/targeting"
)

// SdkRuntimeMatcher matches the single required/not-required flag: a split
// that requires the SDK runtime only matches devices that can host it,
// while a split that does not require it matches any device.
type SdkRuntimeMatcher struct {
	Device devicespec.Spec
}

func (m SdkRuntimeMatcher) Dimension() targeting.Dimension { return targeting.DimensionSdkRuntime }

// Runtime support is always resolved: a missing sdkRuntime block on the
// device reads as unsupported.
func (m SdkRuntimeMatcher) DeviceDimensionPresent() bool { return true }

func (m SdkRuntimeMatcher) Targeting(t targeting.ApkTargeting) targeting.SdkRuntimeTargeting {
	return mustTargeting(m.Dimension(), t.SdkRuntime)
}

func (m SdkRuntimeMatcher) Matches(tt targeting.SdkRuntimeTargeting) (bool, error) {
	return !tt.RequiresSdkRuntime || m.Device.SdkRuntimeSupported(), nil
}

func (m SdkRuntimeMatcher) CheckDeviceCompatible(tt targeting.SdkRuntimeTargeting) error {
	if tt.RequiresSdkRuntime && !m.Device.SdkRuntimeSupported() {
		return &IncompatibleError{
			Dimension:   m.Dimension(),
			DeviceValue: "unsupported",
			Declared:    []string{"required"},
		}
	}
	return nil
}

func (m SdkRuntimeMatcher) ApkTargetingPresent(t targeting.ApkTargeting) bool {
	return t.SdkRuntime != nil
}

func (m SdkRuntimeMatcher) MatchesApkTargeting(t targeting.ApkTargeting) (bool, error) {
	return m.Matches(m.Targeting(t))
}

func (m SdkRuntimeMatcher) CheckApkCompatible(t targeting.ApkTargeting) error {
	return m.CheckDeviceCompatible(m.Targeting(t))
}

func (m SdkRuntimeMatcher) VariantTargetingPresent(t targeting.VariantTargeting) bool {
	return t.SdkRuntime != nil
}

func (m SdkRuntimeMatcher) MatchesVariantTargeting(t targeting.VariantTargeting) (bool, error) {
	return m.Matches(mustTargeting(m.Dimension(), t.SdkRuntime))
}
