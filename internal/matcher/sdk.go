package matcher

import (
	"strconv"

	"split-targeting-engine/internal/devicespec"
	"split-targeting-engine/internal/targeting"
)

// SdkVersionMatcher implements the minimum-SDK floor policy: among the
// floors in values and alternatives that the device SDK satisfies, the
// highest wins, and the targeting matches only when that winning floor is
// one of its own values. The floor comparison lives here and nowhere else.
type SdkVersionMatcher struct {
	Device devicespec.Spec
}

func (m SdkVersionMatcher) Dimension() targeting.Dimension { return targeting.DimensionSdkVersion }

func (m SdkVersionMatcher) DeviceDimensionPresent() bool { return m.Device.SdkVersion > 0 }

func (m SdkVersionMatcher) Targeting(t targeting.ApkTargeting) targeting.SdkVersionTargeting {
	return mustTargeting(m.Dimension(), t.SdkVersion)
}

func (m SdkVersionMatcher) Matches(tt targeting.SdkVersionTargeting) (bool, error) {
	if err := checkDisjoint(m.Dimension(), tt); err != nil {
		return false, err
	}
	winner, ok := m.winningFloor(tt)
	if !ok {
		return false, nil
	}
	for _, v := range tt.Value {
		if v.Min == winner {
			return true, nil
		}
	}
	return false, nil
}

func (m SdkVersionMatcher) CheckDeviceCompatible(tt targeting.SdkVersionTargeting) error {
	if err := checkDisjoint(m.Dimension(), tt); err != nil {
		return err
	}
	if _, ok := m.winningFloor(tt); !ok {
		return &IncompatibleError{
			Dimension:   m.Dimension(),
			DeviceValue: strconv.Itoa(m.Device.SdkVersion),
			Declared:    declaredUnion(tt),
		}
	}
	return nil
}

// winningFloor returns the highest floor, across values and alternatives,
// that does not exceed the device SDK.
func (m SdkVersionMatcher) winningFloor(tt targeting.SdkVersionTargeting) (int, bool) {
	winner, found := 0, false
	consider := func(v targeting.SdkVersion) {
		if v.Min > m.Device.SdkVersion {
			return
		}
		if !found || v.Min > winner {
			winner, found = v.Min, true
		}
	}
	for _, v := range tt.Value {
		consider(v)
	}
	for _, v := range tt.Alternatives {
		consider(v)
	}
	return winner, found
}

func (m SdkVersionMatcher) ApkTargetingPresent(t targeting.ApkTargeting) bool {
	return t.SdkVersion != nil
}

func (m SdkVersionMatcher) MatchesApkTargeting(t targeting.ApkTargeting) (bool, error) {
	return m.Matches(m.Targeting(t))
}

func (m SdkVersionMatcher) CheckApkCompatible(t targeting.ApkTargeting) error {
	return m.CheckDeviceCompatible(m.Targeting(t))
}

func (m SdkVersionMatcher) VariantTargetingPresent(t targeting.VariantTargeting) bool {
	return t.SdkVersion != nil
}

func (m SdkVersionMatcher) MatchesVariantTargeting(t targeting.VariantTargeting) (bool, error) {
	return m.Matches(mustTargeting(m.Dimension(), t.SdkVersion))
}
