package matcher

import (
	"strconv"

	"split-targeting-engine/internal/devicespec"
	"split-targeting-engine/internal/targeting"
)

// ScreenDensityMatcher picks the best density candidate from a targeting's
// values and alternatives for the device, then matches only when that
// candidate is one of the targeting's own values. Best-candidate selection
// is the one place in this package with closest-match semantics, and it is
// deliberately confined here: the smallest candidate at or above the
// device density wins, otherwise the largest candidate below it.
type ScreenDensityMatcher struct {
	Device devicespec.Spec
}

func (m ScreenDensityMatcher) Dimension() targeting.Dimension {
	return targeting.DimensionScreenDensity
}

func (m ScreenDensityMatcher) DeviceDimensionPresent() bool { return m.Device.ScreenDensity > 0 }

func (m ScreenDensityMatcher) Targeting(t targeting.ApkTargeting) targeting.ScreenDensityTargeting {
	return mustTargeting(m.Dimension(), t.ScreenDensity)
}

func (m ScreenDensityMatcher) Matches(tt targeting.ScreenDensityTargeting) (bool, error) {
	if err := checkDisjoint(m.Dimension(), tt); err != nil {
		return false, err
	}
	if len(tt.Value) == 0 {
		return false, nil
	}
	best, ok := m.bestCandidate(tt)
	if !ok {
		return false, nil
	}
	for _, v := range tt.Value {
		if v == best {
			return true, nil
		}
	}
	return false, nil
}

// CheckDeviceCompatible requires at least one resolvable density among the
// values and alternatives: density buckets serve any device DPI, so the
// device is unaccounted for only when the whole set is empty or opaque.
func (m ScreenDensityMatcher) CheckDeviceCompatible(tt targeting.ScreenDensityTargeting) error {
	if err := checkDisjoint(m.Dimension(), tt); err != nil {
		return err
	}
	if _, ok := m.bestCandidate(tt); !ok {
		return &IncompatibleError{
			Dimension:   m.Dimension(),
			DeviceValue: strconv.Itoa(m.Device.ScreenDensity),
			Declared:    declaredUnion(tt),
		}
	}
	return nil
}

// bestCandidate scans values and alternatives for the density the platform
// would serve this device. Candidates with no numeric resolution (unknown
// aliases) cannot be ranked and are skipped.
func (m ScreenDensityMatcher) bestCandidate(tt targeting.ScreenDensityTargeting) (targeting.ScreenDensity, bool) {
	var best targeting.ScreenDensity
	bestDpi, found := 0, false
	consider := func(c targeting.ScreenDensity) {
		dpi, ok := c.DpiValue()
		if !ok {
			return
		}
		if !found || betterDensity(dpi, bestDpi, m.Device.ScreenDensity) {
			best, bestDpi, found = c, dpi, true
		}
	}
	for _, c := range tt.Value {
		consider(c)
	}
	for _, c := range tt.Alternatives {
		consider(c)
	}
	return best, found
}

// betterDensity reports whether candidate DPI a serves the device better
// than b: at-or-above the device density beats below it, then closer wins.
func betterDensity(a, b, device int) bool {
	aUp, bUp := a >= device, b >= device
	if aUp != bUp {
		return aUp
	}
	if aUp {
		return a < b
	}
	return a > b
}

func (m ScreenDensityMatcher) ApkTargetingPresent(t targeting.ApkTargeting) bool {
	return t.ScreenDensity != nil
}

func (m ScreenDensityMatcher) MatchesApkTargeting(t targeting.ApkTargeting) (bool, error) {
	return m.Matches(m.Targeting(t))
}

func (m ScreenDensityMatcher) CheckApkCompatible(t targeting.ApkTargeting) error {
	return m.CheckDeviceCompatible(m.Targeting(t))
}

func (m ScreenDensityMatcher) VariantTargetingPresent(t targeting.VariantTargeting) bool {
	return t.ScreenDensity != nil
}

func (m ScreenDensityMatcher) MatchesVariantTargeting(t targeting.VariantTargeting) (bool, error) {
	return m.Matches(mustTargeting(m.Dimension(), t.ScreenDensity))
}
