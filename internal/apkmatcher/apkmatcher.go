// Package apkmatcher selects, for one device, the delivering variant and
// the APKs to install from a generated variants table.
package apkmatcher

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"split-targeting-engine/internal/devicespec"
	"split-targeting-engine/internal/matcher"
	"split-targeting-engine/internal/observability"
	"split-targeting-engine/internal/targeting"
	"split-targeting-engine/internal/variant"
)

// Matcher exposes read-only match operations over one device spec.
type Matcher struct {
	device   devicespec.Spec
	matchers map[targeting.Dimension]matcher.Matcher
}

func New(device devicespec.Spec) *Matcher {
	return &Matcher{device: device, matchers: matcher.ForDevice(device)}
}

// MatchingApks narrows the table to the variant serving this device, then
// filters its APKs by per-dimension matching, preserving table order. The
// table is generated in ascending targeting order, so among several
// matching variants the last one is the most specific.
func (m *Matcher) MatchingApks(table []variant.Variant) ([]string, error) {
	selected, ok, err := m.matchingVariant(table)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("no variant matches device (sdk %d, abis %v)",
			m.device.SdkVersion, m.device.SupportedAbis)
	}
	observability.VariantSelectionsTotal.WithLabelValues(variantShape(selected)).Inc()
	log.Debug().Int("variant", selected.VariantNumber).
		Str("shape", variantShape(selected)).
		Msg("variant selected")

	var paths []string
	for _, set := range selected.ApkSets {
		for _, apk := range set.Apks {
			ok, err := m.matchesApk(apk.Targeting)
			if err != nil {
				return nil, fmt.Errorf("module %s, apk %s: %w", set.ModuleName, apk.Path, err)
			}
			if ok {
				paths = append(paths, apk.Path)
			}
		}
	}
	return paths, nil
}

func (m *Matcher) matchingVariant(table []variant.Variant) (variant.Variant, bool, error) {
	var selected variant.Variant
	found := false
	for _, v := range table {
		ok, err := m.matchesVariant(v.Targeting)
		if err != nil {
			return variant.Variant{}, false, fmt.Errorf("variant %d: %w", v.VariantNumber, err)
		}
		if ok {
			selected, found = v, true
		}
	}
	return selected, found, nil
}

func (m *Matcher) matchesVariant(vt targeting.VariantTargeting) (bool, error) {
	for _, dim := range targeting.VariantTargetingDimensions {
		dm := m.matchers[dim]
		if !dm.VariantTargetingPresent(vt) {
			continue
		}
		if !dm.DeviceDimensionPresent() {
			return false, nil
		}
		ok, err := dm.MatchesVariantTargeting(vt)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

// matchesApk applies every dimension the targeting discriminates on; an
// absent dimension never narrows.
func (m *Matcher) matchesApk(at targeting.ApkTargeting) (bool, error) {
	for _, dim := range targeting.ApkTargetingDimensions {
		dm := m.matchers[dim]
		if !dm.ApkTargetingPresent(at) {
			continue
		}
		if !dm.DeviceDimensionPresent() {
			observability.MatchChecksTotal.WithLabelValues(dim.String(), "no_device_value").Inc()
			return false, nil
		}
		ok, err := dm.MatchesApkTargeting(at)
		if err != nil {
			return false, err
		}
		if !ok {
			observability.MatchChecksTotal.WithLabelValues(dim.String(), "miss").Inc()
			log.Debug().Stringer("dimension", dim).Msg("apk rejected")
			return false, nil
		}
		observability.MatchChecksTotal.WithLabelValues(dim.String(), "hit").Inc()
	}
	return true, nil
}

func variantShape(v variant.Variant) string {
	switch {
	case variant.IsSplitApkVariant(v):
		return "split"
	case variant.IsInstantApkVariant(v):
		return "instant"
	case variant.IsStandaloneApkVariant(v):
		return "standalone"
	case variant.IsSystemApkVariant(v):
		return "system"
	}
	return "unknown"
}
