package matcher

import (
	"strings"

	"split-targeting-engine/internal/devicespec"
	"split-targeting-engine/internal/targeting"
)

// LanguageMatcher matches the base languages of the device's locales
// against language targeting.
type LanguageMatcher struct {
	Device devicespec.Spec
}

func (m LanguageMatcher) Dimension() targeting.Dimension { return targeting.DimensionLanguage }

func (m LanguageMatcher) DeviceDimensionPresent() bool {
	return len(m.Device.SupportedLocales) > 0
}

func (m LanguageMatcher) Targeting(t targeting.ApkTargeting) targeting.LanguageTargeting {
	return mustTargeting(m.Dimension(), t.Language)
}

func (m LanguageMatcher) Matches(tt targeting.LanguageTargeting) (bool, error) {
	if err := checkDisjoint(m.Dimension(), tt); err != nil {
		return false, err
	}
	for _, lang := range m.Device.Languages() {
		if containsString(tt.Value, lang) {
			return true, nil
		}
	}
	return false, nil
}

func (m LanguageMatcher) CheckDeviceCompatible(tt targeting.LanguageTargeting) error {
	if err := checkDisjoint(m.Dimension(), tt); err != nil {
		return err
	}
	for _, lang := range m.Device.Languages() {
		if containsString(tt.Value, lang) || containsString(tt.Alternatives, lang) {
			return nil
		}
	}
	return &IncompatibleError{
		Dimension:   m.Dimension(),
		DeviceValue: strings.Join(m.Device.Languages(), ", "),
		Declared:    declaredUnion(tt),
	}
}

func (m LanguageMatcher) ApkTargetingPresent(t targeting.ApkTargeting) bool {
	return t.Language != nil
}

func (m LanguageMatcher) MatchesApkTargeting(t targeting.ApkTargeting) (bool, error) {
	return m.Matches(m.Targeting(t))
}

func (m LanguageMatcher) CheckApkCompatible(t targeting.ApkTargeting) error {
	return m.CheckDeviceCompatible(m.Targeting(t))
}

// Language targeting never appears at variant level.
func (m LanguageMatcher) VariantTargetingPresent(targeting.VariantTargeting) bool { return false }

func (m LanguageMatcher) MatchesVariantTargeting(targeting.VariantTargeting) (bool, error) {
	return m.Matches(mustTargeting[targeting.LanguageTargeting](m.Dimension(), nil))
}

func containsString(vs []string, s string) bool {
	for _, v := range vs {
		if v == s {
			return true
		}
	}
	return false
}
