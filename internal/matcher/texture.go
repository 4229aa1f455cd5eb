package matcher

import (
	"strings"

	"split-targeting-engine/internal/devicespec"
	"split-targeting-engine/internal/targeting"
)

// TextureCompressionFormatMatcher matches the formats the device's GPU can
// decode against texture targeting. An empty value set with non-empty
// alternatives is the fallback artifact; it matches only devices that
// support none of the alternatives. That fallback rule is specific to this
// dimension.
type TextureCompressionFormatMatcher struct {
	Device devicespec.Spec
}

func (m TextureCompressionFormatMatcher) Dimension() targeting.Dimension {
	return targeting.DimensionTextureCompressionFormat
}

// Every device decodes some texture format set, possibly empty.
func (m TextureCompressionFormatMatcher) DeviceDimensionPresent() bool { return true }

func (m TextureCompressionFormatMatcher) Targeting(t targeting.ApkTargeting) targeting.TextureCompressionFormatTargeting {
	return mustTargeting(m.Dimension(), t.TextureCompressionFormat)
}

func (m TextureCompressionFormatMatcher) Matches(tt targeting.TextureCompressionFormatTargeting) (bool, error) {
	if err := checkDisjoint(m.Dimension(), tt); err != nil {
		return false, err
	}
	supported := m.supportedSet()
	if len(tt.Value) == 0 {
		for _, alt := range tt.Alternatives {
			if _, ok := supported[alt]; ok {
				return false, nil
			}
		}
		return true, nil
	}
	for _, v := range tt.Value {
		if _, ok := supported[v]; ok {
			return true, nil
		}
	}
	return false, nil
}

func (m TextureCompressionFormatMatcher) CheckDeviceCompatible(tt targeting.TextureCompressionFormatTargeting) error {
	if err := checkDisjoint(m.Dimension(), tt); err != nil {
		return err
	}
	// A fallback artifact serves any device.
	if len(tt.Value) == 0 {
		return nil
	}
	supported := m.supportedSet()
	for _, v := range tt.Value {
		if _, ok := supported[v]; ok {
			return nil
		}
	}
	for _, alt := range tt.Alternatives {
		if _, ok := supported[alt]; ok {
			return nil
		}
	}
	return &IncompatibleError{
		Dimension:   m.Dimension(),
		DeviceValue: m.deviceFormats(),
		Declared:    declaredUnion(tt),
	}
}

func (m TextureCompressionFormatMatcher) supportedSet() map[targeting.TextureCompressionFormat]struct{} {
	formats := m.Device.SupportedTextureFormats()
	set := make(map[targeting.TextureCompressionFormat]struct{}, len(formats))
	for _, f := range formats {
		set[f] = struct{}{}
	}
	return set
}

func (m TextureCompressionFormatMatcher) deviceFormats() string {
	formats := m.Device.SupportedTextureFormats()
	names := make([]string, len(formats))
	for i, f := range formats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}

func (m TextureCompressionFormatMatcher) ApkTargetingPresent(t targeting.ApkTargeting) bool {
	return t.TextureCompressionFormat != nil
}

func (m TextureCompressionFormatMatcher) MatchesApkTargeting(t targeting.ApkTargeting) (bool, error) {
	return m.Matches(m.Targeting(t))
}

func (m TextureCompressionFormatMatcher) CheckApkCompatible(t targeting.ApkTargeting) error {
	return m.CheckDeviceCompatible(m.Targeting(t))
}

func (m TextureCompressionFormatMatcher) VariantTargetingPresent(t targeting.VariantTargeting) bool {
	return t.TextureCompressionFormat != nil
}

func (m TextureCompressionFormatMatcher) MatchesVariantTargeting(t targeting.VariantTargeting) (bool, error) {
	return m.Matches(mustTargeting(m.Dimension(), t.TextureCompressionFormat))
}
