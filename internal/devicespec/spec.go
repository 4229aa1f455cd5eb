package devicespec

import (
	"strconv"
	"strings"

	"split-targeting-engine/internal/targeting"
)

// Spec is the resolved property bundle of one physical or virtual device,
// produced by the device-spec loader. Read-only to the targeting core.
type Spec struct {
	SdkVersion       int         `json:"sdkVersion" yaml:"sdkVersion"`
	Codename         string      `json:"codename,omitempty" yaml:"codename"`
	SupportedAbis    []string    `json:"supportedAbis" yaml:"supportedAbis"` // ordered by device preference
	SupportedLocales []string    `json:"supportedLocales" yaml:"supportedLocales"`
	ScreenDensity    int         `json:"screenDensity" yaml:"screenDensity"`
	DeviceFeatures   []string    `json:"deviceFeatures,omitempty" yaml:"deviceFeatures"`
	GlExtensions     []string    `json:"glExtensions,omitempty" yaml:"glExtensions"`
	DeviceTier       string      `json:"deviceTier,omitempty" yaml:"deviceTier"`
	CountrySet       string      `json:"countrySet,omitempty" yaml:"countrySet"`
	SdkRuntime       *SdkRuntime `json:"sdkRuntime,omitempty" yaml:"sdkRuntime"`
}

type SdkRuntime struct {
	Supported bool `json:"supported" yaml:"supported"`
}

// Languages returns the base language code of each supported locale
// ("en-US" contributes "en"), deduplicated, preserving locale order.
func (s Spec) Languages() []string {
	seen := make(map[string]struct{}, len(s.SupportedLocales))
	var out []string
	for _, loc := range s.SupportedLocales {
		lang, _, _ := strings.Cut(loc, "-")
		lang = strings.ToLower(strings.TrimSpace(lang))
		if lang == "" {
			continue
		}
		if _, ok := seen[lang]; ok {
			continue
		}
		seen[lang] = struct{}{}
		out = append(out, lang)
	}
	return out
}

// GlEsVersion extracts the OpenGL ES version from the device features,
// which carry it as "reqGlEsVersion=0xNNNNN".
func (s Spec) GlEsVersion() (int, bool) {
	for _, f := range s.DeviceFeatures {
		name, val, ok := strings.Cut(f, "=")
		if !ok || name != "reqGlEsVersion" {
			continue
		}
		v, err := strconv.ParseInt(strings.TrimPrefix(val, "0x"), 16, 32)
		if err != nil {
			continue
		}
		return int(v), true
	}
	return 0, false
}

// SupportedTextureFormats derives the texture compression formats this
// device can decode from its GL extensions; ETC2 is implied by GLES >= 3.0
// rather than an extension string.
func (s Spec) SupportedTextureFormats() []targeting.TextureCompressionFormat {
	seen := make(map[targeting.TextureCompressionFormat]struct{})
	var out []targeting.TextureCompressionFormat
	for _, ext := range s.GlExtensions {
		f, ok := targeting.TextureFormatForGlExtension(ext)
		if !ok {
			continue
		}
		if _, dup := seen[f]; dup {
			continue
		}
		seen[f] = struct{}{}
		out = append(out, f)
	}
	if v, ok := s.GlEsVersion(); ok && v >= targeting.GlEs30 {
		if _, dup := seen[targeting.TextureEtc2]; !dup {
			out = append(out, targeting.TextureEtc2)
		}
	}
	return out
}

// SdkRuntimeSupported reports whether the device can host SDK-runtime
// splits; a missing sdkRuntime block means it cannot.
func (s Spec) SdkRuntimeSupported() bool {
	return s.SdkRuntime != nil && s.SdkRuntime.Supported
}
